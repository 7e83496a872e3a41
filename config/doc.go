// Package config loads the YAML configuration of the ddc-usb tool: log
// level, retry count, capture file, serial settings and display aliases.
//
//	cfg, err := config.LoadDefault()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	d := cfg.Resolve("cintiq") // alias or plain path
//	port, err := transport.Open(d.Path, transport.WithBaudRate(d.Baud))
package config
