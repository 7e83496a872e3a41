// Package transport opens the byte channel to a display.
//
// The path decides the transport:
//   - ftdi://ftdi:232h/1 opens the I2C master of an FTDI FT232H bridge
//   - /dev/i2c-N opens a native Linux I2C bus
//   - anything else is a serial device node, e.g. /dev/ttyUSB0
//
// Every Port accepts whole DDC/CI request frames and returns reply bytes
// from the display's source address on, so the ddc package does not need
// to know which transport it runs over. On I2C the bus transaction carries
// the display address and the leading 0x6E is stripped from each write.
//
//	port, err := transport.Open(path,
//	    transport.WithBaudRate(9600),
//	    transport.WithReadTimeout(time.Second),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer port.Close()
//
//	client := ddc.New(port)
package transport
