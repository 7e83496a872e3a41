// Command ddc-usb reads and adjusts monitor settings over DDC/CI.
//
// Usage:
//
//	ddc-usb [flags] <path|alias> dump | list | save | shell | <control>=<value> ...
//
// <path> is a serial device node (/dev/ttyUSB0), a Linux I2C device node
// (/dev/i2c-4) or an FTDI URL (ftdi://ftdi:232h/1). Controls and values are
// names (brightness, 6500-k) or numbers (0x10, 50); a value of ? only prints
// the current value.
//
// Examples:
//
//	ddc-usb /dev/ttyUSB0 list
//	ddc-usb /dev/ttyUSB0 brightness=? brightness=50 select-color-preset=6500-k
//	ddc-usb -capture session.ddclog cintiq shell
//	ddc-usb -remember cintiq /dev/ttyUSB0 dump
//	ddc-usb -aliases
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/moffa90/go-ddcci/capture"
	"github.com/moffa90/go-ddcci/config"
	"github.com/moffa90/go-ddcci/ddc"
	"github.com/moffa90/go-ddcci/session"
	"github.com/moffa90/go-ddcci/transport"
	"github.com/pion/logging"
	"periph.io/x/conn/v3/physic"
)

var (
	configPath  = flag.String("config", "", "Configuration file (default: user config dir)")
	logLevel    = flag.String("log-level", "", "Log level: disabled, error, warn, info, debug, trace")
	capturePath = flag.String("capture", "", "Append every DDC/CI frame to this file")
	baud        = flag.Int("baud", 0, "Serial bit rate (default from config)")
	retries     = flag.Int("retries", -1, "Retries after a failed exchange (default from config)")
	aliases     = flag.Bool("aliases", false, "List the configured display aliases and exit")
	remember    = flag.String("remember", "", "Store <path> in the configuration under this alias")
)

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [flags] <path|alias> dump | list | save | shell | <control>=<value> ...\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "       %s [-config file] -aliases\n\nFlags:\n", os.Args[0])
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	flag.Parse()

	if *aliases {
		cfg, err := loadConfig()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		listAliases(os.Stdout, cfg)
		return
	}

	if flag.NArg() < 2 {
		usage()
		os.Exit(2)
	}

	if err := run(flag.Arg(0), flag.Args()[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	var cfg *config.Config
	var err error
	if *configPath != "" {
		cfg, err = config.Load(*configPath)
	} else {
		cfg, err = config.LoadDefault()
	}
	if err != nil {
		return nil, err
	}

	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if *capturePath != "" {
		cfg.Capture = *capturePath
	}
	if *baud > 0 {
		cfg.Serial.Baud = *baud
	}
	if *retries >= 0 {
		cfg.Retries = *retries
	}
	return cfg, cfg.Validate()
}

func run(target string, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	level, err := config.ParseLogLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	factory := logging.NewDefaultLoggerFactory()
	factory.Writer = os.Stderr
	factory.DefaultLogLevel = level

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	display := cfg.Resolve(target)
	port, err := transport.Open(display.Path,
		transport.WithBaudRate(display.Baud),
		transport.WithReadTimeout(cfg.Serial.ReadTimeout),
		transport.WithI2CFrequency(physic.Frequency(cfg.I2CFrequencyKHz)*physic.KiloHertz),
		transport.WithLoggerFactory(factory),
	)
	if err != nil {
		return err
	}
	defer port.Close()

	if *remember != "" {
		path := *configPath
		if path == "" {
			if path, err = config.DefaultPath(); err != nil {
				return err
			}
		}
		if err := rememberAlias(path, *remember, config.Display{Path: display.Path, Baud: *baud}); err != nil {
			return err
		}
		fmt.Printf("Saved %s as %s\n", display.Path, *remember)
	}

	clientOpts := []ddc.Option{ddc.WithRetries(cfg.Retries)}
	var loggers []capture.Logger
	if level >= logging.LogLevelTrace {
		loggers = append(loggers, capture.NewLeveledAdapter(factory.NewLogger("capture")))
	}
	if cfg.Capture != "" {
		fl, err := capture.NewFileLogger(cfg.Capture)
		if err != nil {
			return fmt.Errorf("open capture file: %w", err)
		}
		defer fl.Close()
		loggers = append(loggers, fl)
	}
	if len(loggers) > 0 {
		clientOpts = append(clientOpts, ddc.WithCapture(capture.NewMultiLogger(loggers...)))
	}

	fmt.Println("Requesting features...")
	s, err := session.Open(ctx, port,
		session.WithLoggerFactory(factory),
		session.WithClientOptions(clientOpts...),
	)
	if err != nil {
		return err
	}

	r := &runner{s: s, out: os.Stdout}
	for _, arg := range args {
		if arg == "shell" {
			sh, err := newShell(s)
			if err != nil {
				return err
			}
			sh.Run(ctx)
			continue
		}
		if err := r.run(ctx, arg); err != nil {
			return err
		}
	}
	return nil
}
