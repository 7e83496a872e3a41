package transport

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/pion/logging"
	"periph.io/x/conn/v3/physic"
)

// Port is an open connection to a display. Writes take whole request
// frames starting at the 0x6E destination byte; reads return reply bytes
// starting at the 0x6E source byte.
type Port interface {
	io.ReadWriteCloser
}

// Kind identifies how a path reaches the display.
type Kind int

const (
	// KindSerial is a serial device node behind a USB bridge, e.g. /dev/ttyUSB0
	KindSerial Kind = iota

	// KindI2C is a native Linux I2C device node, /dev/i2c-N
	KindI2C

	// KindFTDI is an FTDI FT232H bridge addressed by an ftdi:// URL
	KindFTDI
)

func (k Kind) String() string {
	switch k {
	case KindSerial:
		return "serial"
	case KindI2C:
		return "i2c"
	case KindFTDI:
		return "ftdi"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

const (
	ftdiScheme = "ftdi://"
	i2cPrefix  = "/dev/i2c-"
)

// ErrTimeout is returned by a serial Port when no byte arrived within the
// read timeout.
var ErrTimeout = errors.New("read timed out")

// Defaults applied by Open.
const (
	DefaultBaudRate     = 9600
	DefaultReadTimeout  = time.Second
	DefaultI2CFrequency = 100 * physic.KiloHertz
)

// Config holds the transport configuration.
type Config struct {
	// BaudRate of a serial port
	BaudRate int

	// ReadTimeout of a serial port; a read waiting longer fails with ErrTimeout
	ReadTimeout time.Duration

	// I2CFrequency is the bus clock of an FTDI bridge
	I2CFrequency physic.Frequency

	// LoggerFactory creates the "transport" logger (optional)
	LoggerFactory logging.LoggerFactory
}

func defaultConfig() Config {
	return Config{
		BaudRate:     DefaultBaudRate,
		ReadTimeout:  DefaultReadTimeout,
		I2CFrequency: DefaultI2CFrequency,
	}
}

// Option is a functional option for Open.
type Option func(*Config)

// WithBaudRate sets the serial bit rate. Non-positive values are ignored.
func WithBaudRate(baud int) Option {
	return func(c *Config) {
		if baud > 0 {
			c.BaudRate = baud
		}
	}
}

// WithReadTimeout sets the serial read timeout. Non-positive values are
// ignored.
func WithReadTimeout(d time.Duration) Option {
	return func(c *Config) {
		if d > 0 {
			c.ReadTimeout = d
		}
	}
}

// WithI2CFrequency sets the FTDI bridge bus clock.
func WithI2CFrequency(f physic.Frequency) Option {
	return func(c *Config) {
		if f > 0 {
			c.I2CFrequency = f
		}
	}
}

// WithLoggerFactory sets the factory the transport creates its logger from.
func WithLoggerFactory(factory logging.LoggerFactory) Option {
	return func(c *Config) {
		c.LoggerFactory = factory
	}
}

// Classify reports which kind of transport path selects:
// "ftdi://..." is an FTDI bridge, "/dev/i2c-N" an I2C device node, and
// anything else a serial device node.
func Classify(path string) (Kind, error) {
	switch {
	case path == "":
		return 0, errors.New("empty device path")
	case strings.HasPrefix(path, ftdiScheme):
		if _, err := parseFTDIURL(path); err != nil {
			return 0, err
		}
		return KindFTDI, nil
	case strings.HasPrefix(path, i2cPrefix):
		if _, err := parseI2CPath(path); err != nil {
			return 0, err
		}
		return KindI2C, nil
	default:
		return KindSerial, nil
	}
}

// Open opens the display reachable at path.
//
// Example:
//
//	port, err := transport.Open("/dev/ttyUSB0", transport.WithBaudRate(115200))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer port.Close()
func Open(path string, opts ...Option) (Port, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	kind, err := Classify(path)
	if err != nil {
		return nil, err
	}

	var log logging.LeveledLogger
	if cfg.LoggerFactory != nil {
		log = cfg.LoggerFactory.NewLogger("transport")
	}

	var port Port
	switch kind {
	case KindFTDI:
		port, err = openFTDI(path, cfg)
	case KindI2C:
		port, err = openI2C(path)
	default:
		port, err = openSerial(path, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s device %s: %w", kind, path, err)
	}

	if log != nil {
		log.Infof("opened %s connection to %s", kind, path)
	}
	return port, nil
}

// parseI2CPath returns the bus number of a /dev/i2c-N path.
func parseI2CPath(path string) (int, error) {
	n, err := strconv.Atoi(strings.TrimPrefix(path, i2cPrefix))
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid I2C device node %q", path)
	}
	return n, nil
}
