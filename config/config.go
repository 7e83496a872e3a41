package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/pion/logging"
	"gopkg.in/yaml.v3"
)

// FileName is the name of the configuration file under the user
// configuration directory.
const FileName = "config.yaml"

// Display is a named display entry.
type Display struct {
	// Path is the device path, as accepted by transport.Open
	Path string `yaml:"path"`

	// Baud overrides the serial bit rate for this display
	Baud int `yaml:"baud,omitempty"`
}

// Config is the tool configuration.
//
// Example file:
//
//	log_level: info
//	retries: 3
//	capture: /var/log/ddc/session.ddclog
//	serial:
//	  baud: 9600
//	  read_timeout: 1s
//	displays:
//	  cintiq:
//	    path: /dev/ttyUSB0
//	  desk:
//	    path: /dev/i2c-4
type Config struct {
	// LogLevel is one of disabled, error, warn, info, debug, trace
	LogLevel string `yaml:"log_level"`

	// Retries is the number of extra attempts after a failed exchange
	Retries int `yaml:"retries"`

	// Capture is a file every frame is appended to (optional)
	Capture string `yaml:"capture,omitempty"`

	Serial Serial `yaml:"serial"`

	// I2CFrequencyKHz is the bus clock of FTDI bridges
	I2CFrequencyKHz int `yaml:"i2c_frequency_khz"`

	// Displays maps alias names to displays
	Displays map[string]Display `yaml:"displays,omitempty"`
}

// Serial holds serial port settings.
type Serial struct {
	Baud        int           `yaml:"baud"`
	ReadTimeout time.Duration `yaml:"read_timeout"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		LogLevel: "warn",
		Retries:  3,
		Serial: Serial{
			Baud:        9600,
			ReadTimeout: time.Second,
		},
		I2CFrequencyKHz: 100,
	}
}

// DefaultPath returns the configuration file location,
// e.g. ~/.config/ddc-usb/config.yaml on Linux.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "ddc-usb", FileName), nil
}

// Load reads the file at path over the defaults and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// LoadDefault loads the file at DefaultPath, or returns Default when there
// is none.
func LoadDefault() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return Default(), nil
	}
	cfg, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Parse decodes YAML over the defaults and validates the result.
// Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

var logLevels = map[string]logging.LogLevel{
	"disabled": logging.LogLevelDisabled,
	"error":    logging.LogLevelError,
	"warn":     logging.LogLevelWarn,
	"info":     logging.LogLevelInfo,
	"debug":    logging.LogLevelDebug,
	"trace":    logging.LogLevelTrace,
}

// ParseLogLevel converts a level name to a pion log level.
func ParseLogLevel(name string) (logging.LogLevel, error) {
	level, ok := logLevels[strings.ToLower(name)]
	if !ok {
		return 0, fmt.Errorf("unknown log level %q", name)
	}
	return level, nil
}

// Validate checks the configuration for values no component accepts.
func (c *Config) Validate() error {
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return err
	}
	if c.Retries < 0 {
		return fmt.Errorf("retries must not be negative, got %d", c.Retries)
	}
	if c.Serial.Baud <= 0 {
		return fmt.Errorf("serial baud must be positive, got %d", c.Serial.Baud)
	}
	if c.Serial.ReadTimeout <= 0 {
		return fmt.Errorf("serial read_timeout must be positive, got %s", c.Serial.ReadTimeout)
	}
	if c.I2CFrequencyKHz <= 0 {
		return fmt.Errorf("i2c_frequency_khz must be positive, got %d", c.I2CFrequencyKHz)
	}
	for name, d := range c.Displays {
		if d.Path == "" {
			return fmt.Errorf("display %q has no path", name)
		}
		if d.Baud < 0 {
			return fmt.Errorf("display %q: baud must not be negative", name)
		}
	}
	return nil
}

// Resolve returns the display named by alias, or a display with the given
// path when no alias matches. Serial settings default to the top-level ones.
func (c *Config) Resolve(pathOrAlias string) Display {
	d, ok := c.Displays[pathOrAlias]
	if !ok {
		d = Display{Path: pathOrAlias}
	}
	if d.Baud == 0 {
		d.Baud = c.Serial.Baud
	}
	return d
}

// Aliases returns the display alias names in sorted order.
func (c *Config) Aliases() []string {
	names := make([]string, 0, len(c.Displays))
	for name := range c.Displays {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Save writes the configuration to path, creating its directory.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
