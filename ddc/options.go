package ddc

import (
	"time"

	"github.com/moffa90/go-ddcci/capture"
	"github.com/pion/logging"
)

// DefaultRetries is the number of extra attempts after a failed exchange.
const DefaultRetries = 3

// Config holds the client configuration.
type Config struct {
	// LoggerFactory creates the "ddc" logger (optional)
	LoggerFactory logging.LoggerFactory

	// Capture receives every frame and failed attempt (optional)
	Capture capture.Logger

	// ProgressCallback is called for each capability page (optional)
	ProgressCallback ProgressCallback

	// Retries is the number of retries after a failed exchange
	Retries int

	// SessionID tags capture events; a random UUID if empty
	SessionID string

	// Sleep waits for the protocol delays. Defaults to time.Sleep.
	Sleep func(time.Duration)
}

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Retries: DefaultRetries,
		Sleep:   time.Sleep,
	}
}

// Option is a functional option for configuring the Client.
type Option func(*Config)

// WithLoggerFactory sets the factory the client creates its logger from.
//
// Example:
//
//	factory := logging.NewDefaultLoggerFactory()
//	factory.DefaultLogLevel = logging.LogLevelDebug
//	client := ddc.New(device, ddc.WithLoggerFactory(factory))
func WithLoggerFactory(factory logging.LoggerFactory) Option {
	return func(c *Config) {
		c.LoggerFactory = factory
	}
}

// WithCapture records every frame written and read.
//
// Example:
//
//	fl, _ := capture.NewFileLogger("session.ddclog")
//	client := ddc.New(device, ddc.WithCapture(fl))
func WithCapture(logger capture.Logger) Option {
	return func(c *Config) {
		c.Capture = logger
	}
}

// WithProgressCallback sets a callback to track capability reads.
func WithProgressCallback(callback ProgressCallback) Option {
	return func(c *Config) {
		c.ProgressCallback = callback
	}
}

// WithRetries sets the number of retries after a failed exchange.
// Default is 3, for 4 attempts in total.
func WithRetries(retries int) Option {
	return func(c *Config) {
		if retries >= 0 {
			c.Retries = retries
		}
	}
}

// WithSessionID sets the session identifier written to capture events.
func WithSessionID(id string) Option {
	return func(c *Config) {
		c.SessionID = id
	}
}

// WithSleepFunc replaces time.Sleep for the protocol delays. The delays
// themselves are fixed; this only changes how they are waited out, e.g.
// by a simulated clock in tests.
func WithSleepFunc(sleep func(time.Duration)) Option {
	return func(c *Config) {
		if sleep != nil {
			c.Sleep = sleep
		}
	}
}
