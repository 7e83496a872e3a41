package session

import (
	"github.com/moffa90/go-ddcci/ddc"
	"github.com/moffa90/go-ddcci/vcp"
	"github.com/pion/logging"
)

// Config holds the session configuration.
type Config struct {
	// LoggerFactory creates the "session" logger and is passed on to the
	// client (optional)
	LoggerFactory logging.LoggerFactory

	// Registry resolves control and value names. Defaults to vcp.Default.
	Registry *vcp.Registry

	// ClientOptions configure the underlying ddc.Client
	ClientOptions []ddc.Option
}

func defaultConfig() Config {
	return Config{
		Registry: vcp.Default,
	}
}

// Option is a functional option for configuring a Session.
type Option func(*Config)

// WithLoggerFactory sets the logger factory for the session and its client.
func WithLoggerFactory(factory logging.LoggerFactory) Option {
	return func(c *Config) {
		c.LoggerFactory = factory
	}
}

// WithRegistry replaces the VCP registry used to resolve names.
func WithRegistry(r *vcp.Registry) Option {
	return func(c *Config) {
		if r != nil {
			c.Registry = r
		}
	}
}

// WithClientOptions passes options through to ddc.New.
//
// Example:
//
//	s, err := session.Open(ctx, port,
//	    session.WithClientOptions(ddc.WithRetries(5), ddc.WithCapture(fl)),
//	)
func WithClientOptions(opts ...ddc.Option) Option {
	return func(c *Config) {
		c.ClientOptions = append(c.ClientOptions, opts...)
	}
}
