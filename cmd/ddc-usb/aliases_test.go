package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/moffa90/go-ddcci/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListAliases(t *testing.T) {
	cfg, err := config.Parse([]byte(`
serial:
  baud: 9600
displays:
  desk: {path: /dev/i2c-4}
  cintiq: {path: /dev/ttyUSB0, baud: 115200}
`))
	require.NoError(t, err)

	var buf bytes.Buffer
	listAliases(&buf, cfg)
	assert.Equal(t, "cintiq: /dev/ttyUSB0 (baud 115200)\ndesk: /dev/i2c-4 (baud 9600)\n", buf.String())

	buf.Reset()
	listAliases(&buf, config.Default())
	assert.Equal(t, "No display aliases configured\n", buf.String())
}

func TestRememberAlias(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ddc-usb", "config.yaml")

	require.NoError(t, rememberAlias(path, "cintiq", config.Display{Path: "/dev/ttyUSB0"}))
	require.NoError(t, rememberAlias(path, "desk", config.Display{Path: "/dev/i2c-4", Baud: 19200}))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"cintiq", "desk"}, cfg.Aliases())
	assert.Equal(t, config.Display{Path: "/dev/i2c-4", Baud: 19200}, cfg.Resolve("desk"))
	assert.Equal(t, config.Default().LogLevel, cfg.LogLevel)
}
