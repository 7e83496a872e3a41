package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pion/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
log_level: debug
retries: 5
capture: /tmp/session.ddclog
serial:
  baud: 115200
  read_timeout: 250ms
displays:
  cintiq:
    path: /dev/ttyUSB0
  desk:
    path: /dev/i2c-4
  slow:
    path: /dev/ttyUSB1
    baud: 4800
`

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 5, cfg.Retries)
	assert.Equal(t, "/tmp/session.ddclog", cfg.Capture)
	assert.Equal(t, 115200, cfg.Serial.Baud)
	assert.Equal(t, 250*time.Millisecond, cfg.Serial.ReadTimeout)
	assert.Equal(t, 100, cfg.I2CFrequencyKHz, "unset keys keep their defaults")
	assert.Equal(t, []string{"cintiq", "desk", "slow"}, cfg.Aliases())
}

func TestParseEmpty(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"unknown key", "colour: blue\n"},
		{"bad log level", "log_level: loud\n"},
		{"negative retries", "retries: -1\n"},
		{"zero baud", "serial:\n  baud: 0\n"},
		{"bad duration", "serial:\n  read_timeout: soon\n"},
		{"display without path", "displays:\n  x:\n    baud: 9600\n"},
		{"not yaml", "log_level: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestResolve(t *testing.T) {
	cfg, err := Parse([]byte(sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, Display{Path: "/dev/ttyUSB0", Baud: 115200}, cfg.Resolve("cintiq"))
	assert.Equal(t, Display{Path: "/dev/ttyUSB1", Baud: 4800}, cfg.Resolve("slow"))
	assert.Equal(t, Display{Path: "/dev/ttyACM0", Baud: 115200}, cfg.Resolve("/dev/ttyACM0"))
}

func TestParseLogLevel(t *testing.T) {
	level, err := ParseLogLevel("TRACE")
	require.NoError(t, err)
	assert.Equal(t, logging.LogLevelTrace, level)

	level, err = ParseLogLevel("disabled")
	require.NoError(t, err)
	assert.Equal(t, logging.LogLevelDisabled, level)

	_, err = ParseLogLevel("verbose")
	assert.Error(t, err)
}

func TestLoadAndSave(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", FileName)

	cfg, err := Parse([]byte(sampleConfig))
	require.NoError(t, err)
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadDefault(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)

	cfg, err := LoadDefault()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	path, err := DefaultPath()
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("retries: 1\n"), 0644))

	cfg, err = LoadDefault()
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.Retries)
}
