package main

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/moffa90/go-ddcci/ddc"
	"github.com/moffa90/go-ddcci/ddctest"
	"github.com/moffa90/go-ddcci/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRunner(t *testing.T, display *ddctest.Display) (*runner, *bytes.Buffer) {
	t.Helper()
	s, err := session.Open(context.Background(), display,
		session.WithClientOptions(ddc.WithSleepFunc(func(time.Duration) {})))
	require.NoError(t, err)
	var out bytes.Buffer
	return &runner{s: s, out: &out}, &out
}

func TestRunnerCommands(t *testing.T) {
	display := ddctest.NewCintiq13HD()
	r, out := newTestRunner(t, display)
	ctx := context.Background()

	for _, arg := range []string{"dump", "brightness=?", "brightness=150", "contrast=40", "bogus", "save"} {
		require.NoError(t, r.run(ctx, arg))
	}

	text := out.String()
	assert.Contains(t, text, ddctest.Cintiq13HDCapabilities+"\n")
	assert.Contains(t, text, "Current value of VCP brightness is 50 (maximum = 100)\n")
	assert.Contains(t, text, "Value is outside the supported range 0..100\n")
	assert.Contains(t, text, "Set value of VCP contrast to 40\n")
	assert.Contains(t, text, "Ignoring unknown argument bogus\n")
	assert.Contains(t, text, "Saved current settings\n")

	v, _ := display.Value(0x12)
	assert.Equal(t, uint16(40), v)
	assert.Equal(t, 1, display.Saves())
}

func TestRunnerList(t *testing.T) {
	r, out := newTestRunner(t, ddctest.NewCintiq13HD())

	require.NoError(t, r.run(context.Background(), "list"))
	assert.Contains(t, out.String(), "  - 0x14 (select-color-preset)\n      - 0x04 (5000-k)\n")
}

func TestRunnerTransportError(t *testing.T) {
	display := ddctest.NewCintiq13HD()
	r, _ := newTestRunner(t, display)
	display.SetWriteError(ddctest.ErrInjected)

	err := r.run(context.Background(), "brightness=10")
	require.Error(t, err)
	assert.ErrorIs(t, err, ddctest.ErrInjected)
	assert.Contains(t, err.Error(), "brightness=10")
}

func TestGetSetPattern(t *testing.T) {
	m := getSetPattern.FindStringSubmatch("0x10=0x20")
	require.NotNil(t, m)
	assert.Equal(t, []string{"0x10=0x20", "0x10", "0x20"}, m)

	assert.Nil(t, getSetPattern.FindStringSubmatch("brightness="))
	assert.Nil(t, getSetPattern.FindStringSubmatch("=5"))
}

func TestShellExec(t *testing.T) {
	display := ddctest.NewCintiq13HD()
	r, out := newTestRunner(t, display)
	sh := &shell{runner: r}
	ctx := context.Background()

	assert.True(t, sh.exec(ctx, "get brightness"))
	assert.True(t, sh.exec(ctx, "set contrast 75"))
	assert.True(t, sh.exec(ctx, "SET"))
	assert.True(t, sh.exec(ctx, "brightness=20 save"))
	assert.False(t, sh.exec(ctx, "quit"))

	text := out.String()
	assert.Contains(t, text, "Current value of VCP brightness is 50 (maximum = 100)\n")
	assert.Contains(t, text, "Set value of VCP contrast to 75\n")
	assert.Contains(t, text, "Usage: set <control> <value>\n")
	assert.Contains(t, text, "Saved current settings\n")

	v, _ := display.Value(0x10)
	assert.Equal(t, uint16(20), v)
	assert.Equal(t, 1, display.Saves())
}

func TestShellExecReportsErrors(t *testing.T) {
	display := ddctest.NewCintiq13HD()
	r, out := newTestRunner(t, display)
	sh := &shell{runner: r}
	display.SetWriteError(ddctest.ErrInjected)

	assert.True(t, sh.exec(context.Background(), "get contrast"))
	assert.Contains(t, out.String(), "Error: contrast=?: ")
}
