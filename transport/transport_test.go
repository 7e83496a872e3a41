package transport

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/moffa90/go-ddcci/ddc"
	"github.com/moffa90/go-ddcci/ddctest"
	"github.com/moffa90/go-ddcci/protocol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.bug.st/serial"
	"periph.io/x/conn/v3/physic"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		path    string
		want    Kind
		wantErr bool
	}{
		{"/dev/ttyUSB0", KindSerial, false},
		{"COM3", KindSerial, false},
		{"/dev/i2c-4", KindI2C, false},
		{"/dev/i2c-", 0, true},
		{"/dev/i2c-x", 0, true},
		{"ftdi://ftdi:232h/1", KindFTDI, false},
		{"ftdi://::1/1", KindFTDI, false},
		{"ftdi://ftdi:2232h/1", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := Classify(tt.path)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFTDIURL(t *testing.T) {
	tests := []struct {
		url       string
		wantIndex int
		wantErr   bool
	}{
		{"ftdi://ftdi:232h/1", 0, false},
		{"ftdi:///1", 0, false},
		{"ftdi://0x0403:0x6014:2/1", 2, false},
		{"ftdi://ftdi:232h:1/1", 1, false},
		{"ftdi://ftdi:232h", 0, true},
		{"ftdi://ftdi:232h/2", 0, true},
		{"ftdi://acme:232h/1", 0, true},
		{"ftdi://ftdi:232h:FT1XYZ/1", 0, true},
		{"ftdi://ftdi:232h:1:2/1", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			u, err := parseFTDIURL(tt.url)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantIndex, u.Index)
		})
	}
}

func TestOpenErrors(t *testing.T) {
	_, err := Open("")
	assert.Error(t, err)

	_, err = Open("/nonexistent/ttyDDC0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open serial device /nonexistent/ttyDDC0")
}

func TestOptions(t *testing.T) {
	cfg := defaultConfig()
	for _, opt := range []Option{
		WithBaudRate(115200),
		WithReadTimeout(250 * time.Millisecond),
		WithI2CFrequency(400 * physic.KiloHertz),
		WithBaudRate(-1),
		WithReadTimeout(0),
	} {
		opt(&cfg)
	}
	assert.Equal(t, 115200, cfg.BaudRate)
	assert.Equal(t, 250*time.Millisecond, cfg.ReadTimeout)
	assert.Equal(t, 400*physic.KiloHertz, cfg.I2CFrequency)
}

// fakeSerial implements the serial.Port methods the transport uses. Calling
// any other method panics on the nil embedded interface.
type fakeSerial struct {
	serial.Port

	reads   [][]byte
	written []byte
	drains  int
	closed  bool
}

func (f *fakeSerial) Read(p []byte) (int, error) {
	if len(f.reads) == 0 {
		return 0, nil
	}
	n := copy(p, f.reads[0])
	f.reads[0] = f.reads[0][n:]
	if len(f.reads[0]) == 0 {
		f.reads = f.reads[1:]
	}
	return n, nil
}

func (f *fakeSerial) Write(p []byte) (int, error) {
	f.written = append(f.written, p...)
	return len(p), nil
}

func (f *fakeSerial) Drain() error {
	f.drains++
	return nil
}

func (f *fakeSerial) Close() error {
	f.closed = true
	return nil
}

func TestSerialPort(t *testing.T) {
	fake := &fakeSerial{reads: [][]byte{{0x6E, 0x80}, {0xBE}}}
	p := newSerialPort(fake, "/dev/ttyUSB0", time.Second)

	n, err := p.Write([]byte{0x6E, 0x51, 0x81, 0xB1, 0x0F})
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, 1, fake.drains)

	buf := make([]byte, 3)
	_, err = io.ReadFull(p, buf)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x6E, 0x80, 0xBE}, buf)

	// Nothing left: the port times out instead of returning (0, nil).
	_, err = p.Read(buf)
	assert.ErrorIs(t, err, ErrTimeout)
	assert.Contains(t, err.Error(), "/dev/ttyUSB0")

	n, err = p.Read(nil)
	assert.NoError(t, err)
	assert.Zero(t, n)

	require.NoError(t, p.Close())
	assert.True(t, fake.closed)
}

// displayBus is an I2C bus with a simulated display at address 0x37.
type displayBus struct {
	display *ddctest.Display
	addrs   []uint16
	closed  bool
}

func (b *displayBus) String() string { return "display-bus" }

func (b *displayBus) Tx(addr uint16, w, r []byte) error {
	b.addrs = append(b.addrs, addr)
	if len(w) > 0 {
		// The bus transaction carries the address byte.
		if _, err := b.display.Write(append([]byte{0x6E}, w...)); err != nil {
			return err
		}
	}
	if len(r) > 0 {
		if _, err := io.ReadFull(b.display, r); err != nil {
			return err
		}
	}
	return nil
}

func (b *displayBus) SetSpeed(physic.Frequency) error { return nil }

func (b *displayBus) Close() error {
	b.closed = true
	return nil
}

func TestI2CPortWrite(t *testing.T) {
	bus := &displayBus{display: ddctest.NewCintiq13HD()}
	p := newI2CPort(bus)

	frame := protocol.BuildSaveSettingsCmd()
	n, err := p.Write(frame)
	require.NoError(t, err)
	assert.Equal(t, len(frame), n)
	assert.Equal(t, []uint16{0x37}, bus.addrs)
	assert.Equal(t, 1, bus.display.Saves())

	_, err = p.Write([]byte{0x51, 0x81})
	assert.Error(t, err)

	require.NoError(t, p.Close())
	assert.True(t, bus.closed)
}

func TestI2CPortWithClient(t *testing.T) {
	display := ddctest.NewCintiq13HD()
	bus := &displayBus{display: display}
	client := ddc.New(newI2CPort(bus), ddc.WithSleepFunc(func(time.Duration) {}))

	reply, err := client.GetValue(context.Background(), 0x12)
	require.NoError(t, err)
	assert.Equal(t, uint16(50), reply.Current)

	require.NoError(t, client.SetValue(context.Background(), 0x12, 30))
	v, _ := display.Value(0x12)
	assert.Equal(t, uint16(30), v)

	for _, a := range bus.addrs {
		assert.Equal(t, uint16(0x37), a)
	}
}

func TestI2CPortReadError(t *testing.T) {
	display := ddctest.NewCintiq13HD()
	display.SetReadError(ddctest.ErrInjected)
	p := newI2CPort(&displayBus{display: display})

	_, err := p.Read(make([]byte, 2))
	assert.True(t, errors.Is(err, ddctest.ErrInjected))
}
