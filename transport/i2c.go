package transport

import (
	"errors"
	"strconv"

	"github.com/moffa90/go-ddcci/protocol"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"
)

// i2cPort talks to the display at its 7-bit address on an I2C bus. The bus
// transaction carries the address, so the destination byte of each request
// frame is not sent.
type i2cPort struct {
	bus i2c.BusCloser
	dev *i2c.Dev
}

func openI2C(path string) (Port, error) {
	n, err := parseI2CPath(path)
	if err != nil {
		return nil, err
	}
	if _, err := host.Init(); err != nil {
		return nil, err
	}
	bus, err := i2creg.Open(strconv.Itoa(n))
	if err != nil {
		return nil, err
	}
	return newI2CPort(bus), nil
}

func newI2CPort(bus i2c.BusCloser) *i2cPort {
	return &i2cPort{
		bus: bus,
		dev: &i2c.Dev{Bus: bus, Addr: protocol.DisplayI2CAddress},
	}
}

func (p *i2cPort) Write(b []byte) (int, error) {
	if len(b) == 0 {
		return 0, nil
	}
	if b[0] != protocol.DisplayAddress {
		return 0, errors.New("frame does not start with the display address")
	}
	n, err := p.dev.Write(b[1:])
	if err != nil {
		return 0, err
	}
	return n + 1, nil
}

// Read fills b with one read transaction.
func (p *i2cPort) Read(b []byte) (int, error) {
	if len(b) == 0 {
		return 0, nil
	}
	if err := p.dev.Tx(nil, b); err != nil {
		return 0, err
	}
	return len(b), nil
}

func (p *i2cPort) Close() error {
	return p.bus.Close()
}
