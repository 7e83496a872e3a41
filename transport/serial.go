package transport

import (
	"fmt"
	"time"

	"go.bug.st/serial"
)

// serialPort adapts a serial.Port, which reports a read timeout as a read
// of zero bytes, to the io.Reader contract.
type serialPort struct {
	port    serial.Port
	path    string
	timeout time.Duration
}

func openSerial(path string, cfg Config) (Port, error) {
	mode := &serial.Mode{
		BaudRate: cfg.BaudRate,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}
	port, err := serial.Open(path, mode)
	if err != nil {
		return nil, err
	}
	if err := port.SetReadTimeout(cfg.ReadTimeout); err != nil {
		port.Close()
		return nil, err
	}
	return newSerialPort(port, path, cfg.ReadTimeout), nil
}

func newSerialPort(port serial.Port, path string, timeout time.Duration) *serialPort {
	return &serialPort{port: port, path: path, timeout: timeout}
}

func (p *serialPort) Read(b []byte) (int, error) {
	if len(b) == 0 {
		return 0, nil
	}
	n, err := p.port.Read(b)
	if err != nil {
		return n, err
	}
	if n == 0 {
		return 0, fmt.Errorf("%s: %w after %s", p.path, ErrTimeout, p.timeout)
	}
	return n, nil
}

// Write sends b and waits until it has left the output buffer.
func (p *serialPort) Write(b []byte) (int, error) {
	n, err := p.port.Write(b)
	if err != nil {
		return n, err
	}
	return n, p.port.Drain()
}

func (p *serialPort) Close() error {
	return p.port.Close()
}
