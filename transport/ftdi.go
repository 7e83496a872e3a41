package transport

import (
	"fmt"
	"strconv"
	"strings"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/host/v3"
	"periph.io/x/host/v3/ftdi"
)

// ftdiURL is a parsed bridge URL in the pyftdi form
//
//	ftdi://[vendor][:product[:index]]/interface
//
// e.g. ftdi://ftdi:232h/1 or ftdi://::1/1 for the second bridge.
type ftdiURL struct {
	// Index selects among the connected FT232H bridges, counting from 0
	Index int
}

func parseFTDIURL(raw string) (ftdiURL, error) {
	rest := strings.TrimPrefix(raw, ftdiScheme)
	device, iface, ok := strings.Cut(rest, "/")
	if !ok || (iface != "1" && iface != "") {
		return ftdiURL{}, fmt.Errorf("invalid FTDI URL %q: interface must be 1", raw)
	}

	var u ftdiURL
	parts := strings.Split(device, ":")
	if len(parts) > 3 {
		return ftdiURL{}, fmt.Errorf("invalid FTDI URL %q", raw)
	}
	if v := strings.ToLower(parts[0]); v != "" && v != "ftdi" && v != "0x0403" && v != "0x403" {
		return ftdiURL{}, fmt.Errorf("invalid FTDI URL %q: unknown vendor %q", raw, parts[0])
	}
	if len(parts) > 1 {
		if p := strings.ToLower(parts[1]); p != "" && p != "232h" && p != "ft232h" && p != "0x6014" {
			return ftdiURL{}, fmt.Errorf("invalid FTDI URL %q: only the FT232H is supported", raw)
		}
	}
	if len(parts) > 2 && parts[2] != "" {
		n, err := strconv.Atoi(parts[2])
		if err != nil || n < 0 {
			return ftdiURL{}, fmt.Errorf("invalid FTDI URL %q: bad device index %q", raw, parts[2])
		}
		u.Index = n
	}
	return u, nil
}

func openFTDI(raw string, cfg Config) (Port, error) {
	u, err := parseFTDIURL(raw)
	if err != nil {
		return nil, err
	}
	if _, err := host.Init(); err != nil {
		return nil, err
	}

	var bridges []*ftdi.FT232H
	for _, d := range ftdi.All() {
		if ft, ok := d.(*ftdi.FT232H); ok {
			bridges = append(bridges, ft)
		}
	}
	if u.Index >= len(bridges) {
		return nil, fmt.Errorf("FT232H #%d not found (%d connected)", u.Index, len(bridges))
	}

	bus, err := bridges[u.Index].I2C(gpio.PullUp)
	if err != nil {
		return nil, err
	}
	if err := bus.SetSpeed(cfg.I2CFrequency); err != nil {
		bus.Close()
		return nil, err
	}
	return newI2CPort(bus), nil
}
