package session

import (
	"fmt"
	"strings"

	"github.com/moffa90/go-ddcci/caps"
	"github.com/moffa90/go-ddcci/vcp"
)

// FormatCapabilities renders c one key per line in the order the display
// sent them. VCP codes and their advertised values are listed with their
// registry names:
//
//	model: Wacom Cintiq 13HD
//	cmds: [0x01 0x02 0x03]
//	vcp:
//	  - 0x10 (brightness)
//	  - 0x14 (select-color-preset)
//	      - 0x05 (6500-k)
//
// A nil registry means vcp.Default.
func FormatCapabilities(c *caps.Capabilities, registry *vcp.Registry) string {
	if registry == nil {
		registry = vcp.Default
	}

	var b strings.Builder
	for _, key := range c.Keys {
		switch key {
		case caps.KeyVCP:
			b.WriteString(key + ":\n")
			for _, code := range c.VCP.Codes() {
				fmt.Fprintf(&b, "  - 0x%02X (%s)\n", code, nameOr(registry.Name(code)))
				values := c.VCP[code]
				if values == nil {
					continue
				}
				for _, v := range values.Codes() {
					fmt.Fprintf(&b, "      - 0x%02X (%s)\n", v, nameOr(registry.ValueName(code, uint16(v))))
				}
			}
		case caps.KeyCommands:
			fmt.Fprintf(&b, "%s: %s\n", key, formatCodes(c.Commands.Codes()))
		default:
			fmt.Fprintf(&b, "%s: %s\n", key, c.Fields[key])
		}
	}
	return b.String()
}

func nameOr(name string, ok bool) string {
	if !ok {
		return "unknown"
	}
	return name
}
