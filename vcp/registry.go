package vcp

import (
	"fmt"
	"strconv"
	"strings"
)

// Value is one enumerated setting of a control, such as the "6500-k"
// color preset.
type Value struct {
	Code byte
	Name string
}

// Control describes a single VCP code.
type Control struct {
	// Code is the VCP opcode (0x00-0xFF)
	Code byte

	// Name is the canonical kebab-case name, e.g. "brightness"
	Name string

	// Readable is true if the control can be queried with Get VCP Feature
	Readable bool

	// Writable is true if the control can be changed with Set VCP Feature
	Writable bool

	// Values lists the named settings of controls with enumerated
	// semantics. It is nil for continuous controls.
	Values []Value
}

// String returns "0xCC (name)".
func (c Control) String() string {
	return fmt.Sprintf("0x%02X (%s)", c.Code, c.Name)
}

// Enumerated reports whether the control has named values.
func (c Control) Enumerated() bool {
	return len(c.Values) > 0
}

// Value returns the named setting with the given code.
func (c Control) Value(code uint16) (Value, bool) {
	for _, v := range c.Values {
		if uint16(v.Code) == code {
			return v, true
		}
	}
	return Value{}, false
}

// ValueByName returns the named setting with the given name.
func (c Control) ValueByName(name string) (Value, bool) {
	for _, v := range c.Values {
		if strings.EqualFold(v.Name, name) {
			return v, true
		}
	}
	return Value{}, false
}

// Registry indexes a control table by code and by name.
// A Registry is read-only after construction and safe for concurrent use.
type Registry struct {
	controls []Control
	byCode   map[byte]int
	byName   map[string]int
}

// NewRegistry builds the code and name indices for controls.
// When a code or name occurs twice, the first entry wins.
func NewRegistry(controls []Control) *Registry {
	r := &Registry{
		controls: controls,
		byCode:   make(map[byte]int, len(controls)),
		byName:   make(map[string]int, len(controls)),
	}
	for i, c := range controls {
		if _, ok := r.byCode[c.Code]; !ok {
			r.byCode[c.Code] = i
		}
		key := strings.ToLower(c.Name)
		if _, ok := r.byName[key]; !ok {
			r.byName[key] = i
		}
	}
	return r
}

// Default is the registry over Table shared by the whole process.
var Default = NewRegistry(Table)

// Controls returns every control in table order.
func (r *Registry) Controls() []Control {
	return r.controls
}

// Lookup returns the control with the given code.
func (r *Registry) Lookup(code byte) (Control, bool) {
	i, ok := r.byCode[code]
	if !ok {
		return Control{}, false
	}
	return r.controls[i], true
}

// LookupName returns the control with the given name. Names match
// case-insensitively.
func (r *Registry) LookupName(name string) (Control, bool) {
	i, ok := r.byName[strings.ToLower(name)]
	if !ok {
		return Control{}, false
	}
	return r.controls[i], true
}

// Name returns the canonical name of code.
func (r *Registry) Name(code byte) (string, bool) {
	c, ok := r.Lookup(code)
	return c.Name, ok
}

// ValueName returns the name of value for the control code.
func (r *Registry) ValueName(code byte, value uint16) (string, bool) {
	c, ok := r.Lookup(code)
	if !ok {
		return "", false
	}
	v, ok := c.Value(value)
	return v.Name, ok
}

// Resolve turns a user token into a VCP code. The token is first parsed as
// a decimal or hexadecimal (0x) number; if that fails it is
// looked up by name. Numbers need not be in the table, but must fit in a
// byte.
//
//	vcp.Default.Resolve("brightness") // 0x10, true
//	vcp.Default.Resolve("0x10")       // 0x10, true
func (r *Registry) Resolve(token string) (byte, bool) {
	if n, err := parseNumber(token, 64); err == nil {
		if n > 0xFF {
			return 0, false
		}
		return byte(n), true
	}
	c, ok := r.LookupName(token)
	return c.Code, ok
}

// ResolveValue turns a user token into a value for the control code.
// Numbers are accepted as-is up to 0xFFFF; names are looked up among the
// control's enumerated values.
//
//	vcp.Default.ResolveValue(0x14, "6500-k") // 0x05, true
func (r *Registry) ResolveValue(code byte, token string) (uint16, bool) {
	if n, err := parseNumber(token, 16); err == nil {
		return uint16(n), true
	}
	c, ok := r.Lookup(code)
	if !ok {
		return 0, false
	}
	v, ok := c.ValueByName(token)
	return uint16(v.Code), ok
}

// parseNumber parses a decimal or 0x-prefixed hexadecimal token. A leading
// zero does not switch to octal: "050" is fifty.
func parseNumber(token string, bitSize int) (uint64, error) {
	if len(token) > 2 && token[0] == '0' && (token[1] == 'x' || token[1] == 'X') {
		return strconv.ParseUint(token[2:], 16, bitSize)
	}
	return strconv.ParseUint(token, 10, bitSize)
}

// Lookup returns the control with the given code from Default.
func Lookup(code byte) (Control, bool) { return Default.Lookup(code) }

// LookupName returns the control with the given name from Default.
func LookupName(name string) (Control, bool) { return Default.LookupName(name) }

// Resolve resolves a control token against Default.
func Resolve(token string) (byte, bool) { return Default.Resolve(token) }

// ResolveValue resolves a value token against Default.
func ResolveValue(code byte, token string) (uint16, bool) { return Default.ResolveValue(code, token) }
