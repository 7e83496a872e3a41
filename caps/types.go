package caps

import "sort"

// Node is one element of a parsed capability string: either a text token
// or a parenthesized group of nodes.
type Node struct {
	// Text is the token text. Empty for groups.
	Text string

	// Children holds the nodes inside a group. Nil for an empty group.
	Children []Node

	// Group is true for a parenthesized group, including "()"
	Group bool
}

// Text returns a text node.
func Text(s string) Node {
	return Node{Text: s}
}

// Group returns a group node holding children.
func Group(children ...Node) Node {
	return Node{Children: children, Group: true}
}

// CodeSet maps the hex codes listed under "cmds" or "vcp" to their
// enumerated sub-values. A nil value means the code lists no sub-values;
// a non-nil (possibly empty) value holds the advertised sub-values.
type CodeSet map[byte]CodeSet

// Has reports whether code is in the set.
func (s CodeSet) Has(code byte) bool {
	_, ok := s[code]
	return ok
}

// Codes returns the codes in ascending order.
func (s CodeSet) Codes() []byte {
	codes := make([]byte, 0, len(s))
	for c := range s {
		codes = append(codes, c)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
	return codes
}

// Capabilities is the parsed form of a display's capability string.
// It is not modified after Parse returns.
type Capabilities struct {
	// Fields maps every key other than "cmds" and "vcp" to its flattened
	// value, e.g. "model" -> "Wacom Cintiq 13HD"
	Fields map[string]string

	// Keys lists every top-level key in the order the display sent it
	Keys []string

	// Commands holds the DDC/CI opcodes listed under "cmds"
	Commands CodeSet

	// VCP holds the VCP codes listed under "vcp", with the allowed
	// values of enumerated controls
	VCP CodeSet
}

// Get returns the flattened value of a plain field.
func (c *Capabilities) Get(key string) (string, bool) {
	v, ok := c.Fields[key]
	return v, ok
}

// SupportsVCP reports whether the display advertises code, and returns its
// advertised values. The returned set is nil for controls that list no
// values.
func (c *Capabilities) SupportsVCP(code byte) (CodeSet, bool) {
	values, ok := c.VCP[code]
	return values, ok
}

// SupportsCommand reports whether the display advertises the opcode.
func (c *Capabilities) SupportsCommand(opcode byte) bool {
	return c.Commands.Has(opcode)
}
