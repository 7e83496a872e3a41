package caps

import (
	"fmt"
	"strconv"
	"strings"
)

// Reserved keys whose values are converted to code sets.
const (
	KeyCommands = "cmds"
	KeyVCP      = "vcp"
)

// Separator is the token separator used inside capability strings.
const Separator = " "

// ParseTree splits s into a tree of text tokens and parenthesized groups.
//
// If sep is non-empty, each occurrence of it ends a token; empty tokens
// are dropped. Empty groups are kept. An unmatched "(" or ")" is an error.
//
// Example:
//
//	caps.ParseTree("1 2 (A B (a)) 3", " ")
//	// [1 2 (A B (a)) 3] as Text("1"), Text("2"),
//	// Group(Text("A"), Text("B"), Group(Text("a"))), Text("3")
func ParseTree(s string, sep string) ([]Node, error) {
	if len(sep) > 1 {
		return nil, fmt.Errorf("separator must be at most one byte, got %q", sep)
	}
	nodes, _, _, err := parseGroup(s, "()"+sep, 0, 0)
	return nodes, err
}

// parseGroup scans s from pos until the ")" that closes the current group
// or the end of the string. It returns the nodes found, the position just
// past the closing ")", and whether such a ")" was seen.
func parseGroup(s, stops string, pos, depth int) ([]Node, int, bool, error) {
	var nodes []Node
	for pos < len(s) {
		i := strings.IndexAny(s[pos:], stops)
		if i < 0 {
			nodes = append(nodes, Text(s[pos:]))
			return nodes, len(s), false, nil
		}
		idx := pos + i
		if idx > pos {
			nodes = append(nodes, Text(s[pos:idx]))
		}

		switch s[idx] {
		case '(':
			children, next, closed, err := parseGroup(s, stops, idx+1, depth+1)
			if err != nil {
				return nil, 0, false, err
			}
			if !closed {
				return nil, 0, false, &MalformedError{Offset: idx, Reason: "unmatched '('"}
			}
			nodes = append(nodes, Group(children...))
			pos = next
		case ')':
			if depth == 0 {
				return nil, 0, false, &MalformedError{Offset: idx, Reason: "unmatched ')'"}
			}
			return nodes, idx + 1, true, nil
		default:
			pos = idx + 1
		}
	}
	return nodes, pos, false, nil
}

// Unparse joins nodes back into a string, wrapping groups in parentheses
// and separating siblings with sep. It inverts ParseTree for strings that
// use single separators.
func Unparse(nodes []Node, sep string) string {
	var b strings.Builder
	writeNodes(&b, nodes, sep)
	return b.String()
}

func writeNodes(b *strings.Builder, nodes []Node, sep string) {
	for i, n := range nodes {
		if i > 0 {
			b.WriteString(sep)
		}
		if n.Group {
			b.WriteByte('(')
			writeNodes(b, n.Children, sep)
			b.WriteByte(')')
			continue
		}
		b.WriteString(n.Text)
	}
}

// Parse decodes a capability string such as
//
//	(prot(monitor)type(LCD)cmds(01 02 03 0C E3 F3)vcp(10 12 14(05 08)))
//
// The string must hold exactly one top-level group made of key(value)
// pairs. The values of "cmds" and "vcp" become code sets; every other
// value is flattened into a space-separated string. Trailing NUL bytes,
// which some displays pad the string with, are ignored.
func Parse(raw string) (*Capabilities, error) {
	tree, err := ParseTree(strings.TrimRight(raw, "\x00"), Separator)
	if err != nil {
		return nil, err
	}
	if len(tree) != 1 || !tree[0].Group {
		return nil, &MalformedError{Offset: -1, Reason: "unexpected data outside of capabilities root"}
	}

	c := &Capabilities{Fields: make(map[string]string)}
	seen := make(map[string]bool)
	pairs := tree[0].Children
	for i := 0; i < len(pairs); i += 2 {
		keyNode := pairs[i]
		if keyNode.Group {
			return nil, &MalformedError{Offset: -1, Reason: fmt.Sprintf("group %q has no key", "("+Unparse(keyNode.Children, Separator)+")")}
		}
		key := strings.TrimSpace(keyNode.Text)
		if i+1 >= len(pairs) || !pairs[i+1].Group {
			return nil, &MalformedError{Offset: -1, Reason: fmt.Sprintf("key %q has no value", key)}
		}
		if seen[key] {
			return nil, &MalformedError{Offset: -1, Reason: fmt.Sprintf("duplicate key %q", key)}
		}
		seen[key] = true
		c.Keys = append(c.Keys, key)

		value := pairs[i+1].Children
		switch key {
		case KeyCommands:
			if c.Commands, err = convertCodes(key, value); err != nil {
				return nil, err
			}
		case KeyVCP:
			if c.VCP, err = convertCodes(key, value); err != nil {
				return nil, err
			}
		default:
			c.Fields[key] = Unparse(value, Separator)
		}
	}

	return c, nil
}

// convertCodes turns a list of two-digit hex tokens, each optionally
// followed by a group of sub-values, into a CodeSet.
func convertCodes(key string, nodes []Node) (CodeSet, error) {
	set := make(CodeSet, len(nodes))
	var prev *byte
	for _, n := range nodes {
		if n.Group {
			if prev == nil {
				return nil, &OrphanedChildError{Key: key}
			}
			sub, err := convertCodes(key, n.Children)
			if err != nil {
				return nil, err
			}
			set[*prev] = sub
			prev = nil
			continue
		}

		code, err := strconv.ParseUint(n.Text, 16, 8)
		if err != nil {
			return nil, &MalformedError{Offset: -1, Reason: fmt.Sprintf("invalid code %q in %q", n.Text, key)}
		}
		c := byte(code)
		if _, ok := set[c]; !ok {
			set[c] = nil
		}
		prev = &c
	}
	return set, nil
}
