package caps

import "fmt"

// MalformedError indicates a capability string that does not have the
// expected structure: unbalanced parentheses, data outside the root
// group, a key without a value, a repeated key or a bad hex code.
type MalformedError struct {
	// Offset is the byte position the problem was found at, or -1 if the
	// problem is not tied to one position
	Offset int

	Reason string
}

func (e *MalformedError) Error() string {
	if e.Offset < 0 {
		return fmt.Sprintf("malformed capabilities: %s", e.Reason)
	}
	return fmt.Sprintf("malformed capabilities at offset %d: %s", e.Offset, e.Reason)
}

// OrphanedChildError indicates a group under "cmds" or "vcp" that does not
// follow a code, as in "vcp((01 02))".
type OrphanedChildError struct {
	Key string
}

func (e *OrphanedChildError) Error() string {
	return fmt.Sprintf("discovered child without context in %q", e.Key)
}
