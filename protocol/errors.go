package protocol

import (
	"errors"
	"fmt"
)

// ErrNullMessage is returned when the display answers with the NULL message
// (6F 6E 80 BE), meaning it had no data to send.
var ErrNullMessage = errors.New("received NULL message")

// InvalidControlCodeError indicates a VCP code outside 0..255.
// It is raised before any I/O and is never retried.
type InvalidControlCodeError struct {
	Code int
}

func (e *InvalidControlCodeError) Error() string {
	return fmt.Sprintf("invalid VCP control code %d: must be 0..%d", e.Code, MaxControlCode)
}

// ChecksumError indicates a received message whose checksum does not verify.
type ChecksumError struct {
	// Message is the raw message, starting at the synthesized destination byte
	Message []byte

	// Residue is the non-zero XOR of the message against the virtual host address
	Residue byte
}

func (e *ChecksumError) Error() string {
	return fmt.Sprintf("bad checksum (residue 0x%02X) in % X", e.Residue, e.Message)
}

// UnexpectedReplyError indicates a reply with the wrong source address,
// opcode, echoed VCP code, or length.
type UnexpectedReplyError struct {
	// Operation is the request the reply belongs to
	Operation string

	// Reason describes what did not match
	Reason string
}

func (e *UnexpectedReplyError) Error() string {
	return fmt.Sprintf("%s: unexpected reply: %s", e.Operation, e.Reason)
}

// UnsupportedCodeError indicates the display answered a Get VCP Feature
// request with the "unsupported VCP code" result.
type UnsupportedCodeError struct {
	Code byte
}

func (e *UnsupportedCodeError) Error() string {
	return fmt.Sprintf("display does not recognize VCP 0x%02X", e.Code)
}

// IsRetryable reports whether err is a transient condition that a fresh
// attempt may clear.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	var invalid *InvalidControlCodeError
	if errors.As(err, &invalid) {
		return false
	}
	var unsupported *UnsupportedCodeError
	return !errors.As(err, &unsupported)
}
