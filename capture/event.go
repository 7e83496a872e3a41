package capture

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Event is one captured DDC/CI frame or failed attempt.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// SessionID groups the events of one opened display (UUID).
	SessionID string `cbor:"2,keyasint"`

	// Direction indicates whether the frame was sent or received.
	Direction Direction `cbor:"3,keyasint"`

	// Op is the DDC/CI operation the frame belongs to.
	Op Op `cbor:"4,keyasint"`

	// Category classifies the event.
	Category Category `cbor:"5,keyasint"`

	// Attempt is the 1-based attempt number within the retry loop.
	Attempt int `cbor:"6,keyasint,omitempty"`

	// Frame holds the raw bytes, including the synthesized 0x6F on replies.
	Frame []byte `cbor:"7,keyasint,omitempty"`

	// Error is the failure message for CategoryError events.
	Error string `cbor:"8,keyasint,omitempty"`
}

// NewSessionID returns a fresh random session identifier.
func NewSessionID() string {
	return uuid.New().String()
}

// Direction indicates the direction of frame flow.
type Direction uint8

const (
	// DirectionIn indicates a frame read from the display.
	DirectionIn Direction = 0
	// DirectionOut indicates a frame written to the display.
	DirectionOut Direction = 1
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirectionIn:
		return "IN"
	case DirectionOut:
		return "OUT"
	default:
		return "UNKNOWN"
	}
}

// ParseDirection parses "in" or "out", case-insensitively.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(s) {
	case "in":
		return DirectionIn, nil
	case "out":
		return DirectionOut, nil
	}
	return 0, fmt.Errorf("unknown direction %q (want in or out)", s)
}

// Op identifies the DDC/CI operation.
type Op uint8

const (
	OpGetVCP       Op = 0
	OpSetVCP       Op = 1
	OpSaveSettings Op = 2
	OpCapabilities Op = 3
)

var opNames = []string{"get-vcp", "set-vcp", "save-settings", "capabilities"}

// String returns the operation name.
func (o Op) String() string {
	if int(o) < len(opNames) {
		return opNames[o]
	}
	return "unknown"
}

// ParseOp parses an operation name as returned by Op.String.
func ParseOp(s string) (Op, error) {
	for i, name := range opNames {
		if strings.EqualFold(s, name) {
			return Op(i), nil
		}
	}
	return 0, fmt.Errorf("unknown operation %q (want one of %s)", s, strings.Join(opNames, ", "))
}

// Category classifies the event type.
type Category uint8

const (
	// CategoryFrame indicates a frame that was written or read.
	CategoryFrame Category = 0
	// CategoryError indicates a failed attempt.
	CategoryError Category = 1
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryFrame:
		return "FRAME"
	case CategoryError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}
