package capture

import (
	"errors"
	"io"
	"os"
	"sort"
	"time"

	"github.com/fxamacker/cbor/v2"
)

// Filter specifies criteria for filtering events.
// Empty/nil fields match all events for that criterion.
type Filter struct {
	SessionID string
	Direction *Direction
	Op        *Op
	Category  *Category

	// TimeStart matches events at or after this time.
	TimeStart *time.Time

	// TimeEnd matches events before this time.
	TimeEnd *time.Time
}

// Matches reports whether the event satisfies every criterion.
func (f *Filter) Matches(event Event) bool {
	if f.SessionID != "" && event.SessionID != f.SessionID {
		return false
	}
	if f.Direction != nil && event.Direction != *f.Direction {
		return false
	}
	if f.Op != nil && event.Op != *f.Op {
		return false
	}
	if f.Category != nil && event.Category != *f.Category {
		return false
	}
	if f.TimeStart != nil && event.Timestamp.Before(*f.TimeStart) {
		return false
	}
	if f.TimeEnd != nil && !event.Timestamp.Before(*f.TimeEnd) {
		return false
	}
	return true
}

// Reader streams events from a capture file.
type Reader struct {
	closer  io.Closer
	decoder *cbor.Decoder
	filter  Filter
}

// NewReader opens a capture file and reads all events.
func NewReader(path string) (*Reader, error) {
	return NewFilteredReader(path, Filter{})
}

// NewFilteredReader opens a capture file and reads the events matching
// filter.
func NewFilteredReader(path string, filter Filter) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return &Reader{
		closer:  f,
		decoder: NewDecoder(f),
		filter:  filter,
	}, nil
}

// Next returns the next matching event, or io.EOF at the end of the file.
func (r *Reader) Next() (Event, error) {
	for {
		var event Event
		if err := r.decoder.Decode(&event); err != nil {
			if errors.Is(err, io.EOF) {
				return Event{}, io.EOF
			}
			return Event{}, err
		}
		if r.filter.Matches(event) {
			return event, nil
		}
	}
}

// Close closes the underlying file.
func (r *Reader) Close() error {
	return r.closer.Close()
}

// Stats summarizes a set of events.
type Stats struct {
	Events   int
	Sessions int
	Sent     int
	Received int
	Failures int

	// ByOp counts frames and failures per operation.
	ByOp map[Op]int

	First time.Time
	Last  time.Time
}

// Ops returns the operations seen, in Op order.
func (s *Stats) Ops() []Op {
	ops := make([]Op, 0, len(s.ByOp))
	for op := range s.ByOp {
		ops = append(ops, op)
	}
	sort.Slice(ops, func(i, j int) bool { return ops[i] < ops[j] })
	return ops
}

// Collect reads every remaining event from r and summarizes them.
func Collect(r *Reader) (*Stats, error) {
	s := &Stats{ByOp: make(map[Op]int)}
	sessions := make(map[string]bool)
	for {
		event, err := r.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return s, err
		}

		s.Events++
		sessions[event.SessionID] = true
		s.ByOp[event.Op]++
		switch {
		case event.Category == CategoryError:
			s.Failures++
		case event.Direction == DirectionOut:
			s.Sent++
		default:
			s.Received++
		}
		if s.First.IsZero() || event.Timestamp.Before(s.First) {
			s.First = event.Timestamp
		}
		if event.Timestamp.After(s.Last) {
			s.Last = event.Timestamp
		}
	}
	s.Sessions = len(sessions)
	return s, nil
}
