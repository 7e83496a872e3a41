// Package commands implements the ddc-log CLI commands.
package commands

import (
	"errors"
	"fmt"
	"io"

	"github.com/moffa90/go-ddcci/capture"
)

// ViewFilter holds the flag values of the view command. Empty fields
// match every event.
type ViewFilter struct {
	Op        string
	Direction string
	SessionID string
}

// Build converts the flag values into a capture.Filter.
func (v ViewFilter) Build() (capture.Filter, error) {
	f := capture.Filter{SessionID: v.SessionID}
	if v.Op != "" {
		op, err := capture.ParseOp(v.Op)
		if err != nil {
			return f, err
		}
		f.Op = &op
	}
	if v.Direction != "" {
		d, err := capture.ParseDirection(v.Direction)
		if err != nil {
			return f, err
		}
		f.Direction = &d
	}
	return f, nil
}

// RunView prints every event of the capture file at path matching filter.
func RunView(path string, filter ViewFilter, w io.Writer) error {
	f, err := filter.Build()
	if err != nil {
		return err
	}

	reader, err := capture.NewFilteredReader(path, f)
	if err != nil {
		return fmt.Errorf("failed to open capture file: %w", err)
	}
	defer reader.Close()

	for {
		event, err := reader.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		formatEvent(w, event)
	}
}

// formatEvent writes one line per event:
// timestamp [session] DIR op #attempt frame-or-error
func formatEvent(w io.Writer, event capture.Event) {
	ts := event.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z")
	fmt.Fprintf(w, "%s [%s] %-3s %-13s #%d ", ts, shortenSessionID(event.SessionID),
		event.Direction, event.Op, event.Attempt)

	if event.Category == capture.CategoryError {
		fmt.Fprintf(w, "ERROR %s\n", event.Error)
		return
	}
	fmt.Fprintf(w, "% X\n", event.Frame)
}

// shortenSessionID returns the first 8 characters of the session ID.
func shortenSessionID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}
