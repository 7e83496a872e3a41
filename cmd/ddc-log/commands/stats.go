package commands

import (
	"fmt"
	"io"

	"github.com/moffa90/go-ddcci/capture"
)

// RunStats summarizes the capture file at path.
func RunStats(path string, w io.Writer) error {
	reader, err := capture.NewReader(path)
	if err != nil {
		return fmt.Errorf("failed to open capture file: %w", err)
	}
	defer reader.Close()

	stats, err := capture.Collect(reader)
	if err != nil {
		return fmt.Errorf("failed to read event: %w", err)
	}

	fmt.Fprintf(w, "Events:   %d\n", stats.Events)
	fmt.Fprintf(w, "Sessions: %d\n", stats.Sessions)
	fmt.Fprintf(w, "Sent:     %d\n", stats.Sent)
	fmt.Fprintf(w, "Received: %d\n", stats.Received)
	fmt.Fprintf(w, "Failures: %d\n", stats.Failures)

	if stats.Events == 0 {
		return nil
	}

	fmt.Fprintln(w, "\nBy operation:")
	for _, op := range stats.Ops() {
		fmt.Fprintf(w, "  %-13s %d\n", op.String()+":", stats.ByOp[op])
	}

	fmt.Fprintf(w, "\nTime range: %s .. %s (%s)\n",
		stats.First.UTC().Format("2006-01-02T15:04:05.000Z"),
		stats.Last.UTC().Format("2006-01-02T15:04:05.000Z"),
		stats.Last.Sub(stats.First))
	return nil
}
