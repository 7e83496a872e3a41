package ddc

import "time"

// Progress reports how far a capability read has got.
// Passed to ProgressCallback after every non-empty page.
type Progress struct {
	// Page is the 1-based number of the page just read
	Page int

	// Offset is the number of capability bytes received so far
	Offset int

	// ElapsedTime is the time since the first request
	ElapsedTime time.Duration
}

// ProgressCallback is called for each capability page. Capability strings
// take a second or more to read on slow bridges.
//
// Example:
//
//	client := ddc.New(device,
//	    ddc.WithProgressCallback(func(p ddc.Progress) {
//	        fmt.Printf("page %d, %d bytes\n", p.Page, p.Offset)
//	    }),
//	)
type ProgressCallback func(Progress)
