package ddc

import "fmt"

// TransportError indicates that the underlying device failed to read or
// write. It is retried.
type TransportError struct {
	// Op is "read" or "write"
	Op string

	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// RetriesExhaustedError is returned when every attempt of an exchange
// failed. Err is the error of the last attempt.
type RetriesExhaustedError struct {
	Operation string
	Attempts  int
	Err       error
}

func (e *RetriesExhaustedError) Error() string {
	return fmt.Sprintf("%s failed after %d attempts: %v", e.Operation, e.Attempts, e.Err)
}

func (e *RetriesExhaustedError) Unwrap() error {
	return e.Err
}
