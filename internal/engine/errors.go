package engine

import "fmt"

// OutOfSyncResponseError indicates a response's counter did not match the
// counter stamped into its request — the device and host have lost sync.
type OutOfSyncResponseError struct {
	Expected byte
	Actual   byte
}

func (e *OutOfSyncResponseError) Error() string {
	return fmt.Sprintf("out of sync response: expected counter %d, got %d", e.Expected, e.Actual)
}

// TimeoutError is raised when a read exhausts its bounded zero-byte-read
// retry budget without producing data.
type TimeoutError struct {
	Retries int
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("timeout after %d retries", e.Retries)
}
