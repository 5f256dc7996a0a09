package dispatch

import (
	"errors"
	"fmt"
)

// Dispatch errors.
var (
	// ErrBackendTimeout indicates a backend call exceeded the
	// per-call timeout.
	ErrBackendTimeout = errors.New("backend call timed out")

	// ErrBackendUnavailable indicates a backend call failed outright.
	ErrBackendUnavailable = errors.New("backend unavailable")

	// ErrQueueFull indicates the pending-dispatch queue is full; the
	// match is dropped rather than blocking the keystroke loop.
	ErrQueueFull = errors.New("dispatch queue full")

	// ErrStopped indicates the dispatcher has been stopped.
	ErrStopped = errors.New("dispatcher stopped")
)

// Error reports a failed dispatch. Completed counts the segments fully
// executed before the failure; the erased trigger and those segments
// are already visible on screen, which is why a dispatch is never
// retried automatically.
type Error struct {
	// Trigger is the matched trigger being expanded.
	Trigger string

	// Completed is the number of segments fully executed.
	Completed int

	// Err is the underlying backend error.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("dispatch of %q failed after %d segments: %v", e.Trigger, e.Completed, e.Err)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}
