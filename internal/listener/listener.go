// Package listener produces the ordered key-down event stream the
// engine consumes. The evdev implementation reads a keyboard device
// directly; the terminal subpackage provides a rootless alternative.
package listener

import (
	"context"

	"github.com/emmertex/riskyexpand/internal/key"
)

// Listener produces an ordered stream of key-down events.
type Listener interface {
	// Start begins producing events. It returns once the stream is
	// running; events are delivered on Events until Close.
	Start(ctx context.Context) error

	// Events returns the event stream. The channel is closed when the
	// listener stops.
	Events() <-chan key.Event

	// Close stops the listener and releases its device.
	Close() error
}
