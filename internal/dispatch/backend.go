package dispatch

import (
	"context"

	"github.com/emmertex/riskyexpand/internal/key"
)

// Clipboard is the clipboard output backend.
type Clipboard interface {
	// Set replaces the clipboard contents. It must not return until
	// the write is confirmed; a second Set racing an unfinished one
	// would corrupt the pasted content.
	Set(ctx context.Context, text string) error

	// Paste issues the platform paste shortcut.
	Paste(ctx context.Context) error
}

// Injector is the key-injection output backend.
type Injector interface {
	// SendCombo presses and releases a key combination.
	SendCombo(ctx context.Context, combo key.Combo) error

	// SendBackspace issues count backspace key events.
	SendBackspace(ctx context.Context, count int) error
}
