// Package wlclip implements the clipboard backend over wl-copy, the
// Wayland clipboard utility. Pasting is done by injecting the platform
// paste shortcut, since Wayland offers no way to paste on behalf of
// another client.
package wlclip

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/emmertex/riskyexpand/internal/key"
	"github.com/emmertex/riskyexpand/internal/logging"
)

// settleDelay gives the compositor time to register new clipboard
// contents before the paste shortcut fires.
const settleDelay = 70 * time.Millisecond

// ComboSender injects a key combination; satisfied by the ydotool
// Injector.
type ComboSender interface {
	SendCombo(ctx context.Context, combo key.Combo) error
}

// pasteCombo is the platform paste shortcut.
var pasteCombo = key.Combo{Modifiers: key.ModCtrl, Key: key.KeyRune, Rune: 'v'}

// Clipboard sets clipboard contents via wl-copy and pastes via an
// injected ctrl+v.
type Clipboard struct {
	bin    string
	sender ComboSender
	log    zerolog.Logger
}

// New creates a clipboard backend using the wl-copy binary on PATH.
func New(sender ComboSender) *Clipboard {
	return &Clipboard{bin: "wl-copy", sender: sender, log: logging.GetLogger("wlclip")}
}

// Set replaces the clipboard contents. The text is fed on stdin so no
// shell quoting can mangle it, and -n keeps a trailing newline from
// being appended to every paste.
func (c *Clipboard) Set(ctx context.Context, text string) error {
	cmd := exec.CommandContext(ctx, c.bin, "-n")
	cmd.Stdin = strings.NewReader(text)

	out, err := cmd.CombinedOutput()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("%s: %w", c.bin, ctxErr)
		}
		return fmt.Errorf("%s: %w: %s", c.bin, err, out)
	}

	c.log.Debug().Int("bytes", len(text)).Msg("clipboard set")

	// Confirm the write has settled before the caller may paste.
	select {
	case <-time.After(settleDelay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Paste issues the paste shortcut through the injector.
func (c *Clipboard) Paste(ctx context.Context) error {
	return c.sender.SendCombo(ctx, pasteCombo)
}
