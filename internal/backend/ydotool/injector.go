// Package ydotool implements the key-injection backend over the
// ydotool CLI, which talks to the root ydotoold daemon through its
// uinput virtual device.
package ydotool

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"

	evdev "github.com/holoplot/go-evdev"
	"github.com/rs/zerolog"

	"github.com/emmertex/riskyexpand/internal/key"
	"github.com/emmertex/riskyexpand/internal/logging"
)

// keyDelayMS is the delay ydotool inserts between key events. Pastes
// land unreliably in some clients without a small gap.
const keyDelayMS = 20

// Injector sends key events via the ydotool CLI.
type Injector struct {
	bin string
	log zerolog.Logger
}

// NewInjector creates an injector using the ydotool binary on PATH.
func NewInjector() *Injector {
	return &Injector{bin: "ydotool", log: logging.GetLogger("ydotool")}
}

// SendCombo presses the combo's keys in order and releases them in
// reverse, as one ydotool invocation.
func (in *Injector) SendCombo(ctx context.Context, combo key.Combo) error {
	codes, err := comboCodes(combo)
	if err != nil {
		return fmt.Errorf("combo %q: %w", combo, err)
	}

	args := []string{"key", "-d", strconv.Itoa(keyDelayMS)}
	for _, code := range codes {
		args = append(args, fmt.Sprintf("%d:1", code))
	}
	for i := len(codes) - 1; i >= 0; i-- {
		args = append(args, fmt.Sprintf("%d:0", codes[i]))
	}

	in.log.Debug().Str("combo", combo.String()).Msg("sending key combo")
	return in.run(ctx, args)
}

// SendBackspace issues count backspace press/release pairs as one
// ydotool invocation.
func (in *Injector) SendBackspace(ctx context.Context, count int) error {
	if count <= 0 {
		return nil
	}

	args := []string{"key"}
	press := fmt.Sprintf("%d:1", evdev.KEY_BACKSPACE)
	release := fmt.Sprintf("%d:0", evdev.KEY_BACKSPACE)
	for i := 0; i < count; i++ {
		args = append(args, press, release)
	}

	in.log.Debug().Int("count", count).Msg("sending backspaces")
	return in.run(ctx, args)
}

func (in *Injector) run(ctx context.Context, args []string) error {
	cmd := exec.CommandContext(ctx, in.bin, args...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		// Surface the context error so callers can tell a timeout
		// from a failing binary.
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("%s %s: %w", in.bin, args[0], ctxErr)
		}
		return fmt.Errorf("%s %s: %w: %s", in.bin, args[0], err, out)
	}
	return nil
}

// DaemonRunning reports whether the ydotoold daemon is running.
// ydotool silently does nothing without it, so this is checked at
// startup rather than discovered through missing output.
func DaemonRunning(ctx context.Context) bool {
	err := exec.CommandContext(ctx, "pgrep", "-x", "ydotoold").Run()
	return err == nil
}
