// Package terminal provides a tcell-backed listener so the engine can
// be exercised interactively in a terminal without root access to
// /dev/input. Expansions are still dispatched through the real
// backends; only the keystroke source differs.
package terminal

import (
	"context"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/emmertex/riskyexpand/internal/key"
	"github.com/emmertex/riskyexpand/internal/logging"
)

// Listener reads key events from the controlling terminal. Ctrl+C ends
// the stream.
type Listener struct {
	screen tcell.Screen
	events chan key.Event

	closeOnce sync.Once
	closed    chan struct{}
}

// New creates a terminal listener.
func New(queueSize int) (*Listener, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	return &Listener{
		screen: screen,
		events: make(chan key.Event, queueSize),
		closed: make(chan struct{}),
	}, nil
}

// Start begins polling terminal events in a background goroutine.
func (l *Listener) Start(ctx context.Context) error {
	l.drawBanner()
	go l.pollLoop(ctx)
	return nil
}

// Events returns the key event stream.
func (l *Listener) Events() <-chan key.Event {
	return l.events
}

// Close stops polling and restores the terminal.
func (l *Listener) Close() error {
	l.closeOnce.Do(func() {
		close(l.closed)
		l.screen.Fini()
	})
	return nil
}

func (l *Listener) drawBanner() {
	msg := "riskyexpand terminal mode - type here, Ctrl+C to quit"
	for i, r := range msg {
		l.screen.SetContent(i, 0, r, nil, tcell.StyleDefault)
	}
	l.screen.Show()
}

func (l *Listener) pollLoop(ctx context.Context) {
	defer close(l.events)
	log := logging.GetLogger("terminal")

	for {
		ev := l.screen.PollEvent()
		if ev == nil {
			return
		}

		keyEv, ok := ev.(*tcell.EventKey)
		if !ok {
			continue
		}

		if keyEv.Key() == tcell.KeyCtrlC {
			log.Info().Msg("terminal listener interrupted")
			return
		}

		select {
		case l.events <- translate(keyEv):
		case <-ctx.Done():
			return
		case <-l.closed:
			return
		}
	}
}

// translate maps a tcell key event to the engine's event type.
func translate(ev *tcell.EventKey) key.Event {
	mods := key.ModNone
	if ev.Modifiers()&tcell.ModCtrl != 0 {
		mods = mods.With(key.ModCtrl)
	}
	if ev.Modifiers()&tcell.ModAlt != 0 {
		mods = mods.With(key.ModAlt)
	}
	if ev.Modifiers()&tcell.ModShift != 0 {
		mods = mods.With(key.ModShift)
	}
	if ev.Modifiers()&tcell.ModMeta != 0 {
		mods = mods.With(key.ModSuper)
	}

	switch ev.Key() {
	case tcell.KeyRune:
		return key.NewRuneEvent(ev.Rune(), mods)
	case tcell.KeyEnter:
		return key.NewSpecialEvent(key.KeyEnter, mods)
	case tcell.KeyTab:
		return key.NewSpecialEvent(key.KeyTab, mods)
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return key.NewSpecialEvent(key.KeyBackspace, mods)
	case tcell.KeyDelete:
		return key.NewSpecialEvent(key.KeyDelete, mods)
	case tcell.KeyEscape:
		return key.NewSpecialEvent(key.KeyEscape, mods)
	default:
		return key.NewSpecialEvent(key.KeyNone, mods)
	}
}
