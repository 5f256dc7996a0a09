package listener

import (
	"context"
	"fmt"
	"sync"

	evdev "github.com/holoplot/go-evdev"
	"github.com/rs/zerolog"

	"github.com/emmertex/riskyexpand/internal/key"
	"github.com/emmertex/riskyexpand/internal/logging"
)

// evdev event values for EV_KEY.
const (
	keyRelease = 0
	keyPress   = 1
)

// Evdev reads key events directly from a keyboard input device. It
// tracks modifier state itself so each emitted event carries the
// modifiers held at press time.
type Evdev struct {
	path   string
	device *evdev.InputDevice
	events chan key.Event
	mods   key.Modifier
	log    zerolog.Logger

	closeOnce sync.Once
	closed    chan struct{}
}

// NewEvdev creates a listener for the given device path. When path is
// empty the keyboard is auto-detected.
func NewEvdev(path string, queueSize int) (*Evdev, error) {
	log := logging.GetLogger("listener")

	if path == "" {
		dev, err := FindKeyboard()
		if err != nil {
			return nil, err
		}
		log.Info().Str("device", dev.Name).Str("path", dev.Path).Msg("auto-selected keyboard")
		path = dev.Path
	}

	device, err := evdev.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}

	return &Evdev{
		path:   path,
		device: device,
		events: make(chan key.Event, queueSize),
		log:    log,
		closed: make(chan struct{}),
	}, nil
}

// Start begins the read loop in a background goroutine.
func (l *Evdev) Start(ctx context.Context) error {
	go l.readLoop(ctx)
	return nil
}

// Events returns the ordered key-down event stream.
func (l *Evdev) Events() <-chan key.Event {
	return l.events
}

// Close stops the read loop by closing the device.
func (l *Evdev) Close() error {
	var err error
	l.closeOnce.Do(func() {
		close(l.closed)
		err = l.device.Close()
	})
	return err
}

func (l *Evdev) readLoop(ctx context.Context) {
	defer close(l.events)

	for {
		ev, err := l.device.ReadOne()
		if err != nil {
			select {
			case <-l.closed:
				// Normal shutdown: Close interrupted the read.
			default:
				l.log.Error().Err(err).Str("path", l.path).Msg("device read failed")
			}
			return
		}

		if ev.Type != evdev.EV_KEY {
			continue
		}

		if mod, ok := modifierMap[ev.Code]; ok {
			switch ev.Value {
			case keyPress:
				l.mods = l.mods.With(mod)
			case keyRelease:
				l.mods &^= mod
			}
			continue
		}

		if ev.Value != keyPress {
			continue
		}

		event, ok := l.translate(ev.Code)
		if !ok {
			// Unknown keys still matter to the engine: they
			// invalidate the rolling buffer.
			event = key.NewSpecialEvent(key.KeyNone, l.mods)
		}

		// Block rather than drop so the stream stays complete and
		// ordered; the kernel buffers the device side.
		select {
		case l.events <- event:
		case <-ctx.Done():
			return
		case <-l.closed:
			return
		}
	}
}

// translate resolves a pressed key code to an event under the current
// modifier state.
func (l *Evdev) translate(code evdev.EvCode) (key.Event, bool) {
	if pair, ok := runeMap[code]; ok {
		r := pair.lower
		if l.mods.Has(key.ModShift) {
			r = pair.shifted
		}
		return key.NewRuneEvent(r, l.mods), true
	}
	if special, ok := specialMap[code]; ok {
		return key.NewSpecialEvent(special, l.mods), true
	}
	return key.Event{}, false
}
