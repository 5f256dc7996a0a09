// Package engine wires the listener, rolling buffer, matcher and
// dispatcher into the expansion loop.
//
// All buffer mutation and matching happens on one consumer goroutine,
// processing each key event fully before the next, so no locking is
// needed across the tracking components. Dispatches run on the
// dispatcher's worker: keystrokes keep buffering while an expansion is
// being typed out, and further matches queue behind it.
package engine

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/emmertex/riskyexpand/internal/config"
	"github.com/emmertex/riskyexpand/internal/dispatch"
	"github.com/emmertex/riskyexpand/internal/key"
	"github.com/emmertex/riskyexpand/internal/listener"
	"github.com/emmertex/riskyexpand/internal/logging"
	"github.com/emmertex/riskyexpand/internal/track"
)

// drainTimeout bounds how long teardown waits for an in-flight
// dispatch to finish.
const drainTimeout = 5 * time.Second

// Config configures an Engine.
type Config struct {
	// TriggersPath and CommandsPath are the config files re-read on
	// reload.
	TriggersPath string
	CommandsPath string

	// WatchConfig enables live reload when the config files change.
	WatchConfig bool
}

// Engine is the process-wide expansion context: configuration store,
// rolling buffer and dispatcher, fed by a listener.
type Engine struct {
	config     Config
	store      *config.Store
	buffer     *track.Buffer
	dispatcher *dispatch.Dispatcher
	listener   listener.Listener
	watcher    *config.Watcher
	log        zerolog.Logger
}

// New creates an engine. The store must hold an initial snapshot.
func New(cfg Config, store *config.Store, lis listener.Listener, dispatcher *dispatch.Dispatcher) (*Engine, error) {
	e := &Engine{
		config:     cfg,
		store:      store,
		buffer:     track.NewBuffer(),
		dispatcher: dispatcher,
		listener:   lis,
		log:        logging.GetLogger("engine"),
	}

	if cfg.WatchConfig {
		w, err := config.NewWatcher(config.Dir(), []string{config.TriggersFile, config.CommandsFile}, func(string) {
			e.Reload()
		})
		if err != nil {
			return nil, err
		}
		e.watcher = w
	}

	return e, nil
}

// Run processes key events until ctx is cancelled or the listener
// stream ends, then tears down: listener detached, in-flight dispatch
// drained.
func (e *Engine) Run(ctx context.Context) error {
	e.dispatcher.Start()
	if e.watcher != nil {
		e.watcher.Start()
	}
	if err := e.listener.Start(ctx); err != nil {
		e.dispatcher.Stop()
		return err
	}

	snap := e.store.Current()
	e.log.Info().
		Int("triggers", snap.Matcher.Len()).
		Int("commands", snap.Commands.Len()).
		Msg("engine running")

	for {
		select {
		case ev, ok := <-e.listener.Events():
			if !ok {
				return e.shutdown()
			}
			e.processEvent(ev)
		case <-ctx.Done():
			return e.shutdown()
		}
	}
}

// Reload rebuilds the snapshot from the config files and swaps it in
// atomically. A dispatch already in flight keeps the snapshot it was
// submitted with.
func (e *Engine) Reload() {
	snap, err := config.Load(e.config.TriggersPath, e.config.CommandsPath)
	if err != nil {
		e.log.Error().Err(err).Msg("config reload failed, keeping previous config")
		return
	}
	e.store.Swap(snap)
	e.log.Info().
		Int("triggers", snap.Matcher.Len()).
		Int("commands", snap.Commands.Len()).
		Msg("config reloaded")
}

// processEvent applies one key event to the rolling buffer and checks
// for a trigger match. Only unmodified lowercase letters participate in
// matching; backspace edits the buffer; every other key clears it,
// since it either breaks the word or moves the cursor away from the
// text the buffer mirrors.
func (e *Engine) processEvent(ev key.Event) {
	switch {
	case ev.Key == key.KeyBackspace && !ev.IsModified():
		e.buffer.Backspace()

	case ev.IsRune() && !ev.IsModified() && isLowercase(ev.Rune):
		e.buffer.Append(ev.Rune)
		e.tryMatch()

	default:
		e.buffer.Clear()
	}
}

// tryMatch dispatches the longest trigger matching the buffer tail.
func (e *Engine) tryMatch() {
	snap := e.store.Current()

	match, ok := snap.Matcher.MatchTail(e.buffer)
	if !ok {
		return
	}
	segments, ok := snap.Segments(match.Trigger)
	if !ok {
		return
	}

	// Clear before dispatching so the erased text cannot re-match.
	e.buffer.Clear()
	e.log.Info().Str("trigger", match.Trigger).Int("erase", match.Length).Msg("trigger matched")

	err := e.dispatcher.Submit(dispatch.Request{
		Trigger:  match.Trigger,
		Segments: segments,
		Commands: snap.Commands,
	})
	if err != nil {
		if errors.Is(err, dispatch.ErrQueueFull) {
			e.log.Error().Str("trigger", match.Trigger).Msg("dispatch queue full, match dropped")
			return
		}
		e.log.Error().Err(err).Str("trigger", match.Trigger).Msg("dispatch rejected")
	}
}

func (e *Engine) shutdown() error {
	e.listener.Close()
	if e.watcher != nil {
		e.watcher.Stop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), drainTimeout)
	defer cancel()
	if err := e.dispatcher.WaitIdle(ctx); err != nil {
		e.log.Warn().Msg("shutting down with a dispatch still in flight")
	}
	e.dispatcher.Stop()

	e.log.Info().Msg("engine stopped")
	return nil
}

func isLowercase(r rune) bool {
	return r >= 'a' && r <= 'z'
}
