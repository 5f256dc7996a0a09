package dispatch

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/emmertex/riskyexpand/internal/command"
	"github.com/emmertex/riskyexpand/internal/expansion"
	"github.com/emmertex/riskyexpand/internal/logging"
)

// State is the dispatcher state.
type State int32

const (
	// StateIdle means no dispatch is in flight.
	StateIdle State = iota

	// StateDispatching means a dispatch is executing. At most one
	// dispatch is in this state at any time.
	StateDispatching
)

// String returns the state name.
func (s State) String() string {
	if s == StateDispatching {
		return "dispatching"
	}
	return "idle"
}

// Request is one matched expansion to execute. Segments and Commands
// come from the same config snapshot, so command resolution cannot fail
// at dispatch time even if the config has been reloaded since.
type Request struct {
	// Trigger is the matched trigger text to erase.
	Trigger string

	// Segments is the compiled expansion to execute.
	Segments []expansion.Segment

	// Commands resolves command segments to key combos.
	Commands *command.Registry
}

// Config configures a Dispatcher.
type Config struct {
	// CallTimeout bounds each individual backend call.
	CallTimeout time.Duration

	// QueueSize bounds how many requests may wait while one executes.
	QueueSize int
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() Config {
	return Config{
		CallTimeout: 3 * time.Second,
		QueueSize:   8,
	}
}

// Dispatcher executes requests one at a time on a single worker.
type Dispatcher struct {
	clipboard Clipboard
	injector  Injector
	config    Config
	log       zerolog.Logger

	queue chan Request
	done  chan struct{}
	wg    sync.WaitGroup

	mu      sync.Mutex
	cond    *sync.Cond
	state   State
	pending int
	stopped bool
}

// New creates a dispatcher over the given backends.
func New(clipboard Clipboard, injector Injector, config Config) *Dispatcher {
	if config.CallTimeout <= 0 {
		config.CallTimeout = DefaultConfig().CallTimeout
	}
	if config.QueueSize <= 0 {
		config.QueueSize = DefaultConfig().QueueSize
	}

	d := &Dispatcher{
		clipboard: clipboard,
		injector:  injector,
		config:    config,
		log:       logging.GetLogger("dispatch"),
		queue:     make(chan Request, config.QueueSize),
		done:      make(chan struct{}),
	}
	d.cond = sync.NewCond(&d.mu)
	return d
}

// Start launches the worker goroutine.
func (d *Dispatcher) Start() {
	d.wg.Add(1)
	go d.worker()
}

// Stop finishes the in-flight dispatch, drops anything still queued,
// and waits for the worker to exit.
func (d *Dispatcher) Stop() {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return
	}
	d.stopped = true
	d.mu.Unlock()

	close(d.done)
	d.wg.Wait()

	// Anything left in the queue will never run.
	for {
		select {
		case req := <-d.queue:
			d.log.Warn().Str("trigger", req.Trigger).Msg("dropping queued dispatch on shutdown")
			d.finish()
		default:
			return
		}
	}
}

// Submit queues a request. It never blocks: while a dispatch is in
// flight the request waits its turn, and when the queue is full the
// match is dropped with ErrQueueFull.
func (d *Dispatcher) Submit(req Request) error {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return ErrStopped
	}
	d.pending++
	d.mu.Unlock()

	select {
	case d.queue <- req:
		return nil
	default:
		d.finish()
		return ErrQueueFull
	}
}

// State returns the current dispatcher state.
func (d *Dispatcher) State() State {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

// WaitIdle blocks until no dispatch is in flight or queued, or until
// ctx is done.
func (d *Dispatcher) WaitIdle(ctx context.Context) error {
	idle := make(chan struct{})
	go func() {
		d.mu.Lock()
		for d.pending > 0 {
			d.cond.Wait()
		}
		d.mu.Unlock()
		close(idle)
	}()

	select {
	case <-idle:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (d *Dispatcher) worker() {
	defer d.wg.Done()

	for {
		select {
		case req := <-d.queue:
			if err := d.execute(req); err != nil {
				d.log.Error().Err(err).Str("trigger", req.Trigger).Msg("dispatch failed")
			}
			d.finish()
		case <-d.done:
			return
		}
	}
}

// finish decrements the pending count and wakes WaitIdle waiters.
func (d *Dispatcher) finish() {
	d.mu.Lock()
	d.pending--
	d.cond.Broadcast()
	d.mu.Unlock()
}

// execute runs one dispatch: erase the trigger, then the segments in
// order, each backend call confirmed complete before the next begins.
func (d *Dispatcher) execute(req Request) error {
	id := uuid.NewString()
	log := d.log.With().Str("dispatch", id).Str("trigger", req.Trigger).Logger()

	d.setState(StateDispatching)
	defer d.setState(StateIdle)

	start := time.Now()
	log.Debug().Int("segments", len(req.Segments)).Msg("dispatch started")

	// The typed trigger must be fully erased before any output so
	// deletions never interleave with inserted content.
	if err := d.call(func(ctx context.Context) error {
		return d.injector.SendBackspace(ctx, len([]rune(req.Trigger)))
	}); err != nil {
		return &Error{Trigger: req.Trigger, Completed: 0, Err: err}
	}

	for i, seg := range req.Segments {
		if err := d.executeSegment(req, seg); err != nil {
			return &Error{Trigger: req.Trigger, Completed: i, Err: err}
		}
	}

	log.Debug().Dur("elapsed", time.Since(start)).Msg("dispatch complete")
	return nil
}

func (d *Dispatcher) executeSegment(req Request, seg expansion.Segment) error {
	switch seg.Kind {
	case expansion.KindCommand:
		combo, err := req.Commands.Lookup(seg.Value)
		if err != nil {
			// Compilation guarantees the name resolves against the
			// snapshot this request was built from.
			return err
		}
		return d.call(func(ctx context.Context) error {
			return d.injector.SendCombo(ctx, combo)
		})

	default:
		if err := d.call(func(ctx context.Context) error {
			return d.clipboard.Set(ctx, seg.Value)
		}); err != nil {
			return err
		}
		return d.call(func(ctx context.Context) error {
			return d.clipboard.Paste(ctx)
		})
	}
}

// call runs one backend call under the per-call timeout and classifies
// the failure.
func (d *Dispatcher) call(fn func(ctx context.Context) error) error {
	ctx, cancel := context.WithTimeout(context.Background(), d.config.CallTimeout)
	defer cancel()

	err := fn(ctx)
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %w", ErrBackendTimeout, err)
	}
	return fmt.Errorf("%w: %w", ErrBackendUnavailable, err)
}

func (d *Dispatcher) setState(s State) {
	d.mu.Lock()
	d.state = s
	d.mu.Unlock()
}
