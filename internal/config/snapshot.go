package config

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/emmertex/riskyexpand/internal/command"
	"github.com/emmertex/riskyexpand/internal/expansion"
	"github.com/emmertex/riskyexpand/internal/logging"
	"github.com/emmertex/riskyexpand/internal/track"
)

// ErrInvalidTrigger indicates a trigger key that is empty, contains
// anything but ASCII lowercase letters, or is longer than the rolling
// buffer capacity (it could never match).
var ErrInvalidTrigger = errors.New("invalid trigger")

// Snapshot is one immutable, fully validated configuration generation:
// raw triggers, the command registry, the compiled expansion cache and
// the matcher derived from it. Snapshots are never mutated after Build;
// reloads swap in a complete replacement.
type Snapshot struct {
	// Triggers maps trigger keys to raw expansion strings.
	Triggers map[string]string

	// Commands is the validated command registry.
	Commands *command.Registry

	// Compiled maps trigger keys to their compiled segment sequences.
	Compiled map[string][]expansion.Segment

	// Matcher matches buffer tails against the compiled trigger set.
	Matcher *track.Matcher
}

// Segments returns the compiled sequence for a trigger.
func (s *Snapshot) Segments(trigger string) ([]expansion.Segment, bool) {
	segs, ok := s.Compiled[trigger]
	return segs, ok
}

// Build validates raw trigger and command pairs into a Snapshot.
// Invalid entries are dropped with a warning and reported in errs;
// loading always produces a usable (possibly smaller) snapshot.
func Build(triggers, commands map[string]string) (*Snapshot, []error) {
	log := logging.GetLogger("config")

	registry, errs := command.Load(commands)

	valid := make(map[string]string, len(triggers))
	for trigger, raw := range triggers {
		if err := validateTrigger(trigger); err != nil {
			log.Warn().Str("trigger", trigger).Err(err).Msg("dropping invalid trigger")
			errs = append(errs, err)
			continue
		}
		valid[trigger] = raw
	}

	compiled, compileErrs := expansion.CompileAll(valid, registry)
	errs = append(errs, compileErrs...)

	keys := make([]string, 0, len(compiled))
	for k := range compiled {
		keys = append(keys, k)
	}

	return &Snapshot{
		Triggers: valid,
		Commands: registry,
		Compiled: compiled,
		Matcher:  track.NewMatcher(keys),
	}, errs
}

// Load reads the trigger and command files and builds a Snapshot.
func Load(triggersPath, commandsPath string) (*Snapshot, error) {
	triggers, err := ParseFile(triggersPath)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", triggersPath, err)
	}
	commands, err := ParseFile(commandsPath)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", commandsPath, err)
	}

	snapshot, errs := Build(triggers, commands)
	if len(errs) > 0 {
		logger := logging.GetLogger("config")
		logger.Warn().Int("dropped", len(errs)).Msg("some config entries were dropped")
	}
	return snapshot, nil
}

func validateTrigger(trigger string) error {
	if trigger == "" {
		return fmt.Errorf("%w: empty key", ErrInvalidTrigger)
	}
	if len(trigger) > track.Capacity {
		return fmt.Errorf("%w: %q exceeds buffer capacity %d", ErrInvalidTrigger, trigger, track.Capacity)
	}
	for _, r := range trigger {
		if r < 'a' || r > 'z' {
			return fmt.Errorf("%w: %q must be ASCII lowercase letters", ErrInvalidTrigger, trigger)
		}
	}
	return nil
}

// Store holds the current Snapshot and swaps it atomically on reload.
// Readers load the pointer once per event and keep using that snapshot
// for the whole operation, so a reload mid-dispatch is never observed
// as a partially updated config.
type Store struct {
	current atomic.Pointer[Snapshot]
}

// NewStore creates a store holding the given snapshot.
func NewStore(s *Snapshot) *Store {
	store := &Store{}
	store.current.Store(s)
	return store
}

// Current returns the active snapshot.
func (s *Store) Current() *Snapshot {
	return s.current.Load()
}

// Swap atomically replaces the active snapshot.
func (s *Store) Swap(next *Snapshot) {
	s.current.Store(next)
}
