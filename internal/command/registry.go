// Package command validates and stores name → key-combination bindings
// invocable from expansions via backtick syntax.
package command

import (
	"errors"
	"fmt"
	"sort"

	"github.com/emmertex/riskyexpand/internal/key"
	"github.com/emmertex/riskyexpand/internal/logging"
)

// Validation errors for command bindings.
var (
	// ErrInvalidName indicates a command name of length <= 2. Short
	// names are rejected so a stray backtick pair cannot silently
	// shadow common words.
	ErrInvalidName = errors.New("invalid command name")

	// ErrInvalidCombo indicates a combo string that does not parse.
	ErrInvalidCombo = errors.New("invalid key combo")

	// ErrNotFound indicates a lookup for an unregistered command.
	ErrNotFound = errors.New("command not found")
)

// minNameLength is the exclusive lower bound on command name length.
const minNameLength = 2

// Registry holds validated command bindings. A Registry is immutable
// once built; config reloads build a fresh one.
type Registry struct {
	bindings map[string]key.Combo
}

// Load builds a registry from raw name → combo-string pairs. Invalid
// entries are dropped with a warning and reported in errs; one bad
// binding never prevents the rest from loading.
func Load(pairs map[string]string) (*Registry, []error) {
	log := logging.GetLogger("command")

	r := &Registry{bindings: make(map[string]key.Combo, len(pairs))}
	var errs []error

	// Deterministic load order keeps warnings stable across runs.
	names := make([]string, 0, len(pairs))
	for name := range pairs {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		spec := pairs[name]

		if len(name) <= minNameLength {
			err := fmt.Errorf("%w: %q is too short (minimum %d characters)", ErrInvalidName, name, minNameLength+1)
			log.Warn().Str("command", name).Msg("dropping command with too-short name")
			errs = append(errs, err)
			continue
		}

		combo, err := key.ParseCombo(spec)
		if err != nil {
			err = fmt.Errorf("%w: command %q: %v", ErrInvalidCombo, name, err)
			log.Warn().Str("command", name).Str("combo", spec).Msg("dropping command with malformed combo")
			errs = append(errs, err)
			continue
		}

		r.bindings[name] = combo
	}

	return r, errs
}

// Lookup returns the key combo bound to a command name.
func (r *Registry) Lookup(name string) (key.Combo, error) {
	combo, ok := r.bindings[name]
	if !ok {
		return key.Combo{}, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return combo, nil
}

// Has returns true if a command name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.bindings[name]
	return ok
}

// Len returns the number of registered commands.
func (r *Registry) Len() int {
	return len(r.bindings)
}

// Names returns the registered command names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.bindings))
	for name := range r.bindings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
