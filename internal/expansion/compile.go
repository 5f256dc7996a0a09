package expansion

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/emmertex/riskyexpand/internal/command"
	"github.com/emmertex/riskyexpand/internal/logging"
)

// Compilation errors.
var (
	// ErrMalformed indicates an odd number of backticks: every
	// command reference must be a matched backtick pair.
	ErrMalformed = errors.New("malformed expansion")

	// ErrUnknownCommand indicates a backtick token that names no
	// registered command. Caught at load time so a bad reference
	// never reaches live typing.
	ErrUnknownCommand = errors.New("unknown command reference")
)

// Compile parses a raw expansion string into an ordered segment
// sequence, resolving command references against the registry.
// Compilation is deterministic and pure: the same input always yields
// the same sequence.
func Compile(raw string, registry *command.Registry) ([]Segment, error) {
	if strings.Count(raw, "`")%2 != 0 {
		return nil, fmt.Errorf("%w: odd number of backticks in %q", ErrMalformed, raw)
	}

	// Splitting on the delimiter leaves literal text at even indexes
	// and backtick-enclosed tokens at odd indexes.
	parts := strings.Split(raw, "`")

	segments := make([]Segment, 0, len(parts))
	for i, part := range parts {
		if i%2 == 0 {
			if part == "" {
				continue
			}
			segments = append(segments, Literal(part))
			continue
		}

		if !registry.Has(part) {
			return nil, fmt.Errorf("%w: %q in %q", ErrUnknownCommand, part, raw)
		}
		segments = append(segments, Command(part))
	}

	return segments, nil
}

// CompileAll builds the trigger → compiled-segments cache for a full
// trigger set. Entries that fail to compile are dropped with a warning
// and reported in errs; the rest of the set still loads.
func CompileAll(triggers map[string]string, registry *command.Registry) (map[string][]Segment, []error) {
	log := logging.GetLogger("expansion")

	keys := make([]string, 0, len(triggers))
	for k := range triggers {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	compiled := make(map[string][]Segment, len(triggers))
	var errs []error

	for _, trigger := range keys {
		segments, err := Compile(triggers[trigger], registry)
		if err != nil {
			log.Warn().Str("trigger", trigger).Err(err).Msg("dropping trigger with uncompilable expansion")
			errs = append(errs, fmt.Errorf("trigger %q: %w", trigger, err))
			continue
		}
		compiled[trigger] = segments
	}

	return compiled, errs
}
