package track

import "sort"

// Match describes an accepted trigger match. Length is the exact count
// of source characters to erase, independent of the replacement.
type Match struct {
	// Trigger is the matched trigger key.
	Trigger string

	// Length is the number of typed characters the trigger covers.
	Length int
}

// Matcher detects when the buffer's tail equals a configured trigger.
// A Matcher is immutable once built; config reloads build a fresh one.
type Matcher struct {
	// triggers sorted by length descending so the first tail match is
	// the longest. Equal lengths cannot both match the same tail.
	triggers []string
}

// NewMatcher builds a matcher over a set of trigger keys.
func NewMatcher(triggers []string) *Matcher {
	sorted := make([]string, len(triggers))
	copy(sorted, triggers)
	sort.Slice(sorted, func(i, j int) bool {
		if len(sorted[i]) != len(sorted[j]) {
			return len(sorted[i]) > len(sorted[j])
		}
		return sorted[i] < sorted[j]
	})
	return &Matcher{triggers: sorted}
}

// MatchTail returns the longest configured trigger equal to the
// buffer's tail. Longest-match precedence resolves ambiguity when one
// trigger is a suffix of another ("z" vs "zurl": "zurl" wins).
func (m *Matcher) MatchTail(buf *Buffer) (Match, bool) {
	for _, trigger := range m.triggers {
		if buf.TailMatches(trigger) {
			return Match{Trigger: trigger, Length: len(trigger)}, true
		}
	}
	return Match{}, false
}

// Len returns the number of configured triggers.
func (m *Matcher) Len() int {
	return len(m.triggers)
}
