package key

import "strings"

// Modifier represents keyboard modifier keys.
type Modifier uint8

const (
	// ModNone indicates no modifiers.
	ModNone Modifier = 0

	// ModCtrl indicates the Control key.
	ModCtrl Modifier = 1 << iota

	// ModAlt indicates the Alt key.
	ModAlt

	// ModShift indicates the Shift key.
	ModShift

	// ModSuper indicates the Super key (Meta/Win).
	ModSuper
)

// Has returns true if m contains the specified modifier.
func (m Modifier) Has(mod Modifier) bool {
	return m&mod != 0
}

// With returns a new Modifier with the specified modifier added.
func (m Modifier) With(mod Modifier) Modifier {
	return m | mod
}

// IsEmpty returns true if no modifiers are set.
func (m Modifier) IsEmpty() bool {
	return m == ModNone
}

// String returns the canonical config form, e.g. "ctrl+shift".
func (m Modifier) String() string {
	if m == ModNone {
		return ""
	}

	var parts []string
	if m.Has(ModCtrl) {
		parts = append(parts, "ctrl")
	}
	if m.Has(ModAlt) {
		parts = append(parts, "alt")
	}
	if m.Has(ModShift) {
		parts = append(parts, "shift")
	}
	if m.Has(ModSuper) {
		parts = append(parts, "super")
	}
	return strings.Join(parts, "+")
}

// modifierNames maps config tokens (lowercase) to Modifier values.
// "meta" is accepted as an alias for super to match older configs.
var modifierNames = map[string]Modifier{
	"ctrl":  ModCtrl,
	"alt":   ModAlt,
	"shift": ModShift,
	"super": ModSuper,
	"meta":  ModSuper,
}

// ModifierFromName returns the Modifier for a config token.
// Returns ModNone if the token is not a modifier.
func ModifierFromName(name string) Modifier {
	if m, ok := modifierNames[strings.ToLower(name)]; ok {
		return m
	}
	return ModNone
}
