package key

import (
	"errors"
	"fmt"
	"strings"
)

// Combo parse errors.
var (
	// ErrEmptyCombo indicates an empty combo specification.
	ErrEmptyCombo = errors.New("empty key combo")

	// ErrInvalidCombo indicates a combo that violates the grammar:
	// zero or more modifier tokens followed by at most one base key.
	ErrInvalidCombo = errors.New("invalid key combo")
)

// Combo is a key combination: a set of modifiers plus at most one base
// key. A Combo with Key == KeyNone is modifiers only.
type Combo struct {
	// Modifiers contains the modifier keys of the combination.
	Modifiers Modifier

	// Key is the base key, or KeyNone for a modifier-only combo.
	Key Key

	// Rune is the character for a KeyRune base key.
	Rune rune
}

// HasBase returns true if the combo includes a base key.
func (c Combo) HasBase() bool {
	return c.Key != KeyNone
}

// String returns the canonical config form, e.g. "ctrl+shift+b".
func (c Combo) String() string {
	var parts []string
	if mods := c.Modifiers.String(); mods != "" {
		parts = append(parts, mods)
	}
	switch {
	case c.Key == KeyRune:
		parts = append(parts, string(c.Rune))
	case c.Key != KeyNone:
		parts = append(parts, c.Key.String())
	}
	return strings.Join(parts, "+")
}

// ParseCombo parses a combo specification like "ctrl+shift+b", "enter"
// or "super". Tokens are joined by "+"; modifiers must precede the base
// key and at most one base key is allowed. The base key is either a
// single alphanumeric character or a special key name.
func ParseCombo(spec string) (Combo, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Combo{}, ErrEmptyCombo
	}

	var combo Combo
	for _, token := range strings.Split(spec, "+") {
		token = strings.ToLower(strings.TrimSpace(token))
		if token == "" {
			return Combo{}, fmt.Errorf("%w: empty token in %q", ErrInvalidCombo, spec)
		}

		if mod := ModifierFromName(token); mod != ModNone {
			if combo.HasBase() {
				return Combo{}, fmt.Errorf("%w: modifier %q after base key in %q", ErrInvalidCombo, token, spec)
			}
			combo.Modifiers = combo.Modifiers.With(mod)
			continue
		}

		if combo.HasBase() {
			return Combo{}, fmt.Errorf("%w: more than one base key in %q", ErrInvalidCombo, spec)
		}

		if special := KeyFromName(token); special != KeyNone {
			combo.Key = special
			continue
		}

		runes := []rune(token)
		if len(runes) == 1 && isAlnum(runes[0]) {
			combo.Key = KeyRune
			combo.Rune = runes[0]
			continue
		}

		return Combo{}, fmt.Errorf("%w: unknown key %q in %q", ErrInvalidCombo, token, spec)
	}

	return combo, nil
}

func isAlnum(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
}
