// Package key provides key event and key combination types.
//
// Two concerns live here:
//
//   - Event: one key press delivered by a listener, resolved to either a
//     printable rune or a special key (Backspace, Enter, ...).
//   - Combo: a key combination a command binding resolves to — zero or
//     more modifiers from {ctrl, alt, shift, super} plus at most one
//     base key, written in config as tokens joined by "+", e.g.
//     "ctrl+shift+b" or "enter".
package key
