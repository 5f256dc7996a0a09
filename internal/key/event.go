package key

import "time"

// Event represents a single key-down event from a listener.
type Event struct {
	// Key identifies the key pressed.
	Key Key

	// Rune is the resolved character for KeyRune events, with shift
	// already applied by the listener.
	Rune rune

	// Modifiers contains the modifier keys held during the press.
	Modifiers Modifier

	// Timestamp is when the event occurred.
	Timestamp time.Time
}

// NewRuneEvent creates a key event for a printable character.
func NewRuneEvent(r rune, mods Modifier) Event {
	return Event{
		Key:       KeyRune,
		Rune:      r,
		Modifiers: mods,
		Timestamp: time.Now(),
	}
}

// NewSpecialEvent creates a key event for a special key.
func NewSpecialEvent(key Key, mods Modifier) Event {
	return Event{
		Key:       key,
		Modifiers: mods,
		Timestamp: time.Now(),
	}
}

// IsRune returns true if this is a character key event.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && e.Rune != 0
}

// IsModified returns true if a non-shift modifier is held.
// Shift is part of the character for rune events, not a chord.
func (e Event) IsModified() bool {
	return e.Modifiers&(ModCtrl|ModAlt|ModSuper) != 0
}

// String returns a readable representation for logging.
func (e Event) String() string {
	name := e.Key.String()
	if e.Key == KeyRune {
		name = string(e.Rune)
	}
	if mods := e.Modifiers.String(); mods != "" {
		return mods + "+" + name
	}
	return name
}
