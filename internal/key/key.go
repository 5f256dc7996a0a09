package key

// Key identifies a keyboard key. Character keys use KeyRune with the
// rune carried alongside; the named constants cover the special keys a
// combo or listener event can reference.
type Key uint8

const (
	// KeyNone represents no key.
	KeyNone Key = iota

	// KeyRune is used for character keys; the character itself is
	// stored in the Rune field of Event or Combo.
	KeyRune

	// Special keys.
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeyEscape
	KeySpace
)

// String returns the canonical config name for the key.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "none"
	case KeyRune:
		return "rune"
	case KeyEnter:
		return "enter"
	case KeyTab:
		return "tab"
	case KeyBackspace:
		return "backspace"
	case KeyDelete:
		return "delete"
	case KeyEscape:
		return "esc"
	case KeySpace:
		return "space"
	}
	return "unknown"
}

// keyNames maps config tokens to special keys.
var keyNames = map[string]Key{
	"enter":     KeyEnter,
	"return":    KeyEnter,
	"tab":       KeyTab,
	"backspace": KeyBackspace,
	"delete":    KeyDelete,
	"del":       KeyDelete,
	"esc":       KeyEscape,
	"escape":    KeyEscape,
	"space":     KeySpace,
}

// KeyFromName returns the special key for a config token.
// Returns KeyNone if the token is not a special key name.
func KeyFromName(name string) Key {
	if k, ok := keyNames[name]; ok {
		return k
	}
	return KeyNone
}
