package listener

import (
	evdev "github.com/holoplot/go-evdev"

	"github.com/emmertex/riskyexpand/internal/key"
)

// runePair is the (unshifted, shifted) character for a key code.
type runePair struct {
	lower   rune
	shifted rune
}

// runeMap maps printable evdev key codes to their characters on a US
// layout. Layout awareness beyond this is out of scope; trigger
// matching only needs ASCII lowercase anyway.
var runeMap = map[evdev.EvCode]runePair{
	evdev.KEY_A: {'a', 'A'}, evdev.KEY_B: {'b', 'B'}, evdev.KEY_C: {'c', 'C'},
	evdev.KEY_D: {'d', 'D'}, evdev.KEY_E: {'e', 'E'}, evdev.KEY_F: {'f', 'F'},
	evdev.KEY_G: {'g', 'G'}, evdev.KEY_H: {'h', 'H'}, evdev.KEY_I: {'i', 'I'},
	evdev.KEY_J: {'j', 'J'}, evdev.KEY_K: {'k', 'K'}, evdev.KEY_L: {'l', 'L'},
	evdev.KEY_M: {'m', 'M'}, evdev.KEY_N: {'n', 'N'}, evdev.KEY_O: {'o', 'O'},
	evdev.KEY_P: {'p', 'P'}, evdev.KEY_Q: {'q', 'Q'}, evdev.KEY_R: {'r', 'R'},
	evdev.KEY_S: {'s', 'S'}, evdev.KEY_T: {'t', 'T'}, evdev.KEY_U: {'u', 'U'},
	evdev.KEY_V: {'v', 'V'}, evdev.KEY_W: {'w', 'W'}, evdev.KEY_X: {'x', 'X'},
	evdev.KEY_Y: {'y', 'Y'}, evdev.KEY_Z: {'z', 'Z'},

	evdev.KEY_1: {'1', '!'}, evdev.KEY_2: {'2', '@'}, evdev.KEY_3: {'3', '#'},
	evdev.KEY_4: {'4', '$'}, evdev.KEY_5: {'5', '%'}, evdev.KEY_6: {'6', '^'},
	evdev.KEY_7: {'7', '&'}, evdev.KEY_8: {'8', '*'}, evdev.KEY_9: {'9', '('},
	evdev.KEY_0: {'0', ')'},

	evdev.KEY_MINUS: {'-', '_'}, evdev.KEY_EQUAL: {'=', '+'},
	evdev.KEY_LEFTBRACE: {'[', '{'}, evdev.KEY_RIGHTBRACE: {']', '}'},
	evdev.KEY_BACKSLASH: {'\\', '|'},
	evdev.KEY_SEMICOLON: {';', ':'}, evdev.KEY_APOSTROPHE: {'\'', '"'},
	evdev.KEY_GRAVE: {'`', '~'},
	evdev.KEY_COMMA: {',', '<'}, evdev.KEY_DOT: {'.', '>'},
	evdev.KEY_SLASH: {'/', '?'},
	evdev.KEY_SPACE: {' ', ' '},
}

// specialMap maps non-printable evdev key codes to special keys.
var specialMap = map[evdev.EvCode]key.Key{
	evdev.KEY_ENTER:     key.KeyEnter,
	evdev.KEY_TAB:       key.KeyTab,
	evdev.KEY_BACKSPACE: key.KeyBackspace,
	evdev.KEY_DELETE:    key.KeyDelete,
	evdev.KEY_ESC:       key.KeyEscape,
}

// modifierMap maps modifier key codes to modifier flags.
var modifierMap = map[evdev.EvCode]key.Modifier{
	evdev.KEY_LEFTSHIFT:  key.ModShift,
	evdev.KEY_RIGHTSHIFT: key.ModShift,
	evdev.KEY_LEFTCTRL:   key.ModCtrl,
	evdev.KEY_RIGHTCTRL:  key.ModCtrl,
	evdev.KEY_LEFTALT:    key.ModAlt,
	evdev.KEY_RIGHTALT:   key.ModAlt,
	evdev.KEY_LEFTMETA:   key.ModSuper,
	evdev.KEY_RIGHTMETA:  key.ModSuper,
}
