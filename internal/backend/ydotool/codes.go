package ydotool

import (
	"fmt"

	evdev "github.com/holoplot/go-evdev"

	"github.com/emmertex/riskyexpand/internal/key"
)

// modifierCodes maps modifiers to the left-hand evdev key codes, in the
// canonical press order.
var modifierCodes = []struct {
	mod  key.Modifier
	code evdev.EvCode
}{
	{key.ModCtrl, evdev.KEY_LEFTCTRL},
	{key.ModAlt, evdev.KEY_LEFTALT},
	{key.ModShift, evdev.KEY_LEFTSHIFT},
	{key.ModSuper, evdev.KEY_LEFTMETA},
}

// specialCodes maps special keys to evdev key codes.
var specialCodes = map[key.Key]evdev.EvCode{
	key.KeyEnter:     evdev.KEY_ENTER,
	key.KeyTab:       evdev.KEY_TAB,
	key.KeyBackspace: evdev.KEY_BACKSPACE,
	key.KeyDelete:    evdev.KEY_DELETE,
	key.KeyEscape:    evdev.KEY_ESC,
	key.KeySpace:     evdev.KEY_SPACE,
}

// runeCodes maps the alphanumeric base keys to evdev key codes.
var runeCodes = map[rune]evdev.EvCode{
	'a': evdev.KEY_A, 'b': evdev.KEY_B, 'c': evdev.KEY_C, 'd': evdev.KEY_D,
	'e': evdev.KEY_E, 'f': evdev.KEY_F, 'g': evdev.KEY_G, 'h': evdev.KEY_H,
	'i': evdev.KEY_I, 'j': evdev.KEY_J, 'k': evdev.KEY_K, 'l': evdev.KEY_L,
	'm': evdev.KEY_M, 'n': evdev.KEY_N, 'o': evdev.KEY_O, 'p': evdev.KEY_P,
	'q': evdev.KEY_Q, 'r': evdev.KEY_R, 's': evdev.KEY_S, 't': evdev.KEY_T,
	'u': evdev.KEY_U, 'v': evdev.KEY_V, 'w': evdev.KEY_W, 'x': evdev.KEY_X,
	'y': evdev.KEY_Y, 'z': evdev.KEY_Z,
	'0': evdev.KEY_0, '1': evdev.KEY_1, '2': evdev.KEY_2, '3': evdev.KEY_3,
	'4': evdev.KEY_4, '5': evdev.KEY_5, '6': evdev.KEY_6, '7': evdev.KEY_7,
	'8': evdev.KEY_8, '9': evdev.KEY_9,
}

// comboCodes resolves a key combo to the evdev codes to press, in
// order: modifiers first, base key last.
func comboCodes(combo key.Combo) ([]evdev.EvCode, error) {
	var codes []evdev.EvCode

	for _, mc := range modifierCodes {
		if combo.Modifiers.Has(mc.mod) {
			codes = append(codes, mc.code)
		}
	}

	switch {
	case combo.Key == key.KeyRune:
		code, ok := runeCodes[combo.Rune]
		if !ok {
			return nil, fmt.Errorf("no key code for %q", combo.Rune)
		}
		codes = append(codes, code)
	case combo.Key != key.KeyNone:
		code, ok := specialCodes[combo.Key]
		if !ok {
			return nil, fmt.Errorf("no key code for %s", combo.Key)
		}
		codes = append(codes, code)
	}

	if len(codes) == 0 {
		return nil, fmt.Errorf("empty combo")
	}
	return codes, nil
}
