package key

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCombo(t *testing.T) {
	tests := []struct {
		spec     string
		wantMods Modifier
		wantKey  Key
		wantRune rune
	}{
		{"b", ModNone, KeyRune, 'b'},
		{"7", ModNone, KeyRune, '7'},
		{"enter", ModNone, KeyEnter, 0},
		{"esc", ModNone, KeyEscape, 0},
		{"ctrl+b", ModCtrl, KeyRune, 'b'},
		{"ctrl+enter", ModCtrl, KeyEnter, 0},
		{"ctrl+shift+b", ModCtrl | ModShift, KeyRune, 'b'},
		{"super+space", ModSuper, KeySpace, 0},
		{"meta+a", ModSuper, KeyRune, 'a'},
		{"ctrl", ModCtrl, KeyNone, 0},
		{"ctrl+alt", ModCtrl | ModAlt, KeyNone, 0},
		{" Ctrl + B ", ModCtrl, KeyRune, 'b'},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			combo, err := ParseCombo(tt.spec)
			require.NoError(t, err)
			assert.Equal(t, tt.wantMods, combo.Modifiers)
			assert.Equal(t, tt.wantKey, combo.Key)
			assert.Equal(t, tt.wantRune, combo.Rune)
		})
	}
}

func TestParseComboInvalid(t *testing.T) {
	tests := []struct {
		name string
		spec string
		want error
	}{
		{"empty", "", ErrEmptyCombo},
		{"two base keys", "ctrl+a+b", ErrInvalidCombo},
		{"modifier after base", "a+ctrl", ErrInvalidCombo},
		{"unknown key", "ctrl+bananas", ErrInvalidCombo},
		{"empty token", "ctrl++b", ErrInvalidCombo},
		{"uppercase base", "ctrl+B", nil}, // lowered, valid
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCombo(tt.spec)
			if tt.want != nil {
				assert.ErrorIs(t, err, tt.want)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestComboString(t *testing.T) {
	tests := []struct {
		spec string
		want string
	}{
		{"ctrl+shift+b", "ctrl+shift+b"},
		{"shift+ctrl+b", "ctrl+shift+b"}, // canonical modifier order
		{"ctrl+enter", "ctrl+enter"},
		{"enter", "enter"},
		{"super", "super"},
	}

	for _, tt := range tests {
		combo, err := ParseCombo(tt.spec)
		require.NoError(t, err)
		assert.Equal(t, tt.want, combo.String())
	}
}

func TestEventString(t *testing.T) {
	assert.Equal(t, "a", NewRuneEvent('a', ModNone).String())
	assert.Equal(t, "ctrl+c", NewRuneEvent('c', ModCtrl).String())
	assert.Equal(t, "backspace", NewSpecialEvent(KeyBackspace, ModNone).String())
}

func TestEventIsModified(t *testing.T) {
	assert.False(t, NewRuneEvent('A', ModShift).IsModified())
	assert.True(t, NewRuneEvent('c', ModCtrl).IsModified())
	assert.True(t, NewSpecialEvent(KeyEnter, ModSuper).IsModified())
	assert.False(t, NewSpecialEvent(KeyEnter, ModNone).IsModified())
}
