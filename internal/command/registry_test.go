package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emmertex/riskyexpand/internal/key"
)

func TestLoad(t *testing.T) {
	reg, errs := Load(map[string]string{
		"bold":  "ctrl+b",
		"enter": "enter",
		"send":  "ctrl+enter",
	})
	require.Empty(t, errs)
	require.Equal(t, 3, reg.Len())

	combo, err := reg.Lookup("bold")
	require.NoError(t, err)
	assert.Equal(t, key.ModCtrl, combo.Modifiers)
	assert.Equal(t, 'b', combo.Rune)

	combo, err = reg.Lookup("send")
	require.NoError(t, err)
	assert.Equal(t, key.ModCtrl, combo.Modifiers)
	assert.Equal(t, key.KeyEnter, combo.Key)
}

func TestLoadNameLengthBoundary(t *testing.T) {
	reg, errs := Load(map[string]string{
		"ab":  "ctrl+a", // length 2: rejected
		"abc": "ctrl+a", // length 3: accepted
	})

	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], ErrInvalidName)

	assert.False(t, reg.Has("ab"))
	assert.True(t, reg.Has("abc"))
}

func TestLoadMalformedCombo(t *testing.T) {
	reg, errs := Load(map[string]string{
		"good": "ctrl+g",
		"bad":  "ctrl+a+b",
	})

	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], ErrInvalidCombo)

	// The bad entry is dropped, loading continues for the rest.
	assert.True(t, reg.Has("good"))
	assert.False(t, reg.Has("bad"))
}

func TestLookupNotFound(t *testing.T) {
	reg, errs := Load(map[string]string{"bold": "ctrl+b"})
	require.Empty(t, errs)

	_, err := reg.Lookup("italic")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestNames(t *testing.T) {
	reg, _ := Load(map[string]string{
		"send": "ctrl+enter",
		"bold": "ctrl+b",
	})
	assert.Equal(t, []string{"bold", "send"}, reg.Names())
}
