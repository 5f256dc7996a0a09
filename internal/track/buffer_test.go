package track

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func typeString(b *Buffer, s string) {
	for _, r := range s {
		b.Append(r)
	}
}

func TestBufferAppendAndEvict(t *testing.T) {
	b := NewBuffer()
	typeString(b, "abc")
	assert.Equal(t, "abc", b.String())
	assert.Equal(t, 3, b.Len())

	// Exceeding capacity evicts oldest first.
	typeString(b, "defghijklm") // 13 total
	assert.Equal(t, Capacity, b.Len())
	assert.Equal(t, "defghijklm", b.String())
}

func TestBufferBackspace(t *testing.T) {
	b := NewBuffer()
	typeString(b, "zurk")
	b.Backspace()
	b.Append('l')
	assert.Equal(t, "zurl", b.String())

	// Backspace on empty buffer is a no-op.
	b.Clear()
	b.Backspace()
	assert.Equal(t, 0, b.Len())
}

func TestBufferClear(t *testing.T) {
	b := NewBuffer()
	typeString(b, "zurl")
	b.Clear()
	assert.Equal(t, 0, b.Len())
	assert.False(t, b.TailMatches("zurl"))
}

func TestBufferTailMatches(t *testing.T) {
	b := NewBuffer()
	typeString(b, "hellozurl")

	assert.True(t, b.TailMatches("zurl"))
	assert.True(t, b.TailMatches("l"))
	assert.True(t, b.TailMatches("hellozurl"))
	assert.False(t, b.TailMatches("hello"))
	assert.False(t, b.TailMatches(""))
	assert.False(t, b.TailMatches("longerthanthebuffer"))
}

func TestMatcherTailMatch(t *testing.T) {
	m := NewMatcher([]string{"zurl", "zsig"})
	b := NewBuffer()

	typeString(b, "zur")
	_, ok := m.MatchTail(b)
	assert.False(t, ok)

	b.Append('l')
	match, ok := m.MatchTail(b)
	assert.True(t, ok)
	assert.Equal(t, "zurl", match.Trigger)
	assert.Equal(t, 4, match.Length)
}

func TestMatcherLongestMatchPrecedence(t *testing.T) {
	m := NewMatcher([]string{"z", "zurl"})
	b := NewBuffer()

	typeString(b, "somezurl")
	match, ok := m.MatchTail(b)
	assert.True(t, ok)
	assert.Equal(t, "zurl", match.Trigger, "longest trigger must win over its suffix")

	// A lone "z" still matches the short trigger.
	b.Clear()
	b.Append('z')
	match, ok = m.MatchTail(b)
	assert.True(t, ok)
	assert.Equal(t, "z", match.Trigger)
	assert.Equal(t, 1, match.Length)
}

func TestMatcherNoTriggers(t *testing.T) {
	m := NewMatcher(nil)
	b := NewBuffer()
	typeString(b, "anything")
	_, ok := m.MatchTail(b)
	assert.False(t, ok)
}
