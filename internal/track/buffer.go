// Package track maintains the rolling keystroke history and detects
// trigger matches against its tail.
package track

// Capacity is the fixed size of the rolling buffer. Triggers longer
// than this can never match and are rejected at config load.
const Capacity = 10

// Buffer is a fixed-capacity rolling history of recently typed
// characters with FIFO eviction. It is not safe for concurrent use;
// the engine mutates it from a single consumer loop.
type Buffer struct {
	chars []rune
}

// NewBuffer creates an empty rolling buffer.
func NewBuffer() *Buffer {
	return &Buffer{chars: make([]rune, 0, Capacity)}
}

// Append adds one character, evicting the oldest when full.
func (b *Buffer) Append(r rune) {
	if len(b.chars) == Capacity {
		copy(b.chars, b.chars[1:])
		b.chars = b.chars[:Capacity-1]
	}
	b.chars = append(b.chars, r)
}

// Backspace removes the most recent character, if any.
func (b *Buffer) Backspace() {
	if len(b.chars) > 0 {
		b.chars = b.chars[:len(b.chars)-1]
	}
}

// Clear empties the buffer. Called once a match is accepted so the same
// text cannot immediately re-match.
func (b *Buffer) Clear() {
	b.chars = b.chars[:0]
}

// Len returns the number of buffered characters.
func (b *Buffer) Len() int {
	return len(b.chars)
}

// TailMatches reports whether the buffer's trailing characters equal s.
func (b *Buffer) TailMatches(s string) bool {
	runes := []rune(s)
	if len(runes) == 0 || len(runes) > len(b.chars) {
		return false
	}
	tail := b.chars[len(b.chars)-len(runes):]
	for i, r := range runes {
		if tail[i] != r {
			return false
		}
	}
	return true
}

// String returns the buffered characters oldest-first.
func (b *Buffer) String() string {
	return string(b.chars)
}
