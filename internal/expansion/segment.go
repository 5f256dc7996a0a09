// Package expansion compiles raw expansion strings into ordered
// literal/command segment sequences.
//
// The grammar is intentionally small: backtick is a reserved delimiter,
// text inside a matched backtick pair names a registered command, and
// everything outside is literal text. "Kind Regards,`enter`A. Frahn"
// compiles to [Literal("Kind Regards,"), Command("enter"),
// Literal("A. Frahn")].
package expansion

import "fmt"

// SegmentKind discriminates the segment variants.
type SegmentKind uint8

const (
	// KindLiteral is literal text pasted via the clipboard.
	KindLiteral SegmentKind = iota

	// KindCommand is a named key-combination macro.
	KindCommand
)

// String returns the kind name.
func (k SegmentKind) String() string {
	if k == KindCommand {
		return "command"
	}
	return "literal"
}

// Segment is one atomic unit of a compiled expansion: literal text or a
// reference to a registered command.
type Segment struct {
	// Kind discriminates the variant.
	Kind SegmentKind

	// Value is the literal text for KindLiteral, or the command name
	// for KindCommand.
	Value string
}

// Literal creates a literal text segment.
func Literal(text string) Segment {
	return Segment{Kind: KindLiteral, Value: text}
}

// Command creates a command reference segment.
func Command(name string) Segment {
	return Segment{Kind: KindCommand, Value: name}
}

// String returns a readable representation for logging.
func (s Segment) String() string {
	return fmt.Sprintf("%s(%q)", s.Kind, s.Value)
}
