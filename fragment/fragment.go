// Package fragment converts a completed block/group model into the linear
// fragment stream a renderer consumes: a flat sequence of typed units
// delimited into one or more comma-separated fragment blocks.
package fragment

import "strings"

// NoColor is the sentinel Color value meaning "not part of a moved group".
const NoColor = -1

// Type is a fragment's role in the stream, one of the markers from the
// grammar in spec §6.
type Type int

const (
	// TypeSame is unchanged text present in both revisions ("=").
	TypeSame Type = iota
	// TypeDelete is text present only in OLD ("-").
	TypeDelete
	// TypeInsert is text present only in NEW ("+").
	TypeInsert
	// TypeMoveOpenLeft opens a moved block whose reference mark renders
	// after it in the stream ("(<").
	TypeMoveOpenLeft
	// TypeMoveOpenRight opens a moved block whose reference mark rendered
	// before it in the stream ("(>").
	TypeMoveOpenRight
	// TypeMoveClose closes a moved block opened by TypeMoveOpenLeft/Right
	// (")").
	TypeMoveClose
	// TypeMarkLeft is a reference mark pointing at a group that moved
	// earlier in the stream ("<").
	TypeMarkLeft
	// TypeMarkRight is a reference mark pointing at a group that moved
	// later in the stream (">").
	TypeMarkRight
	// TypeClipChars is an omission marker for a fixed-character-count clip
	// ("~").
	TypeClipChars
	// TypeClipBlankLeft is an omission marker following trimmed trailing
	// blanks on the left side of a clip (" ~").
	TypeClipBlankLeft
	// TypeClipBlankRight is an omission marker preceding trimmed leading
	// blanks on the right side of a clip ("~ ").
	TypeClipBlankRight
)

// String returns the marker text for t, as it appears in the grammar.
func (t Type) String() string {
	switch t {
	case TypeSame:
		return "="
	case TypeDelete:
		return "-"
	case TypeInsert:
		return "+"
	case TypeMoveOpenLeft:
		return "(<"
	case TypeMoveOpenRight:
		return "(>"
	case TypeMoveClose:
		return ")"
	case TypeMarkLeft:
		return "<"
	case TypeMarkRight:
		return ">"
	case TypeClipChars:
		return "~"
	case TypeClipBlankLeft:
		return " ~"
	case TypeClipBlankRight:
		return "~ "
	default:
		return "?"
	}
}

// Fragment is one typed unit of the output stream.
type Fragment struct {
	Text  string
	Type  Type
	Color int
}

// Block is one comma-separated run of fragments within the container.
type Block []Fragment

// Stream is the full fragment stream: one or more [Block]s, rendered as
// `{ [block] }` or `{ [block], [block], ... }`.
type Stream []Block

// IsNoChange reports whether s is the "no change" result: a single
// container holding a single unmarked "=" fragment (spec §7, "no change"
// result).
func (s Stream) IsNoChange() bool {
	if len(s) != 1 || len(s[0]) != 1 {
		return false
	}

	f := s[0][0]

	return f.Type == TypeSame && f.Color == NoColor
}

// String concatenates every fragment's text with no markup, a convenience
// default distinct from the terminal rendering the render package builds
// from the same stream.
func (s Stream) String() string {
	var b strings.Builder

	for _, blk := range s {
		for _, f := range blk {
			b.WriteString(f.Text)
		}
	}

	return b.String()
}
