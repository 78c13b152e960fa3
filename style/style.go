// Package style provides types and constants for styling a diff fragment
// stream for terminal output.
package style

import (
	"charm.land/lipgloss/v2"
)

// Mode represents the color scheme mode of a theme.
type Mode int

// Color scheme modes.
//
//nolint:grouper // Enum.
const (
	Light Mode = iota
	Dark
)

// Style identifies a style category for diff rendering.
// Used as keys in [Styles] maps.
type Style int

// Style constants for diff rendering. Names follow the fragment grammar's
// own vocabulary (spec §6) rather than a generic syntax-highlighting scheme,
// since a diff stream's markup categories are fixed by the grammar, not by
// a parser's token set.
//
//nolint:grouper // Enum.
const (
	Text          Style = iota // Default/fallback style.
	Same                       // Unchanged text ("=").
	Delete                     // Text removed from OLD ("-").
	Insert                     // Text added in NEW ("+").
	Move                       // Moved block markup (parent only).
	MoveOpen                   // Moved block open marker ("(<", "(>").
	MoveClose                  // Moved block close marker (")").
	MoveMark                   // Reference mark at a block's old position ("<", ">").
	Clip                       // Omission marker for a clipped run ("~", " ~", "~ ").
	Highlight                  // Search match highlight.
	HighlightSelected          // Currently selected search match.
)

// styleParent defines the inheritance hierarchy for styles.
// Each style maps to its parent style. [Text] is the root and has no parent.
var styleParent = map[Style]Style{
	Same:              Text,
	Delete:            Text,
	Insert:            Text,
	Move:              Text,
	MoveOpen:          Move,
	MoveClose:         Move,
	MoveMark:          Move,
	Clip:              Text,
	Highlight:         Text,
	HighlightSelected: Highlight,
}

// parent returns the parent [Style] for inheritance lookup.
// Returns [Text] if no explicit parent is defined.
func (s Style) parent() Style {
	if p, ok := styleParent[s]; ok {
		return p
	}

	return Text
}

// Styles defines the style set for diff rendering, keyed by [Style].
type Styles map[Style]lipgloss.Style

// StylesOption configures a [Styles] map during construction.
// See [Set] for the primary option.
type StylesOption func(map[Style]lipgloss.Style)

// Set returns a [StylesOption] that overrides the style for the given [Style].
//
//nolint:gocritic // Value semantics preferred for API ergonomics.
func Set(s Style, ls lipgloss.Style) StylesOption {
	return func(m map[Style]lipgloss.Style) {
		m[s] = ls
	}
}

// NewStyles creates a [Styles] map with pre-computed entries.
// The base style is used for [Text] and inherited by all other styles.
// Use [Set] options to override specific styles.
//
//nolint:gocritic // Value semantics preferred for API ergonomics.
func NewStyles(base lipgloss.Style, opts ...StylesOption) Styles {
	overrides := make(map[Style]lipgloss.Style)
	for _, opt := range opts {
		opt(overrides)
	}

	// Resolve walks up the inheritance chain to find a defined style.
	resolve := func(s Style) lipgloss.Style {
		current := s
		for {
			if ls, ok := overrides[current]; ok {
				return ls
			}

			if current == Text {
				break
			}

			current = current.parent()
		}

		return base
	}

	resolved := make(Styles, len(styleParent)+1)

	resolved[Text] = resolve(Text)
	for st := range styleParent {
		resolved[st] = resolve(st)
	}

	return resolved
}

// With returns a copy of s with opts applied on top. The receiver is left
// unmodified; this is the supported way to layer per-render overrides (e.g.
// a move block's color, or a search highlight) onto a theme's base styles
// without mutating the theme itself.
//
//nolint:gocritic // Value semantics preferred for API ergonomics.
func (s Styles) With(opts ...StylesOption) Styles {
	out := make(Styles, len(s))
	for k, v := range s {
		out[k] = v
	}

	for _, opt := range opts {
		opt(out)
	}

	return out
}

// Style returns the [lipgloss.Style] for the given [Style] category.
// Returns an empty [lipgloss.Style] if the style is not defined.
func (s Styles) Style(st Style) *lipgloss.Style {
	if ls, ok := s[st]; ok {
		return &ls
	}

	return &lipgloss.Style{}
}
