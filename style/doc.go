// Package style provides a hierarchical styling system for rendering a diff
// fragment stream in a terminal.
//
// When rendering a [fragment.Stream], each fragment type (same, delete,
// insert, move markers, clip markers) needs distinct visual styling, and
// each moved block additionally needs a color drawn from a per-render
// palette so a reader can match a block's open marker to its mark.
//
// Rather than requiring themes to define every category explicitly, this
// package uses inheritance: unspecified styles automatically fall back to
// their parent category.
//
// For example, [MoveOpen] inherits from [Move], which inherits from [Text].
//
// # Style Categories
//
// The hierarchy is organized into the categories the fragment grammar
// itself defines (spec §6):
//
//   - [Text] -> [Same], [Delete], [Insert]: Unchanged, removed, and added text.
//   - [Move] -> [MoveOpen], [MoveClose], [MoveMark]: Moved block markup.
//   - [Clip]: Omission markers.
//   - [Highlight] -> [HighlightSelected]: Search match highlighting.
//
// # Creating Style Maps
//
// [NewStyles] creates a [Styles] map that pre-computes inherited styles.
//
// Provide a base [lipgloss.Style] and use [Set] to override specific
// categories:
//
//	styles := style.NewStyles(
//	    lipgloss.NewStyle().Foreground(lipgloss.Color("white")),
//	    style.Set(style.Delete, lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Strikethrough(true)),
//	    style.Set(style.Insert, lipgloss.NewStyle().Foreground(lipgloss.Color("10"))),
//	)
//
// [Styles.With] layers further overrides (a move block's assigned color, a
// live search highlight) onto an existing set without touching the
// original.
//
// # Themes
//
// The [github.com/wikimedia/mediawiki-extensions-WikEdDiff/style/theme]
// subpackage provides predefined themes. Each theme is a function
// returning [Styles] with colors appropriate for that palette, plus a
// sequence of move-block accent colors (see [theme.Theme.MoveColors]).
//
// [Mode] indicates whether a theme targets light or dark backgrounds.
//
// # Style Strings
//
// This package provides encoding and decoding of Pygments-style strings to
// and from [lipgloss.Style] objects via [Parse], [MustParse], and [Encode].
//
// Styles are specified as space-separated tokens. Order is not significant.
//
// Colors use hex format:
//
//	#rrggbb     - Foreground color (e.g., #ff0000 for red)
//	#rgb        - Short foreground color (e.g., #f00 for red)
//	bg:#rrggbb  - Background color
//
// Modifiers toggle text attributes:
//
//	bold / nobold           - Bold text
//	italic / noitalic       - Italic text
//	underline / nounderline - Underlined text
//
// Special tokens (ignored for Pygments compatibility):
//
//	noinherit
//	border:#rrggbb
package style
