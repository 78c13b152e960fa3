// Package render turns a [fragment.Stream] into styled terminal text,
// mapping each fragment's [fragment.Type] to a [style.Style] category and
// each moved block's [fragment.Fragment.Color] to an accent color drawn
// from a theme's move-block palette.
package render

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/wikimedia/mediawiki-extensions-WikEdDiff/fragment"
	"github.com/wikimedia/mediawiki-extensions-WikEdDiff/internal/ansi"
	"github.com/wikimedia/mediawiki-extensions-WikEdDiff/internal/colors"
	"github.com/wikimedia/mediawiki-extensions-WikEdDiff/style"
)

// Symbols carries the glyphs rendered for non-text markup fragments. Use
// [DefaultSymbols] for the Unicode set, or [PlainSymbols] to honor the
// noUnicodeSymbols option (spec §6).
type Symbols struct {
	MoveOpenLeft, MoveOpenRight, MoveClose   string
	MarkLeft, MarkRight                      string
	ClipChars, ClipBlankLeft, ClipBlankRight string
	// BlockSeparator joins the rendered fragment blocks of a [fragment.Stream].
	BlockSeparator string
}

// DefaultSymbols returns the Unicode glyph set.
func DefaultSymbols() Symbols {
	return Symbols{
		MoveOpenLeft: "«", MoveOpenRight: "»", MoveClose: "",
		MarkLeft: "‹", MarkRight: "›",
		ClipChars: "…", ClipBlankLeft: " …", ClipBlankRight: "… ",
		BlockSeparator: "\n",
	}
}

// PlainSymbols returns an ASCII-only glyph set, for terminals or fonts that
// render the Unicode set poorly.
func PlainSymbols() Symbols {
	return Symbols{
		MoveOpenLeft: "(<", MoveOpenRight: "(>", MoveClose: ")",
		MarkLeft: "<", MarkRight: ">",
		ClipChars: "...", ClipBlankLeft: " ...", ClipBlankRight: "... ",
		BlockSeparator: "\n",
	}
}

// Options configures [Render].
type Options struct {
	// Styles supplies the base style for each [style.Style] category.
	Styles style.Styles
	// MoveColors is the palette a moved fragment's Color index selects
	// from, cycling with modulo if there are more groups than colors.
	MoveColors []lipgloss.Color
	// Symbols controls the glyphs used for non-text markers. The zero
	// value resolves to [DefaultSymbols].
	Symbols Symbols
	// EscapeControlChars replaces raw control characters in fragment text
	// with visible Unicode control pictures before rendering.
	EscapeControlChars bool
}

// Render converts stream into one styled string, joining the stream's
// fragment blocks with opts.Symbols.BlockSeparator.
func Render(stream fragment.Stream, opts Options) string {
	symbols := opts.Symbols
	if symbols == (Symbols{}) {
		symbols = DefaultSymbols()
	}

	blocks := make([]string, len(stream))
	for i, blk := range stream {
		blocks[i] = renderBlock(blk, opts, symbols)
	}

	return strings.Join(blocks, symbols.BlockSeparator)
}

func renderBlock(blk fragment.Block, opts Options, symbols Symbols) string {
	var b strings.Builder

	for _, f := range blk {
		b.WriteString(renderFragment(f, opts, symbols))
	}

	return b.String()
}

func renderFragment(f fragment.Fragment, opts Options, symbols Symbols) string {
	text := f.Text
	if opts.EscapeControlChars {
		text = ansi.Escape(text)
	}

	st := fragmentStyle(f, opts)

	switch f.Type {
	case fragment.TypeSame, fragment.TypeDelete, fragment.TypeInsert:
		return st.Render(text)
	case fragment.TypeMoveOpenLeft:
		return st.Render(symbols.MoveOpenLeft)
	case fragment.TypeMoveOpenRight:
		return st.Render(symbols.MoveOpenRight)
	case fragment.TypeMoveClose:
		return st.Render(symbols.MoveClose)
	case fragment.TypeMarkLeft:
		return st.Render(symbols.MarkLeft + text)
	case fragment.TypeMarkRight:
		return st.Render(text + symbols.MarkRight)
	case fragment.TypeClipChars:
		return st.Render(symbols.ClipChars)
	case fragment.TypeClipBlankLeft:
		return st.Render(symbols.ClipBlankLeft)
	case fragment.TypeClipBlankRight:
		return st.Render(symbols.ClipBlankRight)
	default:
		return st.Render(text)
	}
}

// fragmentStyle resolves f's base category style and, for a moved
// fragment, overrides its foreground with the fragment's assigned accent
// color from the move palette.
func fragmentStyle(f fragment.Fragment, opts Options) lipgloss.Style {
	base := *opts.Styles.Style(categoryFor(f.Type))

	if f.Color == fragment.NoColor || len(opts.MoveColors) == 0 {
		return base
	}

	accent := opts.MoveColors[f.Color%len(opts.MoveColors)]
	overlay := lipgloss.NewStyle().Foreground(accent)

	return *colors.OverrideStyles(&base, &overlay)
}

func categoryFor(t fragment.Type) style.Style {
	switch t {
	case fragment.TypeSame:
		return style.Same
	case fragment.TypeDelete:
		return style.Delete
	case fragment.TypeInsert:
		return style.Insert
	case fragment.TypeMoveOpenLeft, fragment.TypeMoveOpenRight:
		return style.MoveOpen
	case fragment.TypeMoveClose:
		return style.MoveClose
	case fragment.TypeMarkLeft, fragment.TypeMarkRight:
		return style.MoveMark
	case fragment.TypeClipChars, fragment.TypeClipBlankLeft, fragment.TypeClipBlankRight:
		return style.Clip
	default:
		return style.Text
	}
}
