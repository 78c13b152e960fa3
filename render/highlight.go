package render

import (
	"sort"
	"strings"

	"github.com/wikimedia/mediawiki-extensions-WikEdDiff/fragment"
	"github.com/wikimedia/mediawiki-extensions-WikEdDiff/internal/ansi"
	"github.com/wikimedia/mediawiki-extensions-WikEdDiff/internal/colors"
	"github.com/wikimedia/mediawiki-extensions-WikEdDiff/internal/styletree"
	"github.com/wikimedia/mediawiki-extensions-WikEdDiff/style"
)

// HighlightRange marks a search match as a half-open range of rune offsets
// into the stream's concatenated text (the same indexing [fragment.Stream.String]
// uses), so a caller can locate matches independently of how the stream is
// eventually clipped into fragments.
type HighlightRange struct {
	Start, End int
	Selected   bool
}

// RenderWithHighlights behaves like [Render], additionally overlaying
// opts.Styles' [style.Highlight] / [style.HighlightSelected] onto any text
// falling inside ranges, blended with each fragment's own category color
// via [colors.BlendStyles] so diff markup (e.g. a deletion's strikethrough)
// remains visible under a match highlight.
func RenderWithHighlights(stream fragment.Stream, opts Options, ranges []HighlightRange) string {
	if len(ranges) == 0 {
		return Render(stream, opts)
	}

	tree := styletree.New()

	sorted := append([]HighlightRange(nil), ranges...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Start < sorted[j].Start })

	for _, r := range sorted {
		st := opts.Styles.Style(style.Highlight)
		if r.Selected {
			st = opts.Styles.Style(style.HighlightSelected)
		}

		tree.Insert(r.Start, r.End, st)
	}

	symbols := opts.Symbols
	if symbols == (Symbols{}) {
		symbols = DefaultSymbols()
	}

	var (
		out    strings.Builder
		offset int
	)

	for bi, blk := range stream {
		if bi > 0 {
			out.WriteString(symbols.BlockSeparator)
		}

		for _, f := range blk {
			n := len([]rune(f.Text))
			out.WriteString(renderFragmentHighlighted(f, opts, symbols, tree, offset))
			offset += n
		}
	}

	return out.String()
}

// renderFragmentHighlighted renders one fragment, splitting its text at
// highlight boundaries that overlap [offset, offset+len(text)).
func renderFragmentHighlighted(
	f fragment.Fragment, opts Options, symbols Symbols, tree *styletree.Tree, offset int,
) string {
	if f.Text == "" {
		return renderFragment(f, opts, symbols)
	}

	text := f.Text
	if opts.EscapeControlChars {
		text = ansi.Escape(text)
	}

	runes := []rune(text)
	overlaps := tree.QueryRange(offset, offset+len(runes))

	if len(overlaps) == 0 {
		return renderFragment(f, opts, symbols)
	}

	base := fragmentStyle(f, opts)

	var b strings.Builder

	if f.Type == fragment.TypeMarkLeft {
		b.WriteString(base.Render(symbols.MarkLeft))
	}

	pos := 0

	for _, iv := range overlaps {
		start := max(0, iv.Start-offset)
		end := min(len(runes), iv.End-offset)

		if start > pos {
			b.WriteString(base.Render(string(runes[pos:start])))
		}

		if end > start {
			blended := colors.BlendStyles(&base, iv.Style)
			b.WriteString(blended.Render(string(runes[start:end])))
		}

		pos = max(pos, end)
	}

	if pos < len(runes) {
		b.WriteString(base.Render(string(runes[pos:])))
	}

	if f.Type == fragment.TypeMarkRight {
		b.WriteString(base.Render(symbols.MarkRight))
	}

	return b.String()
}
