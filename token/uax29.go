package token

import (
	"github.com/clipperhouse/uax29/v2/graphemes"
	"github.com/clipperhouse/uax29/v2/words"
)

// splitWords segments s into Unicode word-boundary runs (UAX #29), each run
// either a word or the inter-word material (spaces, punctuation) between
// two words. This is finer-grained and more correct across scripts than a
// `\p{L}\p{N}` regex, particularly for scripts without explicit word
// separators.
func splitWords(s string) []string {
	var out []string

	seg := words.FromString(s)
	for seg.Next() {
		out = append(out, seg.Value())
	}

	return out
}

// splitGraphemes segments s into extended grapheme clusters (UAX #29), so
// that a base letter plus its combining marks, or a multi-rune emoji
// sequence, refines and matches as a single character-level token instead
// of being torn apart mid-cluster.
func splitGraphemes(s string) []string {
	var out []string

	seg := graphemes.FromString(s)
	for seg.Next() {
		out = append(out, seg.Value())
	}

	return out
}
