// Package wikedtest holds small test-only helpers shared across the token,
// match, slide, charrefine, block, and fragment package test suites —
// walking a token arena's active list and collecting its text, independent
// of any one package's internals.
package wikedtest

import "github.com/wikimedia/mediawiki-extensions-WikEdDiff/token"

// ListText walks the active list starting at first and returns each
// token's text in order.
func ListText(arena *token.Arena, first int) []string {
	var out []string

	_ = arena.Walk(first, func(_ int, tok *token.Token) {
		out = append(out, tok.Text)
	})

	return out
}

// LastIndex walks the active list starting at first and returns the index
// of its final token, or [token.None] if the list is empty.
func LastIndex(arena *token.Arena, first int) int {
	last := token.None

	_ = arena.Walk(first, func(idx int, _ *token.Token) {
		last = idx
	})

	return last
}
