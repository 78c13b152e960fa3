// Package token implements the tokenizer: a doubly-linked token arena per
// text revision, stepwise refinement of tokens to finer granularity, and the
// word-occurrence counts the matcher uses for its uniqueness heuristic.
package token

import "fmt"

// None is the sentinel arena index meaning "no token" — used for list ends
// and unmatched links.
const None = -1

// Token is a single entry in an [Arena].
//
// prev/next form the current active doubly-linked list; link points into the
// other revision's arena at the matched counterpart, or [None]. number is the
// token's final position in the linearized list, assigned once by
// [Version.Enumerate] after all refinement completes. unique marks a matched
// token strong enough to serve as a stable block anchor (set by the matcher,
// not by the tokenizer).
type Token struct {
	Text   string
	Prev   int
	Next   int
	Link   int
	Number int
	Unique bool
}

// Arena is an append-only store of [Token] values addressed by integer
// index. Refinement never removes entries — a token that is split into
// sub-tokens stays in the arena but becomes unreachable from the active list
// (tombstoned) once its neighbors are rewired around it.
type Arena struct {
	tokens []Token
}

// Len returns the number of tokens ever created in the arena, including
// tombstoned ones.
func (a *Arena) Len() int { return len(a.tokens) }

// At returns a pointer to the token at i for in-place mutation of its
// Prev/Next/Link/Number/Unique fields.
func (a *Arena) At(i int) *Token {
	return &a.tokens[i]
}

func (a *Arena) new(text string) int {
	a.tokens = append(a.tokens, Token{Text: text, Prev: None, Next: None, Link: None, Number: None})

	return len(a.tokens) - 1
}

// Walk calls fn for every token reachable from first via Next, in order. It
// returns an error if the list does not terminate at [None] within Len()
// steps, which would indicate a cycle.
func (a *Arena) Walk(first int, fn func(idx int, tok *Token)) error {
	seen := 0

	for i := first; i != None; i = a.tokens[i].Next {
		if seen > len(a.tokens) {
			return fmt.Errorf("%w: token list cycle detected at index %d", ErrArena, i)
		}

		fn(i, &a.tokens[i])

		seen++
	}

	return nil
}
