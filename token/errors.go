package token

import "errors"

// ErrArena indicates an internal token-arena invariant was violated: a
// token list that [Arena.Walk] finds does not terminate (a cycle). It
// should never occur on well-formed
// input and indicates an engine bug rather than an input problem.
var ErrArena = errors.New("token: arena invariant violation")
