package wikeddiff

import (
	"errors"

	"github.com/wikimedia/mediawiki-extensions-WikEdDiff/token"
)

var (
	// ErrInvalidConfig is returned by [Diff] when an [Option] sets a
	// configuration value outside its declared domain.
	ErrInvalidConfig = errors.New("wikeddiff: invalid configuration")

	// ErrTokenizer wraps a tokenizer-stage failure: a broken token list or
	// a regular-expression engine error. It aliases [token.ErrArena] so
	// callers can match either name with errors.Is.
	ErrTokenizer = token.ErrArena

	// ErrMatcher is reserved for a matcher-stage invariant violation. The
	// matcher has no failure path of its own on well-formed token input;
	// this sentinel exists so a future invariant check has somewhere to
	// report to without changing the public error surface.
	ErrMatcher = errors.New("wikeddiff: matcher invariant violation")

	// ErrInternalInvariant is returned when [Options.UnitTesting] is set
	// and the extracted block model fails to reproduce both input texts
	// under the NEW/OLD-view projection (spec §8).
	ErrInternalInvariant = errors.New("wikeddiff: internal invariant violation")
)
