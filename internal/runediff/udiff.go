package runediff

import (
	"unicode/utf8"

	"github.com/aymanbagabas/go-udiff"
)

// UdiffLCS returns the length of the longest common subsequence of a and b
// as measured by go-udiff's Myers-based string diff, an independent oracle
// from [Hirschberg] for the same question. go-udiff reports only the
// minimal changed spans between two strings; everything outside those
// spans is, by construction, identical in both inputs, so the shared rune
// count is the total minus the runes covered by deleted spans.
func UdiffLCS(a, b []rune) int {
	as, bs := string(a), string(b)

	edits := udiff.Strings(as, bs)

	shared := utf8.RuneCountInString(as)

	for _, e := range edits {
		shared -= utf8.RuneCountInString(as[e.Start:e.End])
	}

	return shared
}
