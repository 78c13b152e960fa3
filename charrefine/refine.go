// Package charrefine identifies "same shape" gaps between linked token
// boundaries and splits their tokens to grapheme granularity so that a
// subsequent character-level match can resolve differences inside what
// word-level matching saw as wholesale replacements.
package charrefine

import (
	"fmt"

	"github.com/wikimedia/mediawiki-extensions-WikEdDiff/internal/runediff"
	"github.com/wikimedia/mediawiki-extensions-WikEdDiff/token"
)

// Refiner scans gaps between a NEW and OLD [token.Version] and refines the
// ones whose shape qualifies under §4.4's acceptance rules.
//
// Create with [New]; call [Refiner.Run] once, then re-run the matcher at
// [token.LevelCharacter] to link the newly split tokens.
type Refiner struct {
	New *token.Version
	Old *token.Version

	// LCS computes the shared-rune count used by the equal-length ≥50%
	// identity rule. Defaults to [runediff.LCSLen] (Hirschberg); callers
	// may swap in [runediff.UdiffLCS] for go-udiff's independent Myers-based
	// oracle instead.
	LCS func(a, b []rune) int
}

// New returns a [*Refiner] over newV and oldV, defaulting to
// [runediff.LCSLen] for the identity check.
func New(newV, oldV *token.Version) *Refiner {
	return &Refiner{New: newV, Old: oldV, LCS: runediff.LCSLen[rune]}
}

// Run walks every gap bounded by linked tokens (or a list end) and, where
// its shape qualifies, splits its tokens to character/grapheme granularity.
// Exact-text pairs within an equal-count gap are linked directly without
// splitting, per §4.4's separator pre-linking rule.
func (r *Refiner) Run() error {
	i := r.New.First

	for i != token.None {
		tok := r.New.Arena.At(i)
		if tok.Link != token.None {
			i = tok.Next
			continue
		}

		gapFirst := i
		gapLast := i

		for {
			next := r.New.Arena.At(gapLast).Next
			if next == token.None || r.New.Arena.At(next).Link != token.None {
				break
			}

			gapLast = next
		}

		after := r.New.Arena.At(gapLast).Next

		if err := r.refineGap(gapFirst, gapLast); err != nil {
			return err
		}

		i = after
	}

	return nil
}

// refineGap collects the NEW-side gap [gapFirst, gapLast] and its
// corresponding OLD-side gap (the unlinked run between the OLD counterparts
// of the NEW gap's boundary tokens), classifies its shape, and refines it
// if accepted.
func (r *Refiner) refineGap(gapFirst, gapLast int) error {
	newIdxs := r.collect(r.New, gapFirst, gapLast)

	beforeNew := r.New.Arena.At(gapFirst).Prev
	afterNew := r.New.Arena.At(gapLast).Next

	oldStart, oldEnd, ok := r.oldGapBounds(beforeNew, afterNew)
	if !ok {
		return nil
	}

	var oldIdxs []int
	if oldStart != token.None {
		oldIdxs = r.collect(r.Old, oldStart, oldEnd)
	}

	newTexts := texts(r.New, newIdxs)
	oldTexts := texts(r.Old, oldIdxs)

	switch {
	case len(newTexts) > 0 && len(newTexts) == len(oldTexts) && r.equalShape(newTexts, oldTexts):
		return r.refineEqualCount(newIdxs, oldIdxs, newTexts, oldTexts)
	case len(newTexts) == 1 && len(oldTexts) == 3 && tripleShape(newTexts[0], oldTexts):
		return r.refineAll(newIdxs, oldIdxs)
	case len(newTexts) == 3 && len(oldTexts) == 1 && tripleShape(oldTexts[0], newTexts):
		return r.refineAll(newIdxs, oldIdxs)
	default:
		return nil
	}
}

// oldGapBounds translates a NEW gap's boundary tokens into the
// corresponding OLD-side range. ok is false if the boundary tokens are
// unlinked (gap detection requires linked boundaries) when they exist.
func (r *Refiner) oldGapBounds(beforeNew, afterNew int) (start, end int, ok bool) {
	start = r.Old.First
	if beforeNew != token.None {
		beforeTok := r.New.Arena.At(beforeNew)
		if beforeTok.Link == token.None {
			return 0, 0, false
		}

		start = r.Old.Arena.At(beforeTok.Link).Next
	}

	end = r.Old.Last
	if afterNew != token.None {
		afterTok := r.New.Arena.At(afterNew)
		if afterTok.Link == token.None {
			return 0, 0, false
		}

		end = r.Old.Arena.At(afterTok.Link).Prev
	}

	if start == token.None || end == token.None {
		return token.None, token.None, true
	}

	return start, end, true
}

func (r *Refiner) collect(v *token.Version, first, last int) []int {
	var out []int

	for i := first; ; i = v.Arena.At(i).Next {
		out = append(out, i)
		if i == last {
			break
		}

		if i == token.None {
			break
		}
	}

	return out
}

func texts(v *token.Version, idxs []int) []string {
	out := make([]string, len(idxs))
	for i, idx := range idxs {
		out[i] = v.Arena.At(idx).Text
	}

	return out
}

// equalShape reports whether every paired token in an equal-count gap
// passes one of the three §4.4 similarity rules.
func (r *Refiner) equalShape(newTexts, oldTexts []string) bool {
	for i := range newTexts {
		if newTexts[i] == oldTexts[i] {
			continue
		}

		if !r.similar(newTexts[i], oldTexts[i]) {
			return false
		}
	}

	return true
}

// tripleShape reports whether single starts with triple[0] and ends with
// triple[len-1], the §4.4 word split/merge rule.
func tripleShape(single string, triple []string) bool {
	first := []rune(triple[0])
	last := []rune(triple[len(triple)-1])
	s := []rune(single)

	if len(s) < len(first)+len(last) {
		return false
	}

	return string(s[:len(first)]) == triple[0] && string(s[len(s)-len(last):]) == triple[len(triple)-1]
}

// similar implements §4.4's equal-length pairing rules: an internal
// insert/delete (equal prefix and suffix, shorter interior), a flanking
// insert/delete (the shorter is a contiguous substring of the longer), or
// at least 50% rune-level identity at equal length, measured by r.LCS.
func (r *Refiner) similar(a, b string) bool {
	ra, rb := []rune(a), []rune(b)

	if internalEdit(ra, rb) || flankingEdit(ra, rb) {
		return true
	}

	if len(ra) != len(rb) || len(ra) == 0 {
		return false
	}

	lcs := r.LCS(ra, rb)

	return float64(2*lcs) >= float64(len(ra)+len(rb))/2
}

func internalEdit(a, b []rune) bool {
	shorter, longer := a, b
	if len(a) > len(b) {
		shorter, longer = b, a
	}

	if len(shorter) == len(longer) {
		return false
	}

	prefix := 0
	for prefix < len(shorter) && shorter[prefix] == longer[prefix] {
		prefix++
	}

	suffix := 0
	for suffix < len(shorter)-prefix &&
		shorter[len(shorter)-1-suffix] == longer[len(longer)-1-suffix] {
		suffix++
	}

	return prefix+suffix >= len(shorter)
}

func flankingEdit(a, b []rune) bool {
	shorter, longer := string(a), string(b)
	if len(a) > len(b) {
		shorter, longer = string(b), string(a)
	}

	if shorter == "" {
		return false
	}

	return containsRuneRun(longer, shorter)
}

func containsRuneRun(haystack, needle string) bool {
	hr := []rune(haystack)
	nr := []rune(needle)

	if len(nr) > len(hr) {
		return false
	}

	for start := 0; start+len(nr) <= len(hr); start++ {
		match := true

		for i := range nr {
			if hr[start+i] != nr[i] {
				match = false
				break
			}
		}

		if match {
			return true
		}
	}

	return false
}

// refineEqualCount links exact-text pairs directly and splits the rest to
// grapheme granularity on both sides.
func (r *Refiner) refineEqualCount(newIdxs, oldIdxs []int, newTexts, oldTexts []string) error {
	for i := range newIdxs {
		if newTexts[i] == oldTexts[i] {
			r.New.Arena.At(newIdxs[i]).Link = oldIdxs[i]
			r.Old.Arena.At(oldIdxs[i]).Link = newIdxs[i]

			continue
		}

		if _, err := r.New.SplitRefine(token.LevelCharacter, newIdxs[i]); err != nil {
			return fmt.Errorf("charrefine: splitting new token %q: %w", newTexts[i], err)
		}

		if _, err := r.Old.SplitRefine(token.LevelCharacter, oldIdxs[i]); err != nil {
			return fmt.Errorf("charrefine: splitting old token %q: %w", oldTexts[i], err)
		}
	}

	return nil
}

// refineAll splits every token on both sides to grapheme granularity,
// used for the {1,3}/{3,1} word split/merge shape.
func (r *Refiner) refineAll(newIdxs, oldIdxs []int) error {
	for _, idx := range newIdxs {
		if _, err := r.New.SplitRefine(token.LevelCharacter, idx); err != nil {
			return fmt.Errorf("charrefine: splitting new token: %w", err)
		}
	}

	for _, idx := range oldIdxs {
		if _, err := r.Old.SplitRefine(token.LevelCharacter, idx); err != nil {
			return fmt.Errorf("charrefine: splitting old token: %w", err)
		}
	}

	return nil
}
