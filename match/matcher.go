// Package match implements the symbol-table matching algorithm: five passes
// that link unique NEW/OLD token pairs and extend matches outward from them,
// an empty-table repeat pass to catch duplicate tokens that become unique
// once earlier pairs are resolved, and bounded recursion into unresolved
// sub-gaps.
package match

import (
	"strings"

	"github.com/wikimedia/mediawiki-extensions-WikEdDiff/symtab"
	"github.com/wikimedia/mediawiki-extensions-WikEdDiff/token"
)

// Direction is the traversal direction a matcher pass walks a token list in.
type Direction int

const (
	// Down walks via Next, in natural reading order.
	Down Direction = iota
	// Up walks via Prev, in reverse.
	Up
)

// Border is a linked NEW/OLD pair recorded at the edge of an extension,
// used as the starting point for a recursive sub-match.
type Border struct {
	NewIdx int
	OldIdx int
}

// Matcher links tokens between a NEW and OLD [token.Version].
//
// Create with [New]; call [Matcher.Run] once per refinement level.
type Matcher struct {
	New *token.Version
	Old *token.Version

	// BlockMinLength is the match-count threshold above which a token is
	// unique regardless of word-count uniqueness (§4.2 pass 3).
	BlockMinLength int
	// RecursionMax bounds how deep unresolved sub-gaps are recursed into.
	RecursionMax int
	// RepeatedDiff enables the empty-table re-run that catches cross-over
	// duplicates.
	RepeatedDiff bool
	// RecursiveDiff enables recursion into unresolved sub-gaps.
	RecursiveDiff bool
}

// New returns a [*Matcher] over newV and oldV with the given configuration.
func New(newV, oldV *token.Version, blockMinLength, recursionMax int, repeated, recursive bool) *Matcher {
	return &Matcher{
		New:            newV,
		Old:            oldV,
		BlockMinLength: blockMinLength,
		RecursionMax:   recursionMax,
		RepeatedDiff:   repeated,
		RecursiveDiff:  recursive,
	}
}

// Run executes the matcher over the entire active lists of New and Old at
// the given tokenizer level. It should be called once per refinement level,
// after that level's tokens have been split.
func (m *Matcher) Run(level token.Level) {
	m.linkCommonBoundary()
	m.calculateDiff(symtab.New(), level, m.New.First, m.Old.First, Down, 0)
}

// linkCommonBoundary links the common leading and trailing runs of
// identical, unlinked tokens between New and Old without consulting a
// symbol table. This realizes the "boundary as connected" rule: tokens
// adjacent to the global text boundaries are implicitly matched, so a
// common prefix or suffix is captured for free.
func (m *Matcher) linkCommonBoundary() {
	ni, oi := m.New.First, m.Old.First
	for ni != token.None && oi != token.None {
		nt, ot := m.New.Arena.At(ni), m.Old.Arena.At(oi)
		if nt.Link != token.None || ot.Link != token.None || nt.Text != ot.Text {
			break
		}

		m.link(ni, oi)
		ni, oi = nt.Next, ot.Next
	}

	ni, oi = m.New.Last, m.Old.Last
	for ni != token.None && oi != token.None {
		nt, ot := m.New.Arena.At(ni), m.Old.Arena.At(oi)
		if nt.Link != token.None || ot.Link != token.None || nt.Text != ot.Text {
			break
		}

		m.link(ni, oi)
		ni, oi = nt.Prev, ot.Prev
	}
}

// calculateDiff is the mutually recursive core described in §4.2: five
// passes, an optional empty-table repeat, and optional recursion into
// unresolved sub-gaps.
func (m *Matcher) calculateDiff(tbl *symtab.Table, level token.Level, newStart, oldStart int, dir Direction, recursionLevel int) {
	bordersDown, bordersUp := m.runPasses(tbl, level, newStart, oldStart, dir, recursionLevel)

	if m.RepeatedDiff {
		bd2, bu2 := m.runPasses(symtab.New(), level, newStart, oldStart, dir, recursionLevel)
		bordersDown = append(bordersDown, bd2...)
		bordersUp = append(bordersUp, bu2...)
	}

	if m.RecursiveDiff && recursionLevel < m.RecursionMax {
		m.recurse(bordersDown, Down, level, recursionLevel+1)
		m.recurse(bordersUp, Up, level, recursionLevel+1)
	}
}

// runPasses executes the five-pass algorithm once over a fresh or supplied
// table and returns the extension borders recursion should seed from.
func (m *Matcher) runPasses(tbl *symtab.Table, level token.Level, newStart, oldStart int, dir Direction, recursionLevel int) (bordersDown, bordersUp []Border) {
	m.populate(tbl, m.New, newStart, dir, true)
	m.populate(tbl, m.Old, oldStart, dir, false)

	initial := m.linkUniquePairs(tbl, level, recursionLevel)

	bordersDown = m.extendDown(initial)
	bordersUp = m.extendUp(initial)

	return bordersDown, bordersUp
}

// populate walks v's active list from start in dir to the end of the list,
// skipping already-linked tokens, and tallies each unlinked token's text
// into tbl.
func (m *Matcher) populate(tbl *symtab.Table, v *token.Version, start int, dir Direction, isNew bool) {
	for i := start; i != token.None; {
		tok := v.Arena.At(i)

		if tok.Link == token.None {
			sym := tbl.Get(tok.Text)
			if isNew {
				sym.NewCount++
				sym.NewToken = i
			} else {
				sym.OldCount++
				sym.OldToken = i
			}
		}

		if dir == Down {
			i = tok.Next
		} else {
			i = tok.Prev
		}
	}
}

// linkUniquePairs links every symbol table entry with exactly one NEW and
// one OLD occurrence, unless the token is whitespace-only. It returns the
// linked pairs as borders for the extension passes.
func (m *Matcher) linkUniquePairs(tbl *symtab.Table, level token.Level, recursionLevel int) []Border {
	var borders []Border

	tbl.Range(func(text string, sym *symtab.Symbol) bool {
		if sym.NewCount != 1 || sym.OldCount != 1 {
			return true
		}

		if strings.TrimSpace(text) == "" {
			return true
		}

		m.link(sym.NewToken, sym.OldToken)
		tbl.Linked = true

		if recursionLevel == 0 {
			unique := m.isUnique(text, level)
			m.New.Arena.At(sym.NewToken).Unique = unique
			m.Old.Arena.At(sym.OldToken).Unique = unique
		}

		borders = append(borders, Border{NewIdx: sym.NewToken, OldIdx: sym.OldToken})

		return true
	})

	return borders
}

// isUnique determines the §4.2 "unique" attribute of a freshly linked
// token's text at the character level, it is always true; otherwise, it
// looks for a constituent word or chunk atom that occurs exactly once in
// both revisions' word-count maps, or for enough total matches to exceed
// BlockMinLength on its own.
func (m *Matcher) isUnique(text string, level token.Level) bool {
	if level == token.LevelCharacter {
		return true
	}

	matches := wordAndChunkMatches(text)
	if len(matches) >= m.BlockMinLength {
		return true
	}

	for _, word := range matches {
		if m.New.WordCount[word] == 1 && m.Old.WordCount[word] == 1 {
			return true
		}
	}

	return false
}

// extendDown walks Next from each border on both sides while tokens are
// unlinked and textually equal, linking as it goes, and records the last
// matching pair (or the border itself, if nothing extended) as the next
// recursion seed.
func (m *Matcher) extendDown(borders []Border) []Border {
	out := make([]Border, 0, len(borders))

	for _, b := range borders {
		last := b
		ni, oi := m.New.Arena.At(b.NewIdx).Next, m.Old.Arena.At(b.OldIdx).Next

		for ni != token.None && oi != token.None {
			nt, ot := m.New.Arena.At(ni), m.Old.Arena.At(oi)
			if nt.Link != token.None || ot.Link != token.None || nt.Text != ot.Text {
				break
			}

			m.link(ni, oi)

			last = Border{NewIdx: ni, OldIdx: oi}
			ni, oi = nt.Next, ot.Next
		}

		out = append(out, last)
	}

	return out
}

// extendUp is the symmetric counterpart of extendDown, walking Prev.
func (m *Matcher) extendUp(borders []Border) []Border {
	out := make([]Border, 0, len(borders))

	for _, b := range borders {
		last := b
		ni, oi := m.New.Arena.At(b.NewIdx).Prev, m.Old.Arena.At(b.OldIdx).Prev

		for ni != token.None && oi != token.None {
			nt, ot := m.New.Arena.At(ni), m.Old.Arena.At(oi)
			if nt.Link != token.None || ot.Link != token.None || nt.Text != ot.Text {
				break
			}

			m.link(ni, oi)

			last = Border{NewIdx: ni, OldIdx: oi}
			ni, oi = nt.Prev, ot.Prev
		}

		out = append(out, last)
	}

	return out
}

// recurse descends into the sub-gap immediately past each border, in dir,
// when both sides remain unlinked.
func (m *Matcher) recurse(borders []Border, dir Direction, level token.Level, recursionLevel int) {
	for _, b := range borders {
		var newNext, oldNext int
		if dir == Down {
			newNext, oldNext = m.New.Arena.At(b.NewIdx).Next, m.Old.Arena.At(b.OldIdx).Next
		} else {
			newNext, oldNext = m.New.Arena.At(b.NewIdx).Prev, m.Old.Arena.At(b.OldIdx).Prev
		}

		if newNext == token.None || oldNext == token.None {
			continue
		}

		if m.New.Arena.At(newNext).Link != token.None || m.Old.Arena.At(oldNext).Link != token.None {
			continue
		}

		m.calculateDiff(symtab.New(), level, newNext, oldNext, dir, recursionLevel)
	}
}

// link sets the symmetric Link field on both sides: NEW[newIdx].Link =
// oldIdx and OLD[oldIdx].Link = newIdx.
func (m *Matcher) link(newIdx, oldIdx int) {
	m.New.Arena.At(newIdx).Link = oldIdx
	m.Old.Arena.At(oldIdx).Link = newIdx
}
