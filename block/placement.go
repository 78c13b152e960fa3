package block

import (
	"strings"

	"github.com/wikimedia/mediawiki-extensions-WikEdDiff/token"
)

// buildDeletionBlocks appends one [KindDelete] block per maximal unlinked
// OLD-side run, each carrying a NewNumber placement value borrowed from the
// nearest linked neighbor so it renders next to the content it used to sit
// beside.
func (e *Extractor) buildDeletionBlocks() {
	oi := e.Old.First
	for oi != token.None {
		ot := e.Old.Arena.At(oi)
		if ot.Link != token.None {
			oi = ot.Next
			continue
		}

		start := oi
		cur := oi

		words, chars := wordCharCount(ot.Text)
		unique := ot.Unique

		var text strings.Builder
		text.WriteString(ot.Text)

		count := 1

		for {
			next := e.Old.Arena.At(cur).Next
			if next == token.None {
				break
			}

			nt := e.Old.Arena.At(next)
			if nt.Link != token.None {
				break
			}

			w, c := wordCharCount(nt.Text)
			words += w
			chars += c

			if nt.Unique {
				unique = true
			}

			text.WriteString(nt.Text)
			count++
			cur = next
		}

		e.Blocks = append(e.Blocks, Block{
			Kind:      KindDelete,
			OldIdx:    start,
			NewIdx:    token.None,
			Count:     count,
			Words:     words,
			Chars:     chars,
			Unique:    unique,
			Text:      text.String(),
			OldNumber: e.Old.Arena.At(start).Number,
			NewNumber: e.deletionPlacement(start, cur),
			Group:     None,
			Section:   None,
		})

		oi = e.Old.Arena.At(cur).Next
	}
}

// deletionPlacement attaches a deletion run's render position to the next
// linked OLD token's NEW number (attach-before), falling back to the
// previous linked OLD token's NEW number (attach-after) and finally to
// [None], which renders before everything.
func (e *Extractor) deletionPlacement(start, end int) int {
	for n := e.Old.Arena.At(end).Next; n != token.None; n = e.Old.Arena.At(n).Next {
		if nt := e.Old.Arena.At(n); nt.Link != token.None {
			return e.New.Arena.At(nt.Link).Number
		}
	}

	for p := e.Old.Arena.At(start).Prev; p != token.None; p = e.Old.Arena.At(p).Prev {
		if pt := e.Old.Arena.At(p); pt.Link != token.None {
			return e.New.Arena.At(pt.Link).Number
		}
	}

	return None
}

// buildInsertionBlocks appends one [KindInsert] block per maximal unlinked
// NEW-side run, at its own NewNumber.
func (e *Extractor) buildInsertionBlocks() {
	ni := e.New.First
	for ni != token.None {
		nt := e.New.Arena.At(ni)
		if nt.Link != token.None {
			ni = nt.Next
			continue
		}

		start := ni
		cur := ni

		words, chars := wordCharCount(nt.Text)
		unique := nt.Unique

		var text strings.Builder
		text.WriteString(nt.Text)

		count := 1

		for {
			next := e.New.Arena.At(cur).Next
			if next == token.None {
				break
			}

			t2 := e.New.Arena.At(next)
			if t2.Link != token.None {
				break
			}

			w, c := wordCharCount(t2.Text)
			words += w
			chars += c

			if t2.Unique {
				unique = true
			}

			text.WriteString(t2.Text)
			count++
			cur = next
		}

		e.Blocks = append(e.Blocks, Block{
			Kind:      KindInsert,
			OldIdx:    token.None,
			NewIdx:    start,
			Count:     count,
			Words:     words,
			Chars:     chars,
			Unique:    unique,
			Text:      text.String(),
			OldNumber: None,
			NewNumber: e.New.Arena.At(start).Number,
			Group:     None,
			Section:   None,
		})

		ni = e.New.Arena.At(cur).Next
	}
}

// assignInsertGroups gives every insertion block its own fixed,
// single-block group: insertions render at their own NEW position and are
// never candidates for a move mark.
func (e *Extractor) assignInsertGroups() {
	for bi := range e.Blocks {
		b := &e.Blocks[bi]
		if b.Kind != KindInsert || b.Group != None {
			continue
		}

		gi := len(e.Groups)
		e.Groups = append(e.Groups, Group{
			BlockStart: bi,
			BlockEnd:   bi,
			Words:      b.Words,
			Chars:      b.Chars,
			MaxWords:   b.Words,
			Unique:     b.Unique,
			Fixed:      true,
			MovedFrom:  None,
		})
		b.Group = gi
	}
}

// insertMoveMarks assigns a sequential color to every non-fixed [KindSame]
// group and appends a [KindMove] block placed at a fixed reference block's
// NEW position (found by scanning the group's OLD-order neighbors), so the
// renderer can place an opener/closer pair around the group wherever it
// ends up and a short marker where it used to sit relative to content that
// did not move.
func (e *Extractor) insertMoveMarks() {
	color := 0

	for gi := range e.Groups {
		g := &e.Groups[gi]
		if g.Fixed {
			continue
		}

		if e.Blocks[g.BlockStart].Kind != KindSame {
			continue
		}

		color++
		g.Color = color

		for bi := g.BlockStart; bi <= g.BlockEnd; bi++ {
			e.Blocks[bi].Moved = true
			e.Blocks[bi].Color = color
		}

		oldNumber, newNumber := e.moveMarkPlacement(*g)

		e.Blocks = append(e.Blocks, Block{
			Kind:      KindMove,
			OldIdx:    token.None,
			NewIdx:    token.None,
			MovedFrom: gi,
			Color:     color,
			OldNumber: oldNumber,
			NewNumber: newNumber,
			Group:     gi,
		})
	}
}

// sameBlocksByOldOrder returns the [KindSame] blocks in OLD order (by
// OldBlock rank), used to walk a moved group's OLD-side neighbors when
// looking for a fixed reference point.
func (e *Extractor) sameBlocksByOldOrder() []Block {
	var same []Block

	for _, b := range e.Blocks {
		if b.Kind == KindSame {
			same = append(same, b)
		}
	}

	insertionSort(same, func(a, b Block) bool { return a.OldBlock < b.OldBlock })

	return same
}

// moveMarkPlacement implements the §4.5 reference cascade for a non-fixed
// group: walk its OLD-order neighbors outward, previous side first, and
// borrow the first fixed same-block's position found. If no fixed
// neighbor exists on either side, the mark renders before everything
// ([None], a documented "no reference" fallback — see the spec's open
// question on positionDelBlocks/insertMarks both using -1 for this case).
func (e *Extractor) moveMarkPlacement(g Group) (oldNumber, newNumber int) {
	same := e.sameBlocksByOldOrder()

	startRank := e.Blocks[g.BlockStart].OldBlock
	endRank := e.Blocks[g.BlockEnd].OldBlock

	startIdx, endIdx := -1, -1

	for i, b := range same {
		if b.OldBlock == startRank {
			startIdx = i
		}

		if b.OldBlock == endRank {
			endIdx = i
		}
	}

	for i := startIdx - 1; i >= 0; i-- {
		if e.Groups[same[i].Group].Fixed {
			return same[i].OldNumber, same[i].NewNumber
		}
	}

	for i := endIdx + 1; i < len(same); i++ {
		if e.Groups[same[i].Group].Fixed {
			return same[i].OldNumber, same[i].NewNumber
		}
	}

	return None, None
}

// OrderedBlocks returns a copy of e.Blocks sorted into render order: by
// NewNumber ascending ([None] sorts first), ties broken by OldNumber.
// Blocks built by [Extractor.Run] after the initial same-block sort
// (deletions, insertions, move marks) are appended out of order, so callers
// that need the final stream order should use this instead of e.Blocks
// directly.
func (e *Extractor) OrderedBlocks() []Block {
	out := make([]Block, len(e.Blocks))
	copy(out, e.Blocks)

	insertionSort(out, func(a, b Block) bool {
		if a.NewNumber != b.NewNumber {
			return a.NewNumber < b.NewNumber
		}

		return a.OldNumber < b.OldNumber
	})

	return out
}
