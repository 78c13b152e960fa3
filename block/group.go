package block

import "github.com/wikimedia/mediawiki-extensions-WikEdDiff/token"

// detectSections scans e.Blocks (in NEW-block order) for maximal ranges
// where a later block's OldNumber dips below the running threshold
// established by earlier blocks in the range — the signature of at least
// one move crossing the range. Blocks outside any section did not move
// relative to their neighbors and are left unsectioned.
func (e *Extractor) detectSections() {
	e.Sections = e.Sections[:0]

	blocks := e.Blocks
	n := len(blocks)

	i := 0
	for i < n {
		oldMax := blocks[i].OldNumber
		sectionOldMax := oldMax
		end := i

		for j := i + 1; j < n; j++ {
			if blocks[j].OldNumber > oldMax {
				oldMax = blocks[j].OldNumber
			}

			if blocks[j].OldNumber < sectionOldMax {
				end = j
				sectionOldMax = oldMax
			}
		}

		if end > i {
			e.Sections = append(e.Sections, Section{Start: i, End: end})
			i = end + 1
		} else {
			i++
		}
	}

	for i := range blocks {
		blocks[i].Section = None
	}

	for si, sec := range e.Sections {
		for i := sec.Start; i <= sec.End; i++ {
			blocks[i].Section = si
		}
	}
}

// detectGroups scans e.Blocks (in NEW-block order) for maximal runs whose
// OldBlock ranks are consecutive — a run that did not get interleaved with
// blocks from elsewhere in OLD order.
func (e *Extractor) detectGroups() {
	e.Groups = e.Groups[:0]

	blocks := e.Blocks
	n := len(blocks)

	i := 0
	for i < n {
		j := i
		for j+1 < n && blocks[j+1].OldBlock == blocks[j].OldBlock+1 {
			j++
		}

		g := Group{BlockStart: i, BlockEnd: j, MovedFrom: None}

		for k := i; k <= j; k++ {
			g.Words += blocks[k].Words
			g.Chars += blocks[k].Chars

			if blocks[k].Words > g.MaxWords {
				g.MaxWords = blocks[k].Words
			}

			if blocks[k].Unique {
				g.Unique = true
			}
		}

		gi := len(e.Groups)
		e.Groups = append(e.Groups, g)

		for k := i; k <= j; k++ {
			blocks[k].Group = gi
		}

		i = j + 1
	}
}

// selectFixedGroups marks groups outside any section as fixed immediately,
// then for each section runs a memoized longest-path search over that
// section's groups (ordered by block index, edges only to groups whose OLD
// range starts strictly after the current group's OLD range ends) to find
// the chain maximizing total character count. Groups on the winning chain
// are fixed in place; the rest are marked moved.
func (e *Extractor) selectFixedGroups() {
	inSection := make([]bool, len(e.Groups))

	for gi := range e.Groups {
		g := &e.Groups[gi]
		sec := e.Blocks[g.BlockStart].Section

		if sec == None {
			g.Fixed = true
			continue
		}

		inSection[gi] = true
	}

	for si := range e.Sections {
		var members []int

		for gi := range e.Groups {
			if inSection[gi] && e.Blocks[e.Groups[gi].BlockStart].Section == si {
				members = append(members, gi)
			}
		}

		e.fixSectionGroups(members)
	}
}

type pathResult struct {
	chars int
	next  int
}

// fixSectionGroups runs the LIS-by-chars selection over one section's
// member group indices (already in block order) and marks the winning
// chain's groups fixed.
func (e *Extractor) fixSectionGroups(members []int) {
	n := len(members)
	if n == 0 {
		return
	}

	oldStart := func(i int) int { return e.Blocks[e.Groups[members[i]].BlockStart].OldNumber }
	oldEnd := func(i int) int { return e.Blocks[e.Groups[members[i]].BlockEnd].OldNumber }

	memo := make([]*pathResult, n)

	var solve func(i int) *pathResult
	solve = func(i int) *pathResult {
		if memo[i] != nil {
			return memo[i]
		}

		best := &pathResult{chars: e.Groups[members[i]].Chars, next: -1}

		for j := i + 1; j < n; j++ {
			if oldStart(j) <= oldEnd(i) {
				continue
			}

			sub := solve(j)
			if e.Groups[members[i]].Chars+sub.chars > best.chars {
				best = &pathResult{chars: e.Groups[members[i]].Chars + sub.chars, next: j}
			}
		}

		memo[i] = best

		return best
	}

	bestIdx, bestChars := 0, -1

	for i := 0; i < n; i++ {
		r := solve(i)
		if r.chars > bestChars {
			bestChars = r.chars
			bestIdx = i
		}
	}

	for i := bestIdx; i != -1; {
		e.Groups[members[i]].Fixed = true
		i = memo[i].next
	}
}

// unlinkWeakGroups repeatedly unlinks groups that are too short to be
// trustworthy evidence of a move (below BlockMinLength, with no unique
// token to anchor them), re-slides, and rebuilds the block model, up to
// UnlinkMax cycles or until a cycle makes no change.
//
// A group whose whole content is weak (MaxWords < BlockMinLength and no
// member is unique) is unlinked entirely; any other group is only trimmed
// at its boundaries (single non-unique words at its start or end), matching
// the reference behavior of preferring to shrink a weak group over
// discarding a group that carries some genuine evidence of a move.
func (e *Extractor) unlinkWeakGroups() {
	anyLong := false

	for _, g := range e.Groups {
		if g.Chars >= e.BlockMinLength {
			anyLong = true
			break
		}
	}

	if !anyLong {
		return
	}

	for cycle := 0; cycle < e.UnlinkMax; cycle++ {
		changed := false

		for gi := range e.Groups {
			g := e.Groups[gi]

			if g.MaxWords < e.BlockMinLength && !g.Unique {
				if e.unlinkGroupWhole(g) {
					changed = true
				}

				continue
			}

			if e.unlinkGroupBoundary(g) {
				changed = true
			}
		}

		if !changed {
			break
		}

		if e.Reslide != nil {
			e.Reslide()
		}

		e.rebuild()
	}
}

// unlinkGroupWhole unlinks every [KindSame] member block of g, returning
// whether anything changed.
func (e *Extractor) unlinkGroupWhole(g Group) bool {
	changed := false

	for bi := g.BlockStart; bi <= g.BlockEnd; bi++ {
		b := e.Blocks[bi]
		if b.Kind != KindSame {
			continue
		}

		e.unlinkBlock(b)
		changed = true
	}

	return changed
}

// unlinkGroupBoundary unlinks the group's first and/or last block when that
// block is a single non-unique word, returning whether anything changed.
func (e *Extractor) unlinkGroupBoundary(g Group) bool {
	changed := false

	first := e.Blocks[g.BlockStart]
	if first.Kind == KindSame && first.Count == 1 && first.Words <= 1 && !first.Unique {
		e.unlinkBlock(first)
		changed = true
	}

	if g.BlockEnd != g.BlockStart {
		last := e.Blocks[g.BlockEnd]
		if last.Kind == KindSame && last.Count == 1 && last.Words <= 1 && !last.Unique {
			e.unlinkBlock(last)
			changed = true
		}
	}

	return changed
}

func (e *Extractor) unlinkBlock(b Block) {
	for i := b.OldIdx; i != token.None; {
		ot := e.Old.Arena.At(i)
		if ot.Link == token.None {
			break
		}

		e.New.Arena.At(ot.Link).Link = token.None

		next := ot.Next
		ot.Link = token.None

		if i == e.lastOldIdxOf(b) {
			break
		}

		i = next
	}
}

func (e *Extractor) lastOldIdxOf(b Block) int {
	i := b.OldIdx
	for n := 1; n < b.Count; n++ {
		i = e.Old.Arena.At(i).Next
	}

	return i
}
