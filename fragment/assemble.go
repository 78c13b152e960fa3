package fragment

import "github.com/wikimedia/mediawiki-extensions-WikEdDiff/block"

// Assembler walks a block extractor's render-ordered blocks and groups and
// builds the flat fragment list described in spec §4.6.
type Assembler struct {
	Groups         []block.Group
	ShowBlockMoves bool
}

// New returns an [*Assembler] over groups, honoring showBlockMoves (spec
// §6's showBlockMoves option).
func New(groups []block.Group, showBlockMoves bool) *Assembler {
	return &Assembler{Groups: groups, ShowBlockMoves: showBlockMoves}
}

// groupInfo is the per-group state the assembler needs but [block.Group]
// itself does not carry: its concatenated text (from member same-blocks,
// in render order) and the NewNumber of its first member, used to decide
// mark direction.
type groupInfo struct {
	text           string
	firstNewNumber int
}

// Assemble converts ordered (as returned by [block.Extractor.OrderedBlocks])
// into a single, unclipped fragment block. The caller runs clipping and
// wraps the result into a [Stream] afterward.
func (a *Assembler) Assemble(ordered []block.Block) []Fragment {
	moveByGroup := make(map[int]block.Block, len(a.Groups))
	groups := make(map[int]*groupInfo, len(a.Groups))

	for _, b := range ordered {
		switch {
		case b.Kind == block.KindMove:
			moveByGroup[b.MovedFrom] = b
		case b.Kind == block.KindSame && b.Moved:
			gi, ok := groups[b.Group]
			if !ok {
				gi = &groupInfo{firstNewNumber: b.NewNumber}
				groups[b.Group] = gi
			}

			gi.text += b.Text
		}
	}

	var frags []Fragment

	openGroup := block.None

	closeOpen := func() {
		if openGroup == block.None {
			return
		}

		frags = append(frags, Fragment{Type: TypeMoveClose, Color: a.Groups[openGroup].Color})
		openGroup = block.None
	}

	for _, b := range ordered {
		if openGroup != block.None && !continuesGroup(b, openGroup) {
			closeOpen()
		}

		switch b.Kind {
		case block.KindMove:
			appendMark(&frags, b, groups[b.MovedFrom], a.ShowBlockMoves)
		case block.KindSame:
			switch {
			case b.Moved && a.ShowBlockMoves:
				if openGroup == block.None {
					openGroup = b.Group
					frags = append(frags, Fragment{
						Type:  openType(groups[b.Group].firstNewNumber, moveByGroup[b.Group].NewNumber),
						Color: b.Color,
					})
				}

				if b.Text != "" {
					frags = append(frags, Fragment{Text: b.Text, Type: TypeSame, Color: b.Color})
				}
			case b.Moved:
				// showBlockMoves disabled: render the moved content as a
				// plain insertion at its own position; the matching
				// deletion is emitted once, at the reference mark's
				// position, by appendMark.
				if b.Text != "" {
					frags = append(frags, Fragment{Text: b.Text, Type: TypeInsert, Color: NoColor})
				}
			case b.Text != "":
				frags = append(frags, Fragment{Text: b.Text, Type: TypeSame, Color: NoColor})
			}
		case block.KindDelete:
			if b.Text != "" {
				frags = append(frags, Fragment{Text: b.Text, Type: TypeDelete, Color: NoColor})
			}
		case block.KindInsert:
			if b.Text != "" {
				frags = append(frags, Fragment{Text: b.Text, Type: TypeInsert, Color: NoColor})
			}
		}
	}

	closeOpen()

	return mergeAdjacent(frags)
}

// continuesGroup reports whether b is itself a member of the currently open
// moved group, so the opener/closer pair spans exactly that group's
// contiguous same-blocks in render order.
func continuesGroup(b block.Block, openGroup int) bool {
	return b.Kind == block.KindSame && b.Moved && b.Group == openGroup
}

// openType picks (< vs (> for a moved group's opener based on whether its
// reference mark renders before or after the group's own content in the
// stream: a mark already behind us means the content moved further along
// ((>), a mark still ahead means it moved back ((<).
func openType(firstNewNumber, markNewNumber int) Type {
	if markNewNumber <= firstNewNumber {
		return TypeMoveOpenRight
	}

	return TypeMoveOpenLeft
}

// appendMark emits the reference-point fragment for a [block.KindMove]
// block: when block moves are shown, a mark fragment carrying the moved
// group's concatenated text; otherwise a plain deletion, matching the
// showBlockMoves=false contract (spec §6).
func appendMark(frags *[]Fragment, mark block.Block, g *groupInfo, showBlockMoves bool) {
	if g == nil || g.text == "" {
		return
	}

	if !showBlockMoves {
		*frags = append(*frags, Fragment{Text: g.text, Type: TypeDelete, Color: NoColor})

		return
	}

	typ := TypeMarkRight
	if mark.NewNumber > g.firstNewNumber {
		typ = TypeMarkLeft
	}

	*frags = append(*frags, Fragment{Text: g.text, Type: typ, Color: mark.Color})
}

// mergeAdjacent merges consecutive text-bearing fragments with equal Type
// and Color, coalescing runs the per-block walk above may have split (e.g.
// two adjacent same-blocks of the same move color).
func mergeAdjacent(frags []Fragment) []Fragment {
	if len(frags) == 0 {
		return frags
	}

	out := frags[:1]

	for _, f := range frags[1:] {
		last := &out[len(out)-1]
		if last.Type == f.Type && last.Color == f.Color && f.Text != "" && last.Text != "" {
			last.Text += f.Text
			continue
		}

		out = append(out, f)
	}

	return out
}
