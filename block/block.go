// Package block extracts the block/section/group model from a fully linked
// pair of token versions: maximal runs of linked tokens become "=" blocks,
// sections bound where moves cross, groups collect contiguous runs, a
// longest-increasing-subsequence rule picks which groups render in place,
// and the rest are placed as deletions, insertions, and move marks.
package block

import (
	"strings"
	"unicode/utf8"

	"github.com/wikimedia/mediawiki-extensions-WikEdDiff/token"
)

// Kind is a block's role in the final model.
type Kind int

const (
	// KindSame is a maximal run of linked tokens ("=").
	KindSame Kind = iota
	// KindDelete is a maximal unlinked OLD-side run ("-").
	KindDelete
	// KindInsert is a maximal unlinked NEW-side run ("+").
	KindInsert
	// KindMove is a synthetic move-mark block ("|") for a group rendered
	// elsewhere in the stream.
	KindMove
)

// None is the sentinel index meaning "unassigned", shared with [token.None].
const None = token.None

// Block is a maximal run of like-typed tokens.
type Block struct {
	Kind Kind

	// OldIdx/NewIdx are arena indices of the block's first token on each
	// side, or [None] where the block has no presence on that side.
	OldIdx int
	NewIdx int

	Count int
	Words int
	Chars int
	Unique bool
	Text   string

	// OldNumber/NewNumber are token ordinals for [KindSame]/[KindDelete]/
	// [KindInsert]; for [KindDelete], NewNumber is a placement value rather
	// than a real token ordinal (see placement.go).
	OldNumber int
	NewNumber int

	// OldBlock/NewBlock are this block's rank among all blocks sorted by
	// OldNumber/NewNumber respectively.
	OldBlock int
	NewBlock int

	Section int
	Group   int
	Fixed   bool
	Moved   bool

	// MovedFrom applies only to [KindMove] blocks: the group index the mark
	// refers to. Color is the move's display color (1..N, assigned in move
	// order), set on the mark and on every block of the moved group.
	MovedFrom int
	Color     int
}

// Section is a block-index range closed under NEW/OLD crossings.
type Section struct {
	Start, End int // inclusive indices into Extractor.Blocks, in NEW order
}

// Group is a maximal run of [KindSame] blocks consecutive in OLD order.
type Group struct {
	BlockStart, BlockEnd int // inclusive indices into Extractor.Blocks
	Words, Chars         int
	MaxWords             int
	Unique               bool
	Fixed                bool
	MovedFrom            int
	Color                int
}

// Extractor builds the block/section/group model for a New/Old version
// pair whose tokens have already been fully matched.
//
// Create with [New]; call [Extractor.Run] once, after the matcher, slider,
// and character refiner have all finished.
type Extractor struct {
	New *token.Version
	Old *token.Version

	BlockMinLength int
	UnlinkBlocks   bool
	UnlinkMax      int

	Blocks   []Block
	Sections []Section
	Groups   []Group

	// Reslide is called after unlinking removes links, to re-run gap
	// sliding before the block model is rebuilt from scratch. Tests may
	// leave it nil when UnlinkBlocks is false.
	Reslide func()
}

// New returns an [*Extractor] over newV and oldV with the given
// configuration. reslide re-runs gap sliding after unlinking invalidates
// links; it may be nil if unlink is false.
func New(newV, oldV *token.Version, blockMinLength, unlinkMax int, unlink bool, reslide func()) *Extractor {
	return &Extractor{
		New:            newV,
		Old:            oldV,
		BlockMinLength: blockMinLength,
		UnlinkBlocks:   unlink,
		UnlinkMax:      unlinkMax,
		Reslide:        reslide,
	}
}

// Run builds same-blocks, sections, and groups; selects fixed groups;
// optionally unlinks weak groups and rebuilds; then places deletion and
// insertion blocks and inserts move marks.
func (e *Extractor) Run() {
	e.rebuild()

	if e.UnlinkBlocks {
		e.unlinkWeakGroups()
	}

	e.buildDeletionBlocks()
	e.buildInsertionBlocks()
	e.assignInsertGroups()
	e.insertMoveMarks()
}

// rebuild recomputes Blocks, Sections, and Groups from the current token
// links, discarding any previous state. Used both for the initial build and
// after unlinking invalidates the model.
func (e *Extractor) rebuild() {
	e.buildSameBlocks()
	e.assignOrdinals()
	e.detectSections()
	e.detectGroups()
	e.selectFixedGroups()
}

// buildSameBlocks walks OLD, collecting each maximal run of linked tokens
// whose NEW-side links are themselves contiguous, into one [KindSame]
// block per run, in OLD order.
func (e *Extractor) buildSameBlocks() {
	e.Blocks = e.Blocks[:0]

	oi := e.Old.First
	for oi != token.None {
		ot := e.Old.Arena.At(oi)
		if ot.Link == token.None {
			oi = ot.Next
			continue
		}

		startOld, startNew := oi, ot.Link
		curOld, curNew := oi, ot.Link

		words, chars := wordCharCount(ot.Text)
		unique := ot.Unique
		var text strings.Builder
		text.WriteString(ot.Text)

		count := 1

		for {
			nextOld := e.Old.Arena.At(curOld).Next
			if nextOld == token.None {
				break
			}

			nt := e.Old.Arena.At(nextOld)
			if nt.Link == token.None {
				break
			}

			if nt.Link != e.New.Arena.At(curNew).Next {
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
			curOld, curNew = nextOld, nt.Link
		}

		e.Blocks = append(e.Blocks, Block{
			Kind:      KindSame,
			OldIdx:    startOld,
			NewIdx:    startNew,
			Count:     count,
			Words:     words,
			Chars:     chars,
			Unique:    unique,
			Text:      text.String(),
			OldNumber: e.Old.Arena.At(startOld).Number,
			NewNumber: e.New.Arena.At(startNew).Number,
		})

		oi = e.Old.Arena.At(curOld).Next
	}
}

// assignOrdinals sorts Blocks by NewNumber (the working order for section
// and group detection) and assigns NewBlock/OldBlock ranks.
func (e *Extractor) assignOrdinals() {
	sortByNewNumber(e.Blocks)

	for i := range e.Blocks {
		e.Blocks[i].NewBlock = i
	}

	oldOrder := make([]int, len(e.Blocks))
	for i := range oldOrder {
		oldOrder[i] = i
	}

	sortIndicesByOldNumber(e.Blocks, oldOrder)

	for rank, idx := range oldOrder {
		e.Blocks[idx].OldBlock = rank
	}
}

func sortByNewNumber(blocks []Block) {
	insertionSort(blocks, func(a, b Block) bool { return a.NewNumber < b.NewNumber })
}

func sortIndicesByOldNumber(blocks []Block, idx []int) {
	insertionSortIdx(idx, func(a, b int) bool { return blocks[a].OldNumber < blocks[b].OldNumber })
}

// insertionSort and insertionSortIdx are small dependency-free stable sorts;
// block counts are small enough (bounded by token count after refinement)
// that O(n^2) is not a concern relative to the rest of the pipeline.
func insertionSort(blocks []Block, less func(a, b Block) bool) {
	for i := 1; i < len(blocks); i++ {
		j := i
		for j > 0 && less(blocks[j], blocks[j-1]) {
			blocks[j], blocks[j-1] = blocks[j-1], blocks[j]
			j--
		}
	}
}

func insertionSortIdx(idx []int, less func(a, b int) bool) {
	for i := 1; i < len(idx); i++ {
		j := i
		for j > 0 && less(idx[j], idx[j-1]) {
			idx[j], idx[j-1] = idx[j-1], idx[j]
			j--
		}
	}
}

func wordCharCount(text string) (words, chars int) {
	chars = utf8.RuneCountInString(text)

	inWord := false
	for _, r := range text {
		letter := isWordRune(r)
		if letter && !inWord {
			words++
		}

		inWord = letter
	}

	return words, chars
}

func isWordRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r > 127 && !strings.ContainsRune(" \t\n\r.,;:!?\"'()[]{}", r)
}
