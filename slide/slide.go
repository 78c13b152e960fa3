// Package slide implements gap sliding: moving an ambiguous run of unmatched
// tokens to the text's natural boundaries when its content is a repeated run
// that could equally be aligned one position further along.
package slide

import (
	"github.com/wikimedia/mediawiki-extensions-WikEdDiff/internal/unicodeset"
	"github.com/wikimedia/mediawiki-extensions-WikEdDiff/token"
)

// Side selects which version's gaps get slid in one [Slider.Run] pass. The
// matched counterpart on the other side supplies the linked boundary
// tokens the slide compares against.
type Side int

const (
	// SideNew slides gaps in the NEW token list.
	SideNew Side = iota
	// SideOld slides gaps in the OLD token list.
	SideOld
)

// Slider slides maximal runs of unlinked tokens toward natural text
// boundaries (newlines, then blank/word transitions) when the run's content
// repeats across the boundary, making its exact alignment ambiguous.
//
// Create with [New]; call [Slider.Run] after each refinement level that
// performs character or word-level matching.
type Slider struct {
	New *token.Version
	Old *token.Version
}

// New returns a [*Slider] over newV and oldV.
func New(newV, oldV *token.Version) *Slider {
	return &Slider{New: newV, Old: oldV}
}

// Run slides gaps once with NEW as the sliding side, then once with OLD as
// the sliding side, covering either direction's asymmetry.
func (s *Slider) Run() {
	s.slideSide(SideNew)
	s.slideSide(SideOld)
}

func (s *Slider) versions(side Side) (sliding, other *token.Version) {
	if side == SideNew {
		return s.New, s.Old
	}

	return s.Old, s.New
}

// slideSide walks v's active list once, sliding every gap it finds that has
// a linked token immediately following it whose text matches the gap's
// current front token.
func (s *Slider) slideSide(side Side) {
	v, _ := s.versions(side)

	i := v.First
	for i != token.None {
		tok := v.Arena.At(i)
		if tok.Link != token.None {
			i = tok.Next
			continue
		}

		gapFirst := i
		gapLast := i

		for {
			next := v.Arena.At(gapLast).Next
			if next == token.None || v.Arena.At(next).Link != token.None {
				break
			}

			gapLast = next
		}

		after := v.Arena.At(gapLast).Next

		s.slideGap(v, gapFirst, after)

		i = v.Arena.At(gapLast).Next
	}
}

// slideGap computes the full sequence of forward swaps available from
// gapFirst (each swap moves the linked boundary one token to the right
// through a run of repeated text), chooses the best stop point under the
// newline-then-word-border preference, and commits swaps up to that point.
func (s *Slider) slideGap(v *token.Version, gapFirst, after int) {
	// boundaries[0] is the token already linked immediately before the gap
	// (None if the gap opens the list); boundaries[i] for i>=1 is the token
	// that becomes the new boundary after the i-th forward swap.
	boundaries := []int{prevOf(v, gapFirst)}
	swapped := []int{} // swapped[i-1] is the token index absorbed by swap i

	cur := after
	for cur != token.None && v.Arena.At(cur).Text == v.Arena.At(gapFirst).Text {
		boundaries = append(boundaries, cur)
		swapped = append(swapped, cur)

		cur = v.Arena.At(cur).Next
	}

	if len(swapped) == 0 {
		return
	}

	stop := chooseStop(v, boundaries)

	receiver := gapFirst
	for i := range stop {
		giver := swapped[i]
		s.commitSwap(v, receiver, giver)
		receiver = giver
	}
}

// chooseStop picks the index into boundaries to stop sliding at: the last
// index whose boundary token ends the gap on a newline, else the last index
// (beyond 0) whose boundary token's blank/word classification differs from
// boundaries[0]'s, else the full slide (len(boundaries)-1).
func chooseStop(v *token.Version, boundaries []int) int {
	for i := len(boundaries) - 1; i >= 0; i-- {
		if endsInNewline(v, boundaries[i]) {
			return i
		}
	}

	frontBlank := classifyBlank(v, boundaries[0])

	for i := len(boundaries) - 1; i >= 1; i-- {
		if classifyBlank(v, boundaries[i]) != frontBlank {
			return i
		}
	}

	return len(boundaries) - 1
}

func endsInNewline(v *token.Version, idx int) bool {
	if idx == token.None {
		return false
	}

	text := v.Arena.At(idx).Text
	if text == "" {
		return false
	}

	r := []rune(text)

	return unicodeset.IsNewline(r[len(r)-1])
}

// classifyBlank reports whether idx's token text is blank (whitespace),
// used to detect a word/blank transition when no newline boundary exists.
func classifyBlank(v *token.Version, idx int) bool {
	if idx == token.None {
		return false
	}

	text := v.Arena.At(idx).Text
	if text == "" {
		return false
	}

	return unicodeset.IsBlank([]rune(text)[0])
}

func prevOf(v *token.Version, idx int) int {
	if idx == token.None {
		return token.None
	}

	return v.Arena.At(idx).Prev
}

// commitSwap transfers giver's link to receiver: receiver (same text as
// giver) becomes linked to giver's other-version counterpart, and giver
// becomes unlinked, joining the gap in receiver's place.
func (s *Slider) commitSwap(v *token.Version, receiver, giver int) {
	giverTok := v.Arena.At(giver)
	if giverTok.Link == token.None {
		return
	}

	other := s.otherVersion(v)
	otherIdx := giverTok.Link

	giverTok.Link = token.None
	v.Arena.At(receiver).Link = otherIdx
	other.Arena.At(otherIdx).Link = receiver
}

func (s *Slider) otherVersion(v *token.Version) *token.Version {
	if v == s.New {
		return s.Old
	}

	return s.New
}
