// Package clip implements the unchanged-region clipping algorithm (spec
// §4.7): compressing long "=" fragments by discarding interior text and
// splicing in omission markers, preferring to cut on heading, paragraph,
// line, then blank boundaries before falling back to a fixed character
// count.
package clip

import (
	"strings"
	"unicode/utf8"

	"github.com/wikimedia/mediawiki-extensions-WikEdDiff/fragment"
)

// Options carries every clip threshold from spec §6, in Unicode code
// points. All are symmetric left/right pairs except the two skip
// thresholds, which apply to the gap between a fragment's surviving left
// and right halves.
type Options struct {
	Full bool

	HeadingLeft, HeadingRight            int
	ParagraphLeftMin, ParagraphLeftMax   int
	ParagraphRightMin, ParagraphRightMax int
	LineLeftMin, LineLeftMax             int
	LineRightMin, LineRightMax           int
	BlankLeftMin, BlankLeftMax           int
	BlankRightMin, BlankRightMax         int
	CharsLeft, CharsRight                int
	LinesLeftMax, LinesRightMax          int
	SkipChars, SkipLines                 int
}

// Default returns the reference thresholds, scaled for terminal-width
// rendering of prose-like text.
func Default() Options {
	return Options{
		HeadingLeft: 1500, HeadingRight: 1500,
		ParagraphLeftMin: 50, ParagraphLeftMax: 1500,
		ParagraphRightMin: 50, ParagraphRightMax: 1500,
		LineLeftMin: 10, LineLeftMax: 1000,
		LineRightMin: 10, LineRightMax: 1000,
		BlankLeftMin: 50, BlankLeftMax: 500,
		BlankRightMin: 50, BlankRightMax: 500,
		CharsLeft: 100, CharsRight: 100,
		LinesLeftMax: 10, LinesRightMax: 10,
		SkipChars: 100, SkipLines: 4,
	}
}

// Apply clips eligible "=" fragments in frags and returns the resulting
// container: one or more fragment blocks to be joined with "," in the
// final stream. With Options.Full set, clipping is disabled entirely and
// frags is returned as the container's single block, unchanged.
func Apply(frags []fragment.Fragment, opts Options) []fragment.Block {
	if opts.Full {
		return []fragment.Block{append(fragment.Block{}, frags...)}
	}

	minThreshold := opts.CharsLeft
	if opts.CharsRight < minThreshold {
		minThreshold = opts.CharsRight
	}

	var out []fragment.Block

	var cur fragment.Block

	for i, f := range frags {
		if !clippable(f, minThreshold) {
			cur = append(cur, f)
			continue
		}

		isFirst := i == 0
		isLast := i == len(frags)-1

		left, leftMarker, leftOK := opts.clipLeft(f.Text, isFirst)
		right, rightMarker, rightOK := opts.clipRight(f.Text, isLast)

		if !leftOK && !rightOK {
			cur = append(cur, f)
			continue
		}

		if leftOK && rightOK {
			if len(left)+len(right) >= len(f.Text) {
				cur = append(cur, f)
				continue
			}

			middle := f.Text[len(left) : len(f.Text)-len(right)]
			if !opts.gapWideEnough(middle) {
				cur = append(cur, f)
				continue
			}

			left = trimLeftSide(left, leftMarker)
			right = trimRightSide(right, rightMarker)

			if left != "" {
				cur = append(cur, fragment.Fragment{Text: left, Type: fragment.TypeSame})
			}

			if m, ok := leftMarkerFragment(leftMarker); ok {
				cur = append(cur, m)
			}

			out = append(out, cur)
			cur = nil

			if m, ok := rightMarkerFragment(rightMarker); ok {
				cur = append(cur, m)
			}

			if right != "" {
				cur = append(cur, fragment.Fragment{Text: right, Type: fragment.TypeSame})
			}

			continue
		}

		if leftOK {
			left = trimLeftSide(left, leftMarker)
			if left != "" {
				cur = append(cur, fragment.Fragment{Text: left, Type: fragment.TypeSame})
			}

			if m, ok := leftMarkerFragment(leftMarker); ok {
				cur = append(cur, m)
			}

			continue
		}

		right = trimRightSide(right, rightMarker)

		if m, ok := rightMarkerFragment(rightMarker); ok {
			cur = append(cur, m)
		}

		if right != "" {
			cur = append(cur, fragment.Fragment{Text: right, Type: fragment.TypeSame})
		}
	}

	if len(cur) > 0 {
		out = append(out, cur)
	}

	if len(out) == 0 {
		return []fragment.Block{{}}
	}

	return out
}

func clippable(f fragment.Fragment, minThreshold int) bool {
	if f.Type != fragment.TypeSame || f.Color != fragment.NoColor {
		return false
	}

	return utf8.RuneCountInString(f.Text) > minThreshold
}

func (o Options) gapWideEnough(middle string) bool {
	cp := utf8.RuneCountInString(middle)
	lines := strings.Count(middle, "\n")

	return cp >= o.SkipChars || lines >= o.SkipLines
}

// boundary is the clip type chosen for one side, driving whether a marker
// is spliced in and whether trailing/leading blanks get trimmed.
type boundary int

const (
	boundaryNone boundary = iota
	boundaryChars
	boundaryBlank
)

func leftMarkerFragment(b boundary) (fragment.Fragment, bool) {
	switch b {
	case boundaryChars:
		return fragment.Fragment{Type: fragment.TypeClipChars, Color: fragment.NoColor}, true
	case boundaryBlank:
		return fragment.Fragment{Type: fragment.TypeClipBlankLeft, Color: fragment.NoColor}, true
	default:
		return fragment.Fragment{}, false
	}
}

func rightMarkerFragment(b boundary) (fragment.Fragment, bool) {
	switch b {
	case boundaryChars:
		return fragment.Fragment{Type: fragment.TypeClipChars, Color: fragment.NoColor}, true
	case boundaryBlank:
		return fragment.Fragment{Type: fragment.TypeClipBlankRight, Color: fragment.NoColor}, true
	default:
		return fragment.Fragment{}, false
	}
}
