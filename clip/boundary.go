package clip

import (
	"strings"
	"unicode/utf8"

	"github.com/wikimedia/mediawiki-extensions-WikEdDiff/internal/unicodeset"
)

// clipLeft finds the left clip point for text, trying heading, paragraph,
// line, blank, and fixed-chars boundaries in priority order before falling
// back to a max-lines cap. skip disables clipping entirely (the fragment is
// the stream's first non-container block, spec §4.7).
//
// It returns the kept left-hand prefix, which [boundary] produced it (if
// any), and whether a clip point was found at all.
func (o Options) clipLeft(text string, skip bool) (kept string, b boundary, ok bool) {
	if skip {
		return text, boundaryNone, false
	}

	if pos, found := findHeadingEnd(text, o.HeadingLeft); found {
		return text[:pos], boundaryNone, true
	}

	if pos, found := findBreakForward(text, isParagraphBreakAt, o.ParagraphLeftMin, o.ParagraphLeftMax); found {
		return text[:pos], boundaryNone, true
	}

	if pos, found := findBreakForward(text, isLineBreakAt, o.LineLeftMin, o.LineLeftMax); found {
		return text[:pos], boundaryNone, true
	}

	if pos, found := findBreakForward(text, isBlankRunAt, o.BlankLeftMin, o.BlankLeftMax); found {
		return text[:pos], boundaryBlank, true
	}

	if o.CharsLeft > 0 && utf8.RuneCountInString(text) > o.CharsLeft {
		pos := codePointToByte(text, o.CharsLeft)

		return text[:pos], boundaryChars, true
	}

	if pos, found := clipToMaxLines(text, o.LinesLeftMax, false); found {
		return text[:pos], boundaryNone, true
	}

	return text, boundaryNone, false
}

// clipRight is the mirror of clipLeft: it keeps a suffix of text, scanning
// for boundaries from the end.
func (o Options) clipRight(text string, skip bool) (kept string, b boundary, ok bool) {
	if skip {
		return text, boundaryNone, false
	}

	if pos, found := findHeadingEndBackward(text, o.HeadingRight); found {
		return text[pos:], boundaryNone, true
	}

	if pos, found := findBreakBackward(text, isParagraphBreakAt, o.ParagraphRightMin, o.ParagraphRightMax); found {
		return text[pos:], boundaryNone, true
	}

	if pos, found := findBreakBackward(text, isLineBreakAt, o.LineRightMin, o.LineRightMax); found {
		return text[pos:], boundaryNone, true
	}

	if pos, found := findBreakBackward(text, isBlankRunAt, o.BlankRightMin, o.BlankRightMax); found {
		return text[pos:], boundaryBlank, true
	}

	if o.CharsRight > 0 && utf8.RuneCountInString(text) > o.CharsRight {
		pos := codePointToByte(text, utf8.RuneCountInString(text)-o.CharsRight)

		return text[pos:], boundaryChars, true
	}

	if pos, found := clipToMaxLines(text, o.LinesRightMax, true); found {
		return text[pos:], boundaryNone, true
	}

	return text, boundaryNone, false
}

// breakPredicate reports whether a boundary of its kind ends at byte offset
// i in text (i.e. text[:i] is fully "before" the break and text[i:] fully
// "after" it), and if so returns the byte length of the break itself.
type breakPredicate func(text string, i int) (length int, ok bool)

// findBreakForward scans text left to right for the first occurrence of
// pred whose end position falls within [minCP, maxCP] code points of the
// start.
func findBreakForward(text string, pred breakPredicate, minCP, maxCP int) (int, bool) {
	if maxCP <= 0 {
		return 0, false
	}

	maxByte := codePointToByte(text, maxCP)

	cp := 0

	for i := 0; i < maxByte && i < len(text); {
		if length, ok := pred(text, i); ok {
			end := i + length
			endCP := cp + utf8.RuneCountInString(text[i:end])

			if endCP >= minCP && endCP <= maxCP {
				return end, true
			}

			i = end
			cp = endCP

			continue
		}

		_, size := utf8.DecodeRuneInString(text[i:])
		i += size
		cp++
	}

	return 0, false
}

// findBreakBackward is findBreakForward's mirror, measuring distance from
// the end of text and returning the start offset of the kept right-hand
// suffix.
func findBreakBackward(text string, pred breakPredicate, minCP, maxCP int) (int, bool) {
	if maxCP <= 0 {
		return 0, false
	}

	total := utf8.RuneCountInString(text)
	minByte := codePointToByte(text, total-maxCP)

	if minByte < 0 {
		minByte = 0
	}

	cpFromEnd := 0

	for i := len(text); i > minByte; {
		r, size := utf8.DecodeLastRuneInString(text[:i])
		if r == utf8.RuneError && size == 0 {
			break
		}

		start := i - size
		if length, ok := pred(text, start); ok && start+length == i {
			startCP := cpFromEnd + utf8.RuneCountInString(text[start:i])

			if startCP >= minCP && startCP <= maxCP {
				return i, true
			}
		}

		cpFromEnd++
		i = start
	}

	return 0, false
}

func isLineBreakAt(text string, i int) (int, bool) {
	if text[i] == '\n' {
		return 1, true
	}

	return 0, false
}

// isParagraphBreakAt matches a newline followed by a run of blank lines
// (the paragraph-boundary shape used by the tokenizer's paragraph level).
func isParagraphBreakAt(text string, i int) (int, bool) {
	if text[i] != '\n' {
		return 0, false
	}

	j := i + 1
	blankRunEnd := j

	for blankRunEnd < len(text) {
		r, size := utf8.DecodeRuneInString(text[blankRunEnd:])
		if r == '\n' || unicodeset.IsBlank(r) {
			blankRunEnd += size
			continue
		}

		break
	}

	if strings.Count(text[j:blankRunEnd], "\n") == 0 {
		return 0, false
	}

	return blankRunEnd - i, true
}

func isBlankRunAt(text string, i int) (int, bool) {
	r, size := utf8.DecodeRuneInString(text[i:])
	if !unicodeset.IsBlank(r) {
		return 0, false
	}

	end := i + size

	for end < len(text) {
		r, size := utf8.DecodeRuneInString(text[end:])
		if !unicodeset.IsBlank(r) {
			break
		}

		end += size
	}

	return end - i, true
}

// findHeadingEnd finds the first MediaWiki-style heading line ("== Title
// ==") within maxCP code points of text's start and returns the byte
// offset just past it (including its trailing newline, if any).
func findHeadingEnd(text string, maxCP int) (int, bool) {
	if maxCP <= 0 {
		return 0, false
	}

	maxByte := codePointToByte(text, maxCP)
	if maxByte > len(text) {
		maxByte = len(text)
	}

	line := text[:maxByte]

	for start := 0; start < len(line); {
		if end, ok := headingLineEnd(line, start); ok {
			return end, true
		}

		nl := strings.IndexByte(line[start:], '\n')
		if nl < 0 {
			break
		}

		start += nl + 1
	}

	return 0, false
}

func findHeadingEndBackward(text string, maxCP int) (int, bool) {
	if maxCP <= 0 {
		return 0, false
	}

	total := utf8.RuneCountInString(text)
	minByte := codePointToByte(text, total-maxCP)

	best, found := 0, false
	start := 0

	for {
		nl := strings.IndexByte(text[start:], '\n')

		lineEnd := len(text)
		if nl >= 0 {
			lineEnd = start + nl
		}

		if start < minByte {
			if nl < 0 {
				break
			}

			start = lineEnd + 1

			continue
		}

		if isHeadingLine(text[start:lineEnd]) {
			best, found = start, true
		}

		if nl < 0 {
			break
		}

		start = lineEnd + 1
	}

	return best, found
}

// headingLineEnd reports whether the line starting at i is a heading line
// and, if so, the byte offset just past its terminating newline (or end of
// text).
func headingLineEnd(text string, i int) (int, bool) {
	nl := strings.IndexByte(text[i:], '\n')

	end := len(text)
	lineEnd := end

	if nl >= 0 {
		lineEnd = i + nl
		end = lineEnd + 1
	}

	if !isHeadingLine(text[i:lineEnd]) {
		return 0, false
	}

	return end, true
}

func isHeadingLine(line string) bool {
	trimmed := strings.TrimRight(line, " \t")

	if !strings.HasPrefix(trimmed, "=") || !strings.HasSuffix(trimmed, "=") {
		return false
	}

	return utf8.RuneCountInString(strings.TrimLeft(trimmed, "=")) < utf8.RuneCountInString(trimmed)
}

// clipToMaxLines keeps at most maxLines lines from text, from the front
// (fromEnd=false) or the back (fromEnd=true), and reports the byte offset
// of the cut.
func clipToMaxLines(text string, maxLines int, fromEnd bool) (int, bool) {
	if maxLines <= 0 {
		return 0, false
	}

	if fromEnd {
		count := 0
		for i := len(text); i > 0; {
			r, size := utf8.DecodeLastRuneInString(text[:i])
			i -= size

			if r == '\n' {
				count++
				if count > maxLines {
					return i + size, true
				}
			}
		}

		return 0, false
	}

	count := 0

	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if r == '\n' {
			count++
			if count >= maxLines {
				return i + size, true
			}
		}

		i += size
	}

	return 0, false
}

// trimLeftSide trims a kept left-hand fragment's trailing newlines always,
// and its trailing blanks too when b indicates a chars or blank clip (spec
// §4.7's splice rule).
func trimLeftSide(text string, b boundary) string {
	text = strings.TrimRight(text, "\n")

	if b == boundaryChars || b == boundaryBlank {
		text = trimTrailingBlanks(text)
	}

	return text
}

// trimRightSide is trimLeftSide's mirror, trimming leading newlines always
// and leading blanks when the clip type warrants it.
func trimRightSide(text string, b boundary) string {
	text = strings.TrimLeft(text, "\n")

	if b == boundaryChars || b == boundaryBlank {
		text = trimLeadingBlanks(text)
	}

	return text
}

func trimTrailingBlanks(text string) string {
	for len(text) > 0 {
		r, size := utf8.DecodeLastRuneInString(text)
		if !unicodeset.IsBlank(r) {
			break
		}

		text = text[:len(text)-size]
	}

	return text
}

func trimLeadingBlanks(text string) string {
	for len(text) > 0 {
		r, size := utf8.DecodeRuneInString(text)
		if !unicodeset.IsBlank(r) {
			break
		}

		text = text[size:]
	}

	return text
}

// codePointToByte converts a code-point offset into text into the
// corresponding byte offset, per spec §9's arithmetic note (thresholds are
// code-point counts; slicing must happen on byte offsets).
func codePointToByte(text string, cp int) int {
	if cp <= 0 {
		return 0
	}

	n := 0

	for i := range text {
		if n == cp {
			return i
		}

		n++
	}

	return len(text)
}
