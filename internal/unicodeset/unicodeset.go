// Package unicodeset defines the explicit Unicode code-point classes the
// tokenizer and sentence-level regexes are built from: newlines, paragraph
// marks, blanks, and the three families of sentence-terminating punctuation
// (full stops, exclamation marks, question marks) across scripts that do not
// use ASCII punctuation.
package unicodeset

import "strings"

// Newlines is every code point that terminates a line.
var Newlines = []rune{'\n', '\v', '\f', '\r', '', ' ', ' '}

// Blanks is every code point treated as inter-word whitespace, excluding
// newlines (which have their own boundary semantics).
var Blanks = []rune{' ', '\t', ' ', ' ', ' ', ' ', ' ',
	' ', ' ', ' ', ' ', ' ', ' ', ' ',
	' ', ' ', ' ', '　'}

// FullStops is sentence-terminating "period" punctuation across scripts.
var FullStops = []rune{'.', '。', '．', '｡', '۔', '।', '॥'}

// Exclamations is sentence-terminating exclamation punctuation across scripts.
var Exclamations = []rune{'!', '！', '¡'}

// Questions is sentence-terminating question punctuation across scripts.
var Questions = []rune{'?', '？', '¿'}

// ParagraphMarks is every code point that, doubled or alone on a blank line,
// marks a paragraph boundary. Line separator and paragraph separator are
// included alongside the ASCII newline.
var ParagraphMarks = []rune{'\n', ' ', ' '}

func member(set []rune, r rune) bool {
	for _, c := range set {
		if c == r {
			return true
		}
	}

	return false
}

// IsNewline reports whether r is a line-terminating code point.
func IsNewline(r rune) bool { return member(Newlines, r) }

// IsBlank reports whether r is inter-word whitespace (not a newline).
func IsBlank(r rune) bool { return member(Blanks, r) }

// IsFullStop reports whether r is sentence-terminating "period" punctuation.
func IsFullStop(r rune) bool { return member(FullStops, r) }

// IsExclamation reports whether r is sentence-terminating exclamation punctuation.
func IsExclamation(r rune) bool { return member(Exclamations, r) }

// IsQuestion reports whether r is sentence-terminating question punctuation.
func IsQuestion(r rune) bool { return member(Questions, r) }

// IsSentenceTerminator reports whether r ends a sentence under any of the
// three terminator classes.
func IsSentenceTerminator(r rune) bool {
	return IsFullStop(r) || IsExclamation(r) || IsQuestion(r)
}

// IsParagraphMark reports whether r can mark a paragraph boundary.
func IsParagraphMark(r rune) bool { return member(ParagraphMarks, r) }

// ClassPattern renders set as a regex character class body, escaping any
// character with special meaning inside a class.
func ClassPattern(set []rune) string {
	var b strings.Builder

	b.WriteByte('[')

	for _, r := range set {
		switch r {
		case '\\', ']', '^', '-':
			b.WriteByte('\\')
		}

		b.WriteRune(r)
	}

	b.WriteByte(']')

	return b.String()
}
