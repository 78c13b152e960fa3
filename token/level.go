package token

import (
	"fmt"

	"github.com/dlclark/regexp2"

	"github.com/wikimedia/mediawiki-extensions-WikEdDiff/internal/unicodeset"
)

// Level is a tokenizer granularity. Refinement always proceeds to the next
// finer level; it never skips or goes backward.
type Level int

// Levels in refinement order, finest last.
const (
	LevelParagraph Level = iota
	LevelLine
	LevelSentence
	LevelChunk
	LevelWord
	LevelCharacter
)

// String returns the level's name, used in debug logging.
func (l Level) String() string {
	switch l {
	case LevelParagraph:
		return "paragraph"
	case LevelLine:
		return "line"
	case LevelSentence:
		return "sentence"
	case LevelChunk:
		return "chunk"
	case LevelWord:
		return "word"
	case LevelCharacter:
		return "character"
	default:
		return fmt.Sprintf("level(%d)", int(l))
	}
}

// Next returns the next finer level and true, or (LevelCharacter, false) if
// l is already the finest level.
func (l Level) Next() (Level, bool) {
	if l >= LevelCharacter {
		return LevelCharacter, false
	}

	return l + 1, true
}

// chunkAtom matches wiki grammatical atoms that must never be fragmented by
// later refinement: double/single bracket links, double-brace templates,
// HTML-like tags, and bare URLs.
const chunkAtomPattern = `\[\[.*?\]\]|\{\{.*?\}\}|\[[^\[\]]*\]|<[a-zA-Z/][^<>]*>|https?://[^\s\]]+`

var (
	paragraphRE = mustCompile(`\n[ \t]*\n+`)
	lineRE      = mustCompile(`\n`)
	sentenceRE  = mustCompile(
		unicodeset.ClassPattern(append(append(append([]rune{},
			unicodeset.FullStops...), unicodeset.Exclamations...), unicodeset.Questions...)) +
			`+['")\]]*` + unicodeset.ClassPattern(unicodeset.Blanks) + `+`,
	)
	chunkRE = mustCompile(chunkAtomPattern + `|[\p{L}\p{N}_]+`)
	wordRE  = mustCompile(`[\p{L}\p{N}_]+`)
)

func mustCompile(pattern string) *regexp2.Regexp {
	re, err := regexp2.Compile(pattern, regexp2.RE2)
	if err != nil {
		panic(fmt.Sprintf("token: invalid built-in pattern %q: %v", pattern, err))
	}

	return re
}

// regexpFor returns the splitting regex for level, or nil for
// [LevelCharacter], which spansFor splits into grapheme clusters rather
// than by pattern.
func regexpFor(level Level) *regexp2.Regexp {
	switch level {
	case LevelParagraph:
		return paragraphRE
	case LevelLine:
		return lineRE
	case LevelSentence:
		return sentenceRE
	case LevelChunk:
		return chunkRE
	case LevelWord:
		return wordRE
	default:
		return nil
	}
}

// splitSpans splits s into an ordered list of substrings by alternating
// matches of re with the text between them, in left-to-right order. Matches
// and non-matches are both returned; zero-length matches are skipped so
// that no empty token is ever produced (per the arena's non-empty-token
// invariant).
func splitSpans(re *regexp2.Regexp, s string) ([]string, error) {
	var out []string

	pos := 0

	m, err := re.FindStringMatch(s)
	if err != nil {
		return nil, fmt.Errorf("token: regex match: %w", err)
	}

	for m != nil {
		start := m.Index
		end := m.Index + m.Length

		if start > pos {
			out = append(out, s[pos:start])
		}

		if m.Length > 0 {
			out = append(out, s[start:end])
		}

		pos = end

		m, err = re.FindNextMatch(m)
		if err != nil {
			return nil, fmt.Errorf("token: regex match: %w", err)
		}
	}

	if pos < len(s) {
		out = append(out, s[pos:])
	}

	return out, nil
}

// SignificantMatches returns every match of the word regex followed by
// every match of the chunk regex against text, in that order. The matcher's
// uniqueness heuristic (§4.2 pass 3) uses this to test whether a token's
// text contains a constituent that occurs exactly once in both revisions.
func SignificantMatches(text string) []string {
	var out []string

	for _, re := range [...]*regexp2.Regexp{wordRE, chunkRE} {
		m, err := re.FindStringMatch(text)
		for err == nil && m != nil {
			out = append(out, m.String())
			m, err = re.FindNextMatch(m)
		}
	}

	return out
}

