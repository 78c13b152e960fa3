package token

import (
	"fmt"

	"github.com/dlclark/regexp2"
)

// Version is one text revision's tokenizer state: the raw text, its token
// arena, the head/tail of the currently active token list, and a word to
// occurrence-count map populated once at construction.
//
// The word-count map backs the matcher's uniqueness heuristic (§4.2): a
// matched token is a stable anchor if a word or chunk atom inside it occurs
// exactly once in both revisions.
type Version struct {
	Text      string
	Arena     Arena
	First     int
	Last      int
	WordCount map[string]int
}

// chunkAtomRE matches only the wiki atoms of the chunk level, without its
// plain-word alternative, so words are not counted a second time.
var chunkAtomRE = mustCompile(chunkAtomPattern)

// NewVersion builds a [Version] from text, normalizing line endings
// (\r\n and bare \r to \n) and populating the word-count map from the word
// and chunk-atom regexes run over the whole text.
func NewVersion(text string) (*Version, error) {
	text = normalizeNewlines(text)

	v := &Version{
		Text:      text,
		First:     None,
		Last:      None,
		WordCount: make(map[string]int),
	}

	if err := countMatches(v.WordCount, wordRE, text); err != nil {
		return nil, fmt.Errorf("token: building word-count map: %w", err)
	}

	if err := countMatches(v.WordCount, chunkAtomRE, text); err != nil {
		return nil, fmt.Errorf("token: building word-count map: %w", err)
	}

	return v, nil
}

// countMatches tallies every match of re in text into counts, used to build
// the word-occurrence map the matcher's uniqueness heuristic reads.
func countMatches(counts map[string]int, re *regexp2.Regexp, text string) error {
	m, err := re.FindStringMatch(text)
	if err != nil {
		return fmt.Errorf("regex match: %w", err)
	}

	for m != nil {
		counts[m.String()]++

		m, err = re.FindNextMatch(m)
		if err != nil {
			return fmt.Errorf("regex match: %w", err)
		}
	}

	return nil
}

func normalizeNewlines(s string) string {
	out := make([]byte, 0, len(s))

	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\r':
			out = append(out, '\n')

			if i+1 < len(s) && s[i+1] == '\n' {
				i++
			}
		default:
			out = append(out, s[i])
		}
	}

	return string(out)
}

// SplitInitial performs the first split of the whole text into tokens at
// level, building a fresh doubly-linked active list in the arena.
func (v *Version) SplitInitial(level Level) error {
	spans, err := v.spansFor(level, v.Text)
	if err != nil {
		return err
	}

	prev := None

	for _, span := range spans {
		idx := v.Arena.new(span)

		v.Arena.At(idx).Prev = prev

		if prev == None {
			v.First = idx
		} else {
			v.Arena.At(prev).Next = idx
		}

		prev = idx
	}

	v.Last = prev
	if prev != None {
		v.Arena.At(prev).Next = None
	}

	return nil
}

// SplitRefine replaces the single token at idx with the sub-tokens produced
// by splitting its text at the next-finer level, rewiring its neighbors to
// point at the new run. The original entry remains in the arena but becomes
// unreachable (tombstoned).
//
// It returns the arena index of the first new token, or idx unchanged (with
// no arena mutation) if the token's text does not split into more than one
// span at the next level.
func (v *Version) SplitRefine(level Level, idx int) (int, error) {
	spans, err := v.spansFor(level, v.Arena.At(idx).Text)
	if err != nil {
		return idx, err
	}

	if len(spans) <= 1 {
		return idx, nil
	}

	tok := *v.Arena.At(idx)

	first := None
	prev := None

	for _, span := range spans {
		newIdx := v.Arena.new(span)
		v.Arena.At(newIdx).Prev = prev

		if prev == None {
			first = newIdx
		} else {
			v.Arena.At(prev).Next = newIdx
		}

		prev = newIdx
	}

	last := prev
	v.Arena.At(last).Next = tok.Next

	// Splice [first, last] in where idx used to be.
	if tok.Prev != None {
		v.Arena.At(tok.Prev).Next = first
	} else {
		v.First = first
	}

	v.Arena.At(first).Prev = tok.Prev

	if tok.Next != None {
		v.Arena.At(tok.Next).Prev = last
	} else {
		v.Last = last
	}

	return first, nil
}

// Enumerate walks the active list and assigns each reachable token its
// final Number, in list order. It must be called once, after all
// refinement completes.
func (v *Version) Enumerate() error {
	n := 0

	return v.Arena.Walk(v.First, func(_ int, tok *Token) {
		tok.Number = n
		n++
	})
}

// spansFor splits text at level. [LevelCharacter] splits into grapheme
// clusters and [LevelWord] by Unicode word boundaries (both via uax29);
// every other level uses its regex.
func (v *Version) spansFor(level Level, text string) ([]string, error) {
	switch level {
	case LevelCharacter:
		return splitGraphemes(text), nil
	case LevelWord:
		return splitWords(text), nil
	}

	re := regexpFor(level)

	spans, err := splitSpans(re, text)
	if err != nil {
		return nil, fmt.Errorf("token: splitting at %s level: %w", level, err)
	}

	return spans, nil
}
