package match_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wikimedia/mediawiki-extensions-WikEdDiff/match"
	"github.com/wikimedia/mediawiki-extensions-WikEdDiff/token"
)

func wordVersions(t *testing.T, oldText, newText string) (*token.Version, *token.Version) {
	t.Helper()

	oldV, err := token.NewVersion(oldText)
	require.NoError(t, err)
	require.NoError(t, oldV.SplitInitial(token.LevelWord))

	newV, err := token.NewVersion(newText)
	require.NoError(t, err)
	require.NoError(t, newV.SplitInitial(token.LevelWord))

	return newV, oldV
}

func linkedPairs(t *testing.T, newV, oldV *token.Version) map[string]string {
	t.Helper()

	out := make(map[string]string)

	require.NoError(t, newV.Arena.Walk(newV.First, func(idx int, tok *token.Token) {
		if tok.Link == token.None {
			return
		}

		assert.Equal(t, idx, oldV.Arena.At(tok.Link).Link, "link symmetry for %q", tok.Text)
		out[tok.Text] = oldV.Arena.At(tok.Link).Text
	}))

	return out
}

func TestMatcher_IdenticalTextLinksEveryToken(t *testing.T) {
	t.Parallel()

	newV, oldV := wordVersions(t, "the quick fox", "the quick fox")

	m := match.New(newV, oldV, 3, 10, true, true)
	m.Run(token.LevelWord)

	unlinked := 0
	require.NoError(t, newV.Arena.Walk(newV.First, func(_ int, tok *token.Token) {
		if tok.Link == token.None {
			unlinked++
		}
	}))
	assert.Zero(t, unlinked)
}

func TestMatcher_SingleWordReplacement(t *testing.T) {
	t.Parallel()

	newV, oldV := wordVersions(t, "the quick brown fox", "the quick red fox")

	m := match.New(newV, oldV, 3, 10, true, true)
	m.Run(token.LevelWord)

	pairs := linkedPairs(t, newV, oldV)
	assert.Equal(t, "the", pairs["the"])
	assert.Equal(t, "fox", pairs["fox"])
	assert.NotContains(t, pairs, "red")
}

func TestMatcher_LinkSymmetryHolds(t *testing.T) {
	t.Parallel()

	newV, oldV := wordVersions(t, "A B C D", "C D A B")

	m := match.New(newV, oldV, 3, 10, true, true)
	m.Run(token.LevelWord)

	require.NoError(t, newV.Arena.Walk(newV.First, func(idx int, tok *token.Token) {
		if tok.Link == token.None {
			return
		}
		assert.Equal(t, idx, oldV.Arena.At(tok.Link).Link)
	}))
}

func TestMatcher_NoCommonTokensLinksNothing(t *testing.T) {
	t.Parallel()

	newV, oldV := wordVersions(t, "abc", "xyz")

	m := match.New(newV, oldV, 3, 10, true, true)
	m.Run(token.LevelWord)

	pairs := linkedPairs(t, newV, oldV)
	assert.Empty(t, pairs)
}

func TestMatcher_RecursionResolvesCrossedDuplicates(t *testing.T) {
	t.Parallel()

	newV, oldV := wordVersions(t, "x a y a z", "x a z a y")

	m := match.New(newV, oldV, 3, 10, true, true)
	m.Run(token.LevelWord)

	// Both "a" tokens and the boundary "x" should resolve via repeat/recursion.
	require.NoError(t, newV.Arena.Walk(newV.First, func(_ int, tok *token.Token) {
		if tok.Text == "x" || tok.Text == "a" {
			assert.NotEqual(t, token.None, tok.Link)
		}
	}))
}
