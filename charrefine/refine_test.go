package charrefine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wikimedia/mediawiki-extensions-WikEdDiff/charrefine"
	"github.com/wikimedia/mediawiki-extensions-WikEdDiff/internal/runediff"
	"github.com/wikimedia/mediawiki-extensions-WikEdDiff/internal/wikedtest"
	"github.com/wikimedia/mediawiki-extensions-WikEdDiff/match"
	"github.com/wikimedia/mediawiki-extensions-WikEdDiff/token"
)

func runWordMatch(t *testing.T, oldText, newText string) (*token.Version, *token.Version) {
	t.Helper()

	oldV, err := token.NewVersion(oldText)
	require.NoError(t, err)
	require.NoError(t, oldV.SplitInitial(token.LevelWord))

	newV, err := token.NewVersion(newText)
	require.NoError(t, err)
	require.NoError(t, newV.SplitInitial(token.LevelWord))

	m := match.New(newV, oldV, 3, 10, true, true)
	m.Run(token.LevelWord)

	return newV, oldV
}

func TestRefiner_TripleShapeSplitsSingleToken(t *testing.T) {
	t.Parallel()

	newV, oldV := runWordMatch(t, "word", "w ord")

	r := charrefine.New(newV, oldV)
	require.NoError(t, r.Run())

	m := match.New(newV, oldV, 3, 10, true, true)
	m.Run(token.LevelCharacter)

	var newUnlinked []string

	require.NoError(t, newV.Arena.Walk(newV.First, func(_ int, tok *token.Token) {
		if tok.Link == token.None {
			newUnlinked = append(newUnlinked, tok.Text)
		}
	}))

	assert.Equal(t, []string{" "}, newUnlinked, "only the inserted space should remain unlinked")
}

func TestRefiner_EqualCountSimilarGapSplitsToCharacters(t *testing.T) {
	t.Parallel()

	newV, oldV := runWordMatch(t, "cat", "car")

	r := charrefine.New(newV, oldV)
	require.NoError(t, r.Run())

	// "cat" and "car" share two of three characters, so the one-token gap
	// is accepted and re-split into single characters.
	assert.Contains(t, wikedtest.ListText(&newV.Arena, newV.First), "c")
}

func TestRefiner_UdiffBackendAgreesWithDefaultOnEqualCountGap(t *testing.T) {
	t.Parallel()

	newV, oldV := runWordMatch(t, "cat", "car")

	r := charrefine.New(newV, oldV)
	r.LCS = runediff.UdiffLCS
	require.NoError(t, r.Run())

	assert.Contains(t, wikedtest.ListText(&newV.Arena, newV.First), "c")
}

func TestRefiner_DissimilarGapIsRejected(t *testing.T) {
	t.Parallel()

	newV, oldV := runWordMatch(t, "xyz", "abc")

	before := newV.Arena.Len()

	r := charrefine.New(newV, oldV)
	require.NoError(t, r.Run())

	assert.Equal(t, before, newV.Arena.Len(), "completely dissimilar single-token gap should not be split")
}
