package slide_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wikimedia/mediawiki-extensions-WikEdDiff/slide"
	"github.com/wikimedia/mediawiki-extensions-WikEdDiff/token"
)

func charVersion(t *testing.T, text string) *token.Version {
	t.Helper()

	v, err := token.NewVersion(text)
	require.NoError(t, err)
	require.NoError(t, v.SplitInitial(token.LevelCharacter))

	return v
}

// nthIdx returns the arena index of the i-th token in v's active list.
func nthIdx(t *testing.T, v *token.Version, i int) int {
	t.Helper()

	idx := v.First
	for range i {
		idx = v.Arena.At(idx).Next
		require.NotEqual(t, token.None, idx)
	}

	return idx
}

func link(v1, v2 *token.Version, i1, i2 int) {
	v1.Arena.At(i1).Link = i2
	v2.Arena.At(i2).Link = i1
}

func TestSlider_SlidesAmbiguousGapWhenNoNaturalBoundary(t *testing.T) {
	t.Parallel()

	newV := charVersion(t, "aab")
	oldV := charVersion(t, "xab")

	// New: a(0) a(1) b(2); Old: x(0) a(1) b(2).
	link(newV, oldV, nthIdx(t, newV, 1), nthIdx(t, oldV, 1))
	link(newV, oldV, nthIdx(t, newV, 2), nthIdx(t, oldV, 2))

	slide.New(newV, oldV).Run()

	gapFirst := nthIdx(t, newV, 0)
	shifted := nthIdx(t, newV, 1)

	assert.Equal(t, nthIdx(t, oldV, 1), newV.Arena.At(gapFirst).Link, "front token should absorb the boundary link")
	assert.Equal(t, token.None, newV.Arena.At(shifted).Link, "displaced token should become the new gap")
}

func TestSlider_StopsAtNewlineBoundary(t *testing.T) {
	t.Parallel()

	newV := charVersion(t, "\naab")
	oldV := charVersion(t, "\nxab")

	// New: \n(0) a(1) a(2) b(3); Old: \n(0) x(1) a(2) b(3).
	link(newV, oldV, nthIdx(t, newV, 0), nthIdx(t, oldV, 0))
	link(newV, oldV, nthIdx(t, newV, 2), nthIdx(t, oldV, 2))
	link(newV, oldV, nthIdx(t, newV, 3), nthIdx(t, oldV, 3))

	slide.New(newV, oldV).Run()

	gap := nthIdx(t, newV, 1)
	boundary := nthIdx(t, newV, 2)

	assert.Equal(t, token.None, newV.Arena.At(gap).Link, "gap should stay put when already preceded by a newline")
	assert.Equal(t, nthIdx(t, oldV, 2), newV.Arena.At(boundary).Link)
}

func TestSlider_NoOpWhenGapContentDiffersFromBoundary(t *testing.T) {
	t.Parallel()

	newV := charVersion(t, "acb")
	oldV := charVersion(t, "xcb")

	link(newV, oldV, nthIdx(t, newV, 1), nthIdx(t, oldV, 1))
	link(newV, oldV, nthIdx(t, newV, 2), nthIdx(t, oldV, 2))

	slide.New(newV, oldV).Run()

	gap := nthIdx(t, newV, 0)
	assert.Equal(t, token.None, newV.Arena.At(gap).Link)
}
