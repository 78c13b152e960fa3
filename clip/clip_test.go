package clip_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wikimedia/mediawiki-extensions-WikEdDiff/clip"
	"github.com/wikimedia/mediawiki-extensions-WikEdDiff/fragment"
)

func TestApply_FullDiffDisablesClipping(t *testing.T) {
	t.Parallel()

	frags := []fragment.Fragment{{Text: strings.Repeat("a", 1000), Type: fragment.TypeSame, Color: fragment.NoColor}}

	out := clip.Apply(frags, clip.Options{Full: true})

	require.Len(t, out, 1)
	assert.Equal(t, frags, []fragment.Fragment(out[0]))
}

func TestApply_ShortFragmentUnclipped(t *testing.T) {
	t.Parallel()

	frags := []fragment.Fragment{{Text: "hello world", Type: fragment.TypeSame, Color: fragment.NoColor}}

	out := clip.Apply(frags, clip.Default())

	require.Len(t, out, 1)
	require.Len(t, out[0], 1)
	assert.Equal(t, "hello world", out[0][0].Text)
}

func TestApply_ColoredFragmentNeverClips(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("a", 5000)
	frags := []fragment.Fragment{{Text: long, Type: fragment.TypeSame, Color: 1}}

	out := clip.Apply(frags, clip.Default())

	require.Len(t, out, 1)
	require.Len(t, out[0], 1)
	assert.Equal(t, long, out[0][0].Text)
}

func TestApply_LongFragmentSplitsOnLineBreaks(t *testing.T) {
	t.Parallel()

	before := strings.Repeat("x", 5) + "\n"
	middle := strings.Repeat("y", 300) + "\n"
	after := strings.Repeat("z", 5)

	opts := clip.Default()
	opts.LineLeftMin, opts.LineLeftMax = 1, 20
	opts.LineRightMin, opts.LineRightMax = 1, 20
	opts.SkipChars = 10
	opts.SkipLines = 0

	frags := []fragment.Fragment{
		{Text: "A", Type: fragment.TypeInsert, Color: fragment.NoColor},
		{Text: before + middle + after, Type: fragment.TypeSame, Color: fragment.NoColor},
		{Text: "B", Type: fragment.TypeInsert, Color: fragment.NoColor},
	}

	out := clip.Apply(frags, opts)

	require.Len(t, out, 2, "expected the long fragment to split into two blocks")

	var firstText, lastText string

	for _, f := range out[0] {
		if f.Type == fragment.TypeSame {
			firstText += f.Text
		}
	}

	for _, f := range out[len(out)-1] {
		if f.Type == fragment.TypeSame {
			lastText += f.Text
		}
	}

	assert.True(t, strings.HasPrefix(firstText, "xxxxx"))
	assert.True(t, strings.HasSuffix(lastText, "zzzzz"))
}

func TestApply_FirstFragmentSkipsLeftClip(t *testing.T) {
	t.Parallel()

	opts := clip.Default()
	opts.CharsLeft, opts.CharsRight = 5, 5
	opts.SkipChars = 1
	opts.SkipLines = 0

	frags := []fragment.Fragment{{Text: strings.Repeat("a", 100), Type: fragment.TypeSame, Color: fragment.NoColor}}

	out := clip.Apply(frags, opts)

	require.NotEmpty(t, out)

	first := out[0]
	require.NotEmpty(t, first)
	assert.True(t, strings.HasPrefix(first[0].Text, "aaaaa"), "left side must stay unclipped for the first block")
}
