package fragment_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wikimedia/mediawiki-extensions-WikEdDiff/block"
	"github.com/wikimedia/mediawiki-extensions-WikEdDiff/fragment"
	"github.com/wikimedia/mediawiki-extensions-WikEdDiff/token"
)

func buildExtractor(t *testing.T, oldText, newText string) *block.Extractor {
	t.Helper()

	oldV, err := token.NewVersion(oldText)
	require.NoError(t, err)
	require.NoError(t, oldV.SplitInitial(token.LevelCharacter))
	require.NoError(t, oldV.Enumerate())

	newV, err := token.NewVersion(newText)
	require.NoError(t, err)
	require.NoError(t, newV.SplitInitial(token.LevelCharacter))
	require.NoError(t, newV.Enumerate())

	oi := oldV.First
	for oi != token.None {
		ot := oldV.Arena.At(oi)

		ni := newV.First
		for ni != token.None {
			nt := newV.Arena.At(ni)
			if nt.Link == token.None && nt.Text == ot.Text {
				ot.Link = ni
				nt.Link = oi

				break
			}

			ni = nt.Next
		}

		oi = ot.Next
	}

	e := block.New(newV, oldV, 4, 0, false, nil)
	e.Run()

	return e
}

func TestAssemble_NoChange(t *testing.T) {
	t.Parallel()

	e := buildExtractor(t, "hello world", "hello world")

	a := fragment.New(e.Groups, true)
	frags := a.Assemble(e.OrderedBlocks())

	require.Len(t, frags, 1)
	assert.Equal(t, fragment.TypeSame, frags[0].Type)
	assert.Equal(t, "hello world", frags[0].Text)
	assert.Equal(t, fragment.NoColor, frags[0].Color)
}

func TestAssemble_PureInsertion(t *testing.T) {
	t.Parallel()

	e := buildExtractor(t, "", "abc")

	a := fragment.New(e.Groups, true)
	frags := a.Assemble(e.OrderedBlocks())

	require.Len(t, frags, 1)
	assert.Equal(t, fragment.TypeInsert, frags[0].Type)
	assert.Equal(t, "abc", frags[0].Text)
}

func TestAssemble_PureDeletion(t *testing.T) {
	t.Parallel()

	e := buildExtractor(t, "abc", "")

	a := fragment.New(e.Groups, true)
	frags := a.Assemble(e.OrderedBlocks())

	require.Len(t, frags, 1)
	assert.Equal(t, fragment.TypeDelete, frags[0].Type)
	assert.Equal(t, "abc", frags[0].Text)
}

func TestAssemble_MoveEmitsOpenMarkClose(t *testing.T) {
	t.Parallel()

	e := buildExtractor(t, "ABC", "BCA")

	a := fragment.New(e.Groups, true)
	frags := a.Assemble(e.OrderedBlocks())

	var (
		sawOpen, sawClose, sawMark bool
		moveColor                  int
	)

	for _, f := range frags {
		switch f.Type {
		case fragment.TypeMoveOpenLeft, fragment.TypeMoveOpenRight:
			sawOpen = true
			moveColor = f.Color
		case fragment.TypeMoveClose:
			sawClose = true
			assert.Equal(t, moveColor, f.Color)
		case fragment.TypeMarkLeft, fragment.TypeMarkRight:
			sawMark = true
			assert.Equal(t, "A", f.Text)
		}
	}

	assert.True(t, sawOpen, "expected a move opener")
	assert.True(t, sawClose, "expected a move closer")
	assert.True(t, sawMark, "expected a reference mark")
}

func TestAssemble_ShowBlockMovesDisabledFallsBackToDeleteInsert(t *testing.T) {
	t.Parallel()

	e := buildExtractor(t, "ABC", "BCA")

	a := fragment.New(e.Groups, false)
	frags := a.Assemble(e.OrderedBlocks())

	for _, f := range frags {
		assert.NotEqual(t, fragment.TypeMoveOpenLeft, f.Type)
		assert.NotEqual(t, fragment.TypeMoveOpenRight, f.Type)
		assert.NotEqual(t, fragment.TypeMarkLeft, f.Type)
		assert.NotEqual(t, fragment.TypeMarkRight, f.Type)
	}

	var sawDelete, sawInsert bool

	for _, f := range frags {
		if f.Type == fragment.TypeDelete && f.Text == "A" {
			sawDelete = true
		}

		if f.Type == fragment.TypeInsert && f.Text == "A" {
			sawInsert = true
		}
	}

	assert.True(t, sawDelete)
	assert.True(t, sawInsert)
}

func TestStream_IsNoChange(t *testing.T) {
	t.Parallel()

	s := fragment.Stream{{{Type: fragment.TypeSame, Color: fragment.NoColor, Text: "x"}}}
	assert.True(t, s.IsNoChange())

	s2 := fragment.Stream{{{Type: fragment.TypeInsert, Text: "x"}}}
	assert.False(t, s2.IsNoChange())
}
