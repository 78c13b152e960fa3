package render_test

import (
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/stretchr/testify/assert"

	"github.com/wikimedia/mediawiki-extensions-WikEdDiff/fragment"
	"github.com/wikimedia/mediawiki-extensions-WikEdDiff/render"
	"github.com/wikimedia/mediawiki-extensions-WikEdDiff/style"
)

func highlightStyles() style.Styles {
	return style.NewStyles(
		lipgloss.NewStyle(),
		style.Set(style.Highlight, lipgloss.NewStyle().Background(lipgloss.Color("3"))),
		style.Set(style.HighlightSelected, lipgloss.NewStyle().Background(lipgloss.Color("5"))),
	)
}

func TestRenderWithHighlights_NoRangesMatchesRender(t *testing.T) {
	t.Parallel()

	stream := fragment.Stream{
		fragment.Block{{Text: "hello world", Type: fragment.TypeSame, Color: fragment.NoColor}},
	}
	opts := render.Options{Styles: highlightStyles()}

	assert.Equal(t, render.Render(stream, opts), render.RenderWithHighlights(stream, opts, nil))
}

func TestRenderWithHighlights_SplitsMatchedSubstring(t *testing.T) {
	t.Parallel()

	stream := fragment.Stream{
		fragment.Block{{Text: "hello world", Type: fragment.TypeSame, Color: fragment.NoColor}},
	}
	opts := render.Options{Styles: highlightStyles()}

	out := render.RenderWithHighlights(stream, opts, []render.HighlightRange{{Start: 6, End: 11}})

	assert.Contains(t, out, "hello ")
	assert.Contains(t, out, "world")
}

func TestRenderWithHighlights_SelectedUsesDistinctStyle(t *testing.T) {
	t.Parallel()

	stream := fragment.Stream{
		fragment.Block{{Text: "abcdef", Type: fragment.TypeSame, Color: fragment.NoColor}},
	}
	opts := render.Options{Styles: highlightStyles()}

	plain := render.RenderWithHighlights(stream, opts, []render.HighlightRange{{Start: 1, End: 3}})
	selected := render.RenderWithHighlights(stream, opts, []render.HighlightRange{{Start: 1, End: 3, Selected: true}})

	assert.NotEqual(t, plain, selected)
}

func TestRenderWithHighlights_AcrossMultipleFragments(t *testing.T) {
	t.Parallel()

	stream := fragment.Stream{
		fragment.Block{
			{Text: "foo", Type: fragment.TypeDelete, Color: fragment.NoColor},
			{Text: "bar", Type: fragment.TypeInsert, Color: fragment.NoColor},
		},
	}
	opts := render.Options{Styles: style.NewStyles(lipgloss.NewStyle())}

	// "oob" spans the boundary between the two fragments (offsets 2-5).
	out := render.RenderWithHighlights(stream, opts, []render.HighlightRange{{Start: 2, End: 5}})

	assert.Equal(t, "foobar", out)
}
