// Package diffviewport provides a scrollable Bubble Tea viewport for a
// [wikeddiff.Diff] result.
//
// # Basic Usage
//
//	vp := diffviewport.New(
//		diffviewport.WithRenderOptions(render.Options{
//			Styles:     styles,
//			MoveColors: moveColors,
//		}),
//	)
//	vp.SetWidth(80)
//	vp.SetHeight(24)
//	vp.SetTexts(oldText, newText)
//
// [Model] is not itself a [tea.Model]: its Update returns ([Model],
// [tea.Cmd]) and its View returns a string, so a parent Bubble Tea model
// embeds and drives it the same way as [charm.land/bubbles/v2/viewport].
//
// # Search
//
// [Model.SetFinder] installs a [Finder] invoked on every rerender against
// the diff's plain text (spec-equivalent to [fragment.Stream.String]).
// [Literal] covers the common case of a plain substring search; a custom
// [Finder] can wrap a compiled regexp or any other matcher.
package diffviewport
