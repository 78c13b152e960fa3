package fangs

import (
	"image/color"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/fang"

	"github.com/wikimedia/mediawiki-extensions-WikEdDiff/style"
)

// ColorScheme creates a [fang.ColorScheme] from [style.Styles].
//
// This allows CLI styling to be derived from the same theme system used to
// render diffs, giving consistent colors between diff output and CLI help
// text.
func ColorScheme(styles style.Styles) fang.ColorScheme {
	text := styles.Style(style.Text)
	insert := styles.Style(style.Insert)
	deleteStyle := styles.Style(style.Delete)
	move := styles.Style(style.Move)
	clip := styles.Style(style.Clip)

	return fang.ColorScheme{
		Base:           text.GetForeground(),
		Title:          move.GetForeground(),
		Description:    text.GetForeground(),
		Codeblock:      text.GetBackground(),
		Program:        move.GetForeground(),
		Command:        insert.GetForeground(),
		DimmedArgument: clip.GetForeground(),
		Comment:        clip.GetForeground(),
		Flag:           insert.GetForeground(),
		FlagDefault:    clip.GetForeground(),
		QuotedString:   insert.GetForeground(),
		Argument:       text.GetForeground(),
		Dash:           text.GetForeground(),
		ErrorHeader: [2]color.Color{
			deleteStyle.GetForeground(),
			deleteStyle.GetBackground(),
		},
	}
}

// ColorSchemeFunc returns a [fang.ColorSchemeFunc] that creates a
// [fang.ColorScheme] from [style.Styles].
//
// This wraps [ColorScheme] for use with [fang.WithColorSchemeFunc]. Since
// themes are designed for a specific light/dark mode, the
// [lipgloss.LightDarkFunc] parameter is ignored.
func ColorSchemeFunc(styles style.Styles) fang.ColorSchemeFunc {
	return func(_ lipgloss.LightDarkFunc) fang.ColorScheme {
		return ColorScheme(styles)
	}
}

