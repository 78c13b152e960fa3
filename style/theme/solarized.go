package theme

import (
	"charm.land/lipgloss/v2"

	"github.com/wikimedia/mediawiki-extensions-WikEdDiff/style"
)

func init() {
	register(Theme{
		Name:       "solarized-light",
		Mode:       style.Light,
		Styles:     SolarizedLight,
		MoveColors: solarizedMoveColors,
	})
}

var solarizedMoveColors = []lipgloss.Color{
	lipgloss.Color("#268bd2"), // blue
	lipgloss.Color("#2aa198"), // cyan
	lipgloss.Color("#6c71c4"), // violet
	lipgloss.Color("#b58900"), // yellow
	lipgloss.Color("#d33682"), // magenta
	lipgloss.Color("#cb4b16"), // orange
}

// SolarizedLight returns a light theme based on the Solarized palette.
func SolarizedLight() style.Styles {
	base := lipgloss.NewStyle().Foreground(lipgloss.Color("#657b83"))

	return style.NewStyles(base,
		style.Set(style.Same, base),
		style.Set(style.Delete, lipgloss.NewStyle().
			Foreground(lipgloss.Color("#dc322f")).Strikethrough(true)),
		style.Set(style.Insert, lipgloss.NewStyle().
			Foreground(lipgloss.Color("#859900"))),
		style.Set(style.Move, lipgloss.NewStyle().
			Foreground(lipgloss.Color("#268bd2")).Bold(true)),
		style.Set(style.Clip, lipgloss.NewStyle().
			Foreground(lipgloss.Color("#93a1a1")).Italic(true)),
		style.Set(style.Highlight, lipgloss.NewStyle().
			Background(lipgloss.Color("#eee8d5")).
			Foreground(lipgloss.Color("#657b83"))),
		style.Set(style.HighlightSelected, lipgloss.NewStyle().
			Background(lipgloss.Color("#b58900")).
			Foreground(lipgloss.Color("#fdf6e3"))),
	)
}
