package theme

import (
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/exp/charmtone"

	"github.com/wikimedia/mediawiki-extensions-WikEdDiff/style"
)

func init() {
	register(Theme{
		Name:       "charm",
		Mode:       style.Dark,
		Styles:     Charm,
		MoveColors: charmMoveColors,
	})
}

var charmMoveColors = []lipgloss.Color{
	charmtone.Julep,
	charmtone.Malibu,
	charmtone.Mauve,
	charmtone.Zest,
	charmtone.Cumin,
	charmtone.Bengal,
}

// Charm returns the default Charm-branded dark theme.
func Charm() style.Styles {
	base := lipgloss.NewStyle().Foreground(charmtone.Smoke)

	return style.NewStyles(base,
		style.Set(style.Same, base),
		style.Set(style.Delete, lipgloss.NewStyle().
			Foreground(charmtone.Cherry).Strikethrough(true)),
		style.Set(style.Insert, lipgloss.NewStyle().
			Foreground(charmtone.Julep)),
		style.Set(style.Move, lipgloss.NewStyle().
			Foreground(charmtone.Oyster).Bold(true)),
		style.Set(style.Clip, lipgloss.NewStyle().
			Foreground(charmtone.Pepper).Italic(true).Faint(true)),
		style.Set(style.Highlight, lipgloss.NewStyle().
			Background(lipgloss.Darken(charmtone.Mustard, 0.5)).
			Foreground(charmtone.Ox)),
		style.Set(style.HighlightSelected, lipgloss.NewStyle().
			Background(charmtone.Mustard).
			Foreground(charmtone.Ox)),
	)
}
