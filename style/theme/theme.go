// Package theme provides predefined color themes for diff rendering.
package theme

import (
	"sort"

	"charm.land/lipgloss/v2"

	"github.com/wikimedia/mediawiki-extensions-WikEdDiff/style"
)

// Theme bundles a base [style.Styles] set with the move-block accent
// palette a renderer cycles through as it assigns colors to moved groups
// (spec §4.5's sequential color assignment).
type Theme struct {
	// Styles returns the theme's base style set.
	Styles func() style.Styles
	// MoveColors is the ordered palette of move-block accent colors. The
	// renderer assigns colors[color % len(colors)] to each moved fragment,
	// where color is the moved group's sequential move color.
	MoveColors []lipgloss.Color
	// Name is the theme's lookup key.
	Name string
	// Mode indicates whether the theme targets a light or dark terminal
	// background.
	Mode style.Mode
}

var registry = map[string]Theme{}

func register(t Theme) {
	registry[t.Name] = t
}

// List returns the names of all registered themes targeting the given
// mode, sorted by name.
func List(m style.Mode) []string {
	names := make([]string, 0, len(registry))

	for name, t := range registry {
		if t.Mode == m {
			names = append(names, name)
		}
	}

	sort.Strings(names)

	return names
}

// Styles looks up a theme by name and returns its base style set.
// The second return value is false if no theme with that name is
// registered.
func Styles(name string) (style.Styles, bool) {
	t, ok := registry[name]
	if !ok {
		return nil, false
	}

	return t.Styles(), true
}

// MoveColors looks up a theme's move-block accent palette by name.
// The second return value is false if no theme with that name is
// registered.
func MoveColors(name string) ([]lipgloss.Color, bool) {
	t, ok := registry[name]
	if !ok {
		return nil, false
	}

	return t.MoveColors, true
}
