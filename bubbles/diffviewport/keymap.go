package diffviewport

import "charm.land/bubbles/v2/key"

// KeyMap defines the keybindings for the viewport.
//
// Note that you don't necessarily need to use keybindings at all; the viewport
// can be controlled programmatically with methods like [Model.ScrollDown] and
// [Model.ScrollUp].
//
// Use [DefaultKeyMap] to get a set of default keybindings.
type KeyMap struct {
	// PageDown scrolls down by one page.
	PageDown key.Binding
	// PageUp scrolls up by one page.
	PageUp key.Binding
	// HalfPageUp scrolls up by half a page.
	HalfPageUp key.Binding
	// HalfPageDown scrolls down by half a page.
	HalfPageDown key.Binding
	// Down scrolls down by one line.
	Down key.Binding
	// Up scrolls up by one line.
	Up key.Binding
	// Left scrolls left by the horizontal step.
	Left key.Binding
	// Right scrolls right by the horizontal step.
	Right key.Binding
	// ToggleBlockMoves toggles whether moved blocks render with move
	// markers or as a plain deletion/insertion pair.
	ToggleBlockMoves key.Binding
	// ToggleFullDiff toggles clipping of unchanged context.
	ToggleFullDiff key.Binding
	// SearchNext navigates to the next search match.
	SearchNext key.Binding
	// SearchPrevious navigates to the previous search match.
	SearchPrevious key.Binding
}

// DefaultKeyMap returns a new [KeyMap] with pager-like default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "space", "f"),
			key.WithHelp("f/pgdn", "page down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "b"),
			key.WithHelp("b/pgup", "page up"),
		),
		HalfPageUp: key.NewBinding(
			key.WithKeys("u", "ctrl+u"),
			key.WithHelp("u", "½ page up"),
		),
		HalfPageDown: key.NewBinding(
			key.WithKeys("d", "ctrl+d"),
			key.WithHelp("d", "½ page down"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "move left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "move right"),
		),
		ToggleBlockMoves: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "toggle block moves"),
		),
		ToggleFullDiff: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "toggle full diff"),
		),
		SearchNext: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "next match"),
		),
		SearchPrevious: key.NewBinding(
			key.WithKeys("N"),
			key.WithHelp("N", "prev match"),
		),
	}
}
