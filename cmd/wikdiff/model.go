package main

import (
	"fmt"
	"path/filepath"
	"slices"

	"charm.land/bubbles/v2/key"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/exp/charmtone"

	tea "charm.land/bubbletea/v2"

	wikeddiff "github.com/wikimedia/mediawiki-extensions-WikEdDiff"
	"github.com/wikimedia/mediawiki-extensions-WikEdDiff/bubbles/diffviewport"
	"github.com/wikimedia/mediawiki-extensions-WikEdDiff/render"
	"github.com/wikimedia/mediawiki-extensions-WikEdDiff/style"
	"github.com/wikimedia/mediawiki-extensions-WikEdDiff/style/theme"
)

type modelOptions struct {
	oldPath    string
	newPath    string
	oldText    string
	newText    string
	search     string
	theme      string
	fullDiff   bool
	blockMoves bool
	noUnicode  bool
	charDiff   bool
}

type model struct {
	opts         *modelOptions
	searchInput  string
	currentTheme string
	themeList    []string
	viewport     diffviewport.Model
	width        int
	height       int
	themeIndex   int
	searching    bool
}

func newModel(opts *modelOptions, styles style.Styles, moveColors []lipgloss.Color) model {
	themeList := theme.List(style.Dark)
	slices.Sort(themeList)

	symbols := render.DefaultSymbols()
	if opts.noUnicode {
		symbols = render.PlainSymbols()
	}

	vp := diffviewport.New(
		diffviewport.WithRenderOptions(render.Options{
			Styles:             styles,
			MoveColors:         moveColors,
			Symbols:            symbols,
			EscapeControlChars: true,
		}),
		diffviewport.WithBlockMoves(opts.blockMoves),
		diffviewport.WithFullDiff(opts.fullDiff),
	)

	themeIndex := max(0, slices.Index(themeList, opts.theme))

	m := model{
		opts:         opts,
		viewport:     vp,
		themeList:    themeList,
		themeIndex:   themeIndex,
		currentTheme: opts.theme,
	}

	diffOpts := diffOptions(opts)
	m.viewport.SetTexts(opts.oldText, opts.newText, diffOpts...)

	if opts.search != "" {
		m.viewport.SetFinder(diffviewport.Literal(opts.search))
	}

	return m
}

// Init implements [tea.Model].
//
//nolint:gocritic // hugeParam: required for tea.Model interface.
func (m model) Init() tea.Cmd {
	return nil
}

// Update implements [tea.Model].
//
//nolint:gocritic // hugeParam: required for tea.Model interface.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.SetWidth(msg.Width)
		m.viewport.SetHeight(msg.Height - 1) // Reserve 1 line for status bar.

	case tea.KeyPressMsg:
		if m.searching {
			m.updateSearchInput(msg)
			return m, nil
		}

		switch {
		case key.Matches(msg, key.NewBinding(key.WithKeys("q", "ctrl+c"))):
			return m, tea.Quit

		case key.Matches(msg, key.NewBinding(key.WithKeys("/"))):
			m.searching = true
			m.searchInput = ""

		case key.Matches(msg, key.NewBinding(key.WithKeys("t"))):
			m.cycleTheme()

		case key.Matches(msg, key.NewBinding(key.WithKeys("esc"))):
			m.viewport.ClearSearch()

		case key.Matches(msg, key.NewBinding(key.WithKeys("g"))):
			m.viewport.GotoTop()

		case key.Matches(msg, key.NewBinding(key.WithKeys("G"))):
			m.viewport.GotoBottom()
		}
	}

	var cmd tea.Cmd

	m.viewport, cmd = m.viewport.Update(msg)

	return m, cmd
}

func (m *model) updateSearchInput(msg tea.KeyPressMsg) {
	switch {
	case key.Matches(msg, key.NewBinding(key.WithKeys("enter"))):
		m.searching = false
		m.viewport.SetFinder(diffviewport.Literal(m.searchInput))

	case key.Matches(msg, key.NewBinding(key.WithKeys("esc"))):
		m.searching = false
		m.searchInput = ""

	case key.Matches(msg, key.NewBinding(key.WithKeys("backspace"))):
		if m.searchInput != "" {
			m.searchInput = m.searchInput[:len(m.searchInput)-1]
		}

	default:
		if s := msg.Text; s != "" {
			m.searchInput += s
		}
	}
}

func (m *model) cycleTheme() {
	if len(m.themeList) == 0 {
		return
	}

	m.themeIndex = (m.themeIndex + 1) % len(m.themeList)
	m.currentTheme = m.themeList[m.themeIndex]

	styles, ok := theme.Styles(m.currentTheme)
	if !ok {
		return
	}

	moveColors, _ := theme.MoveColors(m.currentTheme)

	opts := m.viewport.RenderOptions
	opts.Styles = styles
	opts.MoveColors = moveColors
	m.viewport.SetRenderOptions(opts)
}

func diffOptions(opts *modelOptions) []wikeddiff.Option {
	return []wikeddiff.Option{
		wikeddiff.WithCharDiff(opts.charDiff),
	}
}

// View implements [tea.Model].
//
//nolint:gocritic // hugeParam: required for tea.Model interface.
func (m model) View() tea.View {
	base := lipgloss.JoinVertical(
		lipgloss.Top,
		m.viewport.View(),
		m.statusBar(),
	)

	v := tea.NewView(base)
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion

	return v
}

func (m *model) statusBar() string {
	left := fmt.Sprintf(" %s / %s [%d]",
		filepath.Base(m.opts.oldPath),
		filepath.Base(m.opts.newPath),
		m.viewport.YOffset()+1,
	)

	var right string

	switch {
	case m.searching:
		right = "/" + m.searchInput
	case m.viewport.SearchCount() > 0:
		if line, col, ok := m.viewport.SearchPosition(); ok {
			right = fmt.Sprintf("%d/%d matches (Ln %d, Col %d) ",
				m.viewport.SearchIndex()+1,
				m.viewport.SearchCount(),
				line+1,
				col+1,
			)
		} else {
			right = fmt.Sprintf("%d/%d matches ",
				m.viewport.SearchIndex()+1,
				m.viewport.SearchCount(),
			)
		}

	default:
		right = fmt.Sprintf("%s %d%% ", m.currentTheme, int(m.viewport.ScrollPercent()*100))
	}

	barStyle := lipgloss.NewStyle().
		Background(charmtone.Charcoal).
		Foreground(charmtone.Salt).
		Inline(true)

	padding := max(0, lipgloss.Width(left))

	right = lipgloss.PlaceHorizontal(m.width-padding, lipgloss.Right, right)

	return barStyle.Render(left + right)
}
