// Package diffviewport provides a Bubble Tea component for paging through
// the rendered output of a [wikeddiff.Diff] between two text revisions.
package diffviewport

import (
	"cmp"
	"sort"
	"strings"

	"charm.land/bubbles/v2/key"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	tea "charm.land/bubbletea/v2"

	wikeddiff "github.com/wikimedia/mediawiki-extensions-WikEdDiff"
	"github.com/wikimedia/mediawiki-extensions-WikEdDiff/fragment"
	"github.com/wikimedia/mediawiki-extensions-WikEdDiff/position"
	"github.com/wikimedia/mediawiki-extensions-WikEdDiff/render"
	"github.com/wikimedia/mediawiki-extensions-WikEdDiff/style"
)

const defaultHorizontalStep = 6

// Finder finds matches in a diff's plain text for search highlighting.
// The viewport invokes this during rerender to get fresh matches.
type Finder interface {
	// FindText returns rune-offset ranges to highlight in text, indexed
	// the same way [fragment.Stream.String] concatenates its fragments.
	FindText(text string) []render.HighlightRange
}

// Literal returns a [Finder] that highlights every case-sensitive,
// non-overlapping occurrence of query.
func Literal(query string) Finder {
	return literalFinder(query)
}

type literalFinder string

func (q literalFinder) FindText(text string) []render.HighlightRange {
	query := string(q)
	if query == "" {
		return nil
	}

	var ranges []render.HighlightRange

	qlen := len([]rune(query))

	pos := 0
	for {
		idx := strings.Index(text[pos:], query)
		if idx < 0 {
			break
		}

		byteStart := pos + idx
		runeStart := len([]rune(text[:byteStart]))

		ranges = append(ranges, render.HighlightRange{Start: runeStart, End: runeStart + qlen})

		pos = byteStart + len(query)
	}

	return ranges
}

// Option is a configuration option that works in conjunction with [New].
type Option func(*Model)

// WithStyle sets the container style for the viewport.
//
//nolint:gocritic // hugeParam: Copying.
func WithStyle(s lipgloss.Style) Option {
	return func(m *Model) {
		m.Style = s
	}
}

// WithRenderOptions sets the [render.Options] used to style the diff.
func WithRenderOptions(o render.Options) Option {
	return func(m *Model) {
		m.RenderOptions = o
	}
}

// WithBlockMoves sets the initial value of [Model.BlockMoves].
func WithBlockMoves(v bool) Option {
	return func(m *Model) {
		m.blockMoves = v
	}
}

// WithFullDiff sets the initial value of [Model.FullDiff].
func WithFullDiff(v bool) Option {
	return func(m *Model) {
		m.fullDiff = v
	}
}

// New returns a new model with the given options.
func New(opts ...Option) Model {
	m := Model{blockMoves: true}

	for _, opt := range opts {
		opt(&m)
	}

	m.setInitialValues()

	return m
}

// Model is the Bubble Tea model for the diff viewport.
//
//nolint:recvcheck // tea.Model requires value receivers for Init, Update, View.
type Model struct {
	Style             lipgloss.Style
	RenderOptions     render.Options
	KeyMap            KeyMap
	oldText           string
	newText           string
	baseOpts          []wikeddiff.Option
	diffErr           error
	stream            fragment.Stream
	plainText         string
	finder            Finder
	searchMatches     []render.HighlightRange
	matchPositions    []position.Range
	lines             []string
	xOffset           int
	horizontalStep    int
	MouseWheelDelta   int
	width             int
	searchIndex       int
	yOffset           int
	longestLineWidth  int
	height            int
	blockMoves        bool
	fullDiff          bool
	FillHeight        bool
	MouseWheelEnabled bool
	initialized       bool
}

func (m *Model) setInitialValues() {
	m.KeyMap = DefaultKeyMap()
	m.MouseWheelEnabled = true
	m.MouseWheelDelta = 3
	m.horizontalStep = defaultHorizontalStep
	m.searchIndex = -1
	m.initialized = true
}

// Init satisfies the [tea.Model] interface.
//
//nolint:gocritic // hugeParam: required by tea.Model interface.
func (m Model) Init() tea.Cmd {
	return nil
}

// Height returns the height of the viewport.
func (m *Model) Height() int {
	return m.height
}

// SetHeight sets the height of the viewport.
func (m *Model) SetHeight(h int) {
	m.height = h
}

// Width returns the width of the viewport.
func (m *Model) Width() int {
	return m.width
}

// SetWidth sets the width of the viewport.
func (m *Model) SetWidth(w int) {
	m.width = w
}

// SetTexts replaces the two revisions being compared and rerenders.
func (m *Model) SetTexts(oldText, newText string, opts ...wikeddiff.Option) {
	m.oldText = oldText
	m.newText = newText
	m.baseOpts = opts
	m.rerender()

	if m.YOffset() > m.maxYOffset() {
		m.GotoBottom()
	}
}

// DiffError returns the error from the most recent diff computation, if any.
func (m *Model) DiffError() error {
	return m.diffErr
}

// SetRenderOptions replaces the render options and rerenders.
func (m *Model) SetRenderOptions(o render.Options) {
	m.RenderOptions = o
	m.rerender()
}

// BlockMoves returns whether moved blocks currently render with move
// markers rather than as a plain deletion/insertion pair.
func (m *Model) BlockMoves() bool {
	return m.blockMoves
}

// ToggleBlockMoves flips [Model.BlockMoves] and rerenders.
func (m *Model) ToggleBlockMoves() {
	m.blockMoves = !m.blockMoves
	m.rerender()
}

// FullDiff returns whether clipping of unchanged context is currently
// disabled.
func (m *Model) FullDiff() bool {
	return m.fullDiff
}

// ToggleFullDiff flips [Model.FullDiff] and rerenders.
func (m *Model) ToggleFullDiff() {
	m.fullDiff = !m.fullDiff
	m.rerender()
}

// rerender recomputes the diff and re-renders it with current search
// highlights.
func (m *Model) rerender() {
	if m.oldText == "" && m.newText == "" {
		m.stream = nil
		m.plainText = ""
		m.lines = nil
		m.longestLineWidth = 0
		m.diffErr = nil

		return
	}

	opts := make([]wikeddiff.Option, 0, len(m.baseOpts)+2)
	opts = append(opts, m.baseOpts...)
	opts = append(opts, wikeddiff.WithBlockMoves(m.blockMoves), wikeddiff.WithFullDiff(m.fullDiff))

	stream, err := wikeddiff.Diff(m.oldText, m.newText, opts...)
	if err != nil {
		m.diffErr = err
		m.stream = nil
		m.plainText = ""
		m.lines = nil
		m.longestLineWidth = 0

		return
	}

	m.diffErr = nil
	m.stream = stream
	m.plainText = stream.String()

	if m.finder != nil {
		m.searchMatches = m.finder.FindText(m.plainText)

		if len(m.searchMatches) == 0 {
			m.searchIndex = -1
		} else if m.searchIndex >= len(m.searchMatches) || m.searchIndex < 0 {
			m.searchIndex = 0
		}
	} else {
		m.searchMatches = nil
		m.searchIndex = -1
	}

	m.matchPositions = positionsForRanges(m.plainText, m.searchMatches)

	ranges := make([]render.HighlightRange, len(m.searchMatches))
	for i, r := range m.searchMatches {
		r.Selected = i == m.searchIndex
		ranges[i] = r
	}

	content := render.RenderWithHighlights(m.stream, m.RenderOptions, ranges)
	m.lines = strings.Split(content, "\n")
	m.longestLineWidth = maxLineWidth(m.lines)
}

// AtTop returns whether the viewport is at the top.
func (m *Model) AtTop() bool {
	return m.YOffset() <= 0
}

// AtBottom returns whether the viewport is at or past the bottom.
func (m *Model) AtBottom() bool {
	return m.YOffset() >= m.maxYOffset()
}

// PastBottom returns whether the viewport is scrolled past the last line.
func (m *Model) PastBottom() bool {
	return m.YOffset() > m.maxYOffset()
}

// ScrollPercent returns the vertical scroll position as a float between 0 and 1.
func (m *Model) ScrollPercent() float64 {
	total := len(m.lines)
	if m.maxHeight() >= total {
		return 1.0
	}

	y := float64(m.YOffset())
	h := float64(m.maxHeight())
	t := float64(total)
	v := y / (t - h)

	return clamp(v, 0, 1)
}

// HorizontalScrollPercent returns the horizontal scroll position as a float between 0 and 1.
func (m *Model) HorizontalScrollPercent() float64 {
	if m.xOffset >= m.longestLineWidth-m.maxWidth() {
		return 1.0
	}

	x := float64(m.xOffset)
	w := float64(m.maxWidth())
	t := float64(m.longestLineWidth)
	v := x / (t - w)

	return clamp(v, 0, 1)
}

// maxYOffset returns the maximum Y offset.
func (m *Model) maxYOffset() int {
	return max(0, len(m.lines)-m.maxHeight())
}

// maxXOffset returns the maximum X offset.
func (m *Model) maxXOffset() int {
	return max(0, m.longestLineWidth-m.maxWidth())
}

// maxWidth returns the content width accounting for frame size.
func (m *Model) maxWidth() int {
	return max(0, m.Width()-m.Style.GetHorizontalFrameSize())
}

// maxHeight returns the content height accounting for frame size.
func (m *Model) maxHeight() int {
	return max(0, m.Height()-m.Style.GetVerticalFrameSize())
}

// visibleLines returns the lines currently visible in the viewport.
func (m *Model) visibleLines() []string {
	maxHeight := m.maxHeight()
	maxWidth := m.maxWidth()

	if maxHeight == 0 || maxWidth == 0 {
		return nil
	}

	total := len(m.lines)
	if total == 0 {
		if m.FillHeight {
			return make([]string, maxHeight)
		}

		return nil
	}

	start := m.YOffset()
	end := min(start+maxHeight, total)

	capacity := end - start
	if m.FillHeight && capacity < maxHeight {
		capacity = maxHeight
	}

	lines := make([]string, capacity)
	copy(lines, m.lines[start:end])

	if m.xOffset > 0 || m.longestLineWidth > maxWidth {
		for i := range lines {
			lines[i] = ansi.Cut(lines[i], m.xOffset, m.xOffset+maxWidth)
		}
	}

	return lines
}

// SetYOffset sets the Y offset.
func (m *Model) SetYOffset(n int) {
	m.yOffset = clamp(n, 0, m.maxYOffset())
}

// YOffset returns the current Y offset.
func (m *Model) YOffset() int {
	return m.yOffset
}

// SetXOffset sets the X offset.
func (m *Model) SetXOffset(n int) {
	m.xOffset = clamp(n, 0, m.maxXOffset())
}

// XOffset returns the current X offset.
func (m *Model) XOffset() int {
	return m.xOffset
}

// ScrollDown moves the view down by n lines.
func (m *Model) ScrollDown(n int) {
	if m.AtBottom() || n == 0 || len(m.lines) == 0 {
		return
	}

	m.SetYOffset(m.YOffset() + n)
}

// ScrollUp moves the view up by n lines.
func (m *Model) ScrollUp(n int) {
	if m.AtTop() || n == 0 || len(m.lines) == 0 {
		return
	}

	m.SetYOffset(m.YOffset() - n)
}

// PageDown moves the view down by one page.
func (m *Model) PageDown() {
	if m.AtBottom() {
		return
	}

	m.ScrollDown(m.maxHeight())
}

// PageUp moves the view up by one page.
func (m *Model) PageUp() {
	if m.AtTop() {
		return
	}

	m.ScrollUp(m.maxHeight())
}

// HalfPageDown moves the view down by half a page.
func (m *Model) HalfPageDown() {
	if m.AtBottom() {
		return
	}

	m.ScrollDown(m.maxHeight() / 2) //nolint:mnd // Half page.
}

// HalfPageUp moves the view up by half a page.
func (m *Model) HalfPageUp() {
	if m.AtTop() {
		return
	}

	m.ScrollUp(m.maxHeight() / 2) //nolint:mnd // Half page.
}

// ScrollLeft moves the viewport left by n columns.
func (m *Model) ScrollLeft(n int) {
	m.SetXOffset(m.xOffset - n)
}

// ScrollRight moves the viewport right by n columns.
func (m *Model) ScrollRight(n int) {
	m.SetXOffset(m.xOffset + n)
}

// SetHorizontalStep sets the horizontal scroll step size.
func (m *Model) SetHorizontalStep(n int) {
	m.horizontalStep = max(0, n)
}

// GotoTop scrolls to the top.
func (m *Model) GotoTop() {
	if m.AtTop() {
		return
	}

	m.SetYOffset(0)
}

// GotoBottom scrolls to the bottom.
func (m *Model) GotoBottom() {
	m.SetYOffset(m.maxYOffset())
}

// TotalLineCount returns the total number of lines.
func (m *Model) TotalLineCount() int {
	return len(m.lines)
}

// VisibleLineCount returns the number of visible lines.
func (m *Model) VisibleLineCount() int {
	return len(m.visibleLines())
}

// SetFinder sets a finder to be invoked during rerender.
// The finder receives the current diff's plain text and returns ranges to
// highlight. Pass nil to clear the finder and remove all highlights.
func (m *Model) SetFinder(finder Finder) {
	m.finder = finder

	if finder == nil {
		m.searchMatches = nil
		m.searchIndex = -1
	}

	m.rerender()
	m.scrollToCurrentMatch()
}

// ClearSearch removes all search highlights and clears the finder.
func (m *Model) ClearSearch() {
	m.finder = nil
	m.searchMatches = nil
	m.searchIndex = -1
	m.rerender()
}

// SearchNext navigates to the next search match.
func (m *Model) SearchNext() {
	if len(m.searchMatches) == 0 {
		return
	}

	m.searchIndex = (m.searchIndex + 1) % len(m.searchMatches)
	m.rerender()
	m.scrollToCurrentMatch()
}

// SearchPrevious navigates to the previous search match.
func (m *Model) SearchPrevious() {
	if len(m.searchMatches) == 0 {
		return
	}

	m.searchIndex = (m.searchIndex - 1 + len(m.searchMatches)) % len(m.searchMatches)
	m.rerender()
	m.scrollToCurrentMatch()
}

// SearchIndex returns the current search match index (0-based), or -1 if no matches.
func (m *Model) SearchIndex() int {
	return m.searchIndex
}

// SearchCount returns the total number of search matches.
func (m *Model) SearchCount() int {
	return len(m.searchMatches)
}

// SearchPosition returns the line and column of the current search match.
// ok is false if there is no current match.
func (m *Model) SearchPosition() (line, col int, ok bool) {
	if m.searchIndex < 0 || m.searchIndex >= len(m.matchPositions) {
		return 0, 0, false
	}

	start := m.matchPositions[m.searchIndex].Start

	return start.Line, start.Col, true
}

// scrollToCurrentMatch scrolls to make the current search match visible,
// using the precomputed line for the match's start position.
func (m *Model) scrollToCurrentMatch() {
	line, _, ok := m.SearchPosition()
	if !ok {
		return
	}

	if line < m.YOffset() {
		m.SetYOffset(line)
	} else if line >= m.YOffset()+m.maxHeight() {
		m.SetYOffset(line - m.maxHeight() + 1)
	}
}

// Update handles messages.
//
//nolint:gocritic // hugeParam: required for tea.Model interface compatibility.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.initialized {
		m.blockMoves = true
		m.setInitialValues()
	}

	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch {
		case key.Matches(msg, m.KeyMap.PageDown):
			m.PageDown()

		case key.Matches(msg, m.KeyMap.PageUp):
			m.PageUp()

		case key.Matches(msg, m.KeyMap.HalfPageDown):
			m.HalfPageDown()

		case key.Matches(msg, m.KeyMap.HalfPageUp):
			m.HalfPageUp()

		case key.Matches(msg, m.KeyMap.Down):
			m.ScrollDown(1)

		case key.Matches(msg, m.KeyMap.Up):
			m.ScrollUp(1)

		case key.Matches(msg, m.KeyMap.Left):
			m.ScrollLeft(m.horizontalStep)

		case key.Matches(msg, m.KeyMap.Right):
			m.ScrollRight(m.horizontalStep)

		case key.Matches(msg, m.KeyMap.ToggleBlockMoves):
			m.ToggleBlockMoves()

		case key.Matches(msg, m.KeyMap.ToggleFullDiff):
			m.ToggleFullDiff()

		case key.Matches(msg, m.KeyMap.SearchNext):
			m.SearchNext()

		case key.Matches(msg, m.KeyMap.SearchPrevious):
			m.SearchPrevious()
		}

	case tea.MouseWheelMsg:
		if !m.MouseWheelEnabled {
			break
		}

		switch msg.Button {
		case tea.MouseWheelDown:
			if msg.Mod.Contains(tea.ModShift) {
				m.ScrollRight(m.horizontalStep)
				break
			}

			m.ScrollDown(m.MouseWheelDelta)

		case tea.MouseWheelUp:
			if msg.Mod.Contains(tea.ModShift) {
				m.ScrollLeft(m.horizontalStep)
				break
			}

			m.ScrollUp(m.MouseWheelDelta)

		case tea.MouseWheelLeft:
			m.ScrollLeft(m.horizontalStep)
		case tea.MouseWheelRight:
			m.ScrollRight(m.horizontalStep)
		}
	}

	return m, nil
}

// getViewDimensions returns (width, height, ok).
// If ok is false, the viewport has zero dimensions and should not render.
func (m *Model) getViewDimensions() (int, int, bool) {
	w, h := m.Width(), m.Height()
	if sw := m.Style.GetWidth(); sw != 0 {
		w = min(w, sw)
	}

	if sh := m.Style.GetHeight(); sh != 0 {
		h = min(h, sh)
	}

	if w == 0 || h == 0 {
		return 0, 0, false
	}

	contentW := w - m.Style.GetHorizontalFrameSize()
	contentH := h - m.Style.GetVerticalFrameSize()

	return contentW, contentH, true
}

// renderContent applies the container style and renders lines into final output.
func (m *Model) renderContent(lines []string, contentW, contentH int) string {
	base := m.RenderOptions.Styles.Style(style.Text)

	contents := base.
		Width(contentW).
		Height(contentH).
		Render(strings.Join(lines, "\n"))

	return m.Style.
		UnsetWidth().UnsetHeight().
		Render(contents)
}

// View renders the viewport.
//
//nolint:gocritic // hugeParam: required for tea.Model interface compatibility.
func (m Model) View() string {
	if m.diffErr != nil {
		return m.diffErr.Error()
	}

	w, h, ok := m.getViewDimensions()
	if !ok {
		return ""
	}

	return m.renderContent(m.visibleLines(), w, h)
}

func clamp[T cmp.Ordered](v, low, high T) T {
	if high < low {
		low, high = high, low
	}

	return min(high, max(low, v))
}

func maxLineWidth(lines []string) int {
	result := 0
	for _, line := range lines {
		result = max(result, ansi.StringWidth(line))
	}

	return result
}

// positionsForRanges converts rune-offset highlight ranges into line/column
// [position.Range]s by walking text once, in ascending Start order, and
// carrying the walk's (line, col, rune index) cursor forward between
// ranges. The returned slice is indexed the same as ranges, regardless of
// the order matches were found in.
func positionsForRanges(text string, ranges []render.HighlightRange) []position.Range {
	if len(ranges) == 0 {
		return nil
	}

	order := make([]int, len(ranges))
	for i := range order {
		order[i] = i
	}

	sort.Slice(order, func(i, j int) bool { return ranges[order[i]].Start < ranges[order[j]].Start })

	positions := make([]position.Range, len(ranges))
	runes := []rune(text)
	line, col, idx := 0, 0, 0

	advance := func(to int) position.Position {
		for idx < to && idx < len(runes) {
			if runes[idx] == '\n' {
				line++
				col = 0
			} else {
				col++
			}

			idx++
		}

		return position.New(line, col)
	}

	for _, ri := range order {
		r := ranges[ri]
		start := advance(r.Start)
		end := advance(r.End)
		positions[ri] = position.NewRange(start, end)
	}

	return positions
}
