package ui

import "github.com/charmbracelet/lipgloss"

// Fixed row heights of the screen sections. The input keeps its border rows
// even when the border is hidden so results never shift vertically.
const (
	headerHeight = 1
	inputHeight  = 3
	cardHeight   = 3
	resultsTop   = headerHeight + inputHeight

	fallbackWidth  = 80
	fallbackHeight = 24
)

// size returns the terminal size, with defaults until the first resize.
func (m *Model) size() (int, int) {
	w, h := m.width, m.height
	if w <= 0 {
		w = fallbackWidth
	}
	if h <= 0 {
		h = fallbackHeight
	}
	return w, h
}

// resultsHeight is the number of rows available between the input and the footer.
func (m *Model) resultsHeight() int {
	_, h := m.size()
	return max(h-resultsTop-lipgloss.Height(m.renderFooter()), 0)
}

// visibleCards is the number of whole cards that fit the results area.
func (m *Model) visibleCards() int {
	return max(m.resultsHeight()/cardHeight, 1)
}

// resultsShown reports whether the results list is on screen.
func (m *Model) resultsShown() bool {
	return m.showResults && m.ctrl.Query() != ""
}

// ensureVisible scrolls the minimum amount needed to show match i.
func (m *Model) ensureVisible(i int) {
	n := m.visibleCards()
	switch {
	case i < m.offset:
		m.offset = i
	case i >= m.offset+n:
		m.offset = i - n + 1
	}
	m.clampOffset()
}

func (m *Model) clampOffset() {
	maxOffset := max(len(m.ctrl.Matches())-m.visibleCards(), 0)
	m.offset = clamp(m.offset, 0, maxOffset)
}

func (m *Model) scroll(delta int) {
	m.offset += delta
	m.clampOffset()
}

// resultAt maps a screen cell to a match index. inList reports whether the
// cell is inside the results container at all; index is -1 when the cell is
// not on a result card.
func (m *Model) resultAt(x, y int) (index int, inList bool) {
	if !m.resultsShown() {
		return -1, false
	}
	w, _ := m.size()
	matches := m.ctrl.Matches()
	rows := max(min(len(matches)-m.offset, m.visibleCards()), 1)
	if x < 0 || x >= w || y < resultsTop || y >= resultsTop+rows*cardHeight {
		return -1, false
	}
	if len(matches) == 0 {
		return -1, true
	}
	i := m.offset + (y-resultsTop)/cardHeight
	if i >= len(matches) {
		return -1, true
	}
	return i, true
}
