package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/usersearch/internal/directory"
	"github.com/five82/usersearch/internal/search"
)

const noResultsText = "No results found"

// renderMain renders the full screen.
func (m *Model) renderMain() string {
	body := lipgloss.NewStyle().
		Height(m.resultsHeight()).
		MaxHeight(m.resultsHeight()).
		Render(m.renderResults())

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		m.renderInput(),
		body,
		m.renderFooter(),
	)
}

// renderInput renders the query box; the border only shows once there is a query.
func (m *Model) renderInput() string {
	w, _ := m.size()
	styles := m.theme.Styles()
	box := styles.InputIdle
	if m.ctrl.Query() != "" {
		box = styles.Input
	}
	return box.Width(max(w-2, 1)).Render(m.input.View())
}

// renderResults renders the visible window of result cards.
func (m *Model) renderResults() string {
	if !m.resultsShown() {
		return ""
	}
	matches := m.ctrl.Matches()
	if len(matches) == 0 {
		return m.renderEmptyCard()
	}

	n := m.visibleCards()
	end := min(m.offset+n, len(matches))
	query := m.ctrl.Query()
	highlighted := m.ctrl.Highlighted()

	cards := make([]string, 0, end-m.offset)
	for i := m.offset; i < end; i++ {
		cards = append(cards, m.renderCard(matches[i], query, i == highlighted))
	}
	return strings.Join(cards, "\n")
}

// renderCard renders one result as three rows: id and name, address, and
// the items indicator.
func (m *Model) renderCard(u directory.User, query string, highlighted bool) string {
	w, _ := m.size()
	styles := m.theme.Styles()
	box := styles.Card
	if highlighted {
		box = styles.Selected
		styles = styles.WithBackground(m.theme.SelectionBg)
	}
	inner := max(w-box.GetHorizontalFrameSize(), 1)

	id := u.ID.String()
	title := styles.AccentText.Bold(true).Render(id) +
		styles.Text.Render("  ") +
		renderSpans(truncate(u.Name, inner-len([]rune(id))-2), query, styles.Text, styles.Match)

	address := renderSpans(truncate(u.Address, inner), query, styles.MutedText, styles.Match)

	var items string
	if search.MatchesItems(u, query) {
		items = styles.FaintText.Render(truncate(`"`+query+`" found in items`, inner))
	}

	row := box.Width(w).MaxHeight(1)
	return lipgloss.JoinVertical(lipgloss.Left,
		row.Render(title),
		row.Render(address),
		row.Render(items),
	)
}

func (m *Model) renderEmptyCard() string {
	w, _ := m.size()
	styles := m.theme.Styles()
	row := styles.Card.Width(w).MaxHeight(1)
	return lipgloss.JoinVertical(lipgloss.Left,
		row.Render(styles.MutedText.Render(noResultsText)),
		row.Render(""),
		row.Render(""),
	)
}

// renderSpans styles the highlighter's spans for text.
func renderSpans(text, query string, plain, match lipgloss.Style) string {
	var b strings.Builder
	for _, span := range search.Highlight(text, query) {
		if span.Match {
			b.WriteString(match.Render(span.Text))
		} else {
			b.WriteString(plain.Render(span.Text))
		}
	}
	return b.String()
}
