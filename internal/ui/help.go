package ui

// renderFooter renders the key help line, or the full help table when toggled.
func (m *Model) renderFooter() string {
	return m.theme.Styles().Footer.Render(m.help.View(m.keys))
}
