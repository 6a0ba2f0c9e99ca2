package ui

import (
	"fmt"
	"strings"
)

const appName = "usersearch"

// renderHeader renders the title bar: name, load status, current selection.
func (m *Model) renderHeader() string {
	w, _ := m.size()
	base := m.theme.Styles()
	styles := base.WithBackground(m.theme.Surface)
	sep := styles.FaintText.Render(" │ ")

	var b strings.Builder
	b.WriteString(styles.Logo.Render(appName))
	b.WriteString(sep)

	switch m.status {
	case statusLoading:
		b.WriteString(styles.MutedText.Render("Loading users…"))
	case statusLoaded:
		b.WriteString(styles.SuccessText.Render(fmt.Sprintf("%d users", m.userCount)))
	case statusFailed:
		msg := "load failed"
		if m.loadErr != nil {
			msg = "load failed: " + m.loadErr.Error()
		}
		b.WriteString(styles.DangerText.Render(truncate(msg, max(w/2, 20))))
	}

	if m.selected != nil {
		b.WriteString(sep)
		b.WriteString(styles.MutedText.Render("selected "))
		b.WriteString(styles.AccentText.Render(truncate(m.selected.Name, 32)))
		b.WriteString(styles.FaintText.Render(" #" + m.selected.ID.String()))
	}

	return base.Header.Width(w).MaxHeight(headerHeight).Render(b.String())
}
