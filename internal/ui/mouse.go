package ui

import tea "github.com/charmbracelet/bubbletea"

func (m *Model) handleMouse(msg tea.MouseMsg) {
	if msg.Action == tea.MouseActionMotion {
		m.trackPointer(msg.X, msg.Y)
		return
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		if _, in := m.resultAt(msg.X, msg.Y); in {
			m.scroll(-1)
		}
	case tea.MouseButtonWheelDown:
		if _, in := m.resultAt(msg.X, msg.Y); in {
			m.scroll(1)
		}
	case tea.MouseButtonLeft:
		if msg.Action != tea.MouseActionPress {
			return
		}
		if i, _ := m.resultAt(msg.X, msg.Y); i >= 0 {
			m.ctrl.Click(i)
		}
	}
}

// trackPointer turns pointer motion into container and card enter/leave
// transitions.
func (m *Model) trackPointer(x, y int) {
	i, in := m.resultAt(x, y)
	if in && !m.overResults {
		m.ctrl.PointerOverResults()
	}
	m.overResults = in

	if i == m.hovered {
		return
	}
	if m.hovered >= 0 {
		m.ctrl.PointerLeave()
	}
	if i >= 0 {
		m.ctrl.PointerEnter(i)
	}
	m.hovered = i
}
