package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/weekgrid/internal/session"
)

// handleMouseMsg turns pointer motion into hover enter/leave and left
// presses into slot selection or week navigation.
func (m Model) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	pos, inGrid := m.layout.CellAt(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionMotion:
		hovered, isHovering := m.session.Hovered()
		switch {
		case inGrid && (!isHovering || hovered != pos):
			LogMouse(msg, pos, inGrid)
			_ = m.apply(session.HoverEnter{Pos: pos})
		case !inGrid && isHovering:
			LogMouse(msg, pos, inGrid)
			_ = m.apply(session.HoverLeave{})
		}
		return m, nil

	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		LogMouse(msg, pos, inGrid)
		if inGrid {
			cmd := m.selectSlot(pos)
			return m, cmd
		}
		if target, ok := m.layout.ButtonAt(msg.X, msg.Y); ok {
			cmd := m.navigate(target)
			return m, cmd
		}
	}

	return m, nil
}
