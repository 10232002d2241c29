package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/weekgrid/internal/dateutil"
	"github.com/javiermolinar/weekgrid/internal/schedule"
	"github.com/javiermolinar/weekgrid/internal/session"
	"github.com/javiermolinar/weekgrid/internal/tui/commands"
)

// handleKeyMsg handles keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	LogKeyPress(msg, m.entry.Focused())

	// Global keys (work with or without the entry focused)
	if msg.String() == "ctrl+c" {
		return m, m.quit()
	}
	if m.entry.Focused() {
		return m.handleEntryKeys(msg)
	}
	return m.handleNormalKeys(msg)
}

// handleEntryKeys handles keys while the entry field has focus.
func (m Model) handleEntryKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		cmd := m.submit()
		return m, cmd
	case "esc":
		m.entry.Blur()
		return m, nil
	case "ctrl+v":
		return m, commands.PasteFromClipboard()
	}

	var cmd tea.Cmd
	m.entry, cmd = m.entry.Update(msg)
	m.syncEntry()
	return m, cmd
}

// handleNormalKeys handles keys when the entry is not focused.
func (m Model) handleNormalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg.String() {
	case "q":
		return m, m.quit()

	// Keyboard hover cursor
	case "h", "left":
		cmd = m.moveHover(-1, 0)
	case "l", "right":
		cmd = m.moveHover(1, 0)
	case "k", "up":
		cmd = m.moveHover(0, -1)
	case "j", "down":
		cmd = m.moveHover(0, 1)

	case "enter":
		if pos, ok := m.session.Hovered(); ok {
			cmd = m.selectSlot(pos)
		}
	case "tab", "i":
		if _, ok := m.session.Selected(); ok {
			m.entry.SetValue(m.session.Pending())
			cmd = m.entry.Focus()
		}
	case "esc":
		if _, ok := m.session.Hovered(); ok {
			_ = m.apply(session.HoverLeave{})
		}

	// Week navigation
	case "[":
		cmd = m.navigate(session.NavLast)
	case "]":
		cmd = m.navigate(session.NavNext)
	case "t":
		cmd = m.navigate(session.NavCurrent)

	case "y":
		if pos, ok := m.session.Selected(); ok {
			cmd = commands.CopyToClipboard(m.session.Grid()[pos.Day][pos.Hour].Content)
		}
	}

	return m, cmd
}

// moveHover moves the keyboard hover cursor, clamped to the grid. The first
// move starts from the selection, or from the current hour when the active
// week contains today.
func (m *Model) moveHover(dDay, dHour int) tea.Cmd {
	pos, ok := m.session.Hovered()
	if !ok {
		pos = m.cursorStart()
	} else {
		pos.Day = clamp(pos.Day+dDay, 0, schedule.DaysPerWeek-1)
		pos.Hour = clamp(pos.Hour+dHour, 0, schedule.SlotsPerDay-1)
	}
	if err := m.apply(session.HoverEnter{Pos: pos}); err != nil {
		return m.clearStatusCmd()
	}
	return nil
}

func (m Model) cursorStart() session.Position {
	if pos, ok := m.session.Selected(); ok {
		return pos
	}
	now := m.now()
	monday := m.session.Week().Monday()
	for d := 0; d < schedule.DaysPerWeek; d++ {
		if dateutil.SameDay(monday.AddDate(0, 0, d), now) {
			hour := clamp(now.Hour()-schedule.FirstHour, 0, schedule.SlotsPerDay-1)
			return session.Position{Day: d, Hour: hour}
		}
	}
	return session.Position{}
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
