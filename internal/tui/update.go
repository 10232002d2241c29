package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/weekgrid/internal/session"
	"github.com/javiermolinar/weekgrid/internal/tui/commands"
	"github.com/javiermolinar/weekgrid/internal/tui/view"
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout = buildLayout(m.width, m.height)
		m.entry.Width = max(0, m.layout.GridW-8)
		LogWindowSize(m.width, m.height, m.layout)
		return m, nil

	case commands.ErrMsg:
		m.setStatus(fmt.Sprintf("Error: %v", msg.Err), true)
		return m, commands.ClearStatusAfter(commands.ErrorTTL)

	case commands.StatusMsgCmd:
		m.setStatus(msg.Msg, false)
		return m, commands.ClearStatusAfter(commands.StatusTTL)

	case commands.PasteMsg:
		if m.entry.Focused() {
			m.insertEntryText(msg.Text)
			m.syncEntry()
		}
		return m, nil

	case commands.ClearStatusMsg:
		if !m.now().Before(m.statusTime) {
			m.statusMsg = ""
			m.statusErr = false
		}
		return m, nil
	}

	if m.entry.Focused() {
		var cmd tea.Cmd
		m.entry, cmd = m.entry.Update(msg)
		m.syncEntry()
		return m, cmd
	}
	return m, nil
}

// apply feeds one message to the session. Failures go to the status line;
// the session has already kept its previous state.
func (m *Model) apply(msg session.Msg) error {
	before := m.session.State()
	err := m.session.Apply(m.ctx, msg)
	LogTransition(msg, before, m.session.State(), err)
	if err != nil {
		m.setStatus(fmt.Sprintf("Error: %v", err), true)
	}
	return err
}

func (m *Model) setStatus(text string, isErr bool) {
	m.statusMsg = text
	m.statusErr = isErr
	ttl := commands.StatusTTL
	if isErr {
		ttl = commands.ErrorTTL
	}
	m.statusTime = m.now().Add(ttl)
}

// clearStatusCmd schedules clearing of a status set directly by apply.
func (m Model) clearStatusCmd() tea.Cmd {
	if m.statusMsg == "" {
		return nil
	}
	if m.statusErr {
		return commands.ClearStatusAfter(commands.ErrorTTL)
	}
	return commands.ClearStatusAfter(commands.StatusTTL)
}

// selectSlot selects pos and focuses an empty entry for it.
func (m *Model) selectSlot(pos session.Position) tea.Cmd {
	if err := m.apply(session.Click{Pos: pos}); err != nil {
		return m.clearStatusCmd()
	}
	m.entry.SetValue("")
	return m.entry.Focus()
}

// navigate switches weeks. The entry is reset because the selection it
// belonged to is gone.
func (m *Model) navigate(target session.NavTarget) tea.Cmd {
	if err := m.apply(session.Navigate{Target: target}); err != nil {
		return m.clearStatusCmd()
	}
	m.entry.SetValue("")
	m.entry.Blur()
	return commands.Status("Week %s", m.session.Week())
}

// submit commits the entry text into the selected slot.
func (m *Model) submit() tea.Cmd {
	pos, ok := m.session.Selected()
	if !ok {
		return nil
	}
	if err := m.apply(session.Submit{}); err != nil {
		return m.clearStatusCmd()
	}
	m.entry.SetValue("")
	return commands.Status("Saved %s", m.session.Grid()[pos.Day][pos.Hour].DateHour)
}

// insertEntryText inserts pasted text at the cursor. Line breaks become
// spaces and the entry's character limit still applies.
func (m *Model) insertEntryText(text string) {
	paste := []rune(view.SingleLine(text))
	value := []rune(m.entry.Value())
	pos := min(m.entry.Position(), len(value))

	if limit := m.entry.CharLimit; limit > 0 {
		paste = paste[:max(0, min(len(paste), limit-len(value)))]
	}

	merged := make([]rune, 0, len(value)+len(paste))
	merged = append(merged, value[:pos]...)
	merged = append(merged, paste...)
	merged = append(merged, value[pos:]...)
	m.entry.SetValue(string(merged))
	m.entry.SetCursor(pos + len(paste))
}

// syncEntry reports entry edits to the session.
func (m *Model) syncEntry() {
	if _, ok := m.session.Selected(); !ok {
		return
	}
	if text := m.entry.Value(); text != m.session.Pending() {
		_ = m.apply(session.TextChanged{Text: text})
	}
}

func (m *Model) quit() tea.Cmd {
	_ = m.apply(session.Close{})
	m.entry.Blur()
	return tea.Quit
}
