package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/weekgrid/internal/schedule"
	"github.com/javiermolinar/weekgrid/internal/session"
	"github.com/javiermolinar/weekgrid/internal/tui/view"
)

const helpText = "hover/click or arrows+enter: select · tab: edit · enter: save · esc: back · [ ] t: week · y: copy · q: quit"

// View renders the TUI.
func (m Model) View() string {
	layout := m.layout
	state := view.ViewState{
		Width:            m.width,
		Height:           m.height,
		TooSmall:         layout.TooSmall,
		EmptyPlaceholder: "Loading...",
	}
	if m.width > 0 && m.height > 0 && !layout.TooSmall {
		state.Content = m.renderAppContent(layout)
	}
	return view.Render(state)
}

// renderAppContent stacks the rows at the offsets Layout reports, so the
// mouse geometry and the drawing never drift apart.
func (m Model) renderAppContent(layout Layout) string {
	bg := m.styles.colorBg
	blank := view.PadLinesWithBackground("", layout.GridW, 1, bg)

	nav := view.RenderNav(view.NavViewState{
		Width:       layout.GridW,
		Title:       view.WeekTitle(m.session.Week()),
		ButtonStyle: m.styles.NavButtonStyle,
		TitleStyle:  m.styles.TitleStyle,
		Bg:          bg,
	})

	content := lipgloss.JoinVertical(lipgloss.Left,
		nav,
		blank,
		view.RenderGrid(m.gridViewState(layout)),
		blank,
		m.renderPanels(layout),
		m.renderFooter(layout),
	)
	return view.PadLinesWithBackground(content, m.width, m.height, bg)
}

func (m Model) gridViewState(layout Layout) view.GridViewState {
	today := m.session.Today()
	headers, todayCols := view.HeaderLabels(m.session.Week().Monday(), today)

	state := view.GridViewState{
		TimeW:            layout.TimeW,
		ColW:             layout.ColW,
		Headers:          headers,
		TodayCols:        todayCols,
		HeaderStyle:      m.styles.DayHeaderStyle,
		HeaderTodayStyle: m.styles.DayHeaderTodayStyle,
		TimeStyle:        m.styles.TimeColumnStyle,
		Bg:               m.styles.colorBg,
	}

	labels := m.session.Labels()
	hovered, isHovering := m.session.Hovered()
	selected, isSelected := m.session.Selected()

	for d := range labels {
		for h := range labels[d] {
			pos := session.Position{Day: d, Hour: h}
			cell := view.Cell{
				Text:  labels[d][h].String(),
				Style: m.labelStyle(labels[d][h]),
			}
			switch {
			case isSelected && pos == selected:
				cell.Style = m.styles.CellSelectedStyle
			case isHovering && pos == hovered:
				cell.Style = m.styles.CellHoverStyle
			}
			state.Cells[d][h] = cell
		}
	}
	return state
}

func (m Model) labelStyle(label schedule.Label) lipgloss.Style {
	switch label {
	case schedule.LabelFilled:
		return m.styles.CellFilledStyle
	case schedule.LabelToday:
		return m.styles.CellTodayStyle
	default:
		return m.styles.CellEmptyStyle
	}
}

func (m Model) renderPanels(layout Layout) string {
	hover := m.session.HoverPanel()
	selected := m.session.SelectPanel()

	left := view.RenderPanel(m.panelViewState("Hover", hover, layout.PanelW))
	right := view.RenderPanel(m.panelViewState("Selected", selected, layout.GridW-layout.PanelW))
	return lipgloss.JoinHorizontal(lipgloss.Top, left, right)
}

func (m Model) panelViewState(title string, p session.Panel, width int) view.PanelViewState {
	return view.PanelViewState{
		Width:       width,
		Title:       title,
		Active:      p.Active,
		Placeholder: p.Placeholder,
		DateHour:    p.DateHour,
		Content:     p.Content,
		BoxStyle:    m.styles.PanelStyle,
		TitleStyle:  m.styles.PanelTitleStyle,
		TextStyle:   m.styles.PanelTextStyle,
		MutedStyle:  m.styles.PanelMutedStyle,
	}
}

func (m Model) renderFooter(layout Layout) string {
	entryStyle := m.styles.EntryStyle
	if m.entry.Focused() {
		entryStyle = m.styles.EntryFocusedStyle
	}

	statusStyle := m.styles.StatusStyle
	if m.statusErr {
		statusStyle = m.styles.StatusErrorStyle
	}
	status := ""
	if m.statusMsg != "" {
		status = statusStyle.Render(view.Fit(m.statusMsg, layout.GridW))
	}

	return view.RenderFooter(view.FooterViewState{
		InnerW:     layout.GridW,
		EntryLine:  m.entry.View(),
		EntryStyle: entryStyle,
		StatusLine: status,
		HelpLine:   m.styles.HelpStyle.Render(view.Fit(helpText, layout.GridW)),
		Bg:         m.styles.colorBg,
	})
}
