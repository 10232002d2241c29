package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/weekgrid/internal/schedule"
)

// Cell is one rendered slot.
type Cell struct {
	Text  string
	Style lipgloss.Style
}

// GridViewState holds data needed to render the week grid.
type GridViewState struct {
	TimeW int
	ColW  int

	Headers          []string
	TodayCols        map[int]bool
	HeaderStyle      lipgloss.Style
	HeaderTodayStyle lipgloss.Style
	TimeStyle        lipgloss.Style

	Cells [schedule.DaysPerWeek][schedule.SlotsPerDay]Cell
	Bg    lipgloss.Color
}

// RenderGrid renders the header row and one terminal line per hour. Every
// cell is exactly ColW columns wide so screen coordinates map back to slots.
func RenderGrid(state GridViewState) string {
	lines := make([]string, 0, schedule.SlotsPerDay+1)
	lines = append(lines, renderHeaderRow(state))

	for h := 0; h < schedule.SlotsPerDay; h++ {
		var b strings.Builder
		b.WriteString(state.TimeStyle.Render(Fit(TimeLabel(schedule.Hour(h)), state.TimeW)))
		for d := 0; d < schedule.DaysPerWeek; d++ {
			cell := state.Cells[d][h]
			b.WriteString(cell.Style.Render(" " + Fit(cell.Text, state.ColW-1)))
		}
		lines = append(lines, b.String())
	}
	return strings.Join(lines, "\n")
}

func renderHeaderRow(state GridViewState) string {
	var b strings.Builder
	for i, label := range state.Headers {
		if i == 0 {
			b.WriteString(state.TimeStyle.Render(Fit(label, state.TimeW)))
			continue
		}
		style := state.HeaderStyle
		if state.TodayCols[i] {
			style = state.HeaderTodayStyle
		}
		b.WriteString(style.Render(" " + Fit(label, state.ColW-1)))
	}
	return b.String()
}
