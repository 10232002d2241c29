package view

import (
	"github.com/charmbracelet/lipgloss"
)

// PanelHeight is the rendered height of a side panel, border included.
const PanelHeight = 5

// PanelViewState holds the data for the hover or selection panel.
type PanelViewState struct {
	Width       int
	Title       string
	Active      bool
	Placeholder string
	DateHour    string
	Content     string

	BoxStyle   lipgloss.Style
	TitleStyle lipgloss.Style
	TextStyle  lipgloss.Style
	MutedStyle lipgloss.Style
}

// RenderPanel renders a bordered panel. An inactive panel shows only its
// placeholder; an active one shows the slot's date label and note.
func RenderPanel(state PanelViewState) string {
	frameW, _ := state.BoxStyle.GetFrameSize()
	innerW := max(0, state.Width-frameW)

	title := state.TitleStyle.Render(Fit(state.Title, innerW))
	var first, second string
	if state.Active {
		first = state.TextStyle.Render(Fit(state.DateHour, innerW))
		second = state.TextStyle.Render(Fit(state.Content, innerW))
	} else {
		first = state.MutedStyle.Render(Fit(state.Placeholder, innerW))
		second = state.MutedStyle.Render(Fit("", innerW))
	}

	body := lipgloss.JoinVertical(lipgloss.Left, title, first, second)
	return state.BoxStyle.Width(innerW + state.BoxStyle.GetHorizontalPadding()).Render(body)
}
