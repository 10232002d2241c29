package view

import "github.com/charmbracelet/lipgloss"

// FooterViewState holds the strings needed to render the footer section.
type FooterViewState struct {
	InnerW     int
	EntryLine  string
	EntryStyle lipgloss.Style
	StatusLine string
	HelpLine   string
	Bg         lipgloss.Color
}

// FooterHeight is the rendered height of the footer: a bordered entry box,
// the status line and the help line.
const FooterHeight = 5

// RenderFooter renders the entry box, status and help lines.
func RenderFooter(state FooterViewState) string {
	frameW, _ := state.EntryStyle.GetFrameSize()
	entryW := max(0, state.InnerW-frameW)
	entry := state.EntryStyle.Width(entryW + state.EntryStyle.GetHorizontalPadding()).Render(state.EntryLine)

	s := entry + "\n" + state.StatusLine + "\n" + state.HelpLine
	return PlaceBox(state.InnerW, FooterHeight, lipgloss.Top, s, state.Bg)
}
