package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Span is a half-open column range [X0, X1) on one screen row.
type Span struct {
	X0, X1 int
}

// Contains reports whether column x falls inside the span.
func (s Span) Contains(x int) bool {
	return x >= s.X0 && x < s.X1
}

// NavLabels are the week navigation buttons, left to right.
var NavLabels = [...]string{"< Last", "Current", "Next >"}

const (
	navPad = 1 // padding on each side of a button label
	navGap = 1 // columns between buttons
)

// NavSpans returns the screen columns covered by each navigation button.
func NavSpans() []Span {
	spans := make([]Span, 0, len(NavLabels))
	x := 0
	for i, label := range NavLabels {
		if i > 0 {
			x += navGap
		}
		w := ansi.StringWidth(label) + 2*navPad
		spans = append(spans, Span{X0: x, X1: x + w})
		x += w
	}
	return spans
}

// NavViewState holds what the navigation row needs.
type NavViewState struct {
	Width       int
	Title       string
	ButtonStyle lipgloss.Style
	TitleStyle  lipgloss.Style
	Bg          lipgloss.Color
}

// RenderNav renders the navigation buttons followed by the week title.
func RenderNav(state NavViewState) string {
	gap := lipgloss.NewStyle().Background(state.Bg)
	var b strings.Builder
	for i, label := range NavLabels {
		if i > 0 {
			b.WriteString(gap.Render(strings.Repeat(" ", navGap)))
		}
		b.WriteString(state.ButtonStyle.Padding(0, navPad).Render(label))
	}
	b.WriteString(gap.Render("  "))
	b.WriteString(state.TitleStyle.Render(state.Title))
	return PadLinesWithBackground(b.String(), state.Width, 1, state.Bg)
}
