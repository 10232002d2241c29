package tui

import (
	"github.com/javiermolinar/weekgrid/internal/schedule"
	"github.com/javiermolinar/weekgrid/internal/session"
	"github.com/javiermolinar/weekgrid/internal/tui/view"
)

const (
	timeColWidth = 6
	minColWidth  = 8
	maxColWidth  = 24

	navRow    = 0
	headerRow = 2
	firstRow  = headerRow + 1 // first hour row
)

// navTargets maps view.NavLabels, left to right, to navigation targets.
var navTargets = [...]session.NavTarget{session.NavLast, session.NavCurrent, session.NavNext}

// Layout stores the screen geometry derived from the window size. Rendering
// and mouse hit-testing both read it so a click always lands on the slot
// that was drawn under the pointer.
type Layout struct {
	Width  int
	Height int

	TimeW int
	ColW  int
	GridW int

	PanelsY int
	PanelW  int
	FooterY int

	Buttons  []view.Span
	TooSmall bool
}

func buildLayout(width, height int) Layout {
	colW := (width - timeColWidth) / schedule.DaysPerWeek
	colW = min(colW, maxColWidth)
	gridW := timeColWidth + colW*schedule.DaysPerWeek

	panelsY := firstRow + schedule.SlotsPerDay + 1
	footerY := panelsY + view.PanelHeight

	return Layout{
		Width:    width,
		Height:   height,
		TimeW:    timeColWidth,
		ColW:     colW,
		GridW:    gridW,
		PanelsY:  panelsY,
		PanelW:   gridW / 2,
		FooterY:  footerY,
		Buttons:  view.NavSpans(),
		TooSmall: colW < minColWidth || height < footerY+view.FooterHeight,
	}
}

// CellAt maps a screen coordinate to a slot.
func (l Layout) CellAt(x, y int) (session.Position, bool) {
	if l.TooSmall {
		return session.Position{}, false
	}
	hour := y - firstRow
	if hour < 0 || hour >= schedule.SlotsPerDay {
		return session.Position{}, false
	}
	if x < l.TimeW || x >= l.GridW {
		return session.Position{}, false
	}
	return session.Position{Day: (x - l.TimeW) / l.ColW, Hour: hour}, true
}

// ButtonAt maps a screen coordinate to a navigation button.
func (l Layout) ButtonAt(x, y int) (session.NavTarget, bool) {
	if l.TooSmall || y != navRow {
		return 0, false
	}
	for i, span := range l.Buttons {
		if span.Contains(x) {
			return navTargets[i], true
		}
	}
	return 0, false
}
