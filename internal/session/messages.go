package session

import "fmt"

// Position addresses a slot by day column (0=Monday) and hour row (0=8:00).
type Position struct {
	Day  int
	Hour int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Day, p.Hour)
}

// Msg is an interaction event applied to a Session.
type Msg interface {
	sessionMsg()
}

// HoverEnter is sent when the pointer or keyboard cursor enters a slot.
type HoverEnter struct {
	Pos Position
}

// HoverLeave is sent when the pointer leaves the grid.
type HoverLeave struct{}

// Click selects a slot for editing.
type Click struct {
	Pos Position
}

// TextChanged carries the entry's full text after a keystroke.
type TextChanged struct {
	Text string
}

// Submit commits the pending text into the selected slot.
type Submit struct{}

// NavTarget names a week navigation button.
type NavTarget int

const (
	NavCurrent NavTarget = iota
	NavLast
	NavNext
)

func (n NavTarget) String() string {
	switch n {
	case NavLast:
		return "last"
	case NavNext:
		return "next"
	default:
		return "current"
	}
}

// Navigate replaces the active week.
type Navigate struct {
	Target NavTarget
}

// Close ends the session.
type Close struct{}

func (HoverEnter) sessionMsg()  {}
func (HoverLeave) sessionMsg()  {}
func (Click) sessionMsg()       {}
func (TextChanged) sessionMsg() {}
func (Submit) sessionMsg()      {}
func (Navigate) sessionMsg()    {}
func (Close) sessionMsg()       {}
