package schedule

import "time"

// Label is the visual state of a slot.
type Label int

const (
	LabelEmpty Label = iota
	LabelToday       // Empty slot on today's date
	LabelFilled
)

// String returns the label text shown for empty and today cells.
func (l Label) String() string {
	switch l {
	case LabelToday:
		return "today, empty"
	case LabelFilled:
		return "filled"
	default:
		return "empty"
	}
}

// LabelFor computes a slot's label. Filled content beats the today marker.
func LabelFor(u HourUnit, today time.Time) Label {
	if !u.IsEmpty() {
		return LabelFilled
	}
	if u.IsToday(today) {
		return LabelToday
	}
	return LabelEmpty
}
