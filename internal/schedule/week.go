// Package schedule holds the in-memory week grid of hourly slots.
package schedule

import (
	"errors"
	"fmt"
	"time"

	"github.com/javiermolinar/weekgrid/internal/dateutil"
)

// Grid dimensions.
const (
	DaysPerWeek = 7
	FirstHour   = 8
	LastHour    = 20
	SlotsPerDay = LastHour - FirstHour + 1
)

// ErrSlotOutOfRange is returned for day or hour indices outside the grid.
var ErrSlotOutOfRange = errors.New("slot out of range")

const isoDate = "2006-01-02"

// HourUnit is one schedulable slot.
type HourUnit struct {
	DateHour string `json:"date_hour"`
	Content  string `json:"content"`
	Day      int    `json:"day"`            // Day of month
	Date     string `json:"date,omitempty"` // YYYY-MM-DD, empty in legacy files
}

// IsEmpty reports whether the slot has no note.
func (u HourUnit) IsEmpty() bool {
	return u.Content == ""
}

// IsToday reports whether the slot falls on the same date as today.
// Legacy slots without a full date only compare the day of month.
func (u HourUnit) IsToday(today time.Time) bool {
	if u.Date != "" {
		return u.Date == today.Format(isoDate)
	}
	return u.Day == today.Day()
}

// WeekGrid holds 7 day columns (Monday..Sunday) of 13 hourly slots (8..20).
type WeekGrid [DaysPerWeek][SlotsPerDay]HourUnit

// FormatDateHour builds the display label for a slot, e.g. "10/12/2026 8:00".
func FormatDateHour(date time.Time, hour int) string {
	return fmt.Sprintf("%d/%d/%d %d:00", int(date.Month()), date.Day(), date.Year(), hour)
}

// NewHourUnit builds a blank slot for the given date and hour.
func NewHourUnit(date time.Time, hour int) HourUnit {
	return HourUnit{
		DateHour: FormatDateHour(date, hour),
		Day:      date.Day(),
		Date:     date.Format(isoDate),
	}
}

// InitWeek builds a blank grid for the ISO week containing anchor.
func InitWeek(anchor time.Time) *WeekGrid {
	monday, _ := dateutil.WeekRange(anchor)
	var g WeekGrid
	for d := 0; d < DaysPerWeek; d++ {
		dayDate := monday.AddDate(0, 0, d)
		for h := 0; h < SlotsPerDay; h++ {
			g[d][h] = NewHourUnit(dayDate, FirstHour+h)
		}
	}
	return &g
}

// CheckIndex validates a (day, hour) index pair.
func CheckIndex(dayIdx, hourIdx int) error {
	if dayIdx < 0 || dayIdx >= DaysPerWeek || hourIdx < 0 || hourIdx >= SlotsPerDay {
		return fmt.Errorf("%w: day %d, hour %d", ErrSlotOutOfRange, dayIdx, hourIdx)
	}
	return nil
}

// SetContent replaces the note at (dayIdx, hourIdx), keeping the slot's
// date label and day.
func SetContent(g *WeekGrid, dayIdx, hourIdx int, text string) error {
	if err := CheckIndex(dayIdx, hourIdx); err != nil {
		return err
	}
	g[dayIdx][hourIdx].Content = text
	return nil
}

// At returns the slot at (dayIdx, hourIdx).
func (g *WeekGrid) At(dayIdx, hourIdx int) (HourUnit, error) {
	if err := CheckIndex(dayIdx, hourIdx); err != nil {
		return HourUnit{}, err
	}
	return g[dayIdx][hourIdx], nil
}

// Clone returns an independent copy of the grid.
func (g *WeekGrid) Clone() *WeekGrid {
	c := *g
	return &c
}

// Equal reports whether both grids hold identical slots.
func (g *WeekGrid) Equal(other *WeekGrid) bool {
	if g == nil || other == nil {
		return g == other
	}
	return *g == *other
}

// FilledCount returns the number of slots with a note.
func (g *WeekGrid) FilledCount() int {
	n := 0
	for d := range g {
		for h := range g[d] {
			if !g[d][h].IsEmpty() {
				n++
			}
		}
	}
	return n
}

// Hour returns the clock hour for a row index.
func Hour(hourIdx int) int {
	return FirstHour + hourIdx
}

// WeekdayShortName returns the short name of the weekday (0=Monday).
func WeekdayShortName(weekday int) string {
	names := []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
	if weekday < 0 || weekday >= DaysPerWeek {
		return ""
	}
	return names[weekday]
}
