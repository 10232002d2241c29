// Package dateutil provides ISO week addressing and date parsing utilities.
package dateutil

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidDateFormat is returned when a date string cannot be parsed.
var ErrInvalidDateFormat = errors.New("date must be in YYYY-MM-DD format or one of: today, last-week, next-week")

// Clock returns the current local time. It is injected wherever wall-clock
// time is read so tests can pin "now".
type Clock func() time.Time

// SystemClock reads the local wall clock.
func SystemClock() time.Time {
	return time.Now()
}

// WeekID identifies an ISO week.
type WeekID struct {
	Year int
	Week int
}

// WeekOf returns the ISO week containing t.
func WeekOf(t time.Time) WeekID {
	year, week := t.ISOWeek()
	return WeekID{Year: year, Week: week}
}

// String returns the ISO 8601 week notation, e.g. "2026-W42".
func (w WeekID) String() string {
	return fmt.Sprintf("%04d-W%02d", w.Year, w.Week)
}

// Monday returns the first day of the week at local midnight.
func (w WeekID) Monday() time.Time {
	// January 4th always falls in ISO week 1.
	jan4 := time.Date(w.Year, time.January, 4, 0, 0, 0, 0, time.Local)
	monday, _ := WeekRange(jan4)
	return monday.AddDate(0, 0, (w.Week-1)*7)
}

// Sunday returns the last day of the week at local midnight.
func (w WeekID) Sunday() time.Time {
	return w.Monday().AddDate(0, 0, 6)
}

// FileName returns the persistence key for the week:
// "<Mon-month>_<Mon-day>_<Mon-year>-<Sun-month>_<Sun-day>_<Sun-year>.json".
func (w WeekID) FileName() string {
	return w.Key() + ".json"
}

// Key returns the persistence key without an extension.
func (w WeekID) Key() string {
	mon, sun := w.Monday(), w.Sunday()
	return fmt.Sprintf("%d_%d_%d-%d_%d_%d",
		int(mon.Month()), mon.Day(), mon.Year(),
		int(sun.Month()), sun.Day(), sun.Year())
}

// WeekRange returns the Monday and Sunday of the ISO week containing t.
func WeekRange(t time.Time) (monday, sunday time.Time) {
	t = TruncateToDay(t)
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday becomes day 7 in ISO week
	}
	monday = t.AddDate(0, 0, -(weekday - 1))
	sunday = monday.AddDate(0, 0, 6)
	return monday, sunday
}

// PreviousWeek returns a date inside the ISO week before the one containing t.
// It is the day before this week's Monday, so year edges need no special case.
func PreviousWeek(t time.Time) time.Time {
	monday, _ := WeekRange(t)
	return monday.AddDate(0, 0, -1)
}

// NextWeek returns a date inside the ISO week after the one containing t.
func NextWeek(t time.Time) time.Time {
	_, sunday := WeekRange(t)
	return sunday.AddDate(0, 0, 1)
}

// CurrentWeek returns today's date according to clock, truncated to midnight.
func CurrentWeek(clock Clock) time.Time {
	if clock == nil {
		clock = SystemClock
	}
	return TruncateToDay(clock())
}

// TruncateToDay returns t with time set to midnight.
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay reports whether a and b fall on the same calendar date.
func SameDay(a, b time.Time) bool {
	ya, ma, da := a.Date()
	yb, mb, db := b.Date()
	return ya == yb && ma == mb && da == db
}

// ParseDate parses a date string in YYYY-MM-DD format.
// If the string is empty, returns today's date.
func ParseDate(s string) (time.Time, error) {
	if s == "" {
		return TruncateToDay(time.Now()), nil
	}
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return time.Time{}, ErrInvalidDateFormat
	}
	return t, nil
}

// ParseWeekDate resolves the date used to pick a week. Accepted inputs:
//   - Empty string or "today": relativeTo
//   - "last-week" / "next-week": a date in the adjacent ISO week
//   - Absolute date: "2026-10-15" (YYYY-MM-DD)
//
// All inputs are case-insensitive. Dates in the past are allowed.
func ParseWeekDate(s string, relativeTo time.Time) (time.Time, error) {
	today := TruncateToDay(relativeTo)
	input := strings.ToLower(strings.TrimSpace(s))

	switch input {
	case "", "today":
		return today, nil
	case "last-week":
		return PreviousWeek(today), nil
	case "next-week":
		return NextWeek(today), nil
	}

	result, err := time.ParseInLocation("2006-01-02", input, relativeTo.Location())
	if err != nil {
		return time.Time{}, ErrInvalidDateFormat
	}
	return result, nil
}
