// Package export writes week grids as iCalendar files.
package export

import (
	"fmt"
	"io"
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/javiermolinar/weekgrid/internal/dateutil"
	"github.com/javiermolinar/weekgrid/internal/schedule"
)

// ProductID is the PRODID of exported calendars.
const ProductID = "-//weekgrid//EN"

// EventUID returns the stable UID of the event for slot (day, hourIdx).
func EventUID(week dateutil.WeekID, day, hourIdx int) string {
	return fmt.Sprintf("%s-%d-%02d@weekgrid", week, day, schedule.Hour(hourIdx))
}

// WeekCalendar builds a calendar with one one-hour event per filled slot.
// stamp is written as DTSTAMP on every event.
func WeekCalendar(week dateutil.WeekID, grid *schedule.WeekGrid, stamp time.Time) *ical.Calendar {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(ProductID)

	monday := week.Monday()
	for d := range grid {
		dayDate := monday.AddDate(0, 0, d)
		for h := range grid[d] {
			u := grid[d][h]
			if u.IsEmpty() {
				continue
			}
			start := time.Date(dayDate.Year(), dayDate.Month(), dayDate.Day(),
				schedule.Hour(h), 0, 0, 0, time.Local)

			event := cal.AddEvent(EventUID(week, d, h))
			event.SetDtStampTime(stamp)
			event.SetStartAt(start)
			event.SetEndAt(start.Add(time.Hour))
			event.SetSummary(u.Content)
			event.SetDescription(u.DateHour)
		}
	}
	return cal
}

// Write serializes the week's calendar to w.
func Write(w io.Writer, week dateutil.WeekID, grid *schedule.WeekGrid, stamp time.Time) error {
	cal := WeekCalendar(week, grid, stamp)
	if _, err := io.WriteString(w, cal.Serialize()); err != nil {
		return fmt.Errorf("writing calendar for %s: %w", week, err)
	}
	return nil
}
