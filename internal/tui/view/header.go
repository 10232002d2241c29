package view

import (
	"strconv"
	"time"

	"github.com/javiermolinar/weekgrid/internal/dateutil"
	"github.com/javiermolinar/weekgrid/internal/schedule"
)

// HeaderLabels builds column labels and marks today's column.
// Column 0 is the time column and carries the month label.
func HeaderLabels(weekStart time.Time, today time.Time) ([]string, map[int]bool) {
	labels := make([]string, 0, schedule.DaysPerWeek+1)
	todayCols := make(map[int]bool)

	yearSuffix := weekStart.Year() % 100
	monthLabel := weekStart.Format("Jan") + " " + strconv.Itoa(yearSuffix/10) + strconv.Itoa(yearSuffix%10)
	labels = append(labels, monthLabel)

	for i := 0; i < schedule.DaysPerWeek; i++ {
		dayDate := weekStart.AddDate(0, 0, i)
		label := schedule.WeekdayShortName(i) + " " + strconv.Itoa(dayDate.Day())
		if dateutil.SameDay(dayDate, today) {
			label = "*" + label + "*"
			todayCols[i+1] = true
		}
		labels = append(labels, label)
	}

	return labels, todayCols
}

// WeekTitle describes a week, e.g. "2026-W42  Oct 12 - Oct 18, 2026".
func WeekTitle(week dateutil.WeekID) string {
	mon, sun := week.Monday(), week.Sunday()
	return week.String() + "  " + mon.Format("Jan 2") + " - " + sun.Format("Jan 2, 2006")
}

// TimeLabel formats the row label for an hour, e.g. "08:00".
func TimeLabel(hour int) string {
	if hour < 10 {
		return "0" + strconv.Itoa(hour) + ":00"
	}
	return strconv.Itoa(hour) + ":00"
}
