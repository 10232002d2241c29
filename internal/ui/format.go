package ui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/x/ansi"

	"github.com/javiermolinar/weekgrid/internal/dateutil"
	"github.com/javiermolinar/weekgrid/internal/schedule"
	"github.com/javiermolinar/weekgrid/internal/tui/view"
)

const ruleWidth = 74

// Stats holds aggregated statistics for a week grid.
type Stats struct {
	Filled    int
	Total     int
	DayFilled [schedule.DaysPerWeek]int
}

// ComputeStats counts the filled slots of g.
func ComputeStats(g *schedule.WeekGrid) Stats {
	s := Stats{Total: schedule.DaysPerWeek * schedule.SlotsPerDay}
	for d := range g {
		for h := range g[d] {
			if !g[d][h].IsEmpty() {
				s.DayFilled[d]++
			}
		}
		s.Filled += s.DayFilled[d]
	}
	return s
}

// FillPercent returns the percentage of slots holding a note.
func (s Stats) FillPercent() int {
	if s.Total == 0 {
		return 0
	}
	return (s.Filled * 100) / s.Total
}

// BusiestDay returns the day index with the most filled slots, or -1 for an
// empty week. Ties go to the earlier day.
func (s Stats) BusiestDay() (day, slots int) {
	day = -1
	for d, n := range s.DayFilled {
		if n > slots {
			day, slots = d, n
		}
	}
	return day, slots
}

// PrintOpts configures week printing behavior.
type PrintOpts struct {
	Verbose      bool // Show full notes
	MaxDescWidth int  // Maximum note width (0 = auto)
}

// CalcMaxDescWidth calculates the maximum note width based on options.
func (o PrintOpts) CalcMaxDescWidth(defaultWidth int) int {
	if o.MaxDescWidth > 0 {
		return o.MaxDescWidth
	}
	if !o.Verbose {
		return defaultWidth
	}
	// "    HH:MM  " = 11 chars
	available := termWidth() - 11
	if available > defaultWidth {
		return available
	}
	return defaultWidth
}

// PrintWeek writes the filled slots of a week, grouped by day.
func PrintWeek(w io.Writer, week dateutil.WeekID, g *schedule.WeekGrid, today time.Time, opts PrintOpts) {
	maxDescWidth := opts.CalcMaxDescWidth(50)
	monday := week.Monday()

	_, _ = fmt.Fprintf(w, "\n  %s\n", formatHeader(view.WeekTitle(week)))
	_, _ = fmt.Fprintln(w, strings.Repeat("─", ruleWidth))

	for d := range g {
		if d > 0 {
			_, _ = fmt.Fprintln(w)
		}
		dayDate := monday.AddDate(0, 0, d)
		dayName := dayDate.Format("Mon Jan 2")
		if dateutil.SameDay(dayDate, today) {
			_, _ = fmt.Fprintf(w, "  %s %s\n", formatToday(dayName), formatMuted("(today)"))
		} else {
			_, _ = fmt.Fprintf(w, "  %s\n", formatHeader(dayName))
		}

		printed := 0
		for h := range g[d] {
			u := g[d][h]
			if u.IsEmpty() {
				continue
			}
			PrintSlotRow(w, h, u.Content, maxDescWidth)
			printed++
		}
		if printed == 0 {
			_, _ = fmt.Fprintf(w, "    %s\n", formatMuted("-"))
		}
	}

	_, _ = fmt.Fprintln(w, strings.Repeat("─", ruleWidth))
	PrintStats(w, ComputeStats(g))
}

// PrintSlotRow prints a single filled slot.
func PrintSlotRow(w io.Writer, hourIdx int, content string, maxDescWidth int) {
	desc := strings.TrimSpace(view.SingleLine(content))
	if maxDescWidth > 3 && ansi.StringWidth(desc) > maxDescWidth {
		desc = ansi.Truncate(desc, maxDescWidth, "...")
	}
	_, _ = fmt.Fprintf(w, "    %s  %s\n", formatMuted(view.TimeLabel(schedule.Hour(hourIdx))), formatFilled(desc))
}

// PrintStats prints the stats summary lines.
func PrintStats(w io.Writer, s Stats) {
	_, _ = fmt.Fprintf(w, "  Planned: %s  |  Slots: %d of %d",
		formatStats(FormatDuration(s.Filled*60)), s.Filled, s.Total)
	if day, slots := s.BusiestDay(); day >= 0 {
		_, _ = fmt.Fprintf(w, "  |  Busiest: %s (%s)",
			schedule.WeekdayShortName(day), FormatDuration(slots*60))
	}
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintf(w, "  Fill: %s\n", FillBar(s.Filled, s.Total, 20))
}

// FillBar creates an ASCII progress bar showing how much of the week is planned.
func FillBar(filled, total, width int) string {
	if total == 0 || filled == 0 {
		return "[" + strings.Repeat("░", width) + "] (0% planned)"
	}

	pct := (filled * 100) / total
	n := (filled * width) / total

	bar := strings.Repeat("█", n) + strings.Repeat("░", width-n)
	return fmt.Sprintf("[%s] %s", formatFilled(bar), formatStats(fmt.Sprintf("(%d%% planned)", pct)))
}

// FormatDuration formats minutes as a human-readable duration.
func FormatDuration(minutes int) string {
	if minutes == 0 {
		return "0m"
	}
	hours := minutes / 60
	mins := minutes % 60
	if hours == 0 {
		return fmt.Sprintf("%dm", mins)
	}
	if mins == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh%dm", hours, mins)
}
