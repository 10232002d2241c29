package dateutil

import (
	"errors"
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestParseDate(t *testing.T) {
	t.Run("valid date", func(t *testing.T) {
		got, err := ParseDate("2025-01-15")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := date(2025, 1, 15)
		if !got.Equal(want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("empty defaults to today", func(t *testing.T) {
		got, err := ParseDate("")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		today := TruncateToDay(time.Now())
		if !got.Equal(today) {
			t.Errorf("got %v, want %v", got, today)
		}
	})

	t.Run("invalid format", func(t *testing.T) {
		_, err := ParseDate("01-15-2025")
		if !errors.Is(err, ErrInvalidDateFormat) {
			t.Errorf("got error %v, want %v", err, ErrInvalidDateFormat)
		}
	})
}

func TestWeekRange(t *testing.T) {
	tests := []struct {
		name       string
		input      time.Time
		wantMonday time.Time
		wantSunday time.Time
	}{
		{
			name:       "monday",
			input:      date(2026, 10, 12),
			wantMonday: date(2026, 10, 12),
			wantSunday: date(2026, 10, 18),
		},
		{
			name:       "thursday with time of day",
			input:      time.Date(2026, 10, 15, 17, 45, 0, 0, time.Local),
			wantMonday: date(2026, 10, 12),
			wantSunday: date(2026, 10, 18),
		},
		{
			name:       "sunday belongs to the preceding monday",
			input:      date(2026, 10, 18),
			wantMonday: date(2026, 10, 12),
			wantSunday: date(2026, 10, 18),
		},
		{
			name:       "week spanning new year",
			input:      date(2026, 1, 1),
			wantMonday: date(2025, 12, 29),
			wantSunday: date(2026, 1, 4),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			monday, sunday := WeekRange(tt.input)
			if !monday.Equal(tt.wantMonday) {
				t.Errorf("monday = %v, want %v", monday, tt.wantMonday)
			}
			if !sunday.Equal(tt.wantSunday) {
				t.Errorf("sunday = %v, want %v", sunday, tt.wantSunday)
			}
		})
	}
}

func TestWeekOf(t *testing.T) {
	tests := []struct {
		name  string
		input time.Time
		want  WeekID
	}{
		{name: "mid october", input: date(2026, 10, 15), want: WeekID{Year: 2026, Week: 42}},
		{name: "jan 1 on thursday is week 1", input: date(2026, 1, 1), want: WeekID{Year: 2026, Week: 1}},
		{name: "late december in next iso year", input: date(2025, 12, 29), want: WeekID{Year: 2026, Week: 1}},
		{name: "jan 1 on friday is week 53", input: date(2027, 1, 1), want: WeekID{Year: 2026, Week: 53}},
		{name: "jan 1 on friday 2021", input: date(2021, 1, 1), want: WeekID{Year: 2020, Week: 53}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WeekOf(tt.input); got != tt.want {
				t.Errorf("WeekOf(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestWeekOf_SameWeekSameID(t *testing.T) {
	anchors := []time.Time{
		date(2026, 10, 15),
		date(2026, 1, 1),
		date(2027, 1, 1),
		date(2024, 12, 31),
	}

	for _, anchor := range anchors {
		monday, _ := WeekRange(anchor)
		want := WeekOf(anchor)
		for i := 0; i < 7; i++ {
			d := monday.AddDate(0, 0, i).Add(13 * time.Hour)
			if got := WeekOf(d); got != want {
				t.Errorf("WeekOf(%v) = %v, want %v", d, got, want)
			}
			if got := WeekOf(d).FileName(); got != want.FileName() {
				t.Errorf("FileName for %v = %q, want %q", d, got, want.FileName())
			}
		}
	}
}

func TestWeekID_Bounds(t *testing.T) {
	tests := []struct {
		week       WeekID
		wantMonday time.Time
		wantSunday time.Time
		wantFile   string
		wantString string
	}{
		{
			week:       WeekID{Year: 2026, Week: 42},
			wantMonday: date(2026, 10, 12),
			wantSunday: date(2026, 10, 18),
			wantFile:   "10_12_2026-10_18_2026.json",
			wantString: "2026-W42",
		},
		{
			week:       WeekID{Year: 2026, Week: 1},
			wantMonday: date(2025, 12, 29),
			wantSunday: date(2026, 1, 4),
			wantFile:   "12_29_2025-1_4_2026.json",
			wantString: "2026-W01",
		},
		{
			week:       WeekID{Year: 2026, Week: 53},
			wantMonday: date(2026, 12, 28),
			wantSunday: date(2027, 1, 3),
			wantFile:   "12_28_2026-1_3_2027.json",
			wantString: "2026-W53",
		},
	}

	for _, tt := range tests {
		t.Run(tt.wantString, func(t *testing.T) {
			if got := tt.week.Monday(); !got.Equal(tt.wantMonday) {
				t.Errorf("Monday() = %v, want %v", got, tt.wantMonday)
			}
			if got := tt.week.Sunday(); !got.Equal(tt.wantSunday) {
				t.Errorf("Sunday() = %v, want %v", got, tt.wantSunday)
			}
			if got := tt.week.FileName(); got != tt.wantFile {
				t.Errorf("FileName() = %q, want %q", got, tt.wantFile)
			}
			if got := tt.week.String(); got != tt.wantString {
				t.Errorf("String() = %q, want %q", got, tt.wantString)
			}
			if got := WeekOf(tt.week.Monday()); got != tt.week {
				t.Errorf("WeekOf(Monday()) = %v, want %v", got, tt.week)
			}
		})
	}
}

func TestPreviousAndNextWeek(t *testing.T) {
	anchors := []time.Time{
		date(2026, 10, 15),
		date(2026, 1, 1),
		date(2027, 1, 1),
		date(2021, 1, 1),
		date(2024, 12, 30),
		date(2026, 12, 31),
	}

	for _, d := range anchors {
		t.Run(d.Format("2006-01-02"), func(t *testing.T) {
			week := WeekOf(d)

			prev := WeekOf(PreviousWeek(d))
			if !prev.Monday().AddDate(0, 0, 7).Equal(week.Monday()) {
				t.Errorf("previous week %v is not adjacent to %v", prev, week)
			}
			next := WeekOf(NextWeek(d))
			if !week.Monday().AddDate(0, 0, 7).Equal(next.Monday()) {
				t.Errorf("next week %v is not adjacent to %v", next, week)
			}

			if got := WeekOf(PreviousWeek(NextWeek(d))); got != week {
				t.Errorf("PreviousWeek(NextWeek(d)) in %v, want %v", got, week)
			}
			if got := WeekOf(NextWeek(PreviousWeek(d))); got != week {
				t.Errorf("NextWeek(PreviousWeek(d)) in %v, want %v", got, week)
			}
		})
	}
}

func TestCurrentWeek(t *testing.T) {
	now := time.Date(2026, 10, 15, 9, 30, 0, 0, time.Local)
	got := CurrentWeek(func() time.Time { return now })
	if !got.Equal(date(2026, 10, 15)) {
		t.Errorf("CurrentWeek = %v, want 2026-10-15", got)
	}
}

func TestTruncateToDay(t *testing.T) {
	input := time.Date(2025, 1, 15, 14, 30, 45, 123, time.UTC)
	want := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	got := TruncateToDay(input)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestParseWeekDate(t *testing.T) {
	relativeTo := time.Date(2026, 10, 15, 10, 0, 0, 0, time.Local)

	tests := []struct {
		input    string
		wantWeek WeekID
	}{
		{input: "", wantWeek: WeekID{Year: 2026, Week: 42}},
		{input: "today", wantWeek: WeekID{Year: 2026, Week: 42}},
		{input: "TODAY", wantWeek: WeekID{Year: 2026, Week: 42}},
		{input: "last-week", wantWeek: WeekID{Year: 2026, Week: 41}},
		{input: "next-week", wantWeek: WeekID{Year: 2026, Week: 43}},
		{input: "2025-01-01", wantWeek: WeekID{Year: 2025, Week: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseWeekDate(tt.input, relativeTo)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if WeekOf(got) != tt.wantWeek {
				t.Errorf("ParseWeekDate(%q) in %v, want %v", tt.input, WeekOf(got), tt.wantWeek)
			}
		})
	}

	t.Run("invalid", func(t *testing.T) {
		_, err := ParseWeekDate("monday-ish", relativeTo)
		if !errors.Is(err, ErrInvalidDateFormat) {
			t.Errorf("got error %v, want %v", err, ErrInvalidDateFormat)
		}
	})
}
