package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/javiermolinar/weekgrid/internal/dateutil"
	"github.com/javiermolinar/weekgrid/internal/schedule"
)

// FormatVersion is the current on-disk document version. Version 0 is the
// legacy bare 7x13 array without a header.
const FormatVersion = 1

// Decoding errors, wrapped in CorruptStoreError by the backends.
var (
	ErrUnknownVersion = errors.New("unknown format version")
	ErrWrongWeek      = errors.New("document belongs to another week")
	ErrBadShape       = errors.New("grid must have 7 days of 13 slots")
	ErrSlotMismatch   = errors.New("slot does not match its position in the week")
)

type document struct {
	Version int                   `json:"version"`
	Week    string                `json:"week"`
	Days    [][]schedule.HourUnit `json:"days"`
}

// Encode serializes a grid. Equal grids always produce identical bytes.
func Encode(week dateutil.WeekID, grid *schedule.WeekGrid) ([]byte, error) {
	doc := document{
		Version: FormatVersion,
		Week:    week.String(),
		Days:    make([][]schedule.HourUnit, schedule.DaysPerWeek),
	}
	for d := range grid {
		doc.Days[d] = append([]schedule.HourUnit(nil), grid[d][:]...)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling week: %w", err)
	}
	return append(data, '\n'), nil
}

// Decode parses a stored document for week, accepting both the current and
// the legacy format. Every slot is checked against the labels the week
// would produce, so a file copied from another week is rejected.
func Decode(week dateutil.WeekID, data []byte) (*schedule.WeekGrid, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, errors.New("empty document")
	}

	var days [][]schedule.HourUnit
	switch trimmed[0] {
	case '[':
		if err := json.Unmarshal(trimmed, &days); err != nil {
			return nil, fmt.Errorf("parsing legacy week: %w", err)
		}
	case '{':
		var doc document
		if err := json.Unmarshal(trimmed, &doc); err != nil {
			return nil, fmt.Errorf("parsing week: %w", err)
		}
		if doc.Version != FormatVersion {
			return nil, fmt.Errorf("%w: %d", ErrUnknownVersion, doc.Version)
		}
		if doc.Week != week.String() {
			return nil, fmt.Errorf("%w: %s, want %s", ErrWrongWeek, doc.Week, week)
		}
		days = doc.Days
	default:
		return nil, errors.New("not a JSON object or array")
	}

	return toGrid(week, days)
}

func toGrid(week dateutil.WeekID, days [][]schedule.HourUnit) (*schedule.WeekGrid, error) {
	if len(days) != schedule.DaysPerWeek {
		return nil, fmt.Errorf("%w: got %d days", ErrBadShape, len(days))
	}

	expected := schedule.InitWeek(week.Monday())
	var grid schedule.WeekGrid
	for d := range days {
		if len(days[d]) != schedule.SlotsPerDay {
			return nil, fmt.Errorf("%w: day %d has %d slots", ErrBadShape, d, len(days[d]))
		}
		for h, u := range days[d] {
			want := expected[d][h]
			if u.DateHour != want.DateHour || u.Day != want.Day || (u.Date != "" && u.Date != want.Date) {
				return nil, fmt.Errorf("%w: day %d hour %d is %q", ErrSlotMismatch, d, h, u.DateHour)
			}
			// Legacy slots gain the full date.
			u.Date = want.Date
			grid[d][h] = u
		}
	}
	return &grid, nil
}
