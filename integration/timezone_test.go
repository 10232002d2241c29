package integration

import (
	"context"
	"testing"
	"time"

	"github.com/javiermolinar/weekgrid/internal/schedule"
	"github.com/javiermolinar/weekgrid/internal/session"
)

// TestTodayFollowsClockZone checks that "today" is the clock's calendar
// date, not the UTC one, and that it survives a save and reload.
func TestTodayFollowsClockZone(t *testing.T) {
	// Sunday 23:30 in UTC-10 is already Monday in UTC.
	zone := time.FixedZone("UTC-10", -10*60*60)
	now := time.Date(2026, 10, 18, 23, 30, 0, 0, zone)
	t.Logf("clock: %v (UTC %v)", now, now.UTC())

	for _, backend := range backends {
		t.Run(backend, func(t *testing.T) {
			ctx := context.Background()
			st := openStore(t, testConfig(t, backend))

			s, err := session.New(ctx, st, session.WithClock(fixedClock(now)))
			if err != nil {
				t.Fatalf("session.New: %v", err)
			}
			if got := s.Week().String(); got != "2026-W42" {
				t.Fatalf("week = %s, want 2026-W42", got)
			}

			mustApply(t, s,
				session.Click{Pos: session.Position{Day: 6, Hour: 0}},
				session.TextChanged{Text: "Late"},
				session.Submit{},
			)

			reloaded, err := session.New(ctx, st, session.WithClock(fixedClock(now)))
			if err != nil {
				t.Fatalf("reloading: %v", err)
			}
			labels := reloaded.Labels()
			for d := 0; d < schedule.DaysPerWeek; d++ {
				want := schedule.LabelEmpty
				if d == 6 {
					want = schedule.LabelToday
				}
				if labels[d][1] != want {
					t.Errorf("day %d: label = %s, want %s", d, labels[d][1], want)
				}
			}
			if labels[6][0] != schedule.LabelFilled {
				t.Errorf("Sunday 08:00 = %s, want filled", labels[6][0])
			}
		})
	}
}
