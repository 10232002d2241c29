package integration

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/javiermolinar/weekgrid/internal/config"
	"github.com/javiermolinar/weekgrid/internal/dateutil"
	"github.com/javiermolinar/weekgrid/internal/export"
	"github.com/javiermolinar/weekgrid/internal/schedule"
	"github.com/javiermolinar/weekgrid/internal/session"
	"github.com/javiermolinar/weekgrid/internal/store"
)

var backends = []string{config.BackendJSON, config.BackendSQLite}

// testConfig returns a config whose storage lives in a fresh temp dir.
func testConfig(t *testing.T, backend string) *config.Config {
	t.Helper()
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Storage.Backend = backend
	cfg.Storage.Dir = filepath.Join(dir, "weeks")
	cfg.Storage.DBPath = filepath.Join(dir, "weekgrid.db")
	return cfg
}

// openStore opens the configured backend with automatic cleanup.
func openStore(t *testing.T, cfg *config.Config) store.Store {
	t.Helper()
	st, err := store.Open(cfg)
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func fixedClock(t time.Time) dateutil.Clock {
	return func() time.Time { return t }
}

// mustApply feeds messages to the session or fails the test.
func mustApply(t *testing.T, s *session.Session, msgs ...session.Msg) {
	t.Helper()
	for _, msg := range msgs {
		if err := s.Apply(context.Background(), msg); err != nil {
			t.Fatalf("Apply(%T): %v", msg, err)
		}
	}
}

func TestFullWorkflow(t *testing.T) {
	now := time.Date(2026, 10, 15, 9, 30, 0, 0, time.Local)

	for _, backend := range backends {
		t.Run(backend, func(t *testing.T) {
			ctx := context.Background()
			cfg := testConfig(t, backend)
			st := openStore(t, cfg)

			s, err := session.New(ctx, st, session.WithClock(fixedClock(now)))
			if err != nil {
				t.Fatalf("session.New: %v", err)
			}
			if got := s.Week().String(); got != "2026-W42" {
				t.Fatalf("week = %s, want 2026-W42", got)
			}

			// Plan Monday 08:00 and Thursday 10:00.
			mustApply(t, s,
				session.HoverEnter{Pos: session.Position{Day: 0, Hour: 0}},
				session.Click{Pos: session.Position{Day: 0, Hour: 0}},
				session.TextChanged{Text: "Standup"},
				session.Submit{},
				session.Click{Pos: session.Position{Day: 3, Hour: 2}},
				session.TextChanged{Text: "Review"},
				session.Submit{},
			)

			// Plan next Monday, then come back.
			mustApply(t, s,
				session.Navigate{Target: session.NavNext},
				session.Click{Pos: session.Position{Day: 0, Hour: 12}},
				session.TextChanged{Text: "Dinner"},
				session.Submit{},
				session.Navigate{Target: session.NavCurrent},
			)
			if got := s.Grid()[0][0].Content; got != "Standup" {
				t.Errorf("after navigating back: content = %q, want %q", got, "Standup")
			}
			mustApply(t, s, session.Close{})

			// A fresh store and session see the same data.
			if err := st.Close(); err != nil {
				t.Fatalf("closing store: %v", err)
			}
			st2 := openStore(t, cfg)
			s2, err := session.New(ctx, st2, session.WithClock(fixedClock(now)))
			if err != nil {
				t.Fatalf("reopening session: %v", err)
			}

			labels := s2.Labels()
			if labels[0][0] != schedule.LabelFilled || labels[3][2] != schedule.LabelFilled {
				t.Errorf("labels after reopen: [0][0]=%s [3][2]=%s, want filled", labels[0][0], labels[3][2])
			}
			if labels[3][0] != schedule.LabelToday {
				t.Errorf("labels[3][0] = %s, want %s", labels[3][0], schedule.LabelToday)
			}
			if labels[1][0] != schedule.LabelEmpty {
				t.Errorf("labels[1][0] = %s, want %s", labels[1][0], schedule.LabelEmpty)
			}

			next, err := st2.Load(ctx, dateutil.WeekOf(now.AddDate(0, 0, 7)))
			if err != nil {
				t.Fatalf("loading next week: %v", err)
			}
			if got := next[0][12]; got.Content != "Dinner" || got.DateHour != "10/19/2026 20:00" {
				t.Errorf("next week slot = %+v", got)
			}

			// Export what was reloaded.
			var buf bytes.Buffer
			if err := export.Write(&buf, s2.Week(), s2.Grid(), now); err != nil {
				t.Fatalf("export: %v", err)
			}
			out := buf.String()
			if n := strings.Count(out, "BEGIN:VEVENT"); n != 2 {
				t.Errorf("exported %d events, want 2", n)
			}
			if !strings.Contains(out, "SUMMARY:Review") {
				t.Errorf("export missing Review:\n%s", out)
			}
		})
	}
}

func TestUnsavedWeekStaysBlank(t *testing.T) {
	for _, backend := range backends {
		t.Run(backend, func(t *testing.T) {
			ctx := context.Background()
			st := openStore(t, testConfig(t, backend))

			week := dateutil.WeekID{Year: 2030, Week: 1}
			g, err := st.Load(ctx, week)
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if g.FilledCount() != 0 {
				t.Errorf("FilledCount() = %d, want 0", g.FilledCount())
			}
			if got := g[0][0].DateHour; got != "12/31/2029 8:00" {
				t.Errorf("first slot = %q, want %q", got, "12/31/2029 8:00")
			}
		})
	}
}
