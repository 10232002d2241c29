// Package session owns the active week grid together with the hover and
// selection state, and applies interaction messages to them one at a time.
package session

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/javiermolinar/weekgrid/internal/dateutil"
	"github.com/javiermolinar/weekgrid/internal/schedule"
	"github.com/javiermolinar/weekgrid/internal/store"
)

// Side panel placeholders.
const (
	HoverPlaceholder  = "hover to view"
	SelectPlaceholder = "click to edit"
)

// State summarizes the hover and selection state.
type State int

const (
	StateIdle State = iota
	StateHovering
	StateSelected
	StateHoveringSelected
)

func (s State) String() string {
	switch s {
	case StateHovering:
		return "hovering"
	case StateSelected:
		return "selected"
	case StateHoveringSelected:
		return "hovering+selected"
	default:
		return "idle"
	}
}

// Panel is the content of the hover or selection side panel.
type Panel struct {
	Active      bool
	Placeholder string
	DateHour    string
	Content     string
}

// Session is the single owner of the interaction state. It is not safe for
// concurrent use; callers feed it one message at a time.
type Session struct {
	store store.Store
	clock dateutil.Clock

	anchor time.Time
	week   dateutil.WeekID
	grid   *schedule.WeekGrid

	hovered  *Position
	selected *Position
	pending  string
	closed   bool
}

// Option configures a Session.
type Option func(*Session)

// WithClock sets the clock used for "today" and the Current week.
func WithClock(clock dateutil.Clock) Option {
	return func(s *Session) {
		s.clock = clock
	}
}

// WithAnchor opens the week containing date instead of the current week.
func WithAnchor(date time.Time) Option {
	return func(s *Session) {
		s.anchor = dateutil.TruncateToDay(date)
	}
}

// New creates a session and loads its initial week from st.
func New(ctx context.Context, st store.Store, opts ...Option) (*Session, error) {
	s := &Session{
		store: st,
		clock: dateutil.SystemClock,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.anchor.IsZero() {
		s.anchor = dateutil.CurrentWeek(s.clock)
	}

	week := dateutil.WeekOf(s.anchor)
	grid, err := st.Load(ctx, week)
	if err != nil {
		return nil, fmt.Errorf("loading week %s: %w", week, err)
	}
	s.week = week
	s.grid = grid
	return s, nil
}

// Apply processes one message completely, including any store write.
func (s *Session) Apply(ctx context.Context, msg Msg) error {
	if s.closed {
		return nil
	}

	switch msg := msg.(type) {
	case HoverEnter:
		if err := schedule.CheckIndex(msg.Pos.Day, msg.Pos.Hour); err != nil {
			return err
		}
		pos := msg.Pos
		s.hovered = &pos

	case HoverLeave:
		s.hovered = nil

	case Click:
		if err := schedule.CheckIndex(msg.Pos.Day, msg.Pos.Hour); err != nil {
			return err
		}
		pos := msg.Pos
		s.selected = &pos
		s.pending = ""
		log.WithField("pos", pos.String()).Debug("slot selected")

	case TextChanged:
		if s.selected != nil {
			s.pending = msg.Text
		}

	case Submit:
		return s.commit(ctx)

	case Navigate:
		return s.navigate(ctx, msg.Target)

	case Close:
		s.closed = true
		log.WithField("week", s.week.String()).Debug("session closed")

	default:
		return fmt.Errorf("unknown message %T", msg)
	}
	return nil
}

// commit writes the pending text into the selected slot and persists the
// week. The slot stays selected. When the write fails the edit and the
// pending text are kept so a second Submit retries it.
func (s *Session) commit(ctx context.Context) error {
	if s.selected == nil {
		return nil
	}
	pos := *s.selected
	if err := schedule.SetContent(s.grid, pos.Day, pos.Hour, s.pending); err != nil {
		return err
	}

	if err := s.store.Save(ctx, s.week, s.grid.Clone()); err != nil {
		log.WithFields(log.Fields{"week": s.week.String(), "pos": pos.String(), "error": err}).Error("saving week")
		return fmt.Errorf("saving week %s: %w", s.week, err)
	}

	log.WithFields(log.Fields{"week": s.week.String(), "pos": pos.String()}).Debug("slot committed")
	s.pending = ""
	return nil
}

// navigate loads the target week and swaps it in together with a reset of
// hover, selection and pending text. Slot indices never carry over to
// another week. A failed load leaves the current week active.
func (s *Session) navigate(ctx context.Context, target NavTarget) error {
	var anchor time.Time
	switch target {
	case NavLast:
		anchor = dateutil.PreviousWeek(s.anchor)
	case NavNext:
		anchor = dateutil.NextWeek(s.anchor)
	default:
		anchor = dateutil.CurrentWeek(s.clock)
	}

	week := dateutil.WeekOf(anchor)
	grid, err := s.store.Load(ctx, week)
	if err != nil {
		log.WithFields(log.Fields{"week": week.String(), "error": err}).Error("loading week")
		return fmt.Errorf("loading week %s: %w", week, err)
	}

	s.anchor = anchor
	s.week = week
	s.grid = grid
	s.hovered = nil
	s.selected = nil
	s.pending = ""
	log.WithFields(log.Fields{"target": target.String(), "week": week.String()}).Debug("week changed")
	return nil
}

// Week returns the active week.
func (s *Session) Week() dateutil.WeekID {
	return s.week
}

// Anchor returns the date the active week was opened for.
func (s *Session) Anchor() time.Time {
	return s.anchor
}

// Grid returns a copy of the active grid.
func (s *Session) Grid() *schedule.WeekGrid {
	return s.grid.Clone()
}

// Hovered returns the hovered slot, if any.
func (s *Session) Hovered() (Position, bool) {
	if s.hovered == nil {
		return Position{}, false
	}
	return *s.hovered, true
}

// Selected returns the selected slot, if any.
func (s *Session) Selected() (Position, bool) {
	if s.selected == nil {
		return Position{}, false
	}
	return *s.selected, true
}

// Pending returns the uncommitted entry text.
func (s *Session) Pending() string {
	return s.pending
}

// Closed reports whether a Close message was applied.
func (s *Session) Closed() bool {
	return s.closed
}

// State returns the combined hover/selection state.
func (s *Session) State() State {
	switch {
	case s.hovered != nil && s.selected != nil:
		return StateHoveringSelected
	case s.selected != nil:
		return StateSelected
	case s.hovered != nil:
		return StateHovering
	default:
		return StateIdle
	}
}

// Today returns the current date according to the session clock.
func (s *Session) Today() time.Time {
	return dateutil.CurrentWeek(s.clock)
}

// CellLabel returns the label for one slot.
func (s *Session) CellLabel(pos Position) (schedule.Label, error) {
	u, err := s.grid.At(pos.Day, pos.Hour)
	if err != nil {
		return schedule.LabelEmpty, err
	}
	return schedule.LabelFor(u, s.Today()), nil
}

// Labels returns the label of every slot, reading the clock once.
func (s *Session) Labels() [schedule.DaysPerWeek][schedule.SlotsPerDay]schedule.Label {
	today := s.Today()
	var labels [schedule.DaysPerWeek][schedule.SlotsPerDay]schedule.Label
	for d := range s.grid {
		for h := range s.grid[d] {
			labels[d][h] = schedule.LabelFor(s.grid[d][h], today)
		}
	}
	return labels
}

// HoverPanel describes the hover side panel.
func (s *Session) HoverPanel() Panel {
	return s.panel(s.hovered, HoverPlaceholder)
}

// SelectPanel describes the selection side panel.
func (s *Session) SelectPanel() Panel {
	return s.panel(s.selected, SelectPlaceholder)
}

func (s *Session) panel(pos *Position, placeholder string) Panel {
	if pos == nil {
		return Panel{Placeholder: placeholder}
	}
	u := s.grid[pos.Day][pos.Hour]
	return Panel{
		Active:      true,
		Placeholder: placeholder,
		DateHour:    u.DateHour,
		Content:     u.Content,
	}
}
