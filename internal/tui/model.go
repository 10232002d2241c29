// Package tui provides the terminal user interface for weekgrid.
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"

	"github.com/javiermolinar/weekgrid/internal/config"
	"github.com/javiermolinar/weekgrid/internal/dateutil"
	"github.com/javiermolinar/weekgrid/internal/session"
	"github.com/javiermolinar/weekgrid/internal/store"
	"github.com/javiermolinar/weekgrid/internal/tui/theme"
)

const entryCharLimit = 512

// Model is the main TUI model. It translates terminal events into session
// messages and renders the session state; the session owns everything else.
type Model struct {
	ctx     context.Context
	session *session.Session
	config  *config.Config

	// Theme and styles
	theme  *theme.Theme
	styles *Styles

	// Entry field for the selected slot
	entry textinput.Model

	// Terminal dimensions and layout
	width  int
	height int
	layout Layout

	// Messages
	statusMsg  string    // Temporary status/error message
	statusErr  bool      // Render statusMsg as an error
	statusTime time.Time // When to clear message
	now        dateutil.Clock
}

// New creates a new TUI model around an open session.
func New(ctx context.Context, sess *session.Session, cfg *config.Config) Model {
	t, err := theme.Load(cfg.UI.Theme)
	if err != nil {
		log.WithError(err).Warn("loading theme, using default")
		t, _ = theme.Load(theme.DefaultName)
	}
	styles := NewStyles(t)

	entry := textinput.New()
	entry.Placeholder = session.SelectPlaceholder
	entry.CharLimit = entryCharLimit
	entry.Prompt = "> "
	entry.TextStyle = styles.EntryTextStyle
	entry.PromptStyle = styles.EntryTextStyle
	entry.PlaceholderStyle = styles.EntryPlaceholder
	entry.Cursor.TextStyle = styles.EntryTextStyle

	return Model{
		ctx:     ctx,
		session: sess,
		config:  cfg,
		theme:   t,
		styles:  styles,
		entry:   entry,
		layout:  buildLayout(0, 0),
		now:     dateutil.SystemClock,
	}
}

// Session returns the session driven by the model.
func (m Model) Session() *session.Session {
	return m.session
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// RunOptions configures Run.
type RunOptions struct {
	// Anchor opens the week containing this date instead of the current one.
	Anchor time.Time
	// Clock overrides the system clock.
	Clock dateutil.Clock
}

// Run opens a session on st and runs the TUI until the user quits. A week
// that cannot be loaded at startup is returned as an error before the
// terminal is taken over.
func Run(ctx context.Context, st store.Store, cfg *config.Config, opts RunOptions) error {
	var sessOpts []session.Option
	if opts.Clock != nil {
		sessOpts = append(sessOpts, session.WithClock(opts.Clock))
	}
	if !opts.Anchor.IsZero() {
		sessOpts = append(sessOpts, session.WithAnchor(opts.Anchor))
	}

	sess, err := session.New(ctx, st, sessOpts...)
	if err != nil {
		return err
	}
	log.WithField("week", sess.Week().String()).Info("session started")

	model := New(ctx, sess, cfg)
	if opts.Clock != nil {
		model.now = opts.Clock
	}
	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithContext(ctx),
	)
	_, err = p.Run()
	return err
}
