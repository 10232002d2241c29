package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"

	"github.com/javiermolinar/weekgrid/internal/session"
)

// LogKeyPress logs a key press event.
func LogKeyPress(msg tea.KeyMsg, entryFocused bool) {
	log.WithFields(log.Fields{
		"key":   msg.String(),
		"entry": entryFocused,
	}).Debug("key press")
}

// LogMouse logs pointer presses and slot changes. Plain motion inside the
// same slot is not logged.
func LogMouse(msg tea.MouseMsg, pos session.Position, inGrid bool) {
	fields := log.Fields{
		"x":     msg.X,
		"y":     msg.Y,
		"event": msg.String(),
	}
	if inGrid {
		fields["pos"] = pos.String()
	}
	log.WithFields(fields).Debug("mouse")
}

// LogTransition logs a session message and the resulting state.
func LogTransition(msg session.Msg, before, after session.State, err error) {
	entry := log.WithFields(log.Fields{
		"msg":  msgName(msg),
		"from": before.String(),
		"to":   after.String(),
	})
	if err != nil {
		entry.WithError(err).Warn("session message failed")
		return
	}
	entry.Debug("session message")
}

// LogWindowSize logs a terminal resize and the derived layout.
func LogWindowSize(width, height int, layout Layout) {
	log.WithFields(log.Fields{
		"width":     width,
		"height":    height,
		"col_width": layout.ColW,
		"too_small": layout.TooSmall,
	}).Debug("window size")
}

func msgName(msg session.Msg) string {
	switch msg := msg.(type) {
	case session.HoverEnter:
		return "hover_enter" + msg.Pos.String()
	case session.HoverLeave:
		return "hover_leave"
	case session.Click:
		return "click" + msg.Pos.String()
	case session.TextChanged:
		return "text_changed"
	case session.Submit:
		return "submit"
	case session.Navigate:
		return "navigate_" + msg.Target.String()
	case session.Close:
		return "close"
	default:
		return "unknown"
	}
}
