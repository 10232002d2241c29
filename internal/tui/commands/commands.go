// Package commands provides TUI command constructors and message types.
package commands

import (
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// Status message lifetimes.
const (
	StatusTTL = 3 * time.Second
	ErrorTTL  = 5 * time.Second
)

// ErrMsg is sent when an error occurs.
type ErrMsg struct {
	Err error
}

// StatusMsgCmd is sent for temporary status messages.
type StatusMsgCmd struct {
	Msg string
}

// ClearStatusMsg is sent to clear the status message.
type ClearStatusMsg struct{}

// PasteMsg carries clipboard text to insert into the entry.
type PasteMsg struct {
	Text string
}

// Clipboard access, replaced in tests.
var (
	writeClipboard = clipboard.WriteAll
	readClipboard  = clipboard.ReadAll
)

// Status returns a command that shows a temporary status message.
func Status(format string, args ...any) tea.Cmd {
	return func() tea.Msg {
		return StatusMsgCmd{Msg: fmt.Sprintf(format, args...)}
	}
}

// ClearStatusAfter returns a command that clears the status line after d.
func ClearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}

// CopyToClipboard copies text to the system clipboard.
func CopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if text == "" {
			return StatusMsgCmd{Msg: "Nothing to copy"}
		}
		if err := writeClipboard(text); err != nil {
			return ErrMsg{Err: fmt.Errorf("copying to clipboard: %w", err)}
		}
		return StatusMsgCmd{Msg: "Copied to clipboard"}
	}
}

// PasteFromClipboard reads the system clipboard for the entry field.
func PasteFromClipboard() tea.Cmd {
	return func() tea.Msg {
		text, err := readClipboard()
		if err != nil {
			return ErrMsg{Err: fmt.Errorf("reading clipboard: %w", err)}
		}
		return PasteMsg{Text: text}
	}
}
