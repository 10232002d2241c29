package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/weekgrid/internal/tui/theme"
)

// Styles holds all lipgloss styles for the TUI, derived from a theme.
// Cell styles never set a width or padding: view.Fit sizes the text so the
// grid geometry stays fixed for mouse hit-testing.
type Styles struct {
	// Theme colors as lipgloss colors
	colorBg          lipgloss.Color
	colorBgHighlight lipgloss.Color
	colorBgSelection lipgloss.Color
	colorFg          lipgloss.Color
	colorFgMuted     lipgloss.Color
	colorAccent      lipgloss.Color
	colorWarning     lipgloss.Color

	// Title row
	TitleStyle     lipgloss.Style
	NavButtonStyle lipgloss.Style

	// Header styles
	DayHeaderStyle      lipgloss.Style
	DayHeaderTodayStyle lipgloss.Style

	// Time column
	TimeColumnStyle lipgloss.Style

	// Slot styles, one per label plus the hover and selection overlays
	CellEmptyStyle    lipgloss.Style
	CellTodayStyle    lipgloss.Style
	CellFilledStyle   lipgloss.Style
	CellHoverStyle    lipgloss.Style
	CellSelectedStyle lipgloss.Style

	// Side panels
	PanelStyle      lipgloss.Style
	PanelTitleStyle lipgloss.Style
	PanelTextStyle  lipgloss.Style
	PanelMutedStyle lipgloss.Style

	// Entry box
	EntryStyle        lipgloss.Style
	EntryFocusedStyle lipgloss.Style
	EntryTextStyle    lipgloss.Style
	EntryPlaceholder  lipgloss.Style

	// Status message
	StatusStyle      lipgloss.Style
	StatusErrorStyle lipgloss.Style

	// Help text
	HelpStyle lipgloss.Style
}

// NewStyles creates a new Styles instance from a theme.
func NewStyles(t *theme.Theme) *Styles {
	s := &Styles{}
	palette := theme.NewPalette(t)

	s.colorBg = palette.Bg
	s.colorBgHighlight = palette.BgHighlight
	s.colorBgSelection = palette.BgSelection
	s.colorFg = palette.Fg
	s.colorFgMuted = palette.FgMuted
	s.colorAccent = palette.Accent
	s.colorWarning = palette.Warning

	s.TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(s.colorAccent).
		Background(s.colorBg)

	s.NavButtonStyle = lipgloss.NewStyle().
		Foreground(palette.TextOnAccent).
		Background(s.colorAccent).
		Bold(true)

	s.DayHeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(s.colorFg).
		Background(s.colorBg)

	s.DayHeaderTodayStyle = s.DayHeaderStyle.
		Foreground(palette.Today)

	s.TimeColumnStyle = lipgloss.NewStyle().
		Foreground(s.colorAccent).
		Background(s.colorBg)

	s.CellEmptyStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Background(s.colorBg)

	s.CellTodayStyle = lipgloss.NewStyle().
		Foreground(palette.TextOnToday).
		Background(palette.TodayBg)

	s.CellFilledStyle = lipgloss.NewStyle().
		Foreground(palette.TextOnFilled).
		Background(palette.FilledBg).
		Bold(true)

	s.CellHoverStyle = lipgloss.NewStyle().
		Foreground(palette.TextOnHover).
		Background(palette.HoverBg).
		Underline(true)

	s.CellSelectedStyle = lipgloss.NewStyle().
		Foreground(s.colorFg).
		Background(s.colorBgSelection).
		Bold(true).
		Reverse(true)

	s.PanelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(palette.Panel.Border).
		BorderBackground(s.colorBg).
		Background(palette.Panel.Bg).
		Padding(0, 1)

	s.PanelTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(s.colorAccent).
		Background(palette.Panel.Bg)

	s.PanelTextStyle = lipgloss.NewStyle().
		Foreground(palette.Panel.Text).
		Background(palette.Panel.Bg)

	s.PanelMutedStyle = lipgloss.NewStyle().
		Foreground(palette.Panel.Muted).
		Background(palette.Panel.Bg).
		Italic(true)

	s.EntryStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.colorFgMuted).
		BorderBackground(s.colorBg).
		Background(s.colorBgHighlight).
		Foreground(s.colorFg).
		Padding(0, 1)

	s.EntryFocusedStyle = s.EntryStyle.
		BorderForeground(s.colorAccent).
		Background(s.colorBgSelection)

	s.EntryTextStyle = lipgloss.NewStyle().
		Foreground(s.colorFg)

	s.EntryPlaceholder = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Italic(true)

	s.StatusStyle = lipgloss.NewStyle().
		Foreground(s.colorAccent).
		Background(s.colorBg)

	s.StatusErrorStyle = lipgloss.NewStyle().
		Foreground(palette.TextOnWarning).
		Background(s.colorWarning).
		Bold(true)

	s.HelpStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Background(s.colorBg)

	return s
}
