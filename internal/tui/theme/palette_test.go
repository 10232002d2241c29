package theme

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func testTheme() *Theme {
	return &Theme{
		Bg:          "#101010",
		BgHighlight: "#202020",
		BgSelection: "#303030",
		Fg:          "#ffffff",
		FgMuted:     "#aaaaaa",
		Accent:      "#ff0000",
		Filled:      "#112233",
		Today:       "#445566",
		Hover:       "#777777",
		Warning:     "#888888",
	}
}

func TestNewPalette_SlotShades(t *testing.T) {
	base := testTheme()
	palette := NewPalette(base)

	if palette.FilledBg != lipgloss.Color(darkenColor(base.Filled)) {
		t.Fatalf("FilledBg = %q, want %q", palette.FilledBg, darkenColor(base.Filled))
	}
	if palette.TodayBg != lipgloss.Color(darkenColor(base.Today)) {
		t.Fatalf("TodayBg = %q, want %q", palette.TodayBg, darkenColor(base.Today))
	}
	if palette.HoverBg != lipgloss.Color(darkenColor(base.Hover)) {
		t.Fatalf("HoverBg = %q, want %q", palette.HoverBg, darkenColor(base.Hover))
	}
}

func TestNewPalette_PanelFallbacks(t *testing.T) {
	base := testTheme()
	palette := NewPalette(base)

	if palette.Panel.Bg != lipgloss.Color(base.BgHighlight) {
		t.Fatalf("Panel.Bg = %q, want %q", palette.Panel.Bg, base.BgHighlight)
	}
	if palette.Panel.Border.Dark != base.Accent {
		t.Fatalf("Panel.Border.Dark = %q, want %q", palette.Panel.Border.Dark, base.Accent)
	}
	if palette.Panel.Text.Dark != base.Fg {
		t.Fatalf("Panel.Text.Dark = %q, want %q", palette.Panel.Text.Dark, base.Fg)
	}
}

func TestNewPalette_NilUsesDefault(t *testing.T) {
	palette := NewPalette(nil)
	if palette.Bg == "" {
		t.Fatal("NewPalette(nil).Bg is empty, want default theme background")
	}
}

func TestNewPalette_LightThemeBlendsShades(t *testing.T) {
	base := &Theme{
		Bg:          "#f5f5f5",
		BgHighlight: "#eeeeee",
		BgSelection: "#e0e0e0",
		Fg:          "#222222",
		FgMuted:     "#555555",
		Accent:      "#2f6feb",
		Filled:      "#1d8a8a",
		Today:       "#2f8f2f",
		Hover:       "#c97b00",
		Warning:     "#c2410c",
	}

	palette := NewPalette(base)
	if relativeLuminance(string(palette.FilledBg)) <= relativeLuminance(base.Filled) {
		t.Fatalf("FilledBg luminance = %f, want greater than Filled", relativeLuminance(string(palette.FilledBg)))
	}
	if relativeLuminance(string(palette.TodayBg)) <= relativeLuminance(base.Today) {
		t.Fatalf("TodayBg luminance = %f, want greater than Today", relativeLuminance(string(palette.TodayBg)))
	}
}

func TestDarkenColor(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "#ffffff", want: "#7f7f7f"},
		{in: "#000000", want: "#282828"},
		{in: "not-a-color", want: "not-a-color"},
	}
	for _, tt := range tests {
		if got := darkenColor(tt.in); got != tt.want {
			t.Errorf("darkenColor(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestChooseTextColorPrefersContrast(t *testing.T) {
	bg := "#f0f0f0"
	lightText := "#ffffff"
	darkText := "#111111"

	if got := chooseTextColor(bg, lightText, darkText); got != darkText {
		t.Fatalf("chooseTextColor(%q, %q, %q) = %q, want %q", bg, lightText, darkText, got, darkText)
	}
}
