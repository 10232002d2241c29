package theme

import (
	"math"

	"github.com/charmbracelet/lipgloss"
)

// Palette holds precomputed colors derived from a Theme.
type Palette struct {
	Bg          lipgloss.Color
	BgHighlight lipgloss.Color
	BgSelection lipgloss.Color
	Fg          lipgloss.Color
	FgMuted     lipgloss.Color
	Accent      lipgloss.Color
	Filled      lipgloss.Color
	Today       lipgloss.Color
	Hover       lipgloss.Color
	Warning     lipgloss.Color

	// Slot backgrounds
	FilledBg lipgloss.Color
	TodayBg  lipgloss.Color
	HoverBg  lipgloss.Color

	TextOnAccent  lipgloss.Color
	TextOnWarning lipgloss.Color
	TextOnFilled  lipgloss.Color
	TextOnToday   lipgloss.Color
	TextOnHover   lipgloss.Color

	Panel PanelColors
}

// PanelColors holds the side panel colors.
type PanelColors struct {
	Bg     lipgloss.Color
	Border lipgloss.AdaptiveColor
	Text   lipgloss.AdaptiveColor
	Muted  lipgloss.AdaptiveColor
}

// NewPalette derives a Palette from the provided Theme.
func NewPalette(t *Theme) *Palette {
	if t == nil {
		t, _ = Load(DefaultName)
	}

	isLight := isLightTheme(t.Bg)
	filledBgHex := slotBg(t.Filled, t.Bg, isLight)
	todayBgHex := slotBg(t.Today, t.Bg, isLight)
	hoverBgHex := slotBg(t.Hover, t.Bg, isLight)

	return &Palette{
		Bg:          lipgloss.Color(t.Bg),
		BgHighlight: lipgloss.Color(t.BgHighlight),
		BgSelection: lipgloss.Color(t.BgSelection),
		Fg:          lipgloss.Color(t.Fg),
		FgMuted:     lipgloss.Color(t.FgMuted),
		Accent:      lipgloss.Color(t.Accent),
		Filled:      lipgloss.Color(t.Filled),
		Today:       lipgloss.Color(t.Today),
		Hover:       lipgloss.Color(t.Hover),
		Warning:     lipgloss.Color(t.Warning),

		FilledBg: lipgloss.Color(filledBgHex),
		TodayBg:  lipgloss.Color(todayBgHex),
		HoverBg:  lipgloss.Color(hoverBgHex),

		TextOnAccent:  lipgloss.Color(chooseTextColor(t.Accent, t.Bg, t.Fg)),
		TextOnWarning: lipgloss.Color(chooseTextColor(t.Warning, t.Bg, t.Fg)),
		TextOnFilled:  lipgloss.Color(chooseTextColor(filledBgHex, t.Bg, t.Fg)),
		TextOnToday:   lipgloss.Color(chooseTextColor(todayBgHex, t.Bg, t.Fg)),
		TextOnHover:   lipgloss.Color(chooseTextColor(hoverBgHex, t.Bg, t.Fg)),

		Panel: PanelColors{
			Bg:     lipgloss.Color(coalesce(t.PanelBg, t.BgHighlight, t.Bg)),
			Border: adaptiveColor(coalesce(t.PanelBorder, t.Accent)),
			Text:   adaptiveColor(coalesce(t.PanelText, t.Fg)),
			Muted:  adaptiveColor(t.FgMuted),
		},
	}
}

func isLightTheme(bg string) bool {
	return relativeLuminance(bg) > 0.55
}

// slotBg tones an accent down to a slot background. Light themes blend it
// towards the page background, dark themes darken it.
func slotBg(accent, bg string, isLight bool) string {
	if isLight {
		return blendColors(accent, bg, 0.75)
	}
	return darkenColor(accent)
}

// darkenColor creates a darker version of a hex color for backgrounds,
// with a minimum floor so it stays visible on dark themes.
func darkenColor(hex string) string {
	r, g, b, ok := splitHex(hex)
	if !ok {
		return hex
	}

	const factor = 0.50
	const minBrightness = 40
	r = max(int(float64(r)*factor), minBrightness)
	g = max(int(float64(g)*factor), minBrightness)
	b = max(int(float64(b)*factor), minBrightness)

	return formatHexColor(r, g, b)
}

func splitHex(hex string) (r, g, b int, ok bool) {
	if len(hex) != 7 || hex[0] != '#' {
		return 0, 0, 0, false
	}
	parseHex(hex[1:3], &r)
	parseHex(hex[3:5], &g)
	parseHex(hex[5:7], &b)
	return r, g, b, true
}

// parseHex parses a 2-character hex string into an integer.
func parseHex(s string, v *int) {
	var val int
	for i := 0; i < len(s); i++ {
		val *= 16
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			val += int(c - '0')
		case c >= 'a' && c <= 'f':
			val += int(c - 'a' + 10)
		case c >= 'A' && c <= 'F':
			val += int(c - 'A' + 10)
		}
	}
	*v = val
}

// formatHexColor formats RGB values as a hex color string.
func formatHexColor(r, g, b int) string {
	const hex = "0123456789abcdef"
	result := make([]byte, 7)
	result[0] = '#'
	result[1] = hex[r>>4]
	result[2] = hex[r&0xf]
	result[3] = hex[g>>4]
	result[4] = hex[g&0xf]
	result[5] = hex[b>>4]
	result[6] = hex[b&0xf]
	return string(result)
}

func adaptiveColor(hex string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{
		Dark:  hex,
		Light: hex,
	}
}

func chooseTextColor(bg, lightText, darkText string) string {
	lightContrast := contrastRatio(bg, lightText)
	darkContrast := contrastRatio(bg, darkText)
	if lightContrast >= darkContrast {
		return lightText
	}
	return darkText
}

func contrastRatio(a, b string) float64 {
	l1 := relativeLuminance(a)
	l2 := relativeLuminance(b)
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

func relativeLuminance(hex string) float64 {
	r, g, b, ok := splitHex(hex)
	if !ok {
		return 0
	}
	return 0.2126*srgbToLinear(r) + 0.7152*srgbToLinear(g) + 0.0722*srgbToLinear(b)
}

func srgbToLinear(c int) float64 {
	v := float64(c) / 255.0
	if v <= 0.04045 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

func blendColors(a, b string, ratio float64) string {
	ar, ag, ab, okA := splitHex(a)
	br, bg, bb, okB := splitHex(b)
	if !okA || !okB {
		return a
	}
	ratio = min(max(ratio, 0), 1)

	r := int(float64(ar)*(1-ratio) + float64(br)*ratio)
	g := int(float64(ag)*(1-ratio) + float64(bg)*ratio)
	bv := int(float64(ab)*(1-ratio) + float64(bb)*ratio)

	return formatHexColor(r, g, bv)
}
