package styles

import (
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// Heading renders text in bold with the palette's accent gradient.
func (p *Palette) Heading(text string) string {
	return ApplyBoldGradient(text, p.Primary, p.Secondary)
}

// ApplyBoldGradient renders bold text with a horizontal color gradient.
func ApplyBoldGradient(text string, from, to lipgloss.Color) string {
	if text == "" {
		return ""
	}

	// Grapheme clusters, so combined characters keep one color
	var clusters []string
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		clusters = append(clusters, gr.Str())
	}

	if len(clusters) == 1 {
		return lipgloss.NewStyle().Foreground(from).Bold(true).Render(text)
	}

	var b strings.Builder
	last := float64(len(clusters) - 1)
	for i, cluster := range clusters {
		c := Blend(from, to, float64(i)/last)
		b.WriteString(lipgloss.NewStyle().Foreground(c).Bold(true).Render(cluster))
	}
	return b.String()
}

// Blend mixes from and to in HCL space; t=0 is from, t=1 is to.
func Blend(from, to lipgloss.Color, t float64) lipgloss.Color {
	t = max(0, min(t, 1))
	c1, _ := colorful.MakeColor(lipglossToColor(from))
	c2, _ := colorful.MakeColor(lipglossToColor(to))
	return lipgloss.Color(c1.BlendHcl(c2, t).Clamped().Hex())
}

// lipglossToColor converts a hex lipgloss.Color to a color.Color.
func lipglossToColor(c lipgloss.Color) color.Color {
	hex := string(c)
	if len(hex) == 7 && hex[0] == '#' {
		col, err := colorful.Hex(hex)
		if err == nil {
			return col
		}
	}
	// ANSI colors have no RGB value here
	return color.RGBA{R: 128, G: 128, B: 128, A: 255}
}
