// Package headerbar renders the title line at the top of the screen.
package headerbar

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/decoded/internal/theme"
	"github.com/llehouerou/decoded/internal/ui/render"
	"github.com/llehouerou/decoded/internal/ui/styles"
)

// Height is the fixed height of the header bar.
const Height = 2

const (
	title    = "The Ethereal Library"
	subtitle = "An immersive audio-first learning experience"
)

// Theme indicators shown at the right edge.
var indicators = map[theme.Theme]string{
	theme.Light: "☀ light",
	theme.Dark:  "☾ dark",
}

// Render returns the header for the given width: the title with the theme
// indicator on the first line and the subtitle below.
func Render(t theme.Theme, transitioning bool, width int) string {
	if width < 20 {
		return ""
	}
	p := styles.T()
	st := p.S()

	indicator := indicators[t]
	if transitioning {
		indicator = "…"
	}
	right := st.Muted.Render(indicator)

	heading := p.Heading(title)
	gap := max(width-lipgloss.Width(heading)-lipgloss.Width(right), 1)
	top := heading + render.Pad("", gap) + right
	if lipgloss.Width(top) > width {
		top = st.Title.Render(render.Row(title, "", width))
	}

	return top + "\n" + st.Subtle.Render(render.Fit(subtitle, width))
}
