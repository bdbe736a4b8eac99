package transition

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/decoded/internal/theme"
	"github.com/llehouerou/decoded/internal/ui/styles"
)

// 4x4 ordered dither thresholds used for the fades.
var bayer = [4][4]float64{
	{0, 8, 2, 10},
	{12, 4, 14, 6},
	{3, 11, 1, 9},
	{15, 7, 13, 5},
}

// Share of the corner-to-corner distance covered by the light wash
// gradient, and how far past the far corner the reveal grows.
const (
	washSpread   = 0.7
	revealRadius = 1.5
	colorSteps   = 16
)

// View draws the overlay on top of base, a width x height screen.
// Terminal cells are about twice as tall as wide, so horizontal distances
// are halved to keep the reveal circular.
func (m Model) View(base string, width, height int) string {
	if !m.Active() || width <= 0 || height <= 0 {
		return base
	}

	lines := strings.Split(base, "\n")
	for len(lines) < height {
		lines = append(lines, "")
	}
	lines = lines[:height]

	c := m.cover(width, height)
	for y := range lines {
		lines[y] = c.composeLine(lines[y], y, width)
	}
	return strings.Join(lines, "\n")
}

// coverage decides cell by cell what the overlay hides.
type coverage struct {
	m      Model
	maxD   float64
	radius float64
	alpha  float64
	cache  map[lipgloss.Color]lipgloss.Style
}

func (m Model) cover(width, height int) *coverage {
	c := &coverage{
		m:     m,
		maxD:  math.Hypot(float64(width)/2, float64(height)),
		cache: make(map[lipgloss.Color]lipgloss.Style),
	}
	switch m.stage {
	case stageEntering:
		if m.dir == theme.ToLight {
			c.radius = revealRadius * easeOut(m.progress)
			c.alpha = -1
		} else {
			c.alpha = easeInOut(m.progress)
		}
	case stageCovered:
		c.alpha = 1
	case stageExiting:
		c.alpha = 1 - easeInOut(m.progress)
	}
	return c
}

func (c *coverage) distance(x, y int) float64 {
	if c.maxD == 0 {
		return 0
	}
	return math.Hypot(float64(x)/2, float64(y)) / c.maxD
}

// at reports whether cell (x, y) is hidden and with which color.
func (c *coverage) at(x, y int) (bool, lipgloss.Color) {
	if c.alpha < 0 {
		if c.distance(x, y) > c.radius {
			return false, ""
		}
	} else if (bayer[y%4][x%4]+0.5)/16 >= c.alpha {
		return false, ""
	}
	return true, c.color(x, y)
}

func (c *coverage) color(x, y int) lipgloss.Color {
	if c.m.dir != theme.ToLight {
		return styles.For(theme.Dark).WashStart
	}
	p := styles.For(theme.Light)
	d := min(c.distance(x, y)/washSpread, 1)
	d = math.Round(d*colorSteps) / colorSteps
	return styles.Blend(p.WashStart, p.WashEnd, d)
}

func (c *coverage) style(col lipgloss.Color) lipgloss.Style {
	s, ok := c.cache[col]
	if !ok {
		s = lipgloss.NewStyle().Background(col)
		c.cache[col] = s
	}
	return s
}

// composeLine replaces the hidden cells of line with overlay cells. Runs of
// visible cells are cut from the base with their styling intact.
func (c *coverage) composeLine(line string, y, width int) string {
	if w := ansi.StringWidth(line); w < width {
		line += strings.Repeat(" ", width-w)
	}

	var b strings.Builder
	x := 0
	for x < width {
		hidden, col := c.at(x, y)
		end := x + 1
		for end < width {
			h, cc := c.at(end, y)
			if h != hidden || cc != col {
				break
			}
			end++
		}
		if hidden {
			b.WriteString(c.style(col).Render(strings.Repeat(" ", end-x)))
		} else {
			b.WriteString(ansi.Cut(line, x, end))
			b.WriteString(ansi.ResetStyle)
		}
		x = end
	}
	return b.String()
}

// easeOut approximates the fast-start, soft-landing curve of the reveal.
func easeOut(t float64) float64 {
	return 1 - math.Pow(1-t, 4)
}

func easeInOut(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return 1 - math.Pow(-2*t+2, 2)/2
}
