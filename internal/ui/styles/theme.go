// Package styles holds the light and dark palettes and the styles built on them.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/decoded/internal/theme"
)

// Palette defines the colors and pre-built styles for one theme.
type Palette struct {
	// Brand/accent colors
	Primary   lipgloss.Color // active episode, progress fill
	Secondary lipgloss.Color // title gradient end, badges

	// Text hierarchy (most to least prominent)
	FgBase   lipgloss.Color
	FgMuted  lipgloss.Color
	FgSubtle lipgloss.Color

	// Backgrounds
	BgBase   lipgloss.Color
	BgCursor lipgloss.Color

	Border lipgloss.Color

	// Status colors
	Success lipgloss.Color
	Error   lipgloss.Color
	Warning lipgloss.Color

	// Overlay colors used while switching into this palette.
	WashStart lipgloss.Color
	WashEnd   lipgloss.Color

	styles *Styles
}

// Styles contains pre-built lipgloss styles for common UI patterns.
type Styles struct {
	Base    lipgloss.Style
	Muted   lipgloss.Style
	Subtle  lipgloss.Style
	Title   lipgloss.Style
	Active  lipgloss.Style // selected episode
	Playing lipgloss.Style // selected episode while audible
	Cursor  lipgloss.Style
	Badge   lipgloss.Style
	Bar     lipgloss.Style // player bar frame
	Filled  lipgloss.Style // progress bar, elapsed part
	Empty   lipgloss.Style // progress bar, remaining part
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
}

var light = Palette{
	Primary:   lipgloss.Color("#3B82F6"),
	Secondary: lipgloss.Color("#2563EB"),

	FgBase:   lipgloss.Color("#1F2937"),
	FgMuted:  lipgloss.Color("#6B7280"),
	FgSubtle: lipgloss.Color("#9CA3AF"),

	BgBase:   lipgloss.Color("#F0F2F5"),
	BgCursor: lipgloss.Color("#DBEAFE"),

	Border: lipgloss.Color("#60A5FA"),

	Success: lipgloss.Color("#16A34A"),
	Error:   lipgloss.Color("#DC2626"),
	Warning: lipgloss.Color("#D97706"),

	WashStart: lipgloss.Color("#FFFFFF"),
	WashEnd:   lipgloss.Color("#F0F2F5"),
}

var dark = Palette{
	// Gold on near-black
	Primary:   lipgloss.Color("#FFD700"),
	Secondary: lipgloss.Color("#B8860B"),

	FgBase:   lipgloss.Color("#FFFDE4"),
	FgMuted:  lipgloss.Color("#D4AF37"),
	FgSubtle: lipgloss.Color("#7A6A3A"),

	BgBase:   lipgloss.Color("#0B0F19"),
	BgCursor: lipgloss.Color("#2A2415"),

	Border: lipgloss.Color("#B8860B"),

	Success: lipgloss.Color("#42b883"),
	Error:   lipgloss.Color("#ff5555"),
	Warning: lipgloss.Color("#f1a208"),

	WashStart: lipgloss.Color("#0B0F19"),
	WashEnd:   lipgloss.Color("#0B0F19"),
}

// current is only touched from the UI goroutine.
var current = &dark

// Apply switches the active palette. It is registered as a theme swap
// observer.
func Apply(t theme.Theme) {
	current = For(t)
}

// For returns the palette of t.
func For(t theme.Theme) *Palette {
	if t == theme.Light {
		return &light
	}
	return &dark
}

// T returns the active palette.
func T() *Palette {
	return current
}

// S returns the pre-built styles for this palette.
func (p *Palette) S() *Styles {
	if p.styles == nil {
		p.styles = p.buildStyles()
	}
	return p.styles
}

func (p *Palette) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(p.FgBase)

	return &Styles{
		Base:   base,
		Muted:  lipgloss.NewStyle().Foreground(p.FgMuted),
		Subtle: lipgloss.NewStyle().Foreground(p.FgSubtle),
		Title:  base.Bold(true),
		Active: lipgloss.NewStyle().
			Foreground(p.Primary).
			Bold(true),
		Playing: lipgloss.NewStyle().
			Foreground(p.Success).
			Bold(true),
		Cursor: lipgloss.NewStyle().
			Background(p.BgCursor).
			Foreground(p.FgBase),
		Badge: lipgloss.NewStyle().
			Foreground(p.BgBase).
			Background(p.Secondary).
			Padding(0, 1),
		Bar: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(p.Border),
		Filled:  lipgloss.NewStyle().Foreground(p.Primary),
		Empty:   lipgloss.NewStyle().Foreground(p.FgSubtle),
		Success: lipgloss.NewStyle().Foreground(p.Success),
		Error:   lipgloss.NewStyle().Foreground(p.Error),
		Warning: lipgloss.NewStyle().Foreground(p.Warning),
	}
}
