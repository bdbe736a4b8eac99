// Package render provides text layout helpers shared by the UI components.
package render

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

const ellipsis = "…"

// Sanitize drops control characters and invalid UTF-8 so that episode
// text read from tags cannot break the terminal.
func Sanitize(s string) string {
	clean := true
	for _, r := range s {
		if r == utf8.RuneError || (r != '\t' && unicode.IsControl(r)) || r == '\u00a0' {
			clean = false
			break
		}
	}
	if clean {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		i += size
		switch {
		case r == utf8.RuneError && size <= 1:
		case r == '\u00a0':
			b.WriteByte(' ')
		case r != '\t' && unicode.IsControl(r):
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Truncate shortens plain text to maxWidth cells, ending with an ellipsis
// when something was cut.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	return runewidth.Truncate(Sanitize(s), maxWidth, ellipsis)
}

// Pad fills plain text with spaces up to width cells.
func Pad(s string, width int) string {
	return runewidth.FillRight(s, width)
}

// Fit truncates then pads, so the result is exactly width cells wide.
func Fit(s string, width int) string {
	return Pad(Truncate(s, width), width)
}

// Row puts left and right on one line of width cells, separated by at
// least one space. The plain left text is truncated to make room for the
// right part, which may be styled.
func Row(left, right string, width int) string {
	rightWidth := lipgloss.Width(right)
	left = Truncate(left, width-rightWidth-1)
	gap := max(width-lipgloss.Width(left)-rightWidth, 1)
	return left + strings.Repeat(" ", gap) + right
}
