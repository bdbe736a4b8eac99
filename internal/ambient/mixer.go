// Package ambient keeps one looping background track per theme and decides
// which of them is heard.
package ambient

import (
	"errors"

	"github.com/llehouerou/decoded/internal/theme"
)

// Track is a background loop that can be made audible or silent.
type Track interface {
	SetAudible(audible bool)
	Close() error
}

// Silent is a Track with no sound, used when a loop is not configured.
type Silent struct{}

func (Silent) SetAudible(bool) {}
func (Silent) Close() error    { return nil }

// Mixer gates the light and dark tracks. Exactly the track of the current
// theme is audible unless muted; muted means neither is.
type Mixer struct {
	light Track
	dark  Track
	theme theme.Theme
	muted bool
}

// New creates a mixer and applies the initial audibility. Nil tracks are
// replaced by Silent.
func New(light, dark Track, t theme.Theme, muted bool) *Mixer {
	if light == nil {
		light = Silent{}
	}
	if dark == nil {
		dark = Silent{}
	}
	m := &Mixer{light: light, dark: dark, theme: t, muted: muted}
	m.apply()
	return m
}

// SetTheme follows a theme swap.
func (m *Mixer) SetTheme(t theme.Theme) {
	if t == m.theme {
		return
	}
	m.theme = t
	m.apply()
}

// ToggleMute flips the mute flag and returns the new value.
func (m *Mixer) ToggleMute() bool {
	m.muted = !m.muted
	m.apply()
	return m.muted
}

// Muted reports whether ambient sound is muted.
func (m *Mixer) Muted() bool { return m.muted }

// Theme returns the theme whose track the mixer follows.
func (m *Mixer) Theme() theme.Theme { return m.theme }

// Close releases both tracks.
func (m *Mixer) Close() error {
	return errors.Join(m.light.Close(), m.dark.Close())
}

func (m *Mixer) apply() {
	m.light.SetAudible(!m.muted && m.theme == theme.Light)
	m.dark.SetAudible(!m.muted && m.theme == theme.Dark)
}
