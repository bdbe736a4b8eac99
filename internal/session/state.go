// Package session owns what plays now: one selected episode, the transport
// state around it, and the reaction to events from the media binding.
package session

import "github.com/llehouerou/decoded/internal/catalog"

// Rates is the ordered set CyclePlaybackRate walks through.
var Rates = []float64{1, 1.25, 1.5, 2, 0.75}

// NoSelection is the SelectedIndex when no episode has been chosen.
const NoSelection = -1

// State is the derived playback state handed to renderers.
type State struct {
	SelectedIndex int
	Episode       *catalog.Episode // nil when SelectedIndex is NoSelection
	IsPlaying     bool
	CurrentTime   float64
	Duration      float64 // 0 while unknown
	PlaybackRate  float64
	Loading       bool // a play request is waiting for the binding
}

// HasSelection reports whether an episode is selected.
func (s State) HasSelection() bool {
	return s.SelectedIndex != NoSelection && s.Episode != nil
}

// Progress returns CurrentTime as a fraction of Duration in [0, 1].
func (s State) Progress() float64 {
	if s.Duration <= 0 {
		return 0
	}
	return max(0, min(s.CurrentTime/s.Duration, 1))
}

func nextRate(current float64) float64 {
	for i, r := range Rates {
		if r == current {
			return Rates[(i+1)%len(Rates)]
		}
	}
	return Rates[0]
}
