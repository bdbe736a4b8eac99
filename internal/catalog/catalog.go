// Package catalog holds the ordered, read-only list of audio lessons.
package catalog

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrDuplicateID is returned when two episodes share an ID.
	ErrDuplicateID = errors.New("duplicate episode id")
	// ErrNoSource is returned when an episode has no audio locator.
	ErrNoSource = errors.New("episode has no audio source")
)

// Episode is one playable audio lesson.
type Episode struct {
	ID          string
	Chapter     string
	Title       string
	Description string
	AudioSrc    string  // opaque locator resolved by the media layer
	CoverArt    string  // opaque locator, display only
	Duration    float64 // hinted length in seconds; the loaded media is authoritative
}

// Label returns "Chapter · Title", or whichever part is set.
func (e Episode) Label() string {
	switch {
	case e.Chapter != "" && e.Title != "":
		return e.Chapter + " · " + e.Title
	case e.Title != "":
		return e.Title
	case e.Chapter != "":
		return e.Chapter
	default:
		return e.ID
	}
}

// Catalog is an immutable ordered sequence of episodes.
type Catalog struct {
	episodes []Episode
	byID     map[string]int
}

// New builds a catalog, rejecting duplicate IDs and episodes without a source.
func New(episodes ...Episode) (*Catalog, error) {
	c := &Catalog{
		episodes: make([]Episode, 0, len(episodes)),
		byID:     make(map[string]int, len(episodes)),
	}
	for i, ep := range episodes {
		ep.ID = strings.TrimSpace(ep.ID)
		if ep.ID == "" {
			ep.ID = fmt.Sprintf("episode-%d", i+1)
		}
		if strings.TrimSpace(ep.AudioSrc) == "" {
			return nil, fmt.Errorf("%s: %w", ep.ID, ErrNoSource)
		}
		if _, ok := c.byID[ep.ID]; ok {
			return nil, fmt.Errorf("%s: %w", ep.ID, ErrDuplicateID)
		}
		c.byID[ep.ID] = len(c.episodes)
		c.episodes = append(c.episodes, ep)
	}
	return c, nil
}

// Len returns the number of episodes.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.episodes)
}

// Valid reports whether i is an index into the catalog.
func (c *Catalog) Valid(i int) bool {
	return i >= 0 && i < c.Len()
}

// At returns the episode at index i.
func (c *Catalog) At(i int) (Episode, bool) {
	if !c.Valid(i) {
		return Episode{}, false
	}
	return c.episodes[i], true
}

// IndexOf returns the index of the episode with the given ID, or -1.
func (c *Catalog) IndexOf(id string) int {
	if c == nil {
		return -1
	}
	if i, ok := c.byID[id]; ok {
		return i
	}
	return -1
}

// Episodes returns a copy of all episodes in order.
func (c *Catalog) Episodes() []Episode {
	if c == nil {
		return nil
	}
	out := make([]Episode, len(c.episodes))
	copy(out, c.episodes)
	return out
}

// TotalDuration sums the hinted durations.
func (c *Catalog) TotalDuration() float64 {
	var total float64
	for _, ep := range c.Episodes() {
		if ep.Duration > 0 {
			total += ep.Duration
		}
	}
	return total
}
