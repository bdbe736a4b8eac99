package session

import (
	"log/slog"
	"math"
	"sync"
	"sync/atomic"

	"github.com/llehouerou/decoded/internal/catalog"
	"github.com/llehouerou/decoded/internal/media"
)

// Controller is the single authority for what plays now.
//
// Every method except Snapshot and Subscribe must be called from the same
// goroutine (the UI loop). Events from the binding reach the controller
// through HandleEvent on that goroutine, in emission order.
type Controller struct {
	catalog *catalog.Catalog
	binding media.Binding
	logger  *slog.Logger

	state State

	// Identity of the load whose events are current.
	gen    uint64
	src    string
	failed bool // the current load refused to play

	announced   string // ID of the last episode reported as started
	lastPlaying bool

	snapshot atomic.Pointer[State]

	mu   sync.Mutex
	subs []*Subscription
}

// New creates a controller with nothing selected at rate 1.
func New(cat *catalog.Catalog, b media.Binding, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	c := &Controller{
		catalog: cat,
		binding: b,
		logger:  logger,
		state: State{
			SelectedIndex: NoSelection,
			PlaybackRate:  Rates[0],
		},
	}
	c.publish()
	return c
}

// Catalog returns the episodes the controller selects from.
func (c *Controller) Catalog() *catalog.Catalog {
	return c.catalog
}

// State returns the current derived state.
func (c *Controller) State() State {
	return c.state
}

// Snapshot returns the last published state. Safe from any goroutine.
func (c *Controller) Snapshot() State {
	return *c.snapshot.Load()
}

// Subscribe returns a new subscription for controller events.
func (c *Controller) Subscribe() *Subscription {
	c.mu.Lock()
	defer c.mu.Unlock()
	sub := newSubscription()
	c.subs = append(c.subs, sub)
	return sub
}

// SelectEpisode makes index the current episode, loads its audio, applies
// the current rate and requests playback. IsPlaying only becomes true once
// the binding reports that playback started.
func (c *Controller) SelectEpisode(index int) {
	ep, ok := c.catalog.At(index)
	if !ok {
		c.logger.Debug("select episode out of range",
			slog.Int("index", index),
			slog.Int("len", c.catalog.Len()))
		return
	}
	defer c.publish()

	c.state.SelectedIndex = index
	c.state.Episode = &ep
	c.load(ep)
	c.play()
}

// TogglePlayPause pauses when playing. Otherwise it resumes the selected
// episode, reloading it if the binding drifted to another source, or selects
// the first episode when nothing is selected.
func (c *Controller) TogglePlayPause() {
	if !c.state.HasSelection() {
		if c.catalog.Len() > 0 {
			c.SelectEpisode(0)
		}
		return
	}
	if c.state.IsPlaying {
		c.pause()
		return
	}
	defer c.publish()

	ep := *c.state.Episode
	if c.failed || c.binding.Source() != ep.AudioSrc || c.src != ep.AudioSrc {
		c.load(ep)
	} else {
		c.binding.SetRate(c.state.PlaybackRate)
	}
	c.play()
}

// Next selects the following episode, wrapping to the first.
func (c *Controller) Next() {
	n := c.catalog.Len()
	if n == 0 {
		return
	}
	if !c.state.HasSelection() {
		c.SelectEpisode(0)
		return
	}
	c.SelectEpisode((c.state.SelectedIndex + 1) % n)
}

// Previous selects the preceding episode, wrapping to the last.
func (c *Controller) Previous() {
	n := c.catalog.Len()
	if n == 0 {
		return
	}
	if !c.state.HasSelection() {
		c.SelectEpisode(n - 1)
		return
	}
	c.SelectEpisode((c.state.SelectedIndex - 1 + n) % n)
}

// Seek jumps to seconds, clamped to [0, Duration]. It does nothing while the
// duration is unknown.
func (c *Controller) Seek(seconds float64) {
	if c.state.Duration <= 0 || !finite(seconds) {
		return
	}
	c.jump(seconds)
}

// Skip moves by delta seconds relative to the live position.
func (c *Controller) Skip(delta float64) {
	if c.state.Duration <= 0 || !finite(delta) {
		return
	}
	c.jump(media.Seconds(c.binding.Position()) + delta)
}

func (c *Controller) jump(target float64) {
	defer c.publish()
	t := max(0, min(target, c.state.Duration))
	c.binding.SetPosition(t)
	// Optimistic: scrubbing must not wait for the next progress event.
	c.state.CurrentTime = t
}

// CyclePlaybackRate advances to the next rate and applies it immediately.
func (c *Controller) CyclePlaybackRate() {
	defer c.publish()
	c.state.PlaybackRate = nextRate(c.state.PlaybackRate)
	c.binding.SetRate(c.state.PlaybackRate)
}

// HandleEvent applies one binding event. Events from a superseded load are
// dropped; it reports whether e was applied.
func (c *Controller) HandleEvent(e media.Event) bool {
	if c.gen == 0 || e.Generation != c.gen || e.Source != c.src {
		c.logger.Debug("dropping stale media event",
			slog.String("kind", e.Kind.String()),
			slog.String("src", e.Source),
			slog.Uint64("generation", e.Generation))
		return false
	}
	defer c.publish()

	switch e.Kind {
	case media.EventProgress:
		t := media.Seconds(e.Value)
		if c.state.Duration > 0 {
			t = min(t, c.state.Duration)
		}
		c.state.CurrentTime = t
	case media.EventDurationKnown:
		c.state.Duration = media.Seconds(e.Value)
	case media.EventStarted:
		if !c.state.HasSelection() {
			return true
		}
		c.state.IsPlaying = true
		c.state.Loading = false
		c.announce()
	case media.EventStopped:
		c.state.IsPlaying = false
		c.state.Loading = false
	case media.EventEnded:
		c.state.IsPlaying = false
		c.state.Loading = false
		c.Next()
	case media.EventFailed:
		c.fail(e.Err)
	}
	return true
}

// Close ends all subscriptions. The binding is owned by the caller.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, sub := range c.subs {
		sub.close()
	}
	c.subs = nil
}

// load points the binding at ep and resets the per-source state. The rate is
// reapplied because a source change resets it.
func (c *Controller) load(ep catalog.Episode) {
	c.gen = c.binding.Load(ep.AudioSrc)
	c.src = ep.AudioSrc
	c.failed = false
	c.state.IsPlaying = false
	c.state.CurrentTime = 0
	c.state.Duration = 0
	c.binding.SetRate(c.state.PlaybackRate)
}

// pause halts playback and drops any play request still waiting on a load.
func (c *Controller) pause() {
	c.state.Loading = false
	c.binding.Pause()
	c.publish()
}

func (c *Controller) play() {
	c.state.Loading = true
	if err := c.binding.Play(); err != nil {
		c.fail(err)
	}
}

func (c *Controller) fail(err error) {
	c.state.IsPlaying = false
	c.state.Loading = false
	c.failed = true
	if err == nil {
		return
	}

	e := ErrorEvent{Err: err}
	if c.state.Episode != nil {
		e.Episode = *c.state.Episode
	}
	c.logger.Warn("playback failed",
		slog.String("episode", e.Episode.ID),
		slog.Any("error", err))

	c.mu.Lock()
	defer c.mu.Unlock()
	for _, sub := range c.subs {
		sub.sendError(e)
	}
}

func (c *Controller) announce() {
	ep := *c.state.Episode
	if ep.ID == c.announced {
		return
	}
	c.announced = ep.ID
	c.logger.Info("episode started",
		slog.String("episode", ep.ID),
		slog.String("title", ep.Title))

	e := EpisodeChange{Index: c.state.SelectedIndex, Episode: ep}
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, sub := range c.subs {
		sub.sendEpisode(e)
	}
}

// publish stores a copy of the state for other goroutines and reports a
// flip of the playing flag.
func (c *Controller) publish() {
	s := c.state
	if s.Episode != nil {
		ep := *s.Episode
		s.Episode = &ep
	}
	c.snapshot.Store(&s)

	if s.IsPlaying == c.lastPlaying {
		return
	}
	c.lastPlaying = s.IsPlaying
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, sub := range c.subs {
		sub.sendState(StateChange{Playing: s.IsPlaying, State: s})
	}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
