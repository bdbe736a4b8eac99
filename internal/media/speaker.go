package media

import (
	"context"
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"
)

const progressInterval = 250 * time.Millisecond

// Verify Speaker implements Binding at compile time.
var _ Binding = (*Speaker)(nil)

// Speaker plays one source at a time through the system audio device.
//
// Lock order is s.mu before the speaker lock. Callbacks running on the
// speaker goroutine never take s.mu synchronously.
type Speaker struct {
	mu       sync.Mutex
	resolver *Resolver
	logger   *slog.Logger
	events   *eventQueue

	gen      uint64
	src      string
	cancel   context.CancelFunc // aborts the in-flight load
	cur      *track
	rate     float64
	level    float64
	wantPlay bool
	playing  bool
	stopTick chan struct{}
	closed   bool
}

// track is a decoded source wired into the speaker graph.
type track struct {
	gen       uint64
	stream    beep.StreamSeekCloser
	format    beep.Format
	ctrl      *beep.Ctrl
	resampler *beep.Resampler
	volume    *effects.Volume
	queued    bool // handed to speaker.Play
	discarded bool
}

// NewSpeaker creates a binding that resolves sources through r.
func NewSpeaker(r *Resolver, logger *slog.Logger) *Speaker {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Speaker{
		resolver: r,
		logger:   logger,
		events:   newEventQueue(),
		rate:     1,
		level:    1,
	}
}

// Events returns the ordered event feed.
func (s *Speaker) Events() <-chan Event {
	return s.events.events()
}

// Source returns the locator currently loaded or loading.
func (s *Speaker) Source() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.src
}

// Load stops whatever is playing and starts decoding src in the background.
func (s *Speaker) Load(src string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return s.gen
	}

	// The stop belongs to the old load, so it goes out under its identity.
	if s.playing {
		s.emitLocked(EventStopped, 0, nil)
	}
	s.discardLocked()
	s.gen++
	s.src = src
	s.wantPlay = false

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	go s.decode(ctx, s.gen, src)
	return s.gen
}

func (s *Speaker) decode(ctx context.Context, gen uint64, src string) {
	rc, name, err := s.resolver.Open(ctx, src)
	var stream beep.StreamSeekCloser
	var format beep.Format
	if err == nil {
		stream, format, err = Decode(rc, name)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.gen || s.closed {
		if stream != nil {
			stream.Close()
		}
		return
	}
	s.cancel = nil
	if err != nil {
		s.logger.Warn("load audio", slog.String("src", src), slog.Any("error", err))
		s.wantPlay = false
		s.emitLocked(EventFailed, 0, err)
		return
	}

	resampler := beep.ResampleRatio(4, resampleRatio(format, s.rate), stream)
	ctrl := &beep.Ctrl{Streamer: resampler}
	t := &track{
		gen:       gen,
		stream:    stream,
		format:    format,
		ctrl:      ctrl,
		resampler: resampler,
		volume:    &effects.Volume{Streamer: ctrl, Base: 2, Volume: LevelToVolume(s.level)},
	}
	s.cur = t
	s.emitLocked(EventDurationKnown, durationSeconds(stream, format), nil)

	if s.wantPlay {
		if err := s.startLocked(); err != nil {
			s.wantPlay = false
			s.emitLocked(EventFailed, 0, err)
		}
	}
}

// Play starts or resumes playback. If the source is still loading, playback
// starts as soon as decoding finishes.
func (s *Speaker) Play() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	if s.src == "" {
		return ErrNotLoaded
	}
	if s.cur == nil {
		if s.cancel == nil {
			// The last load failed; nothing will arrive to play.
			s.wantPlay = false
			return ErrNotLoaded
		}
		s.wantPlay = true
		return nil
	}
	if err := EnsureSpeaker(); err != nil {
		return err
	}
	s.wantPlay = true
	return s.startLocked()
}

func (s *Speaker) startLocked() error {
	if s.playing {
		return nil
	}
	if err := EnsureSpeaker(); err != nil {
		return err
	}
	t := s.cur
	if !t.queued {
		t.ctrl.Paused = false
		speaker.Play(beep.Seq(t.volume, beep.Callback(func() {
			go s.finished(t)
		})))
		t.queued = true
	} else {
		speaker.Lock()
		t.ctrl.Paused = false
		speaker.Unlock()
	}
	s.playing = true
	s.emitLocked(EventStarted, 0, nil)
	s.startTickerLocked()
	return nil
}

// Pause halts playback, keeping the position.
func (s *Speaker) Pause() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.wantPlay = false
	if !s.playing || s.cur == nil {
		return
	}
	speaker.Lock()
	s.cur.ctrl.Paused = true
	speaker.Unlock()
	s.playing = false
	s.stopTickerLocked()
	s.emitLocked(EventStopped, 0, nil)
}

// SetPosition jumps to seconds, clamped to the stream.
func (s *Speaker) SetPosition(seconds float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cur == nil {
		return
	}
	t := s.cur
	n := t.format.SampleRate.N(time.Duration(Seconds(seconds) * float64(time.Second)))
	speaker.Lock()
	n = min(n, max(t.stream.Len()-1, 0))
	if err := t.stream.Seek(n); err != nil {
		s.logger.Debug("seek", slog.Any("error", err))
	}
	speaker.Unlock()
}

// SetRate changes the playback speed factor.
func (s *Speaker) SetRate(factor float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if factor <= 0 || math.IsNaN(factor) || math.IsInf(factor, 0) {
		return
	}
	s.rate = factor
	if s.cur == nil {
		return
	}
	speaker.Lock()
	s.cur.resampler.SetRatio(resampleRatio(s.cur.format, factor))
	speaker.Unlock()
}

// SetVolume sets the lesson volume level (0.0 to 1.0).
func (s *Speaker) SetVolume(level float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.level = max(0, min(level, 1))
	if s.cur == nil {
		return
	}
	speaker.Lock()
	s.cur.volume.Volume = LevelToVolume(s.level)
	speaker.Unlock()
}

// Position returns the live position in seconds.
func (s *Speaker) Position() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.positionLocked()
}

func (s *Speaker) positionLocked() float64 {
	if s.cur == nil {
		return 0
	}
	speaker.Lock()
	n := s.cur.stream.Position()
	speaker.Unlock()
	return Seconds(s.cur.format.SampleRate.D(n).Seconds())
}

// finished runs after the speaker drained a track.
func (s *Speaker) finished(t *track) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t.discarded || t != s.cur {
		return
	}
	s.playing = false
	s.wantPlay = false
	s.stopTickerLocked()

	// Rewind so a later Play restarts the lesson.
	t.queued = false
	speaker.Lock()
	_ = t.stream.Seek(0)
	speaker.Unlock()

	s.emitLocked(EventEnded, 0, nil)
}

// Close stops playback and releases the current stream.
func (s *Speaker) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	s.discardLocked()
	s.gen++
	s.mu.Unlock()

	s.events.close()
	return nil
}

func (s *Speaker) discardLocked() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.stopTickerLocked()
	s.playing = false
	if s.cur == nil {
		return
	}
	t := s.cur
	t.discarded = true
	speaker.Lock()
	// A Ctrl without a streamer drains immediately and leaves the mixer.
	t.ctrl.Streamer = nil
	speaker.Unlock()
	t.stream.Close()
	s.cur = nil
}

func (s *Speaker) startTickerLocked() {
	s.stopTickerLocked()
	stop := make(chan struct{})
	s.stopTick = stop
	gen := s.gen
	go func() {
		ticker := time.NewTicker(progressInterval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				s.tick(gen)
			}
		}
	}()
}

func (s *Speaker) stopTickerLocked() {
	if s.stopTick != nil {
		close(s.stopTick)
		s.stopTick = nil
	}
}

func (s *Speaker) tick(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen || !s.playing {
		return
	}
	s.emitLocked(EventProgress, s.positionLocked(), nil)
}

func (s *Speaker) emitLocked(kind EventKind, value float64, err error) {
	s.events.push(Event{
		Kind:       kind,
		Source:     s.src,
		Generation: s.gen,
		Value:      value,
		Err:        err,
	})
}

// LevelToVolume maps a 0..1 level onto beep's base-2 volume scale.
func LevelToVolume(level float64) float64 {
	if level <= 0 {
		return -10
	}
	if level >= 1 {
		return 0
	}
	return math.Log2(level)
}
