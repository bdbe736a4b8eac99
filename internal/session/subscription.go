package session

import "github.com/llehouerou/decoded/internal/catalog"

const eventBufferSize = 16

// EpisodeChange is sent when a different episode actually starts playing.
type EpisodeChange struct {
	Index   int
	Episode catalog.Episode
}

// StateChange is sent when the playing flag flips.
type StateChange struct {
	Playing bool
	State   State
}

// ErrorEvent is sent when a play request fails.
type ErrorEvent struct {
	Episode catalog.Episode
	Err     error
}

// Subscription provides event channels for a subscriber.
type Subscription struct {
	EpisodeChanged <-chan EpisodeChange
	StateChanged   <-chan StateChange
	Errors         <-chan ErrorEvent
	Done           <-chan struct{}

	episodeCh chan EpisodeChange
	stateCh   chan StateChange
	errorCh   chan ErrorEvent
	doneCh    chan struct{}
}

func newSubscription() *Subscription {
	s := &Subscription{
		episodeCh: make(chan EpisodeChange, eventBufferSize),
		stateCh:   make(chan StateChange, eventBufferSize),
		errorCh:   make(chan ErrorEvent, eventBufferSize),
		doneCh:    make(chan struct{}),
	}
	s.EpisodeChanged = s.episodeCh
	s.StateChanged = s.stateCh
	s.Errors = s.errorCh
	s.Done = s.doneCh
	return s
}

func (s *Subscription) close() {
	close(s.doneCh)
}

func (s *Subscription) sendEpisode(e EpisodeChange) {
	select {
	case s.episodeCh <- e:
	default:
		// Drop if buffer full
	}
}

func (s *Subscription) sendState(e StateChange) {
	select {
	case s.stateCh <- e:
	default:
	}
}

func (s *Subscription) sendError(e ErrorEvent) {
	select {
	case s.errorCh <- e:
	default:
	}
}
