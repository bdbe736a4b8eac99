package media

// Mock is a test double for Binding. It records every call and only emits
// events when told to.
type Mock struct {
	src        string
	gen        uint64
	position   float64
	rate       float64
	playErr    error
	loadCalls  []string
	playCalls  int
	pauseCalls int
	seekCalls  []float64
	rateCalls  []float64
	events     chan Event
	closed     bool
}

// NewMock creates a new mock binding for testing.
func NewMock() *Mock {
	return &Mock{
		rate:   1,
		events: make(chan Event, 64),
	}
}

func (m *Mock) Load(src string) uint64 {
	m.loadCalls = append(m.loadCalls, src)
	m.src = src
	m.gen++
	m.position = 0
	return m.gen
}

func (m *Mock) Play() error {
	m.playCalls++
	if m.closed {
		return ErrClosed
	}
	if m.src == "" {
		return ErrNotLoaded
	}
	return m.playErr
}

func (m *Mock) Pause() { m.pauseCalls++ }

func (m *Mock) SetPosition(seconds float64) {
	m.seekCalls = append(m.seekCalls, seconds)
	m.position = seconds
}

func (m *Mock) SetRate(factor float64) {
	m.rateCalls = append(m.rateCalls, factor)
	m.rate = factor
}

func (m *Mock) Position() float64 { return m.position }

func (m *Mock) Source() string { return m.src }

func (m *Mock) Events() <-chan Event { return m.events }

func (m *Mock) Close() error {
	if !m.closed {
		m.closed = true
		close(m.events)
	}
	return nil
}

// Test helpers

// Event builds an event tagged with the current source and generation.
func (m *Mock) Event(kind EventKind, value float64) Event {
	return Event{Kind: kind, Source: m.src, Generation: m.gen, Value: value}
}

// Failure builds a Failed event for the current generation.
func (m *Mock) Failure(err error) Event {
	e := m.Event(EventFailed, 0)
	e.Err = err
	return e
}

// Emit queues an event on the Events channel (non-blocking).
func (m *Mock) Emit(e Event) {
	select {
	case m.events <- e:
	default:
	}
}

func (m *Mock) SetPlayError(err error) { m.playErr = err }

// SetSource changes the loaded locator without recording a Load call.
func (m *Mock) SetSource(src string) { m.src = src }

func (m *Mock) SetLivePosition(seconds float64) { m.position = seconds }

func (m *Mock) Generation() uint64 { return m.gen }

func (m *Mock) Rate() float64 { return m.rate }

func (m *Mock) LoadCalls() []string { return m.loadCalls }

func (m *Mock) PlayCalls() int { return m.playCalls }

func (m *Mock) PauseCalls() int { return m.pauseCalls }

func (m *Mock) SeekCalls() []float64 { return m.seekCalls }

func (m *Mock) RateCalls() []float64 { return m.rateCalls }

// Reset clears the recorded calls.
func (m *Mock) Reset() {
	m.loadCalls = nil
	m.playCalls = 0
	m.pauseCalls = 0
	m.seekCalls = nil
	m.rateCalls = nil
}

// Verify Mock implements Binding at compile time.
var _ Binding = (*Mock)(nil)
