package media

import "sync"

// eventQueue delivers events in emission order without ever blocking the
// producer. Consecutive progress events of the same generation collapse into
// the latest one; no other event is dropped.
type eventQueue struct {
	mu        sync.Mutex
	pending   []Event
	signal    chan struct{}
	out       chan Event
	done      chan struct{}
	closeOnce sync.Once
}

func newEventQueue() *eventQueue {
	q := &eventQueue{
		signal: make(chan struct{}, 1),
		out:    make(chan Event),
		done:   make(chan struct{}),
	}
	go q.pump()
	return q
}

func (q *eventQueue) push(e Event) {
	q.mu.Lock()
	n := len(q.pending)
	if n > 0 && e.Kind == EventProgress &&
		q.pending[n-1].Kind == EventProgress &&
		q.pending[n-1].Generation == e.Generation {
		q.pending[n-1] = e
	} else {
		q.pending = append(q.pending, e)
	}
	q.mu.Unlock()

	select {
	case q.signal <- struct{}{}:
	default:
	}
}

func (q *eventQueue) pump() {
	defer close(q.out)
	for {
		q.mu.Lock()
		if len(q.pending) == 0 {
			q.mu.Unlock()
			select {
			case <-q.signal:
				continue
			case <-q.done:
				return
			}
		}
		e := q.pending[0]
		q.pending = q.pending[1:]
		q.mu.Unlock()

		select {
		case q.out <- e:
		case <-q.done:
			return
		}
	}
}

func (q *eventQueue) events() <-chan Event {
	return q.out
}

func (q *eventQueue) close() {
	q.closeOnce.Do(func() { close(q.done) })
}
