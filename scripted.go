package termbg

import (
	"io"
	"sync"
	"time"
)

// ScriptedSource replays a fixed sequence of events, then behaves like a
// terminal that never answers: Poll waits out its timeout and ReadEvent
// blocks until Close. Callers bound the blocking case themselves.
type ScriptedSource struct {
	mu     sync.Mutex
	events []Event
	raw    []byte
	polls  int
	closed chan struct{}
	once   sync.Once
}

// NewScriptedSource returns a source that will deliver events in order.
func NewScriptedSource(events ...Event) *ScriptedSource {
	return &ScriptedSource{
		events: append([]Event(nil), events...),
		closed: make(chan struct{}),
	}
}

// WithRaw sets the bytes handed out by ReadRaw.
func (s *ScriptedSource) WithRaw(p []byte) *ScriptedSource {
	s.mu.Lock()
	s.raw = append([]byte(nil), p...)
	s.mu.Unlock()
	return s
}

// CharEvents returns one plain character event per rune of text.
func CharEvents(text string) []Event {
	events := make([]Event, 0, len(text))
	for _, r := range text {
		events = append(events, Char(r))
	}
	return events
}

func (s *ScriptedSource) Poll(timeout time.Duration) (bool, error) {
	s.mu.Lock()
	s.polls++
	ready := len(s.events) > 0
	s.mu.Unlock()
	if ready {
		return true, nil
	}
	s.wait(timeout)
	return false, nil
}

func (s *ScriptedSource) ReadEvent() (Event, error) {
	s.mu.Lock()
	if len(s.events) > 0 {
		ev := s.events[0]
		s.events = s.events[1:]
		s.mu.Unlock()
		return ev, nil
	}
	s.mu.Unlock()

	<-s.closed
	return Event{}, io.EOF
}

func (s *ScriptedSource) ReadRaw(p []byte, timeout time.Duration) (int, error) {
	s.mu.Lock()
	if len(s.raw) > 0 {
		n := copy(p, s.raw)
		s.raw = s.raw[n:]
		s.mu.Unlock()
		return n, nil
	}
	s.mu.Unlock()
	s.wait(timeout)
	return 0, nil
}

// Remaining reports how many scripted events have not been consumed.
func (s *ScriptedSource) Remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.events)
}

// Polls reports how many times Poll was called.
func (s *ScriptedSource) Polls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.polls
}

// Close releases any goroutine blocked in ReadEvent.
func (s *ScriptedSource) Close() error {
	s.once.Do(func() { close(s.closed) })
	return nil
}

func (s *ScriptedSource) wait(timeout time.Duration) {
	if timeout <= 0 {
		return
	}
	t := time.NewTimer(timeout)
	defer t.Stop()
	select {
	case <-t.C:
	case <-s.closed:
	}
}
