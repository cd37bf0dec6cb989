package termbg

import (
	"bytes"
	"errors"
	"time"
)

// fakeMode is an in-memory raw-mode switch.
type fakeMode struct {
	raw bool

	isRawErr   error
	enableErr  error
	disableErr error

	enables  int
	disables int
}

func (m *fakeMode) IsRaw() (bool, error) {
	if m.isRawErr != nil {
		return false, m.isRawErr
	}
	return m.raw, nil
}

func (m *fakeMode) EnableRaw() error {
	m.enables++
	if m.enableErr != nil {
		return m.enableErr
	}
	m.raw = true
	return nil
}

func (m *fakeMode) DisableRaw() error {
	m.disables++
	if m.disableErr != nil {
		return m.disableErr
	}
	m.raw = false
	return nil
}

// flushBuffer counts flushes on top of a bytes.Buffer.
type flushBuffer struct {
	bytes.Buffer
	flushes int
}

func (f *flushBuffer) Flush() error {
	f.flushes++
	return nil
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("broken pipe") }

type failSource struct{ err error }

func (s failSource) Poll(time.Duration) (bool, error) { return false, s.err }
func (s failSource) ReadEvent() (Event, error)        { return Event{}, s.err }

func envMap(kv map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := kv[k]
		return v, ok
	}
}

// reply builds the events a terminal sends for an OSC 11 answer: ESC ]
// arrives as Alt+], the body as plain characters, then the terminator.
func reply(body string, term ...Event) []Event {
	events := []Event{CharWith(']', ModAlt)}
	events = append(events, CharEvents("11;"+body)...)
	return append(events, term...)
}

var altST = CharWith('\\', ModAlt)
