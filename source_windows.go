//go:build windows

package termbg

import (
	"os"
	"time"
	"unicode/utf8"

	"github.com/erikgeiser/coninput"
	"golang.org/x/sys/windows"
)

// liveSource waits on the console input handle and reads key records, which
// are re-encoded as the byte stream a VT terminal would have sent.
type liveSource struct {
	h   windows.Handle
	dec keyDecoder
	raw []byte
}

func newLiveSource(f *os.File) *liveSource {
	return &liveSource{h: windows.Handle(fdOf(f))}
}

func (s *liveSource) Poll(timeout time.Duration) (bool, error) {
	if s.dec.buffered() {
		return true, nil
	}
	deadline := time.Now().Add(timeout)
	for {
		remaining := time.Until(deadline)
		ready, err := s.wait(remaining)
		if err != nil {
			return false, err
		}
		if !ready {
			s.dec.idle()
			return s.dec.buffered(), nil
		}
		p, err := s.readRecords()
		if err != nil {
			return false, err
		}
		s.dec.feed(p)
		if s.dec.buffered() {
			return true, nil
		}
		if remaining <= 0 {
			s.dec.idle()
			return s.dec.buffered(), nil
		}
	}
}

func (s *liveSource) ReadEvent() (Event, error) {
	for {
		if ev, ok := s.dec.next(); ok {
			return ev, nil
		}
		if _, err := s.Poll(DefaultPollInterval); err != nil {
			return Event{}, err
		}
	}
}

func (s *liveSource) ReadRaw(p []byte, timeout time.Duration) (int, error) {
	if len(s.raw) == 0 {
		ready, err := s.wait(timeout)
		if err != nil || !ready {
			return 0, err
		}
		b, err := s.readRecords()
		if err != nil {
			return 0, err
		}
		s.raw = append(s.raw, b...)
	}
	n := copy(p, s.raw)
	s.raw = s.raw[n:]
	return n, nil
}

func (s *liveSource) wait(timeout time.Duration) (bool, error) {
	ms := uint32(0)
	if timeout > 0 {
		ms = uint32(timeout / time.Millisecond)
		if ms == 0 {
			ms = 1
		}
	}
	ev, err := windows.WaitForSingleObject(s.h, ms)
	if err != nil {
		return false, err
	}
	return ev == windows.WAIT_OBJECT_0, nil
}

// readRecords drains the pending console records. Only key-down records with
// a character contribute bytes; Alt is re-encoded as an ESC prefix.
func (s *liveSource) readRecords() ([]byte, error) {
	records, err := coninput.ReadNConsoleInputs(s.h, 16)
	if err != nil {
		return nil, err
	}
	var out []byte
	for _, rec := range records {
		key, ok := rec.Unwrap().(coninput.KeyEventRecord)
		if !ok || !key.KeyDown || key.Char == 0 {
			continue
		}
		if key.ControlKeyState.Contains(coninput.LEFT_ALT_PRESSED) ||
			key.ControlKeyState.Contains(coninput.RIGHT_ALT_PRESSED) {
			out = append(out, 0x1b)
		}
		out = utf8.AppendRune(out, key.Char)
	}
	return out, nil
}
