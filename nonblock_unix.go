//go:build unix

package termbg

import (
	"errors"
	"io"
	"os"
	"sync"
	"syscall"
	"time"

	"github.com/muesli/cancelreader"
	"golang.org/x/sys/unix"
)

// NonblockingSource is an EventSource for programs that already run their
// own event loop. It switches the descriptor to non-blocking mode and waits
// for readiness through epoll/kqueue/select via cancelreader, so a pending
// read can always be abandoned. Close restores blocking mode; the file
// itself is never closed because its lifetime belongs to the process.
type NonblockingSource struct {
	fd     int
	cr     cancelreader.CancelReader
	chunks chan chunk
	done   chan struct{}
	once   sync.Once

	dec keyDecoder
	raw []byte
}

type chunk struct {
	p   []byte
	err error
}

// NewNonblockingSource wraps f, normally os.Stdin.
func NewNonblockingSource(f *os.File) (*NonblockingSource, error) {
	// cancelreader calls f.Fd(), which forces blocking mode, so it has to be
	// created before the descriptor is switched.
	cr, err := cancelreader.NewReader(f)
	if err != nil {
		return nil, ioError(err)
	}
	fd := int(fdOf(f))
	if err := unix.SetNonblock(fd, true); err != nil {
		_ = cr.Close()
		return nil, ioError(err)
	}
	s := &NonblockingSource{
		fd:     fd,
		cr:     cr,
		chunks: make(chan chunk),
		done:   make(chan struct{}),
	}
	go s.pump()
	return s, nil
}

func (s *NonblockingSource) pump() {
	defer close(s.chunks)
	buf := make([]byte, 256)
	for {
		n, err := s.cr.Read(buf)
		if n > 0 {
			p := make([]byte, n)
			copy(p, buf[:n])
			if !s.send(chunk{p: p}) {
				return
			}
		}
		if err == nil {
			continue
		}
		if errors.Is(err, syscall.EAGAIN) || errors.Is(err, syscall.EINTR) {
			continue
		}
		if !errors.Is(err, cancelreader.ErrCanceled) {
			s.send(chunk{err: err})
		}
		return
	}
}

func (s *NonblockingSource) send(c chunk) bool {
	select {
	case s.chunks <- c:
		return true
	case <-s.done:
		return false
	}
}

// receive waits at most timeout for the next chunk from the reader goroutine.
// Any (*os.File).Fd call elsewhere in the process clears O_NONBLOCK, so the
// flag is set again first.
func (s *NonblockingSource) receive(timeout time.Duration) ([]byte, bool, error) {
	select {
	case <-s.done:
		return nil, false, io.EOF
	default:
	}
	if err := unix.SetNonblock(s.fd, true); err != nil {
		return nil, false, err
	}
	t := time.NewTimer(max(timeout, 0))
	defer t.Stop()
	select {
	case c, ok := <-s.chunks:
		if !ok {
			return nil, false, io.EOF
		}
		if c.err != nil {
			return nil, false, c.err
		}
		return c.p, true, nil
	case <-t.C:
		return nil, false, nil
	}
}

func (s *NonblockingSource) Poll(timeout time.Duration) (bool, error) {
	if s.dec.buffered() {
		return true, nil
	}
	deadline := time.Now().Add(timeout)
	for {
		p, ok, err := s.receive(time.Until(deadline))
		if err != nil {
			return false, err
		}
		if !ok {
			s.dec.idle()
			return s.dec.buffered(), nil
		}
		s.dec.feed(p)
		if s.dec.buffered() {
			return true, nil
		}
	}
}

func (s *NonblockingSource) ReadEvent() (Event, error) {
	for {
		if ev, ok := s.dec.next(); ok {
			return ev, nil
		}
		if _, err := s.Poll(DefaultPollInterval); err != nil {
			return Event{}, err
		}
	}
}

func (s *NonblockingSource) ReadRaw(p []byte, timeout time.Duration) (int, error) {
	if len(s.raw) == 0 {
		b, ok, err := s.receive(timeout)
		if err != nil || !ok {
			return 0, err
		}
		s.raw = b
	}
	n := copy(p, s.raw)
	s.raw = s.raw[n:]
	return n, nil
}

// Close stops the reader goroutine and puts the descriptor back in blocking
// mode.
func (s *NonblockingSource) Close() error {
	var err error
	s.once.Do(func() {
		s.cr.Cancel()
		close(s.done)
		for range s.chunks {
		}
		err = s.cr.Close()
		if e := unix.SetNonblock(s.fd, false); e != nil && err == nil {
			err = e
		}
	})
	return err
}
