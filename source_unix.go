//go:build unix

package termbg

import (
	"io"
	"os"
	"time"

	"golang.org/x/sys/unix"
)

// liveSource reads the terminal's input descriptor with poll(2) and decodes
// the bytes into key events.
type liveSource struct {
	fd  int
	dec keyDecoder
	buf [256]byte
}

func newLiveSource(f *os.File) *liveSource {
	return &liveSource{fd: int(fdOf(f))}
}

func (s *liveSource) Poll(timeout time.Duration) (bool, error) {
	if s.dec.buffered() {
		return true, nil
	}
	deadline := time.Now().Add(timeout)
	for {
		remaining := time.Until(deadline)
		ready, err := waitReadable(s.fd, remaining)
		if err != nil {
			return false, err
		}
		if !ready {
			s.dec.idle()
			return s.dec.buffered(), nil
		}

		n, err := unix.Read(s.fd, s.buf[:])
		if err != nil {
			if err == unix.EINTR || err == unix.EAGAIN {
				continue
			}
			return false, err
		}
		if n == 0 {
			return false, io.EOF
		}
		s.dec.feed(s.buf[:n])
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
	ready, err := waitReadable(s.fd, timeout)
	if err != nil || !ready {
		return 0, err
	}
	n, err := unix.Read(s.fd, p)
	if err != nil {
		if err == unix.EINTR || err == unix.EAGAIN {
			return 0, nil
		}
		return 0, err
	}
	if n == 0 {
		return 0, io.EOF
	}
	return n, nil
}

// waitReadable polls fd for input for at most timeout.
func waitReadable(fd int, timeout time.Duration) (bool, error) {
	ms := 0
	if timeout > 0 {
		ms = int(timeout / time.Millisecond)
		if ms == 0 {
			ms = 1
		}
	}
	fds := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLIN}}
	for {
		n, err := unix.Poll(fds, ms)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return false, err
		}
		return n > 0 && fds[0].Revents&(unix.POLLIN|unix.POLLHUP|unix.POLLERR) != 0, nil
	}
}
