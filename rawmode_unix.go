//go:build unix

package termbg

import (
	"os"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// ttyMode switches the controlling terminal through termios.
type ttyMode struct {
	fd    int
	saved *term.State
}

func newTTYMode(f *os.File) *ttyMode {
	return &ttyMode{fd: int(fdOf(f))}
}

// IsRaw reports raw mode as canonical input and echo both being off.
func (m *ttyMode) IsRaw() (bool, error) {
	t, err := unix.IoctlGetTermios(m.fd, ioctlReadTermios)
	if err != nil {
		return false, err
	}
	return t.Lflag&(unix.ICANON|unix.ECHO) == 0, nil
}

func (m *ttyMode) EnableRaw() error {
	st, err := term.MakeRaw(m.fd)
	if err != nil {
		return err
	}
	if m.saved == nil {
		m.saved = st
	}
	return nil
}

func (m *ttyMode) DisableRaw() error {
	if m.saved != nil {
		st := m.saved
		m.saved = nil
		return term.Restore(m.fd, st)
	}
	// Raw mode was entered by someone else; turn the usual cooked flags back on.
	t, err := unix.IoctlGetTermios(m.fd, ioctlReadTermios)
	if err != nil {
		return err
	}
	t.Lflag |= unix.ECHO | unix.ICANON | unix.ISIG | unix.IEXTEN
	t.Iflag |= unix.ICRNL
	t.Oflag |= unix.OPOST
	return unix.IoctlSetTermios(m.fd, ioctlWriteTermios, t)
}
