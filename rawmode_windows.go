//go:build windows

package termbg

import (
	"os"

	"golang.org/x/sys/windows"
	"golang.org/x/term"
)

// ttyMode switches the console input mode.
type ttyMode struct {
	fd    int
	saved *term.State
}

func newTTYMode(f *os.File) *ttyMode {
	return &ttyMode{fd: int(fdOf(f))}
}

// IsRaw reports raw mode as line input and echo both being off.
func (m *ttyMode) IsRaw() (bool, error) {
	var mode uint32
	if err := windows.GetConsoleMode(windows.Handle(m.fd), &mode); err != nil {
		return false, err
	}
	return mode&(windows.ENABLE_LINE_INPUT|windows.ENABLE_ECHO_INPUT) == 0, nil
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
	var mode uint32
	h := windows.Handle(m.fd)
	if err := windows.GetConsoleMode(h, &mode); err != nil {
		return err
	}
	mode |= windows.ENABLE_LINE_INPUT | windows.ENABLE_ECHO_INPUT | windows.ENABLE_PROCESSED_INPUT
	return windows.SetConsoleMode(h, mode)
}
