package termbg

import "os"

// fdOf returns f's descriptor without the side effect of (*os.File).Fd,
// which switches the descriptor back to blocking mode.
func fdOf(f *os.File) uintptr {
	rc, err := f.SyscallConn()
	if err != nil {
		return f.Fd()
	}
	var fd uintptr
	if err := rc.Control(func(p uintptr) { fd = p }); err != nil {
		return f.Fd()
	}
	return fd
}
