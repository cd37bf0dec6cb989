//go:build windows

package termbg

import (
	"sync"

	"golang.org/x/sys/windows"
)

// processVT tries once per process to switch the console's stdout to virtual
// terminal processing. The answer never changes afterwards.
var processVT = sync.OnceValue(func() bool {
	h, err := windows.GetStdHandle(windows.STD_OUTPUT_HANDLE)
	if err != nil || h == windows.InvalidHandle {
		return false
	}
	var mode uint32
	if err := windows.GetConsoleMode(h, &mode); err != nil {
		return false
	}
	if mode&windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING != 0 {
		return true
	}
	return windows.SetConsoleMode(h, mode|windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING) == nil
})

const hostIsWindows = true
