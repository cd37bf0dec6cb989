//go:build windows

package termbg

import (
	"golang.org/x/sys/windows"
)

// consoleBackground reads the legacy console attributes. It only reflects
// colors set through the console API and reports black otherwise.
func consoleBackground() (Color, error) {
	h, err := windows.GetStdHandle(windows.STD_OUTPUT_HANDLE)
	if err != nil {
		return Color{}, ioError(err)
	}
	var info windows.ConsoleScreenBufferInfo
	if err := windows.GetConsoleScreenBufferInfo(h, &info); err != nil {
		return Color{}, ioError(err)
	}
	return consoleColor(info.Attributes), nil
}
