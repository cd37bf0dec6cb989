//go:build !windows

package termbg

func consoleBackground() (Color, error) {
	return Color{}, unsupported("no legacy console on this platform")
}
