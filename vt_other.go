//go:build !windows

package termbg

func processVT() bool { return true }

const hostIsWindows = false
