// Package termbg detects a terminal's background color, the light or dark
// theme that follows from it, and the terminal's reply latency.
//
// The background is asked for with an OSC 11 query, wrapped in a DCS
// passthrough under tmux and screen. The reply is read from stdin in raw
// mode until ST or BEL arrives or the timeout elapses; a reply cut off by
// the deadline is salvaged when its hex groups line up. Raw mode is put back
// the way it was found and stray input is drained after every query.
//
// When the terminal cannot be asked (Emacs, a legacy Windows console,
// redirected streams) the COLORFGBG variable and, on Windows, the console
// screen buffer attributes are used instead.
//
//	theme, err := termbg.DetectTheme(100 * time.Millisecond)
//	if err != nil {
//		theme = termbg.Dark
//	}
package termbg
