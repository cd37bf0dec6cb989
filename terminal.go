package termbg

import (
	"strings"
)

// Terminal is the detected emulator family. It selects the escape sequence
// variant and the fallback path.
type Terminal int

const (
	XtermCompatible Terminal = iota
	Screen
	Tmux
	Windows
	Emacs
)

func (t Terminal) String() string {
	switch t {
	case Screen:
		return "Screen"
	case Tmux:
		return "Tmux"
	case Windows:
		return "Windows"
	case Emacs:
		return "Emacs"
	default:
		return "XtermCompatible"
	}
}

// MarshalText renders the family name.
func (t Terminal) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// Terminal classifies the current terminal from the environment. On Windows
// the final step probes (once per process) whether VT processing can be
// enabled on the console.
func (d *Detector) Terminal() Terminal {
	if _, ok := d.getenv("INSIDE_EMACS"); ok {
		return Emacs
	}
	if d.windows {
		if prog, _ := d.getenv("TERM_PROGRAM"); prog == "vscode" {
			return XtermCompatible
		}
	}

	term, hasTerm := d.getenv("TERM")
	if _, ok := d.getenv("TMUX"); ok || (hasTerm && strings.HasPrefix(term, "tmux-")) {
		return Tmux
	}
	if hasTerm && strings.HasPrefix(term, "screen") {
		return Screen
	}

	if !d.windows {
		return XtermCompatible
	}
	if d.vtEnabled() {
		d.log.Debug("console supports virtual terminal processing")
		return XtermCompatible
	}
	d.log.Debug("console has no virtual terminal processing")
	return Windows
}

// oscQuery returns the OSC 11 background query for the family. Multiplexers
// need the query wrapped in a DCS passthrough to reach the outer terminal.
func oscQuery(t Terminal) string {
	switch t {
	case Tmux:
		return dcs + "tmux;" + esc + osc + "11;?" + bel + st
	case Screen:
		return dcs + osc + "11;?" + bel + st
	default:
		return osc + "11;?" + st
	}
}

const (
	esc = "\x1b"
	bel = "\x07"
	dcs = esc + "P"
	osc = esc + "]"
	csi = esc + "["
	st  = esc + "\\"

	// dsrQuery asks for a device status report; the reply ends in 'n'.
	dsrQuery = csi + "5n"

	rgbMarker = "rgb:"
)
