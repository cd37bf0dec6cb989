// Package earlyinit must be imported before anything that renders with
// lipgloss. Its init function pre-sets lipgloss's dark-background flag so
// that the first style lookup does not make termenv send its own OSC 11
// query. That query would race ours, and its reply would land in stdin as
// stray input.
//
// After detection, Apply replaces the guess with the real answer and picks
// the color profile from the environment, again without probing the
// terminal.
package earlyinit

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/Dhanuzh/termbg"
)

func init() {
	lipgloss.SetHasDarkBackground(true)
}

// Apply tells lipgloss what the detected background is.
func Apply(t termbg.Theme) {
	lipgloss.SetHasDarkBackground(t == termbg.Dark)
	lipgloss.SetColorProfile(termenv.EnvColorProfile())
}
