package termbg

import (
	"os"

	"github.com/mattn/go-isatty"
)

// stdioIsTerminal reports whether stdin, stdout and stderr are all attached
// to a terminal. Cygwin and MSYS ptys count.
func stdioIsTerminal() bool {
	for _, f := range []*os.File{os.Stdin, os.Stdout, os.Stderr} {
		fd := fdOf(f)
		if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
			return false
		}
	}
	return true
}
