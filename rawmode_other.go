//go:build !unix && !windows

package termbg

import (
	"errors"
	"os"
)

var errNoTTY = errors.New("terminal control not available on this platform")

type ttyMode struct{}

func newTTYMode(*os.File) *ttyMode { return &ttyMode{} }

func (*ttyMode) IsRaw() (bool, error) { return false, errNoTTY }
func (*ttyMode) EnableRaw() error     { return errNoTTY }
func (*ttyMode) DisableRaw() error    { return errNoTTY }
