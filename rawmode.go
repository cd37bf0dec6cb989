package termbg

// RawMode is the terminal-wide raw input switch. It is shared with the rest
// of the process, so queries record and restore it rather than forcing it off.
type RawMode interface {
	IsRaw() (bool, error)
	EnableRaw() error
	DisableRaw() error
}
