package termbg

import (
	"io"
	"log/slog"
	"os"
	"time"
)

// DefaultDrainInterval is how long the drain waits for more stray input
// before it considers stdin quiet.
const DefaultDrainInterval = 10 * time.Millisecond

// Detector runs background, theme and latency queries against one terminal.
// The zero value is not usable; build one with NewDetector. A Detector holds
// no locks: callers serialise queries against the same terminal.
type Detector struct {
	getenv      func(string) (string, bool)
	windows     bool
	vtEnabled   func() bool
	interactive func() bool

	mode    RawMode
	source  EventSource
	raw     RawReader
	out     io.Writer
	console func() (Color, error)

	poll          time.Duration
	drainInterval time.Duration
	log           *slog.Logger
}

// Option configures a Detector.
type Option func(*Detector)

// WithEnv replaces the environment lookup; the signature matches
// os.LookupEnv.
func WithEnv(lookup func(string) (string, bool)) Option {
	return func(d *Detector) { d.getenv = lookup }
}

// WithPlatform overrides host detection: windows selects the Windows
// classification rules and vt is the answer of the VT-processing probe.
func WithPlatform(windows, vt bool) Option {
	return func(d *Detector) {
		d.windows = windows
		d.vtEnabled = func() bool { return vt }
	}
}

// WithInteractive overrides the check that stdin, stdout and stderr are
// all terminals.
func WithInteractive(interactive bool) Option {
	return func(d *Detector) { d.interactive = func() bool { return interactive } }
}

// WithRawMode replaces the terminal's raw-mode switch.
func WithRawMode(m RawMode) Option {
	return func(d *Detector) { d.mode = m }
}

// WithSource sets the input event source. If src also implements RawReader
// it serves the latency probe too, unless WithRawReader says otherwise.
func WithSource(src EventSource) Option {
	return func(d *Detector) { d.source = src }
}

// WithRawReader sets the byte reader used to time the status report.
func WithRawReader(r RawReader) Option {
	return func(d *Detector) { d.raw = r }
}

// WithOutput sets where queries are written, os.Stderr by default. A writer
// with a Flush() error method is flushed after every query.
func WithOutput(w io.Writer) Option {
	return func(d *Detector) { d.out = w }
}

// WithConsole replaces the legacy Windows console reader.
func WithConsole(read func() (Color, error)) Option {
	return func(d *Detector) { d.console = read }
}

// WithLogger sets the logger for query diagnostics. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(d *Detector) {
		if l != nil {
			d.log = l
		}
	}
}

// WithPollInterval sets the poll quantum of the reply loop.
func WithPollInterval(p time.Duration) Option {
	return func(d *Detector) {
		if p > 0 {
			d.poll = p
		}
	}
}

// WithDrainInterval sets how long the drain waits for more stray input.
func WithDrainInterval(p time.Duration) Option {
	return func(d *Detector) {
		if p > 0 {
			d.drainInterval = p
		}
	}
}

// NewDetector returns a Detector bound to the process's standard streams,
// adjusted by opts.
func NewDetector(opts ...Option) *Detector {
	d := &Detector{
		getenv:        os.LookupEnv,
		windows:       hostIsWindows,
		vtEnabled:     processVT,
		interactive:   stdioIsTerminal,
		out:           os.Stderr,
		console:       consoleBackground,
		poll:          DefaultPollInterval,
		drainInterval: DefaultDrainInterval,
		log:           discardLogger,
	}
	for _, opt := range opts {
		opt(d)
	}

	var live *liveSource
	stdin := func() *liveSource {
		if live == nil {
			live = newLiveSource(os.Stdin)
		}
		return live
	}
	if d.mode == nil {
		d.mode = newTTYMode(os.Stdin)
	}
	if d.source == nil {
		d.source = stdin()
	}
	if d.raw == nil {
		if r, ok := d.source.(RawReader); ok {
			d.raw = r
		} else {
			d.raw = stdin()
		}
	}
	return d
}

// Detect classifies the terminal the process is attached to.
func Detect() Terminal {
	return NewDetector().Terminal()
}

// Background returns the terminal background color, querying the terminal
// and falling back to COLORFGBG.
func Background(timeout time.Duration) (Color, error) {
	return NewDetector().Background(timeout)
}

// DetectTheme classifies the terminal background as light or dark.
func DetectTheme(timeout time.Duration) (Theme, error) {
	return NewDetector().DetectTheme(timeout)
}

// Latency measures the terminal's reply time to a device status report.
func Latency(timeout time.Duration) (time.Duration, error) {
	return NewDetector().Latency(timeout)
}

// Background resolves the background color. The primary source depends on
// the terminal family; when it fails COLORFGBG is tried, and if that fails
// too the primary error is returned.
func (d *Detector) Background(timeout time.Duration) (Color, error) {
	term := d.Terminal()
	c, err := d.primary(term, timeout)
	if err == nil {
		return c, nil
	}
	d.log.Debug("background query failed", "terminal", term, "err", err)

	fc, ferr := colorFromEnv(d.getenv)
	if ferr != nil {
		d.log.Debug("COLORFGBG fallback failed", "err", ferr)
		return Color{}, err
	}
	d.log.Debug("background from COLORFGBG", "color", fc.X11())
	return fc, nil
}

// DetectTheme derives the theme from Background, passing its error through
// unchanged.
func (d *Detector) DetectTheme(timeout time.Duration) (Theme, error) {
	c, err := d.Background(timeout)
	if err != nil {
		return Dark, err
	}
	return ThemeOf(c), nil
}

func (d *Detector) primary(term Terminal, timeout time.Duration) (Color, error) {
	switch term {
	case Emacs:
		return Color{}, unsupported("emacs terminals do not answer OSC 11")
	case Windows:
		return d.console()
	}
	if d.legacyConsole() {
		// tmux, screen or vscode variables on a console without VT
		// processing: the query bytes would only be printed.
		d.log.Debug("no virtual terminal processing", "terminal", term)
		return d.console()
	}
	return d.fromXterm(term, timeout)
}

// legacyConsole reports a Windows console that cannot interpret escape
// sequences, whatever the environment claims.
func (d *Detector) legacyConsole() bool {
	return d.windows && !d.vtEnabled()
}

func (d *Detector) fromXterm(term Terminal, timeout time.Duration) (Color, error) {
	if !d.interactive() {
		return Color{}, unsupported("stdin, stdout and stderr must all be terminals")
	}
	var c Color
	err := d.guarded("background", func() error {
		var err error
		q := responseQuery{poll: d.poll, log: d.log}
		c, err = q.run(term, timeout, d.source, d.out)
		return err
	})
	if err != nil {
		return Color{}, err
	}
	return c, nil
}
