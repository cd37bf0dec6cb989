package termbg

import (
	"io"
	"log/slog"
	"strings"
	"time"
)

// DefaultPollInterval is the poll quantum of the response loop. Worst-case
// latency of a query is its timeout plus one quantum.
const DefaultPollInterval = 100 * time.Millisecond

// QueryBackground sends the OSC 11 query for term to out and reads the reply
// from src until a terminator arrives or timeout elapses. The caller owns raw
// mode; see Detector.Background for the guarded, fallback-aware entry point.
func QueryBackground(term Terminal, timeout time.Duration, src EventSource, out io.Writer) (Color, error) {
	q := responseQuery{poll: DefaultPollInterval, log: discardLogger}
	return q.run(term, timeout, src, out)
}

type responseQuery struct {
	poll time.Duration
	log  *slog.Logger
}

func (q responseQuery) run(term Terminal, timeout time.Duration, src EventSource, out io.Writer) (Color, error) {
	if _, err := io.WriteString(out, oscQuery(term)); err != nil {
		return Color{}, ioError(err)
	}
	if err := flush(out); err != nil {
		return Color{}, ioError(err)
	}

	var response strings.Builder
	start := time.Now()

	for {
		elapsed := time.Since(start)
		if elapsed > timeout {
			q.log.Debug("deadline reached", "response", response.String())
			if !strings.Contains(response.String(), rgbMarker) {
				return Color{}, timeoutError("no background color reply within " + timeout.String())
			}
			spec, err := salvageUnterminated(response.String())
			if err != nil {
				return Color{}, err
			}
			q.log.Debug("salvaged unterminated reply", "rgb", spec)
			return q.decode(spec, start)
		}

		wait := q.poll
		if remaining := timeout - elapsed; remaining < wait {
			wait = max(remaining, time.Millisecond)
		}
		ready, err := src.Poll(wait)
		if err != nil {
			return Color{}, ioError(err)
		}
		if !ready {
			continue
		}

		ev, err := src.ReadEvent()
		if err != nil {
			return Color{}, ioError(err)
		}
		if ev.Kind != EventKey {
			continue
		}
		switch {
		case isTerminator(ev):
			q.log.Debug("end of response detected", "event", ev)
			return q.decode(response.String(), start)
		case ev.Code == KeyChar && ev.Mod == ModNone:
			response.WriteRune(ev.Char)
		default:
			q.log.Debug("ignoring key", "event", ev)
		}
	}
}

func (q responseQuery) decode(response string, start time.Time) (Color, error) {
	c, err := extractRGB(response)
	if err != nil {
		return Color{}, err
	}
	q.log.Debug("background color decoded", "color", c.X11(), "elapsed", time.Since(start))
	return c, nil
}

// isTerminator matches ST (ESC \ decoded as Alt+\, or a bare \ when the ESC
// was lost) and BEL (Ctrl+G, or the raw 0x07 character).
func isTerminator(ev Event) bool {
	if ev.Code != KeyChar {
		return false
	}
	switch {
	case ev.Char == '\\' && (ev.Mod == ModAlt || ev.Mod == ModNone):
		return true
	case ev.Char == 'g' && ev.Mod == ModCtrl:
		return true
	case ev.Char == 0x07 && ev.Mod == ModNone:
		return true
	}
	return false
}

type flusher interface {
	Flush() error
}

func flush(w io.Writer) error {
	if f, ok := w.(flusher); ok {
		return f.Flush()
	}
	return nil
}

var discardLogger = slog.New(slog.DiscardHandler)
