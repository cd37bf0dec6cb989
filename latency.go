package termbg

import (
	"bytes"
	"io"
	"time"
)

// Latency measures how long the terminal takes to answer a device status
// report. Families that cannot be probed report zero.
func (d *Detector) Latency(timeout time.Duration) (time.Duration, error) {
	if term := d.Terminal(); term == Emacs || term == Windows || d.legacyConsole() {
		d.log.Debug("latency not measurable", "terminal", term)
		return 0, nil
	}
	if !d.interactive() {
		return 0, unsupported("stdin, stdout and stderr must all be terminals")
	}

	var elapsed time.Duration
	err := d.guarded("latency", func() error {
		var err error
		elapsed, err = d.probeLatency(timeout)
		return err
	})
	if err != nil {
		return 0, err
	}
	return elapsed, nil
}

func (d *Detector) probeLatency(timeout time.Duration) (time.Duration, error) {
	start := time.Now()
	if _, err := io.WriteString(d.out, dsrQuery); err != nil {
		return 0, ioError(err)
	}
	if err := flush(d.out); err != nil {
		return 0, ioError(err)
	}

	var buf [32]byte
	for {
		remaining := timeout - time.Since(start)
		if remaining <= 0 {
			return 0, timeoutError("no device status report within " + timeout.String())
		}
		n, err := d.raw.ReadRaw(buf[:], remaining)
		if err != nil {
			return 0, ioError(err)
		}
		if bytes.IndexByte(buf[:n], 'n') >= 0 {
			elapsed := time.Since(start)
			d.log.Debug("device status report received", "elapsed", elapsed)
			return elapsed, nil
		}
	}
}
