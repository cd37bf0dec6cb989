package termbg

// drainLimit caps how many stray events one drain discards.
const drainLimit = 64

// guarded runs body with the terminal in raw mode. The raw flag seen on
// entry is put back afterwards and stdin is drained, on every exit path.
func (d *Detector) guarded(name string, body func() error) (err error) {
	wasRaw, err := d.mode.IsRaw()
	if err != nil {
		return ioError(err)
	}
	if !wasRaw {
		if err := d.mode.EnableRaw(); err != nil {
			return ioError(err)
		}
	}

	defer func() {
		if rerr := d.restore(wasRaw); rerr != nil {
			d.log.Warn("restoring raw mode failed", "query", name, "err", rerr)
			if err == nil {
				err = ioError(rerr)
			}
		}
		d.drain()
	}()

	return body()
}

// restore sets the raw flag back to wasRaw if it changed.
func (d *Detector) restore(wasRaw bool) error {
	isRaw, err := d.mode.IsRaw()
	if err != nil {
		if !wasRaw {
			// Flag unreadable: undo our own switch anyway.
			if derr := d.mode.DisableRaw(); derr != nil {
				return derr
			}
		}
		return err
	}
	switch {
	case isRaw == wasRaw:
		return nil
	case wasRaw:
		return d.mode.EnableRaw()
	default:
		return d.mode.DisableRaw()
	}
}

// drain discards input still queued after a query: late reply bytes or keys
// typed while the terminal was busy.
func (d *Detector) drain() {
	for i := 0; i < drainLimit; i++ {
		ready, err := d.source.Poll(d.drainInterval)
		if err != nil {
			d.log.Debug("drain poll failed", "err", err)
			return
		}
		if !ready {
			return
		}
		ev, err := d.source.ReadEvent()
		if err != nil {
			d.log.Debug("drain read failed", "err", err)
			return
		}
		d.log.Debug("discarded stray input", "event", ev)
	}
	d.log.Warn("input still arriving after drain", "discarded", drainLimit)
}
