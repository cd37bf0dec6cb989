package termbg

import "time"

// EventKind distinguishes key presses from everything else a terminal can
// report (mouse, focus, unrecognised control sequences).
type EventKind uint8

const (
	EventKey EventKind = iota
	EventOther
)

// KeyCode identifies a key. KeyChar carries its rune in Event.Char.
type KeyCode uint8

const (
	KeyChar KeyCode = iota
	KeyEsc
	KeyEnter
	KeyTab
	KeyBackspace
	KeyNone
)

// Modifiers is a bitset of held modifier keys.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModCtrl
	ModAlt
	ModNone Modifiers = 0
)

// Event is a single decoded input event.
type Event struct {
	Kind EventKind
	Code KeyCode
	Char rune
	Mod  Modifiers
}

// Char returns a plain character key event.
func Char(r rune) Event {
	return Event{Kind: EventKey, Code: KeyChar, Char: r}
}

// CharWith returns a character key event with modifiers held.
func CharWith(r rune, mod Modifiers) Event {
	return Event{Kind: EventKey, Code: KeyChar, Char: r, Mod: mod}
}

// Key returns a non-character key event.
func Key(code KeyCode) Event {
	return Event{Kind: EventKey, Code: code}
}

// EventSource delivers terminal input events.
type EventSource interface {
	// Poll reports whether an event is available within timeout without
	// consuming it.
	Poll(timeout time.Duration) (bool, error)
	// ReadEvent consumes and returns the next event, blocking until one
	// arrives.
	ReadEvent() (Event, error)
}

// RawReader reads undecoded input bytes. It returns 0, nil when nothing
// arrived within timeout.
type RawReader interface {
	ReadRaw(p []byte, timeout time.Duration) (int, error)
}
