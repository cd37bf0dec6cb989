package termbg

import "unicode/utf8"

// keyDecoder turns a raw input byte stream into key events. It keeps an
// incomplete trailing sequence (a lone ESC, a partial CSI or UTF-8 rune)
// until more bytes arrive or the source goes idle.
type keyDecoder struct {
	pending []byte
	queue   []Event
}

func (k *keyDecoder) feed(p []byte) {
	k.pending = append(k.pending, p...)
	consumed := k.parse(k.pending, false)
	if consumed >= len(k.pending) {
		k.pending = k.pending[:0]
		return
	}
	copy(k.pending, k.pending[consumed:])
	k.pending = k.pending[:len(k.pending)-consumed]
}

// idle resolves whatever is still pending: a lone ESC becomes the Esc key.
func (k *keyDecoder) idle() {
	if len(k.pending) == 0 {
		return
	}
	k.parse(k.pending, true)
	k.pending = k.pending[:0]
}

func (k *keyDecoder) buffered() bool {
	return len(k.queue) > 0
}

func (k *keyDecoder) next() (Event, bool) {
	if len(k.queue) == 0 {
		return Event{}, false
	}
	ev := k.queue[0]
	k.queue = k.queue[1:]
	return ev, true
}

func (k *keyDecoder) parse(data []byte, final bool) int {
	i := 0
	for i < len(data) {
		n, ev := decodeOne(data[i:], final)
		if n == 0 {
			break
		}
		k.queue = append(k.queue, ev)
		i += n
	}
	return i
}

// decodeOne decodes a single event from the head of data. It returns n == 0
// when data holds an incomplete sequence and final is false.
func decodeOne(data []byte, final bool) (int, Event) {
	b := data[0]
	switch {
	case b == 0x1b:
		return decodeEscape(data, final)
	case b == '\r' || b == '\n':
		return 1, Key(KeyEnter)
	case b == '\t':
		return 1, Key(KeyTab)
	case b == 0x7f || b == 0x08:
		return 1, Key(KeyBackspace)
	case b == 0x00:
		return 1, CharWith(' ', ModCtrl)
	case b <= 0x1a:
		// Ctrl+A..Ctrl+Z; BEL (0x07) arrives as Ctrl+G.
		return 1, CharWith(rune('a'+b-1), ModCtrl)
	case b <= 0x1f:
		return 1, CharWith(rune('4'+b-0x1c), ModCtrl)
	case b < utf8.RuneSelf:
		return 1, Char(rune(b))
	}

	if !final && !utf8.FullRune(data) {
		return 0, Event{}
	}
	r, size := utf8.DecodeRune(data)
	if r == utf8.RuneError && size <= 1 {
		// Not UTF-8: keep the byte value, e.g. a C1 ST (0x9c).
		return 1, Char(rune(b))
	}
	return size, Char(r)
}

func decodeEscape(data []byte, final bool) (int, Event) {
	if len(data) == 1 {
		if final {
			return 1, Key(KeyEsc)
		}
		return 0, Event{}
	}
	switch data[1] {
	case '[':
		// CSI: parameter and intermediate bytes up to a final byte in 0x40..0x7e.
		for j := 2; j < len(data); j++ {
			c := data[j]
			if c >= 0x40 && c <= 0x7e {
				return j + 1, Event{Kind: EventOther}
			}
			if c < 0x20 || c > 0x3f {
				return j, Event{Kind: EventOther}
			}
		}
		if final {
			return len(data), Event{Kind: EventOther}
		}
		return 0, Event{}
	case 0x1b:
		return 1, Key(KeyEsc)
	}

	n, ev := decodeOne(data[1:], final)
	if n == 0 {
		return 0, Event{}
	}
	ev.Mod |= ModAlt
	return n + 1, ev
}
