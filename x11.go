package termbg

import (
	"strconv"
	"strings"
)

// DecodeX11 parses an X11 color spec of the form "R/G/B" where each group is
// one to four hex digits. Short groups hold the most significant nibbles, so
// "1" decodes to 0x1000 and "11" to 0x1100.
func DecodeX11(spec string) (r, g, b uint16, err error) {
	groups := strings.Split(spec, "/")
	if len(groups) < 3 {
		return 0, 0, 0, parseError("color spec %q has fewer than three groups", spec)
	}
	var ch [3]uint16
	for i := range ch {
		v, err := decodeHexGroup(groups[i])
		if err != nil {
			return 0, 0, 0, err
		}
		ch[i] = v
	}
	return ch[0], ch[1], ch[2], nil
}

func decodeHexGroup(s string) (uint16, error) {
	if len(s) == 0 || len(s) > 4 {
		return 0, parseError("color group %q must have 1 to 4 hex digits", s)
	}
	v, err := strconv.ParseUint(s, 16, 16)
	if err != nil {
		return 0, parseError("color group %q is not hex", s)
	}
	return uint16(v) << ((4 - len(s)) * 4), nil
}

// extractRGB locates the "rgb:" marker in a terminated response and decodes
// the remainder.
func extractRGB(response string) (Color, error) {
	i := strings.Index(response, rgbMarker)
	if i < 0 {
		return Color{}, parseError("could not find %q in terminal response %q", rgbMarker, response)
	}
	r, g, b, err := DecodeX11(response[i+len(rgbMarker):])
	if err != nil {
		return Color{}, err
	}
	return Color{R: r, G: g, B: b}, nil
}

// salvageUnterminated rebuilds a reply that never saw its terminator. The three
// slash-delimited groups are assumed to share the width of the first one; the
// text after the third group is dropped.
func salvageUnterminated(response string) (string, error) {
	start := strings.Index(response, rgbMarker)
	if start < 0 {
		return "", parseError("required string %q not found in response", rgbMarker)
	}
	mid := start + len(rgbMarker)
	fragments := strings.SplitN(response[mid:], "/", 3)
	if len(fragments) < 3 {
		return "", parseError("incomplete response %q: does not contain two forward slashes", response)
	}
	width := len(fragments[0])
	if len(fragments[1]) != width || len(fragments[2]) < width {
		return "", parseError("cannot reconstitute unterminated response %q from fragments of unequal length", response)
	}
	return response[start : mid+width*3+2], nil
}
