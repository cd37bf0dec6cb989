package termbg

import (
	"strconv"
	"strings"
)

// ansiPalette is the rxvt default table for the 16 ANSI colors.
var ansiPalette = [16][3]uint8{
	{0, 0, 0},       // black
	{205, 0, 0},     // red
	{0, 205, 0},     // green
	{205, 205, 0},   // yellow
	{0, 0, 238},     // blue
	{205, 0, 205},   // magenta
	{0, 205, 205},   // cyan
	{229, 229, 229}, // white
	{127, 127, 127}, // bright black
	{255, 0, 0},     // bright red
	{0, 255, 0},     // bright green
	{255, 255, 0},   // bright yellow
	{92, 92, 255},   // bright blue
	{255, 0, 255},   // bright magenta
	{0, 255, 255},   // bright cyan
	{255, 255, 255}, // bright white
}

// consolePalette is indexed by the legacy console background bits
// red | green<<1 | blue<<2 | intensity<<3.
var consolePalette = [16][3]uint8{
	{0, 0, 0},
	{128, 0, 0},
	{0, 128, 0},
	{128, 128, 0},
	{0, 0, 128},
	{128, 0, 128},
	{0, 128, 128},
	{192, 192, 192},
	{128, 128, 128},
	{255, 0, 0},
	{0, 255, 0},
	{255, 255, 0},
	{0, 0, 255},
	{255, 0, 255},
	{0, 255, 255},
	{255, 255, 255},
}

// Console screen buffer background attribute bits.
const (
	backgroundBlue      = 0x0010
	backgroundGreen     = 0x0020
	backgroundRed       = 0x0040
	backgroundIntensity = 0x0080
)

// colorFromEnv reads COLORFGBG ("FG;BG[;...]"), the convention set by rxvt
// and a few other emulators.
func colorFromEnv(getenv func(string) (string, bool)) (Color, error) {
	v, ok := getenv("COLORFGBG")
	if !ok {
		return Color{}, unsupported("COLORFGBG not set")
	}
	fields := strings.Split(v, ";")
	if len(fields) < 2 {
		return Color{}, unsupported("COLORFGBG has no background field")
	}
	idx, err := strconv.ParseUint(fields[1], 10, 8)
	if err != nil {
		return Color{}, parseError("COLORFGBG=%q", v)
	}
	if idx >= uint64(len(ansiPalette)) {
		return Color{}, nil
	}
	p := ansiPalette[idx]
	return from8bit(p[0], p[1], p[2]), nil
}

// consoleColor maps a console attribute word to its background color.
func consoleColor(attr uint16) Color {
	var idx int
	if attr&backgroundRed != 0 {
		idx |= 1
	}
	if attr&backgroundGreen != 0 {
		idx |= 2
	}
	if attr&backgroundBlue != 0 {
		idx |= 4
	}
	if attr&backgroundIntensity != 0 {
		idx |= 8
	}
	p := consolePalette[idx]
	return from8bit(p[0], p[1], p[2])
}
