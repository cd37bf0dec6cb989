package termbg

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a background color with 16-bit channels.
type Color struct {
	R uint16 `json:"r"`
	G uint16 `json:"g"`
	B uint16 `json:"b"`
}

// Theme is the light/dark classification of a background.
type Theme int

const (
	Dark Theme = iota
	Light
)

func (t Theme) String() string {
	if t == Light {
		return "light"
	}
	return "dark"
}

// MarshalText renders the theme as "light" or "dark".
func (t Theme) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// luminanceThreshold splits light from dark on the 16-bit scale.
const luminanceThreshold = 32768.0

// Luminance is the ITU-R BT.601 luma over the raw 16-bit channels.
func (c Color) Luminance() float64 {
	return float64(c.R)*0.299 + float64(c.G)*0.587 + float64(c.B)*0.114
}

// ThemeOf classifies c. Exactly at the threshold is dark.
func ThemeOf(c Color) Theme {
	return themeForLuminance(c.Luminance())
}

func themeForLuminance(y float64) Theme {
	if y > luminanceThreshold {
		return Light
	}
	return Dark
}

// Colorful converts c to a go-colorful color in [0,1] space.
func (c Color) Colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 0xffff,
		G: float64(c.G) / 0xffff,
		B: float64(c.B) / 0xffff,
	}
}

// Hex renders c as #rrggbb.
func (c Color) Hex() string {
	return c.Colorful().Clamped().Hex()
}

// X11 renders c in the reply format the terminal uses.
func (c Color) X11() string {
	return fmt.Sprintf("rgb:%04x/%04x/%04x", c.R, c.G, c.B)
}

func (c Color) String() string {
	return fmt.Sprintf("R=%x, G=%x, B=%x", c.R, c.G, c.B)
}

// from8bit scales 8-bit palette channels into 16-bit space.
func from8bit(r, g, b uint8) Color {
	return Color{R: uint16(r) * 256, G: uint16(g) * 256, B: uint16(b) * 256}
}
