// Package colormath provides the pure color arithmetic used by the theme
// engine: RGB/HSL/OKLCH conversions, transform operations, and quantization
// to the ANSI 16- and 256-color palettes. No I/O, no state.
package colormath

import (
	"fmt"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB is an 8-bit-per-channel sRGB color.
type RGB struct {
	R, G, B uint8
}

// Hex returns the color as a lowercase "#rrggbb" string.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseHex parses "#rrggbb" or "rrggbb" into an RGB.
func ParseHex(s string) (RGB, bool) {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	if len(s) != 6 {
		return RGB{}, false
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return RGB{}, false
	}
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, true
}

// Luminance returns the perceived luminance in [0,1] using the legacy
// 0.299/0.587/0.114 weights.
func (c RGB) Luminance() float64 {
	return (0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)) / 255
}

// HSL returns hue in [0,360), saturation and lightness in [0,1].
// Achromatic colors report hue 0 and saturation 0.
func (c RGB) HSL() (h, s, l float64) {
	return c.colorful().Hsl()
}

// FromHSL builds an RGB from hue in degrees and saturation/lightness in [0,1].
func FromHSL(h, s, l float64) RGB {
	return fromColorful(colorful.Hsl(h, s, l))
}

func (c RGB) colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

func fromColorful(col colorful.Color) RGB {
	r, g, b := col.Clamped().RGB255()
	return RGB{R: r, G: g, B: b}
}
