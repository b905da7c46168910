package colormath

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// achromaticChroma is the chroma below which a color carries no meaningful
// hue. Such colors report an absent hue rather than hue 0, and interpolation
// must treat the absence specially.
const achromaticChroma = 1e-4

// OKLCH is a color in the cylindrical OKLab space. H is in degrees in
// [0,360) and is only meaningful when HasHue is true.
type OKLCH struct {
	L, C, H float64
	HasHue  bool
}

// OKLCH converts the color through linear sRGB and OKLab into polar form.
func (c RGB) OKLCH() OKLCH {
	lr, lg, lb := c.colorful().LinearRgb()

	l := math.Cbrt(0.4122214708*lr + 0.5363325363*lg + 0.0514459929*lb)
	m := math.Cbrt(0.2119034982*lr + 0.6806995451*lg + 0.1073969566*lb)
	s := math.Cbrt(0.0883024619*lr + 0.2817188376*lg + 0.6299787005*lb)

	ll := 0.2104542553*l + 0.7936177850*m - 0.0040720468*s
	a := 1.9779984951*l - 2.4285922050*m + 0.4505937099*s
	b := 0.0259040371*l + 0.7827717662*m - 0.8086757660*s

	ch := math.Hypot(a, b)
	out := OKLCH{L: ll, C: ch}
	if ch >= achromaticChroma {
		h := math.Atan2(b, a) * 180 / math.Pi
		if h < 0 {
			h += 360
		}
		out.H = h
		out.HasHue = true
	}
	return out
}

// RGB converts back to 8-bit sRGB, rounding each channel and clamping to
// the displayable range.
func (o OKLCH) RGB() RGB {
	var a, b float64
	if o.HasHue {
		rad := o.H * math.Pi / 180
		a = o.C * math.Cos(rad)
		b = o.C * math.Sin(rad)
	}

	l := o.L + 0.3963377774*a + 0.2158037573*b
	m := o.L - 0.1055613458*a - 0.0638541728*b
	s := o.L - 0.0894841775*a - 1.2914855480*b

	l, m, s = l*l*l, m*m*m, s*s*s

	lr := 4.0767416621*l - 3.3077115913*m + 0.2309699292*s
	lg := -1.2684380046*l + 2.6097574011*m - 0.3413193965*s
	lb := -0.0041960863*l - 0.7034186147*m + 1.7076147010*s

	return fromColorful(colorful.LinearRgb(lr, lg, lb))
}
