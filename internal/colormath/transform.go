package colormath

import "math"

// HuePath selects the direction Fade takes around the hue circle.
type HuePath int

const (
	// ShorterPath interpolates along the smaller of the two arcs.
	ShorterPath HuePath = iota
	// LongerPath interpolates along the larger arc.
	LongerPath
	// IncreasingPath always moves in the direction of increasing hue.
	IncreasingPath
	// DecreasingPath always moves in the direction of decreasing hue.
	DecreasingPath
)

// Saturate adds amount to HSL saturation, clamped to [0,1].
func Saturate(c RGB, amount float64) RGB {
	h, s, l := c.HSL()
	return FromHSL(h, clamp01(s+amount), l)
}

// Desaturate subtracts amount from HSL saturation, clamped to [0,1].
func Desaturate(c RGB, amount float64) RGB {
	return Saturate(c, -amount)
}

// Lighten adds amount to HSL lightness, clamped to [0,1].
func Lighten(c RGB, amount float64) RGB {
	h, s, l := c.HSL()
	return FromHSL(h, s, clamp01(l+amount))
}

// Darken subtracts amount from HSL lightness, clamped to [0,1].
func Darken(c RGB, amount float64) RGB {
	return Lighten(c, -amount)
}

// Rotate adds degrees to the HSL hue, wrapped modulo 360.
func Rotate(c RGB, degrees float64) RGB {
	h, s, l := c.HSL()
	h = math.Mod(h+degrees, 360)
	if h < 0 {
		h += 360
	}
	return FromHSL(h, s, l)
}

// Fade interpolates from c toward target in OKLCH. Amount is clamped to
// [0,1]; 0 returns c exactly and 1 returns target exactly. Lightness and
// chroma interpolate linearly; hue follows path. An endpoint with an absent
// hue adopts the other endpoint's hue, and if both are absent the result
// stays achromatic.
func Fade(c, target RGB, amount float64, path HuePath) RGB {
	if amount <= 0 {
		return c
	}
	if amount >= 1 {
		return target
	}

	from := c.OKLCH()
	to := target.OKLCH()

	out := OKLCH{
		L: from.L + (to.L-from.L)*amount,
		C: from.C + (to.C-from.C)*amount,
	}

	switch {
	case !from.HasHue && !to.HasHue:
		// Achromatic on both ends; nothing to interpolate.
	case !from.HasHue:
		out.H = to.H
		out.HasHue = true
	case !to.HasHue:
		out.H = from.H
		out.HasHue = true
	default:
		out.H = lerpHue(from.H, to.H, amount, path)
		out.HasHue = true
	}
	return out.RGB()
}

// lerpHue interpolates between two hues in degrees along the given path,
// normalizing the result to [0,360).
func lerpHue(from, to, t float64, path HuePath) float64 {
	var d float64
	switch path {
	case LongerPath:
		d = shortestDelta(from, to)
		if d > 0 {
			d -= 360
		} else if d < 0 {
			d += 360
		}
	case IncreasingPath:
		d = math.Mod(to-from, 360)
		if d < 0 {
			d += 360
		}
	case DecreasingPath:
		d = math.Mod(to-from, 360)
		if d < 0 {
			d += 360
		}
		d -= 360
	default:
		d = shortestDelta(from, to)
	}
	h := math.Mod(from+t*d, 360)
	if h < 0 {
		h += 360
	}
	return h
}

func shortestDelta(from, to float64) float64 {
	d := math.Mod(to-from, 360)
	if d > 180 {
		d -= 360
	} else if d < -180 {
		d += 360
	}
	return d
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
