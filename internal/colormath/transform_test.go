package colormath

import "testing"

func TestFadeEndpoints(t *testing.T) {
	pairs := []struct {
		name      string
		c, target RGB
	}{
		{name: "red to blue", c: RGB{255, 0, 0}, target: RGB{0, 0, 255}},
		{name: "gray to green", c: RGB{128, 128, 128}, target: RGB{0, 200, 0}},
		{name: "black to white", c: RGB{0, 0, 0}, target: RGB{255, 255, 255}},
		{name: "same color", c: RGB{10, 20, 30}, target: RGB{10, 20, 30}},
	}

	for _, tc := range pairs {
		t.Run(tc.name, func(t *testing.T) {
			if got := Fade(tc.c, tc.target, 0, ShorterPath); got != tc.c {
				t.Errorf("Fade(.., 0) = %v, expected source %v exactly", got, tc.c)
			}
			if got := Fade(tc.c, tc.target, 1, ShorterPath); got != tc.target {
				t.Errorf("Fade(.., 1) = %v, expected target %v exactly", got, tc.target)
			}
		})
	}
}

func TestFadeClampsAmount(t *testing.T) {
	c := RGB{255, 0, 0}
	target := RGB{0, 0, 255}
	if got := Fade(c, target, -3, ShorterPath); got != c {
		t.Errorf("Fade(.., -3) = %v, expected source %v", got, c)
	}
	if got := Fade(c, target, 7, ShorterPath); got != target {
		t.Errorf("Fade(.., 7) = %v, expected target %v", got, target)
	}
}

func TestFadeAbsentHueDegenerates(t *testing.T) {
	gray := RGB{128, 128, 128}
	red := RGB{220, 30, 30}
	redHue := red.OKLCH().H

	mid := Fade(gray, red, 0.5, ShorterPath)
	o := mid.OKLCH()
	if !o.HasHue {
		t.Fatalf("midpoint of gray->red is achromatic: %v", mid)
	}
	if d := hueDelta(o.H, redHue); d > 2 {
		t.Errorf("midpoint hue %v drifted from red hue %v", o.H, redHue)
	}

	// Both ends achromatic: the result must stay achromatic.
	mid = Fade(RGB{30, 30, 30}, RGB{200, 200, 200}, 0.5, ShorterPath)
	if mid.OKLCH().HasHue {
		t.Errorf("gray->gray midpoint %v gained a hue", mid)
	}
}

func TestFadeHuePaths(t *testing.T) {
	// Red (~29deg) to cyan-blue: the longer path must pass the other way
	// around the circle, so midpoints differ between paths.
	c := RGB{255, 0, 0}
	target := RGB{0, 128, 255}
	short := Fade(c, target, 0.5, ShorterPath)
	long := Fade(c, target, 0.5, LongerPath)
	if short == long {
		t.Errorf("shorter and longer midpoints identical: %v", short)
	}

	inc := Fade(c, target, 0.5, IncreasingPath)
	dec := Fade(c, target, 0.5, DecreasingPath)
	if inc == dec {
		t.Errorf("increasing and decreasing midpoints identical: %v", inc)
	}
}

func TestRotateFullCircle(t *testing.T) {
	colors := []RGB{
		{255, 0, 0},
		{10, 200, 90},
		{33, 66, 99},
	}
	for _, c := range colors {
		if got, want := Rotate(c, 360), Rotate(c, 0); got != want {
			t.Errorf("Rotate(%v, 360) = %v, Rotate(%v, 0) = %v", c, got, c, want)
		}
	}
}

func TestRotateThereAndBack(t *testing.T) {
	c := RGB{180, 60, 20}
	for _, d := range []float64{30, 90, 145, 270} {
		back := Rotate(Rotate(c, d), 360-d)
		if !within(c, back, 2) {
			t.Errorf("rotate %v then %v: got %v, expected ~%v", d, 360-d, back, c)
		}
	}
}

func TestSaturateClamps(t *testing.T) {
	c := RGB{255, 0, 0} // already fully saturated
	if got := Saturate(c, 0.5); !within(c, got, 1) {
		t.Errorf("Saturate past 1 changed color: %v -> %v", c, got)
	}
	gray := RGB{100, 100, 100}
	if got := Desaturate(gray, 0.9); !within(gray, got, 1) {
		t.Errorf("Desaturate below 0 changed color: %v -> %v", gray, got)
	}
}

func TestLightenDarken(t *testing.T) {
	c := RGB{120, 40, 40}
	_, _, l := c.HSL()

	lighter := Lighten(c, 0.2)
	if _, _, ll := lighter.HSL(); ll <= l {
		t.Errorf("Lighten did not raise lightness: %v -> %v", l, ll)
	}
	darker := Darken(c, 0.2)
	if _, _, dl := darker.HSL(); dl >= l {
		t.Errorf("Darken did not lower lightness: %v -> %v", l, dl)
	}

	if got := Lighten(RGB{255, 255, 255}, 0.5); got != (RGB{255, 255, 255}) {
		t.Errorf("Lighten clamped white changed: %v", got)
	}
	if got := Darken(RGB{0, 0, 0}, 0.5); got != (RGB{0, 0, 0}) {
		t.Errorf("Darken clamped black changed: %v", got)
	}
}

func hueDelta(a, b float64) float64 {
	d := a - b
	if d < 0 {
		d = -d
	}
	if d > 180 {
		d = 360 - d
	}
	return d
}
