// Package gradient samples 1D color gradients. Interpolation happens in
// OKLCH through colormath.Fade, so ramps stay perceptually even and the hue
// direction between stops is configurable.
package gradient

import (
	"fmt"
	"sort"

	"github.com/vovakirdan/termtint/internal/colormath"
)

// Stop pins a color at a position in [0,1].
type Stop struct {
	Position float64
	Color    colormath.RGB
}

// Gradient is an immutable set of stops. Build with New.
type Gradient struct {
	stops []Stop
	path  colormath.HuePath
}

// New builds a gradient from at least two stops. Positions must lie in
// [0,1]; stops are sorted by position, and the first and last stops anchor
// the ends of the sampling range.
func New(path colormath.HuePath, stops ...Stop) (*Gradient, error) {
	if len(stops) < 2 {
		return nil, fmt.Errorf("gradient: need at least 2 stops, got %d", len(stops))
	}
	sorted := make([]Stop, len(stops))
	copy(sorted, stops)
	for _, s := range sorted {
		if s.Position < 0 || s.Position > 1 {
			return nil, fmt.Errorf("gradient: stop position %v outside [0,1]", s.Position)
		}
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Position < sorted[j].Position
	})
	return &Gradient{stops: sorted, path: path}, nil
}

// At returns the gradient color at position t. Positions outside the stop
// range clamp to the nearest end stop.
func (g *Gradient) At(t float64) colormath.RGB {
	first, last := g.stops[0], g.stops[len(g.stops)-1]
	if t <= first.Position {
		return first.Color
	}
	if t >= last.Position {
		return last.Color
	}

	// Find the stop pair surrounding t.
	hi := sort.Search(len(g.stops), func(i int) bool {
		return g.stops[i].Position >= t
	})
	a, b := g.stops[hi-1], g.stops[hi]

	span := b.Position - a.Position
	if span <= 0 {
		return b.Color
	}
	return colormath.Fade(a.Color, b.Color, (t-a.Position)/span, g.path)
}

// Samples returns n evenly spaced colors across [0,1], endpoints included.
// n below 2 returns the end stops.
func (g *Gradient) Samples(n int) []colormath.RGB {
	if n < 2 {
		return []colormath.RGB{g.stops[0].Color, g.stops[len(g.stops)-1].Color}
	}
	out := make([]colormath.RGB, n)
	for i := range out {
		out[i] = g.At(float64(i) / float64(n-1))
	}
	return out
}
