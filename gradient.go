package uifx

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gogpu/uifx/internal/color"
)

// GradientMode selects how a gradient blends between neighboring stops.
type GradientMode int

const (
	// GradientBlend interpolates component-wise between stops (default).
	GradientBlend GradientMode = iota
	// GradientFixed holds each stop's color until the next stop: t takes
	// the color of the first stop whose offset is >= t.
	GradientFixed
	// GradientPerceptual interpolates RGB in linear light. Stop colors are
	// treated as sRGB-encoded.
	GradientPerceptual
)

// String returns the configuration name of the mode.
func (m GradientMode) String() string {
	switch m {
	case GradientBlend:
		return "blend"
	case GradientFixed:
		return "fixed"
	case GradientPerceptual:
		return "perceptual"
	default:
		return fmt.Sprintf("GradientMode(%d)", int(m))
	}
}

// ParseGradientMode parses a mode name as produced by String.
func ParseGradientMode(s string) (GradientMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "blend":
		return GradientBlend, nil
	case "fixed":
		return GradientFixed, nil
	case "perceptual", "perceptual-blend", "perceptual_blend":
		return GradientPerceptual, nil
	}
	return GradientBlend, fmt.Errorf("uifx: unknown gradient mode %q", s)
}

// ColorStop represents a color at a specific position in a gradient.
type ColorStop struct {
	Offset float32 // Position in gradient, 0.0 to 1.0
	Color  RGBA    // Color at this position
}

// Gradient is a piecewise color ramp over [0, 1].
//
// The zero value has no stops and evaluates to Transparent everywhere.
type Gradient struct {
	Stops []ColorStop
	Mode  GradientMode
}

// NewGradient creates a blending gradient from the given stops.
// The stops are copied and sorted by offset; stops with equal offsets keep
// their relative order.
func NewGradient(stops ...ColorStop) Gradient {
	return Gradient{Stops: sortStops(stops)}
}

// sortStops returns a sorted copy of stops.
func sortStops(stops []ColorStop) []ColorStop {
	if len(stops) == 0 {
		return nil
	}
	sorted := make([]ColorStop, len(stops))
	copy(sorted, stops)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Offset < sorted[j].Offset
	})
	return sorted
}

// sorted reports whether g.Stops is already ordered by offset.
func (g Gradient) sorted() bool {
	for i := 1; i < len(g.Stops); i++ {
		if g.Stops[i].Offset < g.Stops[i-1].Offset {
			return false
		}
	}
	return true
}

// Evaluate returns the gradient color at t. Values of t outside [0, 1] are
// clamped; positions before the first stop or after the last stop take the
// nearest stop's color.
//
// Stops that are not ordered by offset are sorted into a temporary copy on
// each call; build gradients with NewGradient to avoid that.
func (g Gradient) Evaluate(t float32) RGBA {
	stops := g.Stops
	switch len(stops) {
	case 0:
		return Transparent
	case 1:
		return stops[0].Color
	}
	if !g.sorted() {
		stops = sortStops(stops)
	}

	t = clamp01(t)

	idx := sort.Search(len(stops), func(i int) bool {
		return stops[i].Offset >= t
	})
	if idx == 0 {
		return stops[0].Color
	}
	if idx >= len(stops) {
		return stops[len(stops)-1].Color
	}

	lo, hi := stops[idx-1], stops[idx]
	if g.Mode == GradientFixed {
		return hi.Color
	}
	if hi.Offset == lo.Offset {
		return lo.Color
	}

	local := (t - lo.Offset) / (hi.Offset - lo.Offset)
	if g.Mode == GradientPerceptual {
		c := color.MixPerceptual(
			color.ColorF32{R: lo.Color.R, G: lo.Color.G, B: lo.Color.B, A: lo.Color.A},
			color.ColorF32{R: hi.Color.R, G: hi.Color.G, B: hi.Color.B, A: hi.Color.A},
			local,
		)
		return RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
	}
	return lo.Color.Lerp(hi.Color, local)
}

// clamp01 clamps a value to [0, 1] range.
func clamp01(x float32) float32 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// InverseLerp returns where v sits between a and b as a fraction clamped to
// [0, 1]. It returns 0 when a == b.
func InverseLerp(a, b, v float32) float32 {
	if a == b {
		return 0
	}
	return clamp01((v - a) / (b - a))
}
