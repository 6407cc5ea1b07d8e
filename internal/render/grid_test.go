package render

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestGridSpacingValues(t *testing.T) {
	cases := []struct {
		zoom float64
		want float64
	}{
		{1, 5},      // raw 5mm snaps to 5
		{2, 2.5},    // raw 2.5mm
		{4, 1},      // raw 1.25mm snaps down to 1
		{0.5, 10},   // raw 10mm
		{0.1, 50},   // raw 50mm snaps to 5 x 10^1
		{0.04, 100}, // raw 125mm snaps to 10^2
		{10, 0.5},   // raw 0.5mm
		{50, 0.1},   // raw 0.1mm
	}
	for _, tc := range cases {
		got := GridSpacing(tc.zoom, 50)
		if !scalar.EqualWithinAbs(got, tc.want, eps) {
			t.Errorf("GridSpacing(zoom=%g) = %g, want %g", tc.zoom, got, tc.want)
		}
	}
}

func TestGridSpacingIsNiceDecade(t *testing.T) {
	for zoom := MinZoom; zoom <= MaxZoom; zoom *= 1.17 {
		spacing := GridSpacing(zoom, 50)
		if spacing <= 0 {
			t.Fatalf("non-positive spacing %g at zoom %g", spacing, zoom)
		}
		power := math.Floor(math.Log10(spacing))
		normalized := spacing / math.Pow(10, power)
		ok := false
		for _, nice := range []float64{1, 2.5, 5, 10} {
			if scalar.EqualWithinAbs(normalized, nice, eps) {
				ok = true
			}
		}
		if !ok {
			t.Errorf("spacing %g at zoom %g is not a nice decade value", spacing, zoom)
		}
	}
}

func TestGridSpacingMonotone(t *testing.T) {
	prev := math.Inf(1)
	for zoom := MinZoom; zoom <= MaxZoom; zoom *= 1.3 {
		spacing := GridSpacing(zoom, 50)
		if spacing > prev {
			t.Fatalf("spacing grew from %g to %g as zoom increased to %g", prev, spacing, zoom)
		}
		prev = spacing
	}
}

func TestGridSpacingOnScreenBand(t *testing.T) {
	// The snapped spacing must stay near the 50px target on screen.
	for zoom := MinZoom; zoom <= MaxZoom; zoom *= 1.5 {
		px := GridSpacing(zoom, 50) * zoom * MMToPx
		if px < 25 || px > 110 {
			t.Errorf("on-screen spacing %.1fpx at zoom %g is outside a usable band", px, zoom)
		}
	}
}

func TestIsMajorLine(t *testing.T) {
	const spacing = 2.5
	const major = spacing * majorEvery

	cases := []struct {
		pos  float64
		want bool
	}{
		{0, true},
		{12.5, true},
		{-12.5, true},
		{25, true},
		{2.5, false},
		{10, false},
		{12.5 + 0.001, true}, // inside the drift tolerance
		{12.5 + 0.1, false},
	}
	for _, tc := range cases {
		if got := isMajorLine(tc.pos, major, spacing); got != tc.want {
			t.Errorf("isMajorLine(%g) = %v, want %v", tc.pos, got, tc.want)
		}
	}
}
