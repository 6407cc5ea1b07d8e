// Package colorutil provides shared color utilities for the design studio.
package colorutil

import (
	"fmt"
	"image/color"
)

// Common thread colors used throughout the application, loosely matched to
// stock machine embroidery thread shades.
var (
	ThreadBlack  = color.NRGBA{R: 0x1c, G: 0x1c, B: 0x1e, A: 255}
	ThreadWhite  = color.NRGBA{R: 0xf4, G: 0xf2, B: 0xee, A: 255}
	ThreadRose   = color.NRGBA{R: 0xc2, G: 0x4b, B: 0x6e, A: 255}
	ThreadGold   = color.NRGBA{R: 0xe8, G: 0xb9, B: 0x31, A: 255}
	ThreadLeaf   = color.NRGBA{R: 0x2e, G: 0x6e, B: 0x4e, A: 255}
	ThreadDenim  = color.NRGBA{R: 0x4a, G: 0x7b, B: 0xb5, A: 255}
	ThreadWalnut = color.NRGBA{R: 0x8a, G: 0x6d, B: 0x3b, A: 255}
	ThreadBerry  = color.NRGBA{R: 0x8c, G: 0x2f, B: 0x4a, A: 255}
)

// ParseHex parses a "#rrggbb" or "rrggbb" color string.
func ParseHex(s string) (color.NRGBA, error) {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	if len(s) != 6 {
		return color.NRGBA{}, fmt.Errorf("colorutil: invalid hex color %q", s)
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "%02x%02x%02x", &r, &g, &b); err != nil {
		return color.NRGBA{}, fmt.Errorf("colorutil: invalid hex color %q", s)
	}
	return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
}

// Mix linearly blends two colors; t == 0 yields a, t == 1 yields b.
func Mix(a, b color.NRGBA, t float64) color.NRGBA {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	lerp := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t + 0.5)
	}
	return color.NRGBA{
		R: lerp(a.R, b.R),
		G: lerp(a.G, b.G),
		B: lerp(a.B, b.B),
		A: lerp(a.A, b.A),
	}
}
