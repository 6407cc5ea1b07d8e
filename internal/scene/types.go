package scene

import (
	"image/color"

	"stitch-studio/pkg/geometry"
)

// Color is an 8-bit RGBA color; A == 255 is fully opaque.
type Color struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
	A uint8 `json:"a"`
}

// RGB returns a fully opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// NRGBA converts to the standard library's non-premultiplied color type.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// FromNRGBA converts from the standard library's non-premultiplied color.
func FromNRGBA(c color.NRGBA) Color {
	return Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

// StitchOverlay is a precomputed machine stitch path to display over the
// design. The points are read-only; this core never edits stitch geometry.
type StitchOverlay struct {
	Points   []geometry.Point2D
	Color    Color
	ShowDots bool
}
