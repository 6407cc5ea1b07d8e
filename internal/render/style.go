// Package render draws a frame of the design canvas: grid, axes, scene
// shapes, selection chrome, interaction overlays and the HUD. It renders
// onto a gg context and never touches the scene model directly; everything
// it needs arrives in a Frame snapshot.
package render

import "github.com/gogpu/gg"

// MMToPx is the fixed design-space scale: one millimeter spans this many
// canvas units at zoom 1.
const MMToPx = 10.0

// Style is the immutable color and metric table for one renderer. All pixel
// metrics are on-screen values; the drawing code divides by zoom where a
// measure must stay constant under the camera transform.
type Style struct {
	Background gg.RGBA

	GridMinor    gg.RGBA
	GridMajor    gg.RGBA
	AxisX        gg.RGBA
	AxisY        gg.RGBA
	GridTargetPx float64

	DefaultFill     gg.RGBA
	DefaultStroke   gg.RGBA
	DefaultStrokePx float64
	OpenFillAlpha   float64

	SelectionOutline gg.RGBA
	SelectionHandle  gg.RGBA
	SelectionPadPx   float64
	HandleSizePx     float64
	DashPx           float64

	DragPreview gg.RGBA
	PenLine     gg.RGBA
	PenPoint    gg.RGBA
	PenClose    gg.RGBA
	PenPointPx  float64

	StitchDotPx float64

	HUDText gg.RGBA
	HUDBack gg.RGBA
	HUDPt   float64
}

// DefaultStyle returns the stock studio palette: warm paper background,
// muted grid, teal selection chrome.
func DefaultStyle() Style {
	return Style{
		Background: gg.RGBA{R: 0.97, G: 0.96, B: 0.94, A: 1},

		GridMinor:    gg.RGBA{R: 0.88, G: 0.87, B: 0.85, A: 1},
		GridMajor:    gg.RGBA{R: 0.78, G: 0.77, B: 0.74, A: 1},
		AxisX:        gg.RGBA{R: 0.75, G: 0.35, B: 0.35, A: 1},
		AxisY:        gg.RGBA{R: 0.33, G: 0.55, B: 0.35, A: 1},
		GridTargetPx: 50,

		DefaultFill:     gg.RGBA{R: 0.6, G: 0.6, B: 0.62, A: 0.35},
		DefaultStroke:   gg.RGBA{R: 0.25, G: 0.25, B: 0.27, A: 1},
		DefaultStrokePx: 1.5,
		OpenFillAlpha:   0.25,

		SelectionOutline: gg.RGBA{R: 0.1, G: 0.55, B: 0.65, A: 1},
		SelectionHandle:  gg.RGBA{R: 1, G: 1, B: 1, A: 1},
		SelectionPadPx:   4,
		HandleSizePx:     8,
		DashPx:           5,

		DragPreview: gg.RGBA{R: 0.1, G: 0.55, B: 0.65, A: 0.9},
		PenLine:     gg.RGBA{R: 0.2, G: 0.4, B: 0.7, A: 1},
		PenPoint:    gg.RGBA{R: 0.2, G: 0.4, B: 0.7, A: 1},
		PenClose:    gg.RGBA{R: 0.85, G: 0.45, B: 0.1, A: 1},
		PenPointPx:  4,

		StitchDotPx: 3,

		HUDText: gg.RGBA{R: 0.15, G: 0.15, B: 0.15, A: 1},
		HUDBack: gg.RGBA{R: 1, G: 1, B: 1, A: 0.75},
		HUDPt:   13,
	}
}
