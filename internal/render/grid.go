package render

import (
	"math"

	"github.com/gogpu/gg"

	"stitch-studio/pkg/geometry"
)

// majorEvery is the minor-to-major grid line ratio.
const majorEvery = 5

// majorTolerance absorbs floating point drift when classifying a line as
// sitting on a major multiple.
const majorTolerance = 0.01

// GridSpacing returns the minor grid spacing in millimeters for a zoom
// level, targeting a constant on-screen spacing. The raw spacing is snapped
// to the nearest nice value of the form {1, 2.5, 5, 10} x 10^k.
func GridSpacing(zoom, targetPx float64) float64 {
	raw := targetPx / (zoom * MMToPx)

	power := math.Floor(math.Log10(raw))
	base := math.Pow(10, power)
	normalized := raw / base

	var nice float64
	switch {
	case normalized < 1.5:
		nice = 1
	case normalized < 3.5:
		nice = 2.5
	case normalized < 7.5:
		nice = 5
	default:
		nice = 10
	}
	return nice * base
}

// drawGrid paints minor and major grid lines plus the origin axes over the
// visible design area. The context must already carry the camera transform.
func drawGrid(dc *gg.Context, cam *Camera, viewW, viewH float64, style Style) {
	spacing := GridSpacing(cam.Zoom, style.GridTargetPx)
	major := spacing * majorEvery
	visible := cam.VisibleWorldRect(viewW, viewH)

	minorWidth := 1.0 / cam.Zoom
	majorWidth := 1.5 / cam.Zoom

	startX := math.Floor(visible.X/spacing) * spacing
	for x := startX; x <= visible.X+visible.Width; x += spacing {
		dc.SetLineWidth(minorWidth)
		if isMajorLine(x, major, spacing) {
			dc.SetColor(style.GridMajor.Color())
			dc.SetLineWidth(majorWidth)
		} else {
			dc.SetColor(style.GridMinor.Color())
		}
		dc.DrawLine(x*MMToPx, visible.Y*MMToPx, x*MMToPx, (visible.Y+visible.Height)*MMToPx)
		dc.Stroke()
	}

	startY := math.Floor(visible.Y/spacing) * spacing
	for y := startY; y <= visible.Y+visible.Height; y += spacing {
		dc.SetLineWidth(minorWidth)
		if isMajorLine(y, major, spacing) {
			dc.SetColor(style.GridMajor.Color())
			dc.SetLineWidth(majorWidth)
		} else {
			dc.SetColor(style.GridMinor.Color())
		}
		dc.DrawLine(visible.X*MMToPx, y*MMToPx, (visible.X+visible.Width)*MMToPx, y*MMToPx)
		dc.Stroke()
	}

	drawAxes(dc, visible, cam.Zoom, style)
}

// isMajorLine reports whether pos sits on a multiple of the major spacing,
// within tolerance relative to the minor spacing.
func isMajorLine(pos, major, spacing float64) bool {
	rem := math.Abs(math.Mod(pos, major))
	return rem < majorTolerance*spacing || major-rem < majorTolerance*spacing
}

// drawAxes draws the x=0 and y=0 world axes when the viewport straddles
// them.
func drawAxes(dc *gg.Context, visible geometry.Rect, zoom float64, style Style) {
	width := 2.0 / zoom

	if visible.Y <= 0 && visible.Y+visible.Height >= 0 {
		dc.SetColor(style.AxisX.Color())
		dc.SetLineWidth(width)
		dc.DrawLine(visible.X*MMToPx, 0, (visible.X+visible.Width)*MMToPx, 0)
		dc.Stroke()
	}
	if visible.X <= 0 && visible.X+visible.Width >= 0 {
		dc.SetColor(style.AxisY.Color())
		dc.SetLineWidth(width)
		dc.DrawLine(0, visible.Y*MMToPx, 0, (visible.Y+visible.Height)*MMToPx)
		dc.Stroke()
	}
}
