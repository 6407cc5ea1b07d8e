package render

import (
	"math"

	"github.com/gogpu/gg"

	"stitch-studio/internal/scene"
	"stitch-studio/pkg/geometry"
)

// DragPreview is the rubber band for an in-progress drag-to-create gesture,
// in design millimeters.
type DragPreview struct {
	Tool    scene.DragShape
	Start   geometry.Point2D
	Current geometry.Point2D
}

// PenPreview is the live pen path: committed points plus the floating cursor
// segment. CloseHint is set when the next click would close the path.
type PenPreview struct {
	Points    []geometry.Point2D
	Cursor    geometry.Point2D
	HasCursor bool
	CloseHint bool
}

// drawDragPreview paints the rubber-band outline of the shape being dragged
// out, dashed for rectangles and solid for ellipses.
func drawDragPreview(dc *gg.Context, p DragPreview, zoom float64, style Style) {
	minX := math.Min(p.Start.X, p.Current.X) * MMToPx
	minY := math.Min(p.Start.Y, p.Current.Y) * MMToPx
	w := math.Abs(p.Current.X-p.Start.X) * MMToPx
	h := math.Abs(p.Current.Y-p.Start.Y) * MMToPx
	if w == 0 && h == 0 {
		return
	}

	dc.SetColor(style.DragPreview.Color())
	dc.SetLineWidth(1.5 / zoom)
	if p.Tool == scene.DragEllipse {
		// The backend's dash flattening overruns on cubic segments, so the
		// ellipse band is stroked solid.
		dc.DrawEllipse(minX+w/2, minY+h/2, w/2, h/2)
		_ = dc.Stroke()
		return
	}
	dc.SetDash(style.DashPx/zoom, style.DashPx/zoom)
	dc.DrawRectangle(minX, minY, w, h)
	_ = dc.Stroke()
	dc.ClearDash()
}

// drawPenPreview paints the committed polyline, the rubber segment to the
// cursor, anchor dots, and the close affordance on the first point.
func drawPenPreview(dc *gg.Context, p PenPreview, zoom float64, style Style) {
	if len(p.Points) == 0 {
		return
	}

	dc.SetColor(style.PenLine.Color())
	dc.SetLineWidth(1.5 / zoom)
	dc.MoveTo(p.Points[0].X*MMToPx, p.Points[0].Y*MMToPx)
	for _, pt := range p.Points[1:] {
		dc.LineTo(pt.X*MMToPx, pt.Y*MMToPx)
	}
	if p.HasCursor {
		dc.LineTo(p.Cursor.X*MMToPx, p.Cursor.Y*MMToPx)
	}
	_ = dc.Stroke()

	r := style.PenPointPx / zoom
	for _, pt := range p.Points {
		dc.SetColor(style.PenPoint.Color())
		dc.DrawCircle(pt.X*MMToPx, pt.Y*MMToPx, r)
		_ = dc.Fill()
	}

	if p.CloseHint {
		first := p.Points[0]
		dc.SetColor(style.PenClose.Color())
		dc.SetLineWidth(1.5 / zoom)
		dc.DrawCircle(first.X*MMToPx, first.Y*MMToPx, 2*r)
		_ = dc.Stroke()
	}
}

// drawStitchOverlay paints one precomputed stitch run as a polyline with
// optional per-stitch dots.
func drawStitchOverlay(dc *gg.Context, overlay scene.StitchOverlay, zoom float64, style Style) {
	if len(overlay.Points) == 0 {
		return
	}

	col := toRGBA(overlay.Color)
	dc.SetColor(col.Color())
	if len(overlay.Points) > 1 {
		dc.SetLineWidth(1.5 / zoom)
		dc.MoveTo(overlay.Points[0].X*MMToPx, overlay.Points[0].Y*MMToPx)
		for _, pt := range overlay.Points[1:] {
			dc.LineTo(pt.X*MMToPx, pt.Y*MMToPx)
		}
		_ = dc.Stroke()
	}

	if overlay.ShowDots {
		r := style.StitchDotPx / zoom
		for _, pt := range overlay.Points {
			dc.DrawCircle(pt.X*MMToPx, pt.Y*MMToPx, r)
			_ = dc.Fill()
		}
	}
}
