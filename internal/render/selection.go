package render

import (
	"github.com/gogpu/gg"

	"stitch-studio/internal/scene"
	"stitch-studio/pkg/geometry"
)

// SelectionBounds returns a shape item's axis-aligned bounding box in canvas
// units, before padding. The box is built from the shape's extremal local
// points pushed through its world transform; for ellipses those are the four
// axis extents, so a rotated ellipse gets a slightly loose box. Returns false
// for items with no concrete points.
func SelectionBounds(item scene.RenderItem) (geometry.Rect, bool) {
	kind, ok := item.Kind.(scene.ShapeKind)
	if !ok {
		return geometry.Rect{}, false
	}
	box, ok := scene.WorldBounds(kind.Shape, item.WorldTransform)
	if !ok {
		return geometry.Rect{}, false
	}
	return geometry.Rect{
		X:      box.X * MMToPx,
		Y:      box.Y * MMToPx,
		Width:  box.Width * MMToPx,
		Height: box.Height * MMToPx,
	}, true
}

// drawSelection paints the dashed selection outline and the eight resize
// handles around an item. The context must carry the camera transform only;
// padding, dash length and handle size stay constant on screen.
func drawSelection(dc *gg.Context, item scene.RenderItem, zoom float64, style Style) {
	box, ok := SelectionBounds(item)
	if !ok {
		return
	}
	box = box.Expand(style.SelectionPadPx / zoom)

	dc.SetColor(style.SelectionOutline.Color())
	dc.SetLineWidth(1.5 / zoom)
	dc.SetDash(style.DashPx/zoom, style.DashPx/zoom)
	dc.DrawRectangle(box.X, box.Y, box.Width, box.Height)
	_ = dc.Stroke()
	dc.ClearDash()

	half := style.HandleSizePx / zoom / 2
	for _, h := range handlePositions(box) {
		dc.SetColor(style.SelectionHandle.Color())
		dc.DrawRectangle(h.X-half, h.Y-half, 2*half, 2*half)
		_ = dc.FillPreserve()
		dc.SetColor(style.SelectionOutline.Color())
		dc.SetLineWidth(1.0 / zoom)
		_ = dc.Stroke()
	}
}

// handlePositions returns the four corners and four edge midpoints of a box.
func handlePositions(box geometry.Rect) []geometry.Point2D {
	midX := box.X + box.Width/2
	midY := box.Y + box.Height/2
	right := box.X + box.Width
	bottom := box.Y + box.Height
	return []geometry.Point2D{
		{X: box.X, Y: box.Y},
		{X: midX, Y: box.Y},
		{X: right, Y: box.Y},
		{X: right, Y: midY},
		{X: right, Y: bottom},
		{X: midX, Y: bottom},
		{X: box.X, Y: bottom},
		{X: box.X, Y: midY},
	}
}
