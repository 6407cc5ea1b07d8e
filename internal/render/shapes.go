package render

import (
	"math"

	"github.com/gogpu/gg"

	"stitch-studio/internal/scene"
	"stitch-studio/pkg/geometry"
)

// ggMatrix converts a scene affine transform to the drawing context layout.
// Translation is authored in millimeters and scaled to canvas units here.
func ggMatrix(t geometry.AffineTransform) gg.Matrix {
	return gg.Matrix{
		A: t.A, B: t.B, C: t.TX * MMToPx,
		D: t.C, E: t.D, F: t.TY * MMToPx,
	}
}

// drawItem renders one shape item. The context must carry the camera
// transform; the item's world transform is pushed and popped around the
// shape.
func drawItem(dc *gg.Context, item scene.RenderItem, zoom float64, style Style) {
	kind, ok := item.Kind.(scene.ShapeKind)
	if !ok {
		return
	}

	dc.Push()
	dc.Transform(ggMatrix(item.WorldTransform))

	switch shape := kind.Shape.(type) {
	case scene.PathShape:
		drawPathShape(dc, shape, kind, zoom, style)
	case scene.RectShape:
		buildRect(dc, shape)
		paintClosed(dc, kind, zoom, style)
	case scene.EllipseShape:
		dc.DrawEllipse(0, 0, shape.RX*MMToPx, shape.RY*MMToPx)
		paintClosed(dc, kind, zoom, style)
	case scene.PolygonShape:
		sides := shape.Sides
		if sides < 3 {
			sides = 3
		}
		dc.DrawRegularPolygon(sides, 0, 0, shape.Radius*MMToPx, -math.Pi/2)
		paintClosed(dc, kind, zoom, style)
	}

	dc.Pop()
}

func buildRect(dc *gg.Context, shape scene.RectShape) {
	w := shape.Width * MMToPx
	h := shape.Height * MMToPx
	if r := shape.ClampedCornerRadius() * MMToPx; r > 0 {
		dc.DrawRoundedRectangle(0, 0, w, h, r)
	} else {
		dc.DrawRectangle(0, 0, w, h)
	}
}

// drawPathShape replays the path commands and applies the open-path styling
// rules: open paths get their fill at a faint preview alpha, and closed
// paths without a fill borrow a faint one from the stroke so they never
// disappear entirely.
func drawPathShape(dc *gg.Context, shape scene.PathShape, kind scene.ShapeKind, zoom float64, style Style) {
	if shape.Path.IsEmpty() {
		return
	}
	buildPath(dc, shape.Path)

	// The stroke fallback keys off the declared fill, not the synthesized
	// one, so an unstyled closed path still gets its default outline.
	fill, hasFill := pathFill(kind, shape.Path.Closed, style)
	stroke, width, hasStroke := strokeFor(kind, kind.Fill != nil, zoom, style)

	paint(dc, fill, hasFill, stroke, width, hasStroke)
}

// paintClosed fills and strokes an always-closed primitive (rect, ellipse,
// polygon). No open-path alpha logic applies.
func paintClosed(dc *gg.Context, kind scene.ShapeKind, zoom float64, style Style) {
	var fill gg.RGBA
	hasFill := kind.Fill != nil
	if hasFill {
		fill = toRGBA(*kind.Fill)
	}
	stroke, width, hasStroke := strokeFor(kind, hasFill, zoom, style)
	paint(dc, fill, hasFill, stroke, width, hasStroke)
}

func paint(dc *gg.Context, fill gg.RGBA, hasFill bool, stroke gg.RGBA, width float64, hasStroke bool) {
	if hasFill {
		dc.SetColor(fill.Color())
		if hasStroke {
			_ = dc.FillPreserve()
		} else {
			_ = dc.Fill()
		}
	}
	if hasStroke {
		dc.SetColor(stroke.Color())
		dc.SetLineWidth(width)
		_ = dc.Stroke()
	}
}

// pathFill resolves the fill color for a path shape, or none.
func pathFill(kind scene.ShapeKind, closed bool, style Style) (gg.RGBA, bool) {
	if kind.Fill != nil {
		c := toRGBA(*kind.Fill)
		if !closed {
			c.A *= style.OpenFillAlpha
		}
		return c, true
	}
	if closed {
		if kind.Stroke != nil {
			c := toRGBA(*kind.Stroke)
			c.A *= style.OpenFillAlpha
			return c, true
		}
		return style.DefaultFill, true
	}
	return gg.RGBA{}, false
}

// strokeFor resolves the stroke color and line width. When the item has
// neither fill nor stroke a default neutral stroke at constant on-screen
// width keeps it visible.
func strokeFor(kind scene.ShapeKind, hasFill bool, zoom float64, style Style) (gg.RGBA, float64, bool) {
	if kind.Stroke != nil {
		return toRGBA(*kind.Stroke), kind.StrokeWidth * MMToPx / zoom, true
	}
	if !hasFill {
		return style.DefaultStroke, style.DefaultStrokePx / zoom, true
	}
	return gg.RGBA{}, 0, false
}

// buildPath replays path commands into the context in canvas units.
func buildPath(dc *gg.Context, path scene.VectorPath) {
	closedExplicitly := false
	for _, cmd := range path.Commands {
		switch cmd.Op {
		case scene.OpMoveTo:
			dc.MoveTo(cmd.End.X*MMToPx, cmd.End.Y*MMToPx)
		case scene.OpLineTo:
			dc.LineTo(cmd.End.X*MMToPx, cmd.End.Y*MMToPx)
		case scene.OpCubicTo:
			dc.CubicTo(
				cmd.C1.X*MMToPx, cmd.C1.Y*MMToPx,
				cmd.C2.X*MMToPx, cmd.C2.Y*MMToPx,
				cmd.End.X*MMToPx, cmd.End.Y*MMToPx,
			)
		case scene.OpQuadTo:
			dc.QuadraticTo(
				cmd.C1.X*MMToPx, cmd.C1.Y*MMToPx,
				cmd.End.X*MMToPx, cmd.End.Y*MMToPx,
			)
		case scene.OpClose:
			dc.ClosePath()
			closedExplicitly = true
		}
	}
	if path.Closed && !closedExplicitly {
		dc.ClosePath()
	}
}

// toRGBA widens an 8-bit scene color to the drawing surface's float color.
func toRGBA(c scene.Color) gg.RGBA {
	return gg.RGBA{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
		A: float64(c.A) / 255,
	}
}
