package scene

import (
	"math"

	"stitch-studio/pkg/geometry"
)

// ShapeData is the closed set of geometric shape variants a node can carry.
// The four implementations are PathShape, RectShape, EllipseShape and
// PolygonShape; renderers dispatch with an exhaustive type switch.
type ShapeData interface {
	isShape()

	// LocalPoints returns the shape's characteristic extremal points in
	// local millimeters, used for bounds computation and hit testing.
	LocalPoints() []geometry.Point2D
}

// PathShape is a freeform vector path.
type PathShape struct {
	Path VectorPath
}

// RectShape is a rectangle with its origin at the top-left corner and an
// optional corner radius.
type RectShape struct {
	Width        float64
	Height       float64
	CornerRadius float64
}

// EllipseShape is an ellipse centered at the local origin.
type EllipseShape struct {
	RX float64
	RY float64
}

// PolygonShape is a regular polygon with N sides inscribed in a circle of
// the given radius, centered at the local origin.
type PolygonShape struct {
	Sides  int
	Radius float64
}

func (PathShape) isShape()    {}
func (RectShape) isShape()    {}
func (EllipseShape) isShape() {}
func (PolygonShape) isShape() {}

// LocalPoints returns the path's concrete anchor points.
func (s PathShape) LocalPoints() []geometry.Point2D {
	return s.Path.AnchorPoints()
}

// LocalPoints returns the rectangle's four corners.
func (s RectShape) LocalPoints() []geometry.Point2D {
	return []geometry.Point2D{
		{X: 0, Y: 0},
		{X: s.Width, Y: 0},
		{X: s.Width, Y: s.Height},
		{X: 0, Y: s.Height},
	}
}

// LocalPoints returns the ellipse's four axis-extent points. This is an
/// approximation: it ignores rotation in the world transform, so the box of a
// rotated ellipse under-estimates the true envelope.
func (s EllipseShape) LocalPoints() []geometry.Point2D {
	return []geometry.Point2D{
		{X: s.RX, Y: 0},
		{X: -s.RX, Y: 0},
		{X: 0, Y: s.RY},
		{X: 0, Y: -s.RY},
	}
}

// LocalPoints returns every polygon vertex, first vertex at the top.
func (s PolygonShape) LocalPoints() []geometry.Point2D {
	return geometry.RegularPolygonVertices(s.Sides, s.Radius)
}

// ClampedCornerRadius returns the corner radius limited to half of the
// rectangle's width and height, and never negative.
func (s RectShape) ClampedCornerRadius() float64 {
	r := math.Min(s.CornerRadius, math.Min(s.Width*0.5, s.Height*0.5))
	return math.Max(r, 0)
}
