package scene

import "stitch-studio/pkg/geometry"

// PathOp identifies the kind of a path command.
type PathOp int

const (
	OpMoveTo PathOp = iota
	OpLineTo
	OpCubicTo
	OpQuadTo
	OpClose
)

// PathCommand is a single command in a vector path. Which point fields are
// meaningful depends on Op: MoveTo/LineTo use End only, CubicTo uses C1, C2
// and End, QuadTo uses C1 (the control point) and End, Close uses none.
type PathCommand struct {
	Op     PathOp
	C1, C2 geometry.Point2D
	End    geometry.Point2D
}

// MoveTo returns a pen-up move command.
func MoveTo(p geometry.Point2D) PathCommand {
	return PathCommand{Op: OpMoveTo, End: p}
}

// LineTo returns a straight line command.
func LineTo(p geometry.Point2D) PathCommand {
	return PathCommand{Op: OpLineTo, End: p}
}

// CubicTo returns a cubic bezier command with control points c1 and c2.
func CubicTo(c1, c2, end geometry.Point2D) PathCommand {
	return PathCommand{Op: OpCubicTo, C1: c1, C2: c2, End: end}
}

// QuadTo returns a quadratic bezier command with control point ctrl.
func QuadTo(ctrl, end geometry.Point2D) PathCommand {
	return PathCommand{Op: OpQuadTo, C1: ctrl, End: end}
}

// Close returns a close-subpath command.
func Close() PathCommand {
	return PathCommand{Op: OpClose}
}

// VectorPath is an ordered sequence of path commands in design millimeters.
// A path may be open (a polyline) or closed (a loop).
type VectorPath struct {
	Commands []PathCommand
	Closed   bool
}

// Polyline builds an open or closed path through the given points in order.
func Polyline(points []geometry.Point2D, closed bool) VectorPath {
	var p VectorPath
	for i, pt := range points {
		if i == 0 {
			p.Commands = append(p.Commands, MoveTo(pt))
		} else {
			p.Commands = append(p.Commands, LineTo(pt))
		}
	}
	if closed && len(points) >= 3 {
		p.Commands = append(p.Commands, Close())
		p.Closed = true
	}
	return p
}

// IsEmpty reports whether the path contains no commands.
func (p VectorPath) IsEmpty() bool {
	return len(p.Commands) == 0
}

// AnchorPoints returns every concrete on-curve point of the path: MoveTo and
// LineTo targets and curve endpoints. Control points are excluded, so the
// bounding box of the result may be loose for paths with curved segments.
// Close contributes nothing.
func (p VectorPath) AnchorPoints() []geometry.Point2D {
	points := make([]geometry.Point2D, 0, len(p.Commands))
	for _, cmd := range p.Commands {
		switch cmd.Op {
		case OpMoveTo, OpLineTo, OpCubicTo, OpQuadTo:
			points = append(points, cmd.End)
		case OpClose:
			// No point of its own.
		}
	}
	return points
}
