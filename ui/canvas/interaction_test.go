package canvas

import (
	"testing"

	"gonum.org/v1/gonum/floats/scalar"

	"stitch-studio/internal/render"
	"stitch-studio/internal/scene"
	"stitch-studio/pkg/geometry"
)

// commandRecorder captures controller output without a real scene behind it.
type commandRecorder struct {
	drags []struct {
		start, end geometry.Point2D
		shape      scene.DragShape
	}
	paths []struct {
		points []geometry.Point2D
		closed bool
	}
	clicks []struct {
		world geometry.Point2D
		shift bool
	}
}

func (r *commandRecorder) CreateDraggedShape(start, end geometry.Point2D, shape scene.DragShape) scene.NodeID {
	r.drags = append(r.drags, struct {
		start, end geometry.Point2D
		shape      scene.DragShape
	}{start, end, shape})
	return scene.NodeID(len(r.drags))
}

func (r *commandRecorder) CreatePenPath(points []geometry.Point2D, closed bool) scene.NodeID {
	r.paths = append(r.paths, struct {
		points []geometry.Point2D
		closed bool
	}{points, closed})
	return scene.NodeID(len(r.paths))
}

func (r *commandRecorder) HandleClick(world geometry.Point2D, shift bool) {
	r.clicks = append(r.clicks, struct {
		world geometry.Point2D
		shift bool
	}{world, shift})
}

// newTestController centers the camera on the origin with an 800x600 surface,
// so screen (400, 300) is world (0, 0) and 10px is 1mm at zoom 1.
func newTestController(rec *commandRecorder) *Controller {
	c := NewController(rec)
	c.SetViewport(800, 600)
	return c
}

// worldToScreen inverts the test controller's fixed mapping.
func worldToScreen(c *Controller, p geometry.Point2D) (float64, float64) {
	return c.Camera().WorldToScreen(p, 800, 600)
}

func TestSelectClickForwardsShift(t *testing.T) {
	rec := &commandRecorder{}
	c := newTestController(rec)

	c.PointerDown(400, 300, ButtonPrimary, false, false)
	c.PointerUp(400, 300)
	c.PointerDown(450, 300, ButtonPrimary, false, true)
	c.PointerUp(450, 300)

	if len(rec.clicks) != 2 {
		t.Fatalf("got %d clicks, want 2", len(rec.clicks))
	}
	if rec.clicks[0].shift || !rec.clicks[1].shift {
		t.Errorf("shift flags %v/%v, want false/true", rec.clicks[0].shift, rec.clicks[1].shift)
	}
	if !scalar.EqualWithinAbs(rec.clicks[0].world.X, 0, 1e-9) || !scalar.EqualWithinAbs(rec.clicks[0].world.Y, 0, 1e-9) {
		t.Errorf("first click at %+v, want origin", rec.clicks[0].world)
	}
	if !scalar.EqualWithinAbs(rec.clicks[1].world.X, 5, 1e-9) {
		t.Errorf("second click X %g, want 5mm", rec.clicks[1].world.X)
	}
}

func TestShapeDragEmitsAboveThreshold(t *testing.T) {
	rec := &commandRecorder{}
	c := newTestController(rec)
	c.SetTool(ToolRect)

	c.PointerDown(400, 300, ButtonPrimary, false, false)
	if c.Mode() != ModeShapeDragging {
		t.Fatalf("mode %v, want shape dragging", c.Mode())
	}
	c.PointerMove(450, 330)
	if p := c.DragPreview(); p == nil {
		t.Fatal("no drag preview during drag")
	}
	c.PointerUp(450, 330)

	if len(rec.drags) != 1 {
		t.Fatalf("got %d drags, want 1", len(rec.drags))
	}
	d := rec.drags[0]
	if d.shape != scene.DragRect {
		t.Errorf("shape %v, want rect", d.shape)
	}
	if !scalar.EqualWithinAbs(d.end.X, 5, 1e-9) || !scalar.EqualWithinAbs(d.end.Y, 3, 1e-9) {
		t.Errorf("drag end %+v, want (5, 3)mm", d.end)
	}
	if c.Mode() != ModeIdle {
		t.Errorf("mode %v after release, want idle", c.Mode())
	}
}

func TestShapeDragBelowThresholdDiscarded(t *testing.T) {
	rec := &commandRecorder{}
	c := newTestController(rec)
	c.SetTool(ToolEllipse)

	// 9px is 0.9mm at zoom 1, under the threshold on both axes.
	c.PointerDown(400, 300, ButtonPrimary, false, false)
	c.PointerUp(409, 309)

	if len(rec.drags) != 0 {
		t.Fatalf("sub-threshold drag emitted a shape")
	}
	if c.Mode() != ModeIdle {
		t.Errorf("mode %v after discarded drag, want idle", c.Mode())
	}

	// One axis over the threshold is enough.
	c.PointerDown(400, 300, ButtonPrimary, false, false)
	c.PointerUp(415, 302)
	if len(rec.drags) != 1 {
		t.Fatal("drag over the threshold on one axis was discarded")
	}
	if rec.drags[0].shape != scene.DragEllipse {
		t.Errorf("shape %v, want ellipse", rec.drags[0].shape)
	}
}

func TestPenClosesOnFirstPoint(t *testing.T) {
	rec := &commandRecorder{}
	c := newTestController(rec)
	c.SetTool(ToolPen)

	for _, p := range []geometry.Point2D{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}} {
		x, y := worldToScreen(c, p)
		c.PointerDown(x, y, ButtonPrimary, false, false)
		c.PointerUp(x, y)
	}
	if c.Mode() != ModePenDrawing || c.PenPointCount() != 3 {
		t.Fatalf("mode %v with %d points, want drawing with 3", c.Mode(), c.PenPointCount())
	}

	// Fourth click lands within PenCloseMM of the first point.
	x, y := worldToScreen(c, geometry.Point2D{X: 0.5, Y: 0.5})
	c.PointerDown(x, y, ButtonPrimary, false, false)
	c.PointerUp(x, y)

	if len(rec.paths) != 1 {
		t.Fatalf("got %d paths, want 1", len(rec.paths))
	}
	if !rec.paths[0].closed {
		t.Error("path is not closed")
	}
	if len(rec.paths[0].points) != 3 {
		t.Errorf("closed path has %d points, want 3", len(rec.paths[0].points))
	}
	if c.Mode() != ModeIdle || c.PenPointCount() != 0 {
		t.Errorf("pen state not reset: mode %v, %d points", c.Mode(), c.PenPointCount())
	}
}

func TestPenCloseNeedsThreePoints(t *testing.T) {
	rec := &commandRecorder{}
	c := newTestController(rec)
	c.SetTool(ToolPen)

	// Two points, then a click back on the first: appended, not closed.
	for _, p := range []geometry.Point2D{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 0.5, Y: 0}} {
		x, y := worldToScreen(c, p)
		c.PointerDown(x, y, ButtonPrimary, false, false)
		c.PointerUp(x, y)
	}
	if len(rec.paths) != 0 {
		t.Fatal("path closed with fewer than three distinct points")
	}
	if c.PenPointCount() != 3 {
		t.Errorf("%d pen points, want 3", c.PenPointCount())
	}
}

func TestFinishPathEmitsOpenPath(t *testing.T) {
	rec := &commandRecorder{}
	c := newTestController(rec)
	c.SetTool(ToolPen)

	for _, p := range []geometry.Point2D{{X: 0, Y: 0}, {X: 10, Y: 5}} {
		x, y := worldToScreen(c, p)
		c.PointerDown(x, y, ButtonPrimary, false, false)
		c.PointerUp(x, y)
	}
	c.FinishPath()

	if len(rec.paths) != 1 {
		t.Fatalf("got %d paths, want 1", len(rec.paths))
	}
	if rec.paths[0].closed {
		t.Error("finished path reported closed")
	}
	if c.PenPointCount() != 0 || c.Mode() != ModeIdle {
		t.Error("pen state not reset after finish")
	}
}

func TestFinishPathSinglePointDiscarded(t *testing.T) {
	rec := &commandRecorder{}
	c := newTestController(rec)
	c.SetTool(ToolPen)

	c.PointerDown(400, 300, ButtonPrimary, false, false)
	c.PointerUp(400, 300)
	c.FinishPath()

	if len(rec.paths) != 0 {
		t.Error("single-point path was emitted")
	}
	if c.PenPointCount() != 0 {
		t.Error("pen points not cleared")
	}
}

func TestCancelPathDiscards(t *testing.T) {
	rec := &commandRecorder{}
	c := newTestController(rec)
	c.SetTool(ToolPen)

	c.PointerDown(400, 300, ButtonPrimary, false, false)
	c.PointerUp(400, 300)
	c.PointerDown(500, 300, ButtonPrimary, false, false)
	c.PointerUp(500, 300)
	c.CancelPath()

	if len(rec.paths) != 0 || c.PenPointCount() != 0 || c.Mode() != ModeIdle {
		t.Error("cancel left pen state behind")
	}
}

func TestCtrlDragPansRegardlessOfTool(t *testing.T) {
	rec := &commandRecorder{}
	c := newTestController(rec)
	c.SetTool(ToolRect)

	c.PointerDown(400, 300, ButtonPrimary, true, false)
	if c.Mode() != ModePanning {
		t.Fatalf("mode %v, want panning", c.Mode())
	}
	c.PointerMove(500, 300)
	c.PointerUp(500, 300)

	if len(rec.drags) != 0 || len(rec.clicks) != 0 {
		t.Error("pan gesture emitted document commands")
	}
	// Dragging 100px right at zoom 1 moves the center 10mm left.
	if !scalar.EqualWithinAbs(c.Camera().CenterX, -10, 1e-9) {
		t.Errorf("center X %g, want -10", c.Camera().CenterX)
	}
}

func TestMiddleButtonPans(t *testing.T) {
	rec := &commandRecorder{}
	c := newTestController(rec)

	c.PointerDown(400, 300, ButtonMiddle, false, false)
	if c.Mode() != ModePanning {
		t.Fatalf("mode %v, want panning", c.Mode())
	}
	c.PointerUp(400, 300)
	if c.Mode() != ModeIdle {
		t.Errorf("mode %v after release, want idle", c.Mode())
	}
}

func TestWheelZoomSteps(t *testing.T) {
	rec := &commandRecorder{}
	c := newTestController(rec)

	c.WheelZoom(400, 300, 1)
	if !scalar.EqualWithinAbs(c.Camera().Zoom, render.ZoomStep, 1e-9) {
		t.Errorf("zoom %g after wheel in, want %g", c.Camera().Zoom, render.ZoomStep)
	}
	c.WheelZoom(400, 300, -1)
	if !scalar.EqualWithinAbs(c.Camera().Zoom, 1, 1e-9) {
		t.Errorf("zoom %g after wheel out, want 1", c.Camera().Zoom)
	}
}

func TestWheelZoomIgnoresZeroDelta(t *testing.T) {
	rec := &commandRecorder{}
	c := newTestController(rec)

	c.WheelZoom(400, 300, 0)
	if c.Camera().Zoom != 1 {
		t.Errorf("zoom %g after zero-delta scroll, want 1", c.Camera().Zoom)
	}
}

func TestWheelZoomClamps(t *testing.T) {
	rec := &commandRecorder{}
	c := newTestController(rec)
	c.Camera().Zoom = render.MaxZoom

	c.WheelZoom(100, 100, 1)
	if c.Camera().Zoom != render.MaxZoom {
		t.Errorf("zoom %g exceeds max", c.Camera().Zoom)
	}
}

func TestPenPreviewCloseHint(t *testing.T) {
	rec := &commandRecorder{}
	c := newTestController(rec)
	c.SetTool(ToolPen)

	for _, p := range []geometry.Point2D{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}} {
		x, y := worldToScreen(c, p)
		c.PointerDown(x, y, ButtonPrimary, false, false)
		c.PointerUp(x, y)
	}

	x, y := worldToScreen(c, geometry.Point2D{X: 0.5, Y: 0})
	c.PointerMove(x, y)
	p := c.PenPreview()
	if p == nil {
		t.Fatal("no pen preview with accumulated points")
	}
	if !p.CloseHint {
		t.Error("no close hint while hovering the first point")
	}

	x, y = worldToScreen(c, geometry.Point2D{X: 5, Y: 5})
	c.PointerMove(x, y)
	if c.PenPreview().CloseHint {
		t.Error("close hint away from the first point")
	}
}

func TestSecondaryButtonIgnored(t *testing.T) {
	rec := &commandRecorder{}
	c := newTestController(rec)
	c.SetTool(ToolRect)

	c.PointerDown(400, 300, ButtonSecondary, false, false)
	if c.Mode() != ModeIdle {
		t.Errorf("mode %v after secondary press, want idle", c.Mode())
	}
	if len(rec.drags)+len(rec.clicks)+len(rec.paths) != 0 {
		t.Error("secondary press emitted commands")
	}
}
