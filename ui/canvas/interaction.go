package canvas

import (
	"math"

	"stitch-studio/internal/render"
	"stitch-studio/internal/scene"
	"stitch-studio/pkg/geometry"
)

const (
	// MinDragMM is the minimum drag extent, in millimeters on either axis,
	// below which a drag-to-create gesture is discarded.
	MinDragMM = 1.0

	// PenCloseMM is the distance in millimeters within which a pen click on
	// the first point closes the path.
	PenCloseMM = 2.0
)

// Mode is the interaction state.
type Mode int

const (
	ModeIdle Mode = iota
	ModePanning
	ModeShapeDragging
	ModePenDrawing
)

// Button identifies the pointer button of an event, already abstracted away
// from the windowing toolkit.
type Button int

const (
	ButtonPrimary Button = iota
	ButtonSecondary
	ButtonMiddle
)

// Commands is the write surface of the document model the controller emits
// creation and selection requests into. Calls are fire and forget; the
// controller never inspects the outcome. *scene.Scene satisfies it.
type Commands interface {
	CreateDraggedShape(start, end geometry.Point2D, shape scene.DragShape) scene.NodeID
	CreatePenPath(points []geometry.Point2D, closed bool) scene.NodeID
	HandleClick(world geometry.Point2D, shift bool)
}

// Controller is the interaction state machine. It owns the camera and all
// transient drag/pen state, translating raw pointer events into camera
// mutation and document commands. All methods must be called from the UI
// thread; the single-writer assumption is what makes the lock-free sharing
// with the render loop sound.
type Controller struct {
	cam      *render.Camera
	commands Commands

	tool Tool
	mode Mode

	viewW float64
	viewH float64

	// Panning
	lastX float64
	lastY float64

	// Shape dragging, in design millimeters
	dragTool    scene.DragShape
	dragStart   geometry.Point2D
	dragCurrent geometry.Point2D

	// Pen accumulation, in design millimeters
	penPoints []geometry.Point2D

	// Hover tracking for the HUD and pen rubber segment
	cursor    geometry.Point2D
	hasCursor bool
}

// NewController creates a controller around a fresh camera.
func NewController(commands Commands) *Controller {
	return &Controller{
		cam:      render.NewCamera(),
		commands: commands,
		tool:     ToolSelect,
	}
}

// Camera returns the controller-owned camera.
func (c *Controller) Camera() *render.Camera {
	return c.cam
}

// Mode returns the current interaction state.
func (c *Controller) Mode() Mode {
	return c.mode
}

// Tool returns the active tool.
func (c *Controller) Tool() Tool {
	return c.tool
}

// SetTool switches the active tool. An in-progress pen path is kept; other
// transient state is irrelevant outside a pointer drag.
func (c *Controller) SetTool(tool Tool) {
	c.tool = tool
}

// SetViewport records the drawing surface size used for coordinate
// conversion. Called whenever the surface is laid out.
func (c *Controller) SetViewport(w, h float64) {
	c.viewW = w
	c.viewH = h
}

// ScreenToWorld converts a surface-relative pixel position to design
// millimeters at the current camera state.
func (c *Controller) ScreenToWorld(x, y float64) geometry.Point2D {
	return c.cam.ScreenToWorld(x, y, c.viewW, c.viewH)
}

// PointerDown dispatches a button press. Branches are checked in a fixed
// order: pan modifier, then select, then shape tools, then pen. Only one
// branch fires per press.
func (c *Controller) PointerDown(x, y float64, btn Button, ctrl, shift bool) {
	if c.mode != ModeIdle && c.mode != ModePenDrawing {
		return
	}

	if btn == ButtonMiddle || (btn == ButtonPrimary && ctrl) {
		c.mode = ModePanning
		c.lastX = x
		c.lastY = y
		return
	}
	if btn != ButtonPrimary {
		return
	}

	world := c.ScreenToWorld(x, y)

	switch c.tool {
	case ToolSelect:
		c.commands.HandleClick(world, shift)
	case ToolRect, ToolEllipse:
		c.mode = ModeShapeDragging
		if c.tool == ToolEllipse {
			c.dragTool = scene.DragEllipse
		} else {
			c.dragTool = scene.DragRect
		}
		c.dragStart = world
		c.dragCurrent = world
	case ToolPen:
		c.penClick(world)
	}
}

// penClick appends a pen point, or closes the path when the click lands on
// the first point with at least a triangle accumulated.
func (c *Controller) penClick(world geometry.Point2D) {
	if len(c.penPoints) >= 3 && world.Distance(c.penPoints[0]) <= PenCloseMM {
		points := c.penPoints
		c.resetPen()
		c.commands.CreatePenPath(points, true)
		return
	}
	c.penPoints = append(c.penPoints, world)
	c.mode = ModePenDrawing
}

// PointerMove tracks the cursor and advances any active drag.
func (c *Controller) PointerMove(x, y float64) {
	c.cursor = c.ScreenToWorld(x, y)
	c.hasCursor = true

	switch c.mode {
	case ModePanning:
		c.cam.Pan(x-c.lastX, y-c.lastY)
		c.lastX = x
		c.lastY = y
		// Keep the reported cursor position consistent with the new camera.
		c.cursor = c.ScreenToWorld(x, y)
	case ModeShapeDragging:
		c.dragCurrent = c.cursor
	}
}

// PointerUp completes a pan or a drag-to-create gesture. Drags below the
// minimum extent on both axes are dropped without a command.
func (c *Controller) PointerUp(x, y float64) {
	switch c.mode {
	case ModePanning:
		c.mode = ModeIdle
	case ModeShapeDragging:
		end := c.ScreenToWorld(x, y)
		start := c.dragStart
		tool := c.dragTool
		c.mode = ModeIdle
		if math.Abs(end.X-start.X) > MinDragMM || math.Abs(end.Y-start.Y) > MinDragMM {
			c.commands.CreateDraggedShape(start, end, tool)
		}
	}
}

// PointerGone clears hover state when the cursor leaves the surface.
func (c *Controller) PointerGone() {
	c.hasCursor = false
}

// WheelZoom applies one zoom step toward the cursor. Positive delta zooms
// in, negative zooms out, zero is ignored.
func (c *Controller) WheelZoom(x, y float64, delta float64) {
	if delta == 0 {
		return
	}
	factor := render.ZoomStep
	if delta < 0 {
		factor = 1 / render.ZoomStep
	}
	c.cam.ZoomAt(x, y, factor, c.viewW, c.viewH)
}

// FinishPath emits the accumulated pen points as an open path. One point is
// not a path and is discarded. State always resets.
func (c *Controller) FinishPath() {
	points := c.penPoints
	c.resetPen()
	if len(points) >= 2 {
		c.commands.CreatePenPath(points, false)
	}
}

// CancelPath discards the in-progress pen path.
func (c *Controller) CancelPath() {
	c.resetPen()
}

func (c *Controller) resetPen() {
	c.penPoints = nil
	if c.mode == ModePenDrawing {
		c.mode = ModeIdle
	}
}

// DragPreview returns the rubber band for an active shape drag, or nil.
func (c *Controller) DragPreview() *render.DragPreview {
	if c.mode != ModeShapeDragging {
		return nil
	}
	return &render.DragPreview{
		Tool:    c.dragTool,
		Start:   c.dragStart,
		Current: c.dragCurrent,
	}
}

// PenPreview returns the live pen path overlay, or nil when no points are
// accumulated.
func (c *Controller) PenPreview() *render.PenPreview {
	if len(c.penPoints) == 0 {
		return nil
	}
	p := &render.PenPreview{
		Points:    c.penPoints,
		Cursor:    c.cursor,
		HasCursor: c.hasCursor,
	}
	if c.hasCursor && len(c.penPoints) >= 3 &&
		c.cursor.Distance(c.penPoints[0]) <= PenCloseMM {
		p.CloseHint = true
	}
	return p
}

// CursorWorld returns the last hovered design-space position.
func (c *Controller) CursorWorld() (geometry.Point2D, bool) {
	return c.cursor, c.hasCursor
}

// PenPointCount returns how many pen points are accumulated.
func (c *Controller) PenPointCount() int {
	return len(c.penPoints)
}
