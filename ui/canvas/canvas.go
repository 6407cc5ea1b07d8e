// Package canvas provides the interactive design canvas: an infinite
// pannable, zoomable millimeter-grid surface that draws the scene and turns
// pointer input into editing gestures.
package canvas

import (
	"image"
	"time"

	"fyne.io/fyne/v2"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"stitch-studio/internal/render"
	"stitch-studio/internal/scene"
)

// DesignCanvas is the drawing surface widget. A repeating animation tick
// drives continuous redraw while the widget is started; all input handlers
// and the raster callback run on the UI thread, so camera and interaction
// state need no locking.
type DesignCanvas struct {
	widget.BaseWidget

	provider scene.Provider
	ctrl     *Controller
	renderer *render.Renderer

	raster *fynecanvas.Raster
	anim   *fyne.Animation

	showGrid bool
	lastDrag fyne.Position

	onZoomChange func(zoom float64)
}

// NewDesignCanvas creates a canvas reading from provider and writing edits
// through commands.
func NewDesignCanvas(provider scene.Provider, commands Commands) *DesignCanvas {
	dc := &DesignCanvas{
		provider: provider,
		ctrl:     NewController(commands),
		renderer: render.NewRenderer(render.DefaultStyle()),
		showGrid: true,
	}
	dc.raster = fynecanvas.NewRaster(dc.draw)
	dc.ExtendBaseWidget(dc)
	return dc
}

// Controller exposes the interaction state machine, mainly for the window
// shell (tool switching, pen finish/cancel) and tests.
func (dc *DesignCanvas) Controller() *Controller {
	return dc.ctrl
}

// Start begins the continuous redraw loop. Idempotent.
func (dc *DesignCanvas) Start() {
	if dc.anim != nil {
		return
	}
	dc.anim = &fyne.Animation{
		Duration:    time.Second,
		RepeatCount: fyne.AnimationRepeatForever,
		Curve:       fyne.AnimationLinear,
		Tick: func(float32) {
			dc.raster.Refresh()
		},
	}
	dc.anim.Start()
}

// Stop halts the redraw loop. Idempotent; Start may be called again.
func (dc *DesignCanvas) Stop() {
	if dc.anim == nil {
		return
	}
	dc.anim.Stop()
	dc.anim = nil
}

// SetTool switches the active tool.
func (dc *DesignCanvas) SetTool(tool Tool) {
	dc.ctrl.SetTool(tool)
	dc.raster.Refresh()
}

// FinishPath closes out the pen tool as an open path.
func (dc *DesignCanvas) FinishPath() {
	dc.ctrl.FinishPath()
	dc.raster.Refresh()
}

// CancelPath discards the in-progress pen path.
func (dc *DesignCanvas) CancelPath() {
	dc.ctrl.CancelPath()
	dc.raster.Refresh()
}

// OnZoomChange sets a callback fired after every wheel zoom.
func (dc *DesignCanvas) OnZoomChange(callback func(zoom float64)) {
	dc.onZoomChange = callback
}

// SetShowGrid toggles the millimeter grid and origin axes.
func (dc *DesignCanvas) SetShowGrid(show bool) {
	dc.showGrid = show
	dc.raster.Refresh()
}

// ShowGrid reports whether the grid is drawn.
func (dc *DesignCanvas) ShowGrid() bool {
	return dc.showGrid
}

// draw is the raster callback producing one frame.
func (dc *DesignCanvas) draw(w, h int) image.Image {
	dc.ctrl.SetViewport(float64(w), float64(h))

	cursor, hasCursor := dc.ctrl.CursorWorld()
	cam := dc.ctrl.Camera()

	frame := render.Frame{
		Width:    w,
		Height:   h,
		Camera:   *cam,
		ShowGrid: dc.showGrid,
		Items:    dc.provider.RenderItems(),
		Selected: dc.provider.SelectedIDs(),
		Overlays: dc.provider.StitchOverlays(),
		Drag:     dc.ctrl.DragPreview(),
		Pen:      dc.ctrl.PenPreview(),
		HUD: render.HUDInfo{
			Zoom:      cam.Zoom,
			Tool:      dc.ctrl.Tool().String(),
			Shapes:    dc.provider.ShapeCount(),
			Cursor:    cursor,
			HasCursor: hasCursor,
		},
	}

	img := dc.renderer.RenderFrame(frame)
	if img == nil {
		// Layout has not sized the surface yet; skip this frame.
		return image.NewRGBA(image.Rect(0, 0, 1, 1))
	}
	return img
}

// MouseDown implements desktop.Mouseable.
func (dc *DesignCanvas) MouseDown(ev *desktop.MouseEvent) {
	btn := mapButton(ev.Button)
	ctrl := ev.Modifier&fyne.KeyModifierControl != 0
	shift := ev.Modifier&fyne.KeyModifierShift != 0
	dc.ctrl.PointerDown(float64(ev.Position.X), float64(ev.Position.Y), btn, ctrl, shift)
	dc.raster.Refresh()
}

// MouseUp implements desktop.Mouseable.
func (dc *DesignCanvas) MouseUp(ev *desktop.MouseEvent) {
	dc.ctrl.PointerUp(float64(ev.Position.X), float64(ev.Position.Y))
	dc.raster.Refresh()
}

// MouseMoved implements desktop.Hoverable.
func (dc *DesignCanvas) MouseMoved(ev *desktop.MouseEvent) {
	dc.ctrl.PointerMove(float64(ev.Position.X), float64(ev.Position.Y))
}

// Dragged implements fyne.Draggable. Drag events keep arriving while the
// button is held even after the cursor crosses the widget edge, so pans and
// shape drags do not freeze outside the canvas. Positions can be outside
// the widget bounds.
func (dc *DesignCanvas) Dragged(ev *fyne.DragEvent) {
	dc.lastDrag = ev.Position
	dc.ctrl.PointerMove(float64(ev.Position.X), float64(ev.Position.Y))
	dc.raster.Refresh()
}

// DragEnd implements fyne.Draggable. A release outside the widget delivers
// no MouseUp here, so the gesture completes at the last dragged position;
// the controller ignores the duplicate when MouseUp did arrive first.
func (dc *DesignCanvas) DragEnd() {
	dc.ctrl.PointerUp(float64(dc.lastDrag.X), float64(dc.lastDrag.Y))
	dc.raster.Refresh()
}

// MouseIn implements desktop.Hoverable.
func (dc *DesignCanvas) MouseIn(ev *desktop.MouseEvent) {
	dc.ctrl.PointerMove(float64(ev.Position.X), float64(ev.Position.Y))
}

// MouseOut implements desktop.Hoverable.
func (dc *DesignCanvas) MouseOut() {
	dc.ctrl.PointerGone()
}

// Scrolled implements fyne.Scrollable: the wheel zooms toward the cursor.
// Horizontal-only scrolls are ignored.
func (dc *DesignCanvas) Scrolled(ev *fyne.ScrollEvent) {
	if ev.Scrolled.DY == 0 {
		return
	}
	dc.ctrl.WheelZoom(float64(ev.Position.X), float64(ev.Position.Y), float64(ev.Scrolled.DY))
	dc.raster.Refresh()
	if dc.onZoomChange != nil {
		dc.onZoomChange(dc.ctrl.Camera().Zoom)
	}
}

// Cursor implements desktop.Cursorable.
func (dc *DesignCanvas) Cursor() desktop.Cursor {
	if dc.ctrl.Mode() == ModePanning {
		return desktop.PointerCursor
	}
	return dc.ctrl.Tool().Cursor()
}

func mapButton(b desktop.MouseButton) Button {
	switch b {
	case desktop.MouseButtonSecondary:
		return ButtonSecondary
	case desktop.MouseButtonTertiary:
		return ButtonMiddle
	default:
		return ButtonPrimary
	}
}

// CreateRenderer implements fyne.Widget.
func (dc *DesignCanvas) CreateRenderer() fyne.WidgetRenderer {
	return &designCanvasRenderer{canvas: dc}
}

type designCanvasRenderer struct {
	canvas *DesignCanvas
}

func (r *designCanvasRenderer) Layout(size fyne.Size) {
	r.canvas.raster.Resize(size)
	r.canvas.ctrl.SetViewport(float64(size.Width), float64(size.Height))
}

func (r *designCanvasRenderer) MinSize() fyne.Size {
	return fyne.NewSize(320, 240)
}

func (r *designCanvasRenderer) Refresh() {
	r.canvas.raster.Refresh()
}

func (r *designCanvasRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.canvas.raster}
}

func (r *designCanvasRenderer) Destroy() {
	r.canvas.Stop()
}
