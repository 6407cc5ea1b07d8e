package render

import (
	"image"

	"github.com/gogpu/gg"
	ggtext "github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"stitch-studio/internal/scene"
)

// Frame is everything one render pass needs, captured before drawing starts.
// Items, Selected and Overlays are borrowed from the scene for this frame
// only and must not be retained.
type Frame struct {
	Width    int
	Height   int
	Camera   Camera
	ShowGrid bool

	Items    []scene.RenderItem
	Selected map[scene.NodeID]bool
	Overlays []scene.StitchOverlay

	Drag *DragPreview
	Pen  *PenPreview
	HUD  HUDInfo
}

// Renderer rasterizes frames onto a reused drawing context. Not safe for
// concurrent use; one renderer belongs to one canvas.
type Renderer struct {
	style Style
	face  ggtext.Face
	dc    *gg.Context
}

// NewRenderer creates a renderer with the given style table. The HUD font is
// embedded; if it fails to parse the HUD is simply not drawn.
func NewRenderer(style Style) *Renderer {
	r := &Renderer{style: style}
	if source, err := ggtext.NewFontSource(goregular.TTF); err == nil {
		r.face = source.Face(style.HUDPt)
	}
	return r
}

// Style returns the renderer's style table.
func (r *Renderer) Style() Style {
	return r.style
}

// RenderFrame draws one complete frame and returns the backing image. The
// returned image is valid until the next RenderFrame call. A degenerate
// viewport yields nil and the frame is skipped.
func (r *Renderer) RenderFrame(f Frame) image.Image {
	if f.Width <= 0 || f.Height <= 0 {
		return nil
	}
	if r.dc == nil {
		r.dc = gg.NewContext(f.Width, f.Height)
	} else if r.dc.Width() != f.Width || r.dc.Height() != f.Height {
		if err := r.dc.Resize(f.Width, f.Height); err != nil {
			r.dc = gg.NewContext(f.Width, f.Height)
		}
	}
	dc := r.dc
	if r.face != nil {
		dc.SetFont(r.face)
	}

	viewW := float64(f.Width)
	viewH := float64(f.Height)
	cam := f.Camera
	zoom := cam.Zoom

	dc.ClearWithColor(r.style.Background)

	dc.Push()
	cam.apply(dc, viewW, viewH)

	if f.ShowGrid {
		drawGrid(dc, &cam, viewW, viewH, r.style)
	}

	for _, item := range f.Items {
		drawItem(dc, item, zoom, r.style)
		if f.Selected[item.ID] {
			drawSelection(dc, item, zoom, r.style)
		}
	}

	for _, overlay := range f.Overlays {
		drawStitchOverlay(dc, overlay, zoom, r.style)
	}

	if f.Drag != nil {
		drawDragPreview(dc, *f.Drag, zoom, r.style)
	}
	if f.Pen != nil {
		drawPenPreview(dc, *f.Pen, zoom, r.style)
	}

	dc.Pop()

	if r.face != nil {
		drawHUD(dc, f.HUD, r.style)
	}

	return dc.Image()
}
