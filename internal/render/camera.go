package render

import (
	"github.com/gogpu/gg"

	"stitch-studio/pkg/geometry"
)

// Zoom limits and the multiplicative step applied per wheel tick.
const (
	MinZoom  = 0.01
	MaxZoom  = 256.0
	ZoomStep = 1.25
)

// Camera holds the pan/zoom view state. CenterX/CenterY is the design-space
// point (millimeters) shown at the viewport center. Owned by the interaction
// layer; renderers read it once per frame. Not safe for concurrent use, the
// single-writer contract is that all mutation happens on the UI thread.
type Camera struct {
	CenterX float64
	CenterY float64
	Zoom    float64
}

// NewCamera returns a camera centered on the origin at zoom 1.
func NewCamera() *Camera {
	return &Camera{Zoom: 1}
}

// ClampZoom forces the zoom back into its legal range.
func (c *Camera) ClampZoom() {
	if c.Zoom < MinZoom {
		c.Zoom = MinZoom
	}
	if c.Zoom > MaxZoom {
		c.Zoom = MaxZoom
	}
}

// Pan moves the camera by a screen-space pixel delta. The world moves with
// the cursor, so the camera center moves opposite to it.
func (c *Camera) Pan(dxPx, dyPx float64) {
	c.CenterX -= dxPx / (c.Zoom * MMToPx)
	c.CenterY -= dyPx / (c.Zoom * MMToPx)
}

// ZoomAt multiplies the zoom by factor while keeping the design point under
// the given screen position fixed on screen.
func (c *Camera) ZoomAt(screenX, screenY float64, factor float64, viewW, viewH float64) {
	anchor := c.ScreenToWorld(screenX, screenY, viewW, viewH)

	c.Zoom *= factor
	c.ClampZoom()

	// Solve the forward mapping so anchor lands on (screenX, screenY) again.
	c.CenterX = anchor.X - (screenX-viewW/2)/(c.Zoom*MMToPx)
	c.CenterY = anchor.Y - (screenY-viewH/2)/(c.Zoom*MMToPx)
}

// ScreenToWorld converts a surface-relative pixel position to design-space
// millimeters for the given viewport size.
func (c *Camera) ScreenToWorld(screenX, screenY, viewW, viewH float64) geometry.Point2D {
	return geometry.Point2D{
		X: (screenX-viewW/2)/(c.Zoom*MMToPx) + c.CenterX,
		Y: (screenY-viewH/2)/(c.Zoom*MMToPx) + c.CenterY,
	}
}

// WorldToScreen is the exact inverse of ScreenToWorld.
func (c *Camera) WorldToScreen(p geometry.Point2D, viewW, viewH float64) (float64, float64) {
	return (p.X-c.CenterX)*c.Zoom*MMToPx + viewW/2,
		(p.Y-c.CenterY)*c.Zoom*MMToPx + viewH/2
}

// VisibleWorldRect returns the design-space rectangle (millimeters) covered
// by the viewport.
func (c *Camera) VisibleWorldRect(viewW, viewH float64) geometry.Rect {
	halfW := viewW / 2 / (c.Zoom * MMToPx)
	halfH := viewH / 2 / (c.Zoom * MMToPx)
	return geometry.Rect{
		X:      c.CenterX - halfW,
		Y:      c.CenterY - halfH,
		Width:  2 * halfW,
		Height: 2 * halfH,
	}
}

// apply pushes the camera view onto the drawing context. After this call the
// context's user space is canvas units (millimeters times MMToPx).
func (c *Camera) apply(dc *gg.Context, viewW, viewH float64) {
	dc.Translate(viewW/2, viewH/2)
	dc.Scale(c.Zoom, c.Zoom)
	dc.Translate(-c.CenterX*MMToPx, -c.CenterY*MMToPx)
}
