package render

import (
	"fmt"

	"github.com/gogpu/gg"

	"stitch-studio/pkg/geometry"
)

// HUDInfo is the per-frame readout drawn in the fixed screen-space corner.
type HUDInfo struct {
	Zoom      float64
	Tool      string
	Shapes    int
	Cursor    geometry.Point2D
	HasCursor bool
}

// drawHUD paints the status block in the top-left corner. The context must
// be back in screen space. Skipped entirely when no font face is available.
func drawHUD(dc *gg.Context, info HUDInfo, style Style) {
	lines := []string{
		fmt.Sprintf("Zoom %.0f%%", info.Zoom*100),
		fmt.Sprintf("Tool %s", info.Tool),
		fmt.Sprintf("Shapes %d", info.Shapes),
	}
	if info.HasCursor {
		lines = append(lines, fmt.Sprintf("X %.1f mm  Y %.1f mm", info.Cursor.X, info.Cursor.Y))
	}

	const pad = 8.0
	lineH := style.HUDPt * 1.5

	maxW := 0.0
	for _, line := range lines {
		if w, _ := dc.MeasureString(line); w > maxW {
			maxW = w
		}
	}

	dc.SetColor(style.HUDBack.Color())
	dc.DrawRoundedRectangle(pad, pad, maxW+2*pad, lineH*float64(len(lines))+pad, 4)
	_ = dc.Fill()

	dc.SetColor(style.HUDText.Color())
	for i, line := range lines {
		dc.DrawString(line, 2*pad, pad+lineH*float64(i+1))
	}
}
