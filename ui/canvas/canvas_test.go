package canvas

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"

	"stitch-studio/internal/scene"
)

func newTestCanvas(t *testing.T) (*DesignCanvas, *scene.Scene) {
	t.Helper()
	test.NewApp()
	s := scene.NewScene()
	dc := NewDesignCanvas(s, s)
	dc.ctrl.SetViewport(200, 200)
	return dc, s
}

func primaryAt(x, y float32) *desktop.MouseEvent {
	return &desktop.MouseEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, y)},
		Button:     desktop.MouseButtonPrimary,
	}
}

func dragTo(x, y float32) *fyne.DragEvent {
	return &fyne.DragEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, y)}}
}

func TestDragContinuesPastWidgetEdge(t *testing.T) {
	dc, s := newTestCanvas(t)
	dc.SetTool(ToolRect)

	dc.MouseDown(primaryAt(100, 100))
	// Drag events keep arriving with positions beyond the 200x200 widget.
	dc.Dragged(dragTo(260, 240))
	if dc.ctrl.Mode() != ModeShapeDragging {
		t.Fatalf("mode %v mid-drag, want shape dragging", dc.ctrl.Mode())
	}
	dc.DragEnd()

	if got := s.ShapeCount(); got != 1 {
		t.Fatalf("shape count %d after release outside the widget, want 1", got)
	}
	if dc.ctrl.Mode() != ModeIdle {
		t.Errorf("mode %v after drag end, want idle", dc.ctrl.Mode())
	}
}

func TestDragEndAfterMouseUpDoesNotRepeat(t *testing.T) {
	dc, s := newTestCanvas(t)
	dc.SetTool(ToolEllipse)

	dc.MouseDown(primaryAt(100, 100))
	dc.Dragged(dragTo(160, 160))
	dc.MouseUp(primaryAt(160, 160))
	dc.DragEnd()

	if got := s.ShapeCount(); got != 1 {
		t.Fatalf("shape count %d after release inside the widget, want 1", got)
	}
}

func TestPanDragPastWidgetEdge(t *testing.T) {
	dc, _ := newTestCanvas(t)

	dc.MouseDown(&desktop.MouseEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(100, 100)},
		Button:     desktop.MouseButtonTertiary,
	})
	dc.Dragged(dragTo(300, 100))
	dc.DragEnd()

	// 200px right at zoom 1 moves the camera center 20mm left.
	if got := dc.ctrl.Camera().CenterX; got != -20 {
		t.Errorf("center X %g after pan past the edge, want -20", got)
	}
	if dc.ctrl.Mode() != ModeIdle {
		t.Errorf("mode %v after pan end, want idle", dc.ctrl.Mode())
	}
}
