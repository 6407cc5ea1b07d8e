package canvas

import "fyne.io/fyne/v2/driver/desktop"

// Tool represents the current interaction tool.
type Tool int

const (
	ToolSelect Tool = iota
	ToolRect
	ToolEllipse
	ToolPen
)

// String returns the tool name shown in the HUD and status bar.
func (t Tool) String() string {
	switch t {
	case ToolSelect:
		return "Select"
	case ToolRect:
		return "Rectangle"
	case ToolEllipse:
		return "Ellipse"
	case ToolPen:
		return "Pen"
	default:
		return "Unknown"
	}
}

// Cursor returns the pointer shape for the tool.
func (t Tool) Cursor() desktop.Cursor {
	switch t {
	case ToolRect, ToolEllipse, ToolPen:
		return desktop.CrosshairCursor
	default:
		return desktop.DefaultCursor
	}
}
