package scene

// Provider is the read surface the render loop draws from. *Scene satisfies
// it; tests substitute fixed-content providers.
type Provider interface {
	RenderItems() []RenderItem
	SelectedIDs() map[NodeID]bool
	StitchOverlays() []StitchOverlay
	ShapeCount() int
}

var _ Provider = (*Scene)(nil)
