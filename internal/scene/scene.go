// Package scene implements the design document: a tree of nodes carrying
// vector shapes with per-node transforms, a selection set, and precomputed
// stitch overlays. The render layer consumes it only through the Provider
// interface as frame-local, read-only snapshots.
package scene

import (
	"fmt"
	"math"
	"sync"

	"stitch-studio/pkg/geometry"
)

// HitTolerance is the distance in millimeters by which click hit testing
// expands a shape's bounding box.
const HitTolerance = 3.0

// NodeID uniquely identifies a scene node. Zero is never assigned and means
// "no node" (for example a missing parent).
type NodeID uint64

// Transform is the local transform of a scene node: scale, then rotation,
// then translation, all in design millimeters.
type Transform struct {
	X        float64
	Y        float64
	Rotation float64
	ScaleX   float64
	ScaleY   float64
}

// IdentityTransform returns a transform that leaves geometry unchanged.
func IdentityTransform() Transform {
	return Transform{ScaleX: 1, ScaleY: 1}
}

// TranslateTransform returns a translation-only transform.
func TranslateTransform(x, y float64) Transform {
	return Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1}
}

// Matrix converts the transform to an affine matrix encoding
// scale -> rotate -> translate.
func (t Transform) Matrix() geometry.AffineTransform {
	cos := math.Cos(t.Rotation)
	sin := math.Sin(t.Rotation)
	return geometry.AffineTransform{
		A: t.ScaleX * cos, B: -t.ScaleY * sin, TX: t.X,
		C: t.ScaleX * sin, D: t.ScaleY * cos, TY: t.Y,
	}
}

// NodeKind is the closed set of node variants: LayerKind, GroupKind and
// ShapeKind.
type NodeKind interface {
	isKind()
}

// LayerKind is a named top-level group used for organization.
type LayerKind struct {
	Name    string
	Visible bool
	Locked  bool
}

// GroupKind groups child nodes without any geometry of its own.
type GroupKind struct{}

// ShapeKind carries drawable geometry and its styling. Nil Fill or Stroke
// means "not set"; the renderer applies its defaulting rules.
type ShapeKind struct {
	Shape       ShapeData
	Fill        *Color
	Stroke      *Color
	StrokeWidth float64
}

func (LayerKind) isKind() {}
func (GroupKind) isKind() {}
func (ShapeKind) isKind() {}

// Node is a single entry in the scene tree.
type Node struct {
	ID        NodeID
	Name      string
	Transform Transform
	Kind      NodeKind

	children []NodeID
	parent   NodeID
}

// RenderItem is one visible shape node snapshot for a single frame, with its
// world transform already composed. The render layer must not retain it past
// the frame it was produced for.
type RenderItem struct {
	ID             NodeID
	Name           string
	WorldTransform geometry.AffineTransform
	Kind           NodeKind
}

// DragShape selects which shape a drag-to-create gesture produces.
type DragShape int

const (
	DragRect DragShape = iota
	DragEllipse
)

// Scene is the design document. It is safe for concurrent use; UI callbacks
// may mutate it while the render loop takes snapshots.
type Scene struct {
	mu           sync.RWMutex
	nodes        map[NodeID]*Node
	rootChildren []NodeID
	nextID       NodeID
	selected     map[NodeID]struct{}
	overlays     []StitchOverlay
	shapeCount   int
}

// NewScene creates an empty scene.
func NewScene() *Scene {
	return &Scene{
		nodes:    make(map[NodeID]*Node),
		selected: make(map[NodeID]struct{}),
		nextID:   1,
	}
}

// AddLayer appends a new visible layer at the root and returns its ID.
func (s *Scene) AddLayer(name string) NodeID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addNode(0, name, IdentityTransform(), LayerKind{Name: name, Visible: true})
}

// AddGroup adds a group node under the given parent.
func (s *Scene) AddGroup(parent NodeID, name string) NodeID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addNode(parent, name, IdentityTransform(), GroupKind{})
}

// AddShape adds a shape node under the given parent and returns its ID.
// A zero parent places the node at the root.
func (s *Scene) AddShape(parent NodeID, name string, kind ShapeKind, tf Transform) NodeID {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.addNode(parent, name, tf, kind)
	s.shapeCount++
	return id
}

// addNode inserts a node; the caller must hold the write lock.
func (s *Scene) addNode(parent NodeID, name string, tf Transform, kind NodeKind) NodeID {
	id := s.nextID
	s.nextID++

	node := &Node{
		ID:        id,
		Name:      name,
		Transform: tf,
		Kind:      kind,
		parent:    parent,
	}
	s.nodes[id] = node

	if p, ok := s.nodes[parent]; ok {
		p.children = append(p.children, id)
	} else {
		s.rootChildren = append(s.rootChildren, id)
	}
	return id
}

// SetVisible toggles visibility of a layer node. Non-layer nodes are ignored.
func (s *Scene) SetVisible(id NodeID, visible bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	node, ok := s.nodes[id]
	if !ok {
		return
	}
	if layer, ok := node.Kind.(LayerKind); ok {
		layer.Visible = visible
		node.Kind = layer
	}
}

// ShapeCount returns the number of shape nodes in the scene.
func (s *Scene) ShapeCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.shapeCount
}

// RenderItems returns the flattened display list: a depth-first traversal of
// visible nodes with composed world transforms, shapes only. The result is a
// fresh slice each call and is safe to hand to the render loop.
func (s *Scene) RenderItems() []RenderItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var items []RenderItem
	for _, rootID := range s.rootChildren {
		s.collectRenderItems(rootID, geometry.Identity(), &items)
	}
	return items
}

func (s *Scene) collectRenderItems(id NodeID, parent geometry.AffineTransform, out *[]RenderItem) {
	node, ok := s.nodes[id]
	if !ok {
		return
	}
	if layer, ok := node.Kind.(LayerKind); ok && !layer.Visible {
		return
	}

	world := parent.Compose(node.Transform.Matrix())
	if _, ok := node.Kind.(ShapeKind); ok {
		*out = append(*out, RenderItem{
			ID:             node.ID,
			Name:           node.Name,
			WorldTransform: world,
			Kind:           node.Kind,
		})
	}

	for _, childID := range node.children {
		s.collectRenderItems(childID, world, out)
	}
}

// StitchOverlays returns the current precomputed stitch overlays.
func (s *Scene) StitchOverlays() []StitchOverlay {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]StitchOverlay, len(s.overlays))
	copy(out, s.overlays)
	return out
}

// SetStitchOverlays replaces the stitch overlays shown over the design.
func (s *Scene) SetStitchOverlays(overlays []StitchOverlay) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.overlays = overlays
}

// SelectedIDs returns a copy of the current selection as a membership set.
func (s *Scene) SelectedIDs() map[NodeID]bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[NodeID]bool, len(s.selected))
	for id := range s.selected {
		out[id] = true
	}
	return out
}

// Select replaces the selection with the single given node.
func (s *Scene) Select(id NodeID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = map[NodeID]struct{}{id: {}}
}

// ToggleSelect adds the node to the selection, or removes it if present.
func (s *Scene) ToggleSelect(id NodeID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.selected[id]; ok {
		delete(s.selected, id)
	} else {
		s.selected[id] = struct{}{}
	}
}

// ClearSelection empties the selection set.
func (s *Scene) ClearSelection() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = make(map[NodeID]struct{})
}

// CreateDraggedShape adds a rectangle or ellipse from a drag gesture given
// in world millimeters. Rectangles anchor at the drag's top-left corner;
// ellipses center on the drag midpoint.
func (s *Scene) CreateDraggedShape(start, end geometry.Point2D, shape DragShape) NodeID {
	w := math.Abs(end.X - start.X)
	h := math.Abs(end.Y - start.Y)
	minX := math.Min(start.X, end.X)
	minY := math.Min(start.Y, end.Y)

	switch shape {
	case DragEllipse:
		kind := ShapeKind{
			Shape:       EllipseShape{RX: w / 2, RY: h / 2},
			StrokeWidth: defaultStrokeWidth,
			Stroke:      &defaultStroke,
		}
		tf := TranslateTransform(minX+w/2, minY+h/2)
		return s.AddShape(0, s.autoName("Ellipse"), kind, tf)
	default:
		kind := ShapeKind{
			Shape:       RectShape{Width: w, Height: h},
			StrokeWidth: defaultStrokeWidth,
			Stroke:      &defaultStroke,
		}
		return s.AddShape(0, s.autoName("Rectangle"), kind, TranslateTransform(minX, minY))
	}
}

// CreatePenPath adds a freeform path from accumulated pen points in world
// millimeters. Fewer than two points is a no-op.
func (s *Scene) CreatePenPath(points []geometry.Point2D, closed bool) NodeID {
	if len(points) < 2 {
		return 0
	}
	kind := ShapeKind{
		Shape:       PathShape{Path: Polyline(points, closed)},
		StrokeWidth: defaultStrokeWidth,
		Stroke:      &defaultStroke,
	}
	return s.AddShape(0, s.autoName("Path"), kind, IdentityTransform())
}

// HandleClick hit-tests a world-space click (millimeters) against the scene
// and updates the selection. Shift adds to or removes from the selection;
// a plain click replaces it, or clears it when nothing is hit.
func (s *Scene) HandleClick(world geometry.Point2D, shift bool) {
	items := s.RenderItems()

	// Topmost first.
	for i := len(items) - 1; i >= 0; i-- {
		item := items[i]
		kind, ok := item.Kind.(ShapeKind)
		if !ok {
			continue
		}
		box, ok := WorldBounds(kind.Shape, item.WorldTransform)
		if !ok {
			continue
		}
		if box.Expand(HitTolerance).Contains(world) {
			if shift {
				s.ToggleSelect(item.ID)
			} else {
				s.Select(item.ID)
			}
			return
		}
	}
	if !shift {
		s.ClearSelection()
	}
}

// WorldBounds computes a shape's axis-aligned bounding box in world
// millimeters by transforming its local extremal points. The second return
// is false when the shape has no concrete points to bound.
func WorldBounds(shape ShapeData, tf geometry.AffineTransform) (geometry.Rect, bool) {
	local := shape.LocalPoints()
	if len(local) == 0 {
		return geometry.Rect{}, false
	}
	world := make([]geometry.Point2D, len(local))
	for i, p := range local {
		world[i] = tf.Apply(p)
	}
	return geometry.BoundingBox(world), true
}

func (s *Scene) autoName(prefix string) string {
	s.mu.RLock()
	n := len(s.nodes) + 1
	s.mu.RUnlock()
	return fmt.Sprintf("%s %d", prefix, n)
}

var defaultStroke = RGB(0x33, 0x33, 0x33)

const defaultStrokeWidth = 0.4
