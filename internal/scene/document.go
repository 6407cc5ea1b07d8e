package scene

import (
	"fmt"

	"stitch-studio/pkg/geometry"
)

// Document is the JSON-serializable form of a scene, used by design file
// save and load. Shape variants are discriminated by a kind string rather
// than Go types so files stay readable and diffable.
type Document struct {
	Version  int               `json:"version"`
	Nodes    []DocumentNode    `json:"nodes"`
	Overlays []DocumentOverlay `json:"overlays,omitempty"`
}

// DocumentVersion is written into every saved design file.
const DocumentVersion = 1

// DocumentNode is one serialized scene node with its children.
type DocumentNode struct {
	Name      string            `json:"name"`
	Kind      string            `json:"kind"` // layer, group or shape
	Transform DocumentTransform `json:"transform"`

	// Layer fields
	Visible bool `json:"visible,omitempty"`
	Locked  bool `json:"locked,omitempty"`

	// Shape fields
	Shape       *DocumentShape `json:"shape,omitempty"`
	Fill        *Color         `json:"fill,omitempty"`
	Stroke      *Color         `json:"stroke,omitempty"`
	StrokeWidth float64        `json:"stroke_width,omitempty"`

	Children []DocumentNode `json:"children,omitempty"`
}

// DocumentTransform mirrors Transform with JSON tags.
type DocumentTransform struct {
	X        float64 `json:"x,omitempty"`
	Y        float64 `json:"y,omitempty"`
	Rotation float64 `json:"rotation,omitempty"`
	ScaleX   float64 `json:"scale_x,omitempty"`
	ScaleY   float64 `json:"scale_y,omitempty"`
}

// DocumentShape is a serialized shape variant.
type DocumentShape struct {
	Kind string `json:"kind"` // path, rect, ellipse or polygon

	// Path
	Commands []DocumentCommand `json:"commands,omitempty"`
	Closed   bool              `json:"closed,omitempty"`

	// Rect
	Width        float64 `json:"width,omitempty"`
	Height       float64 `json:"height,omitempty"`
	CornerRadius float64 `json:"corner_radius,omitempty"`

	// Ellipse
	RX float64 `json:"rx,omitempty"`
	RY float64 `json:"ry,omitempty"`

	// Polygon
	Sides  int     `json:"sides,omitempty"`
	Radius float64 `json:"radius,omitempty"`
}

// DocumentCommand is a serialized path command.
type DocumentCommand struct {
	Op  string            `json:"op"` // move, line, cubic, quad or close
	C1  *geometry.Point2D `json:"c1,omitempty"`
	C2  *geometry.Point2D `json:"c2,omitempty"`
	End *geometry.Point2D `json:"end,omitempty"`
}

// DocumentOverlay is a serialized stitch overlay.
type DocumentOverlay struct {
	Points   []geometry.Point2D `json:"points"`
	Color    Color              `json:"color"`
	ShowDots bool               `json:"show_dots,omitempty"`
}

// Document captures the scene as a serializable document.
func (s *Scene) Document() Document {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc := Document{Version: DocumentVersion}
	for _, id := range s.rootChildren {
		if node, ok := s.documentNode(id); ok {
			doc.Nodes = append(doc.Nodes, node)
		}
	}
	for _, ov := range s.overlays {
		doc.Overlays = append(doc.Overlays, DocumentOverlay{
			Points:   ov.Points,
			Color:    ov.Color,
			ShowDots: ov.ShowDots,
		})
	}
	return doc
}

func (s *Scene) documentNode(id NodeID) (DocumentNode, bool) {
	node, ok := s.nodes[id]
	if !ok {
		return DocumentNode{}, false
	}

	out := DocumentNode{
		Name: node.Name,
		Transform: DocumentTransform{
			X:        node.Transform.X,
			Y:        node.Transform.Y,
			Rotation: node.Transform.Rotation,
			ScaleX:   node.Transform.ScaleX,
			ScaleY:   node.Transform.ScaleY,
		},
	}

	switch kind := node.Kind.(type) {
	case LayerKind:
		out.Kind = "layer"
		out.Visible = kind.Visible
		out.Locked = kind.Locked
	case GroupKind:
		out.Kind = "group"
	case ShapeKind:
		out.Kind = "shape"
		shape := documentShape(kind.Shape)
		out.Shape = &shape
		out.Fill = kind.Fill
		out.Stroke = kind.Stroke
		out.StrokeWidth = kind.StrokeWidth
	}

	for _, childID := range node.children {
		if child, ok := s.documentNode(childID); ok {
			out.Children = append(out.Children, child)
		}
	}
	return out, true
}

func documentShape(shape ShapeData) DocumentShape {
	switch sh := shape.(type) {
	case PathShape:
		out := DocumentShape{Kind: "path", Closed: sh.Path.Closed}
		for _, cmd := range sh.Path.Commands {
			out.Commands = append(out.Commands, documentCommand(cmd))
		}
		return out
	case RectShape:
		return DocumentShape{Kind: "rect", Width: sh.Width, Height: sh.Height, CornerRadius: sh.CornerRadius}
	case EllipseShape:
		return DocumentShape{Kind: "ellipse", RX: sh.RX, RY: sh.RY}
	case PolygonShape:
		return DocumentShape{Kind: "polygon", Sides: sh.Sides, Radius: sh.Radius}
	default:
		return DocumentShape{}
	}
}

func documentCommand(cmd PathCommand) DocumentCommand {
	point := func(p geometry.Point2D) *geometry.Point2D {
		cp := p
		return &cp
	}
	switch cmd.Op {
	case OpMoveTo:
		return DocumentCommand{Op: "move", End: point(cmd.End)}
	case OpLineTo:
		return DocumentCommand{Op: "line", End: point(cmd.End)}
	case OpCubicTo:
		return DocumentCommand{Op: "cubic", C1: point(cmd.C1), C2: point(cmd.C2), End: point(cmd.End)}
	case OpQuadTo:
		return DocumentCommand{Op: "quad", C1: point(cmd.C1), End: point(cmd.End)}
	default:
		return DocumentCommand{Op: "close"}
	}
}

// FromDocument builds a scene from a serialized document.
func FromDocument(doc Document) (*Scene, error) {
	s := NewScene()
	for _, node := range doc.Nodes {
		if err := s.restoreNode(0, node); err != nil {
			return nil, err
		}
	}
	for _, ov := range doc.Overlays {
		s.overlays = append(s.overlays, StitchOverlay{
			Points:   ov.Points,
			Color:    ov.Color,
			ShowDots: ov.ShowDots,
		})
	}
	return s, nil
}

func (s *Scene) restoreNode(parent NodeID, node DocumentNode) error {
	tf := Transform{
		X:        node.Transform.X,
		Y:        node.Transform.Y,
		Rotation: node.Transform.Rotation,
		ScaleX:   node.Transform.ScaleX,
		ScaleY:   node.Transform.ScaleY,
	}
	// Scale was omitted from the file when it equals zero; treat as identity.
	if tf.ScaleX == 0 {
		tf.ScaleX = 1
	}
	if tf.ScaleY == 0 {
		tf.ScaleY = 1
	}

	var kind NodeKind
	switch node.Kind {
	case "layer":
		kind = LayerKind{Name: node.Name, Visible: node.Visible, Locked: node.Locked}
	case "group":
		kind = GroupKind{}
	case "shape":
		if node.Shape == nil {
			return fmt.Errorf("shape node %q has no shape data", node.Name)
		}
		shape, err := restoreShape(*node.Shape)
		if err != nil {
			return fmt.Errorf("shape node %q: %w", node.Name, err)
		}
		kind = ShapeKind{
			Shape:       shape,
			Fill:        node.Fill,
			Stroke:      node.Stroke,
			StrokeWidth: node.StrokeWidth,
		}
	default:
		return fmt.Errorf("unknown node kind %q", node.Kind)
	}

	id := s.addNode(parent, node.Name, tf, kind)
	if node.Kind == "shape" {
		s.shapeCount++
	}
	for _, child := range node.Children {
		if err := s.restoreNode(id, child); err != nil {
			return err
		}
	}
	return nil
}

func restoreShape(shape DocumentShape) (ShapeData, error) {
	switch shape.Kind {
	case "path":
		path := VectorPath{Closed: shape.Closed}
		for _, cmd := range shape.Commands {
			restored, err := restoreCommand(cmd)
			if err != nil {
				return nil, err
			}
			path.Commands = append(path.Commands, restored)
		}
		return PathShape{Path: path}, nil
	case "rect":
		return RectShape{Width: shape.Width, Height: shape.Height, CornerRadius: shape.CornerRadius}, nil
	case "ellipse":
		return EllipseShape{RX: shape.RX, RY: shape.RY}, nil
	case "polygon":
		return PolygonShape{Sides: shape.Sides, Radius: shape.Radius}, nil
	default:
		return nil, fmt.Errorf("unknown shape kind %q", shape.Kind)
	}
}

func restoreCommand(cmd DocumentCommand) (PathCommand, error) {
	need := func(p *geometry.Point2D, field string) (geometry.Point2D, error) {
		if p == nil {
			return geometry.Point2D{}, fmt.Errorf("path command %q missing %s", cmd.Op, field)
		}
		return *p, nil
	}

	switch cmd.Op {
	case "move", "line":
		end, err := need(cmd.End, "end")
		if err != nil {
			return PathCommand{}, err
		}
		if cmd.Op == "move" {
			return MoveTo(end), nil
		}
		return LineTo(end), nil
	case "cubic":
		c1, err := need(cmd.C1, "c1")
		if err != nil {
			return PathCommand{}, err
		}
		c2, err := need(cmd.C2, "c2")
		if err != nil {
			return PathCommand{}, err
		}
		end, err := need(cmd.End, "end")
		if err != nil {
			return PathCommand{}, err
		}
		return CubicTo(c1, c2, end), nil
	case "quad":
		c1, err := need(cmd.C1, "c1")
		if err != nil {
			return PathCommand{}, err
		}
		end, err := need(cmd.End, "end")
		if err != nil {
			return PathCommand{}, err
		}
		return QuadTo(c1, end), nil
	case "close":
		return Close(), nil
	default:
		return PathCommand{}, fmt.Errorf("unknown path command %q", cmd.Op)
	}
}
