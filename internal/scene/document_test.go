package scene

import (
	"encoding/json"
	"testing"

	"stitch-studio/pkg/geometry"
)

func TestDocumentRoundTrip(t *testing.T) {
	s := NewScene()
	layer := s.AddLayer("Layer")
	group := s.AddGroup(layer, "Group")
	fill := RGB(0xc2, 0x4b, 0x6e)
	s.AddShape(group, "Rose", ShapeKind{
		Shape:       EllipseShape{RX: 5, RY: 3},
		Fill:        &fill,
		StrokeWidth: 0.6,
	}, Transform{X: 12, Y: 8, Rotation: 0.5, ScaleX: 2, ScaleY: 1})
	s.AddShape(0, "Trail", ShapeKind{
		Shape: PathShape{Path: VectorPath{
			Commands: []PathCommand{
				MoveTo(geometry.Point2D{X: 0, Y: 0}),
				CubicTo(geometry.Point2D{X: 1, Y: 2}, geometry.Point2D{X: 3, Y: 2}, geometry.Point2D{X: 4, Y: 0}),
				Close(),
			},
			Closed: true,
		}},
		Stroke:      &defaultStroke,
		StrokeWidth: 0.4,
	}, IdentityTransform())
	s.SetStitchOverlays([]StitchOverlay{{
		Points:   []geometry.Point2D{{X: 0, Y: 0}, {X: 2, Y: 2}},
		Color:    RGB(0x2e, 0x6e, 0x4e),
		ShowDots: true,
	}})

	data, err := json.Marshal(s.Document())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	restored, err := FromDocument(doc)
	if err != nil {
		t.Fatalf("restore: %v", err)
	}

	if restored.ShapeCount() != s.ShapeCount() {
		t.Errorf("shape count %d, want %d", restored.ShapeCount(), s.ShapeCount())
	}
	if len(restored.StitchOverlays()) != 1 {
		t.Fatalf("got %d overlays, want 1", len(restored.StitchOverlays()))
	}

	// The restored tree must render the same items with the same transforms.
	want := s.RenderItems()
	got := restored.RenderItems()
	if len(got) != len(want) {
		t.Fatalf("got %d render items, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].Name != want[i].Name {
			t.Errorf("item %d name %q, want %q", i, got[i].Name, want[i].Name)
		}
		if got[i].WorldTransform != want[i].WorldTransform {
			t.Errorf("item %d transform %+v, want %+v", i, got[i].WorldTransform, want[i].WorldTransform)
		}
	}
}

func TestDocumentOmittedScaleRestoresIdentity(t *testing.T) {
	doc := Document{
		Version: DocumentVersion,
		Nodes: []DocumentNode{{
			Name:  "Square",
			Kind:  "shape",
			Shape: &DocumentShape{Kind: "rect", Width: 10, Height: 10},
		}},
	}
	s, err := FromDocument(doc)
	if err != nil {
		t.Fatalf("restore: %v", err)
	}
	items := s.RenderItems()
	if len(items) != 1 {
		t.Fatalf("got %d items, want 1", len(items))
	}
	p := items[0].WorldTransform.Apply(geometry.Point2D{X: 3, Y: 4})
	if p.X != 3 || p.Y != 4 {
		t.Errorf("zero scale not treated as identity: %+v", p)
	}
}

func TestFromDocumentRejectsUnknownKinds(t *testing.T) {
	cases := []struct {
		name string
		doc  Document
	}{
		{"node kind", Document{Nodes: []DocumentNode{{Name: "X", Kind: "blob"}}}},
		{"shape kind", Document{Nodes: []DocumentNode{{
			Name: "X", Kind: "shape", Shape: &DocumentShape{Kind: "spiral"},
		}}}},
		{"missing shape", Document{Nodes: []DocumentNode{{Name: "X", Kind: "shape"}}}},
		{"command op", Document{Nodes: []DocumentNode{{
			Name: "X", Kind: "shape",
			Shape: &DocumentShape{Kind: "path", Commands: []DocumentCommand{{Op: "wiggle"}}},
		}}}},
		{"command missing end", Document{Nodes: []DocumentNode{{
			Name: "X", Kind: "shape",
			Shape: &DocumentShape{Kind: "path", Commands: []DocumentCommand{{Op: "line"}}},
		}}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := FromDocument(tc.doc); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestSampleSceneSerializes(t *testing.T) {
	s := NewSampleScene()
	data, err := json.Marshal(s.Document())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	restored, err := FromDocument(doc)
	if err != nil {
		t.Fatalf("restore: %v", err)
	}
	if restored.ShapeCount() != s.ShapeCount() {
		t.Errorf("shape count %d, want %d", restored.ShapeCount(), s.ShapeCount())
	}
}
