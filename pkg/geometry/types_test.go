package geometry

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

const eps = 1e-9

func almostEqual(a, b float64) bool {
	return scalar.EqualWithinAbs(a, b, eps)
}

func pointsAlmostEqual(a, b Point2D) bool {
	return almostEqual(a.X, b.X) && almostEqual(a.Y, b.Y)
}

func TestPointDistance(t *testing.T) {
	a := Point2D{X: 0, Y: 0}
	b := Point2D{X: 3, Y: 4}
	if d := a.Distance(b); !almostEqual(d, 5) {
		t.Errorf("Distance = %v, want 5", d)
	}
}

func TestPointArithmetic(t *testing.T) {
	a := Point2D{X: 1, Y: 2}
	b := Point2D{X: 3, Y: -1}

	if got := a.Add(b); !pointsAlmostEqual(got, Point2D{X: 4, Y: 1}) {
		t.Errorf("Add = %+v", got)
	}
	if got := a.Sub(b); !pointsAlmostEqual(got, Point2D{X: -2, Y: 3}) {
		t.Errorf("Sub = %+v", got)
	}
	if got := a.Scale(2); !pointsAlmostEqual(got, Point2D{X: 2, Y: 4}) {
		t.Errorf("Scale = %+v", got)
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 30, Height: 40}

	tests := []struct {
		name string
		p    Point2D
		want bool
	}{
		{"center", Point2D{X: 25, Y: 40}, true},
		{"corner", Point2D{X: 10, Y: 20}, true},
		{"left of", Point2D{X: 9, Y: 40}, false},
		{"below", Point2D{X: 25, Y: 61}, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.p); got != tt.want {
			t.Errorf("%s: Contains(%+v) = %v, want %v", tt.name, tt.p, got, tt.want)
		}
	}
}

func TestRectExpandAndUnion(t *testing.T) {
	r := Rect{X: 0, Y: 0, Width: 10, Height: 10}

	e := r.Expand(2)
	if e.X != -2 || e.Y != -2 || e.Width != 14 || e.Height != 14 {
		t.Errorf("Expand = %+v", e)
	}

	u := r.Union(Rect{X: 5, Y: -5, Width: 20, Height: 10})
	if u.X != 0 || u.Y != -5 || u.Width != 25 || u.Height != 15 {
		t.Errorf("Union = %+v", u)
	}
}

func TestAffineIdentity(t *testing.T) {
	p := Point2D{X: 3.5, Y: -7.25}
	if got := Identity().Apply(p); !pointsAlmostEqual(got, p) {
		t.Errorf("identity moved point: %+v", got)
	}
}

func TestAffineRotationApply(t *testing.T) {
	// Rotating (1, 0) by 90 degrees lands on (0, 1).
	got := Rotation(math.Pi / 2).Apply(Point2D{X: 1, Y: 0})
	if !pointsAlmostEqual(got, Point2D{X: 0, Y: 1}) {
		t.Errorf("rotation = %+v, want (0, 1)", got)
	}
}

func TestAffineComposeOrder(t *testing.T) {
	// Translate-then-scale and scale-then-translate differ.
	scale := Scale(2, 2)
	move := Translation(1, 0)

	p := Point2D{X: 1, Y: 0}
	if got := scale.Compose(move).Apply(p); !pointsAlmostEqual(got, Point2D{X: 4, Y: 0}) {
		t.Errorf("scale∘move = %+v, want (4, 0)", got)
	}
	if got := move.Compose(scale).Apply(p); !pointsAlmostEqual(got, Point2D{X: 3, Y: 0}) {
		t.Errorf("move∘scale = %+v, want (3, 0)", got)
	}
}

func TestAffineInverseRoundTrip(t *testing.T) {
	tf := Translation(5, -3).Compose(Rotation(0.7)).Compose(Scale(2, 0.5))
	inv, ok := tf.Inverse()
	if !ok {
		t.Fatal("transform should be invertible")
	}

	for _, p := range []Point2D{{X: 0, Y: 0}, {X: 10, Y: -4}, {X: -2.5, Y: 7}} {
		back := inv.Apply(tf.Apply(p))
		if !pointsAlmostEqual(back, p) {
			t.Errorf("round trip of %+v = %+v", p, back)
		}
	}
}

func TestAffineInverseSingular(t *testing.T) {
	if _, ok := Scale(0, 1).Inverse(); ok {
		t.Error("degenerate scale should not be invertible")
	}
}

func TestBoundingBox(t *testing.T) {
	points := []Point2D{{X: 3, Y: 1}, {X: -2, Y: 5}, {X: 0, Y: -4}}
	box := BoundingBox(points)
	if box.X != -2 || box.Y != -4 || box.Width != 5 || box.Height != 9 {
		t.Errorf("BoundingBox = %+v", box)
	}

	if empty := BoundingBox(nil); empty != (Rect{}) {
		t.Errorf("empty BoundingBox = %+v", empty)
	}
}

func TestRegularPolygonVertices(t *testing.T) {
	// A square of radius 10 reads top, right, bottom, left.
	verts := RegularPolygonVertices(4, 10)
	if len(verts) != 4 {
		t.Fatalf("got %d vertices", len(verts))
	}

	want := []Point2D{
		{X: 0, Y: -10},
		{X: 10, Y: 0},
		{X: 0, Y: 10},
		{X: -10, Y: 0},
	}
	for i, v := range verts {
		if !pointsAlmostEqual(v, want[i]) {
			t.Errorf("vertex %d = %+v, want %+v", i, v, want[i])
		}
		if d := v.Distance(Point2D{}); !almostEqual(d, 10) {
			t.Errorf("vertex %d distance = %v, want 10", i, d)
		}
	}
}

func TestRegularPolygonMinimumSides(t *testing.T) {
	if got := len(RegularPolygonVertices(1, 5)); got != 3 {
		t.Errorf("side count clamps to 3, got %d vertices", got)
	}
}
