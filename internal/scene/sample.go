package scene

import (
	"math"

	"stitch-studio/pkg/colorutil"
	"stitch-studio/pkg/geometry"
)

// NewSampleScene builds a small demo document: a hoop outline, a few styled
// shapes on a motif layer, and a running-stitch overlay. Used at startup so
// the canvas is never empty on first launch.
func NewSampleScene() *Scene {
	s := NewScene()

	frame := s.AddLayer("Hoop")
	hoopStroke := FromNRGBA(colorutil.ThreadWalnut)
	s.AddShape(frame, "Hoop outline", ShapeKind{
		Shape:       EllipseShape{RX: 65, RY: 65},
		Stroke:      &hoopStroke,
		StrokeWidth: 1.2,
	}, TranslateTransform(0, 0))

	motif := s.AddLayer("Motif")

	petalFill := FromNRGBA(colorutil.ThreadRose)
	for i := 0; i < 5; i++ {
		angle := float64(i) * 2 * math.Pi / 5
		s.AddShape(motif, "Petal", ShapeKind{
			Shape: EllipseShape{RX: 14, RY: 6},
			Fill:  &petalFill,
		}, Transform{
			X:        22 * math.Cos(angle),
			Y:        22 * math.Sin(angle),
			Rotation: angle,
			ScaleX:   1,
			ScaleY:   1,
		})
	}

	centerFill := FromNRGBA(colorutil.ThreadGold)
	s.AddShape(motif, "Center", ShapeKind{
		Shape: EllipseShape{RX: 7, RY: 7},
		Fill:  &centerFill,
	}, TranslateTransform(0, 0))

	labelStroke := FromNRGBA(colorutil.ThreadLeaf)
	s.AddShape(motif, "Leaf", ShapeKind{
		Shape: PathShape{Path: VectorPath{
			Commands: []PathCommand{
				MoveTo(geometry.Point2D{X: 0, Y: 34}),
				CubicTo(
					geometry.Point2D{X: 10, Y: 38},
					geometry.Point2D{X: 14, Y: 46},
					geometry.Point2D{X: 10, Y: 52},
				),
				CubicTo(
					geometry.Point2D{X: 2, Y: 48},
					geometry.Point2D{X: -2, Y: 40},
					geometry.Point2D{X: 0, Y: 34},
				),
				Close(),
			},
			Closed: true,
		}},
		Stroke:      &labelStroke,
		StrokeWidth: 0.6,
	}, IdentityTransform())

	swatch := s.AddLayer("Swatches")
	swatchFill := FromNRGBA(colorutil.ThreadDenim)
	s.AddShape(swatch, "Swatch", ShapeKind{
		Shape: RectShape{Width: 18, Height: 12, CornerRadius: 2},
		Fill:  &swatchFill,
	}, TranslateTransform(-62, -58))
	s.AddShape(swatch, "Badge", ShapeKind{
		Shape:       PolygonShape{Sides: 6, Radius: 7},
		Stroke:      &labelStroke,
		StrokeWidth: 0.5,
	}, TranslateTransform(52, -52))

	s.SetStitchOverlays([]StitchOverlay{runningStitchRing(7.5, 48)})
	return s
}

// runningStitchRing approximates a circular running stitch as a point ring.
func runningStitchRing(radius float64, steps int) StitchOverlay {
	points := make([]geometry.Point2D, 0, steps+1)
	for i := 0; i <= steps; i++ {
		a := float64(i) * 2 * math.Pi / float64(steps)
		points = append(points, geometry.Point2D{
			X: radius * math.Cos(a),
			Y: radius * math.Sin(a),
		})
	}
	return StitchOverlay{
		Points:   points,
		Color:    FromNRGBA(colorutil.ThreadBerry),
		ShowDots: true,
	}
}
