package geometry

import "math"

// RegularPolygonVertices generates the vertices of a regular polygon with n
// sides inscribed in a circle of the given radius, centered at the origin.
// The first vertex sits at the top of the circle (-90 degrees), so a square
// reads top, right, bottom, left.
func RegularPolygonVertices(n int, radius float64) []Point2D {
	if n < 3 {
		n = 3
	}
	points := make([]Point2D, n)
	for i := 0; i < n; i++ {
		angle := -math.Pi/2 + float64(i)*2.0*math.Pi/float64(n)
		points[i] = Point2D{
			X: radius * math.Cos(angle),
			Y: radius * math.Sin(angle),
		}
	}
	return points
}

// Centroid computes the centroid (average position) of a set of points.
func Centroid(points []Point2D) Point2D {
	if len(points) == 0 {
		return Point2D{}
	}
	var sumX, sumY float64
	for _, p := range points {
		sumX += p.X
		sumY += p.Y
	}
	n := float64(len(points))
	return Point2D{X: sumX / n, Y: sumY / n}
}
