package geometry

// Polygons in this package are index rings into a shared point slice, rather
// than point lists. That lets adjacent polygons of a tessellation share
// vertices exactly.

// Twice the signed area of the ring. Positive for counterclockwise rings.
func SignedArea(points []Point, ring []int) float64 {
	var area float64
	for i, vertex := range ring {
		next := ring[CircularIndex(i+1, len(ring))]
		area += points[vertex].Cross(points[next])
	}
	return area
}

func IsCCW(points []Point, ring []int) bool {
	return SignedArea(points, ring) > 0
}

// A ring is convex if no vertex turns clockwise. Collinear vertices are
// allowed. The ring must be counterclockwise.
func IsConvex(points []Point, ring []int) bool {
	n := len(ring)
	vertices := make([]Point, n)
	for i, vertex := range ring {
		vertices[i] = points[vertex]
	}
	tolerance := scaledTolerance(vertices)
	for i, vertex := range ring {
		prev := points[ring[CircularIndex(i-1, n)]]
		next := points[ring[CircularIndex(i+1, n)]]
		if LineDistance(prev, points[vertex], next) < -tolerance {
			return false
		}
	}
	return true
}

// Even-odd point-in-polygon. Output is not defined for points exactly on the
// boundary.
func ContainsPointByEvenOdd(points []Point, ring []int, p Point) bool {
	return CrossingCount(points, ring, p)%2 == 1
}

// Number of ring edges crossed by a ray from p towards +x.
func CrossingCount(points []Point, ring []int, p Point) int {
	crossingCount := 0
	for i, vertex := range ring {
		a := points[vertex]
		b := points[ring[CircularIndex(i+1, len(ring))]]
		if (a.Y > p.Y) == (b.Y > p.Y) {
			continue
		}
		x := a.X + (p.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
		if x > p.X {
			crossingCount++
		}
	}
	return crossingCount
}

func Reverse(ring []int) []int {
	reversed := make([]int, 0, len(ring))
	for i := len(ring) - 1; i >= 0; i-- {
		reversed = append(reversed, ring[i])
	}
	return reversed
}

// Rotate a ring so that it starts at the given vertex. Returns nil if the
// vertex is not in the ring.
func rotateTo(ring []int, vertex int) []int {
	for i, v := range ring {
		if v == vertex {
			rotated := make([]int, 0, len(ring))
			rotated = append(rotated, ring[i:]...)
			return append(rotated, ring[:i]...)
		}
	}
	return nil
}
