package geometry

// This contains no actual tests. It is just a helper for checking the
// structures the package builds.

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper to check that a triangulation is valid. The rules are:
// 1. Every point is a vertex of some triangle.
// 2. Every triangle is counterclockwise with nonzero area.
// 3. No directed edge appears twice, so triangles don't overlap.
// 4. The areas of the triangles sum to the area of the hull.
// 5. No point is strictly inside any triangle's circumcircle.
func assertValidTriangulation(t *testing.T, points []Point, triangulation *Triangulation) {
	used := make([]bool, len(points))
	edges := make(map[[2]int]struct{})
	var area float64
	for _, s := range triangulation.Triangles {
		orientation := Orient(points[s[0]], points[s[1]], points[s[2]])
		require.Greater(t, orientation, Epsilon, "degenerate or clockwise triangle %v", s)
		area += orientation
		for e := 0; e < 3; e++ {
			used[s[e]] = true
			edge := [2]int{s[e], s[(e+1)%3]}
			_, duplicate := edges[edge]
			require.False(t, duplicate, "edge %v appears twice", edge)
			edges[edge] = struct{}{}
		}
	}
	for i, ok := range used {
		assert.True(t, ok, "point %d is not in any triangle", i)
	}

	hull, err := ConvexHull(points)
	require.NoError(t, err)
	assert.InDelta(t, SignedArea(points, hull), area, 1e-6, "triangle areas must sum to the hull area")

	for _, s := range triangulation.Triangles {
		for d := range points {
			if d == s[0] || d == s[1] || d == s[2] {
				continue
			}
			det, magnitude := inCircle(points[s[0]], points[s[1]], points[s[2]], points[d])
			assert.LessOrEqual(t, det, 1e-6*magnitude, "point %d is inside the circumcircle of %v", d, s)
		}
	}
}

// Helper to check that a tessellation partitions the hull into simple
// counterclockwise polygons, using every point.
func assertValidTessellation(t *testing.T, points []Point, tessellation *Tessellation) {
	used := make([]bool, len(points))
	var area float64
	for i := 0; i < tessellation.Len(); i++ {
		ring := tessellation.Polygon(i)
		require.GreaterOrEqual(t, len(ring), 3)
		require.True(t, IsCCW(points, ring), "polygon %d is not counterclockwise", i)
		seen := make(map[int]struct{}, len(ring))
		for _, v := range ring {
			_, repeated := seen[v]
			require.False(t, repeated, "polygon %d repeats vertex %d", i, v)
			seen[v] = struct{}{}
			used[v] = true
		}
		area += SignedArea(points, ring)
	}
	for i, ok := range used {
		assert.True(t, ok, "point %d is not in any polygon", i)
	}

	hull, err := ConvexHull(points)
	require.NoError(t, err)
	assert.InDelta(t, SignedArea(points, hull), area, 1e-6, "polygon areas must sum to the hull area")
}

func randomPoints(seed int64, n int, size float64) []Point {
	r := rand.New(rand.NewSource(seed))
	points := make([]Point, n)
	for i := range points {
		points[i] = Point{X: r.Float64() * size, Y: r.Float64() * size}
	}
	return points
}

func gridPoints(n int) []Point {
	points := make([]Point, 0, n*n)
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			points = append(points, Point{X: float64(x), Y: float64(y)})
		}
	}
	return points
}
