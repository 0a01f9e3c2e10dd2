package geometry

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTriangulate(t *testing.T) {
	cases := map[string][]Point{
		"square":        squarePoints,
		"triangle":      {{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 0}},
		"grid":          gridPoints(5),
		"random small":  randomPoints(1, 10, 1),
		"random medium": randomPoints(2, 60, 100),
	}
	for name, points := range cases {
		points := points
		t.Run(name, func(t *testing.T) {
			triangulation, err := Triangulate(points)
			require.NoError(t, err)
			assertValidTriangulation(t, points, triangulation)
		})
	}

	t.Run("square with center", func(t *testing.T) {
		points := []Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}, {X: 0.5, Y: 0.5}}
		triangulation, err := Triangulate(points)
		require.NoError(t, err)
		assert.Equal(t, 4, triangulation.Len())
		for i := 0; i < triangulation.Len(); i++ {
			assert.Contains(t, triangulation.Simplex(i), 4)
		}
	})

	t.Run("duplicate points", func(t *testing.T) {
		points := []Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 0}}
		_, err := Triangulate(points)
		assert.EqualError(t, err, fmt.Sprintf("duplicate points 1 and 3 at %v", points[1]))
	})

	t.Run("collinear points", func(t *testing.T) {
		_, err := Triangulate([]Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "points are collinear")
	})

	t.Run("tiny and huge scales", func(t *testing.T) {
		for _, scale := range []float64{1e-12, 1e-6, 1e9} {
			points := []Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}, {X: 0.5, Y: 0.5}}
			for i := range points {
				points[i] = points[i].Mul(scale)
			}
			triangulation, err := Triangulate(points)
			require.NoError(t, err, "scale %g", scale)
			assert.Equal(t, 4, triangulation.Len(), "scale %g", scale)
			assert.Equal(t, []int{0, 1, 2, 3}, triangulation.Hull, "scale %g", scale)

			s, ok := triangulation.Locate(Point{X: 0.5, Y: 0.25}.Mul(scale))
			require.True(t, ok, "scale %g", scale)
			weights := triangulation.BarycentricWeights(s, Point{X: 0.5, Y: 0.25}.Mul(scale))
			assert.InDelta(t, 1.0, weights[0]+weights[1]+weights[2], 1e-9)
		}
	})

	t.Run("duplicates at tiny scale", func(t *testing.T) {
		points := []Point{{X: 0, Y: 0}, {X: 1e-12, Y: 0}, {X: 0, Y: 1e-12}, {X: 1e-12, Y: 1e-33}}
		_, err := Triangulate(points)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate points 1 and 3")
	})
}

func TestTriangulationLocate(t *testing.T) {
	points := randomPoints(3, 30, 10)
	triangulation, err := Triangulate(points)
	require.NoError(t, err)
	hull, err := ConvexHull(points)
	require.NoError(t, err)

	t.Run("weights reconstruct the point", func(t *testing.T) {
		r := rand.New(rand.NewSource(4))
		for i := 0; i < 200; i++ {
			p := Point{X: r.Float64() * 10, Y: r.Float64() * 10}
			s, ok := triangulation.Locate(p)
			if !ContainsPointByEvenOdd(points, hull, p) {
				assert.False(t, ok, "%v is outside the hull", p)
				continue
			}
			require.True(t, ok, "%v is inside the hull", p)

			weights := triangulation.BarycentricWeights(s, p)
			simplex := triangulation.Simplex(s)
			var reconstructed Point
			var sum float64
			for k, w := range weights {
				assert.GreaterOrEqual(t, w, -Epsilon)
				sum += w
				reconstructed = reconstructed.Add(points[simplex[k]].Mul(w))
			}
			assert.InDelta(t, 1.0, sum, Epsilon)
			assert.InDelta(t, p.X, reconstructed.X, 1e-7)
			assert.InDelta(t, p.Y, reconstructed.Y, 1e-7)
		}
	})

	t.Run("vertices", func(t *testing.T) {
		for i, p := range points {
			s, ok := triangulation.Locate(p)
			require.True(t, ok)
			weights := triangulation.BarycentricWeights(s, p)
			k := -1
			for j, v := range triangulation.Simplex(s) {
				if v == i {
					k = j
				}
			}
			require.NotEqual(t, -1, k, "point %d is not a vertex of its simplex", i)
			assert.InDelta(t, 1.0, weights[k], 1e-7)
		}
	})

	t.Run("far away", func(t *testing.T) {
		_, ok := triangulation.Locate(Point{X: 100, Y: -100})
		assert.False(t, ok)
	})
}
