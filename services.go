package interpol

import "github.com/osuushi/interpol/geometry"

// The interpolators don't compute any geometry themselves. They ask these
// collaborators for it, so that other triangulation or tessellation
// strategies can be swapped in with options. The defaults live in the
// geometry package.

type Triangulator interface {
	Triangulate(points []Point) (Triangulation, error)
}

// Triangulation must be safe for concurrent reads once built.
type Triangulation interface {
	Len() int
	Simplex(i int) Simplex
	// Index of the simplex containing p, or false if p is outside the hull.
	Locate(p Point) (int, bool)
	// Weights of p relative to the vertices of simplex i. They sum to one.
	BarycentricWeights(i int, p Point) [3]float64
}

type HullFinder interface {
	// Indices of the hull boundary, in counterclockwise order.
	Hull(points []Point) ([]int, error)
	// Facets of a hull returned by Hull, with the ones visible from the given
	// point flagged. Called once per query outside the hull, so it should not
	// recompute the hull.
	Facets(points []Point, hull []int, from Point) []Facet
}

type Tessellator interface {
	Tessellate(points []Point, convex bool) (Tessellation, error)
}

// Tessellation must be safe for concurrent reads once built.
type Tessellation interface {
	Len() int
	// Indices of the i-th polygon, in cyclic order.
	Polygon(i int) []int
	// Index of the polygon containing p, or false if p is outside the hull.
	Locate(p Point) (int, bool)
}

var (
	_ Triangulation = &geometry.Triangulation{}
	_ Tessellation  = &geometry.Tessellation{}
)

type delaunayTriangulator struct{}

func (delaunayTriangulator) Triangulate(points []Point) (Triangulation, error) {
	t, err := geometry.Triangulate(points)
	if err != nil {
		return nil, err
	}
	return t, nil
}

type delaunayHull struct{}

func (delaunayHull) Hull(points []Point) ([]int, error) {
	return geometry.ConvexHull(points)
}

func (delaunayHull) Facets(points []Point, hull []int, from Point) []Facet {
	return geometry.VisibleFacets(points, hull, from)
}

type mergingTessellator struct{}

func (mergingTessellator) Tessellate(points []Point, convex bool) (Tessellation, error) {
	t, err := geometry.Tessellate(points, convex)
	if err != nil {
		return nil, err
	}
	return t, nil
}
