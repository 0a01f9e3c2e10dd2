package geometry

import "github.com/golang/geo/r2"

type Point = r2.Point

// A simplex is a triangle of a triangulation, given as three indices into the
// triangulated point set. Simplices are always counterclockwise.
type Simplex [3]int

// A facet is an edge of a convex hull, from A to B in counterclockwise order.
// Visible is only meaningful for facets returned by VisibleFacets.
type Facet struct {
	A, B    int
	Visible bool
}
