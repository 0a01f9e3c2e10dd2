package geometry

// Compute the convex hull of a point set. The result is a list of indices into
// points, in counterclockwise order, starting from the lexicographically
// smallest point. Points lying on a hull edge are not included.
//
// The hull is the boundary of the Delaunay triangulation, so this fails for
// the same inputs Triangulate does.
func ConvexHull(points []Point) ([]int, error) {
	triangulation, err := Triangulate(points)
	if err != nil {
		return nil, err
	}
	return triangulation.Hull, nil
}

// Return the facets of a counterclockwise hull, flagging the ones that are
// visible from the given point. A facet is visible when the point lies strictly
// outside of it, so a point inside the hull sees no facets.
func VisibleFacets(points []Point, hull []int, from Point) []Facet {
	facets := make([]Facet, len(hull))
	for i, a := range hull {
		b := hull[CircularIndex(i+1, len(hull))]
		facets[i] = Facet{
			A:       a,
			B:       b,
			Visible: Orient(points[a], points[b], from) < 0,
		}
	}
	return facets
}
