package interpol

import "github.com/osuushi/interpol/dbg"

// TessellationInterpolator splits the anchors into polygons, and uses a
// PolygonInterpolator inside each one. Adjacent polygons share whole edges,
// so the result is continuous across them. Points outside the hull use a
// PolygonInterpolator over the hull boundary.
type TessellationInterpolator struct {
	tessellation Tessellation
	polygons     []*PolygonInterpolator
	hull         *PolygonInterpolator
}

func NewTessellationInterpolator(points []Point, values []Value, opts ...Option) (*TessellationInterpolator, error) {
	if _, err := validate(points, values); err != nil {
		return nil, err
	}
	cfg := newConfig(opts)
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	points, values = copyAnchors(points, values)
	tessellation, err := cfg.tessellator.Tessellate(points, false)
	if err != nil {
		return nil, &GeometryComputationError{Op: "tessellate", Err: err}
	}
	hull, err := cfg.hullFinder.Hull(points)
	if err != nil {
		return nil, &GeometryComputationError{Op: "hull", Err: err}
	}

	ti := &TessellationInterpolator{
		tessellation: tessellation,
		polygons:     make([]*PolygonInterpolator, tessellation.Len()),
		hull:         subsetInterpolator(points, values, hull, cfg.tolerance),
	}
	for i := range ti.polygons {
		ti.polygons[i] = subsetInterpolator(points, values, tessellation.Polygon(i), cfg.tolerance)
	}
	dbg.Printf("tessellation interpolator %s: %d anchors, %d polygons, %d hull vertices",
		dbg.Name(ti), len(points), len(ti.polygons), len(hull))
	return ti, nil
}

func subsetInterpolator(points []Point, values []Value, ring []int, tolerance float64) *PolygonInterpolator {
	subsetPoints := make([]Point, len(ring))
	subsetValues := make([]Value, len(ring))
	for i, index := range ring {
		subsetPoints[i] = points[index]
		subsetValues[i] = values[index]
	}
	return newPolygonInterpolator(subsetPoints, subsetValues, tolerance)
}

// The tessellation the interpolator works on, for diagnostics.
func (ti *TessellationInterpolator) InnerStructure() Tessellation {
	return ti.tessellation
}

func (ti *TessellationInterpolator) Evaluate(p Point) Value {
	if i, ok := ti.tessellation.Locate(p); ok {
		return ti.polygons[i].Evaluate(p)
	}
	return ti.hull.Evaluate(p)
}

func (ti *TessellationInterpolator) EvaluateAll(ps []Point, out ...[]Value) []Value {
	return evaluateAll(ti, ps, out)
}
