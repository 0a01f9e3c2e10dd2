package interpol

import "github.com/osuushi/interpol/dbg"

// TriangulationInterpolator interpolates linearly inside each triangle of a
// Delaunay triangulation of the anchors. Points outside the hull either get a
// constant value (see WithOutsideValue) or are extrapolated from the hull
// facets that face them: the value of a hull anchor or edge they lie on, a
// linear blend along the nearest facet whose shadow they're in, or else the
// value of the nearest anchor on a visible facet.
type TriangulationInterpolator struct {
	points        []Point
	values        []Value
	tolerance     float64
	outsideValue  Value
	triangulation Triangulation
	hull          []int
	hullFinder    HullFinder
}

func NewTriangulationInterpolator(points []Point, values []Value, opts ...Option) (*TriangulationInterpolator, error) {
	dim, err := validate(points, values)
	if err != nil {
		return nil, err
	}
	cfg := newConfig(opts)
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if cfg.outsideValue != nil && len(cfg.outsideValue) != dim {
		return nil, invalidInputf("outside value has %d components, expected %d", len(cfg.outsideValue), dim)
	}

	points, values = copyAnchors(points, values)
	triangulation, err := cfg.triangulator.Triangulate(points)
	if err != nil {
		return nil, &GeometryComputationError{Op: "triangulate", Err: err}
	}
	hull, err := cfg.hullFinder.Hull(points)
	if err != nil {
		return nil, &GeometryComputationError{Op: "hull", Err: err}
	}

	ti := &TriangulationInterpolator{
		points:        points,
		values:        values,
		tolerance:     cfg.tolerance,
		outsideValue:  cfg.outsideValue,
		triangulation: triangulation,
		hull:          hull,
		hullFinder:    cfg.hullFinder,
	}
	dbg.Printf("triangulation interpolator %s: %d anchors, %d simplices", dbg.Name(ti), len(points), triangulation.Len())
	return ti, nil
}

// The triangulation the interpolator works on, for diagnostics.
func (ti *TriangulationInterpolator) InnerStructure() Triangulation {
	return ti.triangulation
}

func (ti *TriangulationInterpolator) Evaluate(p Point) Value {
	if s, ok := ti.triangulation.Locate(p); ok {
		simplex := ti.triangulation.Simplex(s)
		weights := ti.triangulation.BarycentricWeights(s, p)
		return blend(
			[]Value{ti.values[simplex[0]], ti.values[simplex[1]], ti.values[simplex[2]]},
			weights[:],
		)
	}
	if ti.outsideValue != nil {
		return ti.outsideValue.Clone()
	}
	return ti.extrapolate(p).value(ti.values)
}

func (ti *TriangulationInterpolator) extrapolate(p Point) outcome {
	facets := ti.hullFinder.Facets(ti.points, ti.hull, p)
	result := classifyOutside(ti.points, facets, p, ti.tolerance)
	if dbg.Enabled() {
		dbg.Printf("%s: extrapolating %v as %v", dbg.Name(ti), p, result)
	}
	return result
}

func (ti *TriangulationInterpolator) EvaluateAll(ps []Point, out ...[]Value) []Value {
	return evaluateAll(ti, ps, out)
}
