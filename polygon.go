package interpol

import "math"

// PolygonInterpolator interpolates inside a simple polygon with mean value
// coordinates. The anchors are the vertices of the polygon, in order (either
// orientation works). Outside the polygon, the same coordinates extrapolate
// smoothly, without any bound.
type PolygonInterpolator struct {
	points    []Point
	values    []Value
	tolerance float64
}

func NewPolygonInterpolator(points []Point, values []Value, opts ...Option) (*PolygonInterpolator, error) {
	if _, err := validate(points, values); err != nil {
		return nil, err
	}
	cfg := newConfig(opts)
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return newPolygonInterpolator(points, values, cfg.tolerance), nil
}

// Takes ownership of copies of the anchors. Inputs are assumed valid.
func newPolygonInterpolator(points []Point, values []Value, tolerance float64) *PolygonInterpolator {
	points, values = copyAnchors(points, values)
	return &PolygonInterpolator{
		points:    points,
		values:    values,
		tolerance: tolerance,
	}
}

// Copy of the polygon's vertices.
func (pi *PolygonInterpolator) Anchors() []Point {
	return append([]Point(nil), pi.points...)
}

func (pi *PolygonInterpolator) Evaluate(p Point) Value {
	n := len(pi.points)
	eps := pi.tolerance

	// Vectors from p to each vertex, and their lengths
	s := make([]Point, n)
	r := make([]float64, n)
	for i, anchor := range pi.points {
		s[i] = anchor.Sub(p)
		r[i] = s[i].Norm()
		if r[i] < eps {
			return pi.values[i].Clone()
		}
	}

	// Twice the signed area and the dot product of each (p, v_i, v_i+1)
	// triangle. A zero area with a negative dot product means p is on the edge.
	t := make([]float64, n)
	for i := range s {
		next := (i + 1) % n
		area := s[i].Cross(s[next])
		dot := s[i].Dot(s[next])
		if math.Abs(area) < eps && dot < 0 {
			return blendOnEdge(pi.values[i], pi.values[next], r[i], r[next])
		}
		t[i] = area / (r[i]*r[next] + dot)
	}

	weights := make([]float64, n)
	var total float64
	for i := range weights {
		prev := (i + n - 1) % n
		weights[i] = (t[prev] + t[i]) / r[i]
		total += weights[i]
	}
	for i := range weights {
		weights[i] /= total
	}
	return blend(pi.values, weights)
}

func (pi *PolygonInterpolator) EvaluateAll(ps []Point, out ...[]Value) []Value {
	return evaluateAll(pi, ps, out)
}
