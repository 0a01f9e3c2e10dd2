// Planar scattered-data interpolation for Go.
//
// Given a set of anchor points in the plane, each carrying a scalar or a
// fixed-length vector value (a color, say), this package builds functions
// that estimate the value at any other point in the plane. Three flavors are
// provided:
//
// PolygonInterpolator uses mean value coordinates inside and around a single
// simple polygon, whose anchors are given in polygon order.
//
// TriangulationInterpolator uses ordinary barycentric coordinates over a
// Delaunay triangulation of the anchors, and extrapolates from the hull edges
// facing the query point outside of it.
//
// TessellationInterpolator splits the anchors into non-convex polygons and
// uses a PolygonInterpolator in each, plus one around the whole hull for
// points outside of it.
//
// Extrapolated values are unbounded: they may fall outside the range of the
// anchor values.
package interpol

import "github.com/osuushi/interpol/geometry"

type Point = geometry.Point
type Simplex = geometry.Simplex
type Facet = geometry.Facet

// Interpolator estimates the value at any point in the plane. Evaluate is safe
// to call from multiple goroutines.
type Interpolator interface {
	Evaluate(p Point) Value
	EvaluateAll(ps []Point, out ...[]Value) []Value
}

var (
	_ Interpolator = &PolygonInterpolator{}
	_ Interpolator = &TriangulationInterpolator{}
	_ Interpolator = &TessellationInterpolator{}
)

// Value is the value of an anchor, or an interpolated value. Scalars are
// values of length one. All values of one anchor set have the same length.
type Value []float64

func Scalar(x float64) Value {
	return Value{x}
}

// Wrap each scalar in a Value.
func Scalars(xs ...float64) []Value {
	values := make([]Value, len(xs))
	for i, x := range xs {
		values[i] = Scalar(x)
	}
	return values
}

// The first component of the value. This is the value itself for scalars.
func (v Value) Float64() float64 {
	return v[0]
}

func (v Value) Clone() Value {
	return append(Value(nil), v...)
}

// Weighted sum of values. Weights and values must have the same length.
func blend(values []Value, weights []float64) Value {
	result := make(Value, len(values[0]))
	for i, value := range values {
		for d, x := range value {
			result[d] += weights[i] * x
		}
	}
	return result
}

// Linear blend of the values at both ends of a segment, for a point on it at
// distance ra from a and rb from b.
func blendOnEdge(a, b Value, ra, rb float64) Value {
	total := ra + rb
	return blend([]Value{a, b}, []float64{rb / total, ra / total})
}

// Shared by every interpolator's EvaluateAll. If an output slice is given, the
// output is written to its first len(ps) entries, growing it if it is too
// short, and the result is returned. If more than one output slice is
// provided, only the first is used.
func evaluateAll(interp Interpolator, ps []Point, out [][]Value) []Value {
	var result []Value
	if len(out) > 0 {
		result = out[0]
	}
	if len(result) < len(ps) {
		result = append(result, make([]Value, len(ps)-len(result))...)
	}
	for i, p := range ps {
		result[i] = interp.Evaluate(p)
	}
	return result
}

// Copy anchors and values, so the interpolator owns them.
func copyAnchors(points []Point, values []Value) ([]Point, []Value) {
	pointsCopy := append([]Point(nil), points...)
	valuesCopy := make([]Value, len(values))
	for i, v := range values {
		valuesCopy[i] = v.Clone()
	}
	return pointsCopy, valuesCopy
}
