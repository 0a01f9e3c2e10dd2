package geometry

import (
	"math"

	"github.com/fogleman/delaunay"
	"github.com/golang/geo/r2"
	"github.com/osuushi/interpol/dbg"
)

// Triangulation is a Delaunay triangulation of a point set. It is immutable
// once built, so it is safe to query from multiple goroutines.
type Triangulation struct {
	Points    []Point
	Triangles []Simplex
	// Counterclockwise boundary, starting from the lexicographically smallest
	// point. Points lying on a hull edge are not included.
	Hull []int

	transforms []affine
	bounds     r2.Rect
	tolerance  float64
}

// The barycentric transform of a simplex. For a point p, the first two
// barycentric weights are inverse * (p - origin), where origin is the third
// vertex of the simplex.
type affine struct {
	origin  Point
	inverse [2][2]float64
}

// Build a Delaunay triangulation of the points. Fails if the points contain
// duplicates, or are all collinear.
//
// The triangles come from fogleman/delaunay. That library silently skips
// points it considers near duplicates of already inserted ones, and points
// lying exactly on the hull while it sweeps. Those are inserted afterwards,
// followed by edge flips until every edge is locally Delaunay again.
func Triangulate(points []Point) (result *Triangulation, err error) {
	defer func() {
		recoveredErr := HandleGeometryPanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	t := newTriangulator(points)
	t.triangulate()
	return newTriangulation(t), nil
}

func newTriangulation(t *triangulator) *Triangulation {
	points, triangles := t.points, t.triangles
	result := &Triangulation{
		Points:     points,
		Triangles:  triangles,
		Hull:       t.hull,
		transforms: make([]affine, len(triangles)),
		bounds:     r2.RectFromPoints(points...),
		tolerance:  t.tolerance,
	}
	for i, s := range triangles {
		p0, p1, p2 := points[s[0]], points[s[1]], points[s[2]]
		a, b := p0.X-p2.X, p1.X-p2.X
		c, d := p0.Y-p2.Y, p1.Y-p2.Y
		det := a*d - b*c
		if det == 0 {
			fatalf("degenerate simplex %v", s)
		}
		result.transforms[i] = affine{
			origin: p2,
			inverse: [2][2]float64{
				{d / det, -b / det},
				{-c / det, a / det},
			},
		}
	}
	return result
}

func (t *Triangulation) Len() int {
	return len(t.Triangles)
}

func (t *Triangulation) Simplex(i int) Simplex {
	return t.Triangles[i]
}

// Barycentric weights of p relative to simplex i, in the order of the
// simplex's vertices. They sum to one, and are all non-negative iff p is in
// the simplex.
func (t *Triangulation) BarycentricWeights(i int, p Point) [3]float64 {
	transform := t.transforms[i]
	offset := p.Sub(transform.origin)
	b0 := transform.inverse[0][0]*offset.X + transform.inverse[0][1]*offset.Y
	b1 := transform.inverse[1][0]*offset.X + transform.inverse[1][1]*offset.Y
	return [3]float64{b0, b1, 1 - b0 - b1}
}

// Find the simplex containing p. Points within a small tolerance of the hull
// count as inside. When p is on an edge or vertex shared by several simplices, the one
// that contains it most deeply wins.
func (t *Triangulation) Locate(p Point) (int, bool) {
	if !t.bounds.ExpandedByMargin(t.tolerance).ContainsPoint(p) {
		return -1, false
	}
	best, bestWeight := -1, math.Inf(-1)
	for i := range t.Triangles {
		w := t.BarycentricWeights(i, p)
		minWeight := math.Min(w[0], math.Min(w[1], w[2]))
		if minWeight > bestWeight {
			best, bestWeight = i, minWeight
		}
	}
	if bestWeight < -Epsilon {
		return -1, false
	}
	return best, true
}

type triangulator struct {
	points []Point
	// Epsilon scaled to the extent of the points
	tolerance float64
	triangles []Simplex
	hull      []int
	inserted  int
	flips     int
}

func newTriangulator(points []Point) *triangulator {
	if len(points) < 3 {
		fatalf("cannot triangulate %d points", len(points))
	}
	return &triangulator{
		points:    points,
		tolerance: scaledTolerance(points),
	}
}

func (t *triangulator) triangulate() {
	t.checkDuplicates()

	input := make([]delaunay.Point, len(t.points))
	for i, p := range t.points {
		input[i] = delaunay.Point{X: p.X, Y: p.Y}
	}
	output, err := delaunay.Triangulate(input)
	if err != nil {
		wrapf(err, "points are collinear")
	}

	used := make([]bool, len(t.points))
	for i := 0; i+2 < len(output.Triangles); i += 3 {
		s := Simplex{output.Triangles[i], output.Triangles[i+1], output.Triangles[i+2]}
		if Orient(t.points[s[0]], t.points[s[1]], t.points[s[2]]) < 0 {
			s[1], s[2] = s[2], s[1]
		}
		t.triangles = append(t.triangles, s)
		used[s[0]], used[s[1]], used[s[2]] = true, true, true
	}
	t.hull = t.boundary(input, output.ConvexHull)

	for i, ok := range used {
		if !ok {
			t.insert(i)
			t.inserted++
		}
	}
	if t.inserted > 0 {
		t.legalize()
	}

	if dbg.Enabled() {
		dbg.Printf("triangulated %d points into %d triangles (%d inserted, %d flips)",
			len(t.points), len(t.triangles), t.inserted, t.flips)
	}
}

func (t *triangulator) checkDuplicates() {
	for i, p := range t.points {
		for j := i + 1; j < len(t.points); j++ {
			d := p.Sub(t.points[j])
			if math.Abs(d.X) <= t.tolerance && math.Abs(d.Y) <= t.tolerance {
				fatalf("duplicate points %d and %d at %v", i, j, p)
			}
		}
	}
}

// Convert the library's hull back to indices, counterclockwise from the
// lexicographically smallest point, without points lying on hull edges.
func (t *triangulator) boundary(input []delaunay.Point, hullPoints []delaunay.Point) []int {
	index := make(map[delaunay.Point]int, len(input))
	for i, p := range input {
		index[p] = i
	}
	ring := make([]int, 0, len(hullPoints))
	for _, p := range hullPoints {
		i, ok := index[p]
		if !ok {
			fatalf("hull point %v is not an input point", p)
		}
		ring = append(ring, i)
	}
	if SignedArea(t.points, ring) < 0 {
		ring = Reverse(ring)
	}

	hull := make([]int, 0, len(ring))
	smallest := -1
	for i, v := range ring {
		prev := t.points[ring[CircularIndex(i-1, len(ring))]]
		next := t.points[ring[CircularIndex(i+1, len(ring))]]
		if LineDistance(prev, t.points[v], next) <= t.tolerance {
			continue
		}
		hull = append(hull, v)
		if smallest < 0 || lexicographicallyLess(t.points[v], t.points[smallest]) {
			smallest = v
		}
	}
	if len(hull) < 3 {
		fatalf("points are collinear")
	}
	return rotateTo(hull, smallest)
}

func lexicographicallyLess(a, b Point) bool {
	if a.X != b.X {
		return a.X < b.X
	}
	return a.Y < b.Y
}

// Signed distance from p to the nearest edge line of a simplex. Positive when p
// is strictly inside.
func (t *triangulator) depth(s Simplex, p Point) float64 {
	depth := math.Inf(1)
	for e := 0; e < 3; e++ {
		a, b := t.points[s[e]], t.points[s[(e+1)%3]]
		depth = math.Min(depth, LineDistance(a, b, p))
	}
	return depth
}

func (t *triangulator) insert(k int) {
	p := t.points[k]
	best, bestDepth := -1, math.Inf(-1)
	for i, s := range t.triangles {
		if depth := t.depth(s, p); depth > bestDepth {
			best, bestDepth = i, depth
		}
	}
	if best < 0 || bestDepth < -t.tolerance {
		fatalf("point %d at %v is outside the hull", k, p)
	}

	s := t.triangles[best]
	for e := 0; e < 3; e++ {
		a, b := t.points[s[e]], t.points[s[(e+1)%3]]
		if math.Abs(LineDistance(a, b, p)) <= t.tolerance {
			t.splitEdge(best, e, k)
			return
		}
	}

	/*
	     c
	    /|\
	   / k \
	  /_/_\_\
	 a       b
	*/
	a, b, c := s[0], s[1], s[2]
	t.triangles[best] = Simplex{a, b, k}
	t.triangles = append(t.triangles, Simplex{b, c, k}, Simplex{c, a, k})
}

// Split the e-th edge of triangle i at point k, along with the triangle on the
// other side of the edge, if there is one.
func (t *triangulator) splitEdge(i, e, k int) {
	s := t.triangles[i]
	a, b, c := s[e], s[(e+1)%3], s[(e+2)%3]
	t.triangles[i] = Simplex{a, k, c}
	t.triangles = append(t.triangles, Simplex{k, b, c})

	for j, u := range t.triangles {
		for f := 0; f < 3; f++ {
			if u[f] == b && u[(f+1)%3] == a {
				d := u[(f+2)%3]
				t.triangles[j] = Simplex{b, k, d}
				t.triangles = append(t.triangles, Simplex{k, a, d})
				return
			}
		}
	}
}

type edgeRef struct {
	triangle, edge int
}

// Flip edges until every edge is locally Delaunay (Lawson). Each pass flips
// every illegal edge whose triangles have not already changed in that pass.
func (t *triangulator) legalize() {
	maxPasses := len(t.points)*len(t.points) + 10
	for pass := 0; ; pass++ {
		if pass > maxPasses {
			fatalf("edge flipping did not converge after %d passes", pass)
		}

		edges := make(map[[2]int]edgeRef, 3*len(t.triangles))
		for i, s := range t.triangles {
			for e := 0; e < 3; e++ {
				edges[[2]int{s[e], s[(e+1)%3]}] = edgeRef{i, e}
			}
		}

		touched := make([]bool, len(t.triangles))
		flipped := false
		for i := range t.triangles {
			for e := 0; e < 3 && !touched[i]; e++ {
				s := t.triangles[i]
				a, b, c := s[e], s[(e+1)%3], s[(e+2)%3]
				ref, ok := edges[[2]int{b, a}]
				if !ok || touched[ref.triangle] {
					continue
				}
				d := t.triangles[ref.triangle][(ref.edge+2)%3]
				if !t.shouldFlip(a, b, c, d) {
					continue
				}
				/*
				    c            c
				   /|\          / \
				  a | b   ->   a---b
				   \|/          \ /
				    d            d
				*/
				t.triangles[i] = Simplex{a, d, c}
				t.triangles[ref.triangle] = Simplex{d, b, c}
				touched[i], touched[ref.triangle] = true, true
				flipped = true
				t.flips++
			}
		}
		if !flipped {
			return
		}
	}
}

// The edge ab, shared by triangles abc and bad, should be flipped if d is
// strictly inside the circumcircle of abc. The orientation checks guard
// against flipping a non-convex quadrilateral due to rounding.
func (t *triangulator) shouldFlip(a, b, c, d int) bool {
	pa, pb, pc, pd := t.points[a], t.points[b], t.points[c], t.points[d]
	det, magnitude := inCircle(pa, pb, pc, pd)
	if det <= Epsilon*magnitude {
		return false
	}
	return Orient(pa, pd, pc) > 0 && Orient(pd, pb, pc) > 0
}
