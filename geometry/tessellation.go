package geometry

import (
	"sort"

	"github.com/osuushi/interpol/dbg"
)

// Tessellation partitions the convex hull of a point set into simple polygons
// whose vertices are all points of the set. Adjacent polygons always share
// full edges, since every polygon is a union of Delaunay triangles.
type Tessellation struct {
	Points []Point
	// Each polygon is a counterclockwise ring of indices into Points.
	Polygons [][]int

	triangulation *Triangulation
	// Polygon index for each simplex of the triangulation
	owners []int
}

// Tessellate the convex hull of the points into polygons. Starting from the
// Delaunay triangulation, interior edges are removed longest first, merging
// the polygons on either side. A merge is skipped if the two polygons share
// any vertex besides the edge's endpoints, which keeps every polygon simple
// and every point on some polygon's boundary. If convex is true, merges that
// would produce a non-convex polygon are skipped as well.
func Tessellate(points []Point, convex bool) (result *Tessellation, err error) {
	defer func() {
		recoveredErr := HandleGeometryPanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()

	triangulation, err := Triangulate(points)
	if err != nil {
		return nil, err
	}

	m := newMerger(triangulation, convex)
	m.merge()
	result = m.tessellation()

	if dbg.Enabled() {
		dbg.Printf("tessellated %d triangles into %d polygons (convex: %t)",
			triangulation.Len(), len(result.Polygons), convex)
	}
	if dbg.Mode >= dbg.Draw {
		dbg.Show(result.Draw(dbgDrawScale))
	}
	return result, nil
}

func (t *Tessellation) Len() int {
	return len(t.Polygons)
}

// A copy of the i-th polygon's ring.
func (t *Tessellation) Polygon(i int) []int {
	return append([]int(nil), t.Polygons[i]...)
}

// Find the polygon containing p. Points within the triangulation's tolerance
// of the hull count as inside.
func (t *Tessellation) Locate(p Point) (int, bool) {
	s, ok := t.triangulation.Locate(p)
	if !ok {
		return -1, false
	}
	return t.owners[s], true
}

// The triangulation the tessellation was merged from.
func (t *Tessellation) Triangulation() *Triangulation {
	return t.triangulation
}

type interiorEdge struct {
	a, b int
	// left has the directed edge a->b, right has b->a
	left, right int
	length      float64
}

type merger struct {
	triangulation *Triangulation
	convex        bool
	// Union-find over simplex indices. Each root owns a ring.
	parent []int
	rings  map[int][]int
}

func newMerger(triangulation *Triangulation, convex bool) *merger {
	m := &merger{
		triangulation: triangulation,
		convex:        convex,
		parent:        make([]int, triangulation.Len()),
		rings:         make(map[int][]int, triangulation.Len()),
	}
	for i, s := range triangulation.Triangles {
		m.parent[i] = i
		m.rings[i] = []int{s[0], s[1], s[2]}
	}
	return m
}

func (m *merger) find(i int) int {
	for m.parent[i] != i {
		m.parent[i] = m.parent[m.parent[i]]
		i = m.parent[i]
	}
	return i
}

// Interior edges, longest first. Ties are broken by vertex indices so the
// result is deterministic.
func (m *merger) interiorEdges() []interiorEdge {
	points := m.triangulation.Points
	owner := make(map[[2]int]int, 3*m.triangulation.Len())
	for i, s := range m.triangulation.Triangles {
		for e := 0; e < 3; e++ {
			owner[[2]int{s[e], s[(e+1)%3]}] = i
		}
	}

	var edges []interiorEdge
	for i, s := range m.triangulation.Triangles {
		for e := 0; e < 3; e++ {
			a, b := s[e], s[(e+1)%3]
			j, ok := owner[[2]int{b, a}]
			if !ok || a > b {
				continue
			}
			edges = append(edges, interiorEdge{
				a: a, b: b,
				left: i, right: j,
				length: points[a].Sub(points[b]).Norm(),
			})
		}
	}

	sort.SliceStable(edges, func(i, j int) bool {
		if edges[i].length != edges[j].length {
			return edges[i].length > edges[j].length
		}
		if edges[i].a != edges[j].a {
			return edges[i].a < edges[j].a
		}
		return edges[i].b < edges[j].b
	})
	return edges
}

func (m *merger) merge() {
	for _, edge := range m.interiorEdges() {
		p, q := m.find(edge.left), m.find(edge.right)
		if p == q {
			continue
		}
		merged := join(m.rings[p], m.rings[q], edge.a, edge.b)
		if merged == nil {
			continue
		}
		if m.convex && !IsConvex(m.triangulation.Points, merged) {
			continue
		}
		if dbg.Enabled() {
			dbg.Printf("merging %s into %s across %d-%d",
				dbg.Name(polygonKey{m, q}), dbg.Name(polygonKey{m, p}), edge.a, edge.b)
		}
		m.parent[q] = p
		m.rings[p] = merged
		delete(m.rings, q)
	}
}

type polygonKey struct {
	m    *merger
	root int
}

// Join two counterclockwise rings across their shared edge. The first ring
// has the directed edge a->b, and the second has b->a. Returns nil if the
// rings share any other vertex.
func join(first, second []int, a, b int) []int {
	inFirst := make(map[int]struct{}, len(first))
	for _, v := range first {
		inFirst[v] = struct{}{}
	}
	common := 0
	for _, v := range second {
		if _, ok := inFirst[v]; !ok {
			continue
		}
		if v != a && v != b {
			return nil
		}
		common++
	}
	if common != 2 {
		return nil
	}

	/*
		The first ring runs b -> ... -> a, then the second ring continues from a
		back around to b:

		  b ----- first ----- a
		   \                 /
		    ---- second -----
	*/
	firstFromB := rotateTo(first, b)
	secondFromA := rotateTo(second, a)
	if firstFromB[len(firstFromB)-1] != a || secondFromA[len(secondFromA)-1] != b {
		fatalf("rings do not share the directed edge %d-%d", a, b)
	}
	merged := make([]int, 0, len(first)+len(second)-2)
	merged = append(merged, firstFromB...)
	return append(merged, secondFromA[1:len(secondFromA)-1]...)
}

func (m *merger) tessellation() *Tessellation {
	result := &Tessellation{
		Points:        m.triangulation.Points,
		triangulation: m.triangulation,
		owners:        make([]int, m.triangulation.Len()),
	}
	index := make(map[int]int, len(m.rings))
	for i := range m.triangulation.Triangles {
		if m.find(i) == i {
			index[i] = len(result.Polygons)
			result.Polygons = append(result.Polygons, m.rings[i])
		}
	}
	for i := range m.triangulation.Triangles {
		result.owners[i] = index[m.find(i)]
	}
	return result
}
