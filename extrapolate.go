package interpol

import (
	"fmt"
	"math"
)

// How a point outside the hull relates to the hull facets facing it. The
// checks run in this order, and the first one that applies wins.
type outcomeKind int

const (
	onNode outcomeKind = iota
	onEdge
	inShadow
	nearestAnchor
)

func (k outcomeKind) String() string {
	switch k {
	case onNode:
		return "OnNode"
	case onEdge:
		return "OnEdge"
	case inShadow:
		return "InShadow"
	case nearestAnchor:
		return "NearestAnchor"
	}
	return fmt.Sprintf("outcomeKind(%d)", int(k))
}

// For onNode and nearestAnchor, only a is meaningful. For onEdge and inShadow,
// the value is wa*value(a) + wb*value(b).
type outcome struct {
	kind   outcomeKind
	a, b   int
	wa, wb float64
}

func (o outcome) String() string {
	switch o.kind {
	case onNode, nearestAnchor:
		return fmt.Sprintf("%v(%d)", o.kind, o.a)
	}
	return fmt.Sprintf("%v(%d, %d)", o.kind, o.a, o.b)
}

func (o outcome) value(values []Value) Value {
	switch o.kind {
	case onNode, nearestAnchor:
		return values[o.a].Clone()
	}
	return blend([]Value{values[o.a], values[o.b]}, []float64{o.wa, o.wb})
}

// Classify a point outside the hull against the hull facets. Only visible
// facets are considered, unless none is visible, which can happen for points
// that are numerically on the hull.
func classifyOutside(points []Point, facets []Facet, p Point, eps float64) outcome {
	visible := make([]Facet, 0, len(facets))
	for _, f := range facets {
		if f.Visible {
			visible = append(visible, f)
		}
	}
	if len(visible) == 0 {
		visible = facets
	}

	for _, f := range visible {
		for _, i := range [2]int{f.A, f.B} {
			if points[i].Sub(p).Norm() < eps {
				return outcome{kind: onNode, a: i}
			}
		}
	}

	for _, f := range visible {
		sa := points[f.A].Sub(p)
		sb := points[f.B].Sub(p)
		if math.Abs(sa.Cross(sb)) < eps && sa.Dot(sb) < 0 {
			ra, rb := sa.Norm(), sb.Norm()
			total := ra + rb
			return outcome{kind: onEdge, a: f.A, b: f.B, wa: rb / total, wb: ra / total}
		}
	}

	for _, f := range visible {
		line := points[f.A].Sub(points[f.B])
		dotA := p.Sub(points[f.A]).Dot(line)
		dotB := p.Sub(points[f.B]).Dot(line)
		if (dotA < 0 && dotB > 0) || (dotA > 0 && dotB < 0) {
			total := math.Abs(dotA) + math.Abs(dotB)
			return outcome{
				kind: inShadow,
				a:    f.A,
				b:    f.B,
				wa:   math.Abs(dotB) / total,
				wb:   math.Abs(dotA) / total,
			}
		}
	}

	candidates := make([]int, 0, 2*len(visible))
	for _, f := range visible {
		candidates = append(candidates, f.A, f.B)
	}
	if len(candidates) == 0 {
		// A hull finder that returns no facets at all
		for i := range points {
			candidates = append(candidates, i)
		}
	}
	return outcome{kind: nearestAnchor, a: nearestOf(points, candidates, p)}
}

// Nearest candidate by squared distance. Ties go to the lowest index.
func nearestOf(points []Point, candidates []int, p Point) int {
	nearest := -1
	best := math.Inf(1)
	for _, i := range candidates {
		d := points[i].Sub(p)
		d2 := d.Dot(d)
		if d2 < best || (d2 == best && i < nearest) {
			nearest, best = i, d2
		}
	}
	return nearest
}
