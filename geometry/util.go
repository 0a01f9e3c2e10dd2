package geometry

import (
	"math"

	"github.com/golang/geo/r2"
)

const Epsilon = 1e-9

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

// Twice the signed area of the triangle abc. Positive when abc winds
// counterclockwise.
func Orient(a, b, c Point) float64 {
	return b.Sub(a).Cross(c.Sub(a))
}

// Distance from c to the line through a and b, signed like Orient.
func LineDistance(a, b, c Point) float64 {
	length := b.Sub(a).Norm()
	if length == 0 {
		return c.Sub(a).Norm()
	}
	return Orient(a, b, c) / length
}

// Positive when d lies strictly inside the circumcircle of the counterclockwise
// triangle abc. The second return value is a magnitude for scaling tolerances.
func inCircle(a, b, c, d Point) (det, magnitude float64) {
	ad := a.Sub(d)
	bd := b.Sub(d)
	cd := c.Sub(d)
	adLift := ad.Dot(ad)
	bdLift := bd.Dot(bd)
	cdLift := cd.Dot(cd)
	ab := ad.Cross(bd)
	bc := bd.Cross(cd)
	ca := cd.Cross(ad)
	det = adLift*bc + bdLift*ca + cdLift*ab
	magnitude = adLift*math.Abs(bc) + bdLift*math.Abs(ca) + cdLift*math.Abs(ab)
	return det, magnitude
}

// Epsilon scaled to the extent of the points, so that duplicate and collinear
// checks behave the same whatever the units.
func scaledTolerance(points []Point) float64 {
	size := r2.RectFromPoints(points...).Size()
	return Epsilon * math.Max(size.X, size.Y)
}
