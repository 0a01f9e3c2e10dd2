package interpol

// Tolerance used for detecting that a point is on an anchor or an edge.
const DefaultTolerance = 1e-7

// Option configures an interpolator. Options that don't apply to a
// constructor are ignored by it.
type Option func(*config)

type config struct {
	tolerance    float64
	outsideValue Value
	triangulator Triangulator
	hullFinder   HullFinder
	tessellator  Tessellator
}

func newConfig(opts []Option) *config {
	c := &config{
		tolerance:    DefaultTolerance,
		triangulator: delaunayTriangulator{},
		hullFinder:   delaunayHull{},
		tessellator:  mergingTessellator{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *config) validate() error {
	if c.tolerance < 0 {
		return invalidInputf("tolerance must not be negative, got %g", c.tolerance)
	}
	return nil
}

func WithTolerance(eps float64) Option {
	return func(c *config) {
		c.tolerance = eps
	}
}

// Return a constant for every point outside the hull of the anchors, instead
// of extrapolating. Only used by TriangulationInterpolator.
func WithOutsideValue(v Value) Option {
	return func(c *config) {
		c.outsideValue = v.Clone()
	}
}

func WithTriangulator(t Triangulator) Option {
	return func(c *config) {
		c.triangulator = t
	}
}

func WithHullFinder(h HullFinder) Option {
	return func(c *config) {
		c.hullFinder = h
	}
}

func WithTessellator(t Tessellator) Option {
	return func(c *config) {
		c.tessellator = t
	}
}
