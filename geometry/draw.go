package geometry

import (
	"image"

	"github.com/fogleman/gg"
	"github.com/golang/geo/r2"
)

// This is for debugging purposes only

// Padding around the shape so the hull edges are visible
const dbgDrawPadding = 20

const dbgDrawScale = 50

// Render the triangles, outlined, with each point marked.
func (t *Triangulation) Draw(scale float64) image.Image {
	rings := make([][]int, 0, len(t.Triangles))
	for _, s := range t.Triangles {
		rings = append(rings, []int{s[0], s[1], s[2]})
	}
	return drawRings(t.Points, rings, scale)
}

// Render the polygons, outlined, with each point marked.
func (t *Tessellation) Draw(scale float64) image.Image {
	return drawRings(t.Points, t.Polygons, scale)
}

func drawRings(points []Point, rings [][]int, scale float64) image.Image {
	bounds := r2.RectFromPoints(points...)
	size := bounds.Size()

	// Set up the context
	width := int(scale*size.X) + dbgDrawPadding*2
	height := int(scale*size.Y) + dbgDrawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	// Translate for padding
	c.Translate(dbgDrawPadding, dbgDrawPadding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	lo := bounds.Lo()
	c.Translate(-lo.X, -lo.Y)

	c.SetLineWidth(2)
	for i, ring := range rings {
		c.MoveTo(points[ring[0]].X, points[ring[0]].Y)
		for _, v := range ring[1:] {
			c.LineTo(points[v].X, points[v].Y)
		}
		c.ClosePath()
		// Alternate shades so neighbors are distinguishable
		c.SetRGB(0, 0.3+0.2*float64(i%3), 0)
		c.FillPreserve()
		c.SetRGB(0, 1, 1)
		c.Stroke()
	}

	c.SetRGB(1, 1, 1)
	for _, p := range points {
		c.DrawCircle(p.X, p.Y, 3/scale)
		c.Fill()
	}
	return c.Image()
}
