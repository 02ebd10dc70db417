package advanced

import (
	"github.com/fogleman/gg"
	"github.com/osuushi/lattice/internal/dbg"
	"github.com/pkg/errors"
)

// This is for debugging purposes only. The real drawing happens in the
// presentation layer.

// Padding around the outer triangle, in pixels
const dbgDrawPadding = 40

// Render the state of the gluing animation at the given step to a PNG: the
// triangles placed before the step, the new triangle, the accumulated hull it
// is measured against, and the shared edge if one was found.
func DrawStep(path string, sequence TriangleList, outer OuterTriangle, step int, scale float64) error {
	if step < 0 || step >= len(sequence) {
		return errors.Errorf("step %d out of range [0, %d)", step, len(sequence))
	}
	if scale <= 0 {
		return errors.Errorf("scale must be positive, got %v", scale)
	}

	size := int(scale*float64(outer.Leg)) + dbgDrawPadding*2
	c := gg.NewContext(size, size)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(size), float64(size))
	c.Fill()

	// Flip the context so the origin is at the bottom left, then move the outer
	// triangle's right angle to the padded corner.
	c.Translate(0, float64(size))
	c.Scale(1, -1)
	c.Translate(dbgDrawPadding, dbgDrawPadding)
	c.Scale(scale, scale)
	c.Translate(-float64(outer.Origin.X), -float64(outer.Origin.Y))

	c.SetLineWidth(2)
	drawPolygon(c, outer.Vertices())
	c.SetRGB(0.4, 0.4, 0.4)
	c.Stroke()

	for _, tri := range sequence[:step] {
		drawPolygon(c, tri.Points[:])
		c.SetRGBA(0, 0.5, 0, 0.6)
		c.FillPreserve()
		c.SetRGB(0, 1, 1)
		c.Stroke()
	}

	current := sequence[step]
	drawPolygon(c, current.Points[:])
	c.SetRGBA(1, 1, 0, 0.6)
	c.FillPreserve()
	c.SetRGB(1, 1, 0)
	c.Stroke()

	hull := AccumulatedHull(sequence, outer, step)
	if len(hull.Points) > 1 {
		drawPolygon(c, hull.Points)
		c.SetRGB(0.3, 0.2, 1)
		c.Stroke()
	}

	if edge, ok := SharedEdgeAt(sequence, outer, step); ok {
		c.SetLineWidth(5)
		c.DrawLine(float64(edge.Start.X), float64(edge.Start.Y), float64(edge.End.X), float64(edge.End.Y))
		c.SetRGB(1, 0, 0)
		c.Stroke()
	}

	// Label every placed piece. Text has to be drawn in native coordinates, or
	// it comes out flipped.
	c.SetRGB(1, 1, 1)
	for _, tri := range sequence[:step+1] {
		cx, cy := c.TransformPoint(centroid(tri))
		c.Push()
		c.Identity()
		c.DrawStringAnchored(dbg.Name(tri), cx, cy, 0.5, 0.5)
		c.Pop()
	}

	return errors.Wrapf(c.SavePNG(path), "saving %s", path)
}

func drawPolygon(c *gg.Context, points []Point) {
	c.MoveTo(float64(points[0].X), float64(points[0].Y))
	for _, p := range points[1:] {
		c.LineTo(float64(p.X), float64(p.Y))
	}
	c.ClosePath()
}

func centroid(tri Triangle) (float64, float64) {
	var x, y float64
	for _, p := range tri.Points {
		x += float64(p.X)
		y += float64(p.Y)
	}
	return x / 3, y / 3
}
