package diagram

import (
	"fmt"

	"seehuhn.de/go/geom/vec"
)

// Polygon is a closed polygon given by its vertices.
type Polygon []vec.Vec2

// ArrowFor returns the arrowhead triangle for a curve. The tip is the
// curve's end point and the base lies back along the direction of the last
// control point.
func ArrowFor(c Curve, cfg Config) (Polygon, error) {
	back, err := Direction(c.End, c.ControlB)
	if err != nil {
		return nil, fmt.Errorf("arrowhead: %w", err)
	}

	base := c.End.Add(back.Mul(cfg.ArrowSize * sqrtHalf))
	side := perpendicular(back).Mul(cfg.ArrowSize / 2)

	return Polygon{c.End, base.Add(side), base.Sub(side)}, nil
}

// LabelAnchor returns the point where an edge label is drawn: the midpoint
// of the two control points. This is close to, but not exactly, the middle
// of the curve.
func LabelAnchor(c Curve) vec.Vec2 {
	return c.ControlA.Add(c.ControlB).Mul(0.5)
}
