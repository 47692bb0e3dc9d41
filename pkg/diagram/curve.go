package diagram

import (
	"errors"
	"fmt"

	"seehuhn.de/go/geom/vec"
)

// ErrMissingPosition is returned when an edge endpoint has no grid position,
// which happens for states unreachable from state 0.
var ErrMissingPosition = errors.New("state has no grid position")

// Edge is a single transition instance. An empty Label is an epsilon
// transition.
type Edge struct {
	From  int    `json:"from"`
	To    int    `json:"to"`
	Label string `json:"label"`
}

// IsEpsilon reports whether the edge is an epsilon transition.
func (e Edge) IsEpsilon() bool { return e.Label == "" }

// IsSelfLoop reports whether the edge starts and ends at the same state.
func (e Edge) IsSelfLoop() bool { return e.From == e.To }

// Curve is a cubic Bézier segment. Start and End lie on the marker circles
// of the source and target states.
type Curve struct {
	Start    vec.Vec2 `json:"start"`
	ControlA vec.Vec2 `json:"control_a"`
	ControlB vec.Vec2 `json:"control_b"`
	End      vec.Vec2 `json:"end"`
}

// CurveFor computes the connector for an edge.
//
// Self-loops bulge to the right of the state with control points 45° above
// and below the horizontal at distance 3r. Other edges bow to the left of
// their direction of travel by 1.5r, so an edge and its reverse never
// overlap.
func CurveFor(e Edge, g Grid, cfg Config) (Curve, error) {
	fromPos, ok := g[e.From]
	if !ok {
		return Curve{}, fmt.Errorf("edge %d->%d: state %d: %w", e.From, e.To, e.From, ErrMissingPosition)
	}
	toPos, ok := g[e.To]
	if !ok {
		return Curve{}, fmt.Errorf("edge %d->%d: state %d: %w", e.From, e.To, e.To, ErrMissingPosition)
	}

	from := cfg.Pixel(fromPos)
	to := cfg.Pixel(toPos)
	r := cfg.Radius

	var c Curve
	if e.IsSelfLoop() {
		k := 3 * r * sqrtHalf
		c.ControlA = from.Add(vec.Vec2{X: k, Y: -k})
		c.ControlB = from.Add(vec.Vec2{X: k, Y: k})
	} else {
		d := to.Sub(from)
		length := d.Length()
		if length == 0 {
			return Curve{}, fmt.Errorf("edge %d->%d: %w", e.From, e.To, ErrDegenerateDirection)
		}
		offset := vec.Vec2{X: d.Y, Y: -d.X}.Mul(1.5 * r / length)
		c.ControlA = lerp(from, to, 0.25).Add(offset)
		c.ControlB = lerp(from, to, 0.75).Add(offset)
	}

	startDir, err := Direction(from, c.ControlA)
	if err != nil {
		return Curve{}, fmt.Errorf("edge %d->%d: %w", e.From, e.To, err)
	}
	endDir, err := Direction(to, c.ControlB)
	if err != nil {
		return Curve{}, fmt.Errorf("edge %d->%d: %w", e.From, e.To, err)
	}
	c.Start = from.Add(startDir.Mul(r))
	c.End = to.Add(endDir.Mul(r))

	return c, nil
}

// At evaluates the curve at parameter t in [0,1].
func (c Curve) At(t float64) vec.Vec2 {
	s := 1 - t
	return c.Start.Mul(s * s * s).
		Add(c.ControlA.Mul(3 * s * s * t)).
		Add(c.ControlB.Mul(3 * s * t * t)).
		Add(c.End.Mul(t * t * t))
}
