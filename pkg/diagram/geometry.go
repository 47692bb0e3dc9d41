// Geometric primitives for diagram layout.

package diagram

import (
	"errors"
	"math"

	"seehuhn.de/go/geom/vec"
)

// ErrDegenerateDirection is returned when a direction is requested between
// two coincident points.
var ErrDegenerateDirection = errors.New("direction between coincident points")

// sqrtHalf is √½, the cosine of 45°.
var sqrtHalf = math.Sqrt(0.5)

// Direction returns the unit vector pointing from one point to another.
func Direction(from, to vec.Vec2) (vec.Vec2, error) {
	d := to.Sub(from)
	length := d.Length()
	if length == 0 {
		return vec.Vec2{}, ErrDegenerateDirection
	}
	return d.Mul(1 / length), nil
}

// Distance returns the Euclidean distance between two points.
func Distance(a, b vec.Vec2) float64 {
	return b.Sub(a).Length()
}

// perpendicular rotates v by 90°.
func perpendicular(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{X: -v.Y, Y: v.X}
}

// lerp returns a + (b-a)*t.
func lerp(a, b vec.Vec2, t float64) vec.Vec2 {
	return a.Mul(1 - t).Add(b.Mul(t))
}
