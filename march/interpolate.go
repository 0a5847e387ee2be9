// SPDX-License-Identifier: MIT

package march

import (
	"fmt"

	"seehuhn.de/go/geom/vec"

	"github.com/katalvlaran/isolines/field"
)

// Crossing returns the point where the isoline at level crosses the edge of
// cell c that faces direction d. The position along the edge is linear in
// the two corner samples of that edge.
//
// When both samples are equal the edge midpoint is returned together with
// an error wrapping ErrDegenerateEdge; the point is still usable.
// A zero d yields an ErrInconsistentCell error.
func Crossing(f *field.Field, c Cell, d Direction, level float64) (vec.Vec2, error) {
	i, j := c.I, c.J
	var a, b vec.Vec2  // edge endpoints
	var va, vb float64 // samples at a and b

	switch d {
	case East:
		a, b = vec.Vec2{X: f.X(i + 1), Y: f.Y(j)}, vec.Vec2{X: f.X(i + 1), Y: f.Y(j + 1)}
		va, vb = f.Value(i+1, j), f.Value(i+1, j+1)
	case West:
		a, b = vec.Vec2{X: f.X(i), Y: f.Y(j)}, vec.Vec2{X: f.X(i), Y: f.Y(j + 1)}
		va, vb = f.Value(i, j), f.Value(i, j+1)
	case North:
		a, b = vec.Vec2{X: f.X(i), Y: f.Y(j + 1)}, vec.Vec2{X: f.X(i + 1), Y: f.Y(j + 1)}
		va, vb = f.Value(i, j+1), f.Value(i+1, j+1)
	case South:
		a, b = vec.Vec2{X: f.X(i), Y: f.Y(j)}, vec.Vec2{X: f.X(i + 1), Y: f.Y(j)}
		va, vb = f.Value(i, j), f.Value(i+1, j)
	default:
		return vec.Vec2{}, fmt.Errorf("Crossing: cell (%d,%d) without direction: %w", i, j, ErrInconsistentCell)
	}

	w, err := weight(va, vb, level)
	p := a.Add(b.Sub(a).Mul(w))
	if err != nil {
		return p, &CellError{Cell: c, Code: CornerCode(f, c, level), Err: fmt.Errorf("Crossing %v edge: %w", d, err)}
	}

	return p, nil
}

// weight returns the fraction of the way from v0 to v1 at which level is
// reached. Equal samples give the midpoint and ErrDegenerateEdge.
func weight(v0, v1, level float64) (float64, error) {
	den := v1 - v0
	if den == 0 {
		return 0.5, ErrDegenerateEdge
	}

	return (level - v0) / den, nil
}
