// SPDX-License-Identifier: MIT

package march

import (
	"fmt"

	"seehuhn.de/go/geom/vec"

	"github.com/katalvlaran/isolines/field"
)

type transitionKind uint8

const (
	kindFixed transitionKind = iota
	kindSaddle
	kindFlat
)

type transition struct {
	kind transitionKind
	dir  Direction
}

// transitions maps every corner code to its exit rule. The below region is
// kept on the left of travel, so a single path never reverses.
var transitions = [16]transition{
	0b0000: {kind: kindFlat, dir: East}, // unreachable default; flat codes are rejected
	0b0001: {kind: kindFixed, dir: West},
	0b0010: {kind: kindFixed, dir: South},
	0b0011: {kind: kindFixed, dir: West},
	0b0100: {kind: kindFixed, dir: East},
	0b0101: {kind: kindSaddle},
	0b0110: {kind: kindFixed, dir: South},
	0b0111: {kind: kindFixed, dir: West},
	0b1000: {kind: kindFixed, dir: North},
	0b1001: {kind: kindFixed, dir: North},
	0b1010: {kind: kindSaddle},
	0b1011: {kind: kindFixed, dir: North},
	0b1100: {kind: kindFixed, dir: East},
	0b1101: {kind: kindFixed, dir: East},
	0b1110: {kind: kindFixed, dir: South},
	0b1111: {kind: kindFlat},
}

// Step returns the direction in which the isoline leaves a cell with the
// given corner code, having entered it moving in direction incoming.
//
// Non-saddle codes ignore incoming. For the saddles 0101 and 1010 the
// continuous function fn is evaluated at the cell centre and compared with
// level rather than with zero (the two agree at level 0): a centre below the
// level joins the two below corners, otherwise the two above corners. A
// zero incoming on a saddle selects the canonical entry (+y for 0101, +x for
// 1010).
//
// Errors:
//   - ErrInconsistentCell for the flat codes 0000 and 1111, and for a saddle
//     entered from a direction that cannot reach it.
//   - ErrAmbiguousCell for a saddle when fn is nil.
//
// Complexity: O(1) plus at most one call to fn.
func Step(code Code, fn field.Func, center vec.Vec2, level float64, incoming Direction) (Direction, error) {
	if code > 0b1111 {
		return Direction{}, fmt.Errorf("Step: code %04b: %w", uint8(code), ErrInconsistentCell)
	}

	t := transitions[code]
	switch t.kind {
	case kindFixed:
		return t.dir, nil
	case kindFlat:
		return Direction{}, fmt.Errorf("Step: flat code %04b: %w", uint8(code), ErrInconsistentCell)
	}

	if fn == nil {
		return Direction{}, fmt.Errorf("Step: saddle %04b: %w", uint8(code), ErrAmbiguousCell)
	}
	if incoming.IsZero() {
		incoming = canonicalEntry(code)
	}
	centerBelow := fn(center.X, center.Y) < level

	switch code {
	case CodeSaddle0101:
		switch {
		case incoming == North && centerBelow, incoming == South && !centerBelow:
			return East, nil
		case incoming == South && centerBelow, incoming == North && !centerBelow:
			return West, nil
		}
	case CodeSaddle1010:
		switch {
		case incoming == East && centerBelow, incoming == West && !centerBelow:
			return South, nil
		case incoming == West && centerBelow, incoming == East && !centerBelow:
			return North, nil
		}
	}

	return Direction{}, fmt.Errorf("Step: saddle %04b entered %v: %w", uint8(code), incoming, ErrInconsistentCell)
}

func isSaddle(code Code) bool {
	return code == CodeSaddle0101 || code == CodeSaddle1010
}

// canonicalEntry is the incoming direction Step assumes for a saddle entered
// with a zero direction.
func canonicalEntry(code Code) Direction {
	if code == CodeSaddle0101 {
		return North
	}

	return East
}

// secondEntry is the incoming direction of the saddle crossing that the
// canonical entry does not reach.
func secondEntry(code Code) Direction {
	if code == CodeSaddle0101 {
		return South
	}

	return West
}

// crossingSlot numbers the crossings of a cell: 0 for the only crossing of a
// plain cell and for the canonical crossing of a saddle, 1 for the other.
func crossingSlot(code Code, incoming Direction) uint8 {
	if isSaddle(code) && !incoming.IsZero() && incoming != canonicalEntry(code) {
		return 1
	}

	return 0
}
