// SPDX-License-Identifier: MIT

package march

import (
	"iter"

	"github.com/katalvlaran/isolines/field"
)

// Cell addresses the unit rectangle with corners (I,J), (I+1,J), (I+1,J+1)
// and (I,J+1).
type Cell struct {
	I, J int
}

// Direction is a unit step between neighbouring cells; exactly one of DX,
// DY is non-zero. The zero Direction means "no direction yet".
type Direction struct {
	DX, DY int
}

// The four traversal directions.
var (
	East  = Direction{DX: 1}  // +x
	West  = Direction{DX: -1} // -x
	North = Direction{DY: 1}  // +y
	South = Direction{DY: -1} // -y
)

// IsZero reports whether d is the zero Direction.
func (d Direction) IsZero() bool { return d.DX == 0 && d.DY == 0 }

// String implements fmt.Stringer.
func (d Direction) String() string {
	switch d {
	case East:
		return "+x"
	case West:
		return "-x"
	case North:
		return "+y"
	case South:
		return "-y"
	}

	return "none"
}

// Code is the 4-bit corner classification of a cell: bit0 (i,j), bit1
// (i+1,j), bit2 (i+1,j+1), bit3 (i,j+1); a bit is set when that corner is
// below the level.
type Code uint8

// Codes with special handling.
const (
	CodeFlatAbove  Code = 0b0000 // every corner at or above the level
	CodeSaddle0101 Code = 0b0101
	CodeSaddle1010 Code = 0b1010
	CodeFlatBelow  Code = 0b1111 // every corner below the level
)

// CornerCode classifies the corners of c against level. Corner indices wrap
// modulo the grid shape, so seam cells of a periodic field are handled.
// Complexity: O(1).
func CornerCode(f *field.Field, c Cell, level float64) Code {
	var code Code
	if f.Value(c.I, c.J) < level {
		code |= 1 << 0
	}
	if f.Value(c.I+1, c.J) < level {
		code |= 1 << 1
	}
	if f.Value(c.I+1, c.J+1) < level {
		code |= 1 << 2
	}
	if f.Value(c.I, c.J+1) < level {
		code |= 1 << 3
	}

	return code
}

// cellSeq yields every cell of a cx×cy cell grid in lexicographic (I,J) order.
func cellSeq(cx, cy int) iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		for i := 0; i < cx; i++ {
			for j := 0; j < cy; j++ {
				if !yield(Cell{I: i, J: j}) {
					return
				}
			}
		}
	}
}
