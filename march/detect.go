// SPDX-License-Identifier: MIT

package march

import (
	"deedles.dev/xiter"

	"github.com/katalvlaran/isolines/field"
)

// detector classifies grid samples against one level.
type detector struct {
	below  []bool // row-major nx×ny mask, see grid.Dense.Below
	nx, ny int
}

func newDetector(f *field.Field, level float64) detector {
	nx, ny := f.Shape()

	return detector{below: f.Values().Below(level), nx: nx, ny: ny}
}

func (d detector) at(i, j int) bool {
	return d.below[(i%d.nx)*d.ny+j%d.ny]
}

// isCandidate reports whether sample (i,j) differs from its +x or +y
// neighbour, wrapping indices on the seam.
func (d detector) isCandidate(c Cell) bool {
	b := d.at(c.I, c.J)

	return b != d.at(c.I+1, c.J) || b != d.at(c.I, c.J+1)
}

// pool is the set of candidate crossings not yet traced. Each candidate
// cell holds one crossing, or two for a saddle; pending is a flat cx×cy mask
// with bit k set while crossing k (see crossingSlot) is untraced. order keeps
// the candidates in lexicographic order so pop always returns the smallest
// remaining one.
type pool struct {
	cy      int
	pending []uint8
	codes   []Code
	order   []Cell
	next    int
	size    int
}

func newPool(f *field.Field, level float64) *pool {
	cx, cy := f.Cells()
	d := newDetector(f, level)
	p := &pool{cy: cy, pending: make([]uint8, cx*cy), codes: make([]Code, cx*cy)}
	for k, c := range xiter.Enumerate(cellSeq(cx, cy)) {
		if !d.isCandidate(c) {
			continue
		}
		code := CornerCode(f, c, level)
		p.codes[k] = code
		p.pending[k] = 0b01
		p.size++
		if isSaddle(code) {
			p.pending[k] |= 0b10
			p.size++
		}
		p.order = append(p.order, c)
	}

	return p
}

func (p *pool) len() int { return p.size }

func (p *pool) has(c Cell) bool { return p.pending[c.I*p.cy+c.J] != 0 }

// remove drops the crossing of c entered moving in direction incoming and
// reports whether it was still pending.
func (p *pool) remove(c Cell, incoming Direction) bool {
	k := c.I*p.cy + c.J
	bit := uint8(1) << crossingSlot(p.codes[k], incoming)
	if p.pending[k]&bit == 0 {
		return false
	}
	p.pending[k] &^= bit
	p.size--

	return true
}

// pop removes the smallest remaining crossing and returns its cell with the
// direction to enter it: zero for the canonical crossing, the second entry
// for the other crossing of a saddle.
func (p *pool) pop() (Cell, Direction, bool) {
	for ; p.next < len(p.order); p.next++ {
		c := p.order[p.next]
		k := c.I*p.cy + c.J
		switch {
		case p.pending[k]&0b01 != 0:
			p.pending[k] &^= 0b01
			p.size--

			return c, Direction{}, true
		case p.pending[k]&0b10 != 0:
			p.pending[k] &^= 0b10
			p.size--

			return c, secondEntry(p.codes[k]), true
		}
	}

	return Cell{}, Direction{}, false
}

// Candidates returns, in lexicographic order, every cell whose lower-left
// sample lies on a different side of level than its +x or +y neighbour.
// Complexity: O(nx×ny).
func Candidates(f *field.Field, level float64) []Cell {
	if f == nil {
		return nil
	}
	p := newPool(f, level)

	return append([]Cell(nil), p.order...)
}
