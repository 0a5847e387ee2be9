// SPDX-License-Identifier: MIT

package march

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Contour is one isoline at a fixed level.
//
// Points[k] is the exit point of Cells[k]: the interpolated crossing on the
// edge through which the path left that cell. A closed contour implicitly
// returns from its last point to its first. On a periodic field points are
// wrapped into the bounds, so consecutive points may sit on opposite seams.
//
// An open contour starts with the exit point of its first cell; the point
// where the line enters the domain is not emitted. Tracing only starts from
// candidate cells, so when the boundary cell a line enters through is not a
// candidate, that cell and its crossing are missing as well and the contour
// begins at the first candidate downstream.
type Contour struct {
	Points []vec.Vec2
	Cells  []Cell
	Closed bool
}

// Len returns the number of points.
func (c Contour) Len() int { return len(c.Points) }

// Ring returns the points of a closed contour with the first point repeated
// at the end. Open contours are returned as a copy of Points.
func (c Contour) Ring() []vec.Vec2 {
	out := make([]vec.Vec2, len(c.Points), len(c.Points)+1)
	copy(out, c.Points)
	if c.Closed && len(out) > 0 {
		out = append(out, out[0])
	}

	return out
}

// Path converts the contour to a polyline, closed with path.CmdClose when
// the contour is closed. An empty contour gives an empty path.
func (c Contour) Path() *path.Data {
	p := &path.Data{}
	if len(c.Points) == 0 {
		return p
	}
	p.MoveTo(c.Points[0])
	for _, pt := range c.Points[1:] {
		p.LineTo(pt)
	}
	if c.Closed {
		p.Close()
	}

	return p
}

// BoundingBox returns the smallest rectangle containing every point.
// The zero rect.Rect is returned for an empty contour.
func (c Contour) BoundingBox() rect.Rect {
	if len(c.Points) == 0 {
		return rect.Rect{}
	}
	bb := rect.Rect{
		LLx: math.Inf(1), LLy: math.Inf(1),
		URx: math.Inf(-1), URy: math.Inf(-1),
	}
	for _, p := range c.Points {
		bb.LLx = math.Min(bb.LLx, p.X)
		bb.LLy = math.Min(bb.LLy, p.Y)
		bb.URx = math.Max(bb.URx, p.X)
		bb.URy = math.Max(bb.URy, p.Y)
	}

	return bb
}
