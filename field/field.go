// SPDX-License-Identifier: MIT

package field

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"github.com/katalvlaran/isolines/grid"
)

// Field is a scalar field sampled on a regular grid. It is immutable once
// built and safe for concurrent readers.
type Field struct {
	values       *grid.Dense
	xs, ys       []float64
	bounds       rect.Rect
	periodic     bool
	openContours bool
	fn           Func
}

// New builds a Field from options.
//
// Either a grid (WithGrid) or a function with bounds and resolution
// (WithFunc + WithBounds + WithResolution) must be supplied. When a grid is
// given without bounds, bounds default to ((0,nx),(0,ny)) and a resolution
// must not be given; when a grid is given with both, the resolution must
// match the grid shape.
//
// Every returned error matches ErrConfiguration.
// Complexity: O(nx×ny) plus nx×ny evaluations of fn when sampling.
func New(opts ...Option) (*Field, error) {
	o := gatherOptions(opts...)

	if o.values == nil && !o.hasBounds {
		return nil, fmt.Errorf("New: either a grid or bounds must be provided: %w", ErrConfiguration)
	}

	var (
		values *grid.Dense
		err    error
	)
	if o.values != nil {
		if values, err = grid.NewDense(o.values); err != nil {
			return nil, fmt.Errorf("New: %w: %w", ErrConfiguration, err)
		}
		nx, ny := values.Shape()
		switch {
		case !o.hasBounds && o.hasResolution:
			return nil, fmt.Errorf("New: resolution is discarded when bounds are not provided: %w", ErrConfiguration)
		case !o.hasBounds:
			o.xMin, o.xMax, o.yMin, o.yMax = 0, float64(nx), 0, float64(ny)
			o.nx, o.ny = nx, ny
		case !o.hasResolution:
			o.nx, o.ny = nx, ny
		case o.nx != nx || o.ny != ny:
			return nil, fmt.Errorf("New: resolution %dx%d does not match grid shape %dx%d: %w",
				o.nx, o.ny, nx, ny, ErrConfiguration)
		}
	} else {
		if o.fn == nil {
			return nil, fmt.Errorf("New: a function is required when no grid is provided: %w", ErrConfiguration)
		}
		if !o.hasResolution {
			return nil, fmt.Errorf("New: a resolution is required to sample the function: %w", ErrConfiguration)
		}
	}

	f := &Field{
		bounds:       rect.Rect{LLx: o.xMin, LLy: o.yMin, URx: o.xMax, URy: o.yMax},
		periodic:     o.periodic,
		openContours: o.openContours,
		fn:           o.fn,
	}
	f.xs = axis(o.xMin, o.xMax, o.nx, o.periodic)
	f.ys = axis(o.yMin, o.yMax, o.ny, o.periodic)

	if values == nil {
		if values, err = grid.Sample(f.xs, f.ys, o.fn); err != nil {
			return nil, fmt.Errorf("New: sampling function: %w: %w", ErrConfiguration, err)
		}
	}
	f.values = values

	return f, nil
}

// axis returns n evenly spaced coordinates over [lo,hi]. A periodic axis
// leaves out hi, which is identified with lo.
func axis(lo, hi float64, n int, periodic bool) []float64 {
	if !periodic {
		return floats.Span(make([]float64, n), lo, hi)
	}

	return floats.Span(make([]float64, n+1), lo, hi)[:n]
}

// Values returns the sampled grid.
func (f *Field) Values() *grid.Dense { return f.values }

// Shape returns the number of samples along x and y.
func (f *Field) Shape() (nx, ny int) { return len(f.xs), len(f.ys) }

// Value returns the sample at (i,j); indices wrap modulo the shape.
func (f *Field) Value(i, j int) float64 { return f.values.Value(i, j) }

// XAxis returns a copy of the x coordinates.
func (f *Field) XAxis() []float64 { return append([]float64(nil), f.xs...) }

// YAxis returns a copy of the y coordinates.
func (f *Field) YAxis() []float64 { return append([]float64(nil), f.ys...) }

// X returns the x coordinate of grid line k for k in [0,nx]. Line nx only
// exists on a periodic field, where it is the upper bound.
func (f *Field) X(k int) float64 {
	if k >= len(f.xs) {
		return f.bounds.URx
	}

	return f.xs[k]
}

// Y returns the y coordinate of grid line k for k in [0,ny]; see X.
func (f *Field) Y(k int) float64 {
	if k >= len(f.ys) {
		return f.bounds.URy
	}

	return f.ys[k]
}

// Bounds returns the coordinate rectangle the axes were generated from.
func (f *Field) Bounds() rect.Rect { return f.bounds }

// Periodic reports whether the domain wraps around.
func (f *Field) Periodic() bool { return f.periodic }

// OpenContours reports whether contours may leave the domain.
func (f *Field) OpenContours() bool { return f.openContours }

// Func returns the continuous function, or nil when only a grid was given.
func (f *Field) Func() Func { return f.fn }

// Cells returns the size of the cell grid: (nx-1, ny-1) for a bounded
// field, (nx, ny) for a periodic one whose last cells span the seam.
func (f *Field) Cells() (cx, cy int) {
	nx, ny := f.Shape()
	if f.periodic {
		return nx, ny
	}

	return nx - 1, ny - 1
}

// Center returns the geometric centre of cell (i,j).
func (f *Field) Center(i, j int) vec.Vec2 {
	return vec.Vec2{
		X: (f.X(i) + f.X(i+1)) / 2,
		Y: (f.Y(j) + f.Y(j+1)) / 2,
	}
}

// Wrap maps p into the bounds of a periodic field using modular arithmetic
// over the periods xMax-xMin and yMax-yMin. Bounded fields return p unchanged.
func (f *Field) Wrap(p vec.Vec2) vec.Vec2 {
	if !f.periodic {
		return p
	}

	return vec.Vec2{
		X: wrap(p.X, f.bounds.LLx, f.bounds.URx-f.bounds.LLx),
		Y: wrap(p.Y, f.bounds.LLy, f.bounds.URy-f.bounds.LLy),
	}
}

func wrap(v, origin, period float64) float64 {
	r := math.Mod(v-origin, period)
	if r < 0 {
		r += period
	}
	if r >= period {
		r = 0
	}

	return origin + r
}
