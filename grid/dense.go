// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Dense is an immutable nx×ny grid of finite samples.
// data holds nx*ny values in row-major order (offset = i*ny + j).
type Dense struct {
	nx, ny int
	data   []float64
}

// denseErrorf wraps a sentinel with the method name and coordinates.
func denseErrorf(method string, i, j int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, i, j, err)
}

// NewDense constructs a Dense from a non-empty, rectangular 2D slice indexed
// values[i][j]. It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs, ErrTooSmall if either axis
// has fewer than two samples and ErrNaNInf on the first non-finite sample.
// Complexity: O(nx×ny) time and memory.
func NewDense(values [][]float64) (*Dense, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	nx, ny := len(values), len(values[0])
	for _, row := range values {
		if len(row) != ny {
			return nil, ErrNonRectangular
		}
	}
	if nx < 2 || ny < 2 {
		return nil, fmt.Errorf("NewDense: shape %dx%d: %w", nx, ny, ErrTooSmall)
	}

	data := make([]float64, 0, nx*ny)
	for i, row := range values {
		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, denseErrorf("NewDense", i, j, ErrNaNInf)
			}
		}
		data = append(data, row...)
	}

	return &Dense{nx: nx, ny: ny, data: data}, nil
}

// Sample evaluates fn at every (xs[i], ys[j]) and returns the resulting grid.
// Returns the same errors as NewDense; a non-finite fn result yields ErrNaNInf.
// Complexity: O(len(xs)×len(ys)) evaluations of fn.
func Sample(xs, ys []float64, fn func(x, y float64) float64) (*Dense, error) {
	values := make([][]float64, len(xs))
	for i, x := range xs {
		values[i] = make([]float64, len(ys))
		for j, y := range ys {
			values[i][j] = fn(x, y)
		}
	}

	return NewDense(values)
}

// Shape returns the number of samples along x and y.
func (d *Dense) Shape() (nx, ny int) { return d.nx, d.ny }

// InBounds reports whether (i,j) lies within the grid.
// Complexity: O(1).
func (d *Dense) InBounds(i, j int) bool {
	return i >= 0 && i < d.nx && j >= 0 && j < d.ny
}

// At returns the sample at (i,j) or ErrOutOfRange.
func (d *Dense) At(i, j int) (float64, error) {
	if !d.InBounds(i, j) {
		return 0, denseErrorf("At", i, j, ErrOutOfRange)
	}

	return d.data[i*d.ny+j], nil
}

// Value returns the sample at (i,j) with both indices wrapped modulo the
// shape, so Value(nx, j) == Value(0, j). It never fails.
// Complexity: O(1).
func (d *Dense) Value(i, j int) float64 {
	i = ((i % d.nx) + d.nx) % d.nx
	j = ((j % d.ny) + d.ny) % d.ny

	return d.data[i*d.ny+j]
}

// Range returns the minimum and maximum sample.
func (d *Dense) Range() (lo, hi float64) {
	return floats.Min(d.data), floats.Max(d.data)
}

// Below returns a row-major mask with mask[i*ny+j] = Value(i,j) < level.
func (d *Dense) Below(level float64) []bool {
	mask := make([]bool, len(d.data))
	for k, v := range d.data {
		mask[k] = v < level
	}

	return mask
}

// Rows returns a deep copy of the samples as values[i][j].
func (d *Dense) Rows() [][]float64 {
	out := make([][]float64, d.nx)
	for i := range out {
		out[i] = make([]float64, d.ny)
		copy(out[i], d.data[i*d.ny:(i+1)*d.ny])
	}

	return out
}
