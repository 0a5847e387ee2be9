// SPDX-License-Identifier: MIT

// Package grid stores a rectangular 2-D grid of float64 samples in a flat
// row-major buffer.
//
// What:
//
//   - Dense wraps a [][]float64 grid indexed [i][j] (i along x, j along y).
//   - The input is deep-copied and validated: non-empty, rectangular, at
//     least 2×2, and every sample finite.
//   - Value(i,j) wraps indices modulo the shape so toroidal callers never
//     branch on the seam.
//   - Sample builds a Dense by evaluating a function over two axes.
//
// Complexity:
//
//   - NewDense, Sample: O(nx·ny) time and memory.
//   - At, Value:        O(1).
//   - Range, Below:     O(nx·ny).
//
// Errors:
//
//   - ErrEmptyGrid:      the input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrTooSmall:       fewer than two samples along an axis.
//   - ErrNaNInf:         a sample is NaN or ±Inf.
//   - ErrOutOfRange:     At called with indices outside the grid.
package grid
