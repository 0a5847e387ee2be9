// SPDX-License-Identifier: MIT

package grid

import "errors"

// Sentinel errors for grid construction and access.
var (
	// ErrEmptyGrid indicates the input 2D slice is empty.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrTooSmall indicates fewer than two samples along an axis.
	ErrTooSmall = errors.New("grid: at least 2 samples are required along each axis")
	// ErrNaNInf indicates a sample that is NaN or ±Inf.
	ErrNaNInf = errors.New("grid: NaN or Inf encountered")
	// ErrOutOfRange indicates an index outside the grid.
	ErrOutOfRange = errors.New("grid: index out of range")
)
