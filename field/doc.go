// SPDX-License-Identifier: MIT

// Package field models a scalar field sampled on a regular 2-D grid: the
// sample values, the coordinate axes, the domain bounds and the boundary
// policy (periodic wraparound, open contours).
//
// What:
//
//   - Field owns an immutable grid.Dense plus strictly increasing x/y axes.
//   - Axes are generated from bounds and resolution. A periodic field
//     excludes the duplicate endpoint, so index nx is identified with 0.
//   - An optional continuous function is kept alongside the samples. It
//     builds the grid when none is supplied and breaks saddle-point ties
//     during contour tracing.
//
// Options:
//
//   - WithGrid(values):            pre-sampled grid, values[i][j].
//   - WithFunc(fn):                continuous function f(x, y).
//   - WithBounds(x0, x1, y0, y1):  coordinate intervals; default ((0,nx),(0,ny)).
//   - WithResolution(nx, ny):      sample counts when sampling fn.
//   - WithSquareResolution(n):     shorthand for WithResolution(n, n).
//   - WithPeriodic(bool):          toroidal domain (default false).
//   - WithOpenContours(bool):      accept contours leaving the domain (default true).
//
// Errors:
//
//   - ErrConfiguration: missing or conflicting construction inputs. Grid
//     validation errors (grid.ErrEmptyGrid, grid.ErrNaNInf, ...) are wrapped
//     together with it.
package field
