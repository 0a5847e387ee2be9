// SPDX-License-Identifier: MIT

// Package isolines extracts contour lines of 2-D scalar fields with the
// Marching Squares algorithm.
//
// 🚀 What is isolines?
//
//	A small, dependency-light library that brings together:
//		• Grids: validated dense sample grids with periodic indexing
//		• Fields: a grid plus coordinates, bounds and an optional continuous function
//		• Marching: candidate detection, the 16-case transition table with
//		  saddle resolution, edge interpolation, tracing and fragment merging
//
// ✨ Why choose isolines?
//
//   - Exact saddles – ambiguous cells are resolved by the continuous function
//   - Torus-aware – periodic fields wrap indices and coordinates
//   - Safe for parallel use – a Field is read-only; every extraction owns its state
//   - Diagnosable – per-fragment failures are reported, never silently dropped
//
// Under the hood, everything is organized under three subpackages:
//
//	grid/  - dense row-major sample storage, validation, periodic lookups
//	field/ - construction options, axes, bounds, wrap-around of points
//	march/ - Extract, ExtractReport, ExtractLevels and their building blocks
//
// Quick ASCII example (level 0, '-' below, '+' above):
//
//	+ + + +
//	+ - - +      ┌───┐
//	+ - - +  ->  │   │  one closed contour
//	+ + + +      └───┘
//
// The MarchingSquares type in this package is the shortest path from a
// grid or a function to contours:
//
//	ms, _ := isolines.New(field.WithFunc(fn), field.WithBounds(-1, 1, -1, 1), field.WithSquareResolution(64))
//	contours, err := ms.Extract(isolines.DefaultLevel)
package isolines
