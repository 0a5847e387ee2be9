// SPDX-License-Identifier: MIT

// Package march extracts isolines ("contours") of a field.Field with the
// Marching Squares algorithm.
//
// What:
//
//   - Candidates scans the field at a level and lists the cells the isoline
//     passes through.
//   - Step maps a cell's 4-bit corner code to the direction of the next cell.
//     The two saddle codes are resolved by evaluating the continuous function
//     at the cell centre.
//   - Crossing interpolates the exact point where the isoline leaves a cell.
//   - The tracer walks cell to cell from each unvisited candidate until the
//     path closes, leaves the domain or fails. Periodic fields wrap indices
//     and coordinates.
//   - Merge unions fragments that share crossing segments (a cell and its
//     exit point) into single ordered contours.
//
// Algorithm outline:
//  1. Build the candidate pool for the level.
//  2. While the pool is not empty, pop the smallest remaining crossing (a
//     saddle cell holds two) and trace a fragment from it, removing every
//     crossing it passes. A fragment closes when it returns to the crossing
//     it started with.
//  3. Keep closed and open fragments; collect per-fragment failures as
//     diagnostics without aborting siblings.
//  4. Merge the kept fragments.
//
// Corner code bits:
//
//	bit3 (i,j+1) ── bit2 (i+1,j+1)
//	     │                │
//	bit0 (i,j)   ── bit1 (i+1,j)
//
// A bit is set when the corner sample is below the level.
//
// Complexity:
//
//   - Candidates: O(cells).
//   - Extract:    O(cells) steps in total. Each fragment is additionally
//     bounded by MaxSteps, so malformed input always terminates.
//   - Merge:      O(S²) worst case for S traced segments in total.
//
// Concurrency:
//
//	A Field is read-only, so extractions at different levels may run in
//	parallel; each owns its candidate pool and visited state. ExtractLevels
//	does exactly that.
//
// Errors:
//
//   - ErrDomainExit:       a contour leaves a field with open contours disabled (fatal).
//   - ErrAmbiguousCell:    saddle cell without a continuous function (fragment dropped).
//   - ErrInconsistentCell: cell code not valid for the traversal (fragment dropped).
//   - ErrStepLimit:        fragment exceeded MaxSteps (fragment dropped).
//   - ErrReentry:          fragment repeated one of its own crossings (fragment kept, reported).
//   - ErrDegenerateEdge:   flat edge exactly at the level; midpoint used (reported).
//   - ErrNilField:         Extract called with a nil field.
package march
