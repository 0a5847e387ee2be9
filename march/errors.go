// SPDX-License-Identifier: MIT

package march

import (
	"errors"
	"fmt"
)

// Sentinel errors for contour extraction.
var (
	// ErrNilField indicates a nil *field.Field was passed to an extraction.
	ErrNilField = errors.New("march: field is nil")

	// ErrAmbiguousCell indicates a saddle cell reached without a continuous
	// function to resolve it.
	ErrAmbiguousCell = errors.New("march: saddle cell cannot be resolved without a continuous function")

	// ErrInconsistentCell indicates a corner code that cannot occur for the
	// current traversal (flat cell or impossible entry direction).
	ErrInconsistentCell = errors.New("march: cell code inconsistent with traversal")

	// ErrDomainExit indicates a contour leaving a field whose open contours
	// are disabled.
	ErrDomainExit = errors.New("march: contour leaves the domain and open contours are disabled")

	// ErrDegenerateEdge indicates both corners of a crossed edge equal the
	// level; the crossing was placed at the edge midpoint.
	ErrDegenerateEdge = errors.New("march: flat edge at the query level")

	// ErrReentry indicates a fragment came back to one of its own crossings
	// other than the one it started with. This needs a saddle function that
	// answers differently for the same cell.
	ErrReentry = errors.New("march: contour re-entered an already traced loop")

	// ErrStepLimit indicates a fragment exceeded the configured step budget.
	ErrStepLimit = errors.New("march: step limit exceeded")
)

// CellError attaches the offending cell and its corner code to an error.
type CellError struct {
	Cell Cell
	Code Code
	Err  error
}

// Error implements error.
func (e *CellError) Error() string {
	return fmt.Sprintf("cell (%d,%d) code %04b: %v", e.Cell.I, e.Cell.J, uint8(e.Code), e.Err)
}

// Unwrap returns the underlying sentinel.
func (e *CellError) Unwrap() error { return e.Err }
