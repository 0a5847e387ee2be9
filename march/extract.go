// SPDX-License-Identifier: MIT

package march

import (
	"errors"
	"fmt"
	"sync"

	"github.com/katalvlaran/isolines/field"
)

// Report is the full outcome of one extraction.
type Report struct {
	// Level is the query level.
	Level float64

	// Contours are the merged isolines.
	Contours []Contour

	// Fragments are the raw traces in the order they were started,
	// including failed ones.
	Fragments []Fragment

	// Diagnostics collects every non-fatal error: failed fragments
	// followed by degenerate edges.
	Diagnostics []error
}

// Err joins the errors of the fragments that were dropped (ambiguous or
// inconsistent cells, exceeded step bound). Re-entries and degenerate
// edges do not lose data and are left out. Returns nil when nothing was
// dropped.
func (r *Report) Err() error {
	var errs []error
	for _, fr := range r.Fragments {
		if fr.State == Failed && !fr.kept() {
			errs = append(errs, fr.Err)
		}
	}

	return errors.Join(errs...)
}

// Extract returns the isolines of f at level.
//
// Contours that survive are returned even when some fragments were
// dropped; in that case the error joins the per-fragment failures and
// matches ErrAmbiguousCell, ErrInconsistentCell or ErrStepLimit. A contour
// leaving a field with open contours disabled (ErrDomainExit), a nil field
// and context cancellation abort the call and return nil contours.
//
// Extract only reads f and may run concurrently with other extractions.
func Extract(f *field.Field, level float64, opts ...Option) ([]Contour, error) {
	rep, err := ExtractReport(f, level, opts...)
	if err != nil {
		return nil, err
	}

	return rep.Contours, rep.Err()
}

// ExtractReport is Extract returning the fragments and diagnostics as well.
// The error is non-nil only when the extraction was aborted.
//
// A level at or below the smallest sample, or above the largest, yields an
// empty report without scanning the grid.
func ExtractReport(f *field.Field, level float64, opts ...Option) (*Report, error) {
	if f == nil {
		return nil, fmt.Errorf("Extract: %w", ErrNilField)
	}
	o := gatherOptions(opts...)
	if lo, hi := f.Values().Range(); level <= lo || level > hi {
		Logger().Debug("march: level outside samples", "level", level, "min", lo, "max", hi)

		return &Report{Level: level}, nil
	}
	t := newTracer(f, level, o)

	rep := &Report{Level: level}
	var kept []Contour
	for {
		if err := o.Ctx.Err(); err != nil {
			return nil, fmt.Errorf("Extract: level %g: %w", level, err)
		}
		start, entry, ok := t.pool.pop()
		if !ok {
			break
		}

		fr, err := t.trace(start, entry)
		if err != nil {
			return nil, fmt.Errorf("Extract: level %g: %w", level, err)
		}
		rep.Fragments = append(rep.Fragments, fr)
		if fr.Err != nil {
			rep.Diagnostics = append(rep.Diagnostics, fr.Err)
		}
		if o.OnFragment != nil {
			if err := o.OnFragment(fr); err != nil {
				return nil, err
			}
		}
		if fr.kept() {
			kept = append(kept, fr.Contour)
		}
	}
	rep.Diagnostics = append(rep.Diagnostics, t.degenerate...)
	rep.Contours = Merge(kept)

	return rep, nil
}

// ExtractLevels runs one extraction per level concurrently and returns the
// contours in the order of levels. Errors of the individual extractions are
// joined; contours of levels that succeeded (or only dropped fragments) are
// still returned.
func ExtractLevels(f *field.Field, levels []float64, opts ...Option) ([][]Contour, error) {
	out := make([][]Contour, len(levels))
	errs := make([]error, len(levels))

	var wg sync.WaitGroup
	for k, level := range levels {
		wg.Add(1)
		go func() {
			defer wg.Done()
			out[k], errs[k] = Extract(f, level, opts...)
			if errs[k] != nil {
				errs[k] = fmt.Errorf("ExtractLevels: level %g: %w", level, errs[k])
			}
		}()
	}
	wg.Wait()

	return out, errors.Join(errs...)
}
