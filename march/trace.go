// SPDX-License-Identifier: MIT

package march

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/isolines/field"
)

// State is the lifecycle state of a traced fragment.
type State uint8

const (
	Seeking State = iota // no active path
	Tracing              // following a cell chain
	Closed               // returned to the start cell
	Open                 // left the domain with open contours allowed
	Failed               // terminated by an error
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case Seeking:
		return "seeking"
	case Tracing:
		return "tracing"
	case Closed:
		return "closed"
	case Open:
		return "open"
	case Failed:
		return "failed"
	}

	return fmt.Sprintf("State(%d)", uint8(s))
}

// Fragment is the raw result of tracing from one candidate cell, before
// merging. Err is set when State is Failed.
type Fragment struct {
	Contour
	State State
	Err   error
}

// kept reports whether the fragment takes part in merging. A re-entry
// failure stops before repeating a crossing, so what it traced is kept.
func (fr Fragment) kept() bool {
	switch fr.State {
	case Closed, Open:
		return true
	case Failed:
		return errors.Is(fr.Err, ErrReentry)
	}

	return false
}

// ctxCheckInterval is how many steps pass between context checks.
const ctxCheckInterval = 1024

// tracer walks cell chains for one level. It owns the candidate pool, so a
// tracer must not be shared between goroutines.
type tracer struct {
	ctx      context.Context
	f        *field.Field
	level    float64
	cx, cy   int
	pool     *pool
	maxSteps int
	log      *slog.Logger

	// degenerate collects recoverable interpolation errors.
	degenerate []error
}

func newTracer(f *field.Field, level float64, o Options) *tracer {
	cx, cy := f.Cells()
	t := &tracer{
		ctx:      o.Ctx,
		f:        f,
		level:    level,
		cx:       cx,
		cy:       cy,
		pool:     newPool(f, level),
		maxSteps: o.MaxSteps,
		log:      Logger(),
	}
	if t.maxSteps == 0 {
		t.maxSteps = 4*cx*cy + 8
	}

	return t
}

// next returns the neighbour of c in direction d and whether it lies inside
// the cell grid. Periodic fields always wrap.
func (t *tracer) next(c Cell, d Direction) (Cell, bool) {
	n := Cell{I: c.I + d.DX, J: c.J + d.DY}
	if t.f.Periodic() {
		n.I = (n.I%t.cx + t.cx) % t.cx
		n.J = (n.J%t.cy + t.cy) % t.cy

		return n, true
	}

	return n, n.I >= 0 && n.I < t.cx && n.J >= 0 && n.J < t.cy
}

// visit is one crossing of a cell, identified by its exit direction.
type visit struct {
	cell Cell
	exit Direction
}

// trace follows the isoline from start, entered moving in direction entry
// (zero for the canonical crossing), until it closes, leaves the domain or
// fails. The path is closed when it comes back to the crossing it started
// with; on a saddle start the other crossing is traced on the way. A path
// that repeats any other crossing of its own stops with ErrReentry.
//
// The returned error is non-nil only for conditions fatal to the whole
// extraction (domain exit with open contours disabled, cancellation).
func (t *tracer) trace(start Cell, entry Direction) (Fragment, error) {
	fr := Fragment{State: Tracing}
	t.log.Debug("march: fragment start", "level", t.level, "i", start.I, "j", start.J, "entry", entry)

	var (
		cur      = start
		incoming = entry
		first    Direction
		visited  = make(map[visit]bool)
	)
	for steps := 0; ; steps++ {
		if steps >= t.maxSteps {
			return t.fail(fr, &CellError{Cell: cur, Code: CornerCode(t.f, cur, t.level),
				Err: fmt.Errorf("after %d steps: %w", steps, ErrStepLimit)}), nil
		}
		if steps%ctxCheckInterval == ctxCheckInterval-1 {
			if err := t.ctx.Err(); err != nil {
				return fr, err
			}
		}

		code := CornerCode(t.f, cur, t.level)
		dir, err := Step(code, t.f.Func(), t.f.Center(cur.I, cur.J), t.level, incoming)
		if err != nil {
			return t.fail(fr, &CellError{Cell: cur, Code: code, Err: err}), nil
		}
		if steps == 0 {
			first = dir
		} else if cur == start && dir == first {
			fr.Closed = true
			fr.State = Closed

			return t.finish(fr), nil
		}
		v := visit{cell: cur, exit: dir}
		if visited[v] {
			fr.State = Failed
			fr.Err = &CellError{Cell: cur, Code: code, Err: ErrReentry}
			t.log.Warn("march: re-entry", "level", t.level, "i", cur.I, "j", cur.J, "cells", len(fr.Cells))

			return fr, nil
		}
		visited[v] = true

		p, err := Crossing(t.f, cur, dir, t.level)
		if err != nil {
			t.log.Warn("march: degenerate edge", "level", t.level, "i", cur.I, "j", cur.J, "err", err)
			t.degenerate = append(t.degenerate, err)
		}
		fr.Cells = append(fr.Cells, cur)
		fr.Points = append(fr.Points, t.f.Wrap(p))

		n, inside := t.next(cur, dir)
		if !inside {
			if !t.f.OpenContours() {
				return fr, &CellError{Cell: cur, Code: code, Err: ErrDomainExit}
			}
			fr.State = Open

			return t.finish(fr), nil
		}
		if !t.pool.remove(n, dir) {
			t.log.Debug("march: stray step", "level", t.level, "i", n.I, "j", n.J)
		}
		cur, incoming = n, dir
	}
}

func (t *tracer) finish(fr Fragment) Fragment {
	t.log.Debug("march: fragment done", "level", t.level, "state", fr.State, "cells", len(fr.Cells))

	return fr
}

// fail marks fr as dropped with err.
func (t *tracer) fail(fr Fragment, err error) Fragment {
	fr.State = Failed
	fr.Err = err
	t.log.Warn("march: fragment dropped", "level", t.level, "cells", len(fr.Cells), "err", err)

	return fr
}
