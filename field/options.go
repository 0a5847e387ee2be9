// SPDX-License-Identifier: MIT

package field

import "math"

// Defaults for the boundary policy.
const (
	// DefaultPeriodic disables toroidal wraparound.
	DefaultPeriodic = false

	// DefaultOpenContours accepts contours that leave the domain.
	DefaultOpenContours = true
)

const (
	panicBoundsInvalid     = "field: WithBounds: bounds must be finite with min < max"
	panicResolutionInvalid = "field: WithResolution: at least 2 samples per axis are required"
)

// Func is a continuous scalar function over the domain.
type Func func(x, y float64) float64

// Option configures field construction. Use with New(opts...).
type Option func(*Options)

// Options holds the resolved construction inputs.
// Fields are unexported; New resolves them via gatherOptions.
type Options struct {
	values [][]float64
	fn     Func

	hasBounds              bool
	xMin, xMax, yMin, yMax float64

	hasResolution bool
	nx, ny        int

	periodic     bool
	openContours bool
}

// DefaultOptions returns Options with no inputs and the default boundary policy.
func DefaultOptions() Options {
	return Options{
		periodic:     DefaultPeriodic,
		openContours: DefaultOpenContours,
	}
}

// gatherOptions applies opts over DefaultOptions.
func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithGrid supplies pre-sampled values indexed values[i][j].
// The slice is deep-copied by New.
func WithGrid(values [][]float64) Option {
	return func(o *Options) { o.values = values }
}

// WithFunc supplies the continuous function. It samples the grid when no
// grid is given and is always used to resolve saddle cells.
func WithFunc(fn Func) Option {
	return func(o *Options) { o.fn = fn }
}

// WithBounds sets the coordinate intervals [xMin,xMax] × [yMin,yMax].
// Panics if a bound is not finite or an interval is empty.
func WithBounds(xMin, xMax, yMin, yMax float64) Option {
	for _, v := range []float64{xMin, xMax, yMin, yMax} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			panic(panicBoundsInvalid)
		}
	}
	if xMin >= xMax || yMin >= yMax {
		panic(panicBoundsInvalid)
	}

	return func(o *Options) {
		o.hasBounds = true
		o.xMin, o.xMax, o.yMin, o.yMax = xMin, xMax, yMin, yMax
	}
}

// WithResolution sets the number of samples along x and y.
// Panics if either count is below 2.
func WithResolution(nx, ny int) Option {
	if nx < 2 || ny < 2 {
		panic(panicResolutionInvalid)
	}

	return func(o *Options) {
		o.hasResolution = true
		o.nx, o.ny = nx, ny
	}
}

// WithSquareResolution is WithResolution(n, n).
func WithSquareResolution(n int) Option {
	return WithResolution(n, n)
}

// WithPeriodic toggles toroidal wraparound. When enabled, x = xMax is
// identified with x = xMin (likewise for y).
func WithPeriodic(periodic bool) Option {
	return func(o *Options) { o.periodic = periodic }
}

// WithOpenContours toggles whether a contour may leave the domain. When
// disabled, such a contour aborts extraction.
func WithOpenContours(open bool) Option {
	return func(o *Options) { o.openContours = open }
}
