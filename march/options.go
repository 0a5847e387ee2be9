// SPDX-License-Identifier: MIT

package march

import "context"

const panicMaxStepsNegative = "march: WithMaxSteps: limit must be >= 0"

// Option configures an extraction. Use with Extract(f, level, opts...).
type Option func(*Options)

// Options holds the parameters of one extraction.
type Options struct {
	// Ctx allows cancellation; checked before each fragment and every
	// ctxCheckInterval steps. Defaults to context.Background().
	Ctx context.Context

	// MaxSteps bounds the number of cells a single fragment may traverse.
	// Zero selects 4*cells+8 for the field being traced.
	MaxSteps int

	// OnFragment, if non-nil, is invoked for every finished fragment,
	// including failed ones, before merging. Returning an error aborts the
	// extraction with that error.
	OnFragment func(fr Fragment) error
}

// DefaultOptions returns Options with:
//   - Background context
//   - Automatic step bound (MaxSteps = 0)
//   - No fragment hook
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		MaxSteps:   0,
		OnFragment: nil,
	}
}

func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithContext sets the context used for cancellation.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxSteps overrides the per-fragment step bound; 0 restores the
// automatic bound. Panics if limit is negative.
func WithMaxSteps(limit int) Option {
	if limit < 0 {
		panic(panicMaxStepsNegative)
	}

	return func(o *Options) { o.MaxSteps = limit }
}

// WithOnFragment installs fn as a hook called for each finished fragment.
func WithOnFragment(fn func(fr Fragment) error) Option {
	return func(o *Options) { o.OnFragment = fn }
}
