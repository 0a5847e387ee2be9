// SPDX-License-Identifier: MIT

package isolines

import (
	"fmt"

	"github.com/katalvlaran/isolines/field"
	"github.com/katalvlaran/isolines/march"
)

// DefaultLevel is the level used when none is chosen.
const DefaultLevel = 0.0

// MarchingSquares binds a Field to extraction options.
// It is immutable and safe for concurrent use.
type MarchingSquares struct {
	f    *field.Field
	opts []march.Option
}

// New builds the field from opts. Errors match field.ErrConfiguration.
func New(opts ...field.Option) (*MarchingSquares, error) {
	f, err := field.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("isolines: %w", err)
	}

	return &MarchingSquares{f: f}, nil
}

// WithExtractOptions returns a copy of m that passes opts to every extraction.
func (m *MarchingSquares) WithExtractOptions(opts ...march.Option) *MarchingSquares {
	return &MarchingSquares{
		f:    m.f,
		opts: append(append([]march.Option(nil), m.opts...), opts...),
	}
}

// Field returns the underlying field.
func (m *MarchingSquares) Field() *field.Field { return m.f }

// Extract returns the contours at level; see march.Extract.
func (m *MarchingSquares) Extract(level float64) ([]march.Contour, error) {
	return march.Extract(m.f, level, m.opts...)
}

// ExtractLevels returns the contours of every level, computed concurrently.
func (m *MarchingSquares) ExtractLevels(levels ...float64) ([][]march.Contour, error) {
	return march.ExtractLevels(m.f, levels, m.opts...)
}
