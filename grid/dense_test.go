package grid_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/isolines/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//----------------------------------------------------------------------------//
// NewDense Tests
//----------------------------------------------------------------------------//

// TestNewDense_Errors verifies that NewDense rejects empty, ragged, tiny and non-finite inputs.
func TestNewDense_Errors(t *testing.T) {
	cases := []struct {
		name string
		grid [][]float64
		err  error
	}{
		{"EmptyRows", [][]float64{}, grid.ErrEmptyGrid},
		{"EmptyCols", [][]float64{{}}, grid.ErrEmptyGrid},
		{"NonRectangular", [][]float64{{1, 2}, {3}}, grid.ErrNonRectangular},
		{"SingleRow", [][]float64{{1, 2, 3}}, grid.ErrTooSmall},
		{"SingleColumn", [][]float64{{1}, {2}}, grid.ErrTooSmall},
		{"NaN", [][]float64{{1, 2}, {math.NaN(), 4}}, grid.ErrNaNInf},
		{"Inf", [][]float64{{1, math.Inf(-1)}, {3, 4}}, grid.ErrNaNInf},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.NewDense(tc.grid)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// TestNewDense_DeepCopy ensures later mutation of the input does not leak into the grid.
func TestNewDense_DeepCopy(t *testing.T) {
	in := [][]float64{{1, 2, 3}, {4, 5, 6}}
	d, err := grid.NewDense(in)
	require.NoError(t, err)

	in[0][0] = 100
	v, err := d.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)

	nx, ny := d.Shape()
	assert.Equal(t, 2, nx)
	assert.Equal(t, 3, ny)
	assert.Equal(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, d.Rows())
}

//----------------------------------------------------------------------------//
// Accessor Tests
//----------------------------------------------------------------------------//

// TestAt_OutOfRange checks bounds handling of At and InBounds.
func TestAt_OutOfRange(t *testing.T) {
	d, err := grid.NewDense([][]float64{{0, 1}, {2, 3}})
	require.NoError(t, err)

	for _, ij := range [][2]int{{-1, 0}, {2, 0}, {0, 2}, {1, -1}} {
		assert.False(t, d.InBounds(ij[0], ij[1]), "InBounds(%d,%d)", ij[0], ij[1])
		_, err := d.At(ij[0], ij[1])
		assert.ErrorIs(t, err, grid.ErrOutOfRange)
	}
	v, err := d.At(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 2.0, v)
}

// TestValue_Wraps verifies toroidal index wrapping in both directions.
func TestValue_Wraps(t *testing.T) {
	d, err := grid.NewDense([][]float64{
		{0, 1, 2},
		{3, 4, 5},
	})
	require.NoError(t, err)

	assert.Equal(t, 0.0, d.Value(2, 0), "i = nx wraps to 0")
	assert.Equal(t, 5.0, d.Value(-1, -1), "negative indices wrap to the last sample")
	assert.Equal(t, 3.0, d.Value(1, 3), "j = ny wraps to 0")
}

// TestRangeAndBelow checks the min/max query and the below-level mask.
func TestRangeAndBelow(t *testing.T) {
	d, err := grid.NewDense([][]float64{
		{1, -2},
		{0.5, 3},
	})
	require.NoError(t, err)

	lo, hi := d.Range()
	assert.Equal(t, -2.0, lo)
	assert.Equal(t, 3.0, hi)
	assert.Equal(t, []bool{false, true, true, false}, d.Below(1))
}

// TestSample evaluates a function over two axes.
func TestSample(t *testing.T) {
	d, err := grid.Sample([]float64{0, 1}, []float64{0, 10, 20}, func(x, y float64) float64 {
		return x + y
	})
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{0, 10, 20}, {1, 11, 21}}, d.Rows())

	_, err = grid.Sample([]float64{0, 1}, []float64{0, 1}, func(x, y float64) float64 {
		return math.Log(x)
	})
	assert.ErrorIs(t, err, grid.ErrNaNInf, "log(0) = -Inf must be rejected")
}
