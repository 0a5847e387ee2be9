package march_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/isolines/field"
)

// scenarioA is a 4×4 grid with a 2×2 negative block in the middle.
var scenarioA = [][]float64{
	{1, 1, 1, 1},
	{1, -1, -1, 1},
	{1, -1, -1, 1},
	{1, 1, 1, 1},
}

// saddleGrid has two diagonal negative samples meeting in saddle cell (1,1).
var saddleGrid = [][]float64{
	{1, 1, 1, 1},
	{1, -1, 1, 1},
	{1, 1, -1, 1},
	{1, 1, 1, 1},
}

// gridField builds a field from values with bounds (0,n-1) on each axis, so
// that coordinates equal sample indices.
func gridField(t testing.TB, values [][]float64, opts ...field.Option) *field.Field {
	t.Helper()
	nx, ny := len(values), len(values[0])
	all := append([]field.Option{
		field.WithGrid(values),
		field.WithBounds(0, float64(nx-1), 0, float64(ny-1)),
	}, opts...)
	f, err := field.New(all...)
	require.NoError(t, err)

	return f
}

// constant returns a function that is c everywhere.
func constant(c float64) field.Func {
	return func(x, y float64) float64 { return c }
}
