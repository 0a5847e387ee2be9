package march_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/isolines/field"
	"github.com/katalvlaran/isolines/march"
)

// TestCandidates_ScenarioA lists the boundary cells of the negative block in lexicographic order.
func TestCandidates_ScenarioA(t *testing.T) {
	f := gridField(t, scenarioA)

	got := march.Candidates(f, 0)
	assert.Equal(t, []march.Cell{
		{0, 1}, {0, 2}, {1, 0}, {1, 2}, {2, 0}, {2, 1}, {2, 2},
	}, got)
}

// TestCandidates_NoCrossing returns nothing when the level is out of range.
func TestCandidates_NoCrossing(t *testing.T) {
	f := gridField(t, scenarioA)

	assert.Empty(t, march.Candidates(f, 5))
	assert.Empty(t, march.Candidates(f, -5))
	assert.Nil(t, march.Candidates(nil, 0))
}

// TestCandidates_PeriodicWrap checks that neighbours across the seam are compared.
func TestCandidates_PeriodicWrap(t *testing.T) {
	f, err := field.New(
		field.WithGrid([][]float64{
			{-1, 1, 1},
			{1, 1, 1},
			{1, 1, 1},
		}),
		field.WithBounds(0, 3, 0, 3),
		field.WithPeriodic(true),
	)
	require.NoError(t, err)

	assert.Equal(t, []march.Cell{{0, 0}, {0, 2}, {2, 0}}, march.Candidates(f, 0))
}

// TestCornerCode classifies each corner of a cell.
func TestCornerCode(t *testing.T) {
	f := gridField(t, saddleGrid)

	assert.Equal(t, march.CodeSaddle0101, march.CornerCode(f, march.Cell{I: 1, J: 1}, 0))
	assert.Equal(t, march.Code(0b0100), march.CornerCode(f, march.Cell{I: 0, J: 0}, 0))
	assert.Equal(t, march.Code(0b0010), march.CornerCode(f, march.Cell{I: 0, J: 1}, 0))
	assert.Equal(t, march.CodeFlatAbove, march.CornerCode(f, march.Cell{I: 2, J: 0}, 0))
	assert.Equal(t, march.CodeFlatBelow, march.CornerCode(f, march.Cell{I: 2, J: 0}, 2))
}
