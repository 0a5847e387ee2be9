package march_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/vec"

	"github.com/katalvlaran/isolines/field"
	"github.com/katalvlaran/isolines/march"
)

// frag builds an open contour through cells given as (i,j) pairs, placing
// each exit point at the cell's own indices.
func frag(closed bool, cells ...[2]int) march.Contour {
	c := march.Contour{Closed: closed}
	for _, ij := range cells {
		c.Cells = append(c.Cells, march.Cell{I: ij[0], J: ij[1]})
		c.Points = append(c.Points, vec.Vec2{X: float64(ij[0]), Y: float64(ij[1])})
	}

	return c
}

//----------------------------------------------------------------------------//
// Splicing
//----------------------------------------------------------------------------//

// TestMerge_Splice covers leading, middle and trailing runs.
func TestMerge_Splice(t *testing.T) {
	cases := []struct {
		name string
		in   []march.Contour
		want march.Contour
	}{
		{
			name: "LeadingRuns",
			in: []march.Contour{
				frag(false, [2]int{0, 2}),
				frag(false, [2]int{1, 1}, [2]int{0, 1}, [2]int{0, 2}),
				frag(false, [2]int{2, 0}, [2]int{1, 0}, [2]int{1, 1}, [2]int{0, 1}, [2]int{0, 2}),
			},
			want: frag(false, [2]int{2, 0}, [2]int{1, 0}, [2]int{1, 1}, [2]int{0, 1}, [2]int{0, 2}),
		},
		{
			name: "MiddleRun",
			in: []march.Contour{
				frag(false, [2]int{0, 0}, [2]int{3, 3}),
				frag(false, [2]int{0, 0}, [2]int{1, 1}, [2]int{2, 2}, [2]int{3, 3}),
			},
			want: frag(false, [2]int{0, 0}, [2]int{1, 1}, [2]int{2, 2}, [2]int{3, 3}),
		},
		{
			name: "TrailingRun",
			in: []march.Contour{
				frag(false, [2]int{0, 0}, [2]int{1, 0}),
				frag(true, [2]int{1, 0}, [2]int{2, 0}),
			},
			want: frag(true, [2]int{0, 0}, [2]int{1, 0}, [2]int{2, 0}),
		},
		{
			name: "Transitive",
			in: []march.Contour{
				frag(false, [2]int{0, 0}, [2]int{0, 1}),
				frag(false, [2]int{0, 2}, [2]int{0, 3}),
				frag(false, [2]int{0, 1}, [2]int{0, 2}),
			},
			want: frag(false, [2]int{0, 0}, [2]int{0, 1}, [2]int{0, 2}, [2]int{0, 3}),
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := march.Merge(tc.in)
			require.Len(t, got, 1)
			assert.Equal(t, tc.want, got[0])
		})
	}
}

// TestMerge_Disjoint leaves unrelated contours apart and in input order.
func TestMerge_Disjoint(t *testing.T) {
	a := frag(true, [2]int{0, 0}, [2]int{0, 1})
	b := frag(false, [2]int{5, 5})

	got := march.Merge([]march.Contour{a, b})
	assert.Equal(t, []march.Contour{a, b}, got)
	assert.Nil(t, march.Merge(nil))
}

// TestMerge_SameCellOtherExit keeps crossings of one saddle cell apart.
func TestMerge_SameCellOtherExit(t *testing.T) {
	a := frag(true, [2]int{1, 1})
	b := march.Contour{
		Cells:  []march.Cell{{I: 1, J: 1}},
		Points: []vec.Vec2{{X: 2, Y: 1.5}},
		Closed: true,
	}

	assert.Len(t, march.Merge([]march.Contour{a, b}), 2)
}

// TestMerge_InputUntouched ensures the caller's slices are not modified.
func TestMerge_InputUntouched(t *testing.T) {
	in := []march.Contour{
		frag(false, [2]int{0, 0}, [2]int{1, 0}),
		frag(false, [2]int{1, 0}, [2]int{2, 0}),
	}
	before := []march.Contour{
		frag(false, [2]int{0, 0}, [2]int{1, 0}),
		frag(false, [2]int{1, 0}, [2]int{2, 0}),
	}

	_ = march.Merge(in)
	assert.Equal(t, before, in)
}

//----------------------------------------------------------------------------//
// Idempotence
//----------------------------------------------------------------------------//

// TestMerge_Idempotent merges real fragments and merges the result again.
func TestMerge_Idempotent(t *testing.T) {
	values := make([][]float64, 6)
	for i := range values {
		values[i] = make([]float64, 6)
		for j := range values[i] {
			values[i][j] = float64(i + j)
		}
	}
	f, err := field.New(field.WithGrid(values))
	require.NoError(t, err)

	rep, err := march.ExtractReport(f, 4.5)
	require.NoError(t, err)
	require.Greater(t, len(rep.Fragments), 1, "a diagonal line is found from several candidates")

	frags := make([]march.Contour, 0, len(rep.Fragments))
	for _, fr := range rep.Fragments {
		frags = append(frags, fr.Contour)
	}
	once := march.Merge(frags)
	assert.Equal(t, rep.Contours, once)
	assert.Equal(t, once, march.Merge(once))
	require.Len(t, once, 1)
}
