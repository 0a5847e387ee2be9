// SPDX-License-Identifier: MIT

package march

import (
	"slices"

	"seehuhn.de/go/geom/vec"
)

// segment identifies one crossing of a cell. Saddle cells carry two
// crossings, told apart by their exit points.
type segment struct {
	cell Cell
	exit vec.Vec2
}

func segmentAt(c Contour, k int) segment {
	return segment{cell: c.Cells[k], exit: c.Points[k]}
}

// Merge joins contours that share at least one segment into single contours.
// A segment is a cell together with its exit point, so the two isolines
// through a resolved saddle cell stay apart.
//
// Contours are grouped with a disjoint-set (union-find) structure using path
// compression and union by rank; two contours fall into the same group when
// they share a segment, directly or through other members. Within a group the
// first contour is the base and every other member is spliced in, in input
// order, as soon as it shares a segment with the result so far:
//   - a run of the member's new segments is inserted before the next shared
//     segment, or after the last shared segment when the run is trailing;
//   - a shared segment keeps its position in the result.
//
// The merged contour is closed if any member is closed. Groups in the
// output are ordered by their first member and have pairwise disjoint
// segments, so Merge(Merge(x)) equals Merge(x). The input is not modified.
// Contours whose Points and Cells differ in length are malformed and are
// passed through unchanged.
//
// Complexity: O(S·α(F)) for grouping plus O(S²) worst case for splicing,
// where S is the total number of segments and F the number of contours.
func Merge(contours []Contour) []Contour {
	n := len(contours)
	if n == 0 {
		return nil
	}

	parent := make([]int, n)
	rank := make([]int, n)
	for k := range parent {
		parent[k] = k
	}
	find := func(u int) int {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}

		return u
	}
	union := func(u, v int) {
		ru, rv := find(u), find(v)
		if ru == rv {
			return
		}
		if rank[ru] < rank[rv] {
			parent[ru] = rv
		} else {
			parent[rv] = ru
			if rank[ru] == rank[rv] {
				rank[ru]++
			}
		}
	}

	owner := make(map[segment]int)
	for k, c := range contours {
		if len(c.Cells) != len(c.Points) {
			continue
		}
		for i := range c.Cells {
			s := segmentAt(c, i)
			if o, ok := owner[s]; ok {
				union(o, k)
			} else {
				owner[s] = k
			}
		}
	}

	// Members per root, in input order; roots ordered by first member.
	groups := make(map[int][]int)
	var roots []int
	for k := range contours {
		r := find(k)
		if _, ok := groups[r]; !ok {
			roots = append(roots, r)
		}
		groups[r] = append(groups[r], k)
	}

	out := make([]Contour, 0, len(roots))
	for _, r := range roots {
		out = append(out, mergeGroup(contours, groups[r]))
	}

	return out
}

// mergeGroup splices the members of one group into a single contour.
func mergeGroup(contours []Contour, members []int) Contour {
	base := contours[members[0]]
	res := Contour{
		Points: slices.Clone(base.Points),
		Cells:  slices.Clone(base.Cells),
		Closed: base.Closed,
	}
	if len(members) == 1 {
		return res
	}
	in := make(map[segment]bool, len(res.Cells))
	for k := range res.Cells {
		in[segmentAt(res, k)] = true
	}

	rest := slices.Clone(members[1:])
	for len(rest) > 0 {
		k := slices.IndexFunc(rest, func(m int) bool {
			c := contours[m]
			for i := range c.Cells {
				if in[segmentAt(c, i)] {
					return true
				}
			}

			return false
		})
		if k < 0 {
			// Unreachable for a connected group; keep the remainder in order.
			k = 0
		}
		m := contours[rest[k]]
		rest = slices.Delete(rest, k, k+1)

		splice(&res, in, m)
		res.Closed = res.Closed || m.Closed
	}

	return res
}

// indexOf returns the position of s in res, or -1.
func indexOf(res *Contour, s segment) int {
	for k := range res.Cells {
		if segmentAt(*res, k) == s {
			return k
		}
	}

	return -1
}

// splice inserts the segments of m that are not yet in res next to the
// shared segments surrounding them, updating in.
func splice(res *Contour, in map[segment]bool, m Contour) {
	var (
		runCells  []Cell
		runPoints []vec.Vec2
		pending   = make(map[segment]bool)
		last      = -1 // index in m of the last shared segment
	)
	insertAt := func(pos int) {
		res.Cells = slices.Insert(res.Cells, pos, runCells...)
		res.Points = slices.Insert(res.Points, pos, runPoints...)
		for k := range runCells {
			in[segment{cell: runCells[k], exit: runPoints[k]}] = true
		}
		runCells, runPoints = nil, nil
		clear(pending)
	}

	for k := range m.Cells {
		s := segmentAt(m, k)
		switch {
		case in[s]:
			if len(runCells) > 0 {
				insertAt(indexOf(res, s))
			}
			last = k
		case pending[s]:
			// already queued in this run
		default:
			pending[s] = true
			runCells = append(runCells, s.cell)
			runPoints = append(runPoints, s.exit)
		}
	}
	if len(runCells) == 0 {
		return
	}
	if last < 0 {
		insertAt(len(res.Cells))
		return
	}
	insertAt(indexOf(res, segmentAt(m, last)) + 1)
}
