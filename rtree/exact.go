// Copyright 2026 The geocol Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package rtree

import (
	"sort"

	"github.com/spatialbuf/geocol"
)

// SearchExact runs a bounding box search over arr's index and then
// post-filters the candidate rows with the engine's exact Intersects
// predicate against the query geometry. The result holds only rows
// whose geometry truly intersects query, in ascending row order.
//
// Returns geocol.ErrNoEngine if engine is nil. The tree must have been
// built over arr; mismatched inputs yield undefined results.
func SearchExact(prt *PackedRTree, arr geocol.Array, query geocol.Geom, engine geocol.Engine) (Results, error) {
	if engine == nil {
		return nil, geocol.ErrNoEngine
	}
	x0, y0, x1, y1 := geocol.BoundsOf(query)
	candidates := prt.Search(Box{XMin: x0, YMin: y0, XMax: x1, YMax: y1})

	out := candidates[:0]
	for _, c := range candidates {
		hit, err := engine.Intersects(arr.Geom(int(c.Index)), query)
		if err != nil {
			return nil, wrapErr("exact intersects failed for row %d", err, c.Index)
		}
		if hit {
			out = append(out, c)
		}
	}
	sort.Sort(out)
	return out, nil
}

// NearestExact returns the k rows nearest to the query geometry by the
// engine's exact Distance, ties broken by ascending row index.
//
// The box index prunes the candidate set: rows are visited in
// ascending box distance from the query's bounding box center point,
// and the scan stops once the next box distance can no longer beat the
// k-th best exact distance found so far. For a point query the box
// distance is a true lower bound on the exact distance, so the result
// is exact; for extended query geometries the candidate cutoff is a
// heuristic and a caller needing guarantees should widen k.
//
// Returns geocol.ErrNoEngine if engine is nil.
func NearestExact(prt *PackedRTree, arr geocol.Array, query geocol.Geom, k int, engine geocol.Engine) ([]Neighbor, error) {
	if engine == nil {
		return nil, geocol.ErrNoEngine
	}
	if k < 1 {
		textPanic("k must be at least 1")
	}

	cx, cy := queryCenter(query)

	// Over-fetch candidates in box distance order, refining each with
	// the exact distance, until the candidate lower bound can no longer
	// beat the current k-th best.
	limit := k
	var best []Neighbor
	for {
		candidates := prt.Nearest(cx, cy, limit)
		best = best[:0]
		for _, c := range candidates {
			d, err := engine.Distance(arr.Geom(int(c.Index)), query)
			if err != nil {
				return nil, wrapErr("exact distance failed for row %d", err, c.Index)
			}
			best = insertNeighbor(best, Neighbor{Index: c.Index, Dist: d}, k)
		}
		// Done when the tree is exhausted or the k-th exact distance is
		// at most the box distance of the last candidate fetched.
		if len(candidates) < limit {
			break
		}
		if len(best) == k && best[k-1].Dist <= candidates[len(candidates)-1].Dist {
			break
		}
		limit *= 2
	}
	return best, nil
}

func queryCenter(g geocol.Geom) (float64, float64) {
	x0, y0, x1, y1 := geocol.BoundsOf(g)
	return (x0 + x1) / 2, (y0 + y1) / 2
}

// insertNeighbor inserts n into the sorted slice ns, keeping at most k
// entries in ascending order of distance, ties by ascending index.
func insertNeighbor(ns []Neighbor, n Neighbor, k int) []Neighbor {
	pos := sort.Search(len(ns), func(i int) bool {
		if ns[i].Dist != n.Dist {
			return ns[i].Dist > n.Dist
		}
		return ns[i].Index > n.Index
	})
	if pos == k {
		return ns
	}
	if len(ns) < k {
		ns = append(ns, Neighbor{})
	}
	copy(ns[pos+1:], ns[pos:])
	ns[pos] = n
	return ns
}
