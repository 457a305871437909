// Copyright 2026 The geocol Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package rtree

import (
	"container/heap"
)

// A Neighbor is a single nearest-neighbor search result.
type Neighbor struct {
	// Index is the matching row's position in the geometry array.
	Index int64
	// Dist is the euclidean distance from the query point to the row's
	// bounding box. A box distance is a lower bound on the true
	// geometry distance; use NearestExact for exact distances.
	Dist float64
}

// A nearestEntry is a pending traversal item in the best-first search
// queue. A leaf entry carries a row index, a non-leaf entry carries the
// node index of its first child.
type nearestEntry struct {
	dist  float64
	index int64
	level int
	leaf  bool
}

// nearestQueue is a min-heap of traversal entries ordered by distance.
// At equal distance non-leaf entries come first: a child box is never
// nearer than its parent, so once every distance-equal subtree is
// expanded the leaves at that distance are all present and can tie-break
// by ascending row index. Leaf and non-leaf index fields are not
// comparable (row index vs first-child node index).
type nearestQueue []nearestEntry

func (nq nearestQueue) Len() int { return len(nq) }
func (nq nearestQueue) Less(i, j int) bool {
	if nq[i].dist != nq[j].dist {
		return nq[i].dist < nq[j].dist
	}
	if nq[i].leaf != nq[j].leaf {
		return !nq[i].leaf
	}
	return nq[i].index < nq[j].index
}
func (nq nearestQueue) Swap(i, j int)       { nq[i], nq[j] = nq[j], nq[i] }
func (nq *nearestQueue) Push(x interface{}) { *nq = append(*nq, x.(nearestEntry)) }
func (nq *nearestQueue) Pop() interface{} {
	old := *nq
	n := len(old)
	x := old[n-1]
	*nq = old[0 : n-1]
	return x
}

// Nearest returns the k rows whose bounding boxes are nearest to the
// query point (x, y), in ascending order of box distance, ties broken
// by ascending row index. Fewer than k neighbors are returned when the
// tree holds fewer than k non-empty rows. k must be positive.
//
// The search is best-first: subtrees are visited in order of their
// minimum possible distance, so the traversal touches only the nodes
// that can still improve the result set.
func (prt *PackedRTree) Nearest(x, y float64, k int) []Neighbor {
	if k < 1 {
		textPanic("k must be at least 1")
	}

	q := make(nearestQueue, 0, prt.nodeSize+1)
	root := &prt.nodes[0]
	q = append(q, nearestEntry{
		dist:  root.Distance(x, y),
		index: root.Index,
		level: len(prt.levels) - 1,
	})

	neighbors := make([]Neighbor, 0, k)
	for len(q) > 0 {
		e := heapPopNearest(&q)
		if e.leaf {
			neighbors = append(neighbors, Neighbor{Index: e.index, Dist: e.dist})
			if len(neighbors) == k {
				break
			}
			continue
		}
		// Expand the node's children into the queue. Children live one
		// level below the entry; children at level zero become leaf
		// entries carrying row indices.
		first := int(e.index)
		end := first + prt.nodeSize
		if prt.levels[e.level-1].end < end {
			end = prt.levels[e.level-1].end
		}
		childLeaf := e.level-1 == 0
		for pos := first; pos < end; pos++ {
			n := &prt.nodes[pos]
			// An inverted empty box marks a null row; drop it outright
			// so it cannot crowd out real rows.
			if n.XMin > n.XMax {
				continue
			}
			heap.Push(&q, nearestEntry{
				dist:  n.Distance(x, y),
				index: n.Index,
				level: e.level - 1,
				leaf:  childLeaf,
			})
		}
	}
	return neighbors
}

func heapPopNearest(q *nearestQueue) nearestEntry {
	return heap.Pop(q).(nearestEntry)
}
