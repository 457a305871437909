// Copyright 2026 The geocol Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package rtree

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/spatialbuf/geocol"
)

// A ChunkedIndex is a packed Hilbert R-Tree per physical chunk of a
// chunked geometry column. Search hits are reported as logical row
// indices over the whole column, using the same chunk prefix sums the
// column itself uses for row addressing.
type ChunkedIndex struct {
	trees  []*PackedRTree
	prefix []int64 // prefix[j] = rows before chunk j; len = len(trees)+1
}

// BuildChunked indexes every chunk of a chunked geometry column,
// building the per-chunk trees concurrently. Empty chunks get a nil
// tree and never produce hits. The context cancels in-flight chunk
// builds.
func BuildChunked(ctx context.Context, col *geocol.ChunkedArray, nodeSize uint16) (*ChunkedIndex, error) {
	n := col.NumChunks()
	ci := &ChunkedIndex{
		trees:  make([]*PackedRTree, n),
		prefix: make([]int64, n+1),
	}
	for j := 0; j < n; j++ {
		ci.prefix[j+1] = ci.prefix[j] + int64(col.Chunk(j).Len())
	}

	g, ctx := errgroup.WithContext(ctx)
	for j := 0; j < n; j++ {
		j := j
		chunk := col.Chunk(j)
		if chunk.Len() == 0 {
			continue
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			t, err := Index(chunk, nodeSize)
			if err != nil {
				return wrapErr("failed to index chunk %d", err, j)
			}
			ci.trees[j] = t
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return ci, nil
}

// NumChunks returns the number of per-chunk trees, counting nil trees
// of empty chunks.
func (ci *ChunkedIndex) NumChunks() int {
	return len(ci.trees)
}

// Tree returns the tree for chunk j, or nil if the chunk is empty.
func (ci *ChunkedIndex) Tree(j int) *PackedRTree {
	if j < 0 || j >= len(ci.trees) {
		fmtPanic("chunk %d out of bounds [0,%d)", j, len(ci.trees))
	}
	return ci.trees[j]
}

// Bounds returns the bounding box around all rows of all chunks.
func (ci *ChunkedIndex) Bounds() Box {
	b := EmptyBox
	for _, t := range ci.trees {
		if t == nil {
			continue
		}
		tb := t.Bounds()
		b.Expand(&tb)
	}
	return b
}

// Search searches every chunk tree and returns the matches as logical
// row indices, in ascending row order.
func (ci *ChunkedIndex) Search(b Box) Results {
	var out Results
	for j, t := range ci.trees {
		if t == nil {
			continue
		}
		hits := t.Search(b)
		for i := range hits {
			hits[i].Index += ci.prefix[j]
		}
		out = append(out, hits...)
	}
	sort.Sort(out)
	return out
}

// Nearest returns the k rows whose bounding boxes are nearest to the
// query point (x, y) across all chunks, in ascending order of box
// distance, ties broken by ascending logical row index.
func (ci *ChunkedIndex) Nearest(x, y float64, k int) []Neighbor {
	if k < 1 {
		textPanic("k must be at least 1")
	}
	var all []Neighbor
	for j, t := range ci.trees {
		if t == nil {
			continue
		}
		ns := t.Nearest(x, y, k)
		for i := range ns {
			ns[i].Index += ci.prefix[j]
		}
		all = append(all, ns...)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].Dist != all[j].Dist {
			return all[i].Dist < all[j].Dist
		}
		return all[i].Index < all[j].Index
	})
	if len(all) > k {
		all = all[:k]
	}
	return all
}
