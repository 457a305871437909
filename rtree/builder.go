// Copyright 2026 The geocol Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package rtree

import (
	"github.com/spatialbuf/geocol"
)

// DefaultNodeSize is the R-Tree node size used when the caller does
// not have a reason to pick another. 16 balances tree depth against
// per-node scan cost for typical column sizes.
const DefaultNodeSize uint16 = 16

// Refs computes the bounding box reference list for every row of a
// geometry array, in row order. Null and empty rows are given the
// inverted EmptyBox, so they can never match a search. The returned
// slice is not Hilbert-sorted.
func Refs(arr geocol.Array) []Ref {
	refs := make([]Ref, arr.Len())
	for i := range refs {
		refs[i].Index = int64(i)
		if !arr.IsValid(i) {
			refs[i].Box = EmptyBox
			continue
		}
		x0, y0, x1, y1 := geocol.BoundsOf(arr.Geom(i))
		refs[i].Box = Box{XMin: x0, YMin: y0, XMax: x1, YMax: y1}
	}
	return refs
}

// Index builds a packed Hilbert R-Tree over the rows of a geometry
// array. Row bounding boxes are computed with geocol.BoundsOf, the
// references are Hilbert-sorted, and the tree is bulk loaded bottom
// up. Returns an error if the array is empty.
//
// The resulting tree maps search hits back to row indices in arr. If
// arr is later sliced or concatenated, the tree must be rebuilt.
func Index(arr geocol.Array, nodeSize uint16) (*PackedRTree, error) {
	if arr.Len() == 0 {
		return nil, textErr("cannot index an empty array")
	}
	refs := Refs(arr)
	extent := EmptyBox
	for i := range refs {
		extent.Expand(&refs[i].Box)
	}
	// An all-null or all-empty column has an inverted extent. Sorting
	// is pointless then, and the Hilbert math would divide by infinity.
	if extent.XMin <= extent.XMax {
		HilbertSort(refs, &extent)
	}
	return New(refs, nodeSize)
}
