// Copyright 2026 The geocol Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package rtree

import (
	"github.com/RoaringBitmap/roaring/v2"
)

// Result is a single index search result. A Result's fields locate the
// matching row in the geometry array the index was built over.
type Result struct {
	// Index is the matching row's position in the geometry array.
	Index int64
	// RefIndex is the position of the matching reference in the
	// Hilbert-sorted list of Ref values passed to New when creating the
	// PackedRTree.
	RefIndex int
}

// Results is a slice of Result structures which implements
// sort.Interface. The sort.Sort function will sort Results in
// ascending order of Result.Index.
type Results []Result

// Len returns the length of the slice. It implements the corresponding
// method of sort.Interface.
func (rs Results) Len() int {
	return len(rs)
}

// Less establishes an absolute ordering by ascending order of
// Result.Index. It implements the corresponding method of
// sort.Interface.
func (rs Results) Less(i, j int) bool {
	return rs[i].Index < rs[j].Index
}

// Swap swaps two elements of the slice. It implements the corresponding
// method of sort.Interface.
func (rs Results) Swap(i, j int) {
	rs[i], rs[j] = rs[j], rs[i]
}

// Selection converts the search results into a row selection bitmap
// suitable for geocol.Filter.
func (rs Results) Selection() *roaring.Bitmap {
	sel := roaring.New()
	for i := range rs {
		sel.Add(uint32(rs[i].Index))
	}
	return sel
}
