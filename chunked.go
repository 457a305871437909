// Copyright 2026 The geocol Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package geocol

import (
	"sort"

	"github.com/spatialbuf/geocol/buffer"
)

// A ChunkedArray is a logical geometry column composed of multiple
// physical array chunks of identical logical type. Row addressing
// locates the owning chunk by binary search over the chunk length
// prefix sums and delegates.
type ChunkedArray struct {
	typ    GeomType
	dim    Dimension
	chunks []Array
	prefix []int // prefix[j] = rows before chunk j; len = len(chunks)+1
}

// NewChunked creates a chunked array from one or more chunks. All
// chunks must share the same geometry type and dimensionality; a
// mismatch is a ValidationError, never a silent coercion. The chunks
// are shared, not copied.
func NewChunked(chunks ...Array) (*ChunkedArray, error) {
	if len(chunks) == 0 {
		return nil, buffer.Invalidf("chunked array needs at least one chunk")
	}
	typ, dim := chunks[0].Type(), chunks[0].Dimension()
	prefix := make([]int, len(chunks)+1)
	for j, c := range chunks {
		if c.Type() != typ {
			return nil, buffer.Invalidf("chunk %d is %s, chunk 0 is %s", j, c.Type(), typ)
		}
		if c.Dimension() != dim {
			return nil, buffer.Invalidf("chunk %d is %s, chunk 0 is %s", j, c.Dimension(), dim)
		}
		prefix[j+1] = prefix[j] + c.Len()
	}
	return &ChunkedArray{typ: typ, dim: dim, chunks: chunks, prefix: prefix}, nil
}

// Type returns the geometry type shared by all chunks.
func (c *ChunkedArray) Type() GeomType {
	return c.typ
}

// Dimension returns the dimensionality shared by all chunks.
func (c *ChunkedArray) Dimension() Dimension {
	return c.dim
}

// Len returns the logical row count, the sum of all chunk lengths.
func (c *ChunkedArray) Len() int {
	return c.prefix[len(c.chunks)]
}

// NumChunks returns the number of physical chunks.
func (c *ChunkedArray) NumChunks() int {
	return len(c.chunks)
}

// Chunk returns physical chunk j.
func (c *ChunkedArray) Chunk(j int) Array {
	if j < 0 || j >= len(c.chunks) {
		fmtPanic("chunk %d out of bounds [0,%d)", j, len(c.chunks))
	}
	return c.chunks[j]
}

// Chunks returns the physical chunks in order. The slice is shared;
// do not modify it.
func (c *ChunkedArray) Chunks() []Array {
	return c.chunks
}

// Resolve maps logical row i to its owning chunk and the local row
// index within it. Panics if i is out of bounds.
func (c *ChunkedArray) Resolve(i int) (chunk, local int) {
	boundsCheck(i, c.Len())
	chunk = sort.Search(len(c.chunks), func(j int) bool {
		return c.prefix[j+1] > i
	})
	return chunk, i - c.prefix[chunk]
}

// IsValid reports whether logical row i is non-null.
func (c *ChunkedArray) IsValid(i int) bool {
	j, k := c.Resolve(i)
	return c.chunks[j].IsValid(k)
}

// Geom returns a borrowed view of logical row i.
func (c *ChunkedArray) Geom(i int) Geom {
	j, k := c.Resolve(i)
	return c.chunks[j].Geom(k)
}

// NullCount returns the number of null rows across all chunks.
func (c *ChunkedArray) NullCount() int {
	n := 0
	for _, chunk := range c.chunks {
		n += chunk.NullCount()
	}
	return n
}

// Concat copies all chunks into a single new array. The merged
// buffers are fresh allocations; the source chunks are unchanged.
func (c *ChunkedArray) Concat() (Array, error) {
	return Concat(c.chunks...)
}

// Rechunk repartitions the column into a new chunked array whose
// chunks, except possibly the last, each hold targetLen rows. All
// buffers are copied.
func (c *ChunkedArray) Rechunk(targetLen int) (*ChunkedArray, error) {
	return rechunk(c, targetLen)
}
