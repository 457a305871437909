// Copyright 2026 The geocol Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package buffer

// An Offsets buffer is a monotonically nondecreasing sequence of N+1
// int32 values mapping each of N parent elements to a contiguous index
// range in the next-nested level. Offsets values are absolute child
// indices: sliced views keep the original values and adjust only the
// parent window, so the child buffer remains addressable unchanged.
type Offsets struct {
	v      []int32
	offset int // parent element offset of this view
	n      int // parent element count of this view
}

// NewOffsets creates an offsets buffer over v, validating that v is
// non-empty, starts at zero, and is nondecreasing. The buffer shares
// v without copying.
func NewOffsets(v []int32) (Offsets, error) {
	if len(v) == 0 {
		return Offsets{}, Invalidf("offsets buffer must have at least one value")
	}
	if v[0] != 0 {
		return Offsets{}, Invalidf("offsets[0] must be 0, got %d", v[0])
	}
	for i := 1; i < len(v); i++ {
		if v[i] < v[i-1] {
			return Offsets{}, Invalidf("offsets not nondecreasing: offsets[%d]=%d < offsets[%d]=%d", i, v[i], i-1, v[i-1])
		}
	}
	return Offsets{v: v, n: len(v) - 1}, nil
}

// Len returns the number of parent elements in the view.
func (o Offsets) Len() int {
	return o.n
}

// Start returns the child index at which parent element i begins.
// Panics if i is out of bounds; i == Len() is allowed and returns the
// end of the last element.
func (o Offsets) Start(i int) int32 {
	if i < 0 || i > o.n {
		fmtPanic("offsets index %d out of bounds [0,%d]", i, o.n)
	}
	return o.v[o.offset+i]
}

// Range returns the child index range [start, end) of parent element
// i. Panics if i is out of bounds.
func (o Offsets) Range(i int) (start, end int32) {
	if i < 0 || i >= o.n {
		fmtPanic("offsets index %d out of bounds [0,%d)", i, o.n)
	}
	return o.v[o.offset+i], o.v[o.offset+i+1]
}

// Window returns the raw offsets values covering parent elements
// [i, j], a slice of length j-i+1 sharing the underlying storage.
func (o Offsets) Window(i, j int) []int32 {
	if i < 0 || j < i || j > o.n {
		fmtPanic("offsets window [%d,%d] out of bounds [0,%d]", i, j, o.n)
	}
	return o.v[o.offset+i : o.offset+j+1]
}

// Slice returns a view of length parent elements starting at offset.
// The view shares the underlying storage; values are not re-based.
func (o Offsets) Slice(offset, length int) Offsets {
	if offset < 0 || length < 0 || offset+length > o.n {
		fmtPanic("offsets slice [%d,%d) out of bounds [0,%d)", offset, offset+length, o.n)
	}
	o.offset += offset
	o.n = length
	return o
}

// Values returns the raw offsets values of the view, including the
// trailing end offset. The slice shares the underlying storage.
func (o Offsets) Values() []int32 {
	return o.v[o.offset : o.offset+o.n+1]
}

// An OffsetsBuilder accumulates child range lengths into an offsets
// buffer. The cumulative start offset begins at zero and each
// PushLength advances it. After Finish the builder is consumed and
// further use panics.
type OffsetsBuilder struct {
	v      []int32
	frozen bool
}

// NewOffsetsBuilder creates an empty offsets builder.
func NewOffsetsBuilder() *OffsetsBuilder {
	return &OffsetsBuilder{v: []int32{0}}
}

func (b *OffsetsBuilder) sanityCheck() {
	if b.frozen {
		textPanic("offsets builder used after Finish")
	}
}

// Len returns the number of parent elements appended so far.
func (b *OffsetsBuilder) Len() int {
	return len(b.v) - 1
}

// End returns the current cumulative end offset.
func (b *OffsetsBuilder) End() int32 {
	return b.v[len(b.v)-1]
}

// PushLength appends the next parent element, covering n children
// starting at the current cumulative offset. Panics if n is negative.
func (b *OffsetsBuilder) PushLength(n int) {
	b.sanityCheck()
	if n < 0 {
		fmtPanic("negative child length %d", n)
	}
	b.v = append(b.v, b.v[len(b.v)-1]+int32(n))
}

// Finish validates the offsets invariants, freezes the buffer and
// consumes the builder. The invariants hold by construction but are
// checked regardless so that freeze is the single trust boundary.
func (b *OffsetsBuilder) Finish() (Offsets, error) {
	b.sanityCheck()
	b.frozen = true
	return NewOffsets(b.v)
}
