// Copyright 2026 The geocol Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package buffer

// Layout selects the physical arrangement of a coordinate buffer.
type Layout uint8

const (
	// Interleaved stores coordinates as x,y[,z],x,y[,z],... in a
	// single flat buffer.
	Interleaved Layout = iota
	// Separated stores one flat buffer per axis.
	Separated
)

// String returns the name of the layout.
func (l Layout) String() string {
	switch l {
	case Interleaved:
		return "Interleaved"
	case Separated:
		return "Separated"
	default:
		return "Unknown"
	}
}

// A Coord is a single 2D or 3D coordinate. For 2D coordinates Z is
// zero and not meaningful.
type Coord struct {
	X, Y, Z float64
}

// A CoordBuffer is an immutable view over flat coordinate storage in
// either interleaved or separated layout. The layout and dimension are
// fixed per buffer instance. The zero value is an empty 2D interleaved
// buffer.
type CoordBuffer struct {
	layout Layout
	dim    int
	vals   []float64   // interleaved storage
	axes   [][]float64 // separated storage, one slice per axis
	offset int         // coordinate offset of this view
	n      int         // coordinate count of this view
}

// NewInterleaved creates a coordinate buffer over an interleaved value
// slice. Returns a ValidationError if dim is not 2 or 3 or len(vals)
// is not a multiple of dim. The buffer shares vals without copying.
func NewInterleaved(vals []float64, dim int) (CoordBuffer, error) {
	if dim != 2 && dim != 3 {
		return CoordBuffer{}, Invalidf("coordinate dimension must be 2 or 3, got %d", dim)
	}
	if len(vals)%dim != 0 {
		return CoordBuffer{}, Invalidf("interleaved value count %d is not a multiple of dimension %d", len(vals), dim)
	}
	return CoordBuffer{layout: Interleaved, dim: dim, vals: vals, n: len(vals) / dim}, nil
}

// NewSeparated creates a coordinate buffer over per-axis value slices,
// one slice per axis in x, y[, z] order. Returns a ValidationError if
// the axis count is not 2 or 3 or the axis lengths differ. The buffer
// shares the slices without copying.
func NewSeparated(axes ...[]float64) (CoordBuffer, error) {
	if len(axes) != 2 && len(axes) != 3 {
		return CoordBuffer{}, Invalidf("coordinate dimension must be 2 or 3, got %d axes", len(axes))
	}
	for i := 1; i < len(axes); i++ {
		if len(axes[i]) != len(axes[0]) {
			return CoordBuffer{}, Invalidf("axis %d has %d values, axis 0 has %d", i, len(axes[i]), len(axes[0]))
		}
	}
	return CoordBuffer{layout: Separated, dim: len(axes), axes: axes, n: len(axes[0])}, nil
}

// Layout returns the physical layout of the buffer.
func (b CoordBuffer) Layout() Layout {
	return b.layout
}

// Dim returns the coordinate dimension, 2 or 3.
func (b CoordBuffer) Dim() int {
	if b.dim == 0 {
		return 2 // zero value
	}
	return b.dim
}

// Len returns the number of coordinates in the view.
func (b CoordBuffer) Len() int {
	return b.n
}

func (b CoordBuffer) boundsCheck(i int) {
	if i < 0 || i >= b.n {
		fmtPanic("coordinate index %d out of bounds [0,%d)", i, b.n)
	}
}

// Get returns coordinate i. Panics if i is out of bounds.
func (b CoordBuffer) Get(i int) Coord {
	b.boundsCheck(i)
	i += b.offset
	if b.layout == Separated {
		c := Coord{X: b.axes[0][i], Y: b.axes[1][i]}
		if b.dim == 3 {
			c.Z = b.axes[2][i]
		}
		return c
	}
	d := b.Dim()
	c := Coord{X: b.vals[i*d], Y: b.vals[i*d+1]}
	if d == 3 {
		c.Z = b.vals[i*d+2]
	}
	return c
}

// X returns the X value of coordinate i. Panics if i is out of bounds.
func (b CoordBuffer) X(i int) float64 {
	b.boundsCheck(i)
	if b.layout == Separated {
		return b.axes[0][b.offset+i]
	}
	return b.vals[(b.offset+i)*b.Dim()]
}

// Y returns the Y value of coordinate i. Panics if i is out of bounds.
func (b CoordBuffer) Y(i int) float64 {
	b.boundsCheck(i)
	if b.layout == Separated {
		return b.axes[1][b.offset+i]
	}
	return b.vals[(b.offset+i)*b.Dim()+1]
}

// Z returns the Z value of coordinate i, or zero for a 2D buffer.
// Panics if i is out of bounds.
func (b CoordBuffer) Z(i int) float64 {
	b.boundsCheck(i)
	if b.Dim() != 3 {
		return 0
	}
	if b.layout == Separated {
		return b.axes[2][b.offset+i]
	}
	return b.vals[(b.offset+i)*3+2]
}

// Slice returns a view of length coordinates starting at offset. The
// view shares the underlying storage with b; no values are copied.
// Panics if the range is out of bounds.
func (b CoordBuffer) Slice(offset, length int) CoordBuffer {
	if offset < 0 || length < 0 || offset+length > b.n {
		fmtPanic("coordinate slice [%d,%d) out of bounds [0,%d)", offset, offset+length, b.n)
	}
	b.offset += offset
	b.n = length
	return b
}

// Values returns the coordinates of the view in interleaved order.
// For an interleaved buffer this is a window into the underlying
// storage and shares memory with it; for a separated buffer the values
// are materialized into a fresh slice.
func (b CoordBuffer) Values() []float64 {
	d := b.Dim()
	if b.layout == Interleaved {
		return b.vals[b.offset*d : (b.offset+b.n)*d]
	}
	out := make([]float64, 0, b.n*d)
	for i := 0; i < b.n; i++ {
		c := b.Get(i)
		out = append(out, c.X, c.Y)
		if d == 3 {
			out = append(out, c.Z)
		}
	}
	return out
}

// Axis returns the values of axis k (0 = X, 1 = Y, 2 = Z) for the
// view. For a separated buffer this is a window into the underlying
// storage; for an interleaved buffer the values are materialized.
// Panics if k is not a valid axis.
func (b CoordBuffer) Axis(k int) []float64 {
	if k < 0 || k >= b.Dim() {
		fmtPanic("axis %d out of bounds for dimension %d", k, b.Dim())
	}
	if b.layout == Separated {
		return b.axes[k][b.offset : b.offset+b.n]
	}
	d := b.Dim()
	out := make([]float64, b.n)
	for i := 0; i < b.n; i++ {
		out[i] = b.vals[(b.offset+i)*d+k]
	}
	return out
}

// A CoordBuilder accumulates coordinates into interleaved storage.
// Builders are single-writer and must not be shared between
// goroutines. After Finish the builder is consumed and further use
// panics.
type CoordBuilder struct {
	dim    int
	vals   []float64
	frozen bool
}

// NewCoordBuilder creates a coordinate builder producing an
// interleaved buffer of the given dimension. Panics if dim is not 2
// or 3.
func NewCoordBuilder(dim int) *CoordBuilder {
	if dim != 2 && dim != 3 {
		fmtPanic("coordinate dimension must be 2 or 3, got %d", dim)
	}
	return &CoordBuilder{dim: dim}
}

func (b *CoordBuilder) sanityCheck() {
	if b.frozen {
		textPanic("coordinate builder used after Finish")
	}
}

// Dim returns the dimension of the coordinates under construction.
func (b *CoordBuilder) Dim() int {
	return b.dim
}

// Len returns the number of coordinates appended so far.
func (b *CoordBuilder) Len() int {
	return len(b.vals) / b.dim
}

// Push appends a 2D coordinate. Panics if the builder dimension is 3.
func (b *CoordBuilder) Push(x, y float64) {
	b.sanityCheck()
	if b.dim != 2 {
		textPanic("Push on 3D coordinate builder, use PushZ")
	}
	b.vals = append(b.vals, x, y)
}

// PushZ appends a 3D coordinate. Panics if the builder dimension is 2.
func (b *CoordBuilder) PushZ(x, y, z float64) {
	b.sanityCheck()
	if b.dim != 3 {
		textPanic("PushZ on 2D coordinate builder, use Push")
	}
	b.vals = append(b.vals, x, y, z)
}

// PushCoord appends a coordinate, writing as many axes as the builder
// dimension requires.
func (b *CoordBuilder) PushCoord(c Coord) {
	b.sanityCheck()
	if b.dim == 3 {
		b.vals = append(b.vals, c.X, c.Y, c.Z)
	} else {
		b.vals = append(b.vals, c.X, c.Y)
	}
}

// AppendFlat bulk-loads interleaved values. Returns a ValidationError
// if len(vals) is not a multiple of the builder dimension.
func (b *CoordBuilder) AppendFlat(vals []float64) error {
	b.sanityCheck()
	if len(vals)%b.dim != 0 {
		return Invalidf("interleaved value count %d is not a multiple of dimension %d", len(vals), b.dim)
	}
	b.vals = append(b.vals, vals...)
	return nil
}

// Finish freezes the accumulated coordinates into an immutable buffer
// and consumes the builder.
func (b *CoordBuilder) Finish() CoordBuffer {
	b.sanityCheck()
	b.frozen = true
	return CoordBuffer{layout: Interleaved, dim: b.dim, vals: b.vals, n: len(b.vals) / b.dim}
}
