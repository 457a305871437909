// Copyright 2026 The geocol Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package geocol

import (
	"github.com/spatialbuf/geocol/buffer"
)

// A PointArray stores one point per row in a flat coordinate buffer.
type PointArray struct {
	dim      Dimension
	coords   buffer.CoordBuffer
	validity *buffer.Bitmap
	offset   int
	length   int
}

var _ Array = (*PointArray)(nil)

// NewPointArray creates a point array over a frozen coordinate buffer
// and an optional validity bitmap (nil means all rows valid). The
// array shares the buffers without copying.
func NewPointArray(coords buffer.CoordBuffer, validity *buffer.Bitmap) (*PointArray, error) {
	if err := checkValidity(validity, coords.Len()); err != nil {
		return nil, err
	}
	return &PointArray{
		dim:      Dimension(coords.Dim()),
		coords:   coords,
		validity: validity,
		length:   coords.Len(),
	}, nil
}

// Type returns Point.
func (a *PointArray) Type() GeomType {
	return Point
}

// Dimension returns the coordinate dimensionality of the array.
func (a *PointArray) Dimension() Dimension {
	return a.dim
}

// Len returns the row count.
func (a *PointArray) Len() int {
	return a.length
}

// IsValid reports whether row i is non-null.
func (a *PointArray) IsValid(i int) bool {
	boundsCheck(i, a.length)
	return validAt(a.validity, a.offset+i)
}

// NullCount returns the number of null rows.
func (a *PointArray) NullCount() int {
	return nullsIn(a.validity, a.offset, a.length)
}

// Get returns the coordinate of row i. The coordinate of a null row
// is unspecified; check IsValid first.
func (a *PointArray) Get(i int) buffer.Coord {
	boundsCheck(i, a.length)
	return a.coords.Get(a.offset + i)
}

// Geom returns a borrowed view of row i.
func (a *PointArray) Geom(i int) Geom {
	boundsCheck(i, a.length)
	ci := int32(a.offset + i)
	return Geom{
		typ:   Point,
		dim:   a.dim,
		cb:    a.coords,
		a:     ci,
		b:     ci + 1,
		valid: validAt(a.validity, a.offset+i),
	}
}

// Slice returns a zero-copy view of length rows starting at offset.
func (a *PointArray) Slice(offset, length int) Array {
	sliceCheck(offset, length, a.length)
	s := *a
	s.offset += offset
	s.length = length
	return &s
}

// Coords returns the coordinate buffer window backing the view.
func (a *PointArray) Coords() buffer.CoordBuffer {
	return a.coords.Slice(a.offset, a.length)
}

// Validity returns the validity bitmap window backing the view, or
// nil if all rows are valid.
func (a *PointArray) Validity() *buffer.Bitmap {
	return sliceValidity(a.validity, a.offset, a.length)
}

// A PointBuilder accumulates points into a PointArray.
type PointBuilder struct {
	coords   *buffer.CoordBuilder
	validity *buffer.BitmapBuilder
	state    builderState
}

// NewPointBuilder creates a point builder of the given dimension.
func NewPointBuilder(dim Dimension) *PointBuilder {
	checkDimension(dim)
	return &PointBuilder{
		coords:   buffer.NewCoordBuilder(int(dim)),
		validity: buffer.NewBitmapBuilder(),
	}
}

func (b *PointBuilder) sanityCheck() {
	if b.state == stateDone {
		textPanic("point builder used after Finish")
	}
}

// Len returns the number of rows appended so far.
func (b *PointBuilder) Len() int {
	return b.validity.Len()
}

// Push appends a 2D point. Panics if the builder dimension is XYZ.
func (b *PointBuilder) Push(x, y float64) {
	b.sanityCheck()
	b.coords.Push(x, y)
	b.validity.Append(true)
}

// PushZ appends a 3D point. Panics if the builder dimension is XY.
func (b *PointBuilder) PushZ(x, y, z float64) {
	b.sanityCheck()
	b.coords.PushZ(x, y, z)
	b.validity.Append(true)
}

// PushCoord appends a point from a coordinate value.
func (b *PointBuilder) PushCoord(c buffer.Coord) {
	b.sanityCheck()
	b.coords.PushCoord(c)
	b.validity.Append(true)
}

// PushNull appends a null row.
func (b *PointBuilder) PushNull() {
	b.sanityCheck()
	b.coords.PushCoord(buffer.Coord{})
	b.validity.Append(false)
}

// Finish freezes the accumulated rows into an immutable PointArray
// and consumes the builder.
func (b *PointBuilder) Finish() (*PointArray, error) {
	b.sanityCheck()
	b.state = stateDone
	coords := b.coords.Finish()
	return &PointArray{
		dim:      Dimension(coords.Dim()),
		coords:   coords,
		validity: b.validity.Finish(),
		length:   coords.Len(),
	}, nil
}

func (b *PointBuilder) appendGeom(g Geom) error {
	if g.Type() != Point {
		return buffer.Invalidf("cannot append %s geometry to Point builder", g.Type())
	}
	if g.Dimension() != Dimension(b.coords.Dim()) {
		return buffer.Invalidf("dimension mismatch: builder is %s, geometry is %s", Dimension(b.coords.Dim()), g.Dimension())
	}
	if !g.IsValid() {
		b.PushNull()
		return nil
	}
	b.PushCoord(g.Coord(0))
	return nil
}

func (b *PointBuilder) appendNull() {
	b.PushNull()
}

func (b *PointBuilder) finishArray() (Array, error) {
	return b.Finish()
}
