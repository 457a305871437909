// Copyright 2026 The geocol Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package geocol

import (
	"github.com/spatialbuf/geocol/buffer"
)

// A MultiPointArray stores one multipoint per row: a geometry offsets
// buffer delimits each row's point range in a shared flat coordinate
// buffer.
type MultiPointArray struct {
	dim      Dimension
	coords   buffer.CoordBuffer
	geoms    buffer.Offsets // geometry to coordinate range
	validity *buffer.Bitmap
	offset   int
	length   int
}

var _ Array = (*MultiPointArray)(nil)

// NewMultiPointArray creates a multipoint array over frozen buffers.
// The array shares the buffers without copying.
func NewMultiPointArray(coords buffer.CoordBuffer, geomOffsets buffer.Offsets, validity *buffer.Bitmap) (*MultiPointArray, error) {
	n := geomOffsets.Len()
	if int(geomOffsets.Start(n)) > coords.Len() {
		return nil, buffer.Invalidf("geometry offsets end at %d, coordinate buffer has %d", geomOffsets.Start(n), coords.Len())
	}
	if err := checkValidity(validity, n); err != nil {
		return nil, err
	}
	return &MultiPointArray{
		dim:      Dimension(coords.Dim()),
		coords:   coords,
		geoms:    geomOffsets,
		validity: validity,
		length:   n,
	}, nil
}

// Type returns MultiPoint.
func (a *MultiPointArray) Type() GeomType {
	return MultiPoint
}

// Dimension returns the coordinate dimensionality of the array.
func (a *MultiPointArray) Dimension() Dimension {
	return a.dim
}

// Len returns the row count.
func (a *MultiPointArray) Len() int {
	return a.length
}

// IsValid reports whether row i is non-null.
func (a *MultiPointArray) IsValid(i int) bool {
	boundsCheck(i, a.length)
	return validAt(a.validity, a.offset+i)
}

// NullCount returns the number of null rows.
func (a *MultiPointArray) NullCount() int {
	return nullsIn(a.validity, a.offset, a.length)
}

// Geom returns a borrowed view of row i.
func (a *MultiPointArray) Geom(i int) Geom {
	boundsCheck(i, a.length)
	start, end := a.geoms.Range(a.offset + i)
	return Geom{
		typ:   MultiPoint,
		dim:   a.dim,
		cb:    a.coords,
		a:     start,
		b:     end,
		valid: validAt(a.validity, a.offset+i),
	}
}

// Slice returns a zero-copy view of length rows starting at offset.
func (a *MultiPointArray) Slice(offset, length int) Array {
	sliceCheck(offset, length, a.length)
	s := *a
	s.offset += offset
	s.length = length
	return &s
}

// Coords returns the full coordinate buffer backing the array.
func (a *MultiPointArray) Coords() buffer.CoordBuffer {
	return a.coords
}

// GeomOffsets returns the geometry offsets window backing the view.
func (a *MultiPointArray) GeomOffsets() buffer.Offsets {
	return a.geoms.Slice(a.offset, a.length)
}

// Validity returns the validity bitmap window backing the view, or
// nil if all rows are valid.
func (a *MultiPointArray) Validity() *buffer.Bitmap {
	return sliceValidity(a.validity, a.offset, a.length)
}

// A MultiPointBuilder accumulates multipoints into a
// MultiPointArray.
type MultiPointBuilder struct {
	coords   *buffer.CoordBuilder
	geoms    *buffer.OffsetsBuilder
	validity *buffer.BitmapBuilder
	state    builderState
	mark     int
}

// NewMultiPointBuilder creates a multipoint builder of the given
// dimension.
func NewMultiPointBuilder(dim Dimension) *MultiPointBuilder {
	checkDimension(dim)
	return &MultiPointBuilder{
		coords:   buffer.NewCoordBuilder(int(dim)),
		geoms:    buffer.NewOffsetsBuilder(),
		validity: buffer.NewBitmapBuilder(),
	}
}

func (b *MultiPointBuilder) requireState(s builderState, call string) {
	if b.state == stateDone {
		textPanic("multipoint builder used after Finish")
	}
	if b.state != s {
		fmtPanic("%s called out of order", call)
	}
}

// Len returns the number of rows appended so far.
func (b *MultiPointBuilder) Len() int {
	return b.geoms.Len()
}

// BeginMultiPoint starts a new multipoint row.
func (b *MultiPointBuilder) BeginMultiPoint() {
	b.requireState(stateRow, "BeginMultiPoint")
	b.state = stateGeom
	b.mark = b.coords.Len()
}

// Push appends a 2D point to the open row.
func (b *MultiPointBuilder) Push(x, y float64) {
	b.requireState(stateGeom, "Push")
	b.coords.Push(x, y)
}

// PushZ appends a 3D point to the open row.
func (b *MultiPointBuilder) PushZ(x, y, z float64) {
	b.requireState(stateGeom, "PushZ")
	b.coords.PushZ(x, y, z)
}

// PushCoord appends a point to the open row.
func (b *MultiPointBuilder) PushCoord(c buffer.Coord) {
	b.requireState(stateGeom, "PushCoord")
	b.coords.PushCoord(c)
}

// EndMultiPoint closes the open row. A row ended with valid=false is
// recorded as null.
func (b *MultiPointBuilder) EndMultiPoint(valid bool) {
	b.requireState(stateGeom, "EndMultiPoint")
	b.state = stateRow
	b.geoms.PushLength(b.coords.Len() - b.mark)
	b.validity.Append(valid)
}

// PushNull appends an empty null row.
func (b *MultiPointBuilder) PushNull() {
	b.requireState(stateRow, "PushNull")
	b.geoms.PushLength(0)
	b.validity.Append(false)
}

// Finish freezes the accumulated rows into an immutable
// MultiPointArray and consumes the builder. Finish fails if a row is
// still open.
func (b *MultiPointBuilder) Finish() (*MultiPointArray, error) {
	if b.state == stateDone {
		textPanic("multipoint builder used after Finish")
	}
	if b.state != stateRow {
		return nil, buffer.Invalidf("unterminated multipoint: missing EndMultiPoint before Finish")
	}
	b.state = stateDone
	geoms, err := b.geoms.Finish()
	if err != nil {
		return nil, err
	}
	coords := b.coords.Finish()
	return &MultiPointArray{
		dim:      Dimension(coords.Dim()),
		coords:   coords,
		geoms:    geoms,
		validity: b.validity.Finish(),
		length:   geoms.Len(),
	}, nil
}

func (b *MultiPointBuilder) appendGeom(g Geom) error {
	if g.Type() != MultiPoint {
		return buffer.Invalidf("cannot append %s geometry to MultiPoint builder", g.Type())
	}
	if g.Dimension() != Dimension(b.coords.Dim()) {
		return buffer.Invalidf("dimension mismatch: builder is %s, geometry is %s", Dimension(b.coords.Dim()), g.Dimension())
	}
	if !g.IsValid() {
		b.PushNull()
		return nil
	}
	b.BeginMultiPoint()
	seq := g.Coords()
	for c, ok := seq.Next(); ok; c, ok = seq.Next() {
		b.PushCoord(c)
	}
	b.EndMultiPoint(true)
	return nil
}

func (b *MultiPointBuilder) appendNull() {
	b.PushNull()
}

func (b *MultiPointBuilder) finishArray() (Array, error) {
	return b.Finish()
}
