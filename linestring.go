// Copyright 2026 The geocol Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package geocol

import (
	"github.com/spatialbuf/geocol/buffer"
)

// A LineStringArray stores one linestring per row: a geometry offsets
// buffer delimits each row's coordinate range in a shared flat
// coordinate buffer.
type LineStringArray struct {
	dim      Dimension
	coords   buffer.CoordBuffer
	geoms    buffer.Offsets // geometry to coordinate range
	validity *buffer.Bitmap
	offset   int
	length   int
}

var _ Array = (*LineStringArray)(nil)

// NewLineStringArray creates a linestring array over frozen buffers.
// The array shares the buffers without copying.
func NewLineStringArray(coords buffer.CoordBuffer, geomOffsets buffer.Offsets, validity *buffer.Bitmap) (*LineStringArray, error) {
	n := geomOffsets.Len()
	if int(geomOffsets.Start(n)) > coords.Len() {
		return nil, buffer.Invalidf("geometry offsets end at %d, coordinate buffer has %d", geomOffsets.Start(n), coords.Len())
	}
	if err := checkValidity(validity, n); err != nil {
		return nil, err
	}
	return &LineStringArray{
		dim:      Dimension(coords.Dim()),
		coords:   coords,
		geoms:    geomOffsets,
		validity: validity,
		length:   n,
	}, nil
}

// Type returns LineString.
func (a *LineStringArray) Type() GeomType {
	return LineString
}

// Dimension returns the coordinate dimensionality of the array.
func (a *LineStringArray) Dimension() Dimension {
	return a.dim
}

// Len returns the row count.
func (a *LineStringArray) Len() int {
	return a.length
}

// IsValid reports whether row i is non-null.
func (a *LineStringArray) IsValid(i int) bool {
	boundsCheck(i, a.length)
	return validAt(a.validity, a.offset+i)
}

// NullCount returns the number of null rows.
func (a *LineStringArray) NullCount() int {
	return nullsIn(a.validity, a.offset, a.length)
}

// Geom returns a borrowed view of row i.
func (a *LineStringArray) Geom(i int) Geom {
	boundsCheck(i, a.length)
	start, end := a.geoms.Range(a.offset + i)
	return Geom{
		typ:   LineString,
		dim:   a.dim,
		cb:    a.coords,
		a:     start,
		b:     end,
		valid: validAt(a.validity, a.offset+i),
	}
}

// Slice returns a zero-copy view of length rows starting at offset.
func (a *LineStringArray) Slice(offset, length int) Array {
	sliceCheck(offset, length, a.length)
	s := *a
	s.offset += offset
	s.length = length
	return &s
}

// Coords returns the full coordinate buffer backing the array. Rows
// address it through GeomOffsets.
func (a *LineStringArray) Coords() buffer.CoordBuffer {
	return a.coords
}

// GeomOffsets returns the geometry offsets window backing the view.
func (a *LineStringArray) GeomOffsets() buffer.Offsets {
	return a.geoms.Slice(a.offset, a.length)
}

// Validity returns the validity bitmap window backing the view, or
// nil if all rows are valid.
func (a *LineStringArray) Validity() *buffer.Bitmap {
	return sliceValidity(a.validity, a.offset, a.length)
}

// A LineStringBuilder accumulates linestrings into a
// LineStringArray. Each row is bracketed by BeginLine and EndLine;
// coordinates pushed between them belong to the row.
type LineStringBuilder struct {
	coords   *buffer.CoordBuilder
	geoms    *buffer.OffsetsBuilder
	validity *buffer.BitmapBuilder
	state    builderState
	mark     int32 // coordinate count at BeginLine
}

// NewLineStringBuilder creates a linestring builder of the given
// dimension.
func NewLineStringBuilder(dim Dimension) *LineStringBuilder {
	checkDimension(dim)
	return &LineStringBuilder{
		coords:   buffer.NewCoordBuilder(int(dim)),
		geoms:    buffer.NewOffsetsBuilder(),
		validity: buffer.NewBitmapBuilder(),
	}
}

func (b *LineStringBuilder) requireState(s builderState, call string) {
	if b.state == stateDone {
		textPanic("linestring builder used after Finish")
	}
	if b.state != s {
		fmtPanic("%s called out of order", call)
	}
}

// Len returns the number of rows appended so far.
func (b *LineStringBuilder) Len() int {
	return b.geoms.Len()
}

// BeginLine starts a new linestring row.
func (b *LineStringBuilder) BeginLine() {
	b.requireState(stateRow, "BeginLine")
	b.state = stateGeom
	b.mark = int32(b.coords.Len())
}

// Push appends a 2D coordinate to the open row. Panics if no row is
// open or the builder dimension is XYZ.
func (b *LineStringBuilder) Push(x, y float64) {
	b.requireState(stateGeom, "Push")
	b.coords.Push(x, y)
}

// PushZ appends a 3D coordinate to the open row. Panics if no row is
// open or the builder dimension is XY.
func (b *LineStringBuilder) PushZ(x, y, z float64) {
	b.requireState(stateGeom, "PushZ")
	b.coords.PushZ(x, y, z)
}

// PushCoord appends a coordinate to the open row.
func (b *LineStringBuilder) PushCoord(c buffer.Coord) {
	b.requireState(stateGeom, "PushCoord")
	b.coords.PushCoord(c)
}

// EndLine closes the open row, appending its coordinate range to the
// geometry offsets. A row ended with valid=false is recorded as null.
func (b *LineStringBuilder) EndLine(valid bool) {
	b.requireState(stateGeom, "EndLine")
	b.state = stateRow
	b.geoms.PushLength(b.coords.Len() - int(b.mark))
	b.validity.Append(valid)
}

// PushNull appends an empty null row.
func (b *LineStringBuilder) PushNull() {
	b.requireState(stateRow, "PushNull")
	b.geoms.PushLength(0)
	b.validity.Append(false)
}

// Finish freezes the accumulated rows into an immutable
// LineStringArray, validating the offsets invariants, and consumes
// the builder. Finish fails if a row is still open.
func (b *LineStringBuilder) Finish() (*LineStringArray, error) {
	if b.state == stateDone {
		textPanic("linestring builder used after Finish")
	}
	if b.state != stateRow {
		return nil, buffer.Invalidf("unterminated linestring: missing EndLine before Finish")
	}
	b.state = stateDone
	geoms, err := b.geoms.Finish()
	if err != nil {
		return nil, err
	}
	coords := b.coords.Finish()
	return &LineStringArray{
		dim:      Dimension(coords.Dim()),
		coords:   coords,
		geoms:    geoms,
		validity: b.validity.Finish(),
		length:   geoms.Len(),
	}, nil
}

func (b *LineStringBuilder) appendGeom(g Geom) error {
	if g.Type() != LineString {
		return buffer.Invalidf("cannot append %s geometry to LineString builder", g.Type())
	}
	if g.Dimension() != Dimension(b.coords.Dim()) {
		return buffer.Invalidf("dimension mismatch: builder is %s, geometry is %s", Dimension(b.coords.Dim()), g.Dimension())
	}
	if !g.IsValid() {
		b.PushNull()
		return nil
	}
	b.BeginLine()
	seq := g.Coords()
	for c, ok := seq.Next(); ok; c, ok = seq.Next() {
		b.PushCoord(c)
	}
	b.EndLine(true)
	return nil
}

func (b *LineStringBuilder) appendNull() {
	b.PushNull()
}

func (b *LineStringBuilder) finishArray() (Array, error) {
	return b.Finish()
}
