// Copyright 2026 The geocol Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package geocol

import (
	"github.com/spatialbuf/geocol/buffer"
)

// A MultiLineStringArray stores one multilinestring per row across
// two offset levels: a geometry offsets buffer delimits each row's
// line range, and a part offsets buffer delimits each line's
// coordinate range.
type MultiLineStringArray struct {
	dim      Dimension
	coords   buffer.CoordBuffer
	parts    buffer.Offsets // line to coordinate range
	geoms    buffer.Offsets // geometry to line range
	validity *buffer.Bitmap
	offset   int
	length   int
}

var _ Array = (*MultiLineStringArray)(nil)

// NewMultiLineStringArray creates a multilinestring array over frozen
// buffers. The offsets buffers must be unsliced. The array shares the
// buffers without copying.
func NewMultiLineStringArray(coords buffer.CoordBuffer, partOffsets, geomOffsets buffer.Offsets, validity *buffer.Bitmap) (*MultiLineStringArray, error) {
	n := geomOffsets.Len()
	if int(geomOffsets.Start(n)) > partOffsets.Len() {
		return nil, buffer.Invalidf("geometry offsets end at line %d, part offsets buffer has %d", geomOffsets.Start(n), partOffsets.Len())
	}
	if int(partOffsets.Start(partOffsets.Len())) > coords.Len() {
		return nil, buffer.Invalidf("part offsets end at %d, coordinate buffer has %d", partOffsets.Start(partOffsets.Len()), coords.Len())
	}
	if err := checkValidity(validity, n); err != nil {
		return nil, err
	}
	return &MultiLineStringArray{
		dim:      Dimension(coords.Dim()),
		coords:   coords,
		parts:    partOffsets,
		geoms:    geomOffsets,
		validity: validity,
		length:   n,
	}, nil
}

// Type returns MultiLineString.
func (a *MultiLineStringArray) Type() GeomType {
	return MultiLineString
}

// Dimension returns the coordinate dimensionality of the array.
func (a *MultiLineStringArray) Dimension() Dimension {
	return a.dim
}

// Len returns the row count.
func (a *MultiLineStringArray) Len() int {
	return a.length
}

// IsValid reports whether row i is non-null.
func (a *MultiLineStringArray) IsValid(i int) bool {
	boundsCheck(i, a.length)
	return validAt(a.validity, a.offset+i)
}

// NullCount returns the number of null rows.
func (a *MultiLineStringArray) NullCount() int {
	return nullsIn(a.validity, a.offset, a.length)
}

// Geom returns a borrowed view of row i.
func (a *MultiLineStringArray) Geom(i int) Geom {
	boundsCheck(i, a.length)
	start, end := a.geoms.Range(a.offset + i)
	return Geom{
		typ:   MultiLineString,
		dim:   a.dim,
		cb:    a.coords,
		a:     start,
		b:     end,
		lo:    a.parts.Values(),
		valid: validAt(a.validity, a.offset+i),
	}
}

// Slice returns a zero-copy view of length rows starting at offset.
func (a *MultiLineStringArray) Slice(offset, length int) Array {
	sliceCheck(offset, length, a.length)
	s := *a
	s.offset += offset
	s.length = length
	return &s
}

// Coords returns the full coordinate buffer backing the array.
func (a *MultiLineStringArray) Coords() buffer.CoordBuffer {
	return a.coords
}

// PartOffsets returns the full part offsets buffer backing the array.
func (a *MultiLineStringArray) PartOffsets() buffer.Offsets {
	return a.parts
}

// GeomOffsets returns the geometry offsets window backing the view.
func (a *MultiLineStringArray) GeomOffsets() buffer.Offsets {
	return a.geoms.Slice(a.offset, a.length)
}

// Validity returns the validity bitmap window backing the view, or
// nil if all rows are valid.
func (a *MultiLineStringArray) Validity() *buffer.Bitmap {
	return sliceValidity(a.validity, a.offset, a.length)
}

// A MultiLineStringBuilder accumulates multilinestrings into a
// MultiLineStringArray. Each row is bracketed by BeginMultiLine and
// EndMultiLine; each line within a row by BeginLine and EndLine.
type MultiLineStringBuilder struct {
	coords   *buffer.CoordBuilder
	parts    *buffer.OffsetsBuilder
	geoms    *buffer.OffsetsBuilder
	validity *buffer.BitmapBuilder
	state    builderState
	geomMark int
	partMark int
}

// NewMultiLineStringBuilder creates a multilinestring builder of the
// given dimension.
func NewMultiLineStringBuilder(dim Dimension) *MultiLineStringBuilder {
	checkDimension(dim)
	return &MultiLineStringBuilder{
		coords:   buffer.NewCoordBuilder(int(dim)),
		parts:    buffer.NewOffsetsBuilder(),
		geoms:    buffer.NewOffsetsBuilder(),
		validity: buffer.NewBitmapBuilder(),
	}
}

func (b *MultiLineStringBuilder) requireState(s builderState, call string) {
	if b.state == stateDone {
		textPanic("multilinestring builder used after Finish")
	}
	if b.state != s {
		fmtPanic("%s called out of order", call)
	}
}

// Len returns the number of rows appended so far.
func (b *MultiLineStringBuilder) Len() int {
	return b.geoms.Len()
}

// BeginMultiLine starts a new multilinestring row.
func (b *MultiLineStringBuilder) BeginMultiLine() {
	b.requireState(stateRow, "BeginMultiLine")
	b.state = stateGeom
	b.geomMark = b.parts.Len()
}

// BeginLine starts a new line within the open row.
func (b *MultiLineStringBuilder) BeginLine() {
	b.requireState(stateGeom, "BeginLine")
	b.state = statePart
	b.partMark = b.coords.Len()
}

// Push appends a 2D coordinate to the open line.
func (b *MultiLineStringBuilder) Push(x, y float64) {
	b.requireState(statePart, "Push")
	b.coords.Push(x, y)
}

// PushZ appends a 3D coordinate to the open line.
func (b *MultiLineStringBuilder) PushZ(x, y, z float64) {
	b.requireState(statePart, "PushZ")
	b.coords.PushZ(x, y, z)
}

// PushCoord appends a coordinate to the open line.
func (b *MultiLineStringBuilder) PushCoord(c buffer.Coord) {
	b.requireState(statePart, "PushCoord")
	b.coords.PushCoord(c)
}

// EndLine closes the open line, appending its coordinate range to the
// part offsets.
func (b *MultiLineStringBuilder) EndLine() {
	b.requireState(statePart, "EndLine")
	b.state = stateGeom
	b.parts.PushLength(b.coords.Len() - b.partMark)
}

// EndMultiLine closes the open row, appending its line range to the
// geometry offsets. A row ended with valid=false is recorded as null.
func (b *MultiLineStringBuilder) EndMultiLine(valid bool) {
	b.requireState(stateGeom, "EndMultiLine")
	b.state = stateRow
	b.geoms.PushLength(b.parts.Len() - b.geomMark)
	b.validity.Append(valid)
}

// PushNull appends an empty null row.
func (b *MultiLineStringBuilder) PushNull() {
	b.requireState(stateRow, "PushNull")
	b.geoms.PushLength(0)
	b.validity.Append(false)
}

// Finish freezes the accumulated rows into an immutable
// MultiLineStringArray and consumes the builder. Finish fails if a
// row or line is still open.
func (b *MultiLineStringBuilder) Finish() (*MultiLineStringArray, error) {
	if b.state == stateDone {
		textPanic("multilinestring builder used after Finish")
	}
	if b.state != stateRow {
		return nil, buffer.Invalidf("unterminated multilinestring: missing EndLine/EndMultiLine before Finish")
	}
	b.state = stateDone
	parts, err := b.parts.Finish()
	if err != nil {
		return nil, err
	}
	geoms, err := b.geoms.Finish()
	if err != nil {
		return nil, err
	}
	coords := b.coords.Finish()
	return &MultiLineStringArray{
		dim:      Dimension(coords.Dim()),
		coords:   coords,
		parts:    parts,
		geoms:    geoms,
		validity: b.validity.Finish(),
		length:   geoms.Len(),
	}, nil
}

func (b *MultiLineStringBuilder) appendGeom(g Geom) error {
	if g.Type() != MultiLineString {
		return buffer.Invalidf("cannot append %s geometry to MultiLineString builder", g.Type())
	}
	if g.Dimension() != Dimension(b.coords.Dim()) {
		return buffer.Invalidf("dimension mismatch: builder is %s, geometry is %s", Dimension(b.coords.Dim()), g.Dimension())
	}
	if !g.IsValid() {
		b.PushNull()
		return nil
	}
	b.BeginMultiLine()
	for j := 0; j < g.NumParts(); j++ {
		b.BeginLine()
		line := g.Part(j)
		seq := line.Coords()
		for c, ok := seq.Next(); ok; c, ok = seq.Next() {
			b.PushCoord(c)
		}
		b.EndLine()
	}
	b.EndMultiLine(true)
	return nil
}

func (b *MultiLineStringBuilder) appendNull() {
	b.PushNull()
}

func (b *MultiLineStringBuilder) finishArray() (Array, error) {
	return b.Finish()
}
