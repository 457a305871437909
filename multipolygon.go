// Copyright 2026 The geocol Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package geocol

import (
	"github.com/spatialbuf/geocol/buffer"
)

// A MultiPolygonArray stores one multipolygon per row across three
// offset levels: geometry to polygon, polygon to ring, and ring to
// coordinate.
type MultiPolygonArray struct {
	dim      Dimension
	coords   buffer.CoordBuffer
	rings    buffer.Offsets // ring to coordinate range
	polys    buffer.Offsets // polygon to ring range
	geoms    buffer.Offsets // geometry to polygon range
	validity *buffer.Bitmap
	offset   int
	length   int
}

var _ Array = (*MultiPolygonArray)(nil)

// NewMultiPolygonArray creates a multipolygon array over frozen
// buffers. The offsets buffers must be unsliced. The array shares the
// buffers without copying.
func NewMultiPolygonArray(coords buffer.CoordBuffer, ringOffsets, polyOffsets, geomOffsets buffer.Offsets, validity *buffer.Bitmap) (*MultiPolygonArray, error) {
	n := geomOffsets.Len()
	if int(geomOffsets.Start(n)) > polyOffsets.Len() {
		return nil, buffer.Invalidf("geometry offsets end at polygon %d, polygon offsets buffer has %d", geomOffsets.Start(n), polyOffsets.Len())
	}
	if int(polyOffsets.Start(polyOffsets.Len())) > ringOffsets.Len() {
		return nil, buffer.Invalidf("polygon offsets end at ring %d, ring offsets buffer has %d", polyOffsets.Start(polyOffsets.Len()), ringOffsets.Len())
	}
	if int(ringOffsets.Start(ringOffsets.Len())) > coords.Len() {
		return nil, buffer.Invalidf("ring offsets end at %d, coordinate buffer has %d", ringOffsets.Start(ringOffsets.Len()), coords.Len())
	}
	if err := checkValidity(validity, n); err != nil {
		return nil, err
	}
	return &MultiPolygonArray{
		dim:      Dimension(coords.Dim()),
		coords:   coords,
		rings:    ringOffsets,
		polys:    polyOffsets,
		geoms:    geomOffsets,
		validity: validity,
		length:   n,
	}, nil
}

// Type returns MultiPolygon.
func (a *MultiPolygonArray) Type() GeomType {
	return MultiPolygon
}

// Dimension returns the coordinate dimensionality of the array.
func (a *MultiPolygonArray) Dimension() Dimension {
	return a.dim
}

// Len returns the row count.
func (a *MultiPolygonArray) Len() int {
	return a.length
}

// IsValid reports whether row i is non-null.
func (a *MultiPolygonArray) IsValid(i int) bool {
	boundsCheck(i, a.length)
	return validAt(a.validity, a.offset+i)
}

// NullCount returns the number of null rows.
func (a *MultiPolygonArray) NullCount() int {
	return nullsIn(a.validity, a.offset, a.length)
}

// Geom returns a borrowed view of row i.
func (a *MultiPolygonArray) Geom(i int) Geom {
	boundsCheck(i, a.length)
	start, end := a.geoms.Range(a.offset + i)
	return Geom{
		typ:   MultiPolygon,
		dim:   a.dim,
		cb:    a.coords,
		a:     start,
		b:     end,
		lo:    a.rings.Values(),
		mid:   a.polys.Values(),
		valid: validAt(a.validity, a.offset+i),
	}
}

// Slice returns a zero-copy view of length rows starting at offset.
func (a *MultiPolygonArray) Slice(offset, length int) Array {
	sliceCheck(offset, length, a.length)
	s := *a
	s.offset += offset
	s.length = length
	return &s
}

// Coords returns the full coordinate buffer backing the array.
func (a *MultiPolygonArray) Coords() buffer.CoordBuffer {
	return a.coords
}

// RingOffsets returns the full ring offsets buffer backing the array.
func (a *MultiPolygonArray) RingOffsets() buffer.Offsets {
	return a.rings
}

// PolyOffsets returns the full polygon offsets buffer backing the
// array.
func (a *MultiPolygonArray) PolyOffsets() buffer.Offsets {
	return a.polys
}

// GeomOffsets returns the geometry offsets window backing the view.
func (a *MultiPolygonArray) GeomOffsets() buffer.Offsets {
	return a.geoms.Slice(a.offset, a.length)
}

// Validity returns the validity bitmap window backing the view, or
// nil if all rows are valid.
func (a *MultiPolygonArray) Validity() *buffer.Bitmap {
	return sliceValidity(a.validity, a.offset, a.length)
}

// A MultiPolygonBuilder accumulates multipolygons into a
// MultiPolygonArray. Rows, polygons and rings are each bracketed by
// their Begin and End calls.
type MultiPolygonBuilder struct {
	coords   *buffer.CoordBuilder
	rings    *buffer.OffsetsBuilder
	polys    *buffer.OffsetsBuilder
	geoms    *buffer.OffsetsBuilder
	validity *buffer.BitmapBuilder
	opts     builderOptions
	state    builderState
	geomMark int
	polyMark int
	ringMark int
	err      error
}

// NewMultiPolygonBuilder creates a multipolygon builder of the given
// dimension.
func NewMultiPolygonBuilder(dim Dimension, opts ...BuilderOption) *MultiPolygonBuilder {
	checkDimension(dim)
	return &MultiPolygonBuilder{
		coords:   buffer.NewCoordBuilder(int(dim)),
		rings:    buffer.NewOffsetsBuilder(),
		polys:    buffer.NewOffsetsBuilder(),
		geoms:    buffer.NewOffsetsBuilder(),
		validity: buffer.NewBitmapBuilder(),
		opts:     applyOptions(opts),
	}
}

func (b *MultiPolygonBuilder) requireState(s builderState, call string) {
	if b.state == stateDone {
		textPanic("multipolygon builder used after Finish")
	}
	if b.state != s {
		fmtPanic("%s called out of order", call)
	}
}

// Len returns the number of rows appended so far.
func (b *MultiPolygonBuilder) Len() int {
	return b.geoms.Len()
}

// BeginMultiPolygon starts a new multipolygon row.
func (b *MultiPolygonBuilder) BeginMultiPolygon() {
	b.requireState(stateRow, "BeginMultiPolygon")
	b.state = stateGeom
	b.geomMark = b.polys.Len()
}

// BeginPolygon starts a new polygon within the open row.
func (b *MultiPolygonBuilder) BeginPolygon() {
	b.requireState(stateGeom, "BeginPolygon")
	b.state = statePart
	b.polyMark = b.rings.Len()
}

// BeginRing starts a new ring within the open polygon. The first ring
// is the exterior.
func (b *MultiPolygonBuilder) BeginRing() {
	b.requireState(statePart, "BeginRing")
	b.state = stateRing
	b.ringMark = b.coords.Len()
}

// Push appends a 2D coordinate to the open ring.
func (b *MultiPolygonBuilder) Push(x, y float64) {
	b.requireState(stateRing, "Push")
	b.coords.Push(x, y)
}

// PushZ appends a 3D coordinate to the open ring.
func (b *MultiPolygonBuilder) PushZ(x, y, z float64) {
	b.requireState(stateRing, "PushZ")
	b.coords.PushZ(x, y, z)
}

// PushCoord appends a coordinate to the open ring.
func (b *MultiPolygonBuilder) PushCoord(c buffer.Coord) {
	b.requireState(stateRing, "PushCoord")
	b.coords.PushCoord(c)
}

// EndRing closes the open ring.
func (b *MultiPolygonBuilder) EndRing() {
	b.requireState(stateRing, "EndRing")
	b.state = statePart
	b.rings.PushLength(b.coords.Len() - b.ringMark)
}

// EndPolygon closes the open polygon. A polygon of a valid row must
// have at least one ring; the violation is reported at Finish.
func (b *MultiPolygonBuilder) EndPolygon() {
	b.requireState(statePart, "EndPolygon")
	b.state = stateGeom
	nrings := b.rings.Len() - b.polyMark
	b.polys.PushLength(nrings)
	if nrings == 0 && b.err == nil {
		b.err = buffer.Invalidf("polygon %d of multipolygon row %d has no rings", b.polys.Len()-1, b.geoms.Len())
	}
}

// EndMultiPolygon closes the open row. A row ended with valid=false
// is recorded as null.
func (b *MultiPolygonBuilder) EndMultiPolygon(valid bool) {
	b.requireState(stateGeom, "EndMultiPolygon")
	b.state = stateRow
	b.geoms.PushLength(b.polys.Len() - b.geomMark)
	b.validity.Append(valid)
}

// PushNull appends an empty null row.
func (b *MultiPolygonBuilder) PushNull() {
	b.requireState(stateRow, "PushNull")
	b.geoms.PushLength(0)
	b.validity.Append(false)
}

// Finish freezes the accumulated rows into an immutable
// MultiPolygonArray, validating offsets and any opt-in ring
// invariants, and consumes the builder. Finish fails if a row,
// polygon or ring is still open.
func (b *MultiPolygonBuilder) Finish() (*MultiPolygonArray, error) {
	if b.state == stateDone {
		textPanic("multipolygon builder used after Finish")
	}
	if b.state != stateRow {
		return nil, buffer.Invalidf("unterminated multipolygon: missing End call before Finish")
	}
	b.state = stateDone
	if b.err != nil {
		return nil, b.err
	}
	rings, err := b.rings.Finish()
	if err != nil {
		return nil, err
	}
	polys, err := b.polys.Finish()
	if err != nil {
		return nil, err
	}
	geoms, err := b.geoms.Finish()
	if err != nil {
		return nil, err
	}
	coords := b.coords.Finish()
	if b.opts.validateRings {
		if err := validateClosedRings(coords, rings); err != nil {
			return nil, err
		}
	}
	return &MultiPolygonArray{
		dim:      Dimension(coords.Dim()),
		coords:   coords,
		rings:    rings,
		polys:    polys,
		geoms:    geoms,
		validity: b.validity.Finish(),
		length:   geoms.Len(),
	}, nil
}

func (b *MultiPolygonBuilder) appendGeom(g Geom) error {
	if g.Type() != MultiPolygon {
		return buffer.Invalidf("cannot append %s geometry to MultiPolygon builder", g.Type())
	}
	if g.Dimension() != Dimension(b.coords.Dim()) {
		return buffer.Invalidf("dimension mismatch: builder is %s, geometry is %s", Dimension(b.coords.Dim()), g.Dimension())
	}
	if !g.IsValid() {
		b.PushNull()
		return nil
	}
	b.BeginMultiPolygon()
	for j := 0; j < g.NumParts(); j++ {
		poly := g.Part(j)
		b.BeginPolygon()
		for r := 0; r < poly.NumRings(); r++ {
			b.BeginRing()
			ring := poly.Ring(r)
			seq := ring.Coords()
			for c, ok := seq.Next(); ok; c, ok = seq.Next() {
				b.PushCoord(c)
			}
			b.EndRing()
		}
		b.EndPolygon()
	}
	b.EndMultiPolygon(true)
	return nil
}

func (b *MultiPolygonBuilder) appendNull() {
	b.PushNull()
}

func (b *MultiPolygonBuilder) finishArray() (Array, error) {
	return b.Finish()
}
