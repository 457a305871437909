// Copyright 2026 The geocol Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package geocol

import (
	"github.com/spatialbuf/geocol/buffer"
)

// A PolygonArray stores one polygon per row across two offset levels:
// a geometry offsets buffer delimits each row's ring range, and a
// ring offsets buffer delimits each ring's coordinate range. The
// first ring of a polygon is its exterior.
type PolygonArray struct {
	dim      Dimension
	coords   buffer.CoordBuffer
	rings    buffer.Offsets // ring to coordinate range
	geoms    buffer.Offsets // geometry to ring range
	validity *buffer.Bitmap
	offset   int
	length   int
}

var _ Array = (*PolygonArray)(nil)

// NewPolygonArray creates a polygon array over frozen buffers. The
// offsets buffers must be unsliced: ring indices in geomOffsets and
// coordinate indices in ringOffsets are absolute. The array shares
// the buffers without copying.
func NewPolygonArray(coords buffer.CoordBuffer, ringOffsets, geomOffsets buffer.Offsets, validity *buffer.Bitmap) (*PolygonArray, error) {
	n := geomOffsets.Len()
	if int(geomOffsets.Start(n)) > ringOffsets.Len() {
		return nil, buffer.Invalidf("geometry offsets end at ring %d, ring offsets buffer has %d", geomOffsets.Start(n), ringOffsets.Len())
	}
	if int(ringOffsets.Start(ringOffsets.Len())) > coords.Len() {
		return nil, buffer.Invalidf("ring offsets end at %d, coordinate buffer has %d", ringOffsets.Start(ringOffsets.Len()), coords.Len())
	}
	if err := checkValidity(validity, n); err != nil {
		return nil, err
	}
	return &PolygonArray{
		dim:      Dimension(coords.Dim()),
		coords:   coords,
		rings:    ringOffsets,
		geoms:    geomOffsets,
		validity: validity,
		length:   n,
	}, nil
}

// Type returns Polygon.
func (a *PolygonArray) Type() GeomType {
	return Polygon
}

// Dimension returns the coordinate dimensionality of the array.
func (a *PolygonArray) Dimension() Dimension {
	return a.dim
}

// Len returns the row count.
func (a *PolygonArray) Len() int {
	return a.length
}

// IsValid reports whether row i is non-null.
func (a *PolygonArray) IsValid(i int) bool {
	boundsCheck(i, a.length)
	return validAt(a.validity, a.offset+i)
}

// NullCount returns the number of null rows.
func (a *PolygonArray) NullCount() int {
	return nullsIn(a.validity, a.offset, a.length)
}

// Geom returns a borrowed view of row i.
func (a *PolygonArray) Geom(i int) Geom {
	boundsCheck(i, a.length)
	start, end := a.geoms.Range(a.offset + i)
	return Geom{
		typ:   Polygon,
		dim:   a.dim,
		cb:    a.coords,
		a:     start,
		b:     end,
		lo:    a.rings.Values(),
		valid: validAt(a.validity, a.offset+i),
	}
}

// Slice returns a zero-copy view of length rows starting at offset.
func (a *PolygonArray) Slice(offset, length int) Array {
	sliceCheck(offset, length, a.length)
	s := *a
	s.offset += offset
	s.length = length
	return &s
}

// Coords returns the full coordinate buffer backing the array.
func (a *PolygonArray) Coords() buffer.CoordBuffer {
	return a.coords
}

// RingOffsets returns the full ring offsets buffer backing the array.
func (a *PolygonArray) RingOffsets() buffer.Offsets {
	return a.rings
}

// GeomOffsets returns the geometry offsets window backing the view.
func (a *PolygonArray) GeomOffsets() buffer.Offsets {
	return a.geoms.Slice(a.offset, a.length)
}

// Validity returns the validity bitmap window backing the view, or
// nil if all rows are valid.
func (a *PolygonArray) Validity() *buffer.Bitmap {
	return sliceValidity(a.validity, a.offset, a.length)
}

// A PolygonBuilder accumulates polygons into a PolygonArray. Each row
// is bracketed by BeginPolygon and EndPolygon; each ring within a row
// is bracketed by BeginRing and EndRing.
type PolygonBuilder struct {
	coords   *buffer.CoordBuilder
	rings    *buffer.OffsetsBuilder
	geoms    *buffer.OffsetsBuilder
	validity *buffer.BitmapBuilder
	opts     builderOptions
	state    builderState
	geomMark int // ring count at BeginPolygon
	ringMark int // coordinate count at BeginRing
	err      error
}

// NewPolygonBuilder creates a polygon builder of the given dimension.
func NewPolygonBuilder(dim Dimension, opts ...BuilderOption) *PolygonBuilder {
	checkDimension(dim)
	return &PolygonBuilder{
		coords:   buffer.NewCoordBuilder(int(dim)),
		rings:    buffer.NewOffsetsBuilder(),
		geoms:    buffer.NewOffsetsBuilder(),
		validity: buffer.NewBitmapBuilder(),
		opts:     applyOptions(opts),
	}
}

func (b *PolygonBuilder) requireState(s builderState, call string) {
	if b.state == stateDone {
		textPanic("polygon builder used after Finish")
	}
	if b.state != s {
		fmtPanic("%s called out of order", call)
	}
}

// Len returns the number of rows appended so far.
func (b *PolygonBuilder) Len() int {
	return b.geoms.Len()
}

// BeginPolygon starts a new polygon row.
func (b *PolygonBuilder) BeginPolygon() {
	b.requireState(stateRow, "BeginPolygon")
	b.state = stateGeom
	b.geomMark = b.rings.Len()
}

// BeginRing starts a new ring within the open polygon. The first ring
// is the exterior.
func (b *PolygonBuilder) BeginRing() {
	b.requireState(stateGeom, "BeginRing")
	b.state = stateRing
	b.ringMark = b.coords.Len()
}

// Push appends a 2D coordinate to the open ring. Panics if no ring is
// open or the builder dimension is XYZ.
func (b *PolygonBuilder) Push(x, y float64) {
	b.requireState(stateRing, "Push")
	b.coords.Push(x, y)
}

// PushZ appends a 3D coordinate to the open ring. Panics if no ring
// is open or the builder dimension is XY.
func (b *PolygonBuilder) PushZ(x, y, z float64) {
	b.requireState(stateRing, "PushZ")
	b.coords.PushZ(x, y, z)
}

// PushCoord appends a coordinate to the open ring.
func (b *PolygonBuilder) PushCoord(c buffer.Coord) {
	b.requireState(stateRing, "PushCoord")
	b.coords.PushCoord(c)
}

// EndRing closes the open ring, appending its coordinate range to the
// ring offsets.
func (b *PolygonBuilder) EndRing() {
	b.requireState(stateRing, "EndRing")
	b.state = stateGeom
	b.rings.PushLength(b.coords.Len() - b.ringMark)
}

// EndPolygon closes the open row, appending its ring range to the
// geometry offsets. A row ended with valid=false is recorded as null.
// A valid polygon must have at least one ring; the violation is
// reported at Finish.
func (b *PolygonBuilder) EndPolygon(valid bool) {
	b.requireState(stateGeom, "EndPolygon")
	b.state = stateRow
	nrings := b.rings.Len() - b.geomMark
	b.geoms.PushLength(nrings)
	b.validity.Append(valid)
	if valid && nrings == 0 && b.err == nil {
		b.err = buffer.Invalidf("polygon row %d is valid but has no rings", b.geoms.Len()-1)
	}
}

// PushNull appends an empty null row.
func (b *PolygonBuilder) PushNull() {
	b.requireState(stateRow, "PushNull")
	b.geoms.PushLength(0)
	b.validity.Append(false)
}

// Finish freezes the accumulated rows into an immutable PolygonArray,
// validating offsets and any opt-in ring invariants, and consumes the
// builder. Finish fails if a row or ring is still open.
func (b *PolygonBuilder) Finish() (*PolygonArray, error) {
	if b.state == stateDone {
		textPanic("polygon builder used after Finish")
	}
	if b.state != stateRow {
		return nil, buffer.Invalidf("unterminated polygon: missing EndRing/EndPolygon before Finish")
	}
	b.state = stateDone
	if b.err != nil {
		return nil, b.err
	}
	rings, err := b.rings.Finish()
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
	return &PolygonArray{
		dim:      Dimension(coords.Dim()),
		coords:   coords,
		rings:    rings,
		geoms:    geoms,
		validity: b.validity.Finish(),
		length:   geoms.Len(),
	}, nil
}

func (b *PolygonBuilder) appendGeom(g Geom) error {
	if g.Type() != Polygon {
		return buffer.Invalidf("cannot append %s geometry to Polygon builder", g.Type())
	}
	if g.Dimension() != Dimension(b.coords.Dim()) {
		return buffer.Invalidf("dimension mismatch: builder is %s, geometry is %s", Dimension(b.coords.Dim()), g.Dimension())
	}
	if !g.IsValid() {
		b.PushNull()
		return nil
	}
	b.BeginPolygon()
	for r := 0; r < g.NumRings(); r++ {
		b.BeginRing()
		ring := g.Ring(r)
		seq := ring.Coords()
		for c, ok := seq.Next(); ok; c, ok = seq.Next() {
			b.PushCoord(c)
		}
		b.EndRing()
	}
	b.EndPolygon(true)
	return nil
}

func (b *PolygonBuilder) appendNull() {
	b.PushNull()
}

func (b *PolygonBuilder) finishArray() (Array, error) {
	return b.Finish()
}
