// Copyright 2026 The geocol Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package geocol

import (
	"github.com/spatialbuf/geocol/buffer"
)

// A MixedArray stores heterogeneous geometries: each row carries a
// type tag selecting one of six typed child arrays plus the row's
// index within that child. Child arrays share no row-index space with
// each other; the parent maps logical row to (tag, child row). All
// children share one coordinate dimensionality.
type MixedArray struct {
	dim      Dimension
	tags     []GeomType
	index    []int32
	children [MultiPolygon + 1]Array
	validity *buffer.Bitmap
	offset   int
	length   int
}

var _ Array = (*MixedArray)(nil)

// Type returns Mixed.
func (a *MixedArray) Type() GeomType {
	return Mixed
}

// Dimension returns the coordinate dimensionality shared by all child
// arrays.
func (a *MixedArray) Dimension() Dimension {
	return a.dim
}

// Len returns the row count.
func (a *MixedArray) Len() int {
	return a.length
}

// IsValid reports whether row i is non-null.
func (a *MixedArray) IsValid(i int) bool {
	boundsCheck(i, a.length)
	return validAt(a.validity, a.offset+i)
}

// NullCount returns the number of null rows.
func (a *MixedArray) NullCount() int {
	return nullsIn(a.validity, a.offset, a.length)
}

// TypeID returns the geometry kind of row i, or Unknown for a null
// row.
func (a *MixedArray) TypeID(i int) GeomType {
	boundsCheck(i, a.length)
	return a.tags[a.offset+i]
}

// Child returns the typed child array holding rows tagged t, or nil
// if no row carries that tag. Panics if t is not a concrete single
// geometry type.
func (a *MixedArray) Child(t GeomType) Array {
	if t < Point || t > MultiPolygon {
		fmtPanic("no %s child in mixed array", t)
	}
	return a.children[t]
}

// Geom returns a borrowed view of row i, delegating to the typed
// child array selected by the row's tag.
func (a *MixedArray) Geom(i int) Geom {
	boundsCheck(i, a.length)
	j := a.offset + i
	tag := a.tags[j]
	if tag == Unknown || !validAt(a.validity, j) {
		return Geom{typ: tag, dim: a.dim}
	}
	return a.children[tag].Geom(int(a.index[j]))
}

// Slice returns a zero-copy view of length rows starting at offset.
func (a *MixedArray) Slice(offset, length int) Array {
	sliceCheck(offset, length, a.length)
	s := *a
	s.offset += offset
	s.length = length
	return &s
}

// Unify rebuilds the column as a typed array when every valid row
// carries the same concrete geometry type, preserving row order and
// nulls. Returns a ValidationError if rows disagree on type or no row
// is valid, since a typed array cannot represent either.
func (a *MixedArray) Unify() (Array, error) {
	t := Unknown
	for i := 0; i < a.length; i++ {
		if !a.IsValid(i) {
			continue
		}
		ti := a.TypeID(i)
		if t == Unknown {
			t = ti
		} else if ti != t {
			return nil, buffer.Invalidf("cannot unify: row %d is %s, earlier rows are %s", i, ti, t)
		}
	}
	if t == Unknown {
		return nil, buffer.Invalidf("cannot unify a mixed array with no valid rows")
	}
	b, err := newBuilderFor(t, a.dim)
	if err != nil {
		return nil, err
	}
	if err := replay(b, a, 0, a.length); err != nil {
		return nil, err
	}
	return b.finishArray()
}

// A MixedBuilder accumulates heterogeneous geometries into a
// MixedArray. Rows are appended either through PushGeom, or by
// driving one of the typed child builders directly and then calling
// CommitRow with the matching tag.
type MixedBuilder struct {
	dim      Dimension
	tags     []GeomType
	index    []int32
	validity *buffer.BitmapBuilder
	points   *PointBuilder
	lines    *LineStringBuilder
	polys    *PolygonBuilder
	mpoints  *MultiPointBuilder
	mlines   *MultiLineStringBuilder
	mpolys   *MultiPolygonBuilder
	counts   [MultiPolygon + 1]int // rows committed per tag
	opts     []BuilderOption
	done     bool
}

// NewMixedBuilder creates a mixed builder of the given dimension.
// Child builders inherit the dimension and options; pushing a
// geometry of any other dimension fails.
func NewMixedBuilder(dim Dimension, opts ...BuilderOption) *MixedBuilder {
	checkDimension(dim)
	return &MixedBuilder{
		dim:      dim,
		validity: buffer.NewBitmapBuilder(),
		opts:     opts,
	}
}

func (b *MixedBuilder) sanityCheck() {
	if b.done {
		textPanic("mixed builder used after Finish")
	}
}

// Len returns the number of rows appended so far.
func (b *MixedBuilder) Len() int {
	return len(b.tags)
}

// Points returns the Point child builder, creating it on first use.
func (b *MixedBuilder) Points() *PointBuilder {
	b.sanityCheck()
	if b.points == nil {
		b.points = NewPointBuilder(b.dim)
	}
	return b.points
}

// Lines returns the LineString child builder, creating it on first
// use.
func (b *MixedBuilder) Lines() *LineStringBuilder {
	b.sanityCheck()
	if b.lines == nil {
		b.lines = NewLineStringBuilder(b.dim)
	}
	return b.lines
}

// Polygons returns the Polygon child builder, creating it on first
// use.
func (b *MixedBuilder) Polygons() *PolygonBuilder {
	b.sanityCheck()
	if b.polys == nil {
		b.polys = NewPolygonBuilder(b.dim, b.opts...)
	}
	return b.polys
}

// MultiPoints returns the MultiPoint child builder, creating it on
// first use.
func (b *MixedBuilder) MultiPoints() *MultiPointBuilder {
	b.sanityCheck()
	if b.mpoints == nil {
		b.mpoints = NewMultiPointBuilder(b.dim)
	}
	return b.mpoints
}

// MultiLines returns the MultiLineString child builder, creating it
// on first use.
func (b *MixedBuilder) MultiLines() *MultiLineStringBuilder {
	b.sanityCheck()
	if b.mlines == nil {
		b.mlines = NewMultiLineStringBuilder(b.dim)
	}
	return b.mlines
}

// MultiPolygons returns the MultiPolygon child builder, creating it
// on first use.
func (b *MixedBuilder) MultiPolygons() *MultiPolygonBuilder {
	b.sanityCheck()
	if b.mpolys == nil {
		b.mpolys = NewMultiPolygonBuilder(b.dim, b.opts...)
	}
	return b.mpolys
}

func (b *MixedBuilder) childLen(t GeomType) int {
	switch t {
	case Point:
		if b.points == nil {
			return 0
		}
		return b.points.Len()
	case LineString:
		if b.lines == nil {
			return 0
		}
		return b.lines.Len()
	case Polygon:
		if b.polys == nil {
			return 0
		}
		return b.polys.Len()
	case MultiPoint:
		if b.mpoints == nil {
			return 0
		}
		return b.mpoints.Len()
	case MultiLineString:
		if b.mlines == nil {
			return 0
		}
		return b.mlines.Len()
	case MultiPolygon:
		if b.mpolys == nil {
			return 0
		}
		return b.mpolys.Len()
	default:
		return 0
	}
}

// CommitRow records that exactly one geometry was appended to the
// child builder for tag t since the last commit, mapping the next
// logical row to it. Returns a ValidationError if the child row count
// does not line up.
func (b *MixedBuilder) CommitRow(t GeomType) error {
	b.sanityCheck()
	if t < Point || t > MultiPolygon {
		return buffer.Invalidf("cannot commit %s row to mixed builder", t)
	}
	want := b.counts[t] + 1
	if got := b.childLen(t); got != want {
		return buffer.Invalidf("commit of %s row expects child length %d, child has %d", t, want, got)
	}
	b.counts[t] = want
	b.tags = append(b.tags, t)
	b.index = append(b.index, int32(want-1))
	b.validity.Append(true)
	return nil
}

// PushGeom appends a geometry, dispatching on its type. Returns a
// ValidationError if the geometry's dimensionality differs from the
// builder's: a mixed column never mixes 2D and 3D rows.
func (b *MixedBuilder) PushGeom(g Geom) error {
	b.sanityCheck()
	if !g.IsValid() {
		b.PushNull()
		return nil
	}
	if g.Dimension() != b.dim {
		return buffer.Invalidf("dimension mismatch: mixed builder is %s, geometry is %s", b.dim, g.Dimension())
	}
	var err error
	switch g.Type() {
	case Point:
		err = b.Points().appendGeom(g)
	case LineString:
		err = b.Lines().appendGeom(g)
	case Polygon:
		err = b.Polygons().appendGeom(g)
	case MultiPoint:
		err = b.MultiPoints().appendGeom(g)
	case MultiLineString:
		err = b.MultiLines().appendGeom(g)
	case MultiPolygon:
		err = b.MultiPolygons().appendGeom(g)
	default:
		return buffer.Invalidf("cannot push %s geometry to mixed builder", g.Type())
	}
	if err != nil {
		return err
	}
	return b.CommitRow(g.Type())
}

// PushNull appends a null row with no geometry kind.
func (b *MixedBuilder) PushNull() {
	b.sanityCheck()
	b.tags = append(b.tags, Unknown)
	b.index = append(b.index, 0)
	b.validity.Append(false)
}

// Finish freezes all child builders and the tag and index buffers
// into an immutable MixedArray and consumes the builder. Finish fails
// if any child builder holds rows that were never committed.
func (b *MixedBuilder) Finish() (*MixedArray, error) {
	b.sanityCheck()
	b.done = true
	a := &MixedArray{
		dim:    b.dim,
		tags:   b.tags,
		index:  b.index,
		length: len(b.tags),
	}
	for t := Point; t <= MultiPolygon; t++ {
		if n := b.childLen(t); n != b.counts[t] {
			return nil, buffer.Invalidf("%s child holds %d rows, %d committed", t, n, b.counts[t])
		}
	}
	var err error
	if b.points != nil {
		if a.children[Point], err = b.points.Finish(); err != nil {
			return nil, err
		}
	}
	if b.lines != nil {
		if a.children[LineString], err = b.lines.Finish(); err != nil {
			return nil, err
		}
	}
	if b.polys != nil {
		if a.children[Polygon], err = b.polys.Finish(); err != nil {
			return nil, err
		}
	}
	if b.mpoints != nil {
		if a.children[MultiPoint], err = b.mpoints.Finish(); err != nil {
			return nil, err
		}
	}
	if b.mlines != nil {
		if a.children[MultiLineString], err = b.mlines.Finish(); err != nil {
			return nil, err
		}
	}
	if b.mpolys != nil {
		if a.children[MultiPolygon], err = b.mpolys.Finish(); err != nil {
			return nil, err
		}
	}
	a.validity = b.validity.Finish()
	return a, nil
}

func (b *MixedBuilder) appendGeom(g Geom) error {
	return b.PushGeom(g)
}

func (b *MixedBuilder) appendNull() {
	b.PushNull()
}

func (b *MixedBuilder) finishArray() (Array, error) {
	return b.Finish()
}
