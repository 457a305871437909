// Copyright 2026 The geocol Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package geocol

import (
	"github.com/spatialbuf/geocol/buffer"
)

// An Array is the uniform read-only capability set implemented by
// every geometry array variant. Generic algorithms depend only on
// this interface and dispatch once per geometry, not per coordinate.
type Array interface {
	// Type returns the variant of the array.
	Type() GeomType
	// Dimension returns the coordinate dimensionality shared by all
	// rows.
	Dimension() Dimension
	// Len returns the logical row count.
	Len() int
	// IsValid reports whether row i is non-null. Panics if i is out
	// of bounds.
	IsValid(i int) bool
	// NullCount returns the number of null rows.
	NullCount() int
	// Geom returns a borrowed view of row i backed directly by the
	// array's buffers. Panics if i is out of bounds.
	Geom(i int) Geom
	// Slice returns a view of length rows starting at offset, sharing
	// the underlying buffers with no copy. Panics if the range is out
	// of bounds.
	Slice(offset, length int) Array
}

// A Geom is a borrowed, read-only view of one geometry within an
// array. It is a small value backed directly by the array's buffers;
// obtaining and traversing one allocates nothing.
//
// The top-level range [a, b) is interpreted per type: a coordinate
// range for Point, LineString and MultiPoint; a ring range into lo
// for Polygon; a part range into lo for MultiLineString; a polygon
// range into mid for MultiPolygon.
type Geom struct {
	typ   GeomType
	dim   Dimension
	cb    buffer.CoordBuffer
	a, b  int32
	lo    []int32 // innermost offsets: ring or part to coordinate
	mid   []int32 // middle offsets: polygon to ring (MultiPolygon)
	valid bool
}

// Type returns the geometry kind of the view.
func (g Geom) Type() GeomType {
	return g.typ
}

// Dimension returns the coordinate dimensionality of the view.
func (g Geom) Dimension() Dimension {
	return g.dim
}

// IsValid reports whether the geometry is non-null. All structural
// accessors on a null view report empty ranges.
func (g Geom) IsValid() bool {
	return g.valid
}

// coordRange resolves the contiguous coordinate index range covered
// by the geometry. Offsets are monotone, so every geometry's
// coordinates occupy one contiguous range regardless of nesting.
func (g Geom) coordRange() (start, end int32) {
	if !g.valid {
		return 0, 0
	}
	switch g.typ {
	case Point, LineString, MultiPoint:
		return g.a, g.b
	case Polygon, MultiLineString:
		return g.lo[g.a], g.lo[g.b]
	case MultiPolygon:
		return g.lo[g.mid[g.a]], g.lo[g.mid[g.b]]
	default:
		return 0, 0
	}
}

// NumCoords returns the total coordinate count of the geometry across
// all parts and rings.
func (g Geom) NumCoords() int {
	a, b := g.coordRange()
	return int(b - a)
}

// Coord returns coordinate k of the geometry in traversal order.
// Panics if k is out of bounds.
func (g Geom) Coord(k int) buffer.Coord {
	a, b := g.coordRange()
	if k < 0 || int32(k) >= b-a {
		fmtPanic("coordinate %d out of bounds [0,%d)", k, b-a)
	}
	return g.cb.Get(int(a) + k)
}

// Coords returns a lazy, finite, restartable sequence over every
// coordinate of the geometry. The sequence reads directly from the
// underlying coordinate buffer.
func (g Geom) Coords() CoordSeq {
	a, b := g.coordRange()
	return CoordSeq{cb: g.cb, a: a, b: b, pos: a}
}

// NumParts returns the part count: the number of points in a
// MultiPoint, lines in a MultiLineString, polygons in a MultiPolygon,
// and 1 for the simple types (0 when null).
func (g Geom) NumParts() int {
	if !g.valid {
		return 0
	}
	switch g.typ {
	case Point, LineString, Polygon:
		return 1
	case MultiPoint, MultiLineString, MultiPolygon:
		return int(g.b - g.a)
	default:
		return 0
	}
}

// Part returns part j of the geometry as a view of the corresponding
// simple type. For a simple geometry only part 0 exists and is the
// geometry itself. Panics if j is out of bounds.
func (g Geom) Part(j int) Geom {
	if j < 0 || j >= g.NumParts() {
		fmtPanic("part %d out of bounds [0,%d)", j, g.NumParts())
	}
	switch g.typ {
	case Point, LineString, Polygon:
		return g
	case MultiPoint:
		return Geom{typ: Point, dim: g.dim, cb: g.cb, a: g.a + int32(j), b: g.a + int32(j) + 1, valid: true}
	case MultiLineString:
		return Geom{typ: LineString, dim: g.dim, cb: g.cb, a: g.lo[g.a+int32(j)], b: g.lo[g.a+int32(j)+1], valid: true}
	case MultiPolygon:
		return Geom{typ: Polygon, dim: g.dim, cb: g.cb, a: g.mid[g.a+int32(j)], b: g.mid[g.a+int32(j)+1], lo: g.lo, valid: true}
	default:
		fmtPanic("no parts on %s geometry", g.typ)
		return Geom{}
	}
}

// NumRings returns the ring count of a Polygon view, or 0 for every
// other type. The first ring is the exterior.
func (g Geom) NumRings() int {
	if g.typ != Polygon || !g.valid {
		return 0
	}
	return int(g.b - g.a)
}

// Ring returns ring r of a Polygon view as a LineString view over the
// ring's closed coordinate sequence. Panics if the view is not a
// polygon or r is out of bounds.
func (g Geom) Ring(r int) Geom {
	if g.typ != Polygon {
		fmtPanic("no rings on %s geometry", g.typ)
	}
	if r < 0 || r >= g.NumRings() {
		fmtPanic("ring %d out of bounds [0,%d)", r, g.NumRings())
	}
	return Geom{typ: LineString, dim: g.dim, cb: g.cb, a: g.lo[g.a+int32(r)], b: g.lo[g.a+int32(r)+1], valid: true}
}

// A CoordSeq is a lazy, finite, restartable sequence of coordinates
// reading directly from a coordinate buffer. The zero value is an
// exhausted empty sequence.
type CoordSeq struct {
	cb   buffer.CoordBuffer
	a, b int32
	pos  int32
}

// Len returns the total number of coordinates in the sequence,
// regardless of position.
func (s *CoordSeq) Len() int {
	return int(s.b - s.a)
}

// Next returns the next coordinate and true, or the zero coordinate
// and false once the sequence is exhausted.
func (s *CoordSeq) Next() (buffer.Coord, bool) {
	if s.pos >= s.b {
		return buffer.Coord{}, false
	}
	c := s.cb.Get(int(s.pos))
	s.pos++
	return c, true
}

// Reset rewinds the sequence to its first coordinate.
func (s *CoordSeq) Reset() {
	s.pos = s.a
}
