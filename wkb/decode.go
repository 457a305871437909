// Copyright 2026 The geocol Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package wkb

import (
	"encoding/binary"
	"math"

	"github.com/spatialbuf/geocol"
	"github.com/spatialbuf/geocol/buffer"
)

// Decode decodes every row of an opaque-binary array into a mixed
// array, driving the typed child builders row by row. Null rows stay
// null. All rows must agree on dimensionality; a disagreement, a
// truncated payload, an unrecognized type code or an unsupported
// geometry kind is a FormatError naming the failing row and byte
// offset.
func Decode(arr *geocol.WKBArray) (*geocol.MixedArray, error) {
	dim := geocol.XY
	for i := 0; i < arr.Len(); i++ {
		if !arr.IsValid(i) {
			continue
		}
		d, err := headerDim(arr.Get(i))
		if err != nil {
			return nil, atRow(err, i)
		}
		dim = d
		break
	}
	mb := geocol.NewMixedBuilder(dim)
	for i := 0; i < arr.Len(); i++ {
		if !arr.IsValid(i) {
			mb.PushNull()
			continue
		}
		row := arr.Get(i)
		d := decoder{data: row}
		if err := d.geometry(mb, dim); err != nil {
			return nil, atRow(err, i)
		}
		if d.pos != len(row) {
			return nil, atRow(formatErr(d.pos, "trailing bytes after geometry"), i)
		}
	}
	return mb.Finish()
}

// DecodeTyped decodes an opaque-binary array whose rows are all of
// one concrete geometry type into the matching typed array. Null rows
// stay null. Rows of any other type make the decode fail, as do
// columns with no valid rows, since the target type cannot be
// inferred.
func DecodeTyped(arr *geocol.WKBArray, t geocol.GeomType) (geocol.Array, error) {
	if t < geocol.Point || t > geocol.MultiPolygon {
		return nil, fmtErr("cannot decode to %s array", t)
	}
	m, err := Decode(arr)
	if err != nil {
		return nil, err
	}
	for i := 0; i < m.Len(); i++ {
		if m.IsValid(i) && m.TypeID(i) != t {
			return nil, atRow(formatErr(0, "row is %s, want %s", m.TypeID(i), t), i)
		}
	}
	return m.Unify()
}

// DecodeStream decodes consecutive Well-Known Binary geometries from
// a byte stream until the stream is exhausted, producing one row per
// geometry.
func DecodeStream(data []byte) (*geocol.MixedArray, error) {
	dim := geocol.XY
	if len(data) > 0 {
		d, err := headerDim(data)
		if err != nil {
			return nil, err
		}
		dim = d
	}
	mb := geocol.NewMixedBuilder(dim)
	d := decoder{data: data}
	for d.pos < len(data) {
		if err := d.geometry(mb, dim); err != nil {
			return nil, err
		}
	}
	return mb.Finish()
}

// DecodeGeom decodes a single geometry payload into a view, returning
// the number of bytes consumed.
func DecodeGeom(data []byte) (geocol.Geom, int, error) {
	dim, err := headerDim(data)
	if err != nil {
		return geocol.Geom{}, 0, err
	}
	mb := geocol.NewMixedBuilder(dim)
	d := decoder{data: data}
	if err := d.geometry(mb, dim); err != nil {
		return geocol.Geom{}, d.pos, err
	}
	arr, err := mb.Finish()
	if err != nil {
		return geocol.Geom{}, d.pos, err
	}
	return arr.Geom(0), d.pos, nil
}

// headerDim reads just far enough into a payload to learn its
// dimensionality.
func headerDim(data []byte) (geocol.Dimension, error) {
	d := decoder{data: data}
	if err := d.byteOrder(); err != nil {
		return geocol.XY, err
	}
	_, dim, err := d.typeCode()
	return dim, err
}

type decoder struct {
	data  []byte
	pos   int
	order binary.ByteOrder
}

func (d *decoder) need(n int) error {
	if len(d.data)-d.pos < n {
		return formatErr(d.pos, "truncated: need %d more bytes", n)
	}
	return nil
}

func (d *decoder) byteOrder() error {
	if err := d.need(1); err != nil {
		return err
	}
	switch d.data[d.pos] {
	case 0:
		d.order = binary.BigEndian
	case 1:
		d.order = binary.LittleEndian
	default:
		return formatErr(d.pos, "bad byte-order marker 0x%02x", d.data[d.pos])
	}
	d.pos++
	return nil
}

func (d *decoder) u32() (uint32, error) {
	if err := d.need(4); err != nil {
		return 0, err
	}
	v := d.order.Uint32(d.data[d.pos:])
	d.pos += 4
	return v, nil
}

func (d *decoder) f64() (float64, error) {
	if err := d.need(8); err != nil {
		return 0, err
	}
	v := math.Float64frombits(d.order.Uint64(d.data[d.pos:]))
	d.pos += 8
	return v, nil
}

// typeCode reads a WKB type code, accepting both the ISO and the
// extended Z conventions and rejecting measured coordinates.
func (d *decoder) typeCode() (geocol.GeomType, geocol.Dimension, error) {
	at := d.pos
	code, err := d.u32()
	if err != nil {
		return geocol.Unknown, geocol.XY, err
	}
	dim := geocol.XY
	if code&0x80000000 != 0 {
		dim = geocol.XYZ
		code &^= 0x80000000
	}
	if code&0x40000000 != 0 || (code >= 2000 && code < 4000) {
		return geocol.Unknown, geocol.XY, formatErr(at, "measured coordinates not supported (type code %d)", code)
	}
	if code >= 1000 && code < 2000 {
		dim = geocol.XYZ
		code -= 1000
	}
	if code < 1 || code > uint32(geocol.GeometryCollection) {
		return geocol.Unknown, geocol.XY, formatErr(at, "unknown type code %d", code)
	}
	return geocol.GeomType(code), dim, nil
}

func (d *decoder) coord(dim geocol.Dimension) (buffer.Coord, error) {
	var c buffer.Coord
	var err error
	if c.X, err = d.f64(); err != nil {
		return c, err
	}
	if c.Y, err = d.f64(); err != nil {
		return c, err
	}
	if dim == geocol.XYZ {
		if c.Z, err = d.f64(); err != nil {
			return c, err
		}
	}
	return c, nil
}

// nested reads the byte-order marker and type code of a nested part
// and requires the given base type and dimensionality. Parts of a
// multi geometry may not disagree with their parent.
func (d *decoder) nested(want geocol.GeomType, wantDim geocol.Dimension) error {
	if err := d.byteOrder(); err != nil {
		return err
	}
	at := d.pos
	typ, dim, err := d.typeCode()
	if err != nil {
		return err
	}
	if typ != want {
		return formatErr(at, "expected nested %s, got %s", want, typ)
	}
	if dim != wantDim {
		return formatErr(at, "dimensionality flag mismatch: nested %s inside %s geometry", dim, wantDim)
	}
	return nil
}

// geometry decodes one geometry, header included, appending it as one
// row of the mixed builder.
func (d *decoder) geometry(mb *geocol.MixedBuilder, wantDim geocol.Dimension) error {
	if err := d.byteOrder(); err != nil {
		return err
	}
	at := d.pos
	typ, dim, err := d.typeCode()
	if err != nil {
		return err
	}
	if dim != wantDim {
		return formatErr(at, "dimensionality flag mismatch: %s geometry in %s column", dim, wantDim)
	}

	switch typ {
	case geocol.Point:
		c, err := d.coord(dim)
		if err != nil {
			return err
		}
		mb.Points().PushCoord(c)

	case geocol.LineString:
		n, err := d.u32()
		if err != nil {
			return err
		}
		lb := mb.Lines()
		lb.BeginLine()
		for i := uint32(0); i < n; i++ {
			c, err := d.coord(dim)
			if err != nil {
				return err
			}
			lb.PushCoord(c)
		}
		lb.EndLine(true)

	case geocol.Polygon:
		nr, err := d.u32()
		if err != nil {
			return err
		}
		pb := mb.Polygons()
		pb.BeginPolygon()
		for r := uint32(0); r < nr; r++ {
			m, err := d.u32()
			if err != nil {
				return err
			}
			pb.BeginRing()
			for i := uint32(0); i < m; i++ {
				c, err := d.coord(dim)
				if err != nil {
					return err
				}
				pb.PushCoord(c)
			}
			pb.EndRing()
		}
		pb.EndPolygon(true)

	case geocol.MultiPoint:
		n, err := d.u32()
		if err != nil {
			return err
		}
		mpb := mb.MultiPoints()
		mpb.BeginMultiPoint()
		for i := uint32(0); i < n; i++ {
			if err := d.nested(geocol.Point, dim); err != nil {
				return err
			}
			c, err := d.coord(dim)
			if err != nil {
				return err
			}
			mpb.PushCoord(c)
		}
		mpb.EndMultiPoint(true)

	case geocol.MultiLineString:
		n, err := d.u32()
		if err != nil {
			return err
		}
		mlb := mb.MultiLines()
		mlb.BeginMultiLine()
		for i := uint32(0); i < n; i++ {
			if err := d.nested(geocol.LineString, dim); err != nil {
				return err
			}
			m, err := d.u32()
			if err != nil {
				return err
			}
			mlb.BeginLine()
			for k := uint32(0); k < m; k++ {
				c, err := d.coord(dim)
				if err != nil {
					return err
				}
				mlb.PushCoord(c)
			}
			mlb.EndLine()
		}
		mlb.EndMultiLine(true)

	case geocol.MultiPolygon:
		n, err := d.u32()
		if err != nil {
			return err
		}
		mpb := mb.MultiPolygons()
		mpb.BeginMultiPolygon()
		for i := uint32(0); i < n; i++ {
			if err := d.nested(geocol.Polygon, dim); err != nil {
				return err
			}
			nr, err := d.u32()
			if err != nil {
				return err
			}
			mpb.BeginPolygon()
			for r := uint32(0); r < nr; r++ {
				m, err := d.u32()
				if err != nil {
					return err
				}
				mpb.BeginRing()
				for k := uint32(0); k < m; k++ {
					c, err := d.coord(dim)
					if err != nil {
						return err
					}
					mpb.PushCoord(c)
				}
				mpb.EndRing()
			}
			mpb.EndPolygon()
		}
		mpb.EndMultiPolygon(true)

	default:
		// GeometryCollection rows stay in the opaque-binary variant.
		return formatErr(at, "unsupported geometry type %s", typ)
	}
	return mb.CommitRow(typ)
}
