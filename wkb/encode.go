// Copyright 2026 The geocol Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package wkb

import (
	"encoding/binary"
	"math"

	"github.com/spatialbuf/geocol"
)

// An Order selects the byte order of encoded output, using the OGC
// marker values.
type Order uint8

const (
	// XDR is big-endian output.
	XDR Order = 0
	// NDR is little-endian output, the common convention.
	NDR Order = 1
)

func (o Order) byteOrder() binary.ByteOrder {
	if o == XDR {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// Encode serializes a frozen array into an opaque-binary array of
// Well-Known Binary rows in the given byte order. Null rows stay
// null. 3D arrays are written with ISO type codes (base plus 1000).
// Rows of an opaque-binary input pass through unchanged.
func Encode(arr geocol.Array, order Order) (*geocol.WKBArray, error) {
	b := geocol.NewWKBBuilder()
	if w, ok := arr.(*geocol.WKBArray); ok {
		for i := 0; i < w.Len(); i++ {
			if !w.IsValid(i) {
				b.PushNull()
			} else {
				b.Push(w.Get(i))
			}
		}
		return b.Finish()
	}
	var scratch []byte
	for i := 0; i < arr.Len(); i++ {
		if !arr.IsValid(i) {
			b.PushNull()
			continue
		}
		var err error
		scratch, err = EncodeGeom(arr.Geom(i), order, scratch[:0])
		if err != nil {
			return nil, err
		}
		b.Push(scratch)
	}
	return b.Finish()
}

// EncodeGeom appends the Well-Known Binary encoding of one geometry
// to dst and returns the extended slice.
func EncodeGeom(g geocol.Geom, order Order, dst []byte) ([]byte, error) {
	e := encoder{order: order.byteOrder(), marker: byte(order)}
	out, err := e.geometry(dst, g)
	if err != nil {
		return dst, err
	}
	return out, nil
}

type encoder struct {
	order  binary.ByteOrder
	marker byte
}

func (e *encoder) u32(dst []byte, v uint32) []byte {
	var b [4]byte
	e.order.PutUint32(b[:], v)
	return append(dst, b[:]...)
}

func (e *encoder) f64(dst []byte, v float64) []byte {
	var b [8]byte
	e.order.PutUint64(b[:], math.Float64bits(v))
	return append(dst, b[:]...)
}

func (e *encoder) header(dst []byte, t geocol.GeomType, dim geocol.Dimension) []byte {
	code := uint32(t)
	if dim == geocol.XYZ {
		code += 1000
	}
	dst = append(dst, e.marker)
	return e.u32(dst, code)
}

func (e *encoder) coords(dst []byte, g geocol.Geom) []byte {
	dim := g.Dimension()
	seq := g.Coords()
	for c, ok := seq.Next(); ok; c, ok = seq.Next() {
		dst = e.f64(dst, c.X)
		dst = e.f64(dst, c.Y)
		if dim == geocol.XYZ {
			dst = e.f64(dst, c.Z)
		}
	}
	return dst
}

func (e *encoder) geometry(dst []byte, g geocol.Geom) ([]byte, error) {
	t := g.Type()
	dst = e.header(dst, t, g.Dimension())
	switch t {
	case geocol.Point:
		dst = e.coords(dst, g)

	case geocol.LineString:
		dst = e.u32(dst, uint32(g.NumCoords()))
		dst = e.coords(dst, g)

	case geocol.Polygon:
		dst = e.u32(dst, uint32(g.NumRings()))
		for r := 0; r < g.NumRings(); r++ {
			ring := g.Ring(r)
			dst = e.u32(dst, uint32(ring.NumCoords()))
			dst = e.coords(dst, ring)
		}

	case geocol.MultiPoint, geocol.MultiLineString, geocol.MultiPolygon:
		dst = e.u32(dst, uint32(g.NumParts()))
		var err error
		for j := 0; j < g.NumParts(); j++ {
			dst, err = e.geometry(dst, g.Part(j))
			if err != nil {
				return dst, err
			}
		}

	default:
		return dst, formatErr(0, "cannot encode %s geometry", t)
	}
	return dst, nil
}
