// Copyright 2026 The geocol Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package geocol

import (
	"encoding/binary"
	"math"

	"github.com/spatialbuf/geocol/buffer"
)

// scanWKB decodes a single Well-Known Binary geometry into a view
// backed by small freshly built buffers. It exists so that WKBArray
// can satisfy the Array capability set without importing the full
// codec; the wkb package remains the way to decode whole arrays with
// rich errors.
func scanWKB(data []byte) (Geom, int, error) {
	s := wkbScanner{data: data}
	g, err := s.geometry(Unknown, 0)
	if err != nil {
		return Geom{}, s.pos, err
	}
	return g, s.pos, nil
}

type wkbScanner struct {
	data  []byte
	pos   int
	order binary.ByteOrder
}

func (s *wkbScanner) need(n int) error {
	if len(s.data)-s.pos < n {
		return fmtErr("truncated WKB at byte %d: need %d more bytes", s.pos, n)
	}
	return nil
}

func (s *wkbScanner) byteOrder() error {
	if err := s.need(1); err != nil {
		return err
	}
	switch s.data[s.pos] {
	case 0:
		s.order = binary.BigEndian
	case 1:
		s.order = binary.LittleEndian
	default:
		return fmtErr("bad WKB byte-order marker 0x%02x at byte %d", s.data[s.pos], s.pos)
	}
	s.pos++
	return nil
}

func (s *wkbScanner) u32() (uint32, error) {
	if err := s.need(4); err != nil {
		return 0, err
	}
	v := s.order.Uint32(s.data[s.pos:])
	s.pos += 4
	return v, nil
}

// count reads an element count and bounds it against the bytes
// remaining, given the minimum encoded size of one element. A corrupt
// count fails here, before any loop or allocation is sized from it.
func (s *wkbScanner) count(min int) (int, error) {
	at := s.pos
	n, err := s.u32()
	if err != nil {
		return 0, err
	}
	if uint64(n)*uint64(min) > uint64(len(s.data)-s.pos) {
		return 0, fmtErr("WKB count %d at byte %d exceeds the %d bytes remaining", n, at, len(s.data)-s.pos)
	}
	return int(n), nil
}

func (s *wkbScanner) f64() (float64, error) {
	if err := s.need(8); err != nil {
		return 0, err
	}
	v := math.Float64frombits(s.order.Uint64(s.data[s.pos:]))
	s.pos += 8
	return v, nil
}

// typeCode splits a WKB type code into its base type and
// dimensionality, accepting both the ISO (base + 1000) and the
// extended (high-bit flag) Z conventions. Measured coordinates are
// not supported.
func (s *wkbScanner) typeCode() (GeomType, Dimension, error) {
	at := s.pos
	code, err := s.u32()
	if err != nil {
		return Unknown, XY, err
	}
	dim := XY
	if code&0x80000000 != 0 {
		dim = XYZ
		code &^= 0x80000000
	}
	if code&0x40000000 != 0 || (code >= 2000 && code < 4000) {
		return Unknown, XY, fmtErr("measured WKB coordinates not supported (type code %d at byte %d)", code, at)
	}
	if code >= 1000 && code < 2000 {
		dim = XYZ
		code -= 1000
	}
	if code < 1 || code > uint32(GeometryCollection) {
		return Unknown, XY, fmtErr("unknown WKB type code %d at byte %d", code, at)
	}
	return GeomType(code), dim, nil
}

func (s *wkbScanner) coords(cb *buffer.CoordBuilder, n int) error {
	for i := 0; i < n; i++ {
		x, err := s.f64()
		if err != nil {
			return err
		}
		y, err := s.f64()
		if err != nil {
			return err
		}
		if cb.Dim() == 3 {
			z, err := s.f64()
			if err != nil {
				return err
			}
			cb.PushZ(x, y, z)
		} else {
			cb.Push(x, y)
		}
	}
	return nil
}

// geometry scans one geometry, including its header. When want is not
// Unknown the scanned base type must match it, and when wantDim is
// nonzero the dimensionality must match: nested parts of a multi
// geometry may not disagree with their parent.
func (s *wkbScanner) geometry(want GeomType, wantDim Dimension) (Geom, error) {
	if err := s.byteOrder(); err != nil {
		return Geom{}, err
	}
	at := s.pos
	typ, dim, err := s.typeCode()
	if err != nil {
		return Geom{}, err
	}
	if want != Unknown && typ != want {
		return Geom{}, fmtErr("expected nested %s, got %s at byte %d", want, typ, at)
	}
	if wantDim != 0 && dim != wantDim {
		return Geom{}, fmtErr("dimensionality mismatch in nested geometry at byte %d: %s inside %s", at, dim, wantDim)
	}

	cb := buffer.NewCoordBuilder(int(dim))
	g := Geom{typ: typ, dim: dim, valid: true}

	switch typ {
	case Point:
		if err := s.coords(cb, 1); err != nil {
			return Geom{}, err
		}
		g.b = 1

	case LineString, MultiPoint:
		// A nested point needs at least its 5-byte header, a bare
		// coordinate dim*8 bytes.
		min := int(dim) * 8
		if typ == MultiPoint {
			min = 5
		}
		n, err := s.count(min)
		if err != nil {
			return Geom{}, err
		}
		if typ == MultiPoint {
			for i := 0; i < n; i++ {
				if _, err := s.pointInto(cb, dim); err != nil {
					return Geom{}, err
				}
			}
		} else if err := s.coords(cb, n); err != nil {
			return Geom{}, err
		}
		g.b = int32(n)

	case Polygon:
		lo, err := s.rings(cb)
		if err != nil {
			return Geom{}, err
		}
		g.lo = lo
		g.b = int32(len(lo) - 1)

	case MultiLineString:
		n, err := s.count(5)
		if err != nil {
			return Geom{}, err
		}
		lo := make([]int32, 1, n+1)
		for i := 0; i < n; i++ {
			if err := s.byteOrder(); err != nil {
				return Geom{}, err
			}
			if _, _, err := s.expect(LineString, dim); err != nil {
				return Geom{}, err
			}
			m, err := s.count(int(dim) * 8)
			if err != nil {
				return Geom{}, err
			}
			if err := s.coords(cb, m); err != nil {
				return Geom{}, err
			}
			lo = append(lo, int32(cb.Len()))
		}
		g.lo = lo
		g.b = int32(n)

	case MultiPolygon:
		n, err := s.count(5)
		if err != nil {
			return Geom{}, err
		}
		mid := make([]int32, 1, n+1)
		lo := []int32{0}
		for i := 0; i < n; i++ {
			if err := s.byteOrder(); err != nil {
				return Geom{}, err
			}
			if _, _, err := s.expect(Polygon, dim); err != nil {
				return Geom{}, err
			}
			nr, err := s.count(4)
			if err != nil {
				return Geom{}, err
			}
			for r := 0; r < nr; r++ {
				m, err := s.count(int(dim) * 8)
				if err != nil {
					return Geom{}, err
				}
				if err := s.coords(cb, m); err != nil {
					return Geom{}, err
				}
				lo = append(lo, int32(cb.Len()))
			}
			mid = append(mid, int32(len(lo)-1))
		}
		g.lo = lo
		g.mid = mid
		g.b = int32(n)

	default:
		return Geom{}, fmtErr("unsupported WKB geometry type %s at byte %d", typ, at)
	}

	g.cb = cb.Finish()
	return g, nil
}

// pointInto scans one nested point geometry, header included, and
// appends its coordinate to cb.
func (s *wkbScanner) pointInto(cb *buffer.CoordBuilder, dim Dimension) (Dimension, error) {
	if err := s.byteOrder(); err != nil {
		return 0, err
	}
	if _, _, err := s.expect(Point, dim); err != nil {
		return 0, err
	}
	return dim, s.coords(cb, 1)
}

// expect scans a type code and requires the given base type and
// dimensionality.
func (s *wkbScanner) expect(want GeomType, wantDim Dimension) (GeomType, Dimension, error) {
	at := s.pos
	typ, dim, err := s.typeCode()
	if err != nil {
		return Unknown, XY, err
	}
	if typ != want {
		return Unknown, XY, fmtErr("expected nested %s, got %s at byte %d", want, typ, at)
	}
	if dim != wantDim {
		return Unknown, XY, fmtErr("dimensionality mismatch in nested geometry at byte %d", at)
	}
	return typ, dim, nil
}

// rings scans a ring count followed by that many rings of raw
// coordinates, returning the ring offsets.
func (s *wkbScanner) rings(cb *buffer.CoordBuilder) ([]int32, error) {
	n, err := s.count(4) // each ring carries its own 4-byte count
	if err != nil {
		return nil, err
	}
	lo := make([]int32, 1, n+1)
	for i := 0; i < n; i++ {
		m, err := s.count(cb.Dim() * 8)
		if err != nil {
			return nil, err
		}
		if err := s.coords(cb, m); err != nil {
			return nil, err
		}
		lo = append(lo, int32(cb.Len()))
	}
	return lo, nil
}
