// Copyright 2026 The geocol Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package snapshot

import (
	"io"

	"github.com/klauspost/compress/zstd"

	"github.com/spatialbuf/geocol"
	"github.com/spatialbuf/geocol/buffer"
	"github.com/spatialbuf/geocol/meta"
)

// Write persists a geometry column to a stream, returning the number
// of bytes written. The column is compacted first, so a sliced input
// is stored without its out-of-window rows and a snapshot never
// retains offsets into data it does not carry.
//
// Mixed columns are rejected; encode them to WKB first.
func Write(w io.Writer, name string, arr geocol.Array, crs meta.CRS) (n int, err error) {
	if w == nil {
		textPanic("nil writer")
	}
	if arr == nil {
		textPanic("nil array")
	}
	if arr.Type() == geocol.Mixed {
		return 0, textErr("mixed columns have no snapshot form, encode to WKB first")
	}

	compact, err := geocol.Concat(arr)
	if err != nil {
		return 0, wrapErr("failed to compact column", err)
	}

	m := meta.Describe(compact, name, crs)
	mb, err := m.Marshal()
	if err != nil {
		return 0, wrapErr("failed to marshal metadata", err)
	}

	if n, err = w.Write(magic[:]); err != nil {
		return
	}
	var k int
	k, err = w.Write(mb)
	n += k
	if err != nil {
		return
	}

	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return n, wrapErr("failed to create compressor", err)
	}
	defer enc.Close()

	pages, err := pagesOf(compact)
	if err != nil {
		return n, err
	}
	for _, raw := range pages {
		k, err = writePage(w, enc, raw)
		n += k
		if err != nil {
			return
		}
	}
	return n, nil
}

// pagesOf lists the physical buffers of a compacted array in their
// wire order: coordinates or raw bytes first, then offsets from the
// innermost nesting level outward, then the validity bitmap.
func pagesOf(arr geocol.Array) ([][]byte, error) {
	switch a := arr.(type) {
	case *geocol.PointArray:
		return [][]byte{
			float64sToBytes(a.Coords().Values()),
			validityBytes(a.Validity()),
		}, nil
	case *geocol.LineStringArray:
		return [][]byte{
			float64sToBytes(a.Coords().Values()),
			int32sToBytes(a.GeomOffsets().Values()),
			validityBytes(a.Validity()),
		}, nil
	case *geocol.PolygonArray:
		return [][]byte{
			float64sToBytes(a.Coords().Values()),
			int32sToBytes(a.RingOffsets().Values()),
			int32sToBytes(a.GeomOffsets().Values()),
			validityBytes(a.Validity()),
		}, nil
	case *geocol.MultiPointArray:
		return [][]byte{
			float64sToBytes(a.Coords().Values()),
			int32sToBytes(a.GeomOffsets().Values()),
			validityBytes(a.Validity()),
		}, nil
	case *geocol.MultiLineStringArray:
		return [][]byte{
			float64sToBytes(a.Coords().Values()),
			int32sToBytes(a.PartOffsets().Values()),
			int32sToBytes(a.GeomOffsets().Values()),
			validityBytes(a.Validity()),
		}, nil
	case *geocol.MultiPolygonArray:
		return [][]byte{
			float64sToBytes(a.Coords().Values()),
			int32sToBytes(a.RingOffsets().Values()),
			int32sToBytes(a.PolyOffsets().Values()),
			int32sToBytes(a.GeomOffsets().Values()),
			validityBytes(a.Validity()),
		}, nil
	case *geocol.WKBArray:
		return [][]byte{
			a.Bytes(),
			int32sToBytes(a.Offsets().Values()),
			validityBytes(a.Validity()),
		}, nil
	default:
		return nil, fmtErr("cannot snapshot %s column", arr.Type())
	}
}

func validityBytes(v *buffer.Bitmap) []byte {
	if v == nil {
		return nil
	}
	return v.Bytes()
}
