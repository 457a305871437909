// Copyright 2026 The geocol Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package snapshot

import (
	"bufio"
	"encoding/binary"
	"io"

	"github.com/klauspost/compress/zstd"

	"github.com/spatialbuf/geocol"
	"github.com/spatialbuf/geocol/buffer"
	"github.com/spatialbuf/geocol/meta"
)

// Read loads a geometry column from a stream written by Write,
// returning the reconstructed array and its metadata. All buffers are
// fresh allocations owned by the returned array.
func Read(r io.Reader) (geocol.Array, *meta.Meta, error) {
	if r == nil {
		textPanic("nil reader")
	}

	version, err := Magic(r)
	if err != nil {
		return nil, nil, err
	}
	if version.Major < MinFormatMajorVersion || version.Major > MaxFormatMajorVersion {
		return nil, nil, fmtErr("unsupported format major version %d", version.Major)
	}

	br := bufio.NewReader(r)

	// The metadata block is size-prefixed; read the prefix, then the
	// table, and hand the whole block to the metadata decoder.
	var prefix [4]byte
	if _, err = io.ReadFull(br, prefix[:]); err != nil {
		return nil, nil, wrapErr("failed to read metadata size prefix", err)
	}
	metaLen := binary.LittleEndian.Uint32(prefix[:])
	if metaLen > metaMaxLen {
		return nil, nil, fmtErr("metadata block length %d exceeds limit %d", metaLen, metaMaxLen)
	}
	block := make([]byte, 4+metaLen)
	copy(block, prefix[:])
	if _, err = io.ReadFull(br, block[4:]); err != nil {
		return nil, nil, wrapErr("failed to read metadata block", err)
	}
	m, err := meta.Unmarshal(block)
	if err != nil {
		return nil, nil, err
	}
	if m.Layout != buffer.Interleaved {
		return nil, nil, fmtErr("unsupported stored layout %s", m.Layout)
	}

	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, nil, wrapErr("failed to create decompressor", err)
	}
	defer dec.Close()

	arr, err := readArray(br, dec, m)
	if err != nil {
		return nil, nil, err
	}
	if int64(arr.Len()) != m.Count {
		return nil, nil, fmtErr("column has %d rows, metadata says %d", arr.Len(), m.Count)
	}
	return arr, m, nil
}

func readArray(br *bufio.Reader, dec *zstd.Decoder, m *meta.Meta) (geocol.Array, error) {
	if m.Type == geocol.WKB {
		data, err := readPage(br, dec)
		if err != nil {
			return nil, err
		}
		offsets, err := readOffsetsPage(br, dec)
		if err != nil {
			return nil, err
		}
		validity, err := readValidityPage(br, dec, offsets.Len())
		if err != nil {
			return nil, err
		}
		return geocol.NewWKBArray(data, offsets, validity)
	}

	coords, err := readCoordsPage(br, dec, m.Dimension)
	if err != nil {
		return nil, err
	}

	var nesting int
	switch m.Type {
	case geocol.Point:
		nesting = 0
	case geocol.LineString, geocol.MultiPoint:
		nesting = 1
	case geocol.Polygon, geocol.MultiLineString:
		nesting = 2
	case geocol.MultiPolygon:
		nesting = 3
	default:
		return nil, fmtErr("cannot read %s column", m.Type)
	}

	offsets := make([]buffer.Offsets, nesting)
	for i := range offsets {
		if offsets[i], err = readOffsetsPage(br, dec); err != nil {
			return nil, err
		}
	}

	rows := coords.Len()
	if nesting > 0 {
		rows = offsets[nesting-1].Len()
	}
	validity, err := readValidityPage(br, dec, rows)
	if err != nil {
		return nil, err
	}

	switch m.Type {
	case geocol.Point:
		return geocol.NewPointArray(coords, validity)
	case geocol.LineString:
		return geocol.NewLineStringArray(coords, offsets[0], validity)
	case geocol.MultiPoint:
		return geocol.NewMultiPointArray(coords, offsets[0], validity)
	case geocol.Polygon:
		return geocol.NewPolygonArray(coords, offsets[0], offsets[1], validity)
	case geocol.MultiLineString:
		return geocol.NewMultiLineStringArray(coords, offsets[0], offsets[1], validity)
	default:
		return geocol.NewMultiPolygonArray(coords, offsets[0], offsets[1], offsets[2], validity)
	}
}

func readCoordsPage(br *bufio.Reader, dec *zstd.Decoder, dim geocol.Dimension) (buffer.CoordBuffer, error) {
	raw, err := readPage(br, dec)
	if err != nil {
		return buffer.CoordBuffer{}, err
	}
	vals, err := bytesToFloat64s(raw)
	if err != nil {
		return buffer.CoordBuffer{}, err
	}
	cb, err := buffer.NewInterleaved(vals, int(dim))
	if err != nil {
		return buffer.CoordBuffer{}, wrapErr("bad coordinate page", err)
	}
	return cb, nil
}

func readOffsetsPage(br *bufio.Reader, dec *zstd.Decoder) (buffer.Offsets, error) {
	raw, err := readPage(br, dec)
	if err != nil {
		return buffer.Offsets{}, err
	}
	vals, err := bytesToInt32s(raw)
	if err != nil {
		return buffer.Offsets{}, err
	}
	o, err := buffer.NewOffsets(vals)
	if err != nil {
		return buffer.Offsets{}, wrapErr("bad offsets page", err)
	}
	return o, nil
}

func readValidityPage(br *bufio.Reader, dec *zstd.Decoder, rows int) (*buffer.Bitmap, error) {
	raw, err := readPage(br, dec)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}
	v, err := buffer.NewBitmap(raw, rows)
	if err != nil {
		return nil, wrapErr("bad validity page", err)
	}
	return v, nil
}
