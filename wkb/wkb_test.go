// Copyright 2026 The geocol Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package wkb

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spatialbuf/geocol"
	"github.com/spatialbuf/geocol/buffer"
)

func buildMixedSample(t *testing.T) *geocol.MixedArray {
	t.Helper()
	mb := geocol.NewMixedBuilder(geocol.XY)

	mb.Points().Push(1, 2)
	require.NoError(t, mb.CommitRow(geocol.Point))

	lb := mb.Lines()
	lb.BeginLine()
	lb.Push(0, 0)
	lb.Push(3, 4)
	lb.EndLine(true)
	require.NoError(t, mb.CommitRow(geocol.LineString))

	mb.PushNull()

	pb := mb.Polygons()
	pb.BeginPolygon()
	pb.BeginRing()
	pb.Push(0, 0)
	pb.Push(2, 0)
	pb.Push(2, 2)
	pb.Push(0, 2)
	pb.Push(0, 0)
	pb.EndRing()
	pb.BeginRing()
	pb.Push(0.5, 0.5)
	pb.Push(1, 0.5)
	pb.Push(1, 1)
	pb.Push(0.5, 0.5)
	pb.EndRing()
	pb.EndPolygon(true)
	require.NoError(t, mb.CommitRow(geocol.Polygon))

	mpb := mb.MultiPoints()
	mpb.BeginMultiPoint()
	mpb.Push(5, 5)
	mpb.Push(6, 6)
	mpb.EndMultiPoint(true)
	require.NoError(t, mb.CommitRow(geocol.MultiPoint))

	mlb := mb.MultiLines()
	mlb.BeginMultiLine()
	mlb.BeginLine()
	mlb.Push(0, 0)
	mlb.Push(1, 0)
	mlb.EndLine()
	mlb.BeginLine()
	mlb.Push(0, 1)
	mlb.Push(1, 1)
	mlb.Push(2, 1)
	mlb.EndLine()
	mlb.EndMultiLine(true)
	require.NoError(t, mb.CommitRow(geocol.MultiLineString))

	mpoly := mb.MultiPolygons()
	mpoly.BeginMultiPolygon()
	mpoly.BeginPolygon()
	mpoly.BeginRing()
	mpoly.Push(0, 0)
	mpoly.Push(1, 0)
	mpoly.Push(1, 1)
	mpoly.Push(0, 0)
	mpoly.EndRing()
	mpoly.EndPolygon()
	mpoly.BeginPolygon()
	mpoly.BeginRing()
	mpoly.Push(10, 10)
	mpoly.Push(11, 10)
	mpoly.Push(11, 11)
	mpoly.Push(10, 10)
	mpoly.EndRing()
	mpoly.EndPolygon()
	mpoly.EndMultiPolygon(true)
	require.NoError(t, mb.CommitRow(geocol.MultiPolygon))

	arr, err := mb.Finish()
	require.NoError(t, err)
	return arr
}

// assertSameRows compares two arrays row by row on validity, type and
// coordinate content.
func assertSameRows(t *testing.T, want, got geocol.Array) {
	t.Helper()
	require.Equal(t, want.Len(), got.Len())
	for i := 0; i < want.Len(); i++ {
		if !want.IsValid(i) {
			assert.False(t, got.IsValid(i), "row %d", i)
			continue
		}
		wg, gg := want.Geom(i), got.Geom(i)
		assert.Equal(t, wg.Type(), gg.Type(), "row %d", i)
		require.Equal(t, wg.NumCoords(), gg.NumCoords(), "row %d", i)
		for k := 0; k < wg.NumCoords(); k++ {
			assert.Equal(t, wg.Coord(k), gg.Coord(k), "row %d coord %d", i, k)
		}
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	src := buildMixedSample(t)
	for _, tc := range []struct {
		name  string
		order Order
	}{
		{"LittleEndian", NDR},
		{"BigEndian", XDR},
	} {
		t.Run(tc.name, func(t *testing.T) {
			encoded, err := Encode(src, tc.order)
			require.NoError(t, err)
			decoded, err := Decode(encoded)
			require.NoError(t, err)
			assertSameRows(t, src, decoded)
		})
	}
}

func TestEncodePointBytes(t *testing.T) {
	b := geocol.NewPointBuilder(geocol.XY)
	b.Push(1, 2)
	arr, err := b.Finish()
	require.NoError(t, err)

	encoded, err := Encode(arr, NDR)
	require.NoError(t, err)

	want := []byte{1, 1, 0, 0, 0}
	want = binary.LittleEndian.AppendUint64(want, math.Float64bits(1))
	want = binary.LittleEndian.AppendUint64(want, math.Float64bits(2))
	assert.Equal(t, want, encoded.Get(0))
}

// TestEncodeRestoresDecodedBytes pins the byte-exact property for
// canonical little-endian input: re-encoding a decoded row reproduces
// the row's original bytes.
func TestEncodeRestoresDecodedBytes(t *testing.T) {
	u32 := func(b []byte, vs ...uint32) []byte {
		for _, v := range vs {
			b = binary.LittleEndian.AppendUint32(b, v)
		}
		return b
	}
	f64 := func(b []byte, vs ...float64) []byte {
		for _, v := range vs {
			b = binary.LittleEndian.AppendUint64(b, math.Float64bits(v))
		}
		return b
	}
	hdr := func(code uint32) []byte { return u32([]byte{1}, code) }

	point := f64(hdr(1), 1, 2)
	line := f64(u32(hdr(2), 3), 0, 0, 1, 0, 1, 1)
	polygon := f64(u32(f64(u32(hdr(3), 2, 5), 0, 0, 2, 0, 2, 2, 0, 2, 0, 0), 4),
		0.5, 0.5, 1, 0.5, 1, 1, 0.5, 0.5)
	multiPoint := append(u32(hdr(4), 2), append(f64(hdr(1), 5, 5), f64(hdr(1), 6, 6)...)...)
	multiLine := append(u32(hdr(5), 2),
		append(f64(u32(hdr(2), 2), 0, 0, 1, 0), f64(u32(hdr(2), 2), 0, 1, 1, 1)...)...)
	multiPolygon := append(u32(hdr(6), 2),
		append(f64(u32(hdr(3), 1, 4), 0, 0, 1, 0, 1, 1, 0, 0),
			f64(u32(hdr(3), 1, 4), 9, 9, 10, 9, 10, 10, 9, 9)...)...)

	rows := [][]byte{point, line, polygon, multiPoint, multiLine, multiPolygon}
	wb := geocol.NewWKBBuilder()
	for _, r := range rows {
		wb.Push(r)
	}
	wb.PushNull()
	arr, err := wb.Finish()
	require.NoError(t, err)

	decoded, err := Decode(arr)
	require.NoError(t, err)
	encoded, err := Encode(decoded, NDR)
	require.NoError(t, err)

	for i, r := range rows {
		assert.Equal(t, r, encoded.Get(i), "row %d", i)
	}
	assert.False(t, encoded.IsValid(len(rows)))

	t.Run("PointZ", func(t *testing.T) {
		raw := f64(hdr(1001), 1, 2, 3)
		wb := geocol.NewWKBBuilder()
		wb.Push(raw)
		arr, err := wb.Finish()
		require.NoError(t, err)

		decoded, err := Decode(arr)
		require.NoError(t, err)
		encoded, err := Encode(decoded, NDR)
		require.NoError(t, err)
		assert.Equal(t, raw, encoded.Get(0))
	})
}

func TestEncodeGeomAppends(t *testing.T) {
	b := geocol.NewPointBuilder(geocol.XY)
	b.Push(1, 2)
	arr, err := b.Finish()
	require.NoError(t, err)

	dst := []byte{0xAA}
	out, err := EncodeGeom(arr.Geom(0), NDR, dst)
	require.NoError(t, err)
	assert.Equal(t, byte(0xAA), out[0])
	assert.Len(t, out, 22)
}

func TestEncodeWKBPassThrough(t *testing.T) {
	wb := geocol.NewWKBBuilder()
	raw := []byte{1, 1, 0, 0, 0}
	raw = binary.LittleEndian.AppendUint64(raw, math.Float64bits(9))
	raw = binary.LittleEndian.AppendUint64(raw, math.Float64bits(9))
	wb.Push(raw)
	wb.PushNull()
	arr, err := wb.Finish()
	require.NoError(t, err)

	out, err := Encode(arr, XDR)
	require.NoError(t, err)
	assert.Equal(t, raw, out.Get(0), "opaque rows pass through without re-ordering")
	assert.False(t, out.IsValid(1))
}

func TestDecodeZVariants(t *testing.T) {
	coord := func(b []byte) []byte {
		b = binary.LittleEndian.AppendUint64(b, math.Float64bits(1))
		b = binary.LittleEndian.AppendUint64(b, math.Float64bits(2))
		return binary.LittleEndian.AppendUint64(b, math.Float64bits(3))
	}

	t.Run("ISO", func(t *testing.T) {
		raw := coord(binary.LittleEndian.AppendUint32([]byte{1}, 1001))
		wb := geocol.NewWKBBuilder()
		wb.Push(raw)
		arr, err := wb.Finish()
		require.NoError(t, err)

		m, err := Decode(arr)
		require.NoError(t, err)
		assert.Equal(t, geocol.XYZ, m.Dimension())
		assert.Equal(t, buffer.Coord{X: 1, Y: 2, Z: 3}, m.Geom(0).Coord(0))
	})

	t.Run("Extended", func(t *testing.T) {
		raw := coord(binary.LittleEndian.AppendUint32([]byte{1}, 0x80000001))
		wb := geocol.NewWKBBuilder()
		wb.Push(raw)
		arr, err := wb.Finish()
		require.NoError(t, err)

		m, err := Decode(arr)
		require.NoError(t, err)
		assert.Equal(t, geocol.XYZ, m.Dimension())
		assert.Equal(t, buffer.Coord{X: 1, Y: 2, Z: 3}, m.Geom(0).Coord(0))
	})
}

func TestDecodeErrors(t *testing.T) {
	point := func(x, y float64) []byte {
		b := binary.LittleEndian.AppendUint32([]byte{1}, 1)
		b = binary.LittleEndian.AppendUint64(b, math.Float64bits(x))
		return binary.LittleEndian.AppendUint64(b, math.Float64bits(y))
	}

	t.Run("MeasuredRejected", func(t *testing.T) {
		raw := point(1, 2)
		binary.LittleEndian.PutUint32(raw[1:], 2001)
		wb := geocol.NewWKBBuilder()
		wb.Push(raw)
		arr, err := wb.Finish()
		require.NoError(t, err)

		_, err = Decode(arr)
		var fe *FormatError
		require.ErrorAs(t, err, &fe)
		assert.Equal(t, 0, fe.Row)
		assert.Equal(t, int64(1), fe.Offset)
	})

	t.Run("TruncatedNamesRow", func(t *testing.T) {
		wb := geocol.NewWKBBuilder()
		wb.Push(point(0, 0))
		wb.Push(point(1, 2)[:12])
		arr, err := wb.Finish()
		require.NoError(t, err)

		_, err = Decode(arr)
		var fe *FormatError
		require.ErrorAs(t, err, &fe)
		assert.Equal(t, 1, fe.Row)
	})

	t.Run("TrailingBytes", func(t *testing.T) {
		wb := geocol.NewWKBBuilder()
		wb.Push(append(point(0, 0), 0xFF))
		arr, err := wb.Finish()
		require.NoError(t, err)

		_, err = Decode(arr)
		var fe *FormatError
		require.ErrorAs(t, err, &fe)
	})

	t.Run("MixedDimensionsRejected", func(t *testing.T) {
		z := binary.LittleEndian.AppendUint32([]byte{1}, 1001)
		for i := 0; i < 3; i++ {
			z = binary.LittleEndian.AppendUint64(z, math.Float64bits(float64(i)))
		}
		wb := geocol.NewWKBBuilder()
		wb.Push(point(0, 0))
		wb.Push(z)
		arr, err := wb.Finish()
		require.NoError(t, err)

		_, err = Decode(arr)
		var fe *FormatError
		require.ErrorAs(t, err, &fe)
		assert.Equal(t, 1, fe.Row)
	})

	t.Run("NestedTypeMismatch", func(t *testing.T) {
		// MULTIPOINT declaring one part, with a nested LINESTRING header.
		raw := binary.LittleEndian.AppendUint32([]byte{1}, 4)
		raw = binary.LittleEndian.AppendUint32(raw, 1)
		raw = append(raw, 1)
		raw = binary.LittleEndian.AppendUint32(raw, 2)
		wb := geocol.NewWKBBuilder()
		wb.Push(raw)
		arr, err := wb.Finish()
		require.NoError(t, err)

		_, err = Decode(arr)
		var fe *FormatError
		require.ErrorAs(t, err, &fe)
	})

	t.Run("GeometryCollectionUnsupported", func(t *testing.T) {
		raw := binary.LittleEndian.AppendUint32([]byte{1}, 7)
		raw = binary.LittleEndian.AppendUint32(raw, 0)
		wb := geocol.NewWKBBuilder()
		wb.Push(raw)
		arr, err := wb.Finish()
		require.NoError(t, err)

		_, err = Decode(arr)
		var fe *FormatError
		require.ErrorAs(t, err, &fe)
	})
}

func TestDecodeTyped(t *testing.T) {
	point := func(x, y float64) []byte {
		b := binary.LittleEndian.AppendUint32([]byte{1}, 1)
		b = binary.LittleEndian.AppendUint64(b, math.Float64bits(x))
		return binary.LittleEndian.AppendUint64(b, math.Float64bits(y))
	}

	t.Run("AllPoints", func(t *testing.T) {
		wb := geocol.NewWKBBuilder()
		wb.Push(point(1, 1))
		wb.PushNull()
		wb.Push(point(2, 2))
		arr, err := wb.Finish()
		require.NoError(t, err)

		typed, err := DecodeTyped(arr, geocol.Point)
		require.NoError(t, err)
		assert.Equal(t, geocol.Point, typed.Type())
		assert.Equal(t, 3, typed.Len())
		assert.False(t, typed.IsValid(1))
		assert.Equal(t, buffer.Coord{X: 2, Y: 2}, typed.Geom(2).Coord(0))
	})

	t.Run("WrongRowType", func(t *testing.T) {
		line := binary.LittleEndian.AppendUint32([]byte{1}, 2)
		line = binary.LittleEndian.AppendUint32(line, 0)
		wb := geocol.NewWKBBuilder()
		wb.Push(point(1, 1))
		wb.Push(line)
		arr, err := wb.Finish()
		require.NoError(t, err)

		_, err = DecodeTyped(arr, geocol.Point)
		var fe *FormatError
		require.ErrorAs(t, err, &fe)
		assert.Equal(t, 1, fe.Row)
	})

	t.Run("BadTargetType", func(t *testing.T) {
		wb := geocol.NewWKBBuilder()
		wb.Push(point(1, 1))
		arr, err := wb.Finish()
		require.NoError(t, err)

		_, err = DecodeTyped(arr, geocol.Mixed)
		require.Error(t, err)
	})
}

func TestDecodeStream(t *testing.T) {
	b := geocol.NewPointBuilder(geocol.XY)
	b.Push(1, 1)
	b.Push(2, 2)
	src, err := b.Finish()
	require.NoError(t, err)

	var stream []byte
	for i := 0; i < src.Len(); i++ {
		stream, err = EncodeGeom(src.Geom(i), NDR, stream)
		require.NoError(t, err)
	}

	m, err := DecodeStream(stream)
	require.NoError(t, err)
	assert.Equal(t, 2, m.Len())
	assert.Equal(t, buffer.Coord{X: 2, Y: 2}, m.Geom(1).Coord(0))

	t.Run("Empty", func(t *testing.T) {
		m, err := DecodeStream(nil)
		require.NoError(t, err)
		assert.Equal(t, 0, m.Len())
	})
}

func TestDecodeGeom(t *testing.T) {
	b := geocol.NewPointBuilder(geocol.XY)
	b.Push(7, 8)
	src, err := b.Finish()
	require.NoError(t, err)

	raw, err := EncodeGeom(src.Geom(0), NDR, nil)
	require.NoError(t, err)

	g, n, err := DecodeGeom(raw)
	require.NoError(t, err)
	assert.Equal(t, len(raw), n)
	assert.Equal(t, geocol.Point, g.Type())
	assert.Equal(t, buffer.Coord{X: 7, Y: 8}, g.Coord(0))
}
