// Copyright 2026 The geocol Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package geocol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spatialbuf/geocol/buffer"
)

func TestMultiPointBuilder(t *testing.T) {
	t.Run("RoundTrip", func(t *testing.T) {
		b := NewMultiPointBuilder(XY)
		b.BeginMultiPoint()
		b.Push(1, 2)
		b.Push(3, 4)
		b.EndMultiPoint(true)
		b.PushNull()
		b.BeginMultiPoint()
		b.EndMultiPoint(true) // empty multipoint is a legal row
		arr, err := b.Finish()
		require.NoError(t, err)

		assert.Equal(t, MultiPoint, arr.Type())
		assert.Equal(t, 3, arr.Len())
		assert.Equal(t, 1, arr.NullCount())
		assert.Equal(t, []int32{0, 2, 2, 2}, arr.GeomOffsets().Values())

		g := arr.Geom(0)
		assert.Equal(t, 2, g.NumParts())
		assert.Equal(t, buffer.Coord{X: 3, Y: 4}, g.Part(1).Coord(0))
		assert.False(t, arr.Geom(1).IsValid())
		assert.Equal(t, 0, arr.Geom(2).NumParts())
	})

	t.Run("UnterminatedRowFails", func(t *testing.T) {
		b := NewMultiPointBuilder(XY)
		b.BeginMultiPoint()
		b.Push(0, 0)
		_, err := b.Finish()
		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
	})

	t.Run("OutOfOrderPanics", func(t *testing.T) {
		b := NewMultiPointBuilder(XY)
		assert.Panics(t, func() { b.Push(0, 0) })
		assert.Panics(t, func() { b.EndMultiPoint(true) })
	})
}

func TestMultiLineStringBuilder(t *testing.T) {
	t.Run("RoundTrip", func(t *testing.T) {
		b := NewMultiLineStringBuilder(XY)
		b.BeginMultiLine()
		b.BeginLine()
		b.Push(0, 0)
		b.Push(1, 1)
		b.EndLine()
		b.BeginLine()
		b.Push(2, 2)
		b.Push(3, 3)
		b.Push(4, 4)
		b.EndLine()
		b.EndMultiLine(true)
		arr, err := b.Finish()
		require.NoError(t, err)

		assert.Equal(t, MultiLineString, arr.Type())
		assert.Equal(t, []int32{0, 2, 5}, arr.PartOffsets().Values())
		assert.Equal(t, []int32{0, 2}, arr.GeomOffsets().Values())

		g := arr.Geom(0)
		assert.Equal(t, 2, g.NumParts())
		assert.Equal(t, 5, g.NumCoords())
		second := g.Part(1)
		assert.Equal(t, LineString, second.Type())
		assert.Equal(t, 3, second.NumCoords())
		assert.Equal(t, buffer.Coord{X: 2, Y: 2}, second.Coord(0))
		assert.Panics(t, func() { g.Part(2) })
	})

	t.Run("UnterminatedLineFails", func(t *testing.T) {
		b := NewMultiLineStringBuilder(XY)
		b.BeginMultiLine()
		b.BeginLine()
		b.Push(0, 0)
		_, err := b.Finish()
		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
	})

	t.Run("SliceKeepsAbsoluteOffsets", func(t *testing.T) {
		b := NewMultiLineStringBuilder(XY)
		for i := 0; i < 3; i++ {
			b.BeginMultiLine()
			b.BeginLine()
			b.Push(float64(i), 0)
			b.Push(float64(i), 1)
			b.EndLine()
			b.EndMultiLine(true)
		}
		arr, err := b.Finish()
		require.NoError(t, err)

		s := arr.Slice(1, 2)
		assert.Equal(t, 2, s.Len())
		assert.Equal(t, buffer.Coord{X: 1, Y: 0}, s.Geom(0).Part(0).Coord(0))
		assert.Equal(t, buffer.Coord{X: 2, Y: 0}, s.Geom(1).Part(0).Coord(0))
	})
}

func TestMultiPolygonBuilder(t *testing.T) {
	t.Run("RoundTrip", func(t *testing.T) {
		b := NewMultiPolygonBuilder(XY)
		b.BeginMultiPolygon()
		b.BeginPolygon()
		b.BeginRing()
		b.Push(0, 0)
		b.Push(4, 0)
		b.Push(4, 4)
		b.Push(0, 4)
		b.Push(0, 0)
		b.EndRing()
		b.BeginRing()
		b.Push(1, 1)
		b.Push(2, 1)
		b.Push(2, 2)
		b.Push(1, 2)
		b.Push(1, 1)
		b.EndRing()
		b.EndPolygon()
		b.BeginPolygon()
		b.BeginRing()
		b.Push(10, 10)
		b.Push(11, 10)
		b.Push(11, 11)
		b.Push(10, 10)
		b.EndRing()
		b.EndPolygon()
		b.EndMultiPolygon(true)
		arr, err := b.Finish()
		require.NoError(t, err)

		assert.Equal(t, MultiPolygon, arr.Type())
		assert.Equal(t, 1, arr.Len())
		assert.Equal(t, []int32{0, 5, 10, 14}, arr.RingOffsets().Values())
		assert.Equal(t, []int32{0, 2, 3}, arr.PolyOffsets().Values())
		assert.Equal(t, []int32{0, 2}, arr.GeomOffsets().Values())

		g := arr.Geom(0)
		assert.Equal(t, 2, g.NumParts())
		assert.Equal(t, 14, g.NumCoords())
		first := g.Part(0)
		assert.Equal(t, Polygon, first.Type())
		assert.Equal(t, 2, first.NumRings())
		assert.Equal(t, buffer.Coord{X: 1, Y: 1}, first.Ring(1).Coord(0))
		second := g.Part(1)
		assert.Equal(t, 1, second.NumRings())
		assert.Equal(t, 4, second.NumCoords())
	})

	t.Run("PolygonWithNoRingsFails", func(t *testing.T) {
		b := NewMultiPolygonBuilder(XY)
		b.BeginMultiPolygon()
		b.BeginPolygon()
		b.EndPolygon()
		b.EndMultiPolygon(true)
		_, err := b.Finish()
		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
	})

	t.Run("RingValidation", func(t *testing.T) {
		b := NewMultiPolygonBuilder(XY, WithRingValidation())
		b.BeginMultiPolygon()
		b.BeginPolygon()
		b.BeginRing()
		b.Push(0, 0)
		b.Push(1, 0)
		b.Push(1, 1)
		b.Push(0, 1) // not closed
		b.EndRing()
		b.EndPolygon()
		b.EndMultiPolygon(true)
		_, err := b.Finish()
		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
	})

	t.Run("NullRows", func(t *testing.T) {
		b := NewMultiPolygonBuilder(XY)
		b.PushNull()
		arr, err := b.Finish()
		require.NoError(t, err)
		assert.Equal(t, 1, arr.NullCount())
		assert.Equal(t, 0, arr.Geom(0).NumParts())
	})

	t.Run("OutOfOrderPanics", func(t *testing.T) {
		b := NewMultiPolygonBuilder(XY)
		assert.Panics(t, func() { b.BeginPolygon() })
		b.BeginMultiPolygon()
		assert.Panics(t, func() { b.BeginRing() })
		assert.Panics(t, func() { b.Push(0, 0) })
	})
}
