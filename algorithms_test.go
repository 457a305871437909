// Copyright 2026 The geocol Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package geocol

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spatialbuf/geocol/buffer"
)

func TestBoundsOf(t *testing.T) {
	t.Run("LineString", func(t *testing.T) {
		line := buildLine(t, [2]float64{-1, 5}, [2]float64{3, -2}, [2]float64{0, 0})
		x0, y0, x1, y1 := BoundsOf(line.Geom(0))
		assert.Equal(t, -1.0, x0)
		assert.Equal(t, -2.0, y0)
		assert.Equal(t, 3.0, x1)
		assert.Equal(t, 5.0, y1)
	})

	t.Run("Point", func(t *testing.T) {
		pts := buildPoints(t, [2]float64{7, 8})
		x0, y0, x1, y1 := BoundsOf(pts.Geom(0))
		assert.Equal(t, [4]float64{7, 8, 7, 8}, [4]float64{x0, y0, x1, y1})
	})

	t.Run("NullRowInverted", func(t *testing.T) {
		b := NewPointBuilder(XY)
		b.PushNull()
		arr, err := b.Finish()
		require.NoError(t, err)
		x0, y0, x1, y1 := BoundsOf(arr.Geom(0))
		assert.True(t, math.IsInf(x0, 1))
		assert.True(t, math.IsInf(y0, 1))
		assert.True(t, math.IsInf(x1, -1))
		assert.True(t, math.IsInf(y1, -1))
	})
}

func TestBounds(t *testing.T) {
	t.Run("SkipsNullRows", func(t *testing.T) {
		b := NewPointBuilder(XY)
		b.Push(1, 2)
		b.PushNull()
		b.Push(-3, 9)
		arr, err := b.Finish()
		require.NoError(t, err)

		x0, y0, x1, y1 := Bounds(arr)
		assert.Equal(t, [4]float64{-3, 2, 1, 9}, [4]float64{x0, y0, x1, y1})
	})

	t.Run("EmptyArrayInverted", func(t *testing.T) {
		arr := buildPoints(t)
		x0, _, x1, _ := Bounds(arr)
		assert.True(t, x0 > x1)
	})
}

func TestLength(t *testing.T) {
	t.Run("PointIsZero", func(t *testing.T) {
		pts := buildPoints(t, [2]float64{1, 1})
		assert.Zero(t, Length(pts.Geom(0)))
	})

	t.Run("LineString", func(t *testing.T) {
		line := buildLine(t, [2]float64{0, 0}, [2]float64{3, 4}, [2]float64{3, 5})
		assert.InDelta(t, 6.0, Length(line.Geom(0)), 1e-12)
	})

	t.Run("PolygonPerimeter", func(t *testing.T) {
		b := NewPolygonBuilder(XY)
		b.BeginPolygon()
		pushUnitSquare(b, 0, 0)
		b.EndPolygon(true)
		arr, err := b.Finish()
		require.NoError(t, err)
		assert.InDelta(t, 4.0, Length(arr.Geom(0)), 1e-12)
	})

	t.Run("MultiLineStringSumsParts", func(t *testing.T) {
		b := NewMultiLineStringBuilder(XY)
		b.BeginMultiLine()
		b.BeginLine()
		b.Push(0, 0)
		b.Push(1, 0)
		b.EndLine()
		b.BeginLine()
		b.Push(0, 0)
		b.Push(0, 2)
		b.EndLine()
		b.EndMultiLine(true)
		arr, err := b.Finish()
		require.NoError(t, err)
		// Segments never span part boundaries: 1 + 2, not the chained
		// path through (1,0)-(0,0).
		assert.InDelta(t, 3.0, Length(arr.Geom(0)), 1e-12)
	})

	t.Run("XYZUsesFullSegment", func(t *testing.T) {
		b := NewLineStringBuilder(XYZ)
		b.BeginLine()
		b.PushZ(0, 0, 0)
		b.PushZ(1, 2, 2)
		b.EndLine(true)
		arr, err := b.Finish()
		require.NoError(t, err)
		assert.InDelta(t, 3.0, Length(arr.Geom(0)), 1e-12)
	})

	t.Run("NullIsZero", func(t *testing.T) {
		b := NewLineStringBuilder(XY)
		b.PushNull()
		arr, err := b.Finish()
		require.NoError(t, err)
		assert.Zero(t, Length(arr.Geom(0)))
	})
}

func TestCentroid(t *testing.T) {
	t.Run("MeanOfCoords", func(t *testing.T) {
		line := buildLine(t, [2]float64{0, 0}, [2]float64{2, 4}, [2]float64{4, 2})
		c, ok := Centroid(line.Geom(0))
		require.True(t, ok)
		assert.InDelta(t, 2.0, c.X, 1e-12)
		assert.InDelta(t, 2.0, c.Y, 1e-12)
	})

	t.Run("EmptyIsFalse", func(t *testing.T) {
		b := NewLineStringBuilder(XY)
		b.BeginLine()
		b.EndLine(true)
		arr, err := b.Finish()
		require.NoError(t, err)
		_, ok := Centroid(arr.Geom(0))
		assert.False(t, ok)
	})

	t.Run("NullIsFalse", func(t *testing.T) {
		b := NewPointBuilder(XY)
		b.PushNull()
		arr, err := b.Finish()
		require.NoError(t, err)
		_, ok := Centroid(arr.Geom(0))
		assert.False(t, ok)
	})
}

func TestCoordSeq(t *testing.T) {
	line := buildLine(t, [2]float64{0, 0}, [2]float64{1, 1}, [2]float64{2, 2})
	seq := line.Geom(0).Coords()
	assert.Equal(t, 3, seq.Len())

	var got []buffer.Coord
	for c, ok := seq.Next(); ok; c, ok = seq.Next() {
		got = append(got, c)
	}
	assert.Len(t, got, 3)
	assert.Equal(t, buffer.Coord{X: 2, Y: 2}, got[2])

	_, ok := seq.Next()
	assert.False(t, ok, "exhausted sequence stays exhausted")
	assert.Equal(t, 3, seq.Len(), "Len is position independent")

	seq.Reset()
	c, ok := seq.Next()
	require.True(t, ok)
	assert.Equal(t, buffer.Coord{X: 0, Y: 0}, c)

	var zero CoordSeq
	_, ok = zero.Next()
	assert.False(t, ok)
	assert.Zero(t, zero.Len())
}
