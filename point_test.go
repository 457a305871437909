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

func TestPointBuilder(t *testing.T) {
	t.Run("RoundTrip", func(t *testing.T) {
		b := NewPointBuilder(XY)
		b.Push(1, 2)
		b.PushNull()
		b.Push(3, 4)
		arr, err := b.Finish()
		require.NoError(t, err)

		assert.Equal(t, Point, arr.Type())
		assert.Equal(t, XY, arr.Dimension())
		assert.Equal(t, 3, arr.Len())
		assert.Equal(t, 1, arr.NullCount())
		assert.True(t, arr.IsValid(0))
		assert.False(t, arr.IsValid(1))
		assert.Equal(t, buffer.Coord{X: 3, Y: 4}, arr.Get(2))
	})

	t.Run("ThreeDimensional", func(t *testing.T) {
		b := NewPointBuilder(XYZ)
		b.PushZ(1, 2, 3)
		arr, err := b.Finish()
		require.NoError(t, err)
		assert.Equal(t, XYZ, arr.Dimension())
		assert.Equal(t, buffer.Coord{X: 1, Y: 2, Z: 3}, arr.Get(0))
	})

	t.Run("AllValidNoBitmap", func(t *testing.T) {
		b := NewPointBuilder(XY)
		b.Push(1, 1)
		b.Push(2, 2)
		arr, err := b.Finish()
		require.NoError(t, err)
		assert.Nil(t, arr.Validity())
		assert.Equal(t, 0, arr.NullCount())
	})

	t.Run("ConsumedByFinish", func(t *testing.T) {
		b := NewPointBuilder(XY)
		b.Push(1, 1)
		_, err := b.Finish()
		require.NoError(t, err)
		assert.Panics(t, func() { b.Push(2, 2) })
	})
}

func TestPointArrayGeom(t *testing.T) {
	b := NewPointBuilder(XY)
	b.Push(7, 8)
	b.PushNull()
	arr, err := b.Finish()
	require.NoError(t, err)

	g := arr.Geom(0)
	assert.Equal(t, Point, g.Type())
	assert.True(t, g.IsValid())
	assert.Equal(t, 1, g.NumCoords())
	assert.Equal(t, 1, g.NumParts())
	assert.Equal(t, buffer.Coord{X: 7, Y: 8}, g.Coord(0))

	null := arr.Geom(1)
	assert.False(t, null.IsValid())
	assert.Equal(t, 0, null.NumCoords())
	assert.Equal(t, 0, null.NumParts())
}

func TestPointArraySlice(t *testing.T) {
	b := NewPointBuilder(XY)
	for i := 0; i < 5; i++ {
		b.Push(float64(i), float64(i))
	}
	arr, err := b.Finish()
	require.NoError(t, err)

	s := arr.Slice(1, 3)
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, buffer.Coord{X: 1, Y: 1}, s.(*PointArray).Get(0))
	assert.Equal(t, buffer.Coord{X: 3, Y: 3}, s.(*PointArray).Get(2))
	assert.Panics(t, func() { s.Geom(3) })

	// Slicing composes and never copies row data.
	ss := s.Slice(2, 1)
	assert.Equal(t, buffer.Coord{X: 3, Y: 3}, ss.(*PointArray).Get(0))

	// The source is untouched.
	assert.Equal(t, 5, arr.Len())
	assert.Panics(t, func() { arr.Slice(4, 2) })
}

func TestPointArraySliceValidity(t *testing.T) {
	b := NewPointBuilder(XY)
	b.Push(0, 0)
	b.PushNull()
	b.Push(2, 2)
	b.PushNull()
	arr, err := b.Finish()
	require.NoError(t, err)

	s := arr.Slice(1, 2)
	assert.False(t, s.IsValid(0))
	assert.True(t, s.IsValid(1))
	assert.Equal(t, 1, s.NullCount())
}

func TestNewPointArray(t *testing.T) {
	cb, err := buffer.NewInterleaved([]float64{1, 2, 3, 4}, 2)
	require.NoError(t, err)

	t.Run("NoBitmap", func(t *testing.T) {
		arr, err := NewPointArray(cb, nil)
		require.NoError(t, err)
		assert.Equal(t, 2, arr.Len())
		assert.True(t, arr.IsValid(1))
	})

	t.Run("BitmapTooShort", func(t *testing.T) {
		bm, err := buffer.NewBitmap([]byte{0x01}, 1)
		require.NoError(t, err)
		_, err = NewPointArray(cb, bm)
		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
	})

	t.Run("SeparatedLayout", func(t *testing.T) {
		sep, err := buffer.NewSeparated([]float64{1, 3}, []float64{2, 4})
		require.NoError(t, err)
		arr, err := NewPointArray(sep, nil)
		require.NoError(t, err)
		assert.Equal(t, buffer.Coord{X: 3, Y: 4}, arr.Get(1))
	})
}
