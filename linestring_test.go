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

func TestLineStringBuilder(t *testing.T) {
	t.Run("RoundTrip", func(t *testing.T) {
		b := NewLineStringBuilder(XY)
		b.BeginLine()
		for i := 0; i < 5; i++ {
			b.Push(float64(i), float64(i))
		}
		b.EndLine(true)
		arr, err := b.Finish()
		require.NoError(t, err)

		assert.Equal(t, LineString, arr.Type())
		assert.Equal(t, 1, arr.Len())
		assert.Equal(t, []int32{0, 5}, arr.GeomOffsets().Values())

		g := arr.Geom(0)
		assert.Equal(t, 5, g.NumCoords())
		assert.Equal(t, buffer.Coord{X: 4, Y: 4}, g.Coord(4))
	})

	t.Run("EmptyAndNullRows", func(t *testing.T) {
		b := NewLineStringBuilder(XY)
		b.BeginLine()
		b.EndLine(true) // valid but empty
		b.PushNull()
		arr, err := b.Finish()
		require.NoError(t, err)

		assert.Equal(t, 2, arr.Len())
		assert.Equal(t, 1, arr.NullCount())
		assert.True(t, arr.IsValid(0))
		assert.Equal(t, 0, arr.Geom(0).NumCoords())
		assert.False(t, arr.IsValid(1))
	})

	t.Run("UnterminatedRowFails", func(t *testing.T) {
		b := NewLineStringBuilder(XY)
		b.BeginLine()
		b.Push(1, 1)
		_, err := b.Finish()
		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
	})

	t.Run("OutOfOrderPanics", func(t *testing.T) {
		b := NewLineStringBuilder(XY)
		assert.Panics(t, func() { b.Push(1, 1) }, "Push before BeginLine")
		b.BeginLine()
		assert.Panics(t, func() { b.BeginLine() }, "nested BeginLine")
		assert.Panics(t, func() { b.PushNull() }, "PushNull inside an open row")
	})
}

func TestLineStringSliceOffsets(t *testing.T) {
	b := NewLineStringBuilder(XY)
	lengths := []int{2, 3, 4}
	v := 0.0
	for _, n := range lengths {
		b.BeginLine()
		for i := 0; i < n; i++ {
			b.Push(v, v)
			v++
		}
		b.EndLine(true)
	}
	arr, err := b.Finish()
	require.NoError(t, err)

	s := arr.Slice(1, 2).(*LineStringArray)
	assert.Equal(t, 2, s.Len())

	// Offsets stay absolute in the sliced view: row 0 of the view still
	// addresses coordinates 2..4 of the shared buffer.
	assert.Equal(t, []int32{2, 5, 9}, s.GeomOffsets().Values())
	g := s.Geom(0)
	assert.Equal(t, 3, g.NumCoords())
	assert.Equal(t, buffer.Coord{X: 2, Y: 2}, g.Coord(0))

	// Geometry views resolve identically through array and slice.
	assert.Equal(t, arr.Geom(1).Coord(0), s.Geom(0).Coord(0))
	assert.Equal(t, arr.Geom(2).NumCoords(), s.Geom(1).NumCoords())
}

func TestNewLineStringArray(t *testing.T) {
	coords, err := buffer.NewInterleaved([]float64{0, 0, 1, 1, 2, 2}, 2)
	require.NoError(t, err)

	t.Run("Valid", func(t *testing.T) {
		offsets, err := buffer.NewOffsets([]int32{0, 3})
		require.NoError(t, err)
		arr, err := NewLineStringArray(coords, offsets, nil)
		require.NoError(t, err)
		assert.Equal(t, 1, arr.Len())
	})

	t.Run("OffsetsPastCoords", func(t *testing.T) {
		offsets, err := buffer.NewOffsets([]int32{0, 4})
		require.NoError(t, err)
		_, err = NewLineStringArray(coords, offsets, nil)
		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
	})
}
