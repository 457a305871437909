// Copyright 2026 The geocol Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package buffer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBitmap(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		// 0b00000101: rows 0 and 2 valid, LSB-first.
		b, err := NewBitmap([]byte{0x05}, 3)
		require.NoError(t, err)
		assert.Equal(t, 3, b.Len())
		assert.True(t, b.Get(0))
		assert.False(t, b.Get(1))
		assert.True(t, b.Get(2))
		assert.Equal(t, 2, b.CountValid())
		assert.Panics(t, func() { b.Get(3) })
	})

	t.Run("TooShort", func(t *testing.T) {
		_, err := NewBitmap([]byte{0xFF}, 9)
		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
	})

	t.Run("NegativeLen", func(t *testing.T) {
		_, err := NewBitmap(nil, -1)
		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
	})
}

func TestBitmapSlice(t *testing.T) {
	// Bits 0..9: 1,0,1,1,0,0,1,0,1,1
	b, err := NewBitmap([]byte{0x4D, 0x03}, 10)
	require.NoError(t, err)

	s := b.Slice(2, 5) // bits 2..6: 1,1,0,0,1
	assert.Equal(t, 5, s.Len())
	assert.True(t, s.Get(0))
	assert.True(t, s.Get(1))
	assert.False(t, s.Get(2))
	assert.False(t, s.Get(3))
	assert.True(t, s.Get(4))
	assert.Equal(t, 3, s.CountValid())

	// Bytes re-bases the view to bit offset zero.
	assert.Equal(t, []byte{0x13}, s.Bytes())

	assert.Panics(t, func() { b.Slice(8, 3) })
}

func TestBitmapBuilder(t *testing.T) {
	t.Run("MixedBits", func(t *testing.T) {
		b := NewBitmapBuilder()
		b.Append(true)
		b.Append(false)
		b.AppendRun(true, 7)
		assert.Equal(t, 9, b.Len())
		assert.Equal(t, 1, b.NullCount())
		bm := b.Finish()
		require.NotNil(t, bm)
		assert.Equal(t, 9, bm.Len())
		assert.False(t, bm.Get(1))
		assert.Equal(t, 8, bm.CountValid())
		assert.Panics(t, func() { b.Append(true) }, "builder is consumed by Finish")
	})

	t.Run("AllValidElided", func(t *testing.T) {
		b := NewBitmapBuilder()
		b.AppendRun(true, 100)
		assert.Nil(t, b.Finish(), "no nulls means no bitmap")
	})

	t.Run("EmptyElided", func(t *testing.T) {
		assert.Nil(t, NewBitmapBuilder().Finish())
	})

	t.Run("NegativeRunPanics", func(t *testing.T) {
		b := NewBitmapBuilder()
		assert.Panics(t, func() { b.AppendRun(true, -1) })
	})
}
