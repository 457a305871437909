// Copyright 2026 The geocol Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package buffer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOffsets(t *testing.T) {
	testCases := []struct {
		name string
		v    []int32
		ok   bool
	}{
		{"TwoRanges", []int32{0, 5, 5}, true},
		{"JustZero", []int32{0}, true},
		{"Empty", nil, false},
		{"NonZeroStart", []int32{1, 2}, false},
		{"Decreasing", []int32{0, 4, 3}, false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			o, err := NewOffsets(tc.v)
			if !tc.ok {
				var ve *ValidationError
				require.ErrorAs(t, err, &ve)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, len(tc.v)-1, o.Len())
		})
	}
}

func TestOffsetsAccess(t *testing.T) {
	o, err := NewOffsets([]int32{0, 2, 2, 7})
	require.NoError(t, err)

	assert.Equal(t, 3, o.Len())
	assert.Equal(t, int32(0), o.Start(0))
	assert.Equal(t, int32(7), o.Start(3), "i == Len() yields the end offset")
	assert.Panics(t, func() { o.Start(4) })

	start, end := o.Range(1)
	assert.Equal(t, int32(2), start)
	assert.Equal(t, int32(2), end, "empty middle range")

	assert.Equal(t, []int32{2, 2, 7}, o.Window(1, 3))
	assert.Panics(t, func() { o.Range(3) })
}

func TestOffsetsSlice(t *testing.T) {
	o, err := NewOffsets([]int32{0, 3, 4, 9, 9})
	require.NoError(t, err)

	s := o.Slice(1, 2)
	assert.Equal(t, 2, s.Len())

	// Values stay absolute: the view starts mid-buffer, so its first
	// offset is the original child position, not zero.
	start, end := s.Range(0)
	assert.Equal(t, int32(3), start)
	assert.Equal(t, int32(4), end)
	assert.Equal(t, []int32{3, 4, 9}, s.Values())

	assert.Panics(t, func() { o.Slice(2, 3) })
}

func TestOffsetsBuilder(t *testing.T) {
	t.Run("PushLength", func(t *testing.T) {
		b := NewOffsetsBuilder()
		b.PushLength(5)
		b.PushLength(0)
		b.PushLength(3)
		assert.Equal(t, 3, b.Len())
		assert.Equal(t, int32(8), b.End())
		o, err := b.Finish()
		require.NoError(t, err)
		assert.Equal(t, []int32{0, 5, 5, 8}, o.Values())
		assert.Panics(t, func() { b.PushLength(1) }, "builder is consumed by Finish")
	})

	t.Run("EmptyBuilder", func(t *testing.T) {
		b := NewOffsetsBuilder()
		o, err := b.Finish()
		require.NoError(t, err)
		assert.Equal(t, 0, o.Len())
		assert.Equal(t, []int32{0}, o.Values())
	})

	t.Run("NegativeLengthPanics", func(t *testing.T) {
		b := NewOffsetsBuilder()
		assert.Panics(t, func() { b.PushLength(-1) })
	})
}
