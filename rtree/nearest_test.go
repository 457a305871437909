// Copyright 2026 The geocol Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package rtree

import (
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spatialbuf/geocol"
)

func TestNearest(t *testing.T) {
	t.Run("OrderedByBoxDistance", func(t *testing.T) {
		b := geocol.NewPointBuilder(geocol.XY)
		b.Push(0, 0)
		b.Push(10, 0)
		b.Push(3, 0)
		b.Push(100, 100)
		arr, err := b.Finish()
		require.NoError(t, err)

		prt, err := Index(arr, DefaultNodeSize)
		require.NoError(t, err)

		ns := prt.Nearest(0, 0, 3)
		require.Len(t, ns, 3)
		assert.Equal(t, int64(0), ns[0].Index)
		assert.Zero(t, ns[0].Dist)
		assert.Equal(t, int64(2), ns[1].Index)
		assert.Equal(t, 3.0, ns[1].Dist)
		assert.Equal(t, int64(1), ns[2].Index)
		assert.Equal(t, 10.0, ns[2].Dist)
	})

	t.Run("TiesBreakByRowIndex", func(t *testing.T) {
		b := geocol.NewPointBuilder(geocol.XY)
		b.Push(5, 0)
		b.Push(-5, 0)
		b.Push(0, 5)
		arr, err := b.Finish()
		require.NoError(t, err)

		prt, err := Index(arr, DefaultNodeSize)
		require.NoError(t, err)

		ns := prt.Nearest(0, 0, 3)
		require.Len(t, ns, 3)
		assert.Equal(t, []int64{0, 1, 2}, []int64{ns[0].Index, ns[1].Index, ns[2].Index})
	})

	t.Run("TiesBreakAcrossNodes", func(t *testing.T) {
		// Identical boxes land in different leaf nodes, so at equal
		// distance the queue holds leaves alongside unexpanded subtrees.
		// The result must still come out in ascending row order.
		unit := Box{0, 0, 1, 1}
		prt, err := New([]Ref{
			{Box: unit, Index: 2},
			{Box: unit, Index: 0},
			{Box: unit, Index: 1},
		}, 2)
		require.NoError(t, err)

		ns := prt.Nearest(0.5, 0.5, 3)
		require.Len(t, ns, 3)
		assert.Equal(t, []int64{0, 1, 2}, []int64{ns[0].Index, ns[1].Index, ns[2].Index})
		for i := range ns {
			assert.Zero(t, ns[i].Dist, "neighbor %d", i)
		}
	})

	t.Run("KLargerThanTree", func(t *testing.T) {
		b := geocol.NewPointBuilder(geocol.XY)
		b.Push(1, 1)
		b.PushNull()
		arr, err := b.Finish()
		require.NoError(t, err)

		prt, err := Index(arr, DefaultNodeSize)
		require.NoError(t, err)

		ns := prt.Nearest(0, 0, 10)
		require.Len(t, ns, 1, "null rows never appear as neighbors")
		assert.Equal(t, int64(0), ns[0].Index)
	})

	t.Run("NonPositiveKPanics", func(t *testing.T) {
		prt, err := New([]Ref{{Box: Box{0, 0, 1, 1}}}, 16)
		require.NoError(t, err)
		assert.Panics(t, func() { prt.Nearest(0, 0, 0) })
	})

	t.Run("AgreesWithBruteForce", func(t *testing.T) {
		rng := rand.New(rand.NewSource(7))
		b := geocol.NewPointBuilder(geocol.XY)
		n := 200
		type pt struct{ x, y float64 }
		pts := make([]pt, n)
		for i := range pts {
			pts[i] = pt{rng.Float64() * 100, rng.Float64() * 100}
			b.Push(pts[i].x, pts[i].y)
		}
		arr, err := b.Finish()
		require.NoError(t, err)

		prt, err := Index(arr, 8)
		require.NoError(t, err)

		const k = 10
		qx, qy := 50.0, 50.0
		ns := prt.Nearest(qx, qy, k)
		require.Len(t, ns, k)

		dists := make([]float64, n)
		for i, p := range pts {
			dists[i] = math.Hypot(p.x-qx, p.y-qy)
		}
		sort.Float64s(dists)
		for i := 0; i < k; i++ {
			assert.InDelta(t, dists[i], ns[i].Dist, 1e-9, "neighbor %d", i)
		}
	})
}
