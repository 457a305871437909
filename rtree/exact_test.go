// Copyright 2026 The geocol Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package rtree

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spatialbuf/geocol"
)

// pointEngine is a minimal exact-predicate engine over point
// geometries, enough to drive the post-filtering paths.
type pointEngine struct {
	err error
}

func (e *pointEngine) Intersects(a, b geocol.Geom) (bool, error) {
	if e.err != nil {
		return false, e.err
	}
	d, _ := e.Distance(a, b)
	return d == 0, nil
}

func (e *pointEngine) Contains(a, b geocol.Geom) (bool, error) {
	return e.Intersects(a, b)
}

func (e *pointEngine) Distance(a, b geocol.Geom) (float64, error) {
	if e.err != nil {
		return 0, e.err
	}
	ca, cb := a.Coord(0), b.Coord(0)
	return math.Hypot(ca.X-cb.X, ca.Y-cb.Y), nil
}

func TestSearchExact(t *testing.T) {
	arr := pointChunk(t, [2]float64{0, 0}, [2]float64{1, 1}, [2]float64{5, 5})
	prt, err := Index(arr, DefaultNodeSize)
	require.NoError(t, err)

	query := pointChunk(t, [2]float64{1, 1}).Geom(0)

	t.Run("PostFiltersCandidates", func(t *testing.T) {
		hits, err := SearchExact(prt, arr, query, &pointEngine{})
		require.NoError(t, err)
		// The box search over-approximates to every point touching the
		// query's degenerate box; only the coincident point survives.
		require.Len(t, hits, 1)
		assert.Equal(t, int64(1), hits[0].Index)
	})

	t.Run("NoEngine", func(t *testing.T) {
		_, err := SearchExact(prt, arr, query, nil)
		require.ErrorIs(t, err, geocol.ErrNoEngine)
	})

	t.Run("EngineErrorPropagates", func(t *testing.T) {
		boom := errors.New("boom")
		_, err := SearchExact(prt, arr, query, &pointEngine{err: boom})
		require.ErrorIs(t, err, boom)
	})
}

func TestNearestExact(t *testing.T) {
	arr := pointChunk(t,
		[2]float64{0, 0}, [2]float64{2, 0}, [2]float64{10, 0}, [2]float64{3, 4})
	prt, err := Index(arr, DefaultNodeSize)
	require.NoError(t, err)

	query := pointChunk(t, [2]float64{0, 0}).Geom(0)

	t.Run("ExactDistancesAscending", func(t *testing.T) {
		ns, err := NearestExact(prt, arr, query, 3, &pointEngine{})
		require.NoError(t, err)
		require.Len(t, ns, 3)
		assert.Equal(t, int64(0), ns[0].Index)
		assert.Zero(t, ns[0].Dist)
		assert.Equal(t, int64(1), ns[1].Index)
		assert.Equal(t, 2.0, ns[1].Dist)
		assert.Equal(t, int64(3), ns[2].Index)
		assert.Equal(t, 5.0, ns[2].Dist)
	})

	t.Run("KLargerThanTree", func(t *testing.T) {
		ns, err := NearestExact(prt, arr, query, 10, &pointEngine{})
		require.NoError(t, err)
		assert.Len(t, ns, 4)
	})

	t.Run("NoEngine", func(t *testing.T) {
		_, err := NearestExact(prt, arr, query, 1, nil)
		require.ErrorIs(t, err, geocol.ErrNoEngine)
	})

	t.Run("NonPositiveKPanics", func(t *testing.T) {
		assert.Panics(t, func() { NearestExact(prt, arr, query, 0, &pointEngine{}) })
	})
}
