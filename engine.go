// Copyright 2026 The geocol Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package geocol

// An Engine is an externally supplied capability exposing exact
// geometric predicates over geometry views. The core never implements
// these itself: bounding-box index queries over-approximate, and an
// Engine is what a caller injects to post-filter the candidates down
// to exact results. Operations that need an Engine and do not have
// one fail with ErrNoEngine rather than degrading silently.
//
// Implementations read the views through the Geom capability set and
// must not retain them beyond the call.
type Engine interface {
	// Intersects reports whether the two geometries share any point.
	Intersects(a, b Geom) (bool, error)
	// Contains reports whether geometry a wholly contains geometry b.
	Contains(a, b Geom) (bool, error)
	// Distance returns the minimum planar distance between the two
	// geometries.
	Distance(a, b Geom) (float64, error)
}
