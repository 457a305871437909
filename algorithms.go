// Copyright 2026 The geocol Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package geocol

import (
	"math"

	"github.com/spatialbuf/geocol/buffer"
)

// Generic algorithms written once against the Array and Geom
// capability set. They dispatch once per geometry and then iterate
// coordinates directly against the underlying buffers.

// BoundsOf computes the axis-aligned bounding box of one geometry in
// the XY plane. An empty or null geometry yields the inverted empty
// box (+Inf minimums, -Inf maximums), which intersects nothing.
func BoundsOf(g Geom) (minX, minY, maxX, maxY float64) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	seq := g.Coords()
	for c, ok := seq.Next(); ok; c, ok = seq.Next() {
		if c.X < minX {
			minX = c.X
		}
		if c.Y < minY {
			minY = c.Y
		}
		if c.X > maxX {
			maxX = c.X
		}
		if c.Y > maxY {
			maxY = c.Y
		}
	}
	return
}

// Bounds computes the XY bounding box around all valid rows of an
// array. An array with no coordinates yields the inverted empty box.
func Bounds(arr Array) (minX, minY, maxX, maxY float64) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for i := 0; i < arr.Len(); i++ {
		if !arr.IsValid(i) {
			continue
		}
		x0, y0, x1, y1 := BoundsOf(arr.Geom(i))
		if x0 < minX {
			minX = x0
		}
		if y0 < minY {
			minY = y0
		}
		if x1 > maxX {
			maxX = x1
		}
		if y1 > maxY {
			maxY = y1
		}
	}
	return
}

// Length computes the planar length of a geometry: zero for points,
// the sum of segment lengths for linestrings, the perimeter for
// polygons, and the sum over parts for multi geometries. Segments
// never span part or ring boundaries. 3D geometries use the full
// euclidean segment length.
func Length(g Geom) float64 {
	if !g.IsValid() {
		return 0
	}
	switch g.Type() {
	case Point, MultiPoint:
		return 0
	case LineString:
		return pathLength(g)
	case Polygon:
		sum := 0.0
		for r := 0; r < g.NumRings(); r++ {
			sum += pathLength(g.Ring(r))
		}
		return sum
	case MultiLineString, MultiPolygon:
		sum := 0.0
		for j := 0; j < g.NumParts(); j++ {
			sum += Length(g.Part(j))
		}
		return sum
	default:
		return 0
	}
}

func pathLength(g Geom) float64 {
	seq := g.Coords()
	sum := 0.0
	prev, ok := seq.Next()
	if !ok {
		return 0
	}
	for {
		c, ok := seq.Next()
		if !ok {
			return sum
		}
		dx, dy, dz := c.X-prev.X, c.Y-prev.Y, c.Z-prev.Z
		sum += math.Sqrt(dx*dx + dy*dy + dz*dz)
		prev = c
	}
}

// Centroid computes the arithmetic mean of a geometry's coordinates.
// This is the coordinate centroid, not the area-weighted centroid;
// exact centroids of areal geometries need an injected Engine. The
// second return is false for an empty or null geometry.
func Centroid(g Geom) (buffer.Coord, bool) {
	seq := g.Coords()
	n := seq.Len()
	if n == 0 {
		return buffer.Coord{}, false
	}
	var sx, sy, sz float64
	for c, ok := seq.Next(); ok; c, ok = seq.Next() {
		sx += c.X
		sy += c.Y
		sz += c.Z
	}
	return buffer.Coord{X: sx / float64(n), Y: sy / float64(n), Z: sz / float64(n)}, true
}
