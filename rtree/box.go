// Copyright 2026 The geocol Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package rtree

import (
	"fmt"
	"math"
)

// A Box is an axis-aligned bounding rectangle in the XY plane.
type Box struct {
	XMin float64
	YMin float64
	XMax float64
	YMax float64
}

// EmptyBox is the inverted empty box: its minimums are positive
// infinity and its maximums are negative infinity, so it intersects
// nothing and expanding it by any box yields that box.
var EmptyBox = Box{
	XMin: math.Inf(1),
	YMin: math.Inf(1),
	XMax: math.Inf(-1),
	YMax: math.Inf(-1),
}

// String returns a compact bracketed representation of the box.
func (b Box) String() string {
	return fmt.Sprintf("[%.8g,%.8g,%.8g,%.8g]", b.XMin, b.YMin, b.XMax, b.YMax)
}

// Width returns the X extent of the box.
func (b *Box) Width() float64 {
	return b.XMax - b.XMin
}

// Height returns the Y extent of the box.
func (b *Box) Height() float64 {
	return b.YMax - b.YMin
}

func (b *Box) midX() float64 {
	return (b.XMin + b.XMax) / 2
}

func (b *Box) midY() float64 {
	return (b.YMin + b.YMax) / 2
}

// Expand grows b to cover c.
func (b *Box) Expand(c *Box) {
	if c.XMin < b.XMin {
		b.XMin = c.XMin
	}
	if c.YMin < b.YMin {
		b.YMin = c.YMin
	}
	if c.XMax > b.XMax {
		b.XMax = c.XMax
	}
	if c.YMax > b.YMax {
		b.YMax = c.YMax
	}
}

// ExpandXY grows b to cover the point (x, y).
func (b *Box) ExpandXY(x, y float64) {
	if x < b.XMin {
		b.XMin = x
	}
	if y < b.YMin {
		b.YMin = y
	}
	if x > b.XMax {
		b.XMax = x
	}
	if y > b.YMax {
		b.YMax = y
	}
}

// Intersects reports whether b and o share any point, boundaries
// included.
func (b *Box) Intersects(o *Box) bool {
	if b.XMax < o.XMin {
		return false
	}
	if b.YMax < o.YMin {
		return false
	}
	if b.XMin > o.XMax {
		return false
	}
	if b.YMin > o.YMax {
		return false
	}
	return true
}

// Distance returns the minimum euclidean distance from the point
// (x, y) to the box, zero when the point lies inside it.
func (b *Box) Distance(x, y float64) float64 {
	var dx, dy float64
	if x < b.XMin {
		dx = b.XMin - x
	} else if x > b.XMax {
		dx = x - b.XMax
	}
	if y < b.YMin {
		dy = b.YMin - y
	} else if y > b.YMax {
		dy = y - b.YMax
	}
	return math.Sqrt(dx*dx + dy*dy)
}
