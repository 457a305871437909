// Copyright 2026 The geocol Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package geocol

import (
	"github.com/spatialbuf/geocol/buffer"
)

// builderState tracks the nesting phase of an array builder. Builders
// are explicit state machines: structural calls made in the wrong
// phase panic, and a builder abandoned mid-geometry fails at Finish.
type builderState uint8

const (
	stateRow  builderState = iota // between geometries
	stateGeom                     // inside a geometry
	statePart                     // inside a part of a multi geometry
	stateRing                     // inside a ring
	stateDone                     // after Finish
)

// A BuilderOption adjusts builder validation behavior.
type BuilderOption func(*builderOptions)

type builderOptions struct {
	validateRings bool
}

// WithRingValidation enables closed-ring validation at freeze time:
// every ring must have at least 4 coordinates and identical first and
// last coordinates. The default is permissive.
func WithRingValidation() BuilderOption {
	return func(o *builderOptions) {
		o.validateRings = true
	}
}

func applyOptions(opts []BuilderOption) builderOptions {
	var o builderOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// validAt reads a validity bit from an optional bitmap. A nil bitmap
// means all rows valid.
func validAt(v *buffer.Bitmap, i int) bool {
	return v == nil || v.Get(i)
}

// nullsIn counts null rows in the window [offset, offset+length) of
// an optional bitmap.
func nullsIn(v *buffer.Bitmap, offset, length int) int {
	if v == nil {
		return 0
	}
	return length - v.Slice(offset, length).CountValid()
}

// sliceValidity produces the window view of an optional bitmap.
func sliceValidity(v *buffer.Bitmap, offset, length int) *buffer.Bitmap {
	if v == nil {
		return nil
	}
	return v.Slice(offset, length)
}

// checkValidity validates that an optional bitmap covers n rows.
func checkValidity(v *buffer.Bitmap, n int) error {
	if v != nil && v.Len() < n {
		return buffer.Invalidf("validity bitmap covers %d rows, array has %d", v.Len(), n)
	}
	return nil
}

// validateClosedRings checks the opt-in closed-ring invariant over a
// ring offsets buffer: at least 4 coordinates per ring, first equal
// to last.
func validateClosedRings(coords buffer.CoordBuffer, rings buffer.Offsets) error {
	for r := 0; r < rings.Len(); r++ {
		start, end := rings.Range(r)
		n := int(end - start)
		if n == 0 {
			continue // ring of a null row
		}
		if n < 4 {
			return buffer.Invalidf("ring %d has %d coordinates, closed rings need at least 4", r, n)
		}
		if coords.Get(int(start)) != coords.Get(int(end)-1) {
			return buffer.Invalidf("ring %d is not closed", r)
		}
	}
	return nil
}
