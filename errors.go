// Copyright 2026 The geocol Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package geocol

import (
	"errors"
	"fmt"

	"github.com/spatialbuf/geocol/buffer"
)

// ErrNoEngine is returned when an exact-predicate operation is
// requested without an injected geometry Engine. Callers choose
// between falling back to bounding-box semantics and aborting.
var ErrNoEngine = textErr("no geometry engine capability")

// A ValidationError indicates that an array failed its structural
// invariants at freeze or construction time. It is the same type the
// buffer package produces, so one errors.As target covers both.
type ValidationError = buffer.ValidationError

const packageName = "geocol: "

func textErr(text string) error {
	return errors.New(packageName + text)
}

func fmtErr(format string, a ...interface{}) error {
	return fmt.Errorf(packageName+format, a...)
}

func wrapErr(text string, err error, a ...interface{}) error {
	return fmt.Errorf(packageName+text+": %w", append(a, err)...)
}

func textPanic(text string) {
	panic(packageName + text)
}

func fmtPanic(format string, a ...interface{}) {
	panic(fmt.Sprintf(packageName+format, a...))
}

// boundsCheck panics if row index i is outside [0, n). Out-of-bounds
// access is a caller programming error, not a recoverable condition.
func boundsCheck(i, n int) {
	if i < 0 || i >= n {
		fmtPanic("row index %d out of bounds [0,%d)", i, n)
	}
}

// sliceCheck panics if the slice range [offset, offset+length) is
// outside [0, n).
func sliceCheck(offset, length, n int) {
	if offset < 0 || length < 0 || offset+length > n {
		fmtPanic("slice [%d,%d) out of bounds [0,%d)", offset, offset+length, n)
	}
}
