// Copyright 2026 The geocol Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package buffer

import (
	"fmt"
)

const packageName = "buffer: "

// A ValidationError indicates that a buffer or array failed its
// structural invariants at freeze or construction time. The offending
// value is not produced.
type ValidationError struct {
	msg string
}

// Invalidf creates a ValidationError from a format string.
func Invalidf(format string, a ...interface{}) *ValidationError {
	return &ValidationError{msg: fmt.Sprintf(format, a...)}
}

func (e *ValidationError) Error() string {
	return "invalid: " + e.msg
}

func textPanic(text string) {
	panic(packageName + text)
}

func fmtPanic(format string, a ...interface{}) {
	panic(fmt.Sprintf(packageName+format, a...))
}
