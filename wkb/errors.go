// Copyright 2026 The geocol Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package wkb

import (
	"errors"
	"fmt"
)

const packageName = "wkb: "

func textErr(text string) error {
	return errors.New(packageName + text)
}

func fmtErr(format string, a ...interface{}) error {
	return fmt.Errorf(packageName+format, a...)
}

// A FormatError reports malformed or truncated Well-Known Binary
// input. Offset is the byte offset of the fault within the failing
// payload; Row is the failing row index when decoding an array, or
// -1 for a single payload or stream.
type FormatError struct {
	Offset int64
	Row    int
	msg    string
}

func formatErr(offset int, format string, a ...interface{}) *FormatError {
	return &FormatError{Offset: int64(offset), Row: -1, msg: fmt.Sprintf(format, a...)}
}

// atRow stamps a row index onto a FormatError bubbling out of a
// row-level decode; other errors pass through.
func atRow(err error, row int) error {
	if fe, ok := err.(*FormatError); ok {
		fe.Row = row
	}
	return err
}

func (e *FormatError) Error() string {
	if e.Row >= 0 {
		return fmt.Sprintf(packageName+"%s (row %d, byte %d)", e.msg, e.Row, e.Offset)
	}
	return fmt.Sprintf(packageName+"%s (byte %d)", e.msg, e.Offset)
}

func textPanic(text string) {
	panic(packageName + text)
}
