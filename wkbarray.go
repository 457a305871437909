// Copyright 2026 The geocol Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package geocol

import (
	"github.com/spatialbuf/geocol/buffer"
)

// A WKBArray stores each row as an undifferentiated Well-Known Binary
// byte span: an offsets buffer delimits each row's bytes within one
// shared raw buffer. It is the escape hatch for geometries not
// classified into the typed variants and the direct in-memory form of
// interchange payloads prior to decoding; use the wkb package to
// decode it into typed arrays.
type WKBArray struct {
	dim      Dimension
	data     []byte
	offsets  buffer.Offsets
	validity *buffer.Bitmap
	offset   int
	length   int
}

var _ Array = (*WKBArray)(nil)

// NewWKBArray creates an opaque-binary array over a raw byte buffer
// and a row offsets buffer. The declared dimensionality is read from
// the first decodable row and defaults to XY. The array shares the
// buffers without copying.
func NewWKBArray(data []byte, offsets buffer.Offsets, validity *buffer.Bitmap) (*WKBArray, error) {
	n := offsets.Len()
	if int(offsets.Start(n)) > len(data) {
		return nil, buffer.Invalidf("row offsets end at %d, raw buffer has %d bytes", offsets.Start(n), len(data))
	}
	if err := checkValidity(validity, n); err != nil {
		return nil, err
	}
	a := &WKBArray{
		dim:      XY,
		data:     data,
		offsets:  offsets,
		validity: validity,
		length:   n,
	}
	for i := 0; i < n; i++ {
		if !validAt(validity, i) {
			continue
		}
		if g, err := a.Scan(i); err == nil {
			a.dim = g.Dimension()
		}
		break
	}
	return a, nil
}

// Type returns WKB.
func (a *WKBArray) Type() GeomType {
	return WKB
}

// Dimension returns the dimensionality declared by the array's rows.
func (a *WKBArray) Dimension() Dimension {
	return a.dim
}

// Len returns the row count.
func (a *WKBArray) Len() int {
	return a.length
}

// IsValid reports whether row i is non-null.
func (a *WKBArray) IsValid(i int) bool {
	boundsCheck(i, a.length)
	return validAt(a.validity, a.offset+i)
}

// NullCount returns the number of null rows.
func (a *WKBArray) NullCount() int {
	return nullsIn(a.validity, a.offset, a.length)
}

// Get returns the raw Well-Known Binary bytes of row i, a window into
// the shared buffer.
func (a *WKBArray) Get(i int) []byte {
	boundsCheck(i, a.length)
	start, end := a.offsets.Range(a.offset + i)
	return a.data[start:end]
}

// Scan decodes row i into a geometry view. Unlike the typed arrays
// this materializes small per-geometry buffers: opaque rows have no
// structural offsets to borrow from.
func (a *WKBArray) Scan(i int) (Geom, error) {
	boundsCheck(i, a.length)
	if !validAt(a.validity, a.offset+i) {
		return Geom{dim: a.dim}, nil
	}
	g, _, err := scanWKB(a.Get(i))
	return g, err
}

// Geom returns a view of row i. Panics if the row's bytes are
// malformed; use Scan for recoverable decoding, or decode the whole
// array up front with the wkb package.
func (a *WKBArray) Geom(i int) Geom {
	g, err := a.Scan(i)
	if err != nil {
		fmtPanic("malformed WKB in row %d: %v", i, err)
	}
	return g
}

// Slice returns a zero-copy view of length rows starting at offset.
func (a *WKBArray) Slice(offset, length int) Array {
	sliceCheck(offset, length, a.length)
	s := *a
	s.offset += offset
	s.length = length
	return &s
}

// Bytes returns the full raw buffer backing the array.
func (a *WKBArray) Bytes() []byte {
	return a.data
}

// Offsets returns the row offsets window backing the view.
func (a *WKBArray) Offsets() buffer.Offsets {
	return a.offsets.Slice(a.offset, a.length)
}

// Validity returns the validity bitmap window backing the view, or
// nil if all rows are valid.
func (a *WKBArray) Validity() *buffer.Bitmap {
	return sliceValidity(a.validity, a.offset, a.length)
}

// A WKBBuilder accumulates raw Well-Known Binary rows into a
// WKBArray. Bytes are copied in; the builder does not retain pushed
// slices.
type WKBBuilder struct {
	data     []byte
	offsets  *buffer.OffsetsBuilder
	validity *buffer.BitmapBuilder
	done     bool
}

// NewWKBBuilder creates an empty opaque-binary builder.
func NewWKBBuilder() *WKBBuilder {
	return &WKBBuilder{
		offsets:  buffer.NewOffsetsBuilder(),
		validity: buffer.NewBitmapBuilder(),
	}
}

func (b *WKBBuilder) sanityCheck() {
	if b.done {
		textPanic("WKB builder used after Finish")
	}
}

// Len returns the number of rows appended so far.
func (b *WKBBuilder) Len() int {
	return b.offsets.Len()
}

// Push appends one row of raw Well-Known Binary bytes.
func (b *WKBBuilder) Push(wkb []byte) {
	b.sanityCheck()
	b.data = append(b.data, wkb...)
	b.offsets.PushLength(len(wkb))
	b.validity.Append(true)
}

// PushNull appends an empty null row.
func (b *WKBBuilder) PushNull() {
	b.sanityCheck()
	b.offsets.PushLength(0)
	b.validity.Append(false)
}

// Finish freezes the accumulated rows into an immutable WKBArray and
// consumes the builder.
func (b *WKBBuilder) Finish() (*WKBArray, error) {
	b.sanityCheck()
	b.done = true
	offsets, err := b.offsets.Finish()
	if err != nil {
		return nil, err
	}
	return NewWKBArray(b.data, offsets, b.validity.Finish())
}
