// Copyright 2026 The geocol Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package geocol

import (
	"github.com/RoaringBitmap/roaring/v2"

	"github.com/spatialbuf/geocol/buffer"
)

// A geomAppender is the internal builder capability used by the
// copying operations: every array builder can replay geometry views
// and nulls and freeze into an array.
type geomAppender interface {
	appendGeom(g Geom) error
	appendNull()
	finishArray() (Array, error)
}

// newBuilderFor creates a builder producing arrays of the given type
// and dimension. WKB has no view-replay builder; callers handle it on
// the raw byte path.
func newBuilderFor(t GeomType, dim Dimension) (geomAppender, error) {
	switch t {
	case Point:
		return NewPointBuilder(dim), nil
	case LineString:
		return NewLineStringBuilder(dim), nil
	case Polygon:
		return NewPolygonBuilder(dim), nil
	case MultiPoint:
		return NewMultiPointBuilder(dim), nil
	case MultiLineString:
		return NewMultiLineStringBuilder(dim), nil
	case MultiPolygon:
		return NewMultiPolygonBuilder(dim), nil
	case Mixed:
		return NewMixedBuilder(dim), nil
	default:
		return nil, buffer.Invalidf("no builder for %s arrays", t)
	}
}

// rowSource is the minimal row access shared by Array and
// ChunkedArray.
type rowSource interface {
	Type() GeomType
	Dimension() Dimension
	Len() int
	IsValid(i int) bool
	Geom(i int) Geom
}

// replay copies rows [from, to) of src into dst.
func replay(dst geomAppender, src rowSource, from, to int) error {
	for i := from; i < to; i++ {
		if !src.IsValid(i) {
			dst.appendNull()
			continue
		}
		if err := dst.appendGeom(src.Geom(i)); err != nil {
			return err
		}
	}
	return nil
}

// Concat merges one or more arrays of identical logical type into a
// single array backed by new, larger buffers. Geometry types and
// dimensionalities are never coerced: a mismatch is a
// ValidationError. Used to trade granular streaming for reduced
// per-call overhead before indexing.
func Concat(arrays ...Array) (Array, error) {
	if len(arrays) == 0 {
		return nil, buffer.Invalidf("concat needs at least one array")
	}
	typ, dim := arrays[0].Type(), arrays[0].Dimension()
	for j, a := range arrays {
		if a.Type() != typ {
			return nil, buffer.Invalidf("cannot concat %s array at position %d with %s arrays", a.Type(), j, typ)
		}
		if a.Dimension() != dim {
			return nil, buffer.Invalidf("cannot concat %s array at position %d with %s arrays", a.Dimension(), j, dim)
		}
	}
	if typ == WKB {
		b := NewWKBBuilder()
		for _, a := range arrays {
			w := a.(*WKBArray)
			for i := 0; i < w.Len(); i++ {
				if !w.IsValid(i) {
					b.PushNull()
				} else {
					b.Push(w.Get(i))
				}
			}
		}
		return b.Finish()
	}
	b, err := newBuilderFor(typ, dim)
	if err != nil {
		return nil, err
	}
	for _, a := range arrays {
		if err := replay(b, a, 0, a.Len()); err != nil {
			return nil, err
		}
	}
	return b.finishArray()
}

// Rechunk repartitions an array into a chunked array whose chunks,
// except possibly the last, each hold targetLen rows. All buffers are
// copied; the source is unchanged.
func Rechunk(arr Array, targetLen int) (*ChunkedArray, error) {
	return rechunk(arr, targetLen)
}

func rechunk(src rowSource, targetLen int) (*ChunkedArray, error) {
	if targetLen < 1 {
		return nil, buffer.Invalidf("rechunk target length must be positive, got %d", targetLen)
	}
	n := src.Len()
	numChunks := (n + targetLen - 1) / targetLen
	if numChunks == 0 {
		numChunks = 1 // an empty column still has one empty chunk
	}
	chunks := make([]Array, 0, numChunks)
	for start := 0; start == 0 || start < n; start += targetLen {
		end := start + targetLen
		if end > n {
			end = n
		}
		var (
			chunk Array
			err   error
		)
		if src.Type() == WKB {
			chunk, err = concatWKBRange(src, start, end)
		} else {
			var b geomAppender
			b, err = newBuilderFor(src.Type(), src.Dimension())
			if err == nil {
				if err = replay(b, src, start, end); err == nil {
					chunk, err = b.finishArray()
				}
			}
		}
		if err != nil {
			return nil, err
		}
		chunks = append(chunks, chunk)
	}
	return NewChunked(chunks...)
}

func concatWKBRange(src rowSource, from, to int) (Array, error) {
	b := NewWKBBuilder()
	for i := from; i < to; i++ {
		if !src.IsValid(i) {
			b.PushNull()
			continue
		}
		switch w := src.(type) {
		case *WKBArray:
			b.Push(w.Get(i))
		case *ChunkedArray:
			j, k := w.Resolve(i)
			b.Push(w.chunks[j].(*WKBArray).Get(k))
		default:
			return nil, buffer.Invalidf("unsupported WKB row source")
		}
	}
	return b.Finish()
}

// Filter copies the rows selected by a bitmap into a new, compacted
// array. Selected row indices outside the array are a
// ValidationError.
func Filter(arr Array, sel *roaring.Bitmap) (Array, error) {
	if sel == nil {
		return nil, buffer.Invalidf("nil selection bitmap")
	}
	if !sel.IsEmpty() && int(sel.Maximum()) >= arr.Len() {
		return nil, buffer.Invalidf("selection includes row %d, array has %d", sel.Maximum(), arr.Len())
	}
	if arr.Type() == WKB {
		w := arr.(*WKBArray)
		b := NewWKBBuilder()
		it := sel.Iterator()
		for it.HasNext() {
			i := int(it.Next())
			if !w.IsValid(i) {
				b.PushNull()
			} else {
				b.Push(w.Get(i))
			}
		}
		return b.Finish()
	}
	b, err := newBuilderFor(arr.Type(), arr.Dimension())
	if err != nil {
		return nil, err
	}
	it := sel.Iterator()
	for it.HasNext() {
		i := int(it.Next())
		if !arr.IsValid(i) {
			b.appendNull()
			continue
		}
		if err := b.appendGeom(arr.Geom(i)); err != nil {
			return nil, err
		}
	}
	return b.finishArray()
}
