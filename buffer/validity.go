// Copyright 2026 The geocol Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package buffer

// A Bitmap is a validity bitmap: one bit per logical row, set = valid,
// clear = null. Bits are addressed LSB-first within each byte, the
// columnar null-bit convention. A nil *Bitmap conventionally means all
// rows are valid; callers holding an optional bitmap should treat it
// that way.
type Bitmap struct {
	bits   []byte
	offset int // bit offset of this view
	n      int // bit count of this view
}

// NewBitmap creates a validity bitmap of n bits over the given byte
// slice. Returns a ValidationError if the slice holds fewer than n
// bits. The bitmap shares bits without copying.
func NewBitmap(bits []byte, n int) (*Bitmap, error) {
	if n < 0 {
		return nil, Invalidf("negative bitmap length %d", n)
	}
	if len(bits)*8 < n {
		return nil, Invalidf("bitmap needs %d bits, slice holds %d", n, len(bits)*8)
	}
	return &Bitmap{bits: bits, n: n}, nil
}

// Len returns the number of bits in the view.
func (b *Bitmap) Len() int {
	return b.n
}

// Get reports whether bit i is set. Panics if i is out of bounds.
func (b *Bitmap) Get(i int) bool {
	if i < 0 || i >= b.n {
		fmtPanic("bitmap index %d out of bounds [0,%d)", i, b.n)
	}
	i += b.offset
	return b.bits[i>>3]&(1<<uint(i&7)) != 0
}

// CountValid returns the number of set bits in the view.
func (b *Bitmap) CountValid() int {
	c := 0
	for i := 0; i < b.n; i++ {
		if b.Get(i) {
			c++
		}
	}
	return c
}

// Slice returns a view of length bits starting at offset, sharing the
// underlying storage.
func (b *Bitmap) Slice(offset, length int) *Bitmap {
	if offset < 0 || length < 0 || offset+length > b.n {
		fmtPanic("bitmap slice [%d,%d) out of bounds [0,%d)", offset, offset+length, b.n)
	}
	return &Bitmap{bits: b.bits, offset: b.offset + offset, n: length}
}

// Bytes returns the bitmap packed into a fresh byte slice with the
// view re-based to bit offset zero.
func (b *Bitmap) Bytes() []byte {
	out := make([]byte, (b.n+7)/8)
	for i := 0; i < b.n; i++ {
		if b.Get(i) {
			out[i>>3] |= 1 << uint(i&7)
		}
	}
	return out
}

// A BitmapBuilder accumulates validity bits. It tracks whether any
// null has been appended so that callers can elide the bitmap
// entirely for fully valid data. After Finish the builder is consumed
// and further use panics.
type BitmapBuilder struct {
	bits   []byte
	n      int
	nulls  int
	frozen bool
}

// NewBitmapBuilder creates an empty validity bitmap builder.
func NewBitmapBuilder() *BitmapBuilder {
	return &BitmapBuilder{}
}

func (b *BitmapBuilder) sanityCheck() {
	if b.frozen {
		textPanic("bitmap builder used after Finish")
	}
}

// Len returns the number of bits appended so far.
func (b *BitmapBuilder) Len() int {
	return b.n
}

// NullCount returns the number of clear bits appended so far.
func (b *BitmapBuilder) NullCount() int {
	return b.nulls
}

// Append appends one bit.
func (b *BitmapBuilder) Append(valid bool) {
	b.sanityCheck()
	if b.n>>3 == len(b.bits) {
		b.bits = append(b.bits, 0)
	}
	if valid {
		b.bits[b.n>>3] |= 1 << uint(b.n&7)
	} else {
		b.nulls++
	}
	b.n++
}

// AppendRun appends count identical bits. Efficient for mostly-valid
// data where long valid runs dominate.
func (b *BitmapBuilder) AppendRun(valid bool, count int) {
	b.sanityCheck()
	if count < 0 {
		fmtPanic("negative bit run length %d", count)
	}
	need := (b.n + count + 7) / 8
	for len(b.bits) < need {
		b.bits = append(b.bits, 0)
	}
	if valid {
		for i := 0; i < count; i++ {
			b.bits[(b.n+i)>>3] |= 1 << uint((b.n+i)&7)
		}
	} else {
		b.nulls += count
	}
	b.n += count
}

// Finish freezes the accumulated bits into an immutable bitmap and
// consumes the builder. If no null was ever appended, Finish returns
// nil: a nil bitmap means all rows valid.
func (b *BitmapBuilder) Finish() *Bitmap {
	b.sanityCheck()
	b.frozen = true
	if b.nulls == 0 {
		return nil
	}
	return &Bitmap{bits: b.bits, n: b.n}
}
