// Copyright 2026 The geocol Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package buffer provides the flat physical buffers that geometry
// arrays are layered over: coordinate buffers, offsets buffers, and
// validity bitmaps.
//
// All frozen buffer types are immutable views over shared slices.
// Slicing a buffer produces a new view with an adjusted offset and
// length and never copies the underlying memory. Builders exclusively
// own their in-progress storage until Finish freezes it.
package buffer
