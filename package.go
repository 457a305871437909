// Copyright 2026 The geocol Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package geocol provides columnar, zero-copy geometry arrays: typed
// array variants for points, linestrings, polygons and their multi
// and mixed forms, append-only builders that freeze into immutable
// arrays, zero-copy slicing, chunked columns, and a uniform read-only
// Geom view usable by generic algorithms.
//
// Frozen arrays are immutable and safe for unsynchronized concurrent
// reads. Builders are single-writer and must not be shared between
// goroutines. Slicing shares buffers and never copies; concatenation,
// rechunking and filtering copy into new buffers.
//
// The wkb subpackage converts arrays to and from Well-Known Binary,
// the rtree subpackage provides bounding-box spatial indexing, and
// the snapshot subpackage persists frozen arrays.
package geocol
