// Copyright 2026 The geocol Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package rtree provides packed Hilbert R-Tree spatial indexing over
// frozen geometry arrays and chunks.
//
// An index is bulk-loaded once from a complete array and is immutable
// afterward; index and array share the same generation, and the array
// must not be rebuilt under a live index. Range queries guarantee no
// false negatives over bounding boxes but may return false positives;
// exact predicates require an injected geocol.Engine post-filter. The
// index is two-dimensional: 3D arrays are indexed on their XY extent.
package rtree
