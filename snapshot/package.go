// Copyright 2026 The geocol Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package snapshot persists geometry columns. A snapshot is a magic
// number, a size-prefixed FlatBuffers metadata table describing the
// column, and one zstd-compressed page per physical buffer, in a fixed
// order per geometry type.
//
// Mixed columns have no snapshot form; encode them to a WKB column
// first.
package snapshot
