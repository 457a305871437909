// Copyright 2026 The geocol Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package meta describes geometry columns: the column name, geometry
// type, dimensionality, coordinate layout, row count, spatial extent,
// and coordinate reference system. The description is serialized as a
// size-prefixed FlatBuffers table so readers can inspect a stored
// column without touching its data pages.
package meta
