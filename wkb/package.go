// Copyright 2026 The geocol Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package wkb converts geometry arrays to and from the OGC Well-Known
// Binary interchange encoding.
//
// Decoding accepts both byte orders and both the ISO (base type code
// plus 1000) and extended (high-bit flag) conventions for 3D
// geometries; measured coordinates are rejected. Encoding emits ISO
// type codes in a caller-chosen byte order, so a little-endian ISO
// stream round-trips byte-exactly through Decode and Encode.
package wkb
