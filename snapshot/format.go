// Copyright 2026 The geocol Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package snapshot

import (
	"io"
)

const (
	// magicLen is the length of the snapshot magic number in bytes.
	magicLen = 8
	// MinFormatMajorVersion is the minimum major version of the
	// snapshot format that this package can read.
	MinFormatMajorVersion = 0x01
	// MaxFormatMajorVersion is the maximum major version of the
	// snapshot format that this package can read.
	MaxFormatMajorVersion = 0x01
	// metaMaxLen is an artificial limit on the maximum size of a
	// snapshot metadata block this package will read. The purpose of
	// this value is to impose some limitation, to prevent corrupted or
	// malicious blocks from causing huge and pointless memory
	// allocations.
	metaMaxLen = 32 * 1024 * 1024
	// pageMaxLen is the same artificial limit for a single buffer
	// page, compressed or raw.
	pageMaxLen = 1 << 31
)

// magic contains the snapshot magic number.
//
// The fourth byte is the format major version of data written by this
// package, and the last byte is the format patch version of data
// written by this package.
var magic = [magicLen]byte{0x67, 0x63, 0x6C, 0x01, 0x67, 0x63, 0x6C, 0x00}

// FormatVersion is a version of the snapshot format.
type FormatVersion struct {
	// Major is the major version of the snapshot format.
	Major uint8
	// Patch is the patch version of the snapshot format.
	Patch uint8
}

// Magic reads the snapshot magic number from a stream and if it is
// valid, returns the snapshot format version. This function can be
// used to test whether any file seems to be in the snapshot format.
// However, it does not read beyond the magic number.
//
// Calling this function will result in 8 bytes being read from the
// stream reader (unless there were fewer than 8 bytes available, in
// which case all available bytes in the stream are consumed).
func Magic(r io.Reader) (FormatVersion, error) {
	m := make([]byte, magicLen)
	_, err := io.ReadFull(r, m)
	if err != nil {
		return FormatVersion{}, err
	}
	if m[0] == magic[0] &&
		m[1] == magic[1] &&
		m[2] == magic[2] &&
		m[4] == magic[4] &&
		m[5] == magic[5] &&
		m[6] == magic[6] {
		return FormatVersion{m[3], m[7]}, nil
	}
	return FormatVersion{}, textErr("invalid magic number")
}
