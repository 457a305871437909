// Copyright 2026 The geocol Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package snapshot

import (
	"bufio"
	"encoding/binary"
	"io"
	"math"

	"github.com/klauspost/compress/zstd"
)

// A page is one physical buffer on the wire: the raw byte length as a
// uvarint, the compressed byte length as a uvarint, then the
// zstd-compressed bytes. A zero raw length marks an elided buffer and
// carries no compressed bytes.

func writePage(w io.Writer, enc *zstd.Encoder, raw []byte) (n int, err error) {
	var hdr [2 * binary.MaxVarintLen64]byte
	if len(raw) == 0 {
		h := binary.PutUvarint(hdr[:], 0)
		return w.Write(hdr[:h])
	}
	comp := enc.EncodeAll(raw, nil)
	h := binary.PutUvarint(hdr[:], uint64(len(raw)))
	h += binary.PutUvarint(hdr[h:], uint64(len(comp)))
	if n, err = w.Write(hdr[:h]); err != nil {
		return
	}
	var m int
	m, err = w.Write(comp)
	n += m
	return
}

func readPage(r *bufio.Reader, dec *zstd.Decoder) ([]byte, error) {
	rawLen, err := binary.ReadUvarint(r)
	if err != nil {
		return nil, wrapErr("failed to read page raw length", err)
	}
	if rawLen == 0 {
		return nil, nil
	}
	if rawLen > pageMaxLen {
		return nil, fmtErr("page raw length %d exceeds limit %d", rawLen, int64(pageMaxLen))
	}
	compLen, err := binary.ReadUvarint(r)
	if err != nil {
		return nil, wrapErr("failed to read page compressed length", err)
	}
	if compLen > pageMaxLen {
		return nil, fmtErr("page compressed length %d exceeds limit %d", compLen, int64(pageMaxLen))
	}
	comp := make([]byte, compLen)
	if _, err = io.ReadFull(r, comp); err != nil {
		return nil, wrapErr("failed to read page bytes", err)
	}
	raw, err := dec.DecodeAll(comp, make([]byte, 0, rawLen))
	if err != nil {
		return nil, wrapErr("failed to decompress page", err)
	}
	if uint64(len(raw)) != rawLen {
		return nil, fmtErr("page decompressed to %d bytes, header says %d", len(raw), rawLen)
	}
	return raw, nil
}

func float64sToBytes(vals []float64) []byte {
	out := make([]byte, 8*len(vals))
	for i, v := range vals {
		binary.LittleEndian.PutUint64(out[8*i:], math.Float64bits(v))
	}
	return out
}

func bytesToFloat64s(raw []byte) ([]float64, error) {
	if len(raw)%8 != 0 {
		return nil, fmtErr("coordinate page length %d is not a multiple of 8", len(raw))
	}
	out := make([]float64, len(raw)/8)
	for i := range out {
		out[i] = math.Float64frombits(binary.LittleEndian.Uint64(raw[8*i:]))
	}
	return out, nil
}

func int32sToBytes(vals []int32) []byte {
	out := make([]byte, 4*len(vals))
	for i, v := range vals {
		binary.LittleEndian.PutUint32(out[4*i:], uint32(v))
	}
	return out
}

func bytesToInt32s(raw []byte) ([]int32, error) {
	if len(raw)%4 != 0 {
		return nil, fmtErr("offsets page length %d is not a multiple of 4", len(raw))
	}
	out := make([]int32, len(raw)/4)
	for i := range out {
		out[i] = int32(binary.LittleEndian.Uint32(raw[4*i:]))
	}
	return out, nil
}
