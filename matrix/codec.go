// SPDX-License-Identifier: MIT

// Package matrix - binary codec.
//
// Layout (little-endian, 8-byte aligned):
//
//	offset 0  : magic "TMX1" (4 bytes)
//	offset 4  : reserved, zero (4 bytes)
//	offset 8  : rows (uint64)
//	offset 16 : cols (uint64)
//	offset 24 : rows*cols float64 values (IEEE-754 bits), row-major
//
// The payload is the Dense buffer byte for byte, so a memory-mapped file
// can be read in place (see package store).

package matrix

import (
	"encoding"
	"encoding/binary"
	"fmt"
	"math"
)

// HeaderSize is the byte length of the encoding header.
const HeaderSize = 24

// ElemSize is the byte length of one encoded element.
const ElemSize = 8

// encodingMagic tags the format version.
const encodingMagic = "TMX1"

// maxEncodedDim bounds decoded dimensions so rows*cols*ElemSize cannot overflow.
const maxEncodedDim = 1 << 30

const (
	opMarshal   = "MarshalBinary"
	opUnmarshal = "UnmarshalBinary"
	opHeader    = "DecodeHeader"
)

var (
	_ encoding.BinaryMarshaler   = (*Dense)(nil)
	_ encoding.BinaryUnmarshaler = (*Dense)(nil)
)

// EncodedSize returns the byte length of a rows×cols encoding.
func EncodedSize(rows, cols int) int {
	return HeaderSize + rows*cols*ElemSize
}

// PutHeader writes the header for a rows×cols matrix into b[:HeaderSize].
// b must be at least HeaderSize bytes long.
func PutHeader(b []byte, rows, cols int) {
	copy(b[0:4], encodingMagic)
	binary.LittleEndian.PutUint32(b[4:8], 0)
	binary.LittleEndian.PutUint64(b[8:16], uint64(rows))
	binary.LittleEndian.PutUint64(b[16:24], uint64(cols))
}

// DecodeHeader validates the header at the start of b and returns the shape.
// It also checks that b is long enough to hold the whole payload.
//
// Errors:
//   - ErrBadEncoding (short buffer, bad magic, absurd or truncated shape).
func DecodeHeader(b []byte) (rows, cols int, err error) {
	if len(b) < HeaderSize {
		return 0, 0, matrixErrorf(opHeader, fmt.Errorf("%d bytes: %w", len(b), ErrBadEncoding))
	}
	if string(b[0:4]) != encodingMagic {
		return 0, 0, matrixErrorf(opHeader, fmt.Errorf("magic %q: %w", b[0:4], ErrBadEncoding))
	}
	r := binary.LittleEndian.Uint64(b[8:16])
	c := binary.LittleEndian.Uint64(b[16:24])
	if r > maxEncodedDim || c > maxEncodedDim || (c != 0 && r > math.MaxInt/ElemSize/c) {
		return 0, 0, matrixErrorf(opHeader, fmt.Errorf("shape %dx%d: %w", r, c, ErrBadEncoding))
	}
	rows, cols = int(r), int(c)
	if len(b) < EncodedSize(rows, cols) {
		return 0, 0, matrixErrorf(opHeader, fmt.Errorf("%d bytes for %dx%d: %w", len(b), rows, cols, ErrBadEncoding))
	}

	return rows, cols, nil
}

// MarshalBinary encodes m in the layout described above.
// Complexity: O(r*c).
func (m *Dense) MarshalBinary() ([]byte, error) {
	if m == nil {
		return nil, matrixErrorf(opMarshal, ErrNilMatrix)
	}
	b := make([]byte, EncodedSize(m.r, m.c))
	PutHeader(b, m.r, m.c)
	for idx, v := range m.data {
		off := HeaderSize + idx*ElemSize
		binary.LittleEndian.PutUint64(b[off:off+ElemSize], math.Float64bits(v))
	}

	return b, nil
}

// UnmarshalBinary replaces m's shape and contents with the decoded matrix.
// The numeric policy of m is kept and applied to the decoded values.
//
// Errors:
//   - ErrBadEncoding, ErrNaNInf (policy enabled and a non-finite value decoded).
//
// Complexity: O(r*c).
func (m *Dense) UnmarshalBinary(b []byte) error {
	rows, cols, err := DecodeHeader(b)
	if err != nil {
		return matrixErrorf(opUnmarshal, err)
	}
	if len(b) != EncodedSize(rows, cols) {
		return matrixErrorf(opUnmarshal, fmt.Errorf("%d trailing bytes: %w", len(b)-EncodedSize(rows, cols), ErrBadEncoding))
	}

	data := make([]float64, rows*cols)
	for idx := range data {
		off := HeaderSize + idx*ElemSize
		data[idx] = math.Float64frombits(binary.LittleEndian.Uint64(b[off : off+ElemSize]))
		if m.validateNaNInf && (math.IsNaN(data[idx]) || math.IsInf(data[idx], 0)) {
			return matrixErrorf(opUnmarshal, denseErrorf(ctxSet, idx/cols, idx%cols, ErrNaNInf))
		}
	}
	m.r, m.c, m.data = rows, cols, data

	return nil
}
