// SPDX-License-Identifier: MIT
package matrix_test

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/katalvlaran/tinymatrix/matrix"
	"github.com/stretchr/testify/require"
)

// TestBinary_RoundTrip encodes and decodes shapes including empty ones.
func TestBinary_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, m := range []*matrix.Dense{
		RandFilledDense(t, 3, 4, 7),
		NewFilledDense(t, 1, 3, []float64{math.Inf(-1), math.NaN(), math.Copysign(0, -1)}),
		MustDense(t, 0, 0),
		MustDense(t, 0, 5),
	} {
		b, err := m.MarshalBinary()
		require.NoError(t, err)
		require.Len(t, b, matrix.EncodedSize(m.Rows(), m.Cols()))

		var got matrix.Dense
		require.NoError(t, got.UnmarshalBinary(b))
		require.Equal(t, m.Rows(), got.Rows())
		require.Equal(t, m.Cols(), got.Cols())

		want, have := m.RawRowMajor(), got.RawRowMajor()
		for i := range want {
			require.Equal(t, math.Float64bits(want[i]), math.Float64bits(have[i]), "idx %d", i)
		}
	}
}

// TestBinary_Layout pins the header and the row-major little-endian payload.
func TestBinary_Layout(t *testing.T) {
	t.Parallel()

	b, err := NewFilledDense(t, 1, 2, []float64{1.5, -2}).MarshalBinary()
	require.NoError(t, err)
	require.Equal(t, "TMX1", string(b[:4]))
	require.Equal(t, uint64(1), binary.LittleEndian.Uint64(b[8:16]))
	require.Equal(t, uint64(2), binary.LittleEndian.Uint64(b[16:24]))
	require.Equal(t, 1.5, math.Float64frombits(binary.LittleEndian.Uint64(b[24:32])))
	require.Equal(t, -2.0, math.Float64frombits(binary.LittleEndian.Uint64(b[32:40])))
}

// TestBinary_Malformed rejects short, foreign and inconsistent buffers.
func TestBinary_Malformed(t *testing.T) {
	t.Parallel()

	good, err := RandFilledDense(t, 2, 2, 1).MarshalBinary()
	require.NoError(t, err)

	badMagic := append([]byte(nil), good...)
	copy(badMagic, "NOPE")

	huge := append([]byte(nil), good...)
	binary.LittleEndian.PutUint64(huge[8:16], math.MaxUint64)

	tests := map[string][]byte{
		"empty":     nil,
		"short":     good[:matrix.HeaderSize-1],
		"bad magic": badMagic,
		"truncated": good[:len(good)-1],
		"trailing":  append(append([]byte(nil), good...), 0),
		"huge dims": huge,
	}
	for name, b := range tests {
		var d matrix.Dense
		require.ErrorIs(t, d.UnmarshalBinary(b), matrix.ErrBadEncoding, name)
	}

	_, _, err = matrix.DecodeHeader(good[:matrix.HeaderSize])
	require.ErrorIs(t, err, matrix.ErrBadEncoding)
	r, c, err := matrix.DecodeHeader(good)
	require.NoError(t, err)
	require.Equal(t, [2]int{2, 2}, [2]int{r, c})
}

// TestBinary_Policy applies the receiver's finite-only policy while decoding.
func TestBinary_Policy(t *testing.T) {
	t.Parallel()

	b, err := NewFilledDense(t, 1, 1, []float64{math.NaN()}).MarshalBinary()
	require.NoError(t, err)

	strict, err := matrix.NewDense(0, 0, matrix.WithValidateNaNInf())
	require.NoError(t, err)
	require.ErrorIs(t, strict.UnmarshalBinary(b), matrix.ErrNaNInf)
	require.Equal(t, 0, strict.Rows()) // untouched on error

	var nilDense *matrix.Dense
	_, err = nilDense.MarshalBinary()
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
