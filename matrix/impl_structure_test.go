// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/tinymatrix/matrix"
	"github.com/stretchr/testify/require"
)

// TestMainDiagonal_Partition checks ordering and the n, n(n-1)/2, n(n-1)/2 split.
func TestMainDiagonal_Partition(t *testing.T) {
	t.Parallel()

	m := NewFilledDense(t, 3, 3, []float64{
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	})
	for _, in := range []matrix.Matrix{m, hide{m}} {
		diag, above, below, err := matrix.MainDiagonal(in)
		require.NoError(t, err)
		if d := cmp.Diff([]float64{1, 5, 9}, diag); d != "" {
			t.Fatalf("diag (-want +got):\n%s", d)
		}
		if d := cmp.Diff([]float64{2, 3, 6}, above); d != "" {
			t.Fatalf("above (-want +got):\n%s", d)
		}
		if d := cmp.Diff([]float64{4, 7, 8}, below); d != "" {
			t.Fatalf("below (-want +got):\n%s", d)
		}
	}

	for n := 0; n <= 6; n++ {
		diag, above, below, err := MustDense(t, n, n).MainDiagonal()
		require.NoError(t, err)
		require.Len(t, diag, n)
		require.Len(t, above, n*(n-1)/2)
		require.Len(t, below, n*(n-1)/2)
		require.Equal(t, n*n, len(diag)+len(above)+len(below))
	}
}

// TestMainDiagonal_Errors rejects non-square and nil inputs.
func TestMainDiagonal_Errors(t *testing.T) {
	t.Parallel()

	_, _, _, err := matrix.MainDiagonal(MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	_, _, _, err = matrix.MainDiagonal(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestTriangular covers exact-zero comparison and non-square inputs.
func TestTriangular(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		r, c         int
		vals         []float64
		upper, lower bool
	}{
		{"diagonal", 2, 2, []float64{1, 0, 0, 4}, true, true},
		{"upper", 2, 2, []float64{1, 2, 0, 4}, true, false},
		{"lower", 2, 2, []float64{1, 0, 3, 4}, false, true},
		{"full", 2, 2, []float64{1, 2, 3, 4}, false, false},
		{"tiny non-zero", 2, 2, []float64{1, 0, 1e-300, 4}, false, true},
		{"negative zero", 2, 2, []float64{1, math.Copysign(0, -1), 0, 4}, true, true},
		{"nan below", 2, 2, []float64{1, 0, math.NaN(), 4}, false, true},
		{"non-square", 2, 3, []float64{1, 0, 0, 0, 1, 0}, false, false},
		{"empty", 0, 0, nil, true, true},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			m := NewFilledDense(t, tc.r, tc.c, tc.vals)
			require.Equal(t, tc.upper, m.IsUpperTriangular())
			require.Equal(t, tc.lower, m.IsLowerTriangular())
			require.Equal(t, tc.upper, matrix.IsUpperTriangular(hide{m}))
			require.Equal(t, tc.lower, matrix.IsLowerTriangular(hide{m}))
		})
	}

	require.False(t, matrix.IsUpperTriangular(nil))
	require.False(t, matrix.IsLowerTriangular(nil))
}

// TestConcatCols joins side by side: row i = a_i ++ b_i.
func TestConcatCols(t *testing.T) {
	t.Parallel()

	a := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4})
	b := NewFilledDense(t, 2, 2, []float64{5, 6, 7, 8})

	for _, pair := range [][2]matrix.Matrix{{a, b}, {hide{a}, b}, {a, hide{b}}} {
		c, err := matrix.ConcatCols(pair[0], pair[1])
		require.NoError(t, err)
		CompareExact(t, [][]float64{{1, 2, 5, 6}, {3, 4, 7, 8}}, c)
	}

	narrow := NewFilledDense(t, 2, 1, []float64{9, 10})
	c, err := matrix.HStack(a, narrow)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1, 2, 9}, {3, 4, 10}}, c)

	_, err = matrix.ConcatCols(a, MustDense(t, 3, 2))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.ConcatCols(nil, a)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestConcatRows stacks a above b.
func TestConcatRows(t *testing.T) {
	t.Parallel()

	a := NewFilledDense(t, 1, 3, []float64{1, 2, 3})
	b := NewFilledDense(t, 2, 3, []float64{4, 5, 6, 7, 8, 9})

	for _, pair := range [][2]matrix.Matrix{{a, b}, {hide{a}, hide{b}}} {
		c, err := matrix.ConcatRows(pair[0], pair[1])
		require.NoError(t, err)
		CompareExact(t, [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}, c)
	}

	c, err := matrix.VStack(MustDense(t, 0, 3), a)
	require.NoError(t, err)
	require.True(t, matrix.Equal(a, c))

	_, err = matrix.ConcatRows(a, MustDense(t, 1, 2))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
