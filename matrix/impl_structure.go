// SPDX-License-Identifier: MIT

// Package matrix - diagonal analysis, triangularity predicates and joins.
//
// Purpose:
//   - Partition a square matrix into its main diagonal and the strictly upper /
//     strictly lower entries, in row-major visiting order.
//   - Answer triangularity with exact 0.0 comparison (no epsilon).
//   - Join two matrices side by side (ConcatCols) or on top of each other (ConcatRows).
//
// Determinism:
//   - Fixed i→j loops everywhere; output ordering is part of the contract.

package matrix

import "fmt"

const (
	opMainDiagonal = "MainDiagonal"
	opConcatCols   = "ConcatCols"
	opConcatRows   = "ConcatRows"
)

// MainDiagonal splits a square matrix into three row-major sequences.
// MAIN DESCRIPTION:
//   - diag holds m(i,i) for i = 0..n-1.
//   - above holds every m(i,j) with i < j, visited row then column.
//   - below holds every m(i,j) with i > j, visited row then column.
//
// Behavior highlights:
//   - The three slices partition all n² cells: len(diag)=n,
//     len(above)=len(below)=n(n-1)/2. Each slice is freshly allocated.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity:
//   - Time O(n²), Space O(n²).
func MainDiagonal(m Matrix) (diag, above, below []float64, err error) {
	if err = ValidateSquare(m); err != nil {
		return nil, nil, nil, matrixErrorf(opMainDiagonal, err)
	}

	n := m.Rows()
	off := n * (n - 1) / 2
	diag = make([]float64, 0, n)
	above = make([]float64, 0, off)
	below = make([]float64, 0, off)

	var v float64
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, nil, nil, matrixErrorf(opMainDiagonal, err)
			}
			switch {
			case i == j:
				diag = append(diag, v)
			case i < j:
				above = append(above, v)
			default:
				below = append(below, v)
			}
		}
	}

	return diag, above, below, nil
}

// IsUpperTriangular reports whether m is square and every strictly-below-diagonal
// entry equals 0.0 exactly. Nil or non-square inputs report false.
// Complexity: O(n²), early exit on the first non-zero.
func IsUpperTriangular(m Matrix) bool {
	return allZero(m, func(i, j int) bool { return i > j })
}

// IsLowerTriangular reports whether m is square and every strictly-above-diagonal
// entry equals 0.0 exactly. Nil or non-square inputs report false.
// Complexity: O(n²), early exit on the first non-zero.
func IsLowerTriangular(m Matrix) bool {
	return allZero(m, func(i, j int) bool { return i < j })
}

// allZero scans the cells selected by pick and compares them with 0.0.
// NaN is not zero, so a NaN in the scanned half makes the predicate false.
func allZero(m Matrix, pick func(i, j int) bool) bool {
	if ValidateSquare(m) != nil {
		return false
	}

	n := m.Rows()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if !pick(i, j) {
				continue
			}
			v, err := m.At(i, j)
			if err != nil || v != 0.0 {
				return false
			}
		}
	}

	return true
}

// MainDiagonal is the method form of the package-level MainDiagonal.
func (m *Dense) MainDiagonal() (diag, above, below []float64, err error) {
	return MainDiagonal(m)
}

// IsUpperTriangular is the method form of the package-level IsUpperTriangular.
func (m *Dense) IsUpperTriangular() bool { return IsUpperTriangular(m) }

// IsLowerTriangular is the method form of the package-level IsLowerTriangular.
func (m *Dense) IsLowerTriangular() bool { return IsLowerTriangular(m) }

// ConcatCols joins b to the right of a (horizontal join).
// MAIN DESCRIPTION:
//   - Requires a.Rows() == b.Rows(). Result row i is a's row i followed by b's row i;
//     shape is (rows, a.Cols()+b.Cols()).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*(ca+cb)), Space O(r*(ca+cb)).
func ConcatCols(a, b Matrix) (*Dense, error) {
	if err := ValidateBinaryNotNil(a, b); err != nil {
		return nil, matrixErrorf(opConcatCols, err)
	}
	if err := ValidateSameRows(a, b); err != nil {
		return nil, matrixErrorf(opConcatCols, fmt.Errorf("%d vs %d rows: %w", a.Rows(), b.Rows(), err))
	}

	rows, ca, cb := a.Rows(), a.Cols(), b.Cols()
	width := ca + cb
	res := newDenseLike(rows, width, a)

	for i := 0; i < rows; i++ {
		dst := res.data[i*width : (i+1)*width]
		if err := copyRow(dst[:ca], a, i); err != nil {
			return nil, matrixErrorf(opConcatCols, err)
		}
		if err := copyRow(dst[ca:], b, i); err != nil {
			return nil, matrixErrorf(opConcatCols, err)
		}
	}

	return res, nil
}

// ConcatRows stacks b below a (vertical join).
// MAIN DESCRIPTION:
//   - Requires a.Cols() == b.Cols(). The rows of a come first, then the rows of b;
//     shape is (a.Rows()+b.Rows(), cols).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O((ra+rb)*c), Space O((ra+rb)*c).
func ConcatRows(a, b Matrix) (*Dense, error) {
	if err := ValidateBinaryNotNil(a, b); err != nil {
		return nil, matrixErrorf(opConcatRows, err)
	}
	if err := ValidateSameCols(a, b); err != nil {
		return nil, matrixErrorf(opConcatRows, fmt.Errorf("%d vs %d cols: %w", a.Cols(), b.Cols(), err))
	}

	ra, rb, cols := a.Rows(), b.Rows(), a.Cols()
	res := newDenseLike(ra+rb, cols, a)

	for i := 0; i < ra; i++ {
		if err := copyRow(res.data[i*cols:(i+1)*cols], a, i); err != nil {
			return nil, matrixErrorf(opConcatRows, err)
		}
	}
	for i := 0; i < rb; i++ {
		dst := res.data[(ra+i)*cols : (ra+i+1)*cols]
		if err := copyRow(dst, b, i); err != nil {
			return nil, matrixErrorf(opConcatRows, err)
		}
	}

	return res, nil
}

// copyRow copies row i of src into dst (len(dst) == src.Cols()).
// *Dense sources use a single copy over the contiguous row.
func copyRow(dst []float64, src Matrix, i int) error {
	if d, ok := src.(*Dense); ok {
		copy(dst, d.data[i*d.c:(i+1)*d.c])
		return nil
	}
	for j := range dst {
		v, err := src.At(i, j)
		if err != nil {
			return err
		}
		dst[j] = v
	}

	return nil
}
