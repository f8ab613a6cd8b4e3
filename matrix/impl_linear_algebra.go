// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation,
// including element-wise addition, subtraction, matrix multiplication,
// transpose, scalar scaling and identity construction. All functions perform
// strict fail-fast validation and return clear errors on dimension mismatches.
//
// Notes:
//   - Every kernel allocates a fresh *Dense result; operands are never mutated.
//     The only in-place operations are (*Dense).MulScalar and (*Dense).DivScalar.
//   - *Dense operands take a flat-slice fast path; any other Matrix goes through
//     At with a fixed i→j order. Both paths produce bit-identical results.

package matrix

import (
	"fmt"
)

// ZeroSum is the initial value of every multiplication accumulator.
const ZeroSum = 0.0

// identityOne is the value written on the identity placement offsets.
const identityOne = 1.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd         = "Add"
	opSub         = "Sub"
	opMul         = "Mul"
	opTranspose   = "Transpose"
	opScale       = "Scale"
	opIdentity    = "Identity"
	opNewIdentity = "NewIdentity"
	opDeterminant = "Determinant"
	opLU          = "LU"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
// Complexity: O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Inputs must have identical shapes. A fresh Dense is allocated; operands are not mutated.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b). Allocate result Dense(rows, cols).
//   - Stage 2: Fast-path if both are *Dense - single flat loop 0..n-1.
//     Otherwise, fallback At with fixed i→j order.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (from ValidateBinarySameShape).
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
//
// Notes:
//   - sign*b is exact for sign ∈ {+1,-1}, so a+(-1)*b rounds exactly like a-b.
func addSub(a, b Matrix, sign float64, opTag string) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	rows, cols := a.Rows(), a.Cols()
	res := newDenseLike(rows, cols, a)

	// Fast path: *Dense with *Dense → single flat loop.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range res.data { // deterministic 0..n-1
				res.data[idx] = da.data[idx] + sign*db.data[idx]
			}

			return res, nil
		}
	}

	// Fallback: interface path with fixed i→j order.
	var i, j int
	var av, bv float64
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, err)
			}
			res.data[i*cols+j] = av + sign*bv
		}
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
// Implementation:
//   - Stage 1: Validate both operands are non-nil and have identical shapes.
//   - Stage 2: If both are *Dense, run a single flat loop; otherwise fall back to i→j.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add(a, b Matrix) (*Dense, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A - B and returns a fresh Dense result.
// Same contract as Add.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Sub(a, b Matrix) (*Dense, error) { return addSub(a, b, -1, opSub) }

// Mul performs standard matrix multiplication C = A × B (no aliasing).
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: If A and B are *Dense, use i→k→j with row-major strides;
//     otherwise use i→j→k through At.
//
// Behavior highlights:
//   - Every cell C[i,j] is a running sum that starts at ZeroSum and adds
//     A[i,k]*B[k,j] for k = 0,1,..,n-1 in increasing order, on both paths.
//     Results are therefore reproducible bit for bit.
//   - No zero-skipping: 0*Inf still yields NaN as IEEE-754 requires.
//
// Inputs:
//   - A: left matrix with shape (r × n).
//   - B: right matrix with shape (n × c).
//
// Returns:
//   - *Dense C with shape (r × c).
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res := newDenseLike(aRows, bCols, a)
	var (
		i, j, k    int
		av, bv     float64
		current    float64
		err        error
		rowOffsetA int
		rowOffsetB int
		rowOffsetR int
	)

	// Fast-path for two Dense matrices.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			// da.data layout: i*aCols + k; db.data layout: k*bCols + j.
			// For a fixed (i,j), k still grows monotonically from 0.
			for i = 0; i < aRows; i++ {
				rowOffsetA = i * aCols
				rowOffsetR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[rowOffsetA+k]
					rowOffsetB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
					}
				}
			}

			return res, nil
		}
	}

	// Fallback: generic interface triple-loop (i-j-k).
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = ZeroSum
			for k = 0; k < aCols; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				current += av * bv
			}
			res.data[i*bCols+j] = current
		}
	}

	return res, nil
}

// Transpose returns a new (c×r) matrix with result(j,i) = m(i,j).
// Implementation:
//   - Stage 1: ValidateNotNil(m). Allocate Dense(cols, rows).
//   - Stage 2: If m is *Dense, use flat offsets; else generic i→j loop.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res := newDenseLike(cols, rows, m) // dims flipped

	var i, j int
	if dm, ok := m.(*Dense); ok {
		// data[i*cols + j] → res.data[j*rows + i]
		var baseSrc int
		for i = 0; i < rows; i++ {
			baseSrc = i * cols
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = dm.data[baseSrc+j]
			}
		}

		return res, nil
	}

	var v float64
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opTranspose, err)
			}
			res.data[j*rows+i] = v
		}
	}

	return res, nil
}

// Scale returns a new matrix whose elements are alpha * m[i,j].
// The original matrix is never mutated; NaN/Inf in alpha propagate.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// AI-Hints:
//   - Use (*Dense).MulScalar when the operand is no longer needed and the
//     allocation should be avoided.
func Scale(m Matrix, alpha float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res := newDenseLike(rows, cols, m)

	if dm, ok := m.(*Dense); ok {
		for idx := range res.data {
			res.data[idx] = dm.data[idx] * alpha
		}

		return res, nil
	}

	var i, j int
	var v float64
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opScale, err)
			}
			res.data[i*cols+j] = v * alpha
		}
	}

	return res, nil
}

// MulScalar multiplies every stored value by k in place and returns m.
// The receiver's buffer is reused: the call consumes m and hands it back,
// so `m = m.MulScalar(3)` reads like the value-style operator it replaces.
// The numeric policy is not consulted; IEEE-754 results are stored as-is.
// A nil receiver is returned unchanged.
// Complexity: O(r*c), no allocation.
func (m *Dense) MulScalar(k int) *Dense {
	if m == nil {
		return nil
	}
	f := float64(k)
	for idx := range m.data {
		m.data[idx] *= f
	}

	return m
}

// DivScalar divides every stored value by k in place and returns m.
// Division by zero is not an error: x/0 yields ±Inf and 0/0 yields NaN.
// Complexity: O(r*c), no allocation.
func (m *Dense) DivScalar(k int) *Dense {
	if m == nil {
		return nil
	}
	f := float64(k)
	for idx := range m.data {
		m.data[idx] /= f
	}

	return m
}

// Identity returns a zero matrix with the same declared shape as m and 1.0
// written at the flat offsets i*(rows+1) for i = 0..rows-1.
// MAIN DESCRIPTION:
//   - For a square m this is the identity matrix I_n.
//   - For rows < cols the placement rule still applies to the flat buffer, so the
//     ones do not sit on the (i,i) cells: the result is implementation-defined and
//     not a mathematical identity. Use NewIdentity or IdentityLike for the real thing.
//
// Implementation:
//   - Stage 1: ValidateNotNil(m).
//   - Stage 2: reject shapes whose last placement offset falls outside the buffer
//     (rows > cols, or rows == 1 with cols == 0) with ErrOutOfRange.
//   - Stage 3: allocate and write the ones.
//
// Errors:
//   - ErrNilMatrix, ErrOutOfRange.
//
// Complexity:
//   - Time O(r*c) zeroing + O(r) writes, Space O(r*c).
func Identity(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}

	rows, cols := m.Rows(), m.Cols()
	stride := rows + 1
	if rows > 0 && (rows-1)*stride >= rows*cols {
		return nil, matrixErrorf(opIdentity, fmt.Errorf("offset %d of %dx%d: %w", (rows-1)*stride, rows, cols, ErrOutOfRange))
	}

	res := newDenseLike(rows, cols, m)
	for i := 0; i < rows; i++ {
		res.data[i*stride] = identityOne
	}

	return res, nil
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Errors: ErrInvalidDimensions for n < 0.
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func NewIdentity(n int, opts ...Option) (*Dense, error) {
	id, err := NewDense(n, n, opts...)
	if err != nil {
		return nil, matrixErrorf(opNewIdentity, err)
	}
	for i := 0; i < n; i++ {
		id.data[i*n+i] = identityOne
	}

	return id, nil
}

// Determinant is not supported. It validates its input and always returns
// ErrMatrixNotImplemented; no algorithm is guessed.
func Determinant(m Matrix) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	return 0, matrixErrorf(opDeterminant, ErrMatrixNotImplemented)
}

// LU is not supported. It validates its input and always returns
// ErrMatrixNotImplemented.
func LU(m Matrix) (*Dense, *Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}

	return nil, nil, matrixErrorf(opLU, ErrMatrixNotImplemented)
}
