// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels and tests MUST check them
// via errors.Is. No kernel panics on user-triggered error conditions.
// Panics are reserved for programmer errors (MustDense, invalid options).

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Kernels wrap these sentinels with an operation
// tag (matrixErrorf) at the detection site; callers use errors.Is to match.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape/value count -> index -> dimension mismatch -> square
// -> numeric policy -> unsupported operation.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are negative.
	// Zero rows or columns are legal and yield an empty matrix.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrBadShape is returned when a flat value sequence does not hold exactly
	// rows*cols elements, or when a consumer needs a non-empty matrix.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) return this, never clamp and never wrap around.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add/Sub with different shapes, Mul where a.Cols != b.Rows, or a join
	// whose shared dimension differs.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNaNInf signals a NaN or ±Inf value was written while the instance
	// numeric policy (WithValidateNaNInf) forbids non-finite values.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrMatrixNotImplemented marks an intentionally unsupported operation
	// (Determinant, LU).
	ErrMatrixNotImplemented = errors.New("matrix: operation not implemented")

	// ErrBadEncoding is returned by the binary codec on a short buffer, an
	// unknown magic or a payload whose length disagrees with the header.
	ErrBadEncoding = errors.New("matrix: malformed binary encoding")
)

// ErrIndexOutOfBounds historically named the same condition as ErrOutOfRange.
// Keep it as an alias so errors.Is(err, ErrIndexOutOfBounds) remains true.
var ErrIndexOutOfBounds = ErrOutOfRange // Deprecated: use ErrOutOfRange.
