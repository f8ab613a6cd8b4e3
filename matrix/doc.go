// Package matrix is a small dense-matrix value type.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix: element (i, j) lives at flat offset
//     i*cols + j of a buffer the Dense exclusively owns.
//   - Safe accessors (At/Set) that return ErrOutOfRange instead of panicking.
//   - Kernels over the Matrix interface: Add, Sub, Mul, Scale, Transpose,
//     Identity, ConcatCols (side by side), ConcatRows (stacked), with a *Dense
//     fast path and a generic fallback that yield identical results.
//   - Diagonal analysis: MainDiagonal splits a square matrix into the diagonal,
//     the strictly upper and the strictly lower entries; IsUpperTriangular and
//     IsLowerTriangular compare with 0.0 exactly.
//   - Fprint (fixed-decimal debugging dump), a binary codec whose payload is the
//     raw row-major buffer, and gonum interop (AsGonum / FromGonum).
//
// Every shape violation is reported as a sentinel error (ErrDimensionMismatch,
// ErrNonSquare, ErrBadShape, ...) wrapped with the operation name; match them
// with errors.Is. Determinant and LU are declared but unsupported and return
// ErrMatrixNotImplemented.
//
// Quick example:
//
//	a := matrix.MustDense(matrix.NewDenseFrom(2, 2, []float64{1, 2, 3, 4}))
//	b := matrix.MustDense(matrix.NewDenseFrom(2, 2, []float64{5, 6, 7, 8}))
//	c, _ := matrix.Mul(a, b) // [[19 22] [43 50]]
package matrix
