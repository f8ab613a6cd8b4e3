// Package tinymatrix is a small dense-matrix toolkit: a row-major float64
// value type with checked access, arithmetic, diagonal analysis and joins,
// plus persistence and rendering around it.
//
// 🚀 What is inside?
//
//	• Dense storage: element (i,j) at flat offset i*cols+j, owned by one matrix
//	• Checked access: At/Set return ErrOutOfRange, never clamp
//	• Kernels: Add, Sub, Mul, Scale, Transpose, Identity, ConcatCols, ConcatRows
//	• Diagonal analysis: MainDiagonal, IsUpperTriangular, IsLowerTriangular
//	• Codecs: fixed-decimal text dump, binary layout shared with mapped files
//	• Interop: any Matrix as a gonum mat.Matrix and back
//
// Everything is organized under three subpackages and one command:
//
//	matrix/         - Dense, the Matrix interface, validators, kernels, codecs
//	store/          - memory-mapped matrices (mmap-go) usable as kernel operands
//	render/         - heat maps of any Matrix (gonum/plot), PNG/SVG/PDF
//	cmd/tinymatrix/ - demo tour with optional heat map and mapped store output
//
// Quick example:
//
//	a := matrix.MustDense(matrix.NewDenseFrom(2, 2, []float64{1, 2, 3, 4}))
//	b := matrix.MustDense(matrix.NewDenseFrom(2, 2, []float64{5, 6, 7, 8}))
//	c, _ := matrix.Mul(a, b) // [[19 22] [43 50]]
//
// Determinant and LU are declared but unsupported; they return
// matrix.ErrMatrixNotImplemented.
//
//	go get github.com/katalvlaran/tinymatrix
package tinymatrix
