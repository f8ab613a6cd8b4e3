// SPDX-License-Identifier: MIT

// Package matrix - interop with gonum.org/v1/gonum/mat.
//
// AsGonum exposes any Matrix as a read-only mat.Matrix, so gonum routines
// (factorizations, norms, formatting) can consume matrices built here.
// FromGonum copies a mat.Matrix into a fresh *Dense.

package matrix

import (
	"gonum.org/v1/gonum/mat"
)

const opFromGonum = "FromGonum"

// gonumView adapts a Matrix to mat.Matrix without copying.
type gonumView struct {
	m Matrix
}

var _ mat.Matrix = gonumView{}

// AsGonum returns a read-only mat.Matrix view over m (no copy).
// Mutations of m are visible through the view.
// Following gonum conventions, the view's At panics with mat.ErrIndexOutOfRange
// on invalid indices.
// Note: gonum constructors reject zero-sized matrices; avoid passing views of
// empty matrices to gonum kernels.
func AsGonum(m Matrix) mat.Matrix {
	return gonumView{m: m}
}

// Dims returns (rows, cols).
func (g gonumView) Dims() (r, c int) { return g.m.Rows(), g.m.Cols() }

// At returns element (i, j) or panics with mat.ErrIndexOutOfRange.
func (g gonumView) At(i, j int) float64 {
	v, err := g.m.At(i, j)
	if err != nil {
		panic(mat.ErrIndexOutOfRange)
	}

	return v
}

// T returns an implicit transpose.
func (g gonumView) T() mat.Matrix { return mat.Transpose{Matrix: g} }

// FromGonum copies g into a new *Dense with the same shape.
// Errors: ErrNilMatrix when g is nil.
// Complexity: O(r*c).
func FromGonum(g mat.Matrix, opts ...Option) (*Dense, error) {
	if g == nil {
		return nil, matrixErrorf(opFromGonum, ErrNilMatrix)
	}
	r, c := g.Dims()
	res, err := NewDense(r, c, opts...)
	if err != nil {
		return nil, matrixErrorf(opFromGonum, err)
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			res.data[i*c+j] = g.At(i, j)
		}
	}

	return res, nil
}
