// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Element-wise comparison helpers complementing the exact-equality
//     triangularity predicates: Equal (bitwise-exact values) and AllClose
//     (tolerance-based, for matrices produced by floating-point arithmetic).
//
// Determinism & Performance:
//   - Fixed loop orders (flat 0..n-1 on *Dense, i→j otherwise).
//   - No allocations.

package matrix

import (
	"math"
)

const opAllClose = "AllClose"

// Equal reports whether a and b have the same shape and every element compares
// equal with ==. NaN never equals NaN; nil inputs are never equal.
// Complexity: O(r*c).
func Equal(a, b Matrix) bool {
	if ValidateBinarySameShape(a, b) != nil {
		return false
	}
	ok, err := compareEach(a, b, func(x, y float64) bool { return x == y })

	return err == nil && ok
}

// AllClose reports whether |a[i,j] - b[i,j]| ≤ atol + rtol*|b[i,j]| for all cells.
// Implementation:
//   - Stage 1: validate tolerances are finite; negative values are abs-ed.
//   - Stage 2: validate non-nil operands with identical shapes.
//   - Stage 3: flat scan for *Dense pairs, generic At scan otherwise; early exit.
//
// Errors:
//   - ErrNaNInf (bad tolerance), ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	ok, err := compareEach(a, b, func(x, y float64) bool {
		return math.Abs(x-y) <= atol+rtol*math.Abs(y)
	})
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	return ok, nil
}

// compareEach walks two same-shaped matrices and stops at the first pair for
// which same returns false.
func compareEach(a, b Matrix, same func(x, y float64) bool) (bool, error) {
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range da.data {
				if !same(da.data[idx], db.data[idx]) {
					return false, nil
				}
			}

			return true, nil
		}
	}

	r, c := a.Rows(), a.Cols()
	var av, bv float64
	var err error
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if av, err = a.At(i, j); err != nil {
				return false, err
			}
			if bv, err = b.At(i, j); err != nil {
				return false, err
			}
			if !same(av, bv) {
				return false, nil
			}
		}
	}

	return true, nil
}
