// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Element-wise comparison of two matrices (exact and tolerance-based).
//   - Keep loops deterministic and flat over row-major buffers.

package matrix

import "math"

const opAllClose = "AllClose"

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol must be finite; negative values are normalized to |x|.
//   - NaN != anything (NaN included); +Inf equals +Inf, -Inf equals -Inf.
//
// Complexity: Time O(r*c), Space O(1) for *Dense operands.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	ad, err := flatten(a)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	bd, err := flatten(b)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	var x, y float64
	for idx := range ad {
		x, y = ad[idx], bd[idx]
		if x == y {
			continue // also matches same-signed infinities
		}
		if math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
			return false, nil
		}
		if math.Abs(x-y) > atol+rtol*math.Abs(y) {
			return false, nil // early exit on first violation
		}
	}

	return true, nil
}

// EqualApprox reports whether a and b have the same shape and every pair of
// entries differs by at most the configured tolerance (DefaultTolerance
// unless WithTolerance is given). Nil operands or mismatched shapes compare
// unequal.
func EqualApprox(a, b Matrix, opts ...Option) bool {
	o := gatherOptions(opts...)
	ok, err := AllClose(a, b, 0, o.tol)

	return err == nil && ok
}

// Equal reports exact element-wise equality with identical shapes.
func Equal(a, b Matrix) bool {
	ok, err := AllClose(a, b, 0, 0)

	return err == nil && ok
}
