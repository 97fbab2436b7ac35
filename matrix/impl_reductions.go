// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Scalar reductions over square matrices: Trace and Determinant.
//   - Closed-form Inverse for 1×1 and 2×2 matrices.
//
// Scope:
//   - Determinant and Inverse are defined ONLY for sizes 1 and 2 and return
//     ErrUnsupportedSize otherwise. This is a permanent boundary of the package:
//     no cofactor expansion, no LU, no pivoting.
//   - Trace works for any square size.

package matrix

import "math"

// ZeroPivot is the value that makes a determinant (or a 1×1 entry) singular.
const ZeroPivot = 0.0

// Trace returns Σ m[i,i].
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity:
//   - Time O(n), Space O(1) for *Dense; O(n²) gather otherwise.
func Trace(m Matrix) (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opTrace, err)
	}
	data, err := flatten(m)
	if err != nil {
		return 0, matrixErrorf(opTrace, err)
	}

	n := m.Rows()
	sum := ZeroSum
	for i := 0; i < n; i++ {
		sum += data[i*n+i] // diagonal stride n+1
	}

	return sum, nil
}

// Determinant returns det(m) for 1×1 and 2×2 matrices.
// Implementation:
//   - Stage 1: ValidateSquare, then ValidateClosedFormSize.
//   - Stage 2: 1×1 → a; 2×2 → ad − bc (main diagonal minus anti-diagonal).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrUnsupportedSize (n ≥ 3).
//
// Complexity:
//   - Time O(1), Space O(1) for *Dense.
func Determinant(m Matrix) (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	if err := ValidateClosedFormSize(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	data, err := flatten(m)
	if err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	if m.Rows() == 1 {
		return data[0], nil
	}
	// [a b; c d] laid out row-major as data[0..3].
	return data[0]*data[3] - data[1]*data[2], nil
}

// Inverse returns m⁻¹ for 1×1 and 2×2 matrices.
// Implementation:
//   - 1×1: [[1/a]].
//   - 2×2: (1/det(A)) · (trace(A)·I₂ − A), the Cayley–Hamilton closed form.
//
// Behavior highlights:
//   - A zero divisor is detected before dividing, so no ±Inf is ever produced.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrUnsupportedSize (n ≥ 3),
//     ErrSingular (a == 0 for 1×1, det == 0 for 2×2),
//     ErrNaNInf when det or 1/det is not finite (overflow or non-finite entries).
//
// Complexity:
//   - Time O(1); a handful of 2×2 allocations.
func Inverse(m Matrix) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if err := ValidateClosedFormSize(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	det, err := Determinant(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if det == ZeroPivot {
		return nil, matrixErrorf(opInverse, ErrSingular)
	}
	factor := 1 / det
	if math.IsNaN(det) || math.IsInf(det, 0) || math.IsInf(factor, 0) {
		return nil, matrixErrorf(opInverse, ErrNaNInf)
	}

	if m.Rows() == 1 {
		// det of a 1×1 is its only entry, so factor is already 1/a.
		return &Dense{r: 1, c: 1, data: []float64{factor}}, nil
	}

	tr, err := Trace(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	id, err := Identity(2)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	trI, err := Scale(tr, id)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	adj, err := Sub(trI, m) // trace·I₂ − A is the adjugate of a 2×2
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	inv, err := Scale(factor, adj)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	return inv, nil
}
