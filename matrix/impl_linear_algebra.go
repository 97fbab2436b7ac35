// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// element-wise addition and subtraction, negation, scalar scaling, matrix
// multiplication and transposition. All functions validate fail-fast and
// return wrapped sentinels on shape violations. Operands are never mutated;
// each call allocates exactly one result Dense.

package matrix

import "fmt"

// ZeroSum is the initial value for dot-product accumulation.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd         = "Add"
	opSub         = "Sub"
	opNeg         = "Neg"
	opMul         = "Mul"
	opScale       = "Scale"
	opTranspose   = "Transpose"
	opDot         = "Dot"
	opTrace       = "Trace"
	opDeterminant = "Determinant"
	opInverse     = "Inverse"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// flatten returns m's elements in row-major order.
// Dense fast-path: the backing buffer is returned as-is and MUST be treated
// as read-only by the caller. Any other implementation is gathered once via At.
// Complexity: O(1) for *Dense, O(r*c) otherwise.
func flatten(m Matrix) ([]float64, error) {
	if d, ok := m.(*Dense); ok {
		return d.data, nil
	}

	rows, cols := m.Rows(), m.Cols()
	out := make([]float64, rows*cols)
	var (
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			out[i*cols+j] = v
		}
	}

	return out, nil
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Internal helper for Add/Sub to share validation, allocation and the flat loop.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (from ValidateBinarySameShape).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func addSub(a, b Matrix, sign float64, opTag string) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	ad, err := flatten(a)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	bd, err := flatten(b)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	res, err := NewDense(a.Rows(), a.Cols())
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	for idx := range res.data { // deterministic 0..n-1
		res.data[idx] = ad[idx] + sign*bd[idx]
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add(a, b Matrix) (*Dense, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A - B and returns a fresh Dense.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
func Sub(a, b Matrix) (*Dense, error) { return addSub(a, b, -1, opSub) }

// Neg returns -A. Always defined for a non-nil A.
func Neg(a Matrix) (*Dense, error) {
	res, err := Scale(-1, a)
	if err != nil {
		return nil, matrixErrorf(opNeg, err)
	}

	return res, nil
}

// Scale returns a new matrix whose elements are k * m[i,j].
// The scalar comes first, mirroring the k·A notation.
//
// Behavior highlights:
//   - k = 0 yields an explicit zero matrix with the same shape.
//   - NaN/Inf in k propagate per IEEE-754.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Scale(k float64, m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	src, err := flatten(m)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	res, err := NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	for idx, v := range src {
		res.data[idx] = v * k
	}

	return res, nil
}

// Mul performs standard matrix multiplication C = A × B.
// Implementation:
//   - Stage 1: ValidateMulCompatible (A.Cols == B.Rows).
//   - Stage 2: transpose B once so every column is a contiguous slice.
//   - Stage 3: C[i,j] = Dot(row_i(A), col_j(B)) with fixed i→j order.
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
//   - Time O(r*n*c), Space O(r*c + n*c) for C and the transposed B.
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	ad, err := flatten(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	bt, err := Transpose(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, inner, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var (
		i, j       int
		row, col   []float64
		current    float64
		rowOffsetR int
	)
	for i = 0; i < aRows; i++ {
		row = ad[i*inner : (i+1)*inner]
		rowOffsetR = i * bCols
		for j = 0; j < bCols; j++ {
			col = bt.data[j*inner : (j+1)*inner] // column j of B, contiguous in Bᵀ
			if current, err = Dot(row, col); err != nil {
				return nil, matrixErrorf(opMul, err) // unreachable after validation
			}
			res.data[rowOffsetR+j] = current
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Defined for any rectangular shape: out[j,i] = in[i,j].
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
	src, err := flatten(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, rows) // dims flipped
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	// data[i*cols + j] → res.data[j*rows + i]
	var i, j, baseSrc int
	for i = 0; i < rows; i++ {
		baseSrc = i * cols
		for j = 0; j < cols; j++ {
			res.data[j*rows+i] = src[baseSrc+j]
		}
	}

	return res, nil
}

// Dot returns Σ a[i]*b[i] over two equal-length vectors.
// Empty vectors yield 0.
//
// Errors:
//   - ErrVectorLength when len(a) != len(b).
//
// Complexity:
//   - Time O(n), Space O(1).
func Dot(a, b []float64) (float64, error) {
	if err := ValidateVecLen(a, b); err != nil {
		return 0, matrixErrorf(opDot, err)
	}

	sum := ZeroSum
	for i := range a {
		sum += a[i] * b[i]
	}

	return sum, nil
}
