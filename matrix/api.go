// SPDX-License-Identifier: MIT
// Package matrix — constructors and method facades.
//
// Purpose:
//   - Zeros/Identity factories built on NewDense.
//   - Method forms on *Dense (a.Add(b), a.Mul(b), a.T(), ...) for operator-like
//     chaining. Each delegates to the canonical kernel; no logic is duplicated.

package matrix

// ---------- Constructors ----------

// Zeros returns an h×w matrix with every entry 0.0.
// It is a thin alias of NewDense with an intention-revealing name.
//
// Errors: ErrInvalidDimensions when h or w is < 1.
func Zeros(h, w int) (*Dense, error) {
	return NewDense(h, w)
}

// Identity returns I_n (ones on the main diagonal, zeros elsewhere).
// Built from Zeros(n, n), then the diagonal is overwritten in a single loop.
//
// Errors: ErrInvalidDimensions when n < 1.
// Complexity: O(n²) zeroing + O(n) diagonal writes.
func Identity(n int) (*Dense, error) {
	id, err := Zeros(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		id.data[i*n+i] = 1.0
	}

	return id, nil
}

// ZerosLike returns a new zero matrix with the same shape as m.
func ZerosLike(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}

	return NewDense(m.Rows(), m.Cols())
}

// ---------- Method facades on *Dense ----------

// Add returns m + b. See Add.
func (m *Dense) Add(b Matrix) (*Dense, error) { return Add(m, b) }

// Sub returns m − b. See Sub.
func (m *Dense) Sub(b Matrix) (*Dense, error) { return Sub(m, b) }

// Neg returns −m. Never fails on a valid receiver.
func (m *Dense) Neg() *Dense {
	res, _ := Neg(m)
	return res
}

// Mul returns the matrix product m × b. See Mul.
func (m *Dense) Mul(b Matrix) (*Dense, error) { return Mul(m, b) }

// Scale returns k·m. Never fails on a valid receiver.
func (m *Dense) Scale(k float64) *Dense {
	res, _ := Scale(k, m)
	return res
}

// T returns mᵀ. Never fails on a valid receiver.
func (m *Dense) T() *Dense {
	res, _ := Transpose(m)
	return res
}

// Trace returns the sum of the main diagonal. See Trace.
func (m *Dense) Trace() (float64, error) { return Trace(m) }

// Determinant returns det(m) for 1×1 and 2×2. See Determinant.
func (m *Dense) Determinant() (float64, error) { return Determinant(m) }

// Inverse returns m⁻¹ for 1×1 and 2×2. See Inverse.
func (m *Dense) Inverse() (*Dense, error) { return Inverse(m) }
