// Package matrix is a small dense-matrix value type with elementary
// linear-algebra operations.
//
// The matrix package provides:
//
//   - Dense, an immutable row-major grid of float64 built from [][]float64
//     (New, deep copy) or as Zeros / Identity.
//   - Arithmetic returning fresh values: Add, Sub, Neg, Scale (k·A), Mul (A·B)
//     and Transpose, plus the Dot product they rest on.
//   - Square reductions: Trace for any size; Determinant and Inverse only for
//     1×1 and 2×2 (ErrUnsupportedSize otherwise).
//   - Comparisons: Equal, EqualApprox, AllClose.
//
// Errors are package sentinels matched with errors.Is:
//
//	ErrDimensionMismatch  incompatible shapes (ErrNonSquare, ErrRaggedGrid wrap it)
//	ErrUnsupportedSize    determinant/inverse for n ≥ 3 (wraps ErrNotImplemented)
//	ErrSingular           inverse with a zero determinant
//	ErrOutOfRange         row/column index outside the matrix
//	ErrVectorLength       Dot over vectors of different length
//
// Dense values are never mutated after construction, so they can be shared
// between goroutines without locking.
package matrix
