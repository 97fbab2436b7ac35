// SPDX-License-Identifier: MIT

// Package matrix: the read-only Matrix contract consumed by every kernel.
// Errors and options live in dedicated files (errors.go, options.go).
package matrix

// Matrix is a read-only two-dimensional array of float64 values.
// Kernels (Add, Mul, Transpose, ...) accept any Matrix and always return a
// freshly allocated *Dense; *Dense operands unlock flat-slice fast paths.
//
// There is deliberately no Set: a Matrix is a value, never mutated after
// construction.
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	// Complexity: O(1).
	Rows() int

	// Cols returns the number of columns in the matrix.
	// Complexity: O(1).
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	// Complexity: O(1).
	At(i, j int) (float64, error)
}
