// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating nil/shape/size checks here.
//  - Return sentinel errors tagged with the validator name so call sites can
//    wrap uniformly with an operation tag.
//
// Determinism & Performance:
//  - All checks are pure and allocate nothing on the success path.
//  - ValidateGrid is O(r*c) (ragged + finite scan); every other check is O(1).

package matrix

import (
	"fmt"
	"math"
)

// Smallest and largest square sizes for which Determinant/Inverse have a
// closed form here.
const (
	minClosedFormSize = 1
	maxClosedFormSize = 2
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// A typed nil *Dense inside the interface is also rejected.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures matrices a and b have equal dimensions.
// Assumes a and b are not nil (caller must ensure).
// Complexity: O(1).
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateBinarySameShape – Composite: NotNil(a) → NotNil(b) → SameShape.
func ValidateBinarySameShape(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}

	return nil
}

// ValidateSquare – Composite: NotNil → Rows == Cols.
//
// Errors: ErrNilMatrix, ErrNonSquare (which is also ErrDimensionMismatch).
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquare", err)
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateClosedFormSize ensures a square m is 1×1 or 2×2.
// Assumes ValidateSquare already passed.
func ValidateClosedFormSize(m Matrix) error {
	if n := m.Rows(); n < minClosedFormSize || n > maxClosedFormSize {
		return validatorErrorf("ValidateClosedFormSize", ErrUnsupportedSize)
	}

	return nil
}

// ValidateMulCompatible ensures a.Cols == b.Rows, inputs non-nil.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateVecLen ensures two vectors have identical lengths.
// Complexity: O(1).
func ValidateVecLen(a, b []float64) error {
	if len(a) != len(b) {
		return validatorErrorf("ValidateVecLen", ErrVectorLength)
	}

	return nil
}

// ValidateGrid checks that grid is a non-empty rectangle and, when
// finiteOnly is set, that every entry is finite.
//
// Implementation:
//   - Stage 1: len(grid) > 0 and len(grid[0]) > 0, else ErrInvalidDimensions.
//   - Stage 2: every row has len(grid[0]) entries, else ErrRaggedGrid.
//   - Stage 3: optional NaN/±Inf scan, else ErrNaNInf.
//
// Complexity: O(r*c) time, O(1) space.
func ValidateGrid(grid [][]float64, finiteOnly bool) error {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return validatorErrorf("ValidateGrid", ErrInvalidDimensions)
	}
	w := len(grid[0])
	for i, row := range grid {
		if len(row) != w {
			return validatorErrorf("ValidateGrid", fmt.Errorf("row %d has %d entries, want %d: %w", i, len(row), w, ErrRaggedGrid))
		}
		if !finiteOnly {
			continue
		}
		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return validatorErrorf("ValidateGrid", fmt.Errorf("(%d,%d): %w", i, j, ErrNaNInf))
			}
		}
	}

	return nil
}
