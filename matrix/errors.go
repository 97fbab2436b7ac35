// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels (optionally wrapped with an
// operation tag) and tests MUST check them via errors.Is. No kernel panics on
// user-triggered error conditions.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and grep-ability.
// Kernels wrap with matrixErrorf("<Op>", ErrX) at the detection site; callers
// still match the underlying sentinel with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape -> dimension mismatch -> supported size -> arithmetic (singular).

var (
	// ErrInvalidDimensions indicates that requested dimensions are non-positive
	// or that a grid is empty (no rows, or an empty first row).
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Public indexers (At/Row/Col) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes, e.g. Add/Sub of
	// different shapes or Mul where a.Cols != b.Rows. It is the parent of every
	// dimension-related failure (see ErrNonSquare, ErrRaggedGrid).
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNotImplemented marks an intentionally unsupported operation.
	ErrNotImplemented = errors.New("matrix: operation not implemented")

	// ErrSingular is returned when an inverse would divide by a zero determinant
	// (or by a zero 1×1 entry).
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrVectorLength signals that two vectors passed to Dot differ in length.
	ErrVectorLength = errors.New("matrix: vectors must be the same length")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required by
	// the numeric policy (ingestion in New).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)

// Refined dimension sentinels. Each wraps ErrDimensionMismatch so that
// errors.Is(err, ErrDimensionMismatch) holds for all of them.
var (
	// ErrNonSquare signals that a square matrix was required (Trace, Determinant, Inverse).
	ErrNonSquare = fmt.Errorf("%w: matrix is not square", ErrDimensionMismatch)

	// ErrRaggedGrid signals that grid rows passed to New differ in length.
	ErrRaggedGrid = fmt.Errorf("%w: ragged grid rows", ErrDimensionMismatch)
)

// ErrUnsupportedSize is returned by Determinant and Inverse for square sizes
// outside {1, 2}. It wraps ErrNotImplemented; the limitation is permanent.
var ErrUnsupportedSize = fmt.Errorf("%w: size not supported (only 1x1 and 2x2)", ErrNotImplemented)
