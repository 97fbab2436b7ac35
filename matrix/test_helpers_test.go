// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and utilities for kernels.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/matrixlab/matrix"
	"github.com/stretchr/testify/require"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing the generic At-based path in code under test.
type hide struct{ matrix.Matrix }

// tol is the absolute tolerance used when results go through divisions.
const tol = 1e-12

// mustNew builds a Dense from a literal grid or fails the test.
func mustNew(t *testing.T, grid [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.New(grid)
	require.NoError(t, err)

	return m
}

// requireGrid asserts m has exactly the values of want (shape included).
func requireGrid(t *testing.T, want [][]float64, m *matrix.Dense) {
	t.Helper()
	require.NotNil(t, m)
	require.Equal(t, want, m.Grid())
}

// requireGridApprox asserts m matches want within tol per element.
func requireGridApprox(t *testing.T, want [][]float64, m *matrix.Dense) {
	t.Helper()
	require.NotNil(t, m)
	r, c := m.Shape()
	require.Equal(t, len(want), r, "rows")
	require.Equal(t, len(want[0]), c, "cols")
	for i := range want {
		for j := range want[i] {
			v, err := m.At(i, j)
			require.NoError(t, err)
			require.InDeltaf(t, want[i][j], v, tol, "(%d,%d)", i, j)
		}
	}
}

// fromFlat builds an r×c Dense from the first r*c values of vals.
func fromFlat(r, c int, vals []float64) *matrix.Dense {
	grid := make([][]float64, r)
	for i := range grid {
		grid[i] = append([]float64(nil), vals[i*c:(i+1)*c]...)
	}

	return matrix.MustNew(grid)
}
