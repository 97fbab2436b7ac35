// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/matrixlab/matrix"
	"github.com/stretchr/testify/require"
)

// TestAddSub_Basic covers both the *Dense path and the generic path.
func TestAddSub_Basic(t *testing.T) {
	a := mustNew(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	b := mustNew(t, [][]float64{{6, 5, 4}, {3, 2, 1}})

	for _, tc := range []struct {
		name string
		a, b matrix.Matrix
	}{
		{"dense", a, b},
		{"fallback-left", hide{a}, b},
		{"fallback-both", hide{a}, hide{b}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			sum, err := matrix.Add(tc.a, tc.b)
			require.NoError(t, err)
			requireGrid(t, [][]float64{{7, 7, 7}, {7, 7, 7}}, sum)

			diff, err := matrix.Sub(tc.a, tc.b)
			require.NoError(t, err)
			requireGrid(t, [][]float64{{-5, -3, -1}, {1, 3, 5}}, diff)
		})
	}
}

// TestAddSub_DoesNotMutate ensures operands keep their values.
func TestAddSub_DoesNotMutate(t *testing.T) {
	a := mustNew(t, [][]float64{{1, 2}, {3, 4}})
	b := mustNew(t, [][]float64{{1, 1}, {1, 1}})

	_, err := a.Add(b)
	require.NoError(t, err)
	_, err = a.Sub(b)
	require.NoError(t, err)

	requireGrid(t, [][]float64{{1, 2}, {3, 4}}, a)
	requireGrid(t, [][]float64{{1, 1}, {1, 1}}, b)
}

// TestAddSub_Errors covers nil and shape mismatches.
func TestAddSub_Errors(t *testing.T) {
	a := mustNew(t, [][]float64{{1, 2}, {3, 4}})
	wide := mustNew(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	tall := mustNew(t, [][]float64{{1, 2}, {3, 4}, {5, 6}})

	_, err := matrix.Add(a, wide)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Sub(a, tall)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Add(nil, a)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	var typedNil *matrix.Dense
	_, err = matrix.Sub(a, typedNil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestNeg_Scenario negates [[1,2],[3,4]].
func TestNeg_Scenario(t *testing.T) {
	a := mustNew(t, [][]float64{{1, 2}, {3, 4}})

	requireGrid(t, [][]float64{{-1, -2}, {-3, -4}}, a.Neg())

	n, err := matrix.Neg(hide{a})
	require.NoError(t, err)
	requireGrid(t, [][]float64{{-1, -2}, {-3, -4}}, n)

	_, err = matrix.Neg(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestScale multiplies every entry by the scalar.
func TestScale(t *testing.T) {
	id, err := matrix.Identity(2)
	require.NoError(t, err)

	requireGrid(t, [][]float64{{2, 0}, {0, 2}}, id.Scale(2))

	s, err := matrix.Scale(0, mustNew(t, [][]float64{{5, -3}}))
	require.NoError(t, err)
	requireGrid(t, [][]float64{{0, 0}}, s)

	_, err = matrix.Scale(3, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestMul_Scenario checks [[1,2],[3,4]] × [[5,6],[7,8]] = [[19,22],[43,50]].
func TestMul_Scenario(t *testing.T) {
	a := mustNew(t, [][]float64{{1, 2}, {3, 4}})
	b := mustNew(t, [][]float64{{5, 6}, {7, 8}})

	p, err := a.Mul(b)
	require.NoError(t, err)
	requireGrid(t, [][]float64{{19, 22}, {43, 50}}, p)

	p, err = matrix.Mul(hide{a}, hide{b})
	require.NoError(t, err)
	requireGrid(t, [][]float64{{19, 22}, {43, 50}}, p)
}

// TestMul_Rectangular checks (2×3)·(3×2) → 2×2 and (3×1)·(1×2) → 3×2.
func TestMul_Rectangular(t *testing.T) {
	a := mustNew(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	b := mustNew(t, [][]float64{{7, 8}, {9, 10}, {11, 12}})

	p, err := matrix.Mul(a, b)
	require.NoError(t, err)
	requireGrid(t, [][]float64{{58, 64}, {139, 154}}, p)

	col := mustNew(t, [][]float64{{1}, {2}, {3}})
	row := mustNew(t, [][]float64{{4, 5}})
	outer, err := matrix.Mul(col, row)
	require.NoError(t, err)
	requireGrid(t, [][]float64{{4, 5}, {8, 10}, {12, 15}}, outer)
}

// TestMul_Identity ensures I·A == A·I == A.
func TestMul_Identity(t *testing.T) {
	a := mustNew(t, [][]float64{{2, -1, 0}, {0.5, 3, 7}, {1, 1, 1}})
	id, err := matrix.Identity(3)
	require.NoError(t, err)

	left, err := matrix.Mul(id, a)
	require.NoError(t, err)
	right, err := matrix.Mul(a, id)
	require.NoError(t, err)

	require.True(t, matrix.Equal(a, left))
	require.True(t, matrix.Equal(a, right))
}

// TestMul_Errors covers inner-dimension mismatch and nil operands.
func TestMul_Errors(t *testing.T) {
	a := mustNew(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	_, err := matrix.Mul(a, a) // 2×3 · 2×3
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Mul(nil, a)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Mul(a, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestTranspose covers rectangular shapes and both paths.
func TestTranspose(t *testing.T) {
	a := mustNew(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	requireGrid(t, [][]float64{{1, 4}, {2, 5}, {3, 6}}, a.T())

	tr, err := matrix.Transpose(hide{a})
	require.NoError(t, err)
	requireGrid(t, [][]float64{{1, 4}, {2, 5}, {3, 6}}, tr)

	requireGrid(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, a.T().T())

	_, err = matrix.Transpose(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestDot covers the scenario values and the length error.
func TestDot(t *testing.T) {
	d, err := matrix.Dot([]float64{1, 2, 3}, []float64{4, 5, 6})
	require.NoError(t, err)
	require.Equal(t, 32.0, d)

	d, err = matrix.Dot(nil, []float64{})
	require.NoError(t, err)
	require.Equal(t, 0.0, d)

	_, err = matrix.Dot([]float64{1, 2}, []float64{1, 2, 3})
	require.ErrorIs(t, err, matrix.ErrVectorLength)
}

// TestFactories checks Zeros and Identity contents and validation.
func TestFactories(t *testing.T) {
	z, err := matrix.Zeros(2, 3)
	require.NoError(t, err)
	requireGrid(t, [][]float64{{0, 0, 0}, {0, 0, 0}}, z)

	id, err := matrix.Identity(3)
	require.NoError(t, err)
	requireGrid(t, [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, id)

	_, err = matrix.Zeros(0, 1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.Identity(0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	zl, err := matrix.ZerosLike(hide{id})
	require.NoError(t, err)
	require.Equal(t, 3, zl.Rows())
	require.Equal(t, 3, zl.Cols())
}
