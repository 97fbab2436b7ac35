package calc_test

import (
	"testing"

	"github.com/katalvlaran/matrixlab/internal/calc"
	"github.com/katalvlaran/matrixlab/matrix"
	"github.com/stretchr/testify/require"
)

func TestParseGrid(t *testing.T) {
	grid, err := calc.ParseGrid(" 1, 2 ; 3,4.5 ")
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 2}, {3, 4.5}}, grid)

	grid, err = calc.ParseGrid("-1e2")
	require.NoError(t, err)
	require.Equal(t, [][]float64{{-100}}, grid)

	_, err = calc.ParseGrid("")
	require.ErrorIs(t, err, calc.ErrParse)

	_, err = calc.ParseGrid("1,x;3,4")
	require.ErrorIs(t, err, calc.ErrParse)

	_, err = calc.ParseGrid("1,2;")
	require.ErrorIs(t, err, calc.ErrParse, "empty trailing row")
}

func TestParseMatrix(t *testing.T) {
	m, err := calc.ParseMatrix("1,2,3;4,5,6")
	require.NoError(t, err)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())

	_, err = calc.ParseMatrix("1,2;3")
	require.ErrorIs(t, err, matrix.ErrRaggedGrid)
}

func TestParseVector(t *testing.T) {
	v, err := calc.ParseVector("1,2,3")
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2, 3}, v)

	_, err = calc.ParseVector("1;2")
	require.ErrorIs(t, err, calc.ErrParse)
}
