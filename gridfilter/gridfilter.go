package gridfilter

import (
	"fmt"
	"math"

	"github.com/katalvlaran/matrixlab/matrix"
)

// windowSize is the side of the square blurring window.
const windowSize = 3

// Window weight divisors: edge-adjacent cells get b/6, corner cells b/12.
const (
	adjacentDivisor = 6.0
	cornerDivisor   = 12.0
)

// cells reads g into a fresh [][]float64, rejecting negative values.
func cells(g matrix.Matrix) ([][]float64, float64, error) {
	if err := matrix.ValidateNotNil(g); err != nil {
		return nil, 0, err
	}
	rows, cols := g.Rows(), g.Cols()
	if rows == 0 || cols == 0 {
		return nil, 0, matrix.ErrInvalidDimensions
	}
	out := make([][]float64, rows)
	total := 0.0
	for i := 0; i < rows; i++ {
		out[i] = make([]float64, cols)
		for j := 0; j < cols; j++ {
			v, err := g.At(i, j)
			if err != nil {
				return nil, 0, err
			}
			if v < 0 {
				return nil, 0, fmt.Errorf("cell (%d,%d)=%g: %w", i, j, v, ErrNegativeMass)
			}
			out[i][j] = v
			total += v
		}
	}

	return out, total, nil
}

// Normalize returns g scaled so that its cells sum to 1.
//
// Errors: ErrNegativeMass, ErrZeroMass, matrix.ErrNilMatrix, and
// matrix.ErrNaNInf when the total overflows.
func Normalize(g matrix.Matrix) (*matrix.Dense, error) {
	_, total, err := cells(g)
	if err != nil {
		return nil, fmt.Errorf("Normalize: %w", err)
	}
	if total == 0 {
		return nil, fmt.Errorf("Normalize: %w", ErrZeroMass)
	}
	if math.IsInf(total, 0) || math.IsNaN(total) {
		return nil, fmt.Errorf("Normalize: total=%g: %w", total, matrix.ErrNaNInf)
	}

	out, err := matrix.Scale(1/total, g)
	if err != nil {
		return nil, fmt.Errorf("Normalize: %w", err)
	}

	return out, nil
}

// Window returns the 3×3 blurring kernel for the given blurring factor.
// The kernel sums to 1 for every valid b.
//
// Errors: ErrBlurring when b is NaN or outside [0, 1].
func Window(b float64) (*matrix.Dense, error) {
	if math.IsNaN(b) || b < 0 || b > 1 {
		return nil, fmt.Errorf("Window(%g): %w", b, ErrBlurring)
	}
	center := 1 - b
	adjacent := b / adjacentDivisor
	corner := b / cornerDivisor

	return matrix.New([][]float64{
		{corner, adjacent, corner},
		{adjacent, center, adjacent},
		{corner, adjacent, corner},
	})
}

// Blur spreads every cell over its cyclic 3×3 neighbourhood using Window(b)
// and returns the normalized result.
//
// Implementation:
//   - Stage 1: validate b and read g (non-negative cells).
//   - Stage 2: for each source cell and window offset (dy,dx) ∈ [-1,1]²,
//     add weight·mass to the target ((i+dy) mod H, (j+dx) mod W).
//   - Stage 3: Normalize.
//
// Errors: ErrBlurring, ErrNegativeMass, ErrZeroMass, matrix.ErrNilMatrix,
// matrix.ErrNaNInf.
//
// Complexity: O(9·W·H).
func Blur(g matrix.Matrix, b float64) (*matrix.Dense, error) {
	window, err := Window(b)
	if err != nil {
		return nil, fmt.Errorf("Blur: %w", err)
	}
	src, _, err := cells(g)
	if err != nil {
		return nil, fmt.Errorf("Blur: %w", err)
	}

	rows, cols := len(src), len(src[0])
	dst := make([][]float64, rows)
	for i := range dst {
		dst[i] = make([]float64, cols)
	}

	half := windowSize / 2
	var (
		i, j, dy, dx int
		w, mass      float64
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			mass = src[i][j]
			if mass == 0 {
				continue
			}
			for dy = -half; dy <= half; dy++ {
				for dx = -half; dx <= half; dx++ {
					w, _ = window.At(dy+half, dx+half) // always in range
					dst[wrap(i+dy, rows)][wrap(j+dx, cols)] += w * mass
				}
			}
		}
	}

	blurred, err := matrix.New(dst)
	if err != nil {
		return nil, fmt.Errorf("Blur: %w", err)
	}
	out, err := Normalize(blurred)
	if err != nil {
		return nil, fmt.Errorf("Blur: %w", err)
	}

	return out, nil
}

// wrap maps any index onto [0, n) cyclically, including negatives.
func wrap(i, n int) int {
	return ((i % n) + n) % n
}
