package gridfilter_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/matrixlab/gridfilter"
	"github.com/katalvlaran/matrixlab/matrix"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestBlurConservesMass checks that any blurred grid is a distribution.
func TestBlurConservesMass(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("blurred grid is non-negative and sums to 1", prop.ForAll(
		func(h, w int, b float64, vals []float64) bool {
			grid := make([][]float64, h)
			for i := range grid {
				grid[i] = vals[i*w : (i+1)*w]
			}
			grid[0][0] += 1 // never all zero
			g, err := matrix.New(grid)
			if err != nil {
				return false
			}

			out, err := gridfilter.Blur(g, b)
			if err != nil {
				return false
			}
			total, negative := 0.0, false
			out.Do(func(_, _ int, v float64) bool {
				total += v
				negative = negative || v < 0
				return true
			})
			return !negative && math.Abs(total-1) < 1e-9
		},
		gen.IntRange(1, 5), gen.IntRange(1, 5), gen.Float64Range(0, 1),
		gen.SliceOfN(25, gen.Float64Range(0, 10)),
	))

	properties.TestingRun(t)
}
