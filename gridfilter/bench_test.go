package gridfilter_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/matrixlab/gridfilter"
	"github.com/katalvlaran/matrixlab/matrix"
)

// BenchmarkBlur blurs a random 200×200 histogram.
// Complexity: O(9·W·H)
func BenchmarkBlur(b *testing.B) {
	const n = 200
	rng := rand.New(rand.NewSource(42))
	grid := make([][]float64, n)
	for y := range grid {
		grid[y] = make([]float64, n)
		for x := range grid[y] {
			grid[y][x] = rng.Float64()
		}
	}
	g, err := matrix.New(grid)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = gridfilter.Blur(g, 0.2); err != nil {
			b.Fatal(err)
		}
	}
}
