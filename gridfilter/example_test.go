package gridfilter_test

import (
	"fmt"

	"github.com/katalvlaran/matrixlab/gridfilter"
	"github.com/katalvlaran/matrixlab/matrix"
)

// ExampleBlur spreads a localized belief over its neighbourhood.
func ExampleBlur() {
	belief := matrix.MustNew([][]float64{
		{0, 0, 0},
		{0, 1, 0},
		{0, 0, 0},
	})

	blurred, err := gridfilter.Blur(belief, 0.12)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, row := range blurred.Grid() {
		fmt.Printf("%.2f %.2f %.2f\n", row[0], row[1], row[2])
	}
	// Output:
	// 0.01 0.02 0.01
	// 0.02 0.88 0.02
	// 0.01 0.02 0.01
}
