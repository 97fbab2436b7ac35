// Command matrixcalc applies one matrix operation to grids given on the
// command line.
//
//	matrixcalc -op mul -a "1,2;3,4" -b "5,6;7,8"
//	MATRIXCALC_OP=det matrixcalc -a "3,2;1,4"
package main

import (
	"os"

	"github.com/katalvlaran/matrixlab/internal/calc"
)

func main() {
	os.Exit(calc.Main(os.Args[0], os.Args[1:], os.Stdout, os.Stderr))
}
