// Package matrixlab is a small, dependable home for dense real matrices:
// build one from a grid, combine it with others, reduce it to a number.
//
// What is inside?
//
//	A compact toolkit with no hidden state:
//		• Dense values: row-major storage, immutable after construction
//		• Arithmetic: Add, Sub, Neg, Scale, Mul, Transpose
//		• Reductions: Trace; Determinant & Inverse in closed form (1×1, 2×2)
//		• Factories: Zeros, Identity
//		• Vectors: Dot
//		• Grid filters: Normalize & cyclic 3×3 Blur for histogram grids
//
// Why matrixlab?
//
//   - Errors, not panics – every failure is a wrapped sentinel for errors.Is
//   - Values, not references – operands are never mutated, results are fresh
//   - Honest limits – n×n determinants beyond 2×2 report ErrUnsupportedSize
//
// Layout:
//
//	matrix/         — Dense, factories, arithmetic, reductions, comparisons
//	gridfilter/     — Normalize, Window, Blur over matrix grids
//	cmd/matrixcalc/ — command-line calculator (flags or MATRIXCALC_* env)
//
// Quick example:
//
//	[1 2]   [5 6]   [19 22]
//	[3 4] · [7 8] = [43 50]
//
//	go get github.com/katalvlaran/matrixlab/matrix
package matrixlab
