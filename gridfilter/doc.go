// Package gridfilter implements the two grid operations of a 2-D histogram
// filter on top of matrix.Dense: normalization and cyclic blurring.
//
// What:
//
//   - Normalize scales a grid of non-negative masses so that all cells sum to 1.
//   - Blur spreads each cell's mass over its 3×3 neighbourhood and renormalizes.
//     The world is cyclic: mass leaving the right edge re-enters on the left,
//     mass leaving the bottom re-enters at the top.
//
// Why:
//
//   - Robot localization: a belief grid is blurred after every motion step to
//     model motion uncertainty, and normalized after every sensing step.
//
// Complexity:
//
//   - Normalize: O(W×H), Memory: O(W×H).
//   - Blur:      O(9×W×H), Memory: O(W×H).
//
// Window weights for blurring b ∈ [0, 1]:
//
//	b/12  b/6  b/12
//	b/6   1-b  b/6
//	b/12  b/6  b/12
//
// Errors:
//
//   - ErrZeroMass: the grid sums to zero and cannot be normalized.
//   - ErrNegativeMass: a cell holds a negative value.
//   - ErrBlurring: blurring is outside [0, 1] or NaN.
//   - matrix sentinels (ErrNilMatrix, ...) are passed through wrapped.
package gridfilter
