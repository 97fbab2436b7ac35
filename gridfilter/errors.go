package gridfilter

import "errors"

var (
	// ErrZeroMass indicates the grid sums to zero, so it cannot be normalized.
	ErrZeroMass = errors.New("gridfilter: grid total is zero")
	// ErrNegativeMass indicates a cell holds a negative value.
	ErrNegativeMass = errors.New("gridfilter: cell values must be non-negative")
	// ErrBlurring indicates a blurring factor outside [0, 1].
	ErrBlurring = errors.New("gridfilter: blurring must be within [0, 1]")
)
