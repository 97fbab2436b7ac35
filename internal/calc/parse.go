package calc

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/matrixlab/matrix"
)

// ErrParse marks an operand that is not a well-formed grid literal.
var ErrParse = errors.New("calc: malformed grid")

// Grid literal separators: rows by ';', cells by ',' (blanks around cells are ignored).
const (
	rowSep  = ";"
	cellSep = ","
)

// ParseGrid converts a literal such as "1,2;3,4" into a rows×cols grid.
// Shape checks (ragged rows, empty grid) are left to matrix.New.
func ParseGrid(s string) ([][]float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("%w: empty literal", ErrParse)
	}

	rows := strings.Split(s, rowSep)
	grid := make([][]float64, len(rows))
	for i, row := range rows {
		fields := strings.Split(row, cellSep)
		grid[i] = make([]float64, len(fields))
		for j, field := range fields {
			field = strings.TrimSpace(field)
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: row %d cell %d %q", ErrParse, i, j, field)
			}
			grid[i][j] = v
		}
	}

	return grid, nil
}

// ParseMatrix parses s and builds a validated matrix.Dense from it.
func ParseMatrix(s string) (*matrix.Dense, error) {
	grid, err := ParseGrid(s)
	if err != nil {
		return nil, err
	}

	return matrix.New(grid)
}

// ParseVector parses a single-row literal such as "1,2,3".
func ParseVector(s string) ([]float64, error) {
	grid, err := ParseGrid(s)
	if err != nil {
		return nil, err
	}
	if len(grid) != 1 {
		return nil, fmt.Errorf("%w: vector must be a single row, got %d rows", ErrParse, len(grid))
	}

	return grid[0], nil
}
