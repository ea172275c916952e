package grid

import "errors"

var (
	// ErrEmptyGrid indicates the grid has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrBadSymbol indicates an ASCII row contains an unknown cell symbol.
	ErrBadSymbol = errors.New("grid: unknown cell symbol")
	// ErrOutOfBounds indicates a position outside the grid was supplied at construction.
	ErrOutOfBounds = errors.New("grid: position out of bounds")
)
