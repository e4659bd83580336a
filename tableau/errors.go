package tableau

import "errors"

var (
	// ErrNonSquare indicates the input matrix has rows != cols; both
	// search routines require a square matrix before looking at any value.
	ErrNonSquare = errors.New("tableau: matrix must be square")
	// ErrNotFound indicates the target value is absent from the matrix.
	// A 0×0 matrix misses every target.
	ErrNotFound = errors.New("tableau: element not found in sorted matrix")
)
