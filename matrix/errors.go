// SPDX-License-Identifier: MIT

// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// matrix package. All operations MUST return these sentinels and tests
// MUST check them via errors.Is. No operation panics on user-triggered
// error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to
// allow easy grepping across logs. Sentinels are wrapped with
// fmt.Errorf("ctx: %w", ErrX) at the detection site so that the payload
// (coordinates, dimensions, element) travels in the message while
// errors.Is still matches.

var (
	// ErrInvalidCreation is returned by FromSlice when the supplied data
	// length does not equal rows*cols (or a dimension is negative).
	ErrInvalidCreation = errors.New("matrix: element count does not match dimensions")

	// ErrIndexOutOfBounds indicates that a row or column index is outside
	// valid bounds. Public indexers (At/Set) MUST return this, not panic.
	ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

	// ErrDimensionMismatch indicates incompatible dimensions between
	// operands: Add with different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrElementNotFound is returned by FindPosition when no stored value
	// compares exactly equal to the requested one.
	ErrElementNotFound = errors.New("matrix: element not found")
)
