// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index
//     formula row*cols + col.
//   - Guarantee safety at the public surface: At/Set return errors instead
//     of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//
// Complexity quicksheet:
//   - Zeros/FromSlice: O(r*c); At/Set/Rows/Cols: O(1); Clone/Equal/String: O(r*c).

package matrix

import (
	"fmt"
	"strings"
)

// denseErrorf wraps an underlying error with Dense method context and the
// callsite indices, preserving the sentinel via %w.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix of float64 values.
//   - r, c hold dimensions (rows, cols), both >= 0.
//   - data is a flat buffer of length r*c in row-major order
//     (offset = row*c + col).
//
// Dimensions are immutable after construction; elements mutate only via Set.
type Dense struct {
	r, c int       // row and column counts (>= 0; zero allowed)
	data []float64 // contiguous row-major storage, len == r*c
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense)(nil)

// Zeros creates an r×c matrix with every element initialized to 0.0.
// Negative counts clamp to zero, so Zeros never fails; a 0×0 matrix is a
// valid (empty) value and every search over it reports not-found.
// Complexity: O(r*c) time and memory.
func Zeros(rows, cols int) *Dense {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}
}

// FromSlice creates an r×c matrix from the given row-major data.
// Stage 1 (Validate): rows and cols must be non-negative and len(data)
// must equal rows*cols; otherwise ErrInvalidCreation (wrapped with the
// expected and actual element counts).
// Stage 2 (Finalize): the data is copied, so the returned Dense is
// independent of the caller's slice.
// Complexity: O(r*c) time and memory.
func FromSlice(rows, cols int, data []float64) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("FromSlice(%d,%d): negative dimension: %w",
			rows, cols, ErrInvalidCreation)
	}
	expected := rows * cols
	if len(data) != expected {
		return nil, fmt.Errorf("FromSlice(%d,%d): expected %d elements, got %d: %w",
			rows, cols, expected, len(data), ErrInvalidCreation)
	}

	buf := make([]float64, expected)
	copy(buf, data)

	return &Dense{r: rows, c: cols, data: buf}, nil
}

// Rows returns the number of rows in the matrix.
// Complexity: O(1).
func (m *Dense) Rows() int {
	return m.r
}

// Cols returns the number of columns in the matrix.
// Complexity: O(1).
func (m *Dense) Cols() int {
	return m.c
}

// indexOf computes the flat index for (row, col) or reports the offending
// coordinates together with the matrix dimensions.
// Complexity: O(1).
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col,
			fmt.Errorf("matrix is %dx%d: %w", m.r, m.c, ErrIndexOutOfBounds))
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Returns ErrIndexOutOfBounds (wrapped) if either coordinate is out of
// range; the matrix is never modified.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Returns ErrIndexOutOfBounds (wrapped) on invalid indices; on success
// exactly one element changes, and nothing changes on failure.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy of the matrix.
// The returned Dense is fully independent of the original.
// Complexity: O(r*c) time and memory.
func (m *Dense) Clone() *Dense {
	buf := make([]float64, len(m.data))
	copy(buf, m.data)

	return &Dense{r: m.r, c: m.c, data: buf}
}

// Equal reports value equality: identical dimensions and identical stored
// values (exact float64 comparison, same caveats as FindPosition).
// Complexity: O(r*c).
func (m *Dense) Equal(other *Dense) bool {
	if other == nil || m.r != other.r || m.c != other.c {
		return false
	}
	for i := range m.data {
		if m.data[i] != other.data[i] {
			return false
		}
	}

	return true
}

// String implements fmt.Stringer for easy debugging: one bracketed line
// per row, values separated by commas.
// Complexity: O(r*c) for string construction.
func (m *Dense) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		sb.WriteString("[")
		for j = 0; j < m.c; j++ {
			sb.WriteString(fmt.Sprintf("%g", m.data[i*m.c+j]))
			if j < m.c-1 {
				sb.WriteString(", ")
			}
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
