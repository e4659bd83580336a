// SPDX-License-Identifier: MIT

// Package matrix - elementary linear algebra on Dense matrices:
// transpose, element-wise addition, matrix multiplication and brute-force
// element search. All operations perform strict fail-fast validation,
// allocate a fresh result, and never mutate their operands.

package matrix

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opAdd = "Add"
	opMul = "Mul"
)

// mismatchErrorf wraps ErrDimensionMismatch with the operation tag and
// both operand shapes, keeping the sentinel matchable via errors.Is.
func mismatchErrorf(op string, a, b *Dense) error {
	return fmt.Errorf("%s: left is %dx%d, right is %dx%d: %w",
		op, a.r, a.c, b.r, b.c, ErrDimensionMismatch)
}

// Transpose returns a new c×r matrix with result[j][i] = m[i][j] for all
// valid i, j. The receiver is not modified; Transpose never fails, and
// Transpose(Transpose(m)) equals m.
// Complexity: O(r*c) time and memory.
func (m *Dense) Transpose() *Dense {
	out := Zeros(m.c, m.r)
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			out.data[j*m.r+i] = m.data[i*m.c+j]
		}
	}

	return out
}

// Add computes the element-wise sum m + other into a fresh matrix.
// Stage 1 (Validate): shapes must be identical, else ErrDimensionMismatch
// wrapped with both operand shapes.
// Stage 2 (Execute): single flat loop over the backing slices.
// Complexity: O(r*c) time and memory.
func (m *Dense) Add(other *Dense) (*Dense, error) {
	if m.r != other.r || m.c != other.c {
		return nil, mismatchErrorf(opAdd, m, other)
	}

	out := Zeros(m.r, m.c)
	for i := range m.data {
		out.data[i] = m.data[i] + other.data[i]
	}

	return out, nil
}

// Mul computes the matrix product m × other into a fresh r×other.c matrix.
// Stage 1 (Validate): m.Cols must equal other.Rows, else
// ErrDimensionMismatch wrapped with both operand shapes.
// Stage 2 (Execute): standard triple loop with a float64 accumulator per
// output cell (plain summation, no compensation), fixed i→j→k order.
// Complexity: O(r*c*other.c) time, O(r*other.c) memory.
func (m *Dense) Mul(other *Dense) (*Dense, error) {
	if m.c != other.r {
		return nil, mismatchErrorf(opMul, m, other)
	}

	out := Zeros(m.r, other.c)
	var i, j, k int
	var sum float64
	for i = 0; i < m.r; i++ {
		for j = 0; j < other.c; j++ {
			sum = 0
			for k = 0; k < m.c; k++ {
				sum += m.data[i*m.c+k] * other.data[k*other.c+j]
			}
			out.data[i*other.c+j] = sum
		}
	}

	return out, nil
}

// FindPosition scans the matrix in row-major order and returns the first
// coordinate whose stored value compares exactly equal to v.
//
// Equality is exact float64 comparison: values produced by arithmetic
// (e.g. 0.1+0.2) may not match their decimal literals. This is an
// intentional, documented limitation of the brute-force exercise, not a
// defect to compensate for.
//
// Returns ErrElementNotFound (wrapped with the element) on a miss; a 0×0
// matrix misses every value.
// Complexity: O(r*c) time, O(1) memory.
func (m *Dense) FindPosition(v float64) (row, col int, err error) {
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			if m.data[i*m.c+j] == v {
				return i, j, nil
			}
		}
	}

	return 0, 0, fmt.Errorf("FindPosition: element %g: %w", v, ErrElementNotFound)
}
