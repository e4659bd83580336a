package tableau

import (
	"fmt"

	"github.com/katalvlaran/numkit/matrix"
)

// Search — staircase lookup in a sorted square matrix.
//
// Description:
//
//	Search locates target in an n×n matrix whose rows are non-decreasing
//	left-to-right and whose columns are non-decreasing top-to-bottom,
//	walking a staircase path instead of scanning every cell.
//
// Algorithm Outline:
//  1. Reject non-square input with ErrNonSquare (checked before any value).
//  2. Start at the top-right corner (row 0, col n-1).
//  3. At each cell compare to target:
//     equal   → found, return (row, col)
//     greater → the whole column below is too large: move one column left
//     smaller → the whole row to the left is too small: move one row down
//  4. Stop when the column underflows or the row reaches n (an empty
//     matrix stops immediately); report ErrNotFound.
//
// Duplicate values: when several coordinates hold target, Search returns
// some matching coordinate reachable by the staircase path — not
// necessarily the row-major-first one that BruteForce reports.
//
// Matrix access errors propagate wrapped with %w, so callers can still
// match matrix sentinels via errors.Is. The staircase indices stay in
// bounds for the whole walk, so this path guards the Matrix access
// contract rather than a condition reachable on a *matrix.Dense.
//
// Complexity:
//
//	Time   = O(rows+cols)
//	Memory = O(1)
func Search(m *matrix.Dense, target float64) (row, col int, err error) {
	n := m.Rows()
	if n != m.Cols() {
		return 0, 0, fmt.Errorf("Search: matrix is %dx%d: %w", m.Rows(), m.Cols(), ErrNonSquare)
	}

	var v float64
	i, j := 0, n-1
	for i < n && j >= 0 {
		v, err = m.At(i, j)
		if err != nil {
			return 0, 0, fmt.Errorf("Search: matrix access: %w", err)
		}
		switch {
		case v == target:
			return i, j, nil
		case v > target:
			j-- // current column is already too large for this row
		default:
			i++ // current row is already too small for this column
		}
	}

	return 0, 0, fmt.Errorf("Search: element %g: %w", target, ErrNotFound)
}

// BruteForce locates target by a full row-major scan, kept as the O(n²)
// reference implementation for Search. Under duplicates it returns the
// row-major-first coordinate. Same error surface as Search: ErrNonSquare
// on non-square input, ErrNotFound on a miss, wrapped matrix errors
// otherwise (unreachable on a *matrix.Dense — the scan indices are
// always in bounds).
// Complexity: O(rows·cols) time, O(1) memory.
func BruteForce(m *matrix.Dense, target float64) (row, col int, err error) {
	if m.Rows() != m.Cols() {
		return 0, 0, fmt.Errorf("BruteForce: matrix is %dx%d: %w", m.Rows(), m.Cols(), ErrNonSquare)
	}

	var v float64
	var i, j int
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			v, err = m.At(i, j)
			if err != nil {
				return 0, 0, fmt.Errorf("BruteForce: matrix access: %w", err)
			}
			if v == target {
				return i, j, nil
			}
		}
	}

	return 0, 0, fmt.Errorf("BruteForce: element %g: %w", target, ErrNotFound)
}
