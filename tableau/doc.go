// Package tableau searches row- and column-sorted square matrices
// (Young tableaus) for an element position.
//
// 🚀 What is a Young tableau?
//
//	A square matrix where every row is non-decreasing left-to-right and
//	every column is non-decreasing top-to-bottom:
//
//	    [1, 2, 3]
//	    [4, 5, 6]
//	    [7, 8, 9]
//
// ✨ Key features:
//   - Search — the O(n) staircase walk from the top-right corner
//   - BruteForce — the O(n²) row-major reference scan
//   - identical error surface for both: ErrNonSquare, ErrNotFound, and
//     transparent pass-through of matrix-layer access errors
//
// The sorted-order precondition is assumed, not validated: handing an
// unsorted matrix to Search yields an unspecified (but terminating)
// result. Squareness IS validated and reported via ErrNonSquare.
//
// Performance:
//
//   - Search:     O(rows+cols) time, O(1) memory
//   - BruteForce: O(rows·cols) time, O(1) memory
package tableau
