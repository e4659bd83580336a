// Package intervals collapses integer ranges into a minimal set of
// non-overlapping, sorted intervals covering the same union.
//
// The intervals package provides:
//
//   - Interval — a plain (Start, End) pair of integers. The type itself
//     enforces no Start <= End invariant; that is the caller's contract.
//   - Merge — stable sort by Start plus a single left-to-right fold.
//     Touching intervals (next.Start == current.End) merge too.
//
// Merge never fails: the empty input yields an empty output, and Merge
// is idempotent — applied to its own result it returns the same
// sequence unchanged.
//
// Performance: O(n log n) time for the sort, O(n) memory for the copy.
package intervals
