// Package numkit is your in-memory playground for classic array, vector
// and dense-matrix algorithms — small, self-contained and deterministic.
//
// 🚀 What is numkit?
//
//	A compact, zero-surprise library that brings together:
//		• Dense matrices: row-major float64 storage, bounds-checked access,
//		  transpose, addition, multiplication and element search
//		• Tableau search: O(n) staircase lookup in row- and column-sorted
//		  square matrices (plus the O(n²) brute-force reference)
//		• Sliding windows: amortized O(1) window maxima via a monotonic deque
//		• Intervals: merging overlapping ranges into a minimal sorted set
//		• Arrays: linear search and max-product-subarray glue
//
// ✨ Why choose numkit?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – explicit errors, no panics on bad input
//   - Pure Go – no cgo, no hidden deps
//   - Deterministic – fixed loop orders, reproducible results
//
// Everything is organized under five subpackages:
//
//	matrix/    — dense row-major float64 matrix + arithmetic
//	tableau/   — sorted-square-matrix (Young tableau) search
//	window/    — sliding-window maximum over integer slices
//	intervals/ — interval merging
//	arrays/    — trivial slice exercises (linear search, max product)
//
// Every fallible operation returns a sentinel error matchable with
// errors.Is; see each package's errors.go for the full taxonomy.
//
//	go get github.com/katalvlaran/numkit
package numkit
