// Package window computes sliding-window maxima over integer slices
// using a monotonic index deque.
//
// 🚀 What is a sliding-window maximum?
//
//	Given nums and a window size k, report the maximum of every
//	contiguous k-element window as it slides left-to-right:
//
//	  nums = [1, 3, -1, -3, 5, 3, 6, 7], k = 3
//	  maxima = [3, 3, 5, 5, 6, 7]
//
// ✨ Key features:
//   - amortized O(1) per element — every index enters and leaves the
//     deque at most once
//   - indices, not values, live in the deque, so window-boundary
//     eviction is a single comparison
//   - strictly decreasing deque order: the front is always the current
//     window maximum
//
// Performance:
//
//   - Time:   O(n)
//   - Memory: O(n) result + O(k) auxiliary
//
// See example_test.go for usage patterns.
package window
