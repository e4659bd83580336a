package window

// MaxSliding — sliding-window maximum via a monotonic deque.
//
// Description:
//
//	MaxSliding returns the maximum of every contiguous size-element
//	window of nums, in left-to-right window order. For
//	1 <= size <= len(nums) the result holds exactly
//	len(nums)-size+1 values.
//
// Algorithm Outline:
//  1. For each index i, first evict the deque front while it has slid
//     out of the window (front <= i-size).
//  2. Pop indices from the back while their value is <= nums[i]: the new
//     element dominates them — it is at least as large and will outlive
//     them in the window. This keeps the deque strictly decreasing.
//  3. Push i to the back.
//  4. Once the first window closes (i >= size-1), record nums[front]
//     for this and every subsequent i.
//
// Edge cases:
//   - empty nums or size <= 0 → empty (non-nil) result, no error
//   - size == 1              → a copy of nums
//   - size == len(nums)      → one value, the global maximum
//   - size >  len(nums)      → excluded input; MaxSliding returns an
//     empty result rather than panicking, but callers should not rely
//     on that behavior.
//
// Complexity:
//
//	Time   = O(n) — every index enters and leaves the deque at most once
//	Memory = O(n) result + O(size) auxiliary
func MaxSliding(nums []int, size int) []int {
	if len(nums) == 0 || size <= 0 || size > len(nums) {
		return []int{}
	}
	if size == 1 {
		out := make([]int, len(nums))
		copy(out, nums)

		return out
	}

	out := make([]int, 0, len(nums)-size+1)
	dq := newMonotonicDeque(size)
	for i, v := range nums {
		// Evict the front once it falls outside [i-size+1, i].
		if !dq.empty() && dq.front() <= i-size {
			dq.popFront()
		}
		// Drop dominated candidates from the back.
		for !dq.empty() && nums[dq.back()] <= v {
			dq.popBack()
		}
		dq.pushBack(i)

		if i >= size-1 {
			out = append(out, nums[dq.front()])
		}
	}

	return out
}
