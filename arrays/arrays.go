// Package arrays holds small slice exercises: linear search and the
// maximum product of a contiguous subarray.
package arrays

// FindElement returns the index of the first occurrence of el in arr,
// or -1 when arr is empty or el is absent.
// Complexity: O(n) time, O(1) memory.
func FindElement(arr []int, el int) int {
	for i := range arr {
		if arr[i] == el {
			return i
		}
	}

	return -1
}

// MaxProduct returns the maximum product over all non-empty contiguous
// subarrays of nums, or 0 for an empty slice.
//
// It tracks both the running maximum and minimum product ending at each
// position; a negative element swaps them, since multiplying by it turns
// the smallest product into the largest.
// Complexity: O(n) time, O(1) memory.
func MaxProduct(nums []int) int {
	if len(nums) == 0 {
		return 0
	}

	maxP, minP, best := nums[0], nums[0], nums[0]
	for _, v := range nums[1:] {
		if v < 0 {
			maxP, minP = minP, maxP
		}
		maxP = max(v, maxP*v)
		minP = min(v, minP*v)
		if maxP > best {
			best = maxP
		}
	}

	return best
}
