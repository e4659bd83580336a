package intervals

import "sort"

// Interval is a pair of integers delimiting an inclusive range.
// Typical usage has Start <= End, but the type does not enforce it.
type Interval struct {
	Start int
	End   int
}

// Merge — collapse overlapping intervals.
//
// Description:
//
//	Merge returns the minimal set of non-overlapping intervals covering
//	the same union of ranges as the input, sorted by Start. Each output
//	interval is (min Start, max End) over everything folded into it.
//	Input order is irrelevant and the input slice is never modified.
//
// Algorithm Outline:
//  1. Copy the input and stably sort the copy by Start; stability keeps
//     tie order deterministic.
//  2. Fold left-to-right with a current accumulator seeded from the
//     first interval: if the next interval starts at or before the
//     accumulator's end (inclusive — touching intervals merge), extend
//     the end to the max of the two; otherwise emit the accumulator and
//     restart from the next interval.
//  3. Emit the final accumulator.
//
// Edge cases: empty input yields an empty (non-nil) result; a single
// interval is returned unchanged. Merge(Merge(x)) == Merge(x).
//
// Complexity:
//
//	Time   = O(n log n) for the sort, O(n) fold
//	Memory = O(n) for the sorted copy and the result
func Merge(in []Interval) []Interval {
	if len(in) == 0 {
		return []Interval{}
	}

	sorted := make([]Interval, len(in))
	copy(sorted, in)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Start < sorted[j].Start })

	out := make([]Interval, 0, len(sorted))
	current := sorted[0]
	for _, iv := range sorted[1:] {
		if iv.Start <= current.End {
			if iv.End > current.End {
				current.End = iv.End
			}

			continue
		}
		out = append(out, current)
		current = iv
	}

	return append(out, current)
}
