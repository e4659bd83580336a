package intervals_test

import (
	"fmt"

	"github.com/katalvlaran/numkit/intervals"
)

// ExampleMerge folds the canonical interval set into its minimal cover.
func ExampleMerge() {
	in := []intervals.Interval{
		{Start: 1, End: 3},
		{Start: 2, End: 6},
		{Start: 8, End: 10},
		{Start: 15, End: 18},
	}

	for _, iv := range intervals.Merge(in) {
		fmt.Printf("(%d, %d)\n", iv.Start, iv.End)
	}
	// Output:
	// (1, 6)
	// (8, 10)
	// (15, 18)
}
