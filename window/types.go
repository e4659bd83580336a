package window

// monotonicDeque is the transient index structure behind MaxSliding.
// It stores candidate indices in strictly decreasing order of the
// referenced values; the front always refers to the current window
// maximum. It is a per-call device with no lifecycle of its own.
//
// The deque is a fixed-capacity ring buffer: a window never holds more
// than its size in candidates, so capacity k bounds the auxiliary memory
// at O(k). Every index is pushed and popped at most once, which is what
// makes the overall walk amortized O(1) per element.
type monotonicDeque struct {
	buf   []int // ring storage, capacity == window size
	head  int   // position of the front candidate
	count int   // number of live candidates
}

// newMonotonicDeque allocates a ring for at most k candidates.
func newMonotonicDeque(k int) *monotonicDeque {
	return &monotonicDeque{buf: make([]int, k)}
}

// empty reports whether no candidates remain.
func (d *monotonicDeque) empty() bool {
	return d.count == 0
}

// front returns the index of the current window maximum.
// Callers must ensure the deque is non-empty.
func (d *monotonicDeque) front() int {
	return d.buf[d.head]
}

// back returns the most recently pushed candidate index.
// Callers must ensure the deque is non-empty.
func (d *monotonicDeque) back() int {
	return d.buf[(d.head+d.count-1)%len(d.buf)]
}

// pushBack appends a new candidate index.
// Callers must ensure the deque is not full.
func (d *monotonicDeque) pushBack(i int) {
	d.buf[(d.head+d.count)%len(d.buf)] = i
	d.count++
}

// popBack discards the most recent candidate (dominated by a newer value).
func (d *monotonicDeque) popBack() {
	d.count--
}

// popFront discards the front candidate (slid out of the window).
func (d *monotonicDeque) popFront() {
	d.head = (d.head + 1) % len(d.buf)
	d.count--
}
