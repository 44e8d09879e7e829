package pq

import "cmp"

// Mode determines which of two priorities wins a comparison and therefore
// which value sits at the head of the queue. It is fixed at construction
// and never changes for the lifetime of a queue.
type Mode int

const (
	// MinimizeHead keeps the smallest priority at the head.
	MinimizeHead Mode = iota
	// MaximizeHead keeps the largest priority at the head.
	MaximizeHead
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case MinimizeHead:
		return "minimize"
	case MaximizeHead:
		return "maximize"
	default:
		return "unknown"
	}
}

// entry pairs an item with the priority it was inserted under.
type entry[R any, P cmp.Ordered] struct {
	item     R
	priority P
}

// Queue implements a priority queue backed by a binary heap. Entries live
// in a flat slice interpreted as a complete binary tree: the node at index
// i has its parent at (i-1)/2 and its children at 2i+1 and 2i+2, and the
// head is always at index 0.
type Queue[R any, P cmp.Ordered] struct {
	data []entry[R, P]
	mode Mode
}

// New creates an empty queue in the given mode. capacityHint reserves
// backing space and is advisory only; the queue grows past it as needed.
func New[R any, P cmp.Ordered](capacityHint int, mode Mode) *Queue[R, P] {
	if capacityHint < 0 {
		capacityHint = 0
	}
	return &Queue[R, P]{
		data: make([]entry[R, P], 0, capacityHint),
		mode: mode,
	}
}

// Len returns the number of items in the queue.
func (q *Queue[R, P]) Len() int {
	return len(q.data)
}

// parent returns the index of i's parent. Not valid for the root.
func parent(i int) int {
	return (i - 1) / 2
}

// children returns the candidate child indices of i. Whether they exist
// must be checked against the current length.
func children(i int) (int, int) {
	return 2*i + 1, 2*i + 2
}

// violates reports whether the entries at parentIdx and childIdx break the
// heap property under the configured mode. Equal priorities never violate.
func (q *Queue[R, P]) violates(parentIdx, childIdx int) bool {
	if q.mode == MaximizeHead {
		return q.data[parentIdx].priority < q.data[childIdx].priority
	}
	return q.data[parentIdx].priority > q.data[childIdx].priority
}

// bestChild returns the child of i to consider swapping when sifting down,
// or -1 when i has no children. With two children it returns the one that
// could be the parent of the other without breaking the heap property.
// Existence is checked against the live length of the backing slice.
func (q *Queue[R, P]) bestChild(i int) int {
	first, second := children(i)
	n := len(q.data)
	switch {
	case first >= n:
		return -1
	case second >= n:
		return first
	case q.violates(first, second):
		return second
	default:
		return first
	}
}

// swap exchanges the entries at index i and j.
func (q *Queue[R, P]) swap(i, j int) {
	q.data[i], q.data[j] = q.data[j], q.data[i]
}

// Insert adds item to the queue under the given priority. Insertion never
// fails and costs O(log n).
func (q *Queue[R, P]) Insert(item R, priority P) {
	q.data = append(q.data, entry[R, P]{item: item, priority: priority})

	// Sift up from the new leaf until the heap property holds again.
	for i := len(q.data) - 1; i != 0; {
		p := parent(i)
		if !q.violates(p, i) {
			break
		}
		q.swap(p, i)
		i = p
	}
}

// Take removes and returns the head item: the one with the smallest
// priority in MinimizeHead mode or the largest in MaximizeHead mode. The
// second return is false when the queue is empty.
func (q *Queue[R, P]) Take() (R, bool) {
	n := len(q.data)
	if n == 0 {
		var zero R
		return zero, false
	}

	// Move the head to the end and pop it off before sifting down, so the
	// fix-up walk only ever sees the reduced slice.
	q.swap(0, n-1)
	head := q.data[n-1].item
	q.data[n-1] = entry[R, P]{}
	q.data = q.data[:n-1]

	for i := 0; ; {
		child := q.bestChild(i)
		if child < 0 || !q.violates(i, child) {
			break
		}
		q.swap(i, child)
		i = child
	}

	return head, true
}
