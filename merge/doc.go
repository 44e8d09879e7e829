// Package merge combines multiple sorted sequences into one sorted
// sequence using a priority queue. One cursor per input lives in the
// queue, keyed by the value at its head, so producing the next output
// value costs O(log k) for k inputs.
//
// Key features:
//   - Generic over any ordered element type
//   - Iterator-based interface using Go's iter.Seq
//   - Ascending (Sorted) and descending (SortedDesc) merges
//   - Lazy: inputs are pulled only as far as the consumer reads
//
// Basic usage:
//
//	a := slices.Values([]int{1, 3, 5})
//	b := slices.Values([]int{2, 4, 6})
//
//	for v := range merge.Sorted(a, b) {
//	    fmt.Println(v) // 1, 2, 3, 4, 5, 6
//	}
package merge
