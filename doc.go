// Package pq implements a generic priority queue backed by a binary heap.
// It associates an opaque item with an orderable priority and supports
// insertion and extraction of the best element in O(log n), where "best"
// is either the smallest or the largest priority depending on the mode the
// queue was constructed with.
//
// The heap is stored as a flat slice interpreted as a complete binary
// tree; there are no tree nodes or pointers, just index arithmetic. Items
// are moved into the queue on Insert and out of it on Take, never compared
// or mutated.
//
// Key features:
//   - Generic implementation: any item type, any ordered priority type
//   - Minimize-head or maximize-head ordering, fixed at construction
//   - O(log n) insertion and extraction
//   - Empty extraction is a defined result, not an error
//
// Basic usage:
//
//	// Create a queue that yields the smallest priority first.
//	q := pq.New[string, int](16, pq.MinimizeHead)
//
//	q.Insert("low", 30)
//	q.Insert("high", 10)
//	q.Insert("mid", 20)
//
//	for q.Len() > 0 {
//	    item, _ := q.Take()
//	    fmt.Println(item) // high, mid, low
//	}
//
//	// Take on an empty queue reports no item rather than failing.
//	if _, ok := q.Take(); !ok {
//	    fmt.Println("empty")
//	}
//
// The queue performs no internal locking. Callers that share a queue
// across goroutines must guard every operation with a single external
// lock.
package pq
