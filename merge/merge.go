package merge

import (
	"cmp"
	"iter"

	"github.com/jawline/pq"
)

// cursor tracks one input sequence: the value currently at its head and
// the pull function that advances it.
type cursor[E any] struct {
	head E
	next func() (E, bool)
}

// Sorted merges ascending input sequences into a single ascending
// sequence. Each input must already be sorted; the output order is
// unspecified otherwise. Exhausted and empty inputs are skipped.
func Sorted[E cmp.Ordered](seqs ...iter.Seq[E]) iter.Seq[E] {
	return ordered[E](pq.MinimizeHead, seqs)
}

// SortedDesc is Sorted for descending inputs, producing a descending
// output.
func SortedDesc[E cmp.Ordered](seqs ...iter.Seq[E]) iter.Seq[E] {
	return ordered[E](pq.MaximizeHead, seqs)
}

func ordered[E cmp.Ordered](mode pq.Mode, seqs []iter.Seq[E]) iter.Seq[E] {
	return func(yield func(E) bool) {
		q := pq.New[cursor[E], E](len(seqs), mode)

		for _, seq := range seqs {
			next, stop := iter.Pull(seq)
			defer stop()
			if v, ok := next(); ok {
				q.Insert(cursor[E]{head: v, next: next}, v)
			}
		}

		// The queue holds one cursor per live input, keyed by the value at
		// its head, so the overall best value is always at the queue head.
		for {
			c, ok := q.Take()
			if !ok {
				return
			}
			if !yield(c.head) {
				return
			}
			if v, ok := c.next(); ok {
				q.Insert(cursor[E]{head: v, next: c.next}, v)
			}
		}
	}
}
