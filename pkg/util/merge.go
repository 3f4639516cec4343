package util

import (
	"iter"

	"generic_containers/pkg/container"
	"generic_containers/pkg/heap"
)

// Merge yields the elements of the ascending sequences seqs in ascending
// order. A min priority queue keyed by the head of every sequence picks the
// next element; the queue data is the index of the sequence it came from.
func Merge[T any](compare container.Compare[T], seqs ...iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		if len(seqs) == 0 {
			return
		}

		pq := Must(heap.New[int](len(seqs), nil, container.Reverse(compare), nil, nil))
		next := make([]func() (T, bool), len(seqs))
		for i, seq := range seqs {
			n, stop := iter.Pull(seq)
			defer stop()
			next[i] = n
			if v, ok := n(); ok {
				pq.Push(i, v)
			}
		}

		for !pq.Empty() {
			i, _ := pq.Top()
			v, _ := pq.TopPriority()
			PanicIfErr(pq.Pop())
			if !yield(v) {
				return
			}
			if nv, ok := next[i](); ok {
				pq.Push(i, nv)
			}
		}
	}
}
