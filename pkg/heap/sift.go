package heap

func parent(i int) int { return (i - 1) / 2 }
func left(i int) int   { return 2*i + 1 }
func right(i int) int  { return 2*i + 2 }

// outranks reports whether the node at i must sit above the node at j.
func (pq *PriorityQueue[D, P]) outranks(i, j int) bool {
	return pq.comparePri(pq.nodes.Get(i).pri, pq.nodes.Get(j).pri) >= 1
}

func (pq *PriorityQueue[D, P]) siftUp(i int) {
	for i > 0 && pq.outranks(i, parent(i)) {
		pq.nodes.Swap(i, parent(i))
		i = parent(i)
	}
}

func (pq *PriorityQueue[D, P]) siftDown(i int) {
	size := pq.nodes.Len()
	for {
		swap := i
		if l := left(i); l < size && pq.outranks(l, swap) {
			swap = l
		}
		if r := right(i); r < size && pq.outranks(r, swap) {
			swap = r
		}
		if swap == i {
			return
		}

		pq.nodes.Swap(i, swap)
		i = swap
	}
}

// valid reports whether the heap order holds for every live slot.
func (pq *PriorityQueue[D, P]) valid() bool {
	for i := 1; i < pq.nodes.Len(); i++ {
		if pq.outranks(i, parent(i)) {
			return false
		}
	}
	return true
}
