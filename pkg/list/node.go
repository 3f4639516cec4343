package list

import "generic_containers/pkg/arena"

// Node is a read-only view of a list node. It is invalidated by the
// deletion of the node it refers to.
type Node[T any] struct {
	list *List[T]
	h    arena.Handle
	gen  uint64
}

func (l *List[T]) node(h arena.Handle) Node[T] {
	return Node[T]{list: l, h: h, gen: l.nodes.Gen(h)}
}

func (l *List[T]) own(n Node[T]) arena.Handle {
	if n.list != l || !l.nodes.Current(n.h, n.gen) {
		return arena.Nil
	}
	return n.h
}

func (n Node[T]) Valid() bool {
	return n.list != nil && n.list.nodes.Current(n.h, n.gen)
}

func (n Node[T]) Get() (data T, ok bool) {
	if !n.Valid() {
		return data, false
	}
	return n.list.get(n.h).data, true
}

func (n Node[T]) Data() T {
	data, _ := n.Get()
	return data
}

func (n Node[T]) Next() Node[T] {
	if !n.Valid() {
		return Node[T]{}
	}
	return n.list.node(n.list.get(n.h).next)
}
