package bst

import "generic_containers/pkg/arena"

// Node is a read-only view of a tree node. It is invalidated by the
// deletion of the node it refers to.
type Node[T any] struct {
	tree *Tree[T]
	h    arena.Handle
	gen  uint64
}

func (tree *Tree[T]) node(h arena.Handle) Node[T] {
	return Node[T]{tree: tree, h: h, gen: tree.nodes.Gen(h)}
}

// own returns the handle of n if n belongs to tree.
func (tree *Tree[T]) own(n Node[T]) arena.Handle {
	if n.tree != tree || !tree.nodes.Current(n.h, n.gen) {
		return arena.Nil
	}
	return n.h
}

func (n Node[T]) Valid() bool {
	return n.tree != nil && n.tree.nodes.Current(n.h, n.gen)
}

// Get returns the payload of n.
func (n Node[T]) Get() (data T, ok bool) {
	if !n.Valid() {
		return data, false
	}
	return n.tree.get(n.h).data, true
}

// Data returns the payload of n or the zero value.
func (n Node[T]) Data() T {
	data, _ := n.Get()
	return data
}

// Count is the number of times the value of n was inserted.
func (n Node[T]) Count() int {
	if !n.Valid() {
		return 0
	}
	return n.tree.get(n.h).count
}

func (n Node[T]) Left() Node[T] {
	return n.link(func(nd *node[T]) arena.Handle { return nd.left })
}

func (n Node[T]) Right() Node[T] {
	return n.link(func(nd *node[T]) arena.Handle { return nd.right })
}

func (n Node[T]) Parent() Node[T] {
	return n.link(func(nd *node[T]) arena.Handle { return nd.parent })
}

func (n Node[T]) link(next func(nd *node[T]) arena.Handle) Node[T] {
	if !n.Valid() {
		return Node[T]{}
	}
	return n.tree.node(next(n.tree.get(n.h)))
}

// Level counts the parent links between n and the root. The root is at
// level 0, an invalid node at -1.
func (n Node[T]) Level() int {
	if !n.Valid() {
		return -1
	}

	level := 0
	for p := n.tree.get(n.h).parent; p != arena.Nil; p = n.tree.get(p).parent {
		level++
	}
	return level
}
