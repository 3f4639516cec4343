package bst

import "generic_containers/pkg/arena"

// PredecessorNode returns the node holding the largest value smaller than
// value. value must be in the tree.
func (tree *Tree[T]) PredecessorNode(value T) (Node[T], bool) {
	h := tree.find(tree.root, value)
	if h == arena.Nil {
		return Node[T]{}, false
	}

	if left := tree.get(h).left; left != arena.Nil {
		return tree.node(tree.maximum(left)), true
	}

	p := tree.get(h).parent
	for p != arena.Nil && tree.get(p).left == h {
		h = p
		p = tree.get(p).parent
	}
	return tree.node(p), p != arena.Nil
}

// SuccessorNode returns the node holding the smallest value greater than
// value. value must be in the tree.
func (tree *Tree[T]) SuccessorNode(value T) (Node[T], bool) {
	h := tree.find(tree.root, value)
	if h == arena.Nil {
		return Node[T]{}, false
	}

	if right := tree.get(h).right; right != arena.Nil {
		return tree.node(tree.minimum(right)), true
	}

	p := tree.get(h).parent
	for p != arena.Nil && tree.get(p).right == h {
		h = p
		p = tree.get(p).parent
	}
	return tree.node(p), p != arena.Nil
}

func (tree *Tree[T]) Predecessor(value T) (T, bool) {
	n, _ := tree.PredecessorNode(value)
	return n.Get()
}

func (tree *Tree[T]) Successor(value T) (T, bool) {
	n, _ := tree.SuccessorNode(value)
	return n.Get()
}

// LowestCommonAncestorNode returns the deepest node having both values in
// its subtree. Both values must be in the tree.
func (tree *Tree[T]) LowestCommonAncestorNode(value1, value2 T) (Node[T], bool) {
	if tree.find(tree.root, value1) == arena.Nil || tree.find(tree.root, value2) == arena.Nil {
		return Node[T]{}, false
	}

	ptr := tree.root
	for ptr != arena.Nil {
		n := tree.get(ptr)
		c1, c2 := tree.compare(n.data, value1), tree.compare(n.data, value2)
		switch {
		case c1 >= 1 && c2 >= 1:
			ptr = n.left
		case c1 <= -1 && c2 <= -1:
			ptr = n.right
		default:
			return tree.node(ptr), true
		}
	}
	return Node[T]{}, false
}

func (tree *Tree[T]) LowestCommonAncestor(value1, value2 T) (T, bool) {
	n, _ := tree.LowestCommonAncestorNode(value1, value2)
	return n.Get()
}
