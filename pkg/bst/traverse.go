package bst

import (
	"fmt"
	"iter"

	"generic_containers/pkg/arena"
	"generic_containers/pkg/queue"
	"generic_containers/pkg/stack"
)

const emptyTree = "(Null)"

// TraverseInorder visits left subtree, node, right subtree.
func (tree *Tree[T]) TraverseInorder(visit func(n Node[T])) {
	tree.traverse(visit, tree.inorder)
}

// TraversePreorder visits node, left subtree, right subtree.
func (tree *Tree[T]) TraversePreorder(visit func(n Node[T])) {
	tree.traverse(visit, tree.preorder)
}

// TraversePostorder visits left subtree, right subtree, node.
func (tree *Tree[T]) TraversePostorder(visit func(n Node[T])) {
	tree.traverse(visit, tree.postorder)
}

// TraverseLevel visits nodes breadth first, left to right.
func (tree *Tree[T]) TraverseLevel(visit func(n Node[T])) {
	tree.traverse(visit, func(root arena.Handle, visit func(n Node[T])) {
		q := queue.New[arena.Handle]()
		q.Push(root)
		for !q.Empty() {
			h := q.Pop()
			visit(tree.node(h))

			n := tree.get(h)
			if n.left != arena.Nil {
				q.Push(n.left)
			}
			if n.right != arena.Nil {
				q.Push(n.right)
			}
		}
	})
}

func (tree *Tree[T]) traverse(visit func(n Node[T]), order func(root arena.Handle, visit func(n Node[T]))) {
	if visit == nil {
		return
	}
	if tree.root == arena.Nil {
		fmt.Fprintln(tree.out, emptyTree)
		return
	}
	order(tree.root, visit)
}

func (tree *Tree[T]) inorder(h arena.Handle, visit func(n Node[T])) {
	if h == arena.Nil {
		return
	}
	tree.inorder(tree.get(h).left, visit)
	visit(tree.node(h))
	tree.inorder(tree.get(h).right, visit)
}

func (tree *Tree[T]) preorder(h arena.Handle, visit func(n Node[T])) {
	if h == arena.Nil {
		return
	}
	visit(tree.node(h))
	tree.preorder(tree.get(h).left, visit)
	tree.preorder(tree.get(h).right, visit)
}

func (tree *Tree[T]) postorder(h arena.Handle, visit func(n Node[T])) {
	if h == arena.Nil {
		return
	}
	tree.postorder(tree.get(h).left, visit)
	tree.postorder(tree.get(h).right, visit)
	visit(tree.node(h))
}

// Scan walks the tree in increasing order starting at the first value not
// smaller than *from (or at the minimum when from is nil) until scanFn asks
// to stop or fails. scanFn must not mutate the tree.
func (tree *Tree[T]) Scan(from *T, scanFn func(value T, count int) (stop bool, err error)) error {
	s := stack.New[arena.Handle](0)

	// descend to the lower bound, remembering every node still to be visited
	curr := tree.root
	for curr != arena.Nil {
		n := tree.get(curr)
		if from != nil && tree.compare(n.data, *from) <= -1 {
			curr = n.right
			continue
		}
		s.Push(curr)
		curr = n.left
	}

	for !s.Empty() {
		curr = s.Pop()
		n := tree.get(curr)
		stop, err := scanFn(n.data, n.count)
		if stop || err != nil {
			return err
		}

		for next := n.right; next != arena.Nil; next = tree.get(next).left {
			s.Push(next)
		}
	}

	return nil
}

// All yields every distinct value in increasing order.
func (tree *Tree[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		_ = tree.Scan(nil, func(value T, _ int) (bool, error) {
			return !yield(value), nil
		})
	}
}
