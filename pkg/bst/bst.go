package bst

import (
	"io"

	"generic_containers/pkg/arena"
	"generic_containers/pkg/container"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

type node[T any] struct {
	data   T
	count  int
	left   arena.Handle
	right  arena.Handle
	parent arena.Handle
}

// Tree is an unbalanced binary search tree. Equal values collapse into one
// node whose count is incremented.
type Tree[T any] struct {
	nodes   *arena.Arena[node[T]]
	root    arena.Handle
	size    int
	compare container.Compare[T]
	free    container.Free[T]
	out     io.Writer
	log     *zap.Logger
}

func New[T any](compare container.Compare[T], free container.Free[T], opts ...container.Option) (*Tree[T], error) {
	if compare == nil {
		return nil, container.Misconfigured("binary search tree", "compare data")
	}

	cfg := container.NewConfig(opts...)
	return &Tree[T]{
		nodes:   arena.New[node[T]](0),
		root:    arena.Nil,
		compare: compare,
		free:    free,
		out:     cfg.Output,
		log:     cfg.Logger.Named("bst"),
	}, nil
}

// Free releases every node in post-order, calling the destructor on each
// payload.
func (tree *Tree[T]) Free() {
	tree.freeSubtree(tree.root)
	tree.nodes.Reset()
	tree.root = arena.Nil
	tree.size = 0
}

func (tree *Tree[T]) freeSubtree(h arena.Handle) {
	if h == arena.Nil {
		return
	}

	n := tree.get(h)
	tree.freeSubtree(n.left)
	tree.freeSubtree(n.right)
	if tree.free != nil {
		tree.free(n.data)
	}
}

// Size returns the number of distinct values.
func (tree *Tree[T]) Size() int {
	return tree.size
}

func (tree *Tree[T]) Empty() bool {
	return tree.root == arena.Nil
}

func (tree *Tree[T]) Root() Node[T] {
	return tree.node(tree.root)
}

func (tree *Tree[T]) Insert(value T) {
	parent := arena.Nil
	ptr := tree.root

	for ptr != arena.Nil {
		parent = ptr
		n := tree.get(ptr)
		switch c := tree.compare(n.data, value); {
		case c >= 1:
			ptr = n.left
		case c <= -1:
			ptr = n.right
		default:
			n.count++
			return
		}
	}

	z := tree.nodes.Alloc(node[T]{data: value, count: 1, parent: parent})
	if parent == arena.Nil {
		tree.root = z
	} else if p := tree.get(parent); tree.compare(p.data, value) >= 1 {
		p.left = z
	} else {
		p.right = z
	}

	tree.size++
}

func (tree *Tree[T]) Find(value T) (Node[T], bool) {
	h := tree.find(tree.root, value)
	return tree.node(h), h != arena.Nil
}

func (tree *Tree[T]) find(root arena.Handle, value T) arena.Handle {
	ptr := root
	for ptr != arena.Nil {
		n := tree.get(ptr)
		switch c := tree.compare(n.data, value); {
		case c <= -1:
			ptr = n.right
		case c >= 1:
			ptr = n.left
		default:
			return ptr
		}
	}
	return arena.Nil
}

// Delete removes the node holding value, whatever its count.
func (tree *Tree[T]) Delete(value T) error {
	z := tree.find(tree.root, value)
	if z == arena.Nil {
		tree.log.Debug("delete miss", zap.Int("size", tree.size))
		return errors.Wrap(container.ErrNotFound, "binary search tree delete")
	}

	if tree.free != nil {
		tree.free(tree.get(z).data)
	}
	tree.delete(z)
	return nil
}

// delete unlinks z. A node with two children takes over the payload and
// count of its in-order successor, which is deleted instead. The payload of
// z must already be released.
func (tree *Tree[T]) delete(z arena.Handle) {
	zn := tree.get(z)
	if zn.left != arena.Nil && zn.right != arena.Nil {
		s := tree.minimum(zn.right)
		sn := tree.get(s)
		zn.data = sn.data
		zn.count = sn.count
		tree.delete(s)
		return
	}

	child := zn.left
	if child == arena.Nil {
		child = zn.right
	}
	tree.transplant(z, child)

	tree.nodes.Release(z)
	tree.size--
}

// transplant puts v in the parent slot of u.
func (tree *Tree[T]) transplant(u, v arena.Handle) {
	un := tree.get(u)
	if un.parent == arena.Nil {
		tree.root = v
	} else if p := tree.get(un.parent); p.left == u {
		p.left = v
	} else {
		p.right = v
	}

	if v != arena.Nil {
		tree.get(v).parent = un.parent
	}
}

func (tree *Tree[T]) minimum(h arena.Handle) arena.Handle {
	if h == arena.Nil {
		return h
	}
	for tree.get(h).left != arena.Nil {
		h = tree.get(h).left
	}
	return h
}

func (tree *Tree[T]) maximum(h arena.Handle) arena.Handle {
	if h == arena.Nil {
		return h
	}
	for tree.get(h).right != arena.Nil {
		h = tree.get(h).right
	}
	return h
}

// MinNode returns the smallest node of the subtree rooted at root.
func (tree *Tree[T]) MinNode(root Node[T]) Node[T] {
	return tree.node(tree.minimum(tree.own(root)))
}

func (tree *Tree[T]) MaxNode(root Node[T]) Node[T] {
	return tree.node(tree.maximum(tree.own(root)))
}

func (tree *Tree[T]) MinData(root Node[T]) (T, bool) {
	return tree.MinNode(root).Get()
}

func (tree *Tree[T]) MaxData(root Node[T]) (T, bool) {
	return tree.MaxNode(root).Get()
}

func (tree *Tree[T]) Min() (T, bool) {
	return tree.MinData(tree.Root())
}

func (tree *Tree[T]) Max() (T, bool) {
	return tree.MaxData(tree.Root())
}

func (tree *Tree[T]) get(h arena.Handle) *node[T] {
	return tree.nodes.Get(h)
}
