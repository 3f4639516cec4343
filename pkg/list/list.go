package list

import (
	"fmt"
	"io"
	"iter"

	"generic_containers/pkg/arena"
	"generic_containers/pkg/container"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

type node[T any] struct {
	data T
	next arena.Handle
}

// List is a singly linked list. head and tail point into the same chain.
type List[T any] struct {
	nodes   *arena.Arena[node[T]]
	head    arena.Handle
	tail    arena.Handle
	size    int
	compare container.Compare[T]
	print   container.Print[T]
	free    container.Free[T]
	opts    []container.Option
	out     io.Writer
	log     *zap.Logger
}

// New creates an empty list. compare and print are required, free is
// optional.
func New[T any](
	compare container.Compare[T],
	print container.Print[T],
	free container.Free[T],
	opts ...container.Option,
) (*List[T], error) {
	if compare == nil {
		return nil, container.Misconfigured("linked list", "compare data")
	}
	if print == nil {
		return nil, container.Misconfigured("linked list", "print data")
	}

	cfg := container.NewConfig(opts...)
	return &List[T]{
		nodes:   arena.New[node[T]](0),
		compare: compare,
		print:   print,
		free:    free,
		opts:    opts,
		out:     cfg.Output,
		log:     cfg.Logger.Named("list"),
	}, nil
}

// Print calls the print function on every element, or writes "[ ]" for an
// empty list.
func (l *List[T]) Print() {
	if l.head == arena.Nil {
		fmt.Fprint(l.out, "[ ]")
		return
	}
	for h := l.head; h != arena.Nil; h = l.get(h).next {
		l.print(l.get(h).data)
	}
}

// Free releases every node, calling the destructor on each payload.
func (l *List[T]) Free() {
	for h := l.head; h != arena.Nil; h = l.get(h).next {
		l.release(h)
	}
	l.nodes.Reset()
	l.head, l.tail = arena.Nil, arena.Nil
	l.size = 0
}

func (l *List[T]) Empty() bool {
	return l.head == arena.Nil
}

func (l *List[T]) Size() int {
	return l.size
}

func (l *List[T]) Head() Node[T] {
	return l.node(l.head)
}

func (l *List[T]) Tail() Node[T] {
	return l.node(l.tail)
}

// Insert appends value at the tail.
func (l *List[T]) Insert(value T) {
	h := l.nodes.Alloc(node[T]{data: value})
	if l.head == arena.Nil {
		l.head, l.tail = h, h
	} else {
		l.get(l.tail).next = h
		l.tail = h
	}
	l.size++
}

func (l *List[T]) InsertFront(value T) {
	h := l.nodes.Alloc(node[T]{data: value, next: l.head})
	if l.head == arena.Nil {
		l.tail = h
	}
	l.head = h
	l.size++
}

// InsertOrder inserts value before the first element it does not compare
// greater than, keeping an ascending list ascending.
func (l *List[T]) InsertOrder(value T) {
	prev := arena.Nil
	curr := l.head
	for curr != arena.Nil && l.compare(value, l.get(curr).data) > 0 {
		prev = curr
		curr = l.get(curr).next
	}

	if prev == arena.Nil {
		l.InsertFront(value)
		return
	}
	if curr == arena.Nil {
		l.Insert(value)
		return
	}

	h := l.nodes.Alloc(node[T]{data: value, next: curr})
	l.get(prev).next = h
	l.size++
}

// InsertIndex inserts value so that it ends up at index. Indexes past the
// end append.
func (l *List[T]) InsertIndex(value T, index int) error {
	if index < 0 {
		return container.InvalidArgument("negative index %d", index)
	}
	if index >= l.size {
		l.Insert(value)
		return nil
	}
	if index == 0 {
		l.InsertFront(value)
		return nil
	}

	prev := l.at(index - 1)
	h := l.nodes.Alloc(node[T]{data: value, next: l.get(prev).next})
	l.get(prev).next = h
	l.size++
	return nil
}

func (l *List[T]) FindIndex(index int) (Node[T], bool) {
	if index < 0 || index >= l.size {
		return Node[T]{}, false
	}
	return l.node(l.at(index)), true
}

// FindData returns the first node equal to value.
func (l *List[T]) FindData(value T) (Node[T], bool) {
	for h := l.head; h != arena.Nil; h = l.get(h).next {
		if l.compare(l.get(h).data, value) == 0 {
			return l.node(h), true
		}
	}
	return Node[T]{}, false
}

// DeleteData removes the first node equal to value.
func (l *List[T]) DeleteData(value T) error {
	prev := arena.Nil
	curr := l.head
	for curr != arena.Nil && l.compare(l.get(curr).data, value) != 0 {
		prev = curr
		curr = l.get(curr).next
	}

	if curr == arena.Nil {
		return errors.Wrap(container.ErrNotFound, "linked list delete")
	}
	l.unlink(prev, curr)
	return nil
}

func (l *List[T]) DeleteIndex(index int) error {
	if index < 0 || index >= l.size {
		l.log.Debug("rejected index", zap.Int("index", index), zap.Int("size", l.size))
		return container.InvalidArgument("index %d out of range [0, %d)", index, l.size)
	}

	prev := arena.Nil
	if index > 0 {
		prev = l.at(index - 1)
	}
	curr := l.head
	if prev != arena.Nil {
		curr = l.get(prev).next
	}
	l.unlink(prev, curr)
	return nil
}

// Erase deletes every node in [left, right]. Reversed bounds are swapped
// and both bounds are clamped to the last index.
func (l *List[T]) Erase(left, right int) error {
	if l.head == arena.Nil {
		return errors.Wrap(container.ErrEmpty, "linked list erase")
	}
	if left < 0 || right < 0 {
		return container.InvalidArgument("negative erase bounds [%d, %d]", left, right)
	}
	if left > right {
		left, right = right, left
	}
	left = min(left, l.size-1)
	right = min(right, l.size-1)

	prev := arena.Nil
	if left > 0 {
		prev = l.at(left - 1)
	}
	for range right - left + 1 {
		curr := l.head
		if prev != arena.Nil {
			curr = l.get(prev).next
		}
		l.unlink(prev, curr)
	}
	return nil
}

// Filter copies every element matching filter into a new list sharing the
// behaviour of l. ok is false when nothing matched.
func (l *List[T]) Filter(filter container.Predicate[T]) (filtered *List[T], ok bool) {
	if filter == nil || l.head == arena.Nil {
		return nil, false
	}

	filtered, err := New(l.compare, l.print, l.free, l.opts...)
	if err != nil {
		return nil, false
	}
	for h := l.head; h != arena.Nil; h = l.get(h).next {
		if v := l.get(h).data; filter(v) {
			filtered.Insert(v)
		}
	}

	if filtered.Empty() {
		return nil, false
	}
	return filtered, true
}

// Map replaces every element with mapper(element). mapper takes ownership
// of the element it is given, so the destructor is not called on it. mapper
// must be injective for an ordered list to stay ordered.
func (l *List[T]) Map(mapper container.Mapper[T]) {
	if mapper == nil {
		return
	}
	for h := l.head; h != arena.Nil; h = l.get(h).next {
		n := l.get(h)
		n.data = mapper(n.data)
	}
}

// SwapData exchanges the payloads of two nodes of l.
func (l *List[T]) SwapData(first, second Node[T]) error {
	a, b := l.own(first), l.own(second)
	if a == arena.Nil || b == arena.Nil {
		return container.InvalidArgument("swap of foreign or released node")
	}
	if a == b {
		return nil
	}
	na, nb := l.get(a), l.get(b)
	na.data, nb.data = nb.data, na.data
	return nil
}

// ChangeData replaces the payload of n, releasing the old one.
func (l *List[T]) ChangeData(n Node[T], value T) error {
	h := l.own(n)
	if h == arena.Nil {
		return container.InvalidArgument("change of foreign or released node")
	}
	l.release(h)
	l.get(h).data = value
	return nil
}

// All yields every element from head to tail.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for h := l.head; h != arena.Nil; h = l.get(h).next {
			if !yield(l.get(h).data) {
				return
			}
		}
	}
}

// unlink removes curr, whose predecessor is prev (Nil for the head).
func (l *List[T]) unlink(prev, curr arena.Handle) {
	next := l.get(curr).next
	if prev == arena.Nil {
		l.head = next
	} else {
		l.get(prev).next = next
	}
	if next == arena.Nil {
		l.tail = prev
	}

	l.release(curr)
	l.nodes.Release(curr)
	l.size--
}

func (l *List[T]) release(h arena.Handle) {
	if l.free != nil {
		l.free(l.get(h).data)
	}
}

func (l *List[T]) at(index int) arena.Handle {
	if index == l.size-1 {
		return l.tail
	}
	h := l.head
	for range index {
		h = l.get(h).next
	}
	return h
}

func (l *List[T]) get(h arena.Handle) *node[T] {
	return l.nodes.Get(h)
}
