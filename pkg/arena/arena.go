package arena

import (
	"fmt"

	array "generic_containers/pkg/array/generic"
	"generic_containers/pkg/stack"
)

// Handle addresses a node slot. Nil is slot 0, which is never handed out.
type Handle uint32

const Nil Handle = 0

// Arena owns every node of a container. Released slots are recycled
// through a free list so live handles stay stable. Every allocation gets a
// new generation, so a handle kept past its release can be told apart from
// the allocation that reused its slot.
type Arena[T any] struct {
	arr     array.Array[slot[T]]
	free    stack.Stack[Handle]
	count   int
	lastGen uint64
}

type slot[T any] struct {
	val  T
	live bool
	gen  uint64
}

func New[T any](capacity int) *Arena[T] {
	a := &Arena[T]{
		arr:  array.New[slot[T]](capacity + 1),
		free: stack.New[Handle](0),
	}
	a.arr.Push(slot[T]{})
	return a
}

// Alloc stores val in a free slot and returns its handle.
func (a *Arena[T]) Alloc(val T) Handle {
	a.count++
	a.lastGen++
	s := slot[T]{val: val, live: true, gen: a.lastGen}
	if h, ok := a.free.TryPop(); ok {
		*a.arr.Get(int(h)) = s
		return h
	}
	return Handle(a.arr.Push(s))
}

// Get returns the node stored under h. It panics for Nil or released
// handles.
func (a *Arena[T]) Get(h Handle) *T {
	s := a.slot(h)
	if !s.live {
		panic(fmt.Errorf("released handle: %d", h))
	}
	return &s.val
}

func (a *Arena[T]) Live(h Handle) bool {
	if h == Nil || int(h) >= a.arr.Len() {
		return false
	}
	return a.arr.Get(int(h)).live
}

// Gen returns the generation of the allocation held by h, 0 when h is not
// live.
func (a *Arena[T]) Gen(h Handle) uint64 {
	if !a.Live(h) {
		return 0
	}
	return a.arr.Get(int(h)).gen
}

// Current reports whether h still holds the allocation of generation gen.
func (a *Arena[T]) Current(h Handle, gen uint64) bool {
	return gen != 0 && a.Gen(h) == gen
}

// Release zeroes the slot of h and puts it on the free list.
func (a *Arena[T]) Release(h Handle) {
	s := a.slot(h)
	if !s.live {
		panic(fmt.Errorf("double release: %d", h))
	}
	*s = slot[T]{}
	a.free.Push(h)
	a.count--
}

// Len returns the number of live nodes.
func (a *Arena[T]) Len() int {
	return a.count
}

func (a *Arena[T]) Reset() {
	a.arr.Truncate(1)
	a.free.Reset()
	a.count = 0
}

func (a *Arena[T]) slot(h Handle) *slot[T] {
	if h == Nil {
		panic(fmt.Errorf("nil handle dereference"))
	}
	return a.arr.Get(int(h))
}
