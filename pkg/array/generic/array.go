package array

import (
	"fmt"
)

const (
	DefaultCapacity = 10
	GrowthRatio     = 2
)

// Array is a growable slot array. Slots [0, Len()) are live, slots
// [Len(), Cap()) are allocated and zeroed.
type Array[T any] interface {
	Get(index int) *T
	Last() *T
	Set(index int, val T)
	Push(val T) int
	Popn()
	Pop() T
	Swap(i, j int)
	Len() int
	Cap() int
	Truncate(size int)
	Grow(capacity int)
	Items() []T
}

type array[T any] struct {
	items  []T
	length int
}

func New[T any](capacity int) Array[T] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &array[T]{
		items: make([]T, capacity),
	}
}

func (a *array[T]) Get(index int) *T {
	a.checkBounds(index)
	return &a.items[index]
}

func (a *array[T]) Last() *T {
	return a.Get(a.length - 1)
}

func (a *array[T]) Set(index int, val T) {
	a.checkBounds(index)
	a.items[index] = val
}

// Push appends val, doubling the capacity when the array is full, and
// returns its index.
func (a *array[T]) Push(val T) int {
	if a.length == len(a.items) {
		a.Grow(len(a.items) * GrowthRatio)
	}
	a.items[a.length] = val
	a.length++
	return a.length - 1
}

func (a *array[T]) Popn() {
	a.Pop()
}

func (a *array[T]) Pop() T {
	val := *a.Last()
	var zero T
	a.length--
	a.items[a.length] = zero
	return val
}

func (a *array[T]) Swap(i, j int) {
	a.checkBounds(i)
	a.checkBounds(j)
	a.items[i], a.items[j] = a.items[j], a.items[i]
}

func (a *array[T]) Len() int {
	return a.length
}

func (a *array[T]) Cap() int {
	return len(a.items)
}

// Truncate drops every slot past size.
func (a *array[T]) Truncate(size int) {
	if size < 0 || size > a.length {
		panic(fmt.Errorf("out of bounds: truncate to %d, len:%d", size, a.length))
	}
	clear(a.items[size:a.length])
	a.length = size
}

func (a *array[T]) Grow(capacity int) {
	if capacity <= len(a.items) {
		return
	}
	items := make([]T, capacity)
	copy(items, a.items[:a.length])
	a.items = items
}

// Items returns the live slots. The slice aliases the array storage.
func (a *array[T]) Items() []T {
	return a.items[:a.length]
}

func (a *array[T]) checkBounds(index int) {
	if index < 0 || index >= a.length {
		panic(fmt.Errorf("out of bounds: %d, len:%d", index, a.length))
	}
}
