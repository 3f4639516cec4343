package queue

import (
	"github.com/cockroachdb/errors"
	"github.com/emirpasic/gods/queues/linkedlistqueue"
)

var ErrEmptyQueue = errors.New("empty queue")

// Queue is a FIFO used as scratch storage by traversals.
type Queue[T any] interface {
	Push(v T)
	Pop() T
	Front() T
	Empty() bool
	Size() int
}

type queue[T any] struct {
	q *linkedlistqueue.Queue
}

func New[T any]() Queue[T] {
	return &queue[T]{q: linkedlistqueue.New()}
}

func (q *queue[T]) Push(v T) {
	q.q.Enqueue(v)
}

// Pop panics with ErrEmptyQueue on an empty queue.
func (q *queue[T]) Pop() T {
	v, ok := q.q.Dequeue()
	if !ok {
		panic(ErrEmptyQueue)
	}
	return v.(T)
}

func (q *queue[T]) Front() T {
	v, ok := q.q.Peek()
	if !ok {
		panic(ErrEmptyQueue)
	}
	return v.(T)
}

func (q *queue[T]) Empty() bool {
	return q.q.Empty()
}

func (q *queue[T]) Size() int {
	return q.q.Size()
}
