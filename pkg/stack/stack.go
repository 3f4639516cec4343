package stack

import (
	"github.com/cockroachdb/errors"
)

var ErrEmptyStack = errors.New("empty stack")

type stack[T any] struct {
	s []T
}

type Stack[T any] interface {
	Push(v T)
	Pop() T
	TryPop() (T, bool)
	Top() T
	Size() int
	Empty() bool
	Reset()
}

func New[T any](initialSize int) Stack[T] {
	if initialSize < 0 {
		initialSize = 0
	}
	return &stack[T]{make([]T, 0, initialSize)}
}

func (s *stack[T]) Push(value T) {
	s.s = append(s.s, value)
}

// Pop panics with ErrEmptyStack on an empty stack.
func (s *stack[T]) Pop() T {
	value, ok := s.TryPop()
	if !ok {
		panic(ErrEmptyStack)
	}
	return value
}

func (s *stack[T]) TryPop() (T, bool) {
	var zero T
	l := len(s.s)
	if l == 0 {
		return zero, false
	}

	value := s.s[l-1]
	s.s[l-1] = zero
	s.s = s.s[:l-1]
	return value, true
}

func (s *stack[T]) Top() T {
	l := len(s.s)
	if l == 0 {
		panic(ErrEmptyStack)
	}

	return s.s[l-1]
}

func (s *stack[T]) Size() int {
	return len(s.s)
}

func (s *stack[T]) Empty() bool {
	return len(s.s) == 0
}

func (s *stack[T]) Reset() {
	clear(s.s)
	s.s = s.s[:0]
}
