package stack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStack(t *testing.T) {
	s := New[int](2)
	assert.True(t, s.Empty())
	for i := range 5 {
		s.Push(i)
	}
	require.Equal(t, 5, s.Size())
	assert.Equal(t, 4, s.Top())

	for i := 4; i >= 0; i-- {
		assert.Equal(t, i, s.Pop())
	}
	_, ok := s.TryPop()
	assert.False(t, ok)
	assert.PanicsWithValue(t, ErrEmptyStack, func() { s.Pop() })
	assert.PanicsWithValue(t, ErrEmptyStack, func() { s.Top() })

	s.Push(7)
	s.Reset()
	assert.True(t, s.Empty())
}
