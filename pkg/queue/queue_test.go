package queue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueue(t *testing.T) {
	q := New[int]()
	assert.True(t, q.Empty())
	for i := range 4 {
		q.Push(i)
	}
	require.Equal(t, 4, q.Size())
	assert.Equal(t, 0, q.Front())
	for i := range 4 {
		assert.Equal(t, i, q.Pop())
	}
	assert.True(t, q.Empty())
	assert.PanicsWithValue(t, ErrEmptyQueue, func() { q.Pop() })
	assert.PanicsWithValue(t, ErrEmptyQueue, func() { q.Front() })
}
