package array

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArrayGrowth(t *testing.T) {
	arr := New[int](0)
	require.Equal(t, DefaultCapacity, arr.Cap())

	for i := range DefaultCapacity {
		arr.Push(i)
	}
	require.Equal(t, DefaultCapacity, arr.Cap())

	arr.Push(DefaultCapacity)
	assert.Equal(t, DefaultCapacity*GrowthRatio, arr.Cap())
	assert.Equal(t, DefaultCapacity+1, arr.Len())
	for i := range arr.Len() {
		assert.Equal(t, i, *arr.Get(i))
	}
}

func TestArraySlots(t *testing.T) {
	arr := New[string](2)
	arr.Push("a")
	arr.Push("b")
	arr.Swap(0, 1)
	assert.Equal(t, []string{"b", "a"}, arr.Items())

	assert.Equal(t, "a", arr.Pop())
	assert.Equal(t, 1, arr.Len())
	assert.Panics(t, func() { arr.Get(1) })

	arr.Set(0, "c")
	assert.Equal(t, "c", *arr.Last())

	arr.Truncate(0)
	assert.Equal(t, 0, arr.Len())
	assert.Equal(t, 2, arr.Cap())
}
