package array

import (
	"encoding/binary"
	"testing"

	"generic_containers/pkg/file"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func u32(v uint32) []byte {
	return binary.BigEndian.AppendUint32(nil, v)
}

func TestArray(t *testing.T) {
	arr := New[uint32](file.New(), 4, 0)
	for _, v := range []uint32{7, 3, 9} {
		arr.Push(u32(v))
	}
	require.Equal(t, uint32(3), arr.Len())
	require.GreaterOrEqual(t, arr.Cap(), arr.Len())
	assert.Equal(t, u32(3), arr.Get(1))
	assert.Equal(t, u32(9), arr.Last())

	arr.Swap(0, 2)
	assert.Equal(t, u32(9), arr.Get(0))
	assert.Equal(t, u32(7), arr.Get(2))

	// copies survive later writes
	c := arr.GetCopy(0)
	arr.Set(0, u32(1))
	assert.Equal(t, u32(9), c)

	assert.Equal(t, u32(7), arr.PopCopy())
	assert.Equal(t, uint32(2), arr.Len())

	s := arr.Slice(1, 2)
	assert.Equal(t, u32(3), s.Get(0))

	var got [][]byte
	for v := range arr.All() {
		got = append(got, v)
	}
	assert.Equal(t, [][]byte{u32(1), u32(3)}, got)

	assert.Panics(t, func() { arr.Get(5) })
	assert.Panics(t, func() { arr.Set(0, []byte{1}) })
}
