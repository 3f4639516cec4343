package heap

import (
	"cmp"
	"encoding/binary"
	"math/rand/v2"
	"slices"
	"testing"

	"generic_containers/pkg/array"
	"generic_containers/pkg/container"
	"generic_containers/pkg/file"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSort(t *testing.T) {
	arr := []int{5, 1, 4, 2, 8, 4}
	require.NoError(t, Sort(arr, cmp.Compare[int]))
	assert.Equal(t, []int{8, 5, 4, 4, 2, 1}, arr)

	require.NoError(t, Sort(arr, container.Reverse(cmp.Compare[int])))
	assert.Equal(t, []int{1, 2, 4, 4, 5, 8}, arr)

	require.NoError(t, Sort([]int{}, cmp.Compare[int]))
}

func TestSortBytes(t *testing.T) {
	const n = 300
	rng := rand.New(rand.NewPCG(11, 12))

	vf := file.New()
	require.NoError(t, vf.Truncate(n*4))
	arr := array.New[uint32](vf, 4, n)
	want := make([]uint32, n)
	for i := range want {
		want[i] = rng.Uint32()
		arr.Set(uint32(i), binary.BigEndian.AppendUint32(nil, want[i]))
	}

	require.NoError(t, SortBytes(arr, Ascending))
	slices.Sort(want)

	got := make([]uint32, 0, n)
	for b := range arr.All() {
		got = append(got, binary.BigEndian.Uint32(b))
	}
	assert.Equal(t, want, got)
}
