package heap

import (
	"bytes"

	"generic_containers/pkg/array"
	"generic_containers/pkg/container"
)

// Sort orders arr so that arr[i] is never outranked by arr[i+1] under
// compare, i.e. non-increasing for a three-way comparator. The elements are
// heapified into a separate queue and popped back into arr.
func Sort[T any](arr []T, compare container.Compare[T]) error {
	if len(arr) == 0 {
		return nil
	}

	pq, err := Heapify[struct{}](nil, arr, nil, compare, nil, nil)
	if err != nil {
		return err
	}
	defer pq.Free()

	for i := range arr {
		arr[i], _ = pq.TopPriority()
		if err := pq.Pop(); err != nil {
			return err
		}
	}
	return nil
}

// SortBytes sorts the fixed-size elements of a byte array with Sort
// semantics. Every element is copied out as a priority, so the extra memory
// is one element copy per slot.
func SortBytes[I array.Integer](arr array.Array[I], compare container.Compare[[]byte]) error {
	n := int(arr.Len())
	if n == 0 {
		return nil
	}

	pri := make([][]byte, n)
	for i := range pri {
		pri[i] = arr.GetCopy(I(i))
	}
	if err := Sort(pri, compare); err != nil {
		return err
	}

	for i, p := range pri {
		arr.Set(I(i), p)
	}
	return nil
}

// Ascending is the byte order that makes SortBytes produce increasing
// output.
func Ascending(a, b []byte) int {
	return bytes.Compare(b, a)
}
