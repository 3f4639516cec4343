package array

import (
	"bytes"
	"fmt"
	"iter"

	"generic_containers/pkg/file"
)

type Integer interface {
	~int   | ~uint   |
	~uint8 | ~uint16 | ~uint32 | ~uint64 |
	~int8  | ~int16  | ~int32  | ~int64
}

// array stores fixed-size byte blobs back to back in a file. Elements are
// copied in on Set/Push and can be copied out with GetCopy.
type array[T Integer] struct {
	file     file.Interface
	elemSize T
	length   T
	offset   T
}

type Array[T Integer] interface {
	Get(index T) []byte
	GetCopy(index T) []byte
	Last() []byte
	Set(index T, val []byte)
	Push(val []byte) T
	Pop() []byte
	PopCopy() []byte
	Swap(i, j T)
	Len() T
	Cap() T
	ElemSize() int
	Slice(from, to T) Array[T]
	Truncate(size T)
	Grow(size T)
	File() file.Interface
	All() iter.Seq[[]byte]
}

func New[T Integer](file file.Interface, elemSize int, length uint64) Array[T] {
	if elemSize <= 0 {
		panic(fmt.Errorf("invalid element size: %d", elemSize))
	}
	a := &array[T]{
		file:     file,
		elemSize: T(elemSize),
		length:   T(length),
		offset:   0,
	}
	if a.length > a.Cap() {
		panic(fmt.Errorf("length %d exceeds file capacity %d", a.length, a.Cap()))
	}
	return a
}

func (a *array[T]) Get(index T) []byte {
	a.checkBounds(index)
	index += a.offset
	return a.file.Slice(a.indexToOffset(index), uint64(a.elemSize))
}

func (a *array[T]) GetCopy(index T) []byte {
	return bytes.Clone(a.Get(index))
}

func (a *array[T]) Last() []byte {
	return a.Get(a.length - 1)
}

// Set copies val into the element at index. val must be exactly ElemSize
// bytes long.
func (a *array[T]) Set(index T, val []byte) {
	if len(val) != int(a.elemSize) {
		panic(fmt.Errorf("element size mismatch: got %d, want %d", len(val), a.elemSize))
	}
	a.checkBounds(index)
	index += a.offset
	copy(a.file.Slice(a.indexToOffset(index), uint64(a.elemSize)), val)
}

func (a *array[T]) Push(val []byte) T {
	a.Grow(a.length + 1)
	a.Set(a.length - 1, val)
	return a.length - 1
}

func (a *array[T]) Pop() []byte {
	val := a.Get(a.length - 1)
	a.length--
	return val
}

func (a *array[T]) PopCopy() []byte {
	return bytes.Clone(a.Pop())
}

func (a *array[T]) Swap(i, j T) {
	itm1, itm2 := a.GetCopy(i), a.GetCopy(j)
	a.Set(i, itm2)
	a.Set(j, itm1)
}

func (a *array[T]) Len() T {
	return a.length
}

func (a *array[T]) Cap() T {
	return T(a.file.Size() / uint64(a.elemSize)) - a.offset
}

func (a *array[T]) ElemSize() int {
	return int(a.elemSize)
}

func (a *array[T]) Slice(from, to T) Array[T] {
	if from < 0 || from > to || to > a.Cap() {
		panic(fmt.Errorf("out of bounds: [%d:%d], len:%d, cap:%d", from, to, a.length, a.Cap()))
	}

	return &array[T]{
		file:     a.file,
		elemSize: a.elemSize,
		length:   to - from,
		offset:   a.offset + from,
	}
}

// Truncate resizes the backing file to hold size elements past the offset.
func (a *array[T]) Truncate(size T) {
	err := a.file.Truncate(uint64(a.offset + size) * uint64(a.elemSize))
	if err != nil {
		panic(err)
	}

	if a.length > size {
		a.length = size
	}
}

// Grow extends the length to size, doubling the backing file when it is
// too small.
func (a *array[T]) Grow(size T) {
	if size <= a.length {
		return
	}

	if size > a.Cap() {
		a.Truncate(max(size, 2*a.Cap()))
	}
	a.length = size
}

func (a *array[T]) File() file.Interface {
	return a.file
}

func (a *array[T]) All() iter.Seq[[]byte] {
	return func(yield func([]byte) bool) {
		for i := T(0); i < a.length; i++ {
			if !yield(a.Get(i)) {
				return
			}
		}
	}
}

func (a *array[T]) checkBounds(index T) {
	if index < 0 || index >= a.length {
		panic(fmt.Errorf("out of bounds: %d", index))
	}
}

func (a *array[T]) indexToOffset(index T) uint64 {
	return uint64(index) * uint64(a.elemSize)
}
