package components

import (
	"generic_containers/pkg/array"
	"generic_containers/pkg/bst"
	"generic_containers/pkg/file"
	"generic_containers/pkg/util"
)

// stage copies the distinct addresses of t, in increasing order, into a new
// segment and empties t.
func stage(t *bst.Tree[IP]) Segment {
	vf := file.New()
	util.PanicIfErr(vf.Truncate(uint64(t.Size()) * recordSize))
	seg := array.New[uint32](vf, recordSize, 0)

	buf := make([]byte, 0, recordSize)
	util.PanicIfErr(t.Scan(nil, func(k IP, count int) (bool, error) {
		seg.Push(Record{IP: k, Count: uint32(count)}.encode(buf))
		return false, nil
	}))

	t.Free()
	return seg
}
