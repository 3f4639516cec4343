package file

import (
	"bytes"
	"io"

	"github.com/cockroachdb/errors"
)

func New() *VirtualFile {
	return &VirtualFile{}
}

// VirtualFile is an in-memory Interface.
type VirtualFile struct {
	data []byte
}

func (vf *VirtualFile) Size() uint64 {
	return uint64(len(vf.data))
}

// Truncate changes the size of the file. Growing zero-fills the new tail.
func (vf *VirtualFile) Truncate(size uint64) error {
	if size <= uint64(cap(vf.data)) {
		old := uint64(len(vf.data))
		vf.data = vf.data[:size]
		if size > old {
			clear(vf.data[old:])
		}
		return nil
	}

	data := make([]byte, size, max(size, 2*uint64(cap(vf.data))))
	copy(data, vf.data)
	vf.data = data
	return nil
}

func (vf *VirtualFile) Slice(from, n uint64) []byte {
	return vf.data[from : from+n : from+n]
}

func (vf *VirtualFile) Reader() io.Reader {
	return bytes.NewReader(vf.data)
}

// ReadFrom appends everything r yields to the file.
func (vf *VirtualFile) ReadFrom(r io.Reader) (int64, error) {
	buf := bytes.NewBuffer(vf.data)
	n, err := buf.ReadFrom(r)
	vf.data = buf.Bytes()
	return n, errors.Wrap(err, "virtual file read")
}
