package file

import "io"

// Interface is a resizable byte store addressed by offset.
type Interface interface {
	Truncate(size uint64) error
	Slice(from, n uint64) []byte
	Size() uint64
	Reader() io.Reader
}
