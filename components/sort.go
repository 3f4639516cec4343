package components

import (
	"io"

	"generic_containers/pkg/array"
	"generic_containers/pkg/file"
	"generic_containers/pkg/heap"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// SortRecords reads fixed-size records from r, sorts them by byte order and
// writes them to w. It returns the number of records.
func SortRecords(r io.Reader, w io.Writer, recordSize int, log *zap.Logger) (uint64, error) {
	if recordSize <= 0 {
		return 0, errors.Newf("invalid record size %d", recordSize)
	}

	vf := file.New()
	if _, err := vf.ReadFrom(r); err != nil {
		return 0, err
	}
	if vf.Size()%uint64(recordSize) != 0 {
		return 0, errors.Newf("input of %d bytes is not a multiple of the record size %d", vf.Size(), recordSize)
	}

	n := vf.Size() / uint64(recordSize)
	arr := array.New[uint64](vf, recordSize, n)
	log.Debug("sorting", zap.Uint64("records", n), zap.Int("record_size", recordSize))
	if err := heap.SortBytes(arr, heap.Ascending); err != nil {
		return 0, err
	}

	if _, err := io.Copy(w, vf.Reader()); err != nil {
		return 0, errors.Wrap(err, "write sorted records")
	}
	return n, nil
}
