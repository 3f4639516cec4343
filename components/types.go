package components

import (
	"cmp"
	"encoding/binary"

	"generic_containers/pkg/array"
	"generic_containers/pkg/ip"

	"go.uber.org/zap"
)

// recordSize is the on-array size of a Record: address then count, both big
// endian.
const recordSize = 2 * ip.IpSize

type IP = ip.IP

// Segment is a sorted run of records flushed from one tree.
type Segment = array.Array[uint32]

type WriteConfigs struct {
	// Workers is the number of goroutines building trees.
	Workers          int
	ElementsPerStage int
	PageSize         int
	CacheSize        int
	Logger           *zap.Logger
}

type ReadConfigs struct {
	TopK   int
	Logger *zap.Logger
}

// Record is one distinct address and the number of times it was seen.
type Record struct {
	IP    IP
	Count uint32
}

func (r Record) encode(buf []byte) []byte {
	buf = binary.BigEndian.AppendUint32(buf[:0], uint32(r.IP))
	return binary.BigEndian.AppendUint32(buf, r.Count)
}

func decode(b []byte) Record {
	return Record{
		IP:    IP(binary.BigEndian.Uint32(b)),
		Count: binary.BigEndian.Uint32(b[ip.IpSize:]),
	}
}

func compareAddr(a, b Record) int {
	return cmp.Compare(a.IP, b.IP)
}

// compareRank ranks higher counts first, lower addresses first among equal
// counts.
func compareRank(a, b Record) int {
	if c := cmp.Compare(a.Count, b.Count); c != 0 {
		return c
	}
	return cmp.Compare(b.IP, a.IP)
}
