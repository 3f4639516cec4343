package ip

import (
	"cmp"
	"encoding/binary"
	"fmt"
)

const IpSize = 4

// IP is an IPv4 address in host order, so numeric order is address order.
type IP uint32

func FromBytes(b []byte) IP {
	return IP(binary.BigEndian.Uint32(b))
}

func (k IP) Bytes() []byte {
	return binary.BigEndian.AppendUint32(make([]byte, 0, IpSize), uint32(k))
}

func (k IP) String() string {
	return fmt.Sprintf("%d.%d.%d.%d", byte(k>>24), byte(k>>16), byte(k>>8), byte(k))
}

func Compare(a, b IP) int {
	return cmp.Compare(a, b)
}
