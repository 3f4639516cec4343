package ip

import (
	"bufio"
	"io"
	"math/rand/v2"
	"strconv"

	"github.com/cockroachdb/errors"
)

// Generate writes count random addresses, one per line. Addresses are drawn
// from a pool of distinct values so that the output has repeats; distinct 0
// draws every address independently.
func Generate(dst io.Writer, count int, distinct int, rng *rand.Rand) error {
	if count < 0 || distinct < 0 {
		return errors.Newf("invalid address counts: count %d, distinct %d", count, distinct)
	}
	if count == 0 {
		return nil
	}
	if distinct == 0 {
		distinct = count
	}
	pool := make([]IP, distinct)
	for i := range pool {
		pool[i] = IP(rng.Uint32())
	}

	bf := bufio.NewWriterSize(dst, 16*4096)
	line := make([]byte, 0, MaxIpAddrSize)
	for range count {
		k := pool[rng.IntN(len(pool))]
		line = line[:0]
		for i := 3; i >= 0; i-- {
			line = strconv.AppendUint(line, uint64(byte(k>>(8*i))), 10)
			if i > 0 {
				line = append(line, '.')
			}
		}
		line = append(line, '\n')
		if _, err := bf.Write(line); err != nil {
			return errors.Wrap(err, "write ip")
		}
	}
	return errors.Wrap(bf.Flush(), "flush ips")
}
