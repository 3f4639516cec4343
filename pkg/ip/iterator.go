package ip

import (
	"bufio"
	"io"

	"github.com/cockroachdb/errors"
)

const MaxIpAddrSize = len("255.255.255.255\r\n")

// Iterator streams the lines of r, without their line terminators, through a
// channel buffered with chanSize entries. Empty lines are skipped. The error
// channel receives at most one read error and is closed together with the
// line channel.
func Iterator(r io.Reader, pageSize int, chanSize int) (<-chan []byte, <-chan error) {
	ch := make(chan []byte, chanSize)
	errc := make(chan error, 1)
	buf := bufio.NewReaderSize(r, max(pageSize, MaxIpAddrSize))

	go func() {
		defer close(errc)
		defer close(ch)
		for {
			ip, err := buf.ReadBytes('\n')
			if len(ip) > 0 && ip[len(ip)-1] == '\n' {
				ip = ip[:len(ip)-1]
			}
			if len(ip) > 0 && ip[len(ip)-1] == '\r' {
				ip = ip[:len(ip)-1]
			}
			if len(ip) > 0 {
				ch <- ip
			}

			if err == io.EOF {
				return
			} else if err != nil {
				errc <- errors.Wrap(err, "read ip lines")
				return
			}
		}
	}()

	return ch, errc
}
