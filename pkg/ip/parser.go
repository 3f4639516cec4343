package ip

import (
	"strconv"

	"generic_containers/pkg/util"

	"github.com/cockroachdb/errors"
)

var ErrMalformed = errors.New("malformed ipv4 address")

type parser struct {
	num   []byte
	intIp []byte
}

// Parser returns a reusable dotted-quad parser. The slice returned by Parse
// is overwritten by the next call.
func Parser() *parser {
	return &parser{
		num:   make([]byte, 0, 3),
		intIp: make([]byte, 0, IpSize),
	}
}

func (p *parser) Parse(src []byte) ([]byte, error) {
	p.intIp = p.intIp[:0]
	p.num = p.num[:0]

	for _, byt := range src {
		if byt != '.' {
			p.num = append(p.num, byt)
			continue
		}
		if err := p.flush(src); err != nil {
			return nil, err
		}
	}
	if err := p.flush(src); err != nil {
		return nil, err
	}

	if len(p.intIp) != IpSize {
		return nil, errors.Wrapf(ErrMalformed, "%q: %d octets", src, len(p.intIp))
	}
	return p.intIp, nil
}

// ParseIP parses src into an IP.
func (p *parser) ParseIP(src []byte) (IP, error) {
	b, err := p.Parse(src)
	if err != nil {
		return 0, err
	}
	return FromBytes(b), nil
}

func (p *parser) flush(src []byte) error {
	if len(p.intIp) == IpSize {
		return errors.Wrapf(ErrMalformed, "%q: too many octets", src)
	}
	ipNumPart, err := strconv.ParseUint(util.BytesToString(p.num), 10, 8)
	if err != nil {
		return errors.Mark(errors.Wrapf(err, "%q", src), ErrMalformed)
	}

	p.intIp = append(p.intIp, byte(ipNumPart))
	p.num = p.num[:0]
	return nil
}
