package ip

import (
	"bytes"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	p := Parser()
	for _, tc := range []struct {
		in   string
		want IP
	}{
		{"0.0.0.0", 0},
		{"1.2.3.4", 0x01020304},
		{"255.255.255.255", 0xffffffff},
		{"10.0.0.1", 0x0a000001},
	} {
		got, err := p.ParseIP([]byte(tc.in))
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got)
		assert.Equal(t, tc.in, got.String())
		assert.Equal(t, got, FromBytes(got.Bytes()))
	}

	for _, in := range []string{"", "1.2.3", "1.2.3.4.5", "256.1.1.1", "1..2.3", "a.b.c.d"} {
		_, err := p.Parse([]byte(in))
		require.Error(t, err, in)
		assert.True(t, errors.Is(err, ErrMalformed), in)
	}
}

func TestIterator(t *testing.T) {
	in := "1.1.1.1\r\n2.2.2.2\n\n3.3.3.3"
	lines, errc := Iterator(strings.NewReader(in), 4, 1)

	var got []string
	for l := range lines {
		got = append(got, string(l))
	}
	require.NoError(t, <-errc)
	assert.Equal(t, []string{"1.1.1.1", "2.2.2.2", "3.3.3.3"}, got)
}

func TestGenerate(t *testing.T) {
	buf := &bytes.Buffer{}
	rng := rand.New(rand.NewPCG(7, 8))
	require.NoError(t, Generate(buf, 500, 20, rng))

	lines, errc := Iterator(buf, 64, 16)
	p := Parser()
	n := 0
	seen := map[IP]struct{}{}
	for l := range lines {
		k, err := p.ParseIP(l)
		require.NoError(t, err)
		seen[k] = struct{}{}
		n++
	}
	require.NoError(t, <-errc)
	assert.Equal(t, 500, n)
	assert.LessOrEqual(t, len(seen), 20)
}

func TestGenerateRejectsNegativeCounts(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 1))
	buf := &bytes.Buffer{}
	require.Error(t, Generate(buf, -1, 0, rng))
	require.Error(t, Generate(buf, 10, -1, rng))
	require.NoError(t, Generate(buf, 0, 0, rng))
	assert.Zero(t, buf.Len())
}
