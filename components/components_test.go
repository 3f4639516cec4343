package components

import (
	"bytes"
	"encoding/binary"
	"math/rand/v2"
	"slices"
	"strings"
	"testing"

	"generic_containers/pkg/bst"
	"generic_containers/pkg/ip"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestStage(t *testing.T) {
	tree, err := bst.New[IP](ip.Compare, nil)
	require.NoError(t, err)
	for _, k := range []IP{30, 10, 20, 10, 30, 10} {
		tree.Insert(k)
	}

	seg := stage(tree)
	assert.True(t, tree.Empty())

	var got []Record
	for b := range seg.All() {
		got = append(got, decode(b))
	}
	assert.Equal(t, []Record{{10, 3}, {20, 1}, {30, 2}}, got)
}

func TestWriteRead(t *testing.T) {
	lines := []string{
		"10.0.0.1", "10.0.0.2", "10.0.0.1", "bogus", "192.168.0.1",
		"10.0.0.1", "10.0.0.2", "8.8.8.8", "", "10.0.0.3",
	}
	log := zap.NewNop()

	segments, stats, err := Write(strings.NewReader(strings.Join(lines, "\n")), &WriteConfigs{
		Workers:          3,
		ElementsPerStage: 2,
		PageSize:         64,
		CacheSize:        4,
		Logger:           log,
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(9), stats.Lines)
	assert.Equal(t, uint64(1), stats.Invalid)

	report, err := Read(segments, &ReadConfigs{TopK: 2, Logger: log})
	require.NoError(t, err)
	assert.Equal(t, uint64(8), report.Total)
	assert.Equal(t, uint64(5), report.Distinct)

	a := IP(binary.BigEndian.Uint32([]byte{10, 0, 0, 1}))
	b := IP(binary.BigEndian.Uint32([]byte{10, 0, 0, 2}))
	assert.Equal(t, []Record{{a, 3}, {b, 2}}, report.Top)
}

func TestReadMatchesMap(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, ip.Generate(buf, 2000, 150, rand.New(rand.NewPCG(9, 10))))
	want := map[IP]uint32{}
	p := ip.Parser()
	for _, l := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		k, err := p.ParseIP([]byte(l))
		require.NoError(t, err)
		want[k]++
	}

	log := zap.NewNop()
	segments, _, err := Write(buf, &WriteConfigs{Workers: 4, ElementsPerStage: 16, PageSize: 128, CacheSize: 8, Logger: log})
	require.NoError(t, err)
	report, err := Read(segments, &ReadConfigs{TopK: 10, Logger: log})
	require.NoError(t, err)

	assert.Equal(t, uint64(2000), report.Total)
	assert.Equal(t, uint64(len(want)), report.Distinct)
	require.Len(t, report.Top, 10)
	for _, r := range report.Top {
		assert.Equal(t, want[r.IP], r.Count)
	}
	assert.True(t, slices.IsSortedFunc(report.Top, func(a, b Record) int { return compareRank(b, a) }))
}

func TestSortRecords(t *testing.T) {
	in := []byte{
		3, 0, 1,
		1, 9, 9,
		2, 5, 5,
		1, 0, 0,
	}
	out := &bytes.Buffer{}
	n, err := SortRecords(bytes.NewReader(in), out, 3, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, uint64(4), n)
	assert.Equal(t, []byte{1, 0, 0, 1, 9, 9, 2, 5, 5, 3, 0, 1}, out.Bytes())

	_, err = SortRecords(bytes.NewReader(in[:5]), out, 3, zap.NewNop())
	require.Error(t, err)
	_, err = SortRecords(bytes.NewReader(in), out, 0, zap.NewNop())
	require.Error(t, err)
}
