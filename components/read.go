package components

import (
	"iter"
	"slices"

	"generic_containers/pkg/container"
	"generic_containers/pkg/heap"
	"generic_containers/pkg/util"

	"go.uber.org/zap"
)

type Report struct {
	Total    uint64
	Distinct uint64
	// Top holds the most frequent addresses, most frequent first.
	Top []Record
}

// Read merges the sorted segments, sums the counts of addresses spread over
// several segments and keeps the cfg.TopK most frequent ones.
func Read(segments []Segment, cfg *ReadConfigs) (*Report, error) {
	log := cfg.Logger.Named("read")

	seqs := make([]iter.Seq[Record], len(segments))
	for i, seg := range segments {
		seqs[i] = func(yield func(Record) bool) {
			for b := range seg.All() {
				if !yield(decode(b)) {
					return
				}
			}
		}
	}

	// the lowest ranked record sits on top and is evicted first
	top, err := heap.New[struct{}](max(cfg.TopK, 1)+1, nil, container.Reverse(compareRank), nil, nil,
		container.WithLogger(log))
	if err != nil {
		return nil, err
	}
	keep := func(r Record) {
		if cfg.TopK <= 0 {
			return
		}
		top.PushPriority(r)
		if top.Size() > cfg.TopK {
			util.PanicIfErr(top.Pop())
		}
	}

	report := &Report{}
	var current Record
	for r := range util.Merge(compareAddr, seqs...) {
		report.Total += uint64(r.Count)
		// records of one address are adjacent since segments are read in
		// increasing order
		if report.Distinct > 0 && current.IP == r.IP {
			current.Count += r.Count
			continue
		}
		if report.Distinct > 0 {
			keep(current)
		}
		current = r
		report.Distinct++
	}
	if report.Distinct > 0 {
		keep(current)
	}

	for !top.Empty() {
		r, _ := top.TopPriority()
		report.Top = append(report.Top, r)
		util.PanicIfErr(top.Pop())
	}
	slices.Reverse(report.Top)

	log.Debug("merged",
		zap.Int("segments", len(segments)),
		zap.Uint64("distinct", report.Distinct),
	)
	return report, nil
}
