package components

import (
	"io"
	"sync"
	"sync/atomic"
	"time"

	"generic_containers/pkg/bst"
	"generic_containers/pkg/container"
	"generic_containers/pkg/ip"
	"generic_containers/pkg/util"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"
)

type WriteStats struct {
	Lines   uint64
	Invalid uint64
}

// Write reads address lines from r and spreads them over cfg.Workers trees.
// A tree holding cfg.ElementsPerStage distinct addresses is flushed into a
// sorted segment and replaced by an empty one.
func Write(r io.Reader, cfg *WriteConfigs) ([]Segment, WriteStats, error) {
	log := cfg.Logger.Named("write")
	lines, errc := ip.Iterator(r, cfg.PageSize, cfg.CacheSize)

	var stats WriteStats
	var lineCount, invalidCount atomic.Uint64

	// printing progress each second
	stop := util.SetInterval(func(start, now time.Time) {
		n := lineCount.Load()
		log.Info("progress",
			zap.String("lines", humanize.Comma(int64(n))),
			zap.String("eps", humanize.Comma(int64(float64(n)/now.Sub(start).Seconds()))),
		)
	}, time.Second)
	defer stop()

	m := &sync.Mutex{}
	segments := []Segment{}
	flush := func(worker int, t *bst.Tree[IP]) {
		seg := stage(t)
		log.Debug("stage flushed",
			zap.Int("worker", worker),
			zap.String("records", humanize.Comma(int64(seg.Len()))),
		)
		m.Lock()
		defer m.Unlock()
		segments = append(segments, seg)
	}

	wg := &sync.WaitGroup{}
	for i := range max(cfg.Workers, 1) {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			parser := ip.Parser()
			t := util.Must(bst.New[IP](ip.Compare, nil, container.WithLogger(log)))

			for line := range lines {
				lineCount.Add(1)
				k, err := parser.ParseIP(line)
				if err != nil {
					invalidCount.Add(1)
					log.Debug("skipping line", zap.Error(err))
					continue
				}

				t.Insert(k)
				if t.Size() == cfg.ElementsPerStage {
					flush(i, t)
				}
			}

			if !t.Empty() {
				flush(i, t)
			}
		}(i)
	}

	wg.Wait()
	stats.Lines, stats.Invalid = lineCount.Load(), invalidCount.Load()
	if err := <-errc; err != nil {
		return nil, stats, err
	}
	return segments, stats, nil
}
