package main

import (
	"math/rand/v2"
	"os"
	"time"

	"generic_containers/components"
	"generic_containers/pkg/ip"
	"generic_containers/pkg/util"

	"github.com/cockroachdb/errors"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	configPath string
	cfg        = defaultConfig()
	// replaced once the config is loaded; reports config errors until then
	logger = util.Must(newLogger(defaultConfig().LogLevel))
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "containers",
		Short:         "Sort records and count addresses with the generic containers",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.load(configPath, cmd.Flags()); err != nil {
				return err
			}
			l, err := newLogger(cfg.LogLevel)
			if err != nil {
				return err
			}
			logger = l
			return nil
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file")
	root.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug, info, warn or error")

	root.AddCommand(sortCmd(), countCmd(), generateCmd())
	return root
}

// run executes the command line args and returns the process exit code. A
// failure is logged once and the logger is flushed either way.
func run(args []string) int {
	root := newRootCmd()
	root.SetArgs(args)

	err := root.Execute()
	if err != nil {
		logger.Error("command failed", zap.Error(err))
	}
	_ = logger.Sync()
	if err != nil {
		return 1
	}
	return 0
}

func newLogger(level string) (*zap.Logger, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, errors.Wrapf(err, "log level %q", level)
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(lvl)
	zc.Encoding = "console"
	return zc.Build()
}

func sortCmd() *cobra.Command {
	var in, out string
	cmd := &cobra.Command{
		Use:   "sort",
		Short: "Heap sort a file of fixed-size binary records in byte order",
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := os.Open(in)
			if err != nil {
				return errors.Wrap(err, "open input")
			}
			defer src.Close()

			dst, err := os.OpenFile(out, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o644)
			if err != nil {
				return errors.Wrap(err, "open output")
			}
			defer dst.Close()

			start := time.Now()
			n, err := components.SortRecords(src, dst, cfg.RecordSize, logger)
			if err != nil {
				return err
			}
			logger.Info("sorted",
				zap.String("records", humanize.Comma(int64(n))),
				zap.String("bytes", humanize.IBytes(n*uint64(cfg.RecordSize))),
				zap.Duration("took", time.Since(start)),
			)
			return errors.Wrap(dst.Sync(), "sync output")
		},
	}
	cmd.Flags().StringVar(&in, "in", "", "input record file")
	cmd.Flags().StringVar(&out, "out", "", "output file")
	cmd.Flags().IntVar(&cfg.RecordSize, "record-size", cfg.RecordSize, "record size in bytes")
	util.PanicIfErr(cmd.MarkFlagRequired("in"))
	util.PanicIfErr(cmd.MarkFlagRequired("out"))
	return cmd
}

func countCmd() *cobra.Command {
	var in string
	cmd := &cobra.Command{
		Use:   "count",
		Short: "Count distinct IPv4 addresses and report the most frequent ones",
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := os.Open(in)
			if err != nil {
				return errors.Wrap(err, "open input")
			}
			defer src.Close()

			start := time.Now()
			segments, stats, err := components.Write(src, &components.WriteConfigs{
				Workers:          cfg.Workers,
				ElementsPerStage: cfg.ElementsPerStage,
				PageSize:         cfg.PageSize,
				CacheSize:        cfg.CacheSize,
				Logger:           logger,
			})
			if err != nil {
				return err
			}
			logger.Info("read input",
				zap.String("lines", humanize.Comma(int64(stats.Lines))),
				zap.Uint64("invalid", stats.Invalid),
				zap.Int("segments", len(segments)),
			)

			report, err := components.Read(segments, &components.ReadConfigs{
				TopK:   cfg.TopK,
				Logger: logger,
			})
			if err != nil {
				return err
			}
			logger.Info("counted",
				zap.String("total", humanize.Comma(int64(report.Total))),
				zap.String("distinct", humanize.Comma(int64(report.Distinct))),
				zap.Duration("took", time.Since(start)),
			)
			for i, r := range report.Top {
				cmd.Printf("%d\t%s\t%s\n", i+1, r.IP, humanize.Comma(int64(r.Count)))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&in, "in", "", "file with one IPv4 address per line")
	cmd.Flags().IntVar(&cfg.TopK, "top", cfg.TopK, "number of most frequent addresses to print")
	cmd.Flags().IntVar(&cfg.Workers, "workers", cfg.Workers, "tree building goroutines")
	util.PanicIfErr(cmd.MarkFlagRequired("in"))
	return cmd
}

func generateCmd() *cobra.Command {
	var out string
	var count, distinct int
	var seed uint64
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write random IPv4 addresses, one per line",
		RunE: func(cmd *cobra.Command, args []string) error {
			dst, err := os.OpenFile(out, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o644)
			if err != nil {
				return errors.Wrap(err, "open output")
			}
			defer dst.Close()

			rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
			if err := ip.Generate(dst, count, distinct, rng); err != nil {
				return err
			}
			logger.Info("generated", zap.String("addresses", humanize.Comma(int64(count))))
			return errors.Wrap(dst.Sync(), "sync output")
		},
	}
	cmd.Flags().StringVar(&out, "out", "", "output file")
	cmd.Flags().IntVar(&count, "count", 1_000_000, "number of lines")
	cmd.Flags().IntVar(&distinct, "distinct", 0, "size of the address pool, 0 for count")
	cmd.Flags().Uint64Var(&seed, "seed", uint64(time.Now().UnixNano()), "random seed")
	util.PanicIfErr(cmd.MarkFlagRequired("out"))
	return cmd
}
