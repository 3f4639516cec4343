package main

import (
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

type config struct {
	LogLevel         string `yaml:"log_level"`
	RecordSize       int    `yaml:"record_size"`
	TopK             int    `yaml:"top_k"`
	Workers          int    `yaml:"workers"`
	ElementsPerStage int    `yaml:"elements_per_stage"`
	PageSize         int    `yaml:"page_size"`
	CacheSize        int    `yaml:"cache_size"`
}

func defaultConfig() *config {
	return &config{
		LogLevel:         "info",
		RecordSize:       4,
		TopK:             10,
		Workers:          4,
		ElementsPerStage: 1_000_000,
		PageSize:         4 * 1024 * 1024, // 4MB
		CacheSize:        1024,
	}
}

// load overlays the YAML file at path on c. Flags set on the command line
// keep their values.
func (c *config) load(path string, flags *pflag.FlagSet) error {
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "read config")
	}
	fromFile := *c
	if err := yaml.Unmarshal(data, &fromFile); err != nil {
		return errors.Wrapf(err, "parse config %s", path)
	}

	overlay := map[string]func(){
		"log-level":   func() { c.LogLevel = fromFile.LogLevel },
		"record-size": func() { c.RecordSize = fromFile.RecordSize },
		"top":         func() { c.TopK = fromFile.TopK },
		"workers":     func() { c.Workers = fromFile.Workers },
	}
	for name, apply := range overlay {
		if f := flags.Lookup(name); f == nil || !f.Changed {
			apply()
		}
	}
	c.ElementsPerStage = fromFile.ElementsPerStage
	c.PageSize = fromFile.PageSize
	c.CacheSize = fromFile.CacheSize

	if c.ElementsPerStage <= 0 || c.PageSize <= 0 || c.CacheSize < 0 {
		return errors.Newf("config %s: sizes must be positive", path)
	}
	return nil
}
