package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("top_k: 3\nworkers: 8\npage_size: 1024\n"), 0o644))

	c := defaultConfig()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.IntVar(&c.Workers, "workers", c.Workers, "")
	flags.IntVar(&c.TopK, "top", c.TopK, "")
	require.NoError(t, flags.Parse([]string{"--workers", "2"}))

	require.NoError(t, c.load(path, flags))
	assert.Equal(t, 3, c.TopK)
	assert.Equal(t, 2, c.Workers, "flags win over the file")
	assert.Equal(t, 1024, c.PageSize)
	assert.Equal(t, 1_000_000, c.ElementsPerStage)
	assert.Equal(t, "info", c.LogLevel)

	require.NoError(t, os.WriteFile(path, []byte("page_size: -1\n"), 0o644))
	require.Error(t, defaultConfig().load(path, flags))

	require.NoError(t, defaultConfig().load("", flags))
	require.Error(t, defaultConfig().load(filepath.Join(t.TempDir(), "missing.yaml"), flags))
}

func TestNewLogger(t *testing.T) {
	l, err := newLogger("debug")
	require.NoError(t, err)
	assert.NotNil(t, l)

	_, err = newLogger("loud")
	require.Error(t, err)
}
