package conf_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/hamzali/fsbench/conf"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestParseSize(t *testing.T) {
	tt := []struct {
		in   string
		want int64
		ok   bool
	}{
		{"512", 512, true},
		{"4k", 4096, true},
		{"4K", 4096, true},
		{" 8m ", 8 << 20, true},
		{"1g", 1 << 30, true},
		{"", 0, false},
		{"k", 0, false},
		{"4x", 0, false},
		{"four", 0, false},
	}

	for _, tc := range tt {
		got, err := conf.ParseSize(tc.in)
		if !tc.ok {
			require.Error(t, err, "input %q", tc.in)

			continue
		}

		require.NoError(t, err, "input %q", tc.in)
		require.Equal(t, tc.want, got, "input %q", tc.in)
	}
}

func TestInitConfig(t *testing.T) {
	jsonPath := writeFile(t, "config.json",
		`{"dir": "/mnt/scratch", "io_size": 8192, "iterations": 50, "fsync": true}`)

	yamlPath := writeFile(t, "config.yaml",
		"dir: /mnt/scratch\nio_size: 8192\niterations: 50\nfsync: true\n")

	fromFile := conf.DefaultConfig
	fromFile.Dir = "/mnt/scratch"
	fromFile.IOSize = 8192
	fromFile.Iterations = 50
	fromFile.Fsync = true

	fileOverridden := fromFile
	fileOverridden.IOSize = 1 << 20

	flagged := conf.DefaultConfig
	flagged.Dir = "/data"
	flagged.IOSize = 64 << 10
	flagged.DataSize = 1 << 30
	flagged.Iterations = 10
	flagged.BudgetSec = 0.5
	flagged.Direct = true
	flagged.JSON = true

	tt := []struct {
		name           string
		args           []string
		expectedConfig conf.Config
	}{
		{
			"should return default config without flags",
			[]string{},
			conf.DefaultConfig,
		},
		{
			"should read given flags",
			[]string{"-dir", "/data", "-bs", "64k", "-size", "1g", "-iter", "10", "-budget", "0.5", "-direct", "-json"},
			flagged,
		},
		{
			"should read json config file",
			[]string{"-config", jsonPath},
			fromFile,
		},
		{
			"should read yaml config file",
			[]string{"-config", yamlPath},
			fromFile,
		},
		{
			"should override config file if flag provided",
			[]string{"-config", jsonPath, "-bs", "1m"},
			fileOverridden,
		},
	}

	for _, tc := range tt {
		args := tc.args
		expected := tc.expectedConfig

		t.Run(tc.name, func(t *testing.T) {
			config, err := conf.InitConfig("fsbench", args)
			require.NoError(t, err)
			require.Equal(t, &expected, config)
		})
	}
}

func TestInitConfigErrors(t *testing.T) {
	tt := []struct {
		name string
		args []string
	}{
		{"unknown flag", []string{"-nope"}},
		{"bad block size", []string{"-bs", "tiny"}},
		{"bad data size", []string{"-size", "12q"}},
		{"missing config file", []string{"-config", "/does/not/exist.json"}},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			_, err := conf.InitConfig("fsbench", tc.args)
			require.Error(t, err)
		})
	}
}

func TestBenchMapping(t *testing.T) {
	c := conf.Config{
		Dir:        "/data",
		IOSize:     4096,
		DataSize:   65536,
		Iterations: 100,
		BudgetSec:  0.001,
		Direct:     true,
		Fsync:      true,
	}

	b := c.Bench()

	require.Equal(t, "/data", b.Dir)
	require.Equal(t, int64(4096), b.IOSize)
	require.Equal(t, int64(65536), b.DataSize)
	require.Equal(t, 100, b.Iterations)
	require.Equal(t, time.Millisecond, b.TimeBudget)
	require.True(t, b.Direct)
	require.True(t, b.Fsync)
}
