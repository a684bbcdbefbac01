package conf

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/hamzali/fsbench"
)

type Config struct {
	Dir        string  `json:"dir" yaml:"dir"`
	IOSize     int64   `json:"io_size" yaml:"io_size"`
	DataSize   int64   `json:"data_size" yaml:"data_size"`
	Iterations int     `json:"iterations" yaml:"iterations"`
	BudgetSec  float64 `json:"budget_sec" yaml:"budget_sec"`
	Direct     bool    `json:"direct" yaml:"direct"`
	Fsync      bool    `json:"fsync" yaml:"fsync"`
	JSON       bool    `json:"json" yaml:"json"`
}

const (
	defaultIOSize     = 4 << 10
	defaultDataSize   = 64 << 20
	defaultIterations = 1000
	defaultBudgetSec  = 10
)

var DefaultConfig = Config{
	Dir:        ".",
	IOSize:     defaultIOSize,
	DataSize:   defaultDataSize,
	Iterations: defaultIterations,
	BudgetSec:  defaultBudgetSec,
}

// ReadConfig loads a JSON or YAML config file, chosen by extension, into
// config. An empty path is a no-op.
func ReadConfig(path string, config *Config) error {
	if path == "" {
		return nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("could not read file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		err = yaml.Unmarshal(b, config)
		if err != nil {
			return fmt.Errorf("could not parse yaml: %w", err)
		}
	default:
		err = json.Unmarshal(b, config)
		if err != nil {
			return fmt.Errorf("could not parse json: %w", err)
		}
	}

	return nil
}

// ParseSize converts a human byte count ("512", "4k", "8m", "1g") to bytes.
func ParseSize(s string) (int64, error) {
	v := strings.TrimSpace(strings.ToLower(s))
	if v == "" {
		return 0, fmt.Errorf("empty size")
	}

	mult := int64(1)

	switch v[len(v)-1] {
	case 'k':
		mult = 1 << 10
		v = v[:len(v)-1]
	case 'm':
		mult = 1 << 20
		v = v[:len(v)-1]
	case 'g':
		mult = 1 << 30
		v = v[:len(v)-1]
	}

	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid size %q: %w", s, err)
	}

	return n * mult, nil
}

// InitConfig builds the configuration from defaults, an optional config
// file and the given flags, in that order of precedence (lowest first).
func InitConfig(name string, args []string) (*Config, error) {
	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	config := Config{}
	config = DefaultConfig

	var iterations int

	var confPath, dir, ioSize, dataSize string

	var budgetSec float64

	var direct, fsync, jsonOut bool

	flags.StringVar(&dir, "dir", DefaultConfig.Dir, "target directory for the scratch file")
	flags.StringVar(&ioSize, "bs", "", "I/O block size (512, 4k, 1m, ...)")
	flags.StringVar(&dataSize, "size", "", "total data size for the throughput tests")
	flags.IntVar(&iterations, "iter", DefaultConfig.Iterations, "iteration count for the latency tests")
	flags.Float64Var(&budgetSec, "budget", DefaultConfig.BudgetSec, "time budget per test in seconds")
	flags.BoolVar(&direct, "direct", DefaultConfig.Direct, "bypass the page cache")
	flags.BoolVar(&fsync, "fsync", DefaultConfig.Fsync, "force durable writes")
	flags.BoolVar(&jsonOut, "json", DefaultConfig.JSON, "render the report as json")

	flags.StringVar(&confPath, "config", "", "custom config path")

	err := flags.Parse(args)
	if err != nil {
		return nil, fmt.Errorf("flag error: %w", err)
	}

	// load user defined custom config file
	err = ReadConfig(confPath, &config)
	if err != nil {
		return nil, fmt.Errorf("invalid config %s, %w", confPath, err)
	}

	// provided flags always override configuration
	var sizeErr error

	flags.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "dir":
			config.Dir = dir
		case "bs":
			v, err := ParseSize(ioSize)
			if err != nil {
				sizeErr = err

				return
			}

			config.IOSize = v
		case "size":
			v, err := ParseSize(dataSize)
			if err != nil {
				sizeErr = err

				return
			}

			config.DataSize = v
		case "iter":
			config.Iterations = iterations
		case "budget":
			config.BudgetSec = budgetSec
		case "direct":
			config.Direct = direct
		case "fsync":
			config.Fsync = fsync
		case "json":
			config.JSON = jsonOut
		}
	})

	if sizeErr != nil {
		return nil, sizeErr
	}

	return &config, nil
}

// Bench maps the CLI configuration onto the engine's config object.
func (c *Config) Bench() fsbench.BenchConfig {
	return fsbench.BenchConfig{
		Dir:        c.Dir,
		IOSize:     c.IOSize,
		DataSize:   c.DataSize,
		Iterations: c.Iterations,
		TimeBudget: time.Duration(c.BudgetSec * float64(time.Second)),
		Direct:     c.Direct,
		Fsync:      c.Fsync,
	}
}
