package fsbench

import (
	"os"
	"time"
)

const (
	// MinIOSize and MaxIOSize bound the configurable block size.
	MinIOSize = 512
	MaxIOSize = 64 << 20
)

// BenchConfig describes one benchmark run. It is built by the caller and
// never mutated by the engine.
type BenchConfig struct {
	// Dir is the directory the scratch file is created in.
	Dir string
	// IOSize is the block size in bytes used by the throughput workloads.
	IOSize int64
	// DataSize is the total byte count moved by the throughput workloads.
	DataSize int64
	// Iterations bounds the latency workloads.
	Iterations int
	// TimeBudget bounds every workload; zero or negative disables it.
	TimeBudget time.Duration
	// Direct requests page-cache bypass where the platform supports it.
	Direct bool
	// Fsync requests durable writes.
	Fsync bool
}

// IsValid reports whether the config can be benchmarked at all.
func (c BenchConfig) IsValid() bool {
	info, err := os.Stat(c.Dir)
	if err != nil || !info.IsDir() {
		return false
	}

	if c.IOSize < MinIOSize || c.IOSize > MaxIOSize {
		return false
	}

	if c.DataSize < c.IOSize {
		return false
	}

	return c.Iterations >= 1
}

func (c BenchConfig) openFlags() int {
	if c.Direct {
		return directIOFlag
	}

	return 0
}

// BenchResult is the outcome of a single workload. The zero value is the
// "not run" sentinel: Success false, every number zero. The latency fields
// are populated by the latency workloads only.
type BenchResult struct {
	Success    bool    `json:"success"`
	Elapsed    float64 `json:"elapsedSec"`
	Operations int64   `json:"operations"`
	Bytes      int64   `json:"bytes"`
	Throughput float64 `json:"throughputBps"`

	AvgLatency float64 `json:"avgLatencyUs,omitempty"`
	MinLatency float64 `json:"minLatencyUs,omitempty"`
	MaxLatency float64 `json:"maxLatencyUs,omitempty"`
	P99Latency float64 `json:"p99LatencyUs,omitempty"`
}

// BenchSuite aggregates the five workload results of one run.
type BenchSuite struct {
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Elapsed   float64   `json:"elapsedSec"`

	SeqWrite     BenchResult `json:"seqWrite"`
	SeqRead      BenchResult `json:"seqRead"`
	FlushLatency BenchResult `json:"flushLatency"`
	RandRead     BenchResult `json:"randRead"`
	RandWrite    BenchResult `json:"randWrite"`
}

// AllSuccess reports whether every workload in the suite succeeded.
func (s *BenchSuite) AllSuccess() bool {
	return s.SeqWrite.Success &&
		s.SeqRead.Success &&
		s.FlushLatency.Success &&
		s.RandRead.Success &&
		s.RandWrite.Success
}

type namedResult struct {
	name string
	res  BenchResult
}

// results returns the workloads in their fixed reporting order.
func (s *BenchSuite) results() []namedResult {
	return []namedResult{
		{"seq write", s.SeqWrite},
		{"seq read", s.SeqRead},
		{"flush latency", s.FlushLatency},
		{"rand read", s.RandRead},
		{"rand write", s.RandWrite},
	}
}

func throughput(bytes int64, elapsed time.Duration) float64 {
	if elapsed <= 0 {
		return 0
	}

	return float64(bytes) / elapsed.Seconds()
}
