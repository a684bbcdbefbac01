package fsbench

import (
	"sort"
	"time"
)

// MaxLatencySamples caps the per-operation durations a latency workload
// keeps. The cap bounds memory and sort cost no matter how many iterations
// were configured; changing it changes the reported percentiles.
const MaxLatencySamples = 100000

const nsPerUs = 1e3

// sampleSet is a fixed-capacity arena of nanosecond durations. Once the cap
// is reached further samples are discarded while the workload keeps
// counting operations.
type sampleSet struct {
	ns []int64
}

func newSampleSet() *sampleSet {
	return &sampleSet{ns: make([]int64, 0, MaxLatencySamples)}
}

func (s *sampleSet) Record(d time.Duration) {
	if len(s.ns) < MaxLatencySamples {
		s.ns = append(s.ns, int64(d))
	}
}

func (s *sampleSet) Len() int {
	return len(s.ns)
}

type latencyStats struct {
	Avg float64
	Min float64
	Max float64
	P99 float64
}

// reduce sorts the samples ascending and derives min, max, mean and the
// nearest-rank 99th percentile, all in microseconds. An empty set reduces
// to zeros; callers check the operation count before trusting the numbers.
func (s *sampleSet) reduce() latencyStats {
	n := len(s.ns)
	if n == 0 {
		return latencyStats{}
	}

	sort.Slice(s.ns, func(i, j int) bool { return s.ns[i] < s.ns[j] })

	var sum int64
	for _, v := range s.ns {
		sum += v
	}

	return latencyStats{
		Avg: float64(sum) / float64(n) / nsPerUs,
		Min: float64(s.ns[0]) / nsPerUs,
		Max: float64(s.ns[n-1]) / nsPerUs,
		P99: float64(s.ns[n*99/100]) / nsPerUs,
	}
}

func (r *BenchResult) applyLatency(s *sampleSet) {
	stats := s.reduce()

	r.AvgLatency = stats.Avg
	r.MinLatency = stats.Min
	r.MaxLatency = stats.Max
	r.P99Latency = stats.P99
}
