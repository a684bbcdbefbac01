package fsbench

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSampleSetReduce(t *testing.T) {
	s := newSampleSet()

	// unordered on purpose
	s.Record(3 * time.Microsecond)
	s.Record(1 * time.Microsecond)
	s.Record(4 * time.Microsecond)
	s.Record(2 * time.Microsecond)

	stats := s.reduce()

	require.Equal(t, 1.0, stats.Min)
	require.Equal(t, 4.0, stats.Max)
	require.Equal(t, 2.5, stats.Avg)

	// nearest rank: floor(4*99/100) = 3
	require.Equal(t, 4.0, stats.P99)
}

func TestSampleSetReduceSingle(t *testing.T) {
	s := newSampleSet()
	s.Record(7 * time.Microsecond)

	stats := s.reduce()

	require.Equal(t, 7.0, stats.Min)
	require.Equal(t, 7.0, stats.Max)
	require.Equal(t, 7.0, stats.Avg)
	require.Equal(t, 7.0, stats.P99)
}

func TestSampleSetReduceEmpty(t *testing.T) {
	s := newSampleSet()

	stats := s.reduce()

	require.Zero(t, stats.Min)
	require.Zero(t, stats.Max)
	require.Zero(t, stats.Avg)
	require.Zero(t, stats.P99)
}

func TestSampleSetCap(t *testing.T) {
	s := newSampleSet()

	for i := 0; i < MaxLatencySamples+10; i++ {
		s.Record(time.Nanosecond)
	}

	require.Equal(t, MaxLatencySamples, s.Len())
}

func TestSampleSetStatOrdering(t *testing.T) {
	s := newSampleSet()

	for _, d := range []time.Duration{90, 10, 40, 70, 20, 60, 30, 80, 50, 100} {
		s.Record(d * time.Microsecond)
	}

	stats := s.reduce()

	require.LessOrEqual(t, stats.Min, stats.Avg)
	require.LessOrEqual(t, stats.Avg, stats.Max)
	require.LessOrEqual(t, stats.Min, stats.P99)
	require.LessOrEqual(t, stats.P99, stats.Max)
}
