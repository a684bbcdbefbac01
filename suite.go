package fsbench

import "time"

// RunSuite runs the five workloads against one shared config, always in the
// order: seq write, seq read, flush latency, rand read, rand write. The
// workloads are independent of each other — each creates and removes its own
// scratch file — the fixed order exists for stable reporting only.
func RunSuite(cfg BenchConfig) *BenchSuite {
	s := &BenchSuite{StartTime: time.Now()}

	s.SeqWrite = RunSeqWrite(cfg)
	s.SeqRead = RunSeqRead(cfg)
	s.FlushLatency = RunFlushLatency(cfg)
	s.RandRead = RunRandRead(cfg)
	s.RandWrite = RunRandWrite(cfg)

	s.EndTime = time.Now()
	s.Elapsed = s.EndTime.Sub(s.StartTime).Seconds()

	return s
}
