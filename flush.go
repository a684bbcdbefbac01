package fsbench

import (
	"os"
	"time"
)

// FlushProbeSize is the block written before each timed flush. It is fixed
// independently of the configured I/O size so flush numbers stay comparable
// across configurations.
const FlushProbeSize = 4096

// RunFlushLatency measures the cost of the explicit flush alone. Each
// iteration writes one probe block and then times a full flush of the file;
// the write itself is excluded from the sample.
func RunFlushLatency(cfg BenchConfig) BenchResult {
	var res BenchResult

	if !cfg.IsValid() {
		return res
	}

	buf, err := alignedBuffer(FlushProbeSize)
	if err != nil {
		return res
	}

	fillPattern(buf)

	path := scratchPath(cfg.Dir)
	defer removeScratch(path)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC|cfg.openFlags(), 0o600)
	if err != nil {
		return res
	}
	defer f.Close()

	samples := newSampleSet()
	dl := newDeadline(cfg.TimeBudget)
	start := time.Now()

	var ops, written int64
	for i := 0; i < cfg.Iterations && !dl.Expired(); i++ {
		n, err := f.Write(buf)
		if err != nil || n <= 0 {
			break
		}

		flushStart := time.Now()
		err = f.Sync()
		flushTime := time.Since(flushStart)

		if err != nil {
			break
		}

		samples.Record(flushTime)
		written += int64(n)
		ops++
	}

	elapsed := time.Since(start)

	res.Success = ops > 0
	res.Elapsed = elapsed.Seconds()
	res.Operations = ops
	res.Bytes = written
	res.Throughput = throughput(written, elapsed)
	res.applyLatency(samples)

	return res
}
