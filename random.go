package fsbench

import (
	"math/rand"
	"os"
	"time"
)

// LatencyBlockSize is the fixed block used by the random-access workloads,
// independent of the configured I/O size.
const LatencyBlockSize = 4096

// offsetSeed fixes the pseudo-random block sequence, so repeated runs
// against comparable storage touch the same offsets.
const offsetSeed = 42

// newOffsetRNG returns the isolated generator behind the random workloads'
// offset stream. A fresh instance per workload keeps the sequence
// independent of any other rand use in the process.
func newOffsetRNG() *rand.Rand {
	return rand.New(rand.NewSource(offsetSeed))
}

// RunRandRead measures positioned-read latency at uniformly drawn
// block-aligned offsets within a pre-written scratch file.
func RunRandRead(cfg BenchConfig) BenchResult {
	return runRandom(cfg, false)
}

// RunRandWrite measures positioned-write latency. With cfg.Fsync each write
// is followed by a data-only flush whose cost is folded into the same
// sample: unlike RunFlushLatency this workload reports the per-operation
// price of durability, not the flush alone.
func RunRandWrite(cfg BenchConfig) BenchResult {
	return runRandom(cfg, true)
}

func runRandom(cfg BenchConfig, write bool) BenchResult {
	var res BenchResult

	if !cfg.IsValid() {
		return res
	}

	// Random access needs at least two distinct whole blocks to choose from.
	if cfg.DataSize/LatencyBlockSize < 2 {
		return res
	}

	buf, err := alignedBuffer(LatencyBlockSize)
	if err != nil {
		return res
	}

	fillPattern(buf)

	path := scratchPath(cfg.Dir)
	defer removeScratch(path)

	setupSize := (cfg.DataSize / LatencyBlockSize) * LatencyBlockSize

	laid, err := writeScratchFile(path, buf, setupSize)
	if err != nil {
		return res
	}

	blocks := laid / LatencyBlockSize
	if blocks < 2 {
		return res
	}

	mode := os.O_RDONLY
	if write {
		mode = os.O_WRONLY
	}

	f, err := os.OpenFile(path, mode|cfg.openFlags(), 0)
	if err != nil {
		return res
	}
	defer f.Close()

	rng := newOffsetRNG()
	samples := newSampleSet()
	dl := newDeadline(cfg.TimeBudget)
	start := time.Now()

	var ops, moved int64
	for i := 0; i < cfg.Iterations && !dl.Expired(); i++ {
		off := rng.Int63n(blocks) * LatencyBlockSize

		opStart := time.Now()

		var n int
		var err error
		if write {
			n, err = f.WriteAt(buf, off)
			if err == nil && n > 0 && cfg.Fsync {
				err = fdatasync(f)
			}
		} else {
			n, err = f.ReadAt(buf, off)
		}

		opTime := time.Since(opStart)

		if err != nil || n <= 0 {
			break
		}

		samples.Record(opTime)
		moved += int64(n)
		ops++
	}

	elapsed := time.Since(start)

	res.Success = ops > 0
	res.Elapsed = elapsed.Seconds()
	res.Operations = ops
	res.Bytes = moved
	res.Throughput = throughput(moved, elapsed)
	res.applyLatency(samples)

	return res
}
