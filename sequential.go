package fsbench

import (
	"os"
	"time"
)

// RunSeqWrite measures sequential write throughput: fixed-pattern chunks of
// cfg.IOSize bytes are appended until cfg.DataSize bytes are on disk, the
// time budget runs out, or a write fails. With cfg.Fsync the data is made
// durable by a single flush after the loop, charged to elapsed time rather
// than sampled per chunk.
func RunSeqWrite(cfg BenchConfig) BenchResult {
	var res BenchResult

	if !cfg.IsValid() {
		return res
	}

	buf, err := alignedBuffer(cfg.IOSize)
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

	dl := newDeadline(cfg.TimeBudget)
	start := time.Now()

	var written, ops int64
	for written < cfg.DataSize && !dl.Expired() {
		n, err := f.Write(buf)
		if err != nil || n <= 0 {
			break
		}

		written += int64(n)
		ops++
	}

	if cfg.Fsync && written > 0 {
		_ = f.Sync()
	}

	elapsed := time.Since(start)

	res.Success = written > 0
	res.Elapsed = elapsed.Seconds()
	res.Operations = ops
	res.Bytes = written
	res.Throughput = throughput(written, elapsed)

	return res
}

// RunSeqRead measures sequential read throughput. The scratch file is laid
// down, flushed and evicted from the page cache before the timer starts, so
// the reported number reflects read cost alone.
func RunSeqRead(cfg BenchConfig) BenchResult {
	var res BenchResult

	if !cfg.IsValid() {
		return res
	}

	buf, err := alignedBuffer(cfg.IOSize)
	if err != nil {
		return res
	}

	fillPattern(buf)

	path := scratchPath(cfg.Dir)
	defer removeScratch(path)

	written, err := writeScratchFile(path, buf, cfg.DataSize)
	if err != nil || written <= 0 {
		return res
	}

	f, err := os.OpenFile(path, os.O_RDONLY|cfg.openFlags(), 0)
	if err != nil {
		return res
	}
	defer f.Close()

	dl := newDeadline(cfg.TimeBudget)
	start := time.Now()

	var read, ops int64
	for read < written && !dl.Expired() {
		n, err := f.Read(buf)
		if err != nil || n <= 0 {
			break
		}

		read += int64(n)
		ops++
	}

	elapsed := time.Since(start)

	res.Success = read > 0
	res.Elapsed = elapsed.Seconds()
	res.Operations = ops
	res.Bytes = read
	res.Throughput = throughput(read, elapsed)

	return res
}
