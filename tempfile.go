package fsbench

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// scratchPath builds a file name unique to this process and a nanosecond
// clock reading, so concurrent runs sharing a directory do not collide.
func scratchPath(dir string) string {
	return filepath.Join(dir, fmt.Sprintf(".fsbench-%d-%d.tmp", os.Getpid(), time.Now().UnixNano()))
}

// removeScratch deletes a scratch file. Best effort: a failed removal never
// retro-fails the workload that used it.
func removeScratch(path string) {
	_ = os.Remove(path)
}

// writeScratchFile fills path with total bytes in len(buf)-sized chunks,
// flushes it, and hints the kernel to drop the written pages from the page
// cache. It reports the byte count actually on disk; a mid-loop write error
// stops the loop and leaves the partial file in place.
func writeScratchFile(path string, buf []byte, total int64) (int64, error) {
	if len(buf) == 0 || total <= 0 {
		return 0, errors.New("nothing to write")
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	var written int64
	for written < total {
		n, err := f.Write(buf)
		if n > 0 {
			written += int64(n)
		}

		if err != nil || n <= 0 {
			break
		}
	}

	if written > 0 {
		// The hint only skews the following read pass when it fails, so the
		// error is dropped along with the sync's.
		_ = f.Sync()
		_ = dropCaches(f, written)
	}

	return written, nil
}
