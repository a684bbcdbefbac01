//go:build !linux
// +build !linux

package fsbench

import "os"

// The platform has no O_DIRECT; the direct flag degrades to a plain open.
const directIOFlag = 0

func fdatasync(f *os.File) error {
	return f.Sync()
}

func dropCaches(f *os.File, length int64) error {
	return nil
}
