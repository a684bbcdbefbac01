//go:build linux
// +build linux

package fsbench

import (
	"os"

	"golang.org/x/sys/unix"
)

// directIOFlag is ORed into open flags when page-cache bypass is requested.
const directIOFlag = unix.O_DIRECT

// fdatasync forces file data to durable storage without the metadata
// update a full fsync implies.
func fdatasync(f *os.File) error {
	return unix.Fdatasync(int(f.Fd()))
}

// dropCaches hints the kernel to evict the file's pages so a following
// read pass hits the device instead of the page cache.
func dropCaches(f *os.File, length int64) error {
	return unix.Fadvise(int(f.Fd()), 0, length, unix.FADV_DONTNEED)
}
