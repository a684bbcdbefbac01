package fsbench

import (
	"fmt"
	"unsafe"
)

// bufferAlignment is the page alignment applied to every scratch buffer.
// Direct I/O requires it; buffered runs keep it so throughput numbers stay
// comparable across configurations.
const bufferAlignment = 4096

// alignedBuffer returns a size-byte slice whose first element sits on a
// bufferAlignment boundary.
func alignedBuffer(size int64) ([]byte, error) {
	if size <= 0 || size > MaxIOSize {
		return nil, fmt.Errorf("invalid buffer size %d", size)
	}

	raw := make([]byte, size+bufferAlignment)

	off := int(uintptr(unsafe.Pointer(&raw[0])) & (bufferAlignment - 1))
	if off != 0 {
		off = bufferAlignment - off
	}

	return raw[off : off+int(size)], nil
}

// fillPattern stamps the repeating byte pattern the write workloads put on
// disk.
func fillPattern(b []byte) {
	for i := range b {
		b[i] = byte(i)
	}
}
