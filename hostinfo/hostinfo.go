// Package hostinfo gathers the host context block attached to benchmark
// reports. Everything here is best effort: numbers a host does not expose
// are simply left zero.
package hostinfo

import (
	"os"
	"runtime"

	"github.com/prometheus/procfs"
	"github.com/prometheus/procfs/blockdevice"
)

type Info struct {
	Hostname string `json:"hostname"`
	CPUs     int    `json:"cpus"`
	MemTotal uint64 `json:"memTotalBytes,omitempty"`

	Disks []DiskStats `json:"disks,omitempty"`
}

// DiskStats is a snapshot of a block device's kernel I/O counters.
type DiskStats struct {
	Device       string `json:"device"`
	ReadIOs      uint64 `json:"readIOs"`
	ReadSectors  uint64 `json:"readSectors"`
	WriteIOs     uint64 `json:"writeIOs"`
	WriteSectors uint64 `json:"writeSectors"`
}

const kib = 1024

// Gather reads the host context. It fails only when not even the hostname
// is available; on hosts without procfs the counters stay zero.
func Gather() (*Info, error) {
	hostname, err := os.Hostname()
	if err != nil {
		return nil, err
	}

	info := &Info{
		Hostname: hostname,
		CPUs:     runtime.NumCPU(),
	}

	if fs, err := procfs.NewDefaultFS(); err == nil {
		if mi, err := fs.Meminfo(); err == nil && mi.MemTotal != nil {
			info.MemTotal = *mi.MemTotal * kib
		}
	}

	if bfs, err := blockdevice.NewDefaultFS(); err == nil {
		if stats, err := bfs.ProcDiskstats(); err == nil {
			for _, s := range stats {
				// Partitions and virtual devices carry no counters worth
				// reporting next to a whole-device line.
				if s.ReadIOs == 0 && s.WriteIOs == 0 {
					continue
				}

				info.Disks = append(info.Disks, DiskStats{
					Device:       s.DeviceName,
					ReadIOs:      s.ReadIOs,
					ReadSectors:  s.ReadSectors,
					WriteIOs:     s.WriteIOs,
					WriteSectors: s.WriteSectors,
				})
			}
		}
	}

	return info, nil
}
