package fsbench

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/olekukonko/tablewriter"

	"github.com/hamzali/fsbench/hostinfo"
)

// Report pairs a finished suite with the host context it ran on.
type Report struct {
	Host  *hostinfo.Info `json:"host,omitempty"`
	Suite *BenchSuite    `json:"suite"`
}

const mib = 1 << 20

// FormatReport renders the fixed-shape console report, one table row per
// workload.
func FormatReport(r Report) string {
	out := bytes.NewBuffer([]byte{})

	if r.Host != nil {
		fmt.Fprintf(out, "host: %s cpus: %d mem: %d MiB\n",
			r.Host.Hostname, r.Host.CPUs, r.Host.MemTotal/mib)
	}

	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{
		"workload", "ok", "sec", "ops", "MiB", "MiB/s",
		"avg us", "min us", "max us", "p99 us",
	})

	for _, row := range r.Suite.results() {
		table.Append([]string{
			row.name,
			okMark(row.res.Success),
			fmt.Sprintf("%.3f", row.res.Elapsed),
			fmt.Sprintf("%d", row.res.Operations),
			fmt.Sprintf("%.2f", float64(row.res.Bytes)/mib),
			fmt.Sprintf("%.2f", row.res.Throughput/mib),
			fmt.Sprintf("%.1f", row.res.AvgLatency),
			fmt.Sprintf("%.1f", row.res.MinLatency),
			fmt.Sprintf("%.1f", row.res.MaxLatency),
			fmt.Sprintf("%.1f", row.res.P99Latency),
		})
	}

	table.SetAutoFormatHeaders(false)
	table.Render()

	fmt.Fprintf(out, "total: %.3fs all ok: %v\n", r.Suite.Elapsed, r.Suite.AllSuccess())

	return out.String()
}

func okMark(ok bool) string {
	if ok {
		return "yes"
	}

	return "no"
}

// FormatJSON renders the same report for machine consumers.
func FormatJSON(r Report) (string, error) {
	b, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", fmt.Errorf("could not encode report: %w", err)
	}

	return string(b) + "\n", nil
}
