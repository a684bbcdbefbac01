package fsbench

import "time"

// deadline turns a time budget into an absolute point on the monotonic
// clock. The check is cooperative: workloads poll Expired once per
// iteration, so a single blocking call can overrun the budget by its own
// duration.
type deadline struct {
	at    time.Time
	armed bool
}

// newDeadline arms a deadline for the given budget. A budget of zero or
// less leaves it unarmed and the workload runs to its data or iteration
// limit instead.
func newDeadline(budget time.Duration) deadline {
	if budget <= 0 {
		return deadline{}
	}

	return deadline{at: time.Now().Add(budget), armed: true}
}

func (d deadline) Expired() bool {
	return d.armed && !time.Now().Before(d.at)
}
