package perfcounters

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Collector adapts a Registry to prometheus.Collector so the same counters
// served over the snapshot socket can be scraped through a /metrics
// endpoint (see std/v1/metrics).
//
// Plain slots export one untyped const metric; slots with occurrence-count
// tracking export a const summary carrying the count and the sum. Every
// metric gets a constant "group" label, which keeps slots with the same name
// in different groups apart.
type Collector struct {
	registry *Registry
}

// NewCollector returns a Collector reading from r. Register it with a
// prometheus registry; it holds no state of its own.
func NewCollector(r *Registry) *Collector {
	return &Collector{registry: r}
}

// Describe implements prometheus.Collector. The slot set changes as groups
// come and go, so descriptions are derived from a live collection pass.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	prometheus.DescribeByCollect(c, ch)
}

// Collect implements prometheus.Collector. Each group is snapshotted under
// its own lock only, one group at a time.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	for _, g := range c.registry.groupsCopy() {
		group := g.Name()
		for _, d := range g.snapshotSlots() {
			name := sanitizeMetricName(d.name)
			help := fmt.Sprintf("Current value of perf counter %q in group %q.", d.name, group)
			desc := prometheus.NewDesc(name, help, nil, prometheus.Labels{"group": group})

			var sum float64
			if d.kind == kindU64 {
				sum = float64(d.u64)
			} else {
				sum = d.dbl
			}

			if d.countEnabled {
				ch <- prometheus.MustNewConstSummary(desc, d.count, sum, nil)
			} else {
				ch <- prometheus.MustNewConstMetric(desc, prometheus.UntypedValue, sum)
			}
		}
	}
}

// sanitizeMetricName maps a slot name onto the prometheus metric-name
// alphabet [a-zA-Z_:][a-zA-Z0-9_:]*, replacing every other byte with '_'.
func sanitizeMetricName(name string) string {
	if name == "" {
		return "_"
	}
	out := make([]byte, 0, len(name))
	for i := 0; i < len(name); i++ {
		b := name[i]
		switch {
		case b >= 'a' && b <= 'z', b >= 'A' && b <= 'Z', b == '_', b == ':':
			out = append(out, b)
		case b >= '0' && b <= '9':
			if i == 0 {
				out = append(out, '_')
			}
			out = append(out, b)
		default:
			out = append(out, '_')
		}
	}
	return string(out)
}
