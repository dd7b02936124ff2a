// Package perfcounters provides an in-process performance-counter registry
// with an on-demand unix-socket snapshot endpoint.
//
// Subsystems declare a fixed schema of named counters once at startup, mutate
// them from any number of goroutines during normal operation, and an external
// monitoring client can connect to a local socket at any time to receive a
// JSON snapshot of every registered counter group.
//
// # Architecture
//
//   - Builder: one-shot schema assembly for a counter group
//   - Counters: a group of slots (integer sums, float sums, float averages)
//     guarded by one mutex per group
//   - Registry: the process-wide set of live groups plus the lifecycle of the
//     publishing service
//   - publishing service: a background worker that accepts one connection at
//     a time and writes the full JSON snapshot to it
//
// Counter updates never wait on a monitoring client: producers only ever take
// their own group's lock, and the snapshot payload is assembled in memory
// before any socket write.
//
// # Declaring and updating counters
//
// Slot indices come from a caller-owned enumeration that starts one past the
// lower bound of the declared range:
//
//	const (
//	    statsFirst = iota
//	    statsReadOps
//	    statsReadLatency
//	    statsLast
//	)
//
//	b := perfcounters.NewBuilder("osd", statsFirst, statsLast)
//	b.AddU64(statsReadOps, "read_ops")
//	b.AddFloatAvg(statsReadLatency, "read_latency")
//	counters := b.Build()
//
//	registry.Add(counters)
//	counters.Inc(statsReadOps)
//	counters.AddFloat(statsReadLatency, 0.004)
//
// Index-range violations, incomplete schemas at Build, and duplicate or
// missing registry entries are bugs in the declaring subsystem and panic.
// Kind mismatches are different: updating or reading a slot through the wrong
// typed accessor is a silent no-op, because counters are routinely probed
// generically across heterogeneous groups.
//
// # Snapshot endpoint
//
// ApplySocketPath starts (non-empty path) or stops (empty path) the
// publishing service; it is the entry point for a configuration observer
// watching the socket-path setting. The wire protocol is a single JSON
// object per connection and nothing else:
//
//	{"read_ops":1024,"read_latency":{"count":512,"sum":2.3}}
//
// # Prometheus bridge
//
// NewCollector adapts a Registry to prometheus.Collector, so the same
// counters can also be scraped through std/v1/metrics.
//
// # FX integration
//
//	app := fx.New(
//	    perfcounters.FXModule,
//	    logger.FXModule,
//	    fx.Provide(func() perfcounters.Config {
//	        return perfcounters.Config{SocketPath: "/var/run/app.asok"}
//	    }),
//	)
//
// All exported methods are safe for concurrent use.
package perfcounters
