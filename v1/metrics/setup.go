package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/statshub/std/v1/perfcounters"
)

// Metrics bundles the prometheus registry and the HTTP server that exposes
// it at /metrics. The registry carries the perfcounters bridge collector, so
// every counter group registered in the process is scrapeable alongside the
// optional default runtime collectors.
type Metrics struct {
	// Server is the HTTP server exposing the /metrics endpoint.
	Server *http.Server

	// Registry is the dedicated prometheus registry for this service. Each
	// service keeps its own registry to avoid metric name collisions when
	// several run in one process.
	Registry *prometheus.Registry
}

// NewMetrics builds the exposition server from cfg, bridging the given
// counter registry into prometheus.
//
// The setup includes:
//   - a dedicated prometheus registry for the service
//   - the perfcounters bridge collector
//   - optionally the standard Go, process, and build-info collectors
//   - a constant "service" label on everything exported
//   - an HTTP server serving the registry at cfg.Address
//
// The server is not started here; RegisterMetricsLifecycle (or the caller)
// is responsible for ListenAndServe and Shutdown.
func NewMetrics(cfg Config, counters *perfcounters.Registry) *Metrics {
	registry := prometheus.NewRegistry()

	wrappedRegistry := prometheus.WrapRegistererWith(
		prometheus.Labels{"service": cfg.ServiceName},
		registry,
	)

	wrappedRegistry.MustRegister(perfcounters.NewCollector(counters))

	if cfg.EnableDefaultCollectors {
		wrappedRegistry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			collectors.NewBuildInfoCollector(),
		)
	}

	handler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{})

	return &Metrics{
		Server: &http.Server{
			Addr:    cfg.Address,
			Handler: handler,
		},
		Registry: registry,
	}
}
