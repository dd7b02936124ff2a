// Package metrics exposes the process's performance counters to Prometheus.
//
// It owns a dedicated prometheus registry, registers the perfcounters bridge
// collector (plus, optionally, the standard runtime collectors), and serves
// the registry over HTTP at /metrics for scraping.
//
// # Direct usage
//
//	m := metrics.NewMetrics(metrics.Config{
//	    Address:     ":9090",
//	    ServiceName: "document-index",
//	}, countersRegistry)
//	go m.Server.ListenAndServe()
//
// # FX integration
//
//	app := fx.New(
//	    metrics.FXModule,
//	    perfcounters.FXModule,
//	    logger.FXModule,
//	    fx.Provide(func() metrics.Config {
//	        return metrics.Config{Address: ":9090"}
//	    }),
//	)
//
// The fx module starts the server on application start and shuts it down
// gracefully on stop.
package metrics
