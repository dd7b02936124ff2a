package metrics

import (
	"context"
	"net/http"

	"go.uber.org/fx"

	"github.com/statshub/std/v1/logger"
)

// FXModule integrates the metrics exposition server into an fx-based
// application.
//
// Usage:
//
//	app := fx.New(
//	    metrics.FXModule,
//	    perfcounters.FXModule,
//	    logger.FXModule,
//	    fx.Provide(func() metrics.Config {
//	        return metrics.Config{Address: ":9090", ServiceName: "search-store"}
//	    }),
//	)
//
// Dependencies required by this module:
//   - a metrics.Config instance
//   - a *perfcounters.Registry (normally from perfcounters.FXModule)
//   - a *logger.Logger for lifecycle logging
var FXModule = fx.Module("metrics",
	fx.Provide(NewMetrics),
	fx.Invoke(RegisterMetricsLifecycle),
)

// RegisterMetricsLifecycle starts the /metrics HTTP server in a background
// goroutine on application start and shuts it down gracefully on stop.
//
// This function is invoked by FXModule and does not need to be called
// directly in application code.
func RegisterMetricsLifecycle(lc fx.Lifecycle, m *Metrics, log *logger.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Info("starting prometheus metrics server", nil, map[string]interface{}{
					"address": m.Server.Addr,
				})
				if err := m.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Error("prometheus metrics server failed", err, nil)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("shutting down prometheus metrics server", nil, nil)
			return m.Server.Shutdown(ctx)
		},
	})
}
