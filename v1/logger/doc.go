// Package logger provides the structured logging facility shared by the std
// packages.
//
// It wraps Uber's zap logger behind a simplified (msg, err, fields...)
// signature, adds optional OpenTelemetry trace-context extraction, and ships
// an fx module for lifecycle integration.
//
// # Direct usage
//
//	log := logger.NewLoggerClient(logger.Config{
//	    Level:       logger.Info,
//	    ServiceName: "my-service",
//	})
//	log.Info("service started", nil, nil)
//	log.Error("bind failed", err, map[string]interface{}{
//	    "socket_path": path,
//	})
//
// # FX integration
//
//	app := fx.New(
//	    logger.FXModule,
//	    fx.Provide(func() logger.Config {
//	        return logger.Config{Level: logger.Info}
//	    }),
//	)
//
// The module registers an OnStop hook that flushes buffered entries.
//
// # Tracing
//
// With Config.EnableTracing set, the *WithContext methods extract the active
// span from the context and attach trace_id and span_id fields, correlating
// log entries with distributed traces.
//
// All methods are safe for concurrent use by multiple goroutines.
package logger
