package logger

import (
	"context"

	"go.uber.org/fx"
)

// FXModule integrates the logger into an fx-based application.
//
// The module provides the NewLoggerClient factory to the dependency injection
// container and registers a shutdown hook that flushes buffered log entries.
//
// Usage:
//
//	app := fx.New(
//	    logger.FXModule,
//	    fx.Provide(func() logger.Config {
//	        return logger.Config{Level: logger.Info, ServiceName: "my-service"}
//	    }),
//	    // other modules...
//	)
var FXModule = fx.Module("logger",
	fx.Provide(
		NewLoggerClient,
	),
	fx.Invoke(RegisterLoggerLifecycle),
)

// RegisterLoggerLifecycle registers the shutdown hook that syncs the
// underlying zap logger so no buffered entries are lost at exit.
//
// This function is invoked by FXModule and does not need to be called
// directly in application code.
func RegisterLoggerLifecycle(lc fx.Lifecycle, client *Logger) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Zap.Sync() // flushes any buffered logs
		},
	})
}
