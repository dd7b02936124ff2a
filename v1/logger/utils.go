package logger

import (
	"context"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// convertToZapFields turns an optional error plus any number of field maps
// into zap's structured fields. Later maps override earlier ones only in the
// sense that zap keeps both entries; callers should avoid duplicate keys.
func (l *Logger) convertToZapFields(err error, fields ...map[string]interface{}) []zap.Field {
	var zapFields []zap.Field
	if err != nil {
		zapFields = append(zapFields, zap.Error(err))
	}
	for _, fieldMap := range fields {
		for key, value := range fieldMap {
			zapFields = append(zapFields, zap.Any(key, value))
		}
	}
	return zapFields
}

// withTraceFields appends trace_id and span_id extracted from ctx when
// tracing integration is enabled and the context carries a valid span.
func (l *Logger) withTraceFields(ctx context.Context, zapFields []zap.Field) []zap.Field {
	if !l.tracingEnabled {
		return zapFields
	}
	sc := trace.SpanContextFromContext(ctx)
	if !sc.IsValid() {
		return zapFields
	}
	return append(zapFields,
		zap.String("trace_id", sc.TraceID().String()),
		zap.String("span_id", sc.SpanID().String()),
	)
}

// Debug logs a debug-level message with an optional error and structured fields.
func (l *Logger) Debug(msg string, err error, fields ...map[string]interface{}) {
	l.Zap.Debug(msg, l.convertToZapFields(err, fields...)...)
}

// Info logs an informational message with an optional error and structured fields.
//
// Example:
//
//	log.Info("snapshot served", nil, map[string]interface{}{
//	    "socket_path": "/var/run/app.asok",
//	    "bytes":       512,
//	})
func (l *Logger) Info(msg string, err error, fields ...map[string]interface{}) {
	l.Zap.Info(msg, l.convertToZapFields(err, fields...)...)
}

// Warn logs a warning: a condition that is not a failure but may need attention.
func (l *Logger) Warn(msg string, err error, fields ...map[string]interface{}) {
	l.Zap.Warn(msg, l.convertToZapFields(err, fields...)...)
}

// Error logs a failure that affects the current operation but does not
// require terminating the application.
func (l *Logger) Error(msg string, err error, fields ...map[string]interface{}) {
	l.Zap.Error(msg, l.convertToZapFields(err, fields...)...)
}

// Fatal logs a critical failure and terminates the application with exit
// code 1. It does not return.
func (l *Logger) Fatal(msg string, err error, fields ...map[string]interface{}) {
	l.Zap.Fatal(msg, l.convertToZapFields(err, fields...)...)
}

// DebugWithContext is Debug plus trace/span ids from ctx when tracing is enabled.
func (l *Logger) DebugWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{}) {
	l.Zap.Debug(msg, l.withTraceFields(ctx, l.convertToZapFields(err, fields...))...)
}

// InfoWithContext is Info plus trace/span ids from ctx when tracing is enabled.
func (l *Logger) InfoWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{}) {
	l.Zap.Info(msg, l.withTraceFields(ctx, l.convertToZapFields(err, fields...))...)
}

// WarnWithContext is Warn plus trace/span ids from ctx when tracing is enabled.
func (l *Logger) WarnWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{}) {
	l.Zap.Warn(msg, l.withTraceFields(ctx, l.convertToZapFields(err, fields...))...)
}

// ErrorWithContext is Error plus trace/span ids from ctx when tracing is enabled.
func (l *Logger) ErrorWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{}) {
	l.Zap.Error(msg, l.withTraceFields(ctx, l.convertToZapFields(err, fields...))...)
}
