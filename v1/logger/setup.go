package logger

import (
	"log"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is a thin wrapper around Uber's zap logger that exposes the
// simplified (msg, err, fields...) signature used throughout the std packages.
type Logger struct {
	// Zap is the underlying zap.Logger. It is exported so callers can reach
	// zap-specific functionality, but most logging should go through the
	// wrapper methods.
	Zap *zap.Logger

	// tracingEnabled controls whether the *WithContext methods attach
	// trace/span ids extracted from the context.
	tracingEnabled bool
}

// NewLoggerClient builds a configured logger from cfg.
//
// The logger writes JSON-encoded entries to stderr with ISO8601 timestamps,
// capital level names, caller information, and the process id and service
// name as initial fields.
//
// If the zap configuration fails to build, the function terminates the
// process via log.Fatal; there is no sensible way to continue without a
// logging facility.
func NewLoggerClient(cfg Config) *Logger {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "timestamp"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	encoderCfg.EncodeCaller = zapcore.ShortCallerEncoder
	encoderCfg.EncodeDuration = zapcore.MillisDurationEncoder

	logLevel := zap.InfoLevel
	switch cfg.Level {
	case Debug:
		logLevel = zap.DebugLevel
	case Info:
		logLevel = zap.InfoLevel
	case Warning:
		logLevel = zap.WarnLevel
	case Error:
		logLevel = zap.ErrorLevel
	}

	config := zap.Config{
		Level:         zap.NewAtomicLevelAt(logLevel),
		Encoding:      "json",
		EncoderConfig: encoderCfg,
		OutputPaths: []string{
			"stderr",
		},
		ErrorOutputPaths: []string{
			"stderr",
		},
		InitialFields: map[string]interface{}{
			"pid":     os.Getpid(),
			"service": cfg.ServiceName,
		},
	}

	zl, err := config.Build(zap.AddCaller(), zap.AddCallerSkip(1))
	if err != nil {
		log.Fatal(err)
	}

	return &Logger{
		Zap:            zl,
		tracingEnabled: cfg.EnableTracing,
	}
}
