package perfcounters

import "github.com/statshub/std/v1/observability"

// Logger is the minimal logging surface this package needs. It is satisfied
// by *logger.Logger from std/v1/logger; defining it locally keeps the
// package usable without that dependency.
type Logger interface {
	Debug(msg string, err error, fields ...map[string]interface{})
	Info(msg string, err error, fields ...map[string]interface{})
	Warn(msg string, err error, fields ...map[string]interface{})
	Error(msg string, err error, fields ...map[string]interface{})
}

// Observer aliases the shared observability hook so callers can configure it
// without importing std/v1/observability themselves.
type Observer = observability.Observer
