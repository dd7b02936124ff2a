package perfcounters

import "errors"

// Common perfcounters errors
var (
	// ErrClosed is returned when the registry has already been closed.
	ErrClosed = errors.New("perfcounters: registry is closed")
)

// IsClosedError checks if the error is a "registry is closed" error.
func IsClosedError(err error) bool {
	return errors.Is(err, ErrClosed)
}
