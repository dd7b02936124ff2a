package perfcounters

import (
	"time"

	"github.com/statshub/std/v1/observability"
)

// observeOperation notifies the observer about an operation if one is
// configured. This is used internally to track served snapshots.
//
// Notes:
//   - resource: the socket path the snapshot was served on
//   - subResource: reserved for future per-group reporting
func (r *Registry) observeOperation(operation, resource, subResource string, duration time.Duration, err error, size int64) {
	if r == nil || r.observer == nil {
		return
	}

	r.observer.ObserveOperation(observability.OperationContext{
		Component:   "perfcounters",
		Operation:   operation,
		Resource:    resource,
		SubResource: subResource,
		Duration:    duration,
		Error:       err,
		Size:        size,
		Metadata:    nil,
	})
}
