package observability

import "time"

// OperationContext carries the details of a single observed operation.
// Producers fill in whichever fields make sense for the operation; consumers
// must tolerate zero values for any field.
type OperationContext struct {
	// Component is the package reporting the operation (e.g. "perfcounters").
	Component string

	// Operation is the short verb describing what happened (e.g. "snapshot").
	Operation string

	// Resource is the primary object the operation acted on, such as a
	// socket path or a counter-group name.
	Resource string

	// SubResource adds optional secondary context (e.g. a slot name).
	SubResource string

	// Duration is how long the operation took.
	Duration time.Duration

	// Error is the failure that ended the operation, or nil on success.
	Error error

	// Size is the number of bytes produced or consumed, when meaningful.
	Size int64

	// Metadata holds any additional key-value context.
	Metadata map[string]interface{}
}

// Observer receives operation reports from instrumented packages.
// Implementations must be safe for concurrent use; callers may invoke
// ObserveOperation from multiple goroutines.
//
// A nil Observer is always a valid configuration: packages check for nil
// before reporting.
type Observer interface {
	ObserveOperation(ctx OperationContext)
}
