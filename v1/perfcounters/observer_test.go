package perfcounters

import (
	"sync"
	"testing"
	"time"

	"github.com/statshub/std/v1/observability"
)

// TestObserver is a mock observer for testing.
type TestObserver struct {
	mu         sync.Mutex
	operations []observability.OperationContext
}

func (t *TestObserver) ObserveOperation(ctx observability.OperationContext) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.operations = append(t.operations, ctx)
}

func (t *TestObserver) GetOperations() []observability.OperationContext {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]observability.OperationContext, len(t.operations))
	copy(out, t.operations)
	return out
}

func TestObserveOperationNilObserverNoPanic(t *testing.T) {
	r := NewRegistry(Config{})

	// Should not panic.
	r.observeOperation("snapshot", "/tmp/x.asok", "", 10*time.Millisecond, nil, 0)
}

func TestObserveOperationCallsObserver(t *testing.T) {
	obs := &TestObserver{}
	r := NewRegistry(Config{Observer: obs})

	r.observeOperation("snapshot", "/tmp/x.asok", "", 10*time.Millisecond, nil, 128)

	ops := obs.GetOperations()
	if len(ops) != 1 {
		t.Fatalf("expected 1 operation, got %d", len(ops))
	}
	if ops[0].Component != "perfcounters" {
		t.Fatalf("expected component perfcounters, got %q", ops[0].Component)
	}
	if ops[0].Operation != "snapshot" {
		t.Fatalf("expected operation snapshot, got %q", ops[0].Operation)
	}
	if ops[0].Resource != "/tmp/x.asok" {
		t.Fatalf("expected resource /tmp/x.asok, got %q", ops[0].Resource)
	}
	if ops[0].Size != 128 {
		t.Fatalf("expected size 128, got %d", ops[0].Size)
	}
}

func TestWithObserver(t *testing.T) {
	obs := &TestObserver{}
	r := NewRegistry(Config{})

	if r.observer != nil {
		t.Fatalf("expected no observer initially")
	}

	out := r.WithObserver(obs)
	if out != r {
		t.Fatalf("WithObserver should return same instance for chaining")
	}
	if r.observer != obs {
		t.Fatalf("expected observer to be set")
	}
}

func TestServedSnapshotIsObserved(t *testing.T) {
	obs := &TestObserver{}
	path := testSocketPath(t)
	r := NewRegistry(Config{Observer: obs})
	defer r.Close()

	if err := r.ApplySocketPath(path); err != nil {
		t.Fatalf("apply socket path: %v", err)
	}
	readSnapshot(t, path)
	r.Close()

	ops := obs.GetOperations()
	if len(ops) != 1 {
		t.Fatalf("expected 1 observed snapshot, got %d", len(ops))
	}
	if ops[0].Error != nil {
		t.Fatalf("expected no error, got %v", ops[0].Error)
	}
	if ops[0].Size != int64(len("{}")) {
		t.Fatalf("expected payload size 2, got %d", ops[0].Size)
	}
}
