package perfcounters

import (
	"encoding/json"
	"testing"
)

func TestAddAndRemove(t *testing.T) {
	r := NewRegistry(Config{})
	c := newTestCounters(t)

	r.Add(c)
	r.Remove(c)

	// Removed groups no longer appear in snapshots.
	if got := string(r.snapshotJSON()); got != "{}" {
		t.Errorf("expected empty snapshot after remove, got %s", got)
	}
}

func TestDuplicateAddPanics(t *testing.T) {
	r := NewRegistry(Config{})
	c := newTestCounters(t)
	r.Add(c)
	expectPanic(t, "duplicate add", func() { r.Add(c) })
}

func TestRemoveMissingPanics(t *testing.T) {
	r := NewRegistry(Config{})
	c := newTestCounters(t)
	expectPanic(t, "remove of unregistered group", func() { r.Remove(c) })
}

func TestSnapshotWithNoGroups(t *testing.T) {
	r := NewRegistry(Config{})
	if got := string(r.snapshotJSON()); got != "{}" {
		t.Errorf("expected {}, got %s", got)
	}
}

func TestSnapshotAcrossGroupsIsWellFormed(t *testing.T) {
	r := NewRegistry(Config{})

	b1 := NewBuilder("alpha", 0, 3)
	b1.AddU64(1, "alpha_ops")
	b1.AddFloat(2, "alpha_load")
	g1 := b1.Build()

	b2 := NewBuilder("beta", 10, 13)
	b2.AddU64(11, "beta_ops")
	b2.AddFloatAvg(12, "beta_latency")
	g2 := b2.Build()

	r.Add(g1)
	r.Add(g2)

	g1.Add(1, 9)
	g1.SetFloat(2, 0.75)
	g2.Inc(11)
	g2.AddFloat(12, 3.5)

	raw := r.snapshotJSON()
	var out map[string]interface{}
	if err := json.Unmarshal(raw, &out); err != nil {
		t.Fatalf("snapshot is not valid JSON: %v\npayload: %s", err, raw)
	}
	if len(out) != 4 {
		t.Errorf("expected 4 members, got %d: %s", len(out), raw)
	}
	if out["alpha_ops"] != 9.0 {
		t.Errorf("alpha_ops: expected 9, got %v", out["alpha_ops"])
	}
	if out["alpha_load"] != 0.75 {
		t.Errorf("alpha_load: expected 0.75, got %v", out["alpha_load"])
	}
	if out["beta_ops"] != 1.0 {
		t.Errorf("beta_ops: expected 1, got %v", out["beta_ops"])
	}
	latency, ok := out["beta_latency"].(map[string]interface{})
	if !ok || latency["count"] != 1.0 || latency["sum"] != 3.5 {
		t.Errorf("beta_latency: expected {count:1 sum:3.5}, got %v", out["beta_latency"])
	}
}

func TestApplySocketPathAfterClose(t *testing.T) {
	r := NewRegistry(Config{})
	if err := r.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if err := r.ApplySocketPath("/tmp/ignored.asok"); !IsClosedError(err) {
		t.Errorf("expected ErrClosed, got %v", err)
	}
}

func TestCloseDropsRemainingGroups(t *testing.T) {
	r := NewRegistry(Config{})
	r.Add(newTestCounters(t))
	if err := r.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if got := string(r.snapshotJSON()); got != "{}" {
		t.Errorf("expected empty snapshot after close, got %s", got)
	}
}
