package perfcounters

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
)

func testSocketPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "counters.asok")
}

// readSnapshot connects to the snapshot socket, reads the single JSON object
// the service writes, and decodes it.
func readSnapshot(t *testing.T, path string) map[string]interface{} {
	t.Helper()
	conn, err := net.DialTimeout("unix", path, time.Second)
	require.NoError(t, err, "connect to snapshot socket")
	defer conn.Close()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	raw, err := io.ReadAll(conn)
	require.NoError(t, err, "read snapshot payload")

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &out), "snapshot payload: %s", raw)
	return out
}

func TestSnapshotMatchesLiveValues(t *testing.T) {
	path := testSocketPath(t)
	r := NewRegistry(Config{})
	defer r.Close()

	c := newTestCounters(t)
	r.Add(c)
	c.Add(testReads, 17)
	c.AddFloat(testLatency, 2.0)
	c.AddFloat(testLatency, 4.0)

	require.NoError(t, r.ApplySocketPath(path))

	out := readSnapshot(t, path)
	assert.Equal(t, 17.0, out["reads"])
	latency, ok := out["latency"].(map[string]interface{})
	require.True(t, ok, "latency member: %v", out["latency"])
	assert.Equal(t, 2.0, latency["count"])
	assert.Equal(t, 6.0, latency["sum"])

	// The endpoint serves current values: a second connection after more
	// updates sees them.
	c.Add(testReads, 3)
	out = readSnapshot(t, path)
	assert.Equal(t, 20.0, out["reads"])
}

func TestEmptyPathStopsService(t *testing.T) {
	path := testSocketPath(t)
	r := NewRegistry(Config{})
	defer r.Close()

	require.NoError(t, r.ApplySocketPath(path))
	readSnapshot(t, path)

	require.NoError(t, r.ApplySocketPath(""))

	_, err := net.DialTimeout("unix", path, time.Second)
	require.Error(t, err, "connect should fail once the path is cleared")
}

func TestRestartOnSamePathWithNoCounters(t *testing.T) {
	path := testSocketPath(t)
	r := NewRegistry(Config{})
	defer r.Close()

	require.NoError(t, r.ApplySocketPath(path))
	require.NoError(t, r.ApplySocketPath(""))
	require.NoError(t, r.ApplySocketPath(path))

	out := readSnapshot(t, path)
	assert.Empty(t, out, "expected {} with no registered groups")
}

func TestPathChangeMovesService(t *testing.T) {
	first := testSocketPath(t)
	second := testSocketPath(t)
	r := NewRegistry(Config{})
	defer r.Close()

	require.NoError(t, r.ApplySocketPath(first))
	require.NoError(t, r.ApplySocketPath(second))

	_, err := net.DialTimeout("unix", first, time.Second)
	require.Error(t, err, "old path should be gone")
	readSnapshot(t, second)
}

func TestFailedStartLeavesRegistryUsable(t *testing.T) {
	r := NewRegistry(Config{})
	defer r.Close()

	err := r.ApplySocketPath(filepath.Join(t.TempDir(), "missing", "counters.asok"))
	require.Error(t, err, "listen inside a missing directory should fail")

	// Counter collection is unaffected by publishing failures, and a later
	// configuration change recovers the service.
	c := newTestCounters(t)
	r.Add(c)
	c.Inc(testReads)

	path := testSocketPath(t)
	require.NoError(t, r.ApplySocketPath(path))
	out := readSnapshot(t, path)
	assert.Equal(t, 1.0, out["reads"])
}

func TestCloseStopsService(t *testing.T) {
	path := testSocketPath(t)
	r := NewRegistry(Config{})

	require.NoError(t, r.ApplySocketPath(path))
	require.NoError(t, r.Close())

	_, err := net.DialTimeout("unix", path, time.Second)
	require.Error(t, err, "connect should fail after Close")
}

func TestFXLifecycle(t *testing.T) {
	ctx := context.Background()
	path := testSocketPath(t)

	var registry *Registry
	app := fx.New(
		FXModule,
		fx.Provide(
			func() Config { return Config{SocketPath: path} },
		),
		fx.Populate(&registry),
		fx.NopLogger,
	)

	require.NoError(t, app.Start(ctx))

	c := newTestCounters(t)
	registry.Add(c)
	c.Set(testWrites, 5)

	out := readSnapshot(t, path)
	assert.Equal(t, 5.0, out["writes"])

	require.NoError(t, app.Stop(ctx))

	_, err := net.DialTimeout("unix", path, time.Second)
	require.Error(t, err, "service should be stopped with the application")
}
