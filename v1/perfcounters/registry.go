package perfcounters

import (
	"bytes"
	"fmt"
	"sync"
)

// Registry is the process-wide collection of live Counters groups plus the
// lifecycle of the snapshot publishing service.
//
// Two independent mutex domains keep membership and service management from
// interfering: mu guards only the group slice, svcMu guards only the service
// handle and socket path. Neither is ever held while acquiring a group's own
// lock, and the group lock is never held while acquiring either of them, so
// no lock ordering between groups is needed.
type Registry struct {
	cfg      Config
	logger   Logger
	observer Observer

	// mu guards groups. Groups are kept in insertion order, which makes
	// snapshot member order deterministic.
	mu     sync.Mutex
	groups []*Counters

	// svcMu guards service, socketPath and closed. It is held across the
	// stop/start of a service, including the join of the previous worker;
	// snapshot assembly never takes it, so a worker mid-serve cannot
	// deadlock a teardown.
	svcMu      sync.Mutex
	service    *service
	socketPath string
	closed     bool
}

// NewRegistry creates a Registry from cfg. The publishing service is not
// started here; call ApplySocketPath (directly or through the fx lifecycle)
// to start it once a socket path is known.
func NewRegistry(cfg Config) *Registry {
	return &Registry{
		cfg:      cfg,
		logger:   cfg.Logger,
		observer: cfg.Observer,
	}
}

// WithObserver sets the observability hook and returns the registry for
// chaining.
func (r *Registry) WithObserver(obs Observer) *Registry {
	r.observer = obs
	return r
}

// Add registers a group. Adding a group that is already registered is a bug
// in the owning subsystem and panics.
func (r *Registry) Add(c *Counters) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, g := range r.groups {
		if g == c {
			panic(fmt.Sprintf("perfcounters: group %q added twice", c.name))
		}
	}
	r.groups = append(r.groups, c)
}

// Remove unregisters a group previously passed to Add. Removing a group that
// is not registered panics. The group itself is untouched; ownership stays
// with the caller.
func (r *Registry) Remove(c *Counters) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, g := range r.groups {
		if g == c {
			r.groups = append(r.groups[:i], r.groups[i+1:]...)
			return
		}
	}
	panic(fmt.Sprintf("perfcounters: group %q removed but never added", c.name))
}

// ApplySocketPath reacts to a socket-path configuration change. An empty
// path stops any running publishing service; a non-empty path stops the old
// service and starts a new one bound there.
//
// A bind or listen failure is logged and returned, and leaves the registry
// without an active service. Nothing is retried: the next configuration
// change or process restart is the recovery path, and counter collection is
// unaffected either way.
func (r *Registry) ApplySocketPath(path string) error {
	r.svcMu.Lock()
	defer r.svcMu.Unlock()
	if r.closed {
		return ErrClosed
	}

	r.stopServiceLocked()
	r.socketPath = path
	if path == "" {
		return nil
	}

	svc, err := startService(path, r)
	if err != nil {
		r.logError("failed to start perf counter publishing service", err, map[string]interface{}{
			"socket_path": path,
		})
		return err
	}
	r.service = svc
	r.logInfo("perf counter publishing service listening", nil, map[string]interface{}{
		"socket_path": path,
	})
	return nil
}

// SocketPath returns the last path handed to ApplySocketPath.
func (r *Registry) SocketPath() string {
	r.svcMu.Lock()
	defer r.svcMu.Unlock()
	return r.socketPath
}

// Close stops the publishing service and drops every group still registered.
// Groups not removed earlier by their owners default to the registry at
// teardown. Close is idempotent.
func (r *Registry) Close() error {
	r.svcMu.Lock()
	r.stopServiceLocked()
	r.closed = true
	r.svcMu.Unlock()

	r.mu.Lock()
	r.groups = nil
	r.mu.Unlock()
	return nil
}

// stopServiceLocked signals the running service, if any, and joins its
// worker. Callers hold svcMu.
func (r *Registry) stopServiceLocked() {
	if r.service == nil {
		return
	}
	r.service.stop()
	r.service = nil
}

// groupsCopy returns the registered groups in insertion order. The copy is
// taken under mu so callers can visit the groups without holding it.
func (r *Registry) groupsCopy() []*Counters {
	r.mu.Lock()
	defer r.mu.Unlock()
	groups := make([]*Counters, len(r.groups))
	copy(groups, r.groups)
	return groups
}

// snapshotJSON assembles the full JSON snapshot of every registered group.
// The group slice is copied under mu first, then each group serializes
// itself under its own lock only; no two locks are ever held together.
func (r *Registry) snapshotJSON() []byte {
	groups := r.groupsCopy()

	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	for _, c := range groups {
		c.writeJSON(&buf, &first)
	}
	buf.WriteByte('}')
	return buf.Bytes()
}

func (r *Registry) logInfo(msg string, err error, fields ...map[string]interface{}) {
	if r.logger != nil {
		r.logger.Info(msg, err, fields...)
	}
}

func (r *Registry) logError(msg string, err error, fields ...map[string]interface{}) {
	if r.logger != nil {
		r.logger.Error(msg, err, fields...)
	}
}
