package perfcounters

import (
	"fmt"
	"net"
	"sync"
	"time"
)

// service is one instance of the snapshot publishing worker, bound to one
// unix socket path. It serves a single client connection at a time: accept,
// write the snapshot, close, repeat. Concurrent clients are out of scope.
//
// The worker exits on the first environmental failure; the registry starts a
// fresh instance on the next configuration change.
type service struct {
	path     string
	listener net.Listener
	registry *Registry

	// shutdown is closed by the registry to request a clean exit; closing
	// the listener at the same time unblocks a pending Accept. stopOnce
	// makes the signal idempotent. done is closed by the worker when it
	// returns, so stop can join it.
	shutdown chan struct{}
	done     chan struct{}
	stopOnce sync.Once
}

// startService binds and listens on path and launches the worker goroutine.
// On a bind or listen failure no goroutine is started and the error is
// returned to the registry.
func startService(path string, r *Registry) (*service, error) {
	ln, err := net.Listen("unix", path)
	if err != nil {
		return nil, fmt.Errorf("perfcounters: listen on %q: %w", path, err)
	}
	s := &service{
		path:     path,
		listener: ln,
		registry: r,
		shutdown: make(chan struct{}),
		done:     make(chan struct{}),
	}
	go s.run()
	return s, nil
}

// stop signals the worker, unblocks its Accept, and joins it. Safe to call
// more than once.
func (s *service) stop() {
	s.stopOnce.Do(func() {
		close(s.shutdown)
		// Closing the unix listener both wakes a blocked Accept and
		// unlinks the socket file, so later connects to this path fail.
		if err := s.listener.Close(); err != nil {
			s.registry.logError("failed to close snapshot listener", err, map[string]interface{}{
				"socket_path": s.path,
			})
		}
	})
	<-s.done
}

// run is the worker loop: wait for either a connection or the shutdown
// signal, serve one connection fully, go back to waiting. Any accept or
// write failure is fatal to this service instance.
func (s *service) run() {
	defer close(s.done)
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			select {
			case <-s.shutdown:
				return
			default:
			}
			s.registry.logError("accept failed on snapshot socket", err, map[string]interface{}{
				"socket_path": s.path,
			})
			return
		}
		if err := s.serve(conn); err != nil {
			s.registry.logError("failed to write counter snapshot", err, map[string]interface{}{
				"socket_path": s.path,
			})
			return
		}
	}
}

// serve writes one full JSON snapshot to conn and closes it. The payload is
// assembled in memory before the first write, so no counter lock is ever
// held across socket I/O; a slow client delays only its own connection.
func (s *service) serve(conn net.Conn) error {
	start := time.Now()
	payload := s.registry.snapshotJSON()
	_, err := conn.Write(payload)
	if cerr := conn.Close(); err == nil {
		err = cerr
	}
	s.registry.observeOperation("snapshot", s.path, "", time.Since(start), err, int64(len(payload)))
	return err
}
