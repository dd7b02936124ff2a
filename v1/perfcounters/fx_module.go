package perfcounters

import (
	"context"

	"go.uber.org/fx"

	"github.com/statshub/std/v1/observability"
)

// FXModule is an fx.Module that provides and configures the counter
// registry. It registers the Registry with the fx dependency injection
// framework, making it available to other components in the application.
//
// The module:
//  1. Provides the Registry factory function
//  2. Invokes the lifecycle registration that starts the publishing service
//     on the configured socket path and shuts everything down at exit
//
// Usage:
//
//	app := fx.New(
//	    perfcounters.FXModule,
//	    fx.Provide(func() perfcounters.Config {
//	        return perfcounters.Config{SocketPath: "/var/run/app.asok"}
//	    }),
//	    // other modules...
//	)
var FXModule = fx.Module("perfcounters",
	fx.Provide(
		NewRegistryWithDI,
	),
	fx.Invoke(RegisterPerfCountersLifecycle),
)

// Params groups the dependencies needed to create a Registry
type Params struct {
	fx.In

	Config   Config
	Logger   Logger                 `optional:"true"` // Optional logger from std/v1/logger
	Observer observability.Observer `optional:"true"`
}

// NewRegistryWithDI creates a new Registry using dependency injection.
// The optional logger and observer are injected into the config before
// delegating to NewRegistry.
func NewRegistryWithDI(params Params) *Registry {
	if params.Logger != nil {
		params.Config.Logger = params.Logger
	}
	if params.Observer != nil {
		params.Config.Observer = params.Observer
	}
	return NewRegistry(params.Config)
}

// LifecycleParams groups the dependencies needed for registry lifecycle
// management
type LifecycleParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Registry  *Registry
}

// RegisterPerfCountersLifecycle registers the registry with the fx lifecycle
// system.
//
// On start it applies the configured socket path, which launches the
// publishing service when the path is non-empty. A failed service start is
// already logged by the registry and is deliberately not fatal to the
// application: counter collection works without a publisher, and the next
// configuration change can bring the service up.
//
// On stop it closes the registry, which joins the service worker and drops
// any groups still registered.
func RegisterPerfCountersLifecycle(params LifecycleParams) {
	params.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if params.Registry.cfg.SocketPath == "" {
				return nil
			}
			_ = params.Registry.ApplySocketPath(params.Registry.cfg.SocketPath)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return params.Registry.Close()
		},
	})
}
