// Package observability defines the lightweight observer contract shared by
// the std packages.
//
// Instrumented packages (perfcounters, and others that adopt the hook) report
// each interesting operation as an OperationContext to an optional Observer.
// Applications implement Observer once and plug it into every package's
// configuration, translating the reports into whatever metrics or tracing
// system they use.
//
// The contract is intentionally minimal: one method, one struct, no
// dependencies. Packages never require an observer; a nil observer disables
// reporting at negligible cost.
package observability
