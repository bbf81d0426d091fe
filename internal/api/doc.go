// Package api is the central interface layer between freshd's components.
//
// The reconciler registers handler implementations here during bootstrap,
// and consumers (the HTTP server, the CLI) retrieve them through accessor
// functions. No component holds a direct reference to another component's
// concrete type, which keeps the dependency graph acyclic and makes every
// consumer trivially mockable in tests.
//
// The package also owns the shared data types: UpdateStatus, the one
// process-wide freshness record, and PhaseEvent, the phase-transition record
// delivered to subscribers.
package api
