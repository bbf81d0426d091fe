// Package server exposes freshd's HTTP surface.
//
// Routes:
//
//	GET  /api/update-status  current status, never triggers a cycle
//	POST /api/check-update   runs a cycle (no-op result if one is in flight)
//	GET  /api/features       capability discovery, independent of the cycle
//	GET  /api/events         WebSocket stream of phase-transition events
//	GET  /healthz            liveness
//
// The server reaches the reconciler exclusively through the handler
// interfaces registered in internal/api, so it can be tested against mocks
// without a real reconciler.
package server
