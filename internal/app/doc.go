// Package app bootstraps and runs the freshd daemon.
//
// Bootstrap follows a two-phase pattern:
//
//  1. Bootstrap phase: initialize logging, load configuration, construct the
//     tool client, reconciler, snapshot store and HTTP server, and register
//     the reconciler with the API layer.
//  2. Execution phase: run the startup reconciliation cycle, then the
//     periodic scheduler, the HTTP server and the snapshot watcher together
//     under one errgroup until the context is cancelled.
//
// When running under systemd, readiness and stopping notifications are sent
// via the sd_notify protocol; outside systemd these calls are no-ops.
package app
