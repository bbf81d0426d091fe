// Package logging provides freshd's structured logging layer on top of the
// standard slog package.
//
// Every log entry carries a subsystem identifier so that output from the
// reconciler, the HTTP server, the snapshot store and the CLI can be filtered
// independently:
//
//	logging.Init(logging.LevelInfo, os.Stdout)
//	logging.Info("Reconciler", "Cycle %s complete", cycleID)
//	logging.Error("Store", err, "Failed to persist snapshot")
//
// Level filtering happens at the handler, so messages below the configured
// level cost no allocation. The package is safe for concurrent use.
package logging
