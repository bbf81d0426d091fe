// Package reconciler implements freshd's reconciliation cycle: probe the
// installed and latest versions of the managed tool, force a re-install
// through the always-latest launcher, discover the tool's capability
// surface, and publish the outcome.
//
// # Cycle shape
//
// One cycle runs probe, install, verify and discovery strictly sequentially.
// The checking/updating flags on the status record double as a cooperative
// advisory lock: a RunCycle call that observes either flag set returns the
// current status unchanged and performs no external invocation. A dropped
// request is not deferred; callers wanting the next result poll status after
// the in-flight cycle completes.
//
// # Failure boundary
//
// RunCycle never propagates an error to its caller. Version probes degrade
// to sentinel strings, discovery degrades to a fixed fallback list, and the
// secondary global install is swallowed entirely. Only the primary install
// failure is user-visible, recorded in the status Error field; the cycle
// still returns normally and the next timer tick retries.
//
// # Unconditional update
//
// The installed-vs-latest comparison is informational (UpdateAvailable). The
// install step always runs, because resolution through the launcher is
// itself always-latest by nature and trusting stale version equality would
// skip real updates.
package reconciler
