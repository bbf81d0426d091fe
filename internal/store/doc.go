// Package store persists the UpdateStatus snapshot for out-of-process
// readers.
//
// The snapshot lives at <stateDir>/update-status.json and is rewritten after
// every reconciliation cycle via a temp-file rename, so readers never see a
// torn write. Persistence failure is non-fatal by design: the in-memory
// status held by the reconciler stays authoritative for the owning process.
//
// The optional Watcher guards the snapshot against out-of-band removal by
// re-persisting the last written record when the file disappears.
package store
