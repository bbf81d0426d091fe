// Package toolclient is the single place where freshd shells out to the
// managed CLI tool and the npm toolchain, and the single place where their
// text output is scraped.
//
// The package deliberately isolates two fragile concerns behind a narrow
// surface:
//
//   - process invocation, via the Runner interface (swappable in tests)
//   - version and help-text parsing, via unexported helpers with their own
//     unit tests
//
// All version lookups degrade to sentinel strings (VersionNotInstalled,
// VersionUnknown) instead of returning errors. The reconciler proceeds with
// an update attempt even when version discovery is unreliable, so probe
// failure must never abort a cycle.
package toolclient
