// Package cli provides shared output helpers for freshd's commands: output
// format validation, kubectl-style table rendering of the update status and
// feature lists, and a progress spinner for the one-shot check.
package cli
