package toolclient

import "regexp"

// Sentinel version values returned when the real version cannot be observed.
const (
	// VersionUnknown means the command ran but produced no parseable version,
	// or a registry query failed.
	VersionUnknown = "unknown"

	// VersionNotInstalled means the tool's version command could not be run
	// at all (spawn failure or non-zero exit).
	VersionNotInstalled = "not-installed"
)

// versionPattern matches the first semantic-version-like substring in command
// output: major.minor.patch with an optional prerelease suffix such as
// -alpha.90.
var versionPattern = regexp.MustCompile(`\d+\.\d+\.\d+(?:-[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?`)

// parseVersion extracts the first version-like substring from raw command
// output. Returns VersionUnknown when nothing matches.
func parseVersion(output string) string {
	if m := versionPattern.FindString(output); m != "" {
		return m
	}
	return VersionUnknown
}

// IsSentinel reports whether v is one of the placeholder values rather than
// an observed version.
func IsSentinel(v string) bool {
	return v == VersionUnknown || v == VersionNotInstalled || v == ""
}
