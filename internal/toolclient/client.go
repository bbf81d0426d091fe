package toolclient

import (
	"context"
	"strings"

	"freshd/pkg/logging"
)

// ToolSpec identifies the managed tool and how to invoke it.
type ToolSpec struct {
	// Package is the npm package name, e.g. "claude-flow".
	Package string

	// Tag is the dist-tag pinned for installs, e.g. "alpha" or "latest".
	Tag string

	// Command is the executable name used for direct invocations when the
	// tool is installed globally. Defaults to Package.
	Command string

	// Launcher is the always-latest launcher, normally "npx". Invoking the
	// package through it resolves and caches the newest published build,
	// which is what makes the forced re-install meaningful.
	Launcher string
}

// packageRef returns the package@tag reference used for installs.
func (s ToolSpec) packageRef() string {
	if s.Tag == "" {
		return s.Package
	}
	return s.Package + "@" + s.Tag
}

// command returns the direct executable name.
func (s ToolSpec) command() string {
	if s.Command != "" {
		return s.Command
	}
	return s.Package
}

// Client answers structured questions about the managed tool by invoking it
// and scraping the output. All fragile parsing is contained here.
type Client struct {
	spec   ToolSpec
	runner Runner
}

// NewClient creates a client for the given tool. A nil runner gets the
// default exec-backed implementation.
func NewClient(spec ToolSpec, runner Runner) *Client {
	if runner == nil {
		runner = &ExecRunner{}
	}
	if spec.Launcher == "" {
		spec.Launcher = "npx"
	}
	return &Client{spec: spec, runner: runner}
}

// Spec returns the tool specification the client was built with.
func (c *Client) Spec() ToolSpec {
	return c.spec
}

// InstalledVersion reports the version of the tool as currently installed.
// It never returns an error: a failed invocation yields VersionNotInstalled
// and unparseable output yields VersionUnknown.
func (c *Client) InstalledVersion(ctx context.Context) string {
	out, err := c.runner.Run(ctx, c.spec.command(), "--version")
	if err != nil {
		logging.Debug("ToolClient", "Version probe failed for %s: %v", c.spec.command(), err)
		return VersionNotInstalled
	}
	return parseVersion(out)
}

// LatestVersion reports the newest version published to the registry for the
// pinned dist-tag. It never returns an error; failures yield VersionUnknown.
func (c *Client) LatestVersion(ctx context.Context) string {
	out, err := c.runner.Run(ctx, "npm", "view", c.spec.packageRef(), "version")
	if err != nil {
		logging.Debug("ToolClient", "Registry query failed for %s: %v", c.spec.packageRef(), err)
		return VersionUnknown
	}
	v := strings.TrimSpace(out)
	if v == "" {
		return VersionUnknown
	}
	return v
}

// HelpText returns the tool's help output for capability discovery.
func (c *Client) HelpText(ctx context.Context) (string, error) {
	return c.runner.Run(ctx, c.spec.Launcher, "-y", c.spec.packageRef(), "--help")
}

// Install performs the primary, forced-latest install: invoking the package
// through the launcher resolves the newest build for the pinned tag and
// caches it. This is the one invocation whose failure aborts a cycle.
func (c *Client) Install(ctx context.Context) error {
	_, err := c.runner.Run(ctx, c.spec.Launcher, "-y", c.spec.packageRef(), "--version")
	return err
}

// InstallGlobal performs the optional global install. Callers treat failure
// as non-fatal redundancy.
func (c *Client) InstallGlobal(ctx context.Context) error {
	_, err := c.runner.Run(ctx, "npm", "install", "-g", c.spec.packageRef())
	return err
}
