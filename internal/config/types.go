package config

// FreshdConfig is the top-level configuration structure for freshd.
type FreshdConfig struct {
	Tool    ToolConfig    `yaml:"tool"`
	Updater UpdaterConfig `yaml:"updater"`
	Server  ServerConfig  `yaml:"server"`
}

// ToolConfig identifies the managed npm package and how to invoke it.
type ToolConfig struct {
	Package  string `yaml:"package,omitempty"`  // npm package name (default: claude-flow)
	Tag      string `yaml:"tag,omitempty"`      // dist-tag pinned for installs (default: alpha)
	Command  string `yaml:"command,omitempty"`  // executable name for direct invocation (default: package name)
	Launcher string `yaml:"launcher,omitempty"` // always-latest launcher (default: npx)
}

// UpdaterConfig controls the reconciliation schedule and state persistence.
type UpdaterConfig struct {
	// CheckInterval is the wall-clock period between cycles, in Go duration
	// syntax (default: 1h). The startup cycle runs regardless.
	CheckInterval string `yaml:"checkInterval,omitempty"`

	// StateDir is the dot-prefixed directory holding the status snapshot
	// (default: .freshd).
	StateDir string `yaml:"stateDir,omitempty"`
}

// ServerConfig defines the HTTP surface.
type ServerConfig struct {
	Port int    `yaml:"port,omitempty"` // listen port (default: 3001, FRESHD_PORT overrides)
	Host string `yaml:"host,omitempty"` // host to bind to (default: localhost)
}

// GetDefaultConfig returns the default configuration for freshd.
func GetDefaultConfig() FreshdConfig {
	return FreshdConfig{
		Tool: ToolConfig{
			Package:  "claude-flow",
			Tag:      "alpha",
			Launcher: "npx",
		},
		Updater: UpdaterConfig{
			CheckInterval: "1h",
			StateDir:      ".freshd",
		},
		Server: ServerConfig{
			Port: 3001,
			Host: "localhost",
		},
	}
}
