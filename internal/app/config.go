package app

import "freshd/internal/config"

// Config carries the command-line level settings for the daemon, plus the
// loaded file configuration after bootstrap.
type Config struct {
	// Debug enables verbose logging across the application.
	Debug bool

	// Silent suppresses all log output (used by tests and scripting).
	Silent bool

	// ConfigPath is a custom configuration directory. Empty selects the
	// current working directory.
	ConfigPath string

	// Port overrides the configured listen port when non-zero.
	Port int

	// FreshdConfig is populated during bootstrap.
	FreshdConfig *config.FreshdConfig
}

// NewConfig creates the application configuration from command-line flags.
func NewConfig(debug, silent bool, configPath string, port int) *Config {
	return &Config{
		Debug:      debug,
		Silent:     silent,
		ConfigPath: configPath,
		Port:       port,
	}
}
