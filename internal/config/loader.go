package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"freshd/pkg/logging"
)

const configFileName = "config.yaml"

// PortEnvVar overrides the configured listen port when set.
const PortEnvVar = "FRESHD_PORT"

// LoadConfig loads configuration from a single specified directory. A missing
// config.yaml is not an error; defaults apply. The FRESHD_PORT environment
// variable overrides the configured port either way.
func LoadConfig(configPath string) (FreshdConfig, error) {
	configFilePath := filepath.Join(configPath, configFileName)
	config := GetDefaultConfig()

	data, err := os.ReadFile(configFilePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logging.Info("ConfigLoader", "No config.yaml found at %s, using defaults", configFilePath)
			return applyEnvOverrides(config), nil
		}
		logging.Info("ConfigLoader", "Error loading config.yaml from %s: %s", configFilePath, err)
		return FreshdConfig{}, err
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return FreshdConfig{}, fmt.Errorf("error loading config from %s: %w", configFilePath, err)
	}

	logging.Info("ConfigLoader", "Loaded configuration from %s", configFilePath)
	return applyEnvOverrides(config), nil
}

// applyEnvOverrides folds environment overrides into the loaded config.
func applyEnvOverrides(config FreshdConfig) FreshdConfig {
	if portStr := os.Getenv(PortEnvVar); portStr != "" {
		if port, err := strconv.Atoi(portStr); err == nil && port > 0 && port < 65536 {
			config.Server.Port = port
		} else {
			logging.Warn("ConfigLoader", "Ignoring invalid %s value %q", PortEnvVar, portStr)
		}
	}
	return config
}

// CheckInterval parses the configured check interval, falling back to one
// hour when the value is empty or malformed.
func (c FreshdConfig) CheckInterval() time.Duration {
	d, err := time.ParseDuration(c.Updater.CheckInterval)
	if err != nil || d <= 0 {
		if c.Updater.CheckInterval != "" {
			logging.Warn("ConfigLoader", "Invalid checkInterval %q, using 1h", c.Updater.CheckInterval)
		}
		return time.Hour
	}
	return d
}
