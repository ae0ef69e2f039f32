package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/wpsmith/iinject/internal/config"
)

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath   string        // IINJECT_CONFIG: config file name or path
	RegistryPath string        // IINJECT_REGISTRY: registry overlay file
	Timeout      time.Duration // IINJECT_TIMEOUT: browser timeout
}

// knownEnvVars lists valid IINJECT_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"IINJECT_CONFIG":   true,
	"IINJECT_REGISTRY": true,
	"IINJECT_TIMEOUT":  true,
}

// loadEnvConfig reads configuration from environment variables.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath:   os.Getenv("IINJECT_CONFIG"),
		RegistryPath: os.Getenv("IINJECT_REGISTRY"),
	}

	// Invalid durations are ignored, not errors
	if timeout := os.Getenv("IINJECT_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized IINJECT_* variables.
// Helps catch typos like IINJECT_REGISTY.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, "IINJECT_") {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig applies environment variable values to config.
// Only sets values if the env var is set AND the config value is empty.
// This ensures: CLI flags > env vars > config file > defaults
// (CLI flags are applied afterwards by loadConfig)
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.RegistryPath != "" && cfg.Registry.Path == "" {
		cfg.Registry.Path = env.RegistryPath
	}
	if env.Timeout > 0 && cfg.Browser.Timeout == "" {
		cfg.Browser.Timeout = env.Timeout.String()
	}
}
