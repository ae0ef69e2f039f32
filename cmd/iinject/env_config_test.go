package main

// Notes:
// - Tests touching the process environment use t.Setenv and cannot run in
//   parallel.

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/wpsmith/iinject/internal/config"
)

func TestLoadEnvConfig(t *testing.T) {
	t.Setenv("IINJECT_CONFIG", "work")
	t.Setenv("IINJECT_REGISTRY", "/tmp/registry.yaml")
	t.Setenv("IINJECT_TIMEOUT", "45s")

	got := loadEnvConfig()
	if got.ConfigPath != "work" {
		t.Errorf("ConfigPath = %q, want %q", got.ConfigPath, "work")
	}
	if got.RegistryPath != "/tmp/registry.yaml" {
		t.Errorf("RegistryPath = %q", got.RegistryPath)
	}
	if got.Timeout != 45*time.Second {
		t.Errorf("Timeout = %v, want 45s", got.Timeout)
	}
}

func TestLoadEnvConfig_InvalidTimeoutIgnored(t *testing.T) {
	for _, v := range []string{"soon", "-5s", "0s"} {
		t.Run(v, func(t *testing.T) {
			t.Setenv("IINJECT_TIMEOUT", v)
			if got := loadEnvConfig().Timeout; got != 0 {
				t.Errorf("Timeout = %v, want 0", got)
			}
		})
	}
}

func TestWarnUnknownEnvVars(t *testing.T) {
	t.Setenv("IINJECT_REGISTY", "typo")
	t.Setenv("IINJECT_REGISTRY", "ok")

	var buf bytes.Buffer
	warnUnknownEnvVars(&buf)

	out := buf.String()
	if !strings.Contains(out, "IINJECT_REGISTY") {
		t.Errorf("expected warning for IINJECT_REGISTY, got %q", out)
	}
	if strings.Contains(out, "IINJECT_REGISTRY ") {
		t.Errorf("known variable reported: %q", out)
	}
}

func TestApplyEnvConfig(t *testing.T) {
	t.Parallel()

	env := &envConfig{RegistryPath: "env.yaml", Timeout: time.Minute}

	t.Run("fills empty fields", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		applyEnvConfig(env, cfg)
		if cfg.Registry.Path != "env.yaml" {
			t.Errorf("Registry.Path = %q", cfg.Registry.Path)
		}
		if cfg.Browser.Timeout != "1m0s" {
			t.Errorf("Browser.Timeout = %q", cfg.Browser.Timeout)
		}
	})

	t.Run("config file wins", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		cfg.Registry.Path = "file.yaml"
		cfg.Browser.Timeout = "10s"
		applyEnvConfig(env, cfg)
		if cfg.Registry.Path != "file.yaml" {
			t.Errorf("Registry.Path = %q", cfg.Registry.Path)
		}
		if cfg.Browser.Timeout != "10s" {
			t.Errorf("Browser.Timeout = %q", cfg.Browser.Timeout)
		}
	})
}
