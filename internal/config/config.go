package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/wpsmith/iinject/internal/fileutil"
	"github.com/wpsmith/iinject/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrFieldRequired   = errors.New("required field is empty")
	ErrInvalidField    = errors.New("invalid field value")
)

// Field length limits.
const (
	MaxNameLength   = 100       // Asset name
	MaxSymbolLength = 200       // Global symbol, "jQuery"
	MaxURLLength    = 2048      // Browser limit
	MaxPathLength   = 4096      // PATH_MAX
	MaxMethodLength = 20        // "inlineJS"
	MaxInlineLength = 64 * 1024 // Inline script body
	MaxLoads        = 100       // Assets per config
)

// Config holds the CLI's persistent settings.
type Config struct {
	Registry RegistryConfig `yaml:"registry"`
	Page     PageConfig     `yaml:"page"`
	Loads    []AssetLoad    `yaml:"loads"`
	Output   OutputConfig   `yaml:"output"`
	Browser  BrowserConfig  `yaml:"browser"`
}

// RegistryConfig points at a registry overlay file.
type RegistryConfig struct {
	Path string `yaml:"path"` // Empty = built-in registry only
}

// PageConfig declares globals a static page already provides.
type PageConfig struct {
	Globals []string       `yaml:"globals"`
	Members []MemberConfig `yaml:"members"`
}

// MemberConfig declares a member on a global's call result.
type MemberConfig struct {
	Object string `yaml:"object"`
	Member string `yaml:"member"`
}

// AssetLoad is one asset to load, with optional overrides.
type AssetLoad struct {
	Name         string `yaml:"name"`
	Src          string `yaml:"src"`
	Method       string `yaml:"method"` // "js", "css", "inlineJS"
	Exists       string `yaml:"exists"`
	InHead       *bool  `yaml:"inHead"` // nil = registry entry or head
	DependentVar string `yaml:"dependentVar"`
	Inline       string `yaml:"inline"`
	InlineFile   string `yaml:"inlineFile"` // Relative to the config file
}

// OutputConfig defines output rendering options.
type OutputConfig struct {
	Minify       bool `yaml:"minify"`       // Minify the rendered page
	MinifyInline bool `yaml:"minifyInline"` // Minify inline script bodies
}

// BrowserConfig defines the live browser host.
type BrowserConfig struct {
	Timeout   string `yaml:"timeout"` // Go duration, "45s"
	Bin       string `yaml:"bin"`
	NoSandbox bool   `yaml:"noSandbox"`
}

// TimeoutDuration parses Timeout. Empty returns zero.
func (b BrowserConfig) TimeoutDuration() (time.Duration, error) {
	if b.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(b.Timeout)
	if err != nil {
		return 0, fmt.Errorf("%w: browser.timeout: %v", ErrInvalidField, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%w: browser.timeout: must be positive, got %s", ErrInvalidField, d)
	}
	return d, nil
}

// Validate checks required fields and length limits.
// Called automatically by LoadConfig, but available for callers
// who construct Config manually.
func (c *Config) Validate() error {
	if err := validateFieldLength("registry.path", c.Registry.Path, MaxPathLength); err != nil {
		return err
	}

	for i, g := range c.Page.Globals {
		if err := validateFieldLength(fmt.Sprintf("page.globals[%d]", i), g, MaxSymbolLength); err != nil {
			return err
		}
	}
	for i, m := range c.Page.Members {
		field := fmt.Sprintf("page.members[%d]", i)
		if m.Object == "" || m.Member == "" {
			return fmt.Errorf("%w: %s: object and member", ErrFieldRequired, field)
		}
		if err := validateFieldLength(field+".object", m.Object, MaxSymbolLength); err != nil {
			return err
		}
		if err := validateFieldLength(field+".member", m.Member, MaxSymbolLength); err != nil {
			return err
		}
	}

	if len(c.Loads) > MaxLoads {
		return fmt.Errorf("%w: loads (%d entries, max %d)", ErrFieldTooLong, len(c.Loads), MaxLoads)
	}
	for i, l := range c.Loads {
		if err := l.validate(fmt.Sprintf("loads[%d]", i)); err != nil {
			return err
		}
	}

	if err := validateFieldLength("browser.bin", c.Browser.Bin, MaxPathLength); err != nil {
		return err
	}
	if _, err := c.Browser.TimeoutDuration(); err != nil {
		return err
	}

	return nil
}

func (l AssetLoad) validate(field string) error {
	if strings.TrimSpace(l.Name) == "" {
		return fmt.Errorf("%w: %s.name", ErrFieldRequired, field)
	}
	if l.Inline != "" && l.InlineFile != "" {
		return fmt.Errorf("%w: %s: inline and inlineFile are mutually exclusive", ErrInvalidField, field)
	}

	checks := []struct {
		name  string
		value string
		max   int
	}{
		{"name", l.Name, MaxNameLength},
		{"src", l.Src, MaxURLLength},
		{"method", l.Method, MaxMethodLength},
		{"exists", l.Exists, MaxSymbolLength},
		{"dependentVar", l.DependentVar, MaxSymbolLength},
		{"inline", l.Inline, MaxInlineLength},
		{"inlineFile", l.InlineFile, MaxPathLength},
	}
	for _, c := range checks {
		if err := validateFieldLength(field+"."+c.name, c.value, c.max); err != nil {
			return err
		}
	}
	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns a configuration with nothing preloaded.
func DefaultConfig() *Config {
	return &Config{}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
//
// Relative registry.path and loads[].inlineFile values are resolved against
// the config file's directory.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := yamlutil.ReadFileStrict(configPath, &cfg); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		if errors.Is(err, yamlutil.ErrReadFile) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cfg.resolvePaths(filepath.Dir(configPath))
	return &cfg, nil
}

// resolvePaths anchors relative file references at dir.
func (c *Config) resolvePaths(dir string) {
	if c.Registry.Path != "" && !filepath.IsAbs(c.Registry.Path) {
		c.Registry.Path = filepath.Join(dir, c.Registry.Path)
	}
	for i := range c.Loads {
		if p := c.Loads[i].InlineFile; p != "" && !filepath.IsAbs(p) {
			c.Loads[i].InlineFile = filepath.Join(dir, p)
		}
	}
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/iinject/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "iinject", name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
