// Package config loads and validates the YAML configuration file.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alnah/go-licensedoc/internal/dateutil"
	"github.com/alnah/go-licensedoc/internal/fileutil"
	"github.com/alnah/go-licensedoc/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Field length limits.
const (
	MaxURLLength     = 2048 // Browser limit
	MaxBranchLength  = 255  // git ref name limit on most hosts
	MaxCommandLength = 4096 // PATH_MAX
	MaxLevelLength   = 10
	MaxDateLength    = 100
	MaxTitleLength   = 200
	MaxStyleLength   = 4096 // PATH_MAX
)

// Repository layouts understood by the fetcher.
const (
	LayoutFirstSegment = "first-segment"
	LayoutOwnerRepo    = "owner-repo"
)

// appDirName is the directory under the user config dir searched by name.
const appDirName = "go-licensedoc"

// Config holds all configuration for license document generation.
type Config struct {
	Log    LogConfig    `yaml:"log"`
	Fetch  FetchConfig  `yaml:"fetch"`
	Cargo  CargoConfig  `yaml:"cargo"`
	Output OutputConfig `yaml:"output"`
}

// LogConfig defines logging options.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, warning, error (empty = info)
}

// FetchConfig defines how license files are fetched from repositories.
type FetchConfig struct {
	BaseURL    string        `yaml:"baseURL"`    // Raw content host (empty = https://raw.githubusercontent.com)
	Branch     string        `yaml:"branch"`     // Branch name (empty = main)
	RepoLayout string        `yaml:"repoLayout"` // "first-segment" or "owner-repo"
	Timeout    time.Duration `yaml:"timeout"`    // 0 = no client timeout
}

// CargoConfig defines how dependencies are enumerated from a Cargo manifest.
type CargoConfig struct {
	Command        string `yaml:"command"` // Binary used for `metadata` (empty = cargo)
	AvoidDevDeps   bool   `yaml:"avoidDevDeps"`
	AvoidBuildDeps bool   `yaml:"avoidBuildDeps"`
}

// OutputConfig defines output options.
type OutputConfig struct {
	Document bool   `yaml:"document"` // Wrap the HTML fragment in a full HTML5 document
	Title    string `yaml:"title"`    // Document title (empty = "Licenses")
	Date     string `yaml:"date"`     // "Generated" stamp: literal, "auto" or "auto:FORMAT" (empty = none)
	Style    string `yaml:"style"`    // Built-in style name or CSS file path (empty = unstyled)
}

// Validate checks field lengths and enumerated values.
// Called automatically by LoadConfig, but available for callers
// who construct Config manually.
func (c *Config) Validate() error {
	if err := validateFieldLength("log.level", c.Log.Level, MaxLevelLength); err != nil {
		return err
	}
	if c.Log.Level != "" {
		switch strings.ToLower(c.Log.Level) {
		case "debug", "info", "warn", "warning", "error":
		default:
			return fmt.Errorf("%w: log.level %q (must be debug, info, warn, warning, or error)", ErrInvalidValue, c.Log.Level)
		}
	}

	if err := validateFieldLength("fetch.baseURL", c.Fetch.BaseURL, MaxURLLength); err != nil {
		return err
	}
	if c.Fetch.BaseURL != "" {
		u, err := url.Parse(c.Fetch.BaseURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("%w: fetch.baseURL %q (must be an absolute http or https URL)", ErrInvalidValue, c.Fetch.BaseURL)
		}
	}
	if err := validateFieldLength("fetch.branch", c.Fetch.Branch, MaxBranchLength); err != nil {
		return err
	}
	switch c.Fetch.RepoLayout {
	case "", LayoutFirstSegment, LayoutOwnerRepo:
	default:
		return fmt.Errorf("%w: fetch.repoLayout %q (must be %s or %s)", ErrInvalidValue, c.Fetch.RepoLayout, LayoutFirstSegment, LayoutOwnerRepo)
	}
	if c.Fetch.Timeout < 0 {
		return fmt.Errorf("%w: fetch.timeout must not be negative, got %s", ErrInvalidValue, c.Fetch.Timeout)
	}

	if err := validateFieldLength("cargo.command", c.Cargo.Command, MaxCommandLength); err != nil {
		return err
	}

	if err := validateFieldLength("output.title", c.Output.Title, MaxTitleLength); err != nil {
		return err
	}
	if err := validateFieldLength("output.date", c.Output.Date, MaxDateLength); err != nil {
		return err
	}
	if err := validateFieldLength("output.style", c.Output.Style, MaxStyleLength); err != nil {
		return err
	}
	if err := dateutil.Validate(c.Output.Date); err != nil {
		return fmt.Errorf("%w: output.date: %w", ErrInvalidValue, err)
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

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Log:    LogConfig{Level: "info"},
		Fetch:  FetchConfig{RepoLayout: LayoutFirstSegment},
		Cargo:  CargoConfig{Command: "cargo"},
		Output: OutputConfig{Document: false},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
// Fields absent from the file keep their DefaultConfig values.
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

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SearchPaths lists the locations tried for a config name, in order:
// the current directory, then ~/.config/go-licensedoc/, each with .yaml and .yml.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, appDirName, name+ext))
		}
	}
	return paths
}

// resolveConfigPath returns the first existing entry of SearchPaths.
func resolveConfigPath(name string) (string, error) {
	triedPaths := SearchPaths(name)
	for _, p := range triedPaths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
