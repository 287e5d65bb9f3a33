package main

import (
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/alnah/go-licensedoc/internal/config"
)

const envPrefix = "LICENSEDOC_"

// envConfig holds configuration from environment variables.
type envConfig struct {
	ConfigPath string // LICENSEDOC_CONFIG: config file name or path
	LogLevel   string // LICENSEDOC_LOG: log level
	Strict     bool   // LICENSEDOC_STRICT: exit non-zero on failure
}

// knownEnvVars lists valid LICENSEDOC_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"LICENSEDOC_CONFIG": true,
	"LICENSEDOC_LOG":    true,
	"LICENSEDOC_STRICT": true,
}

// loadEnvConfig reads configuration from environment variables.
// An unparsable LICENSEDOC_STRICT is ignored.
func loadEnvConfig(getenv func(string) string) *envConfig {
	cfg := &envConfig{
		ConfigPath: getenv("LICENSEDOC_CONFIG"),
		LogLevel:   getenv("LICENSEDOC_LOG"),
	}

	if strict := getenv("LICENSEDOC_STRICT"); strict != "" {
		if b, err := strconv.ParseBool(strict); err == nil {
			cfg.Strict = b
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized LICENSEDOC_* variables.
func warnUnknownEnvVars(environ []string, logger *zap.Logger) {
	for _, env := range environ {
		if !strings.HasPrefix(env, envPrefix) {
			continue
		}
		name := strings.SplitN(env, "=", 2)[0]
		if !knownEnvVars[name] {
			logger.Warn("unknown environment variable (typo?)", zap.String("name", name))
		}
	}
}

// applyEnvConfig applies environment values on top of the loaded config.
// Priority: CLI flags > env vars > config file > defaults
// (CLI flags are applied later via mergeFlags)
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.LogLevel != "" {
		cfg.Log.Level = env.LogLevel
	}
}
