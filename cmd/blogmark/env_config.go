package main

import (
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/alnah/go-blogmark/internal/config"
)

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string        // BLOGMARK_CONFIG: config file name or path
	Style      string        // BLOGMARK_STYLE: code highlighting style
	PageStyle  string        // BLOGMARK_PAGE_STYLE: page stylesheet name or path
	Timeout    time.Duration // BLOGMARK_TIMEOUT: per-post timeout
	InputDir   string        // BLOGMARK_INPUT_DIR: default input directory
	OutputDir  string        // BLOGMARK_OUTPUT_DIR: default output directory
	TimeZone   string        // BLOGMARK_TIMEZONE: zone for dates without offset
	Workers    int           // BLOGMARK_WORKERS: parallel workers
}

const envPrefix = "BLOGMARK_"

// knownEnvVars lists valid BLOGMARK_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"BLOGMARK_CONFIG":     true,
	"BLOGMARK_STYLE":      true,
	"BLOGMARK_PAGE_STYLE": true,
	"BLOGMARK_TIMEOUT":    true,
	"BLOGMARK_INPUT_DIR":  true,
	"BLOGMARK_OUTPUT_DIR": true,
	"BLOGMARK_TIMEZONE":   true,
	"BLOGMARK_WORKERS":    true,
}

// loadEnvConfig reads configuration from environment variables.
// Malformed numbers and durations are logged and ignored.
func loadEnvConfig(getenv func(string) string, logger *slog.Logger) *envConfig {
	cfg := &envConfig{
		ConfigPath: getenv("BLOGMARK_CONFIG"),
		Style:      getenv("BLOGMARK_STYLE"),
		PageStyle:  getenv("BLOGMARK_PAGE_STYLE"),
		InputDir:   getenv("BLOGMARK_INPUT_DIR"),
		OutputDir:  getenv("BLOGMARK_OUTPUT_DIR"),
		TimeZone:   getenv("BLOGMARK_TIMEZONE"),
	}

	if timeout := getenv("BLOGMARK_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil && d > 0 {
			cfg.Timeout = d
		} else {
			logger.Warn("ignoring invalid environment variable", "name", "BLOGMARK_TIMEOUT", "value", timeout)
		}
	}

	if workers := getenv("BLOGMARK_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		} else {
			logger.Warn("ignoring invalid environment variable", "name", "BLOGMARK_WORKERS", "value", workers)
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized BLOGMARK_* variables.
// Helps catch typos like BLOGMARK_OUTPUT instead of BLOGMARK_OUTPUT_DIR.
func warnUnknownEnvVars(environ []string, logger *slog.Logger) {
	for _, env := range environ {
		if !strings.HasPrefix(env, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(env, "=")
		if !knownEnvVars[name] {
			logger.Warn("unknown environment variable (typo?)", "name", name)
		}
	}
}

// applyEnvConfig applies environment variable values to config.
// Set variables override the config file; CLI flags are applied
// afterwards by mergeFlags, giving: flags > env > config file > defaults.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Style != "" {
		cfg.Code.Style = env.Style
	}
	if env.PageStyle != "" {
		cfg.Page.Style = env.PageStyle
	}
	if env.Timeout > 0 {
		cfg.Build.Timeout = env.Timeout.String()
	}
	if env.InputDir != "" {
		cfg.Input.DefaultDir = env.InputDir
	}
	if env.OutputDir != "" {
		cfg.Output.DefaultDir = env.OutputDir
	}
	if env.TimeZone != "" {
		cfg.Dates.TimeZone = env.TimeZone
	}
	if env.Workers > 0 {
		cfg.Build.Workers = env.Workers
	}
}
