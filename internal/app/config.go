package app

import (
	"fmt"
	"strings"
)

// Environment variables read by ConfigFromEnv.
const (
	EnvLogLevel  = "CCOPTS_LOG_LEVEL"
	EnvLogFormat = "CCOPTS_LOG_FORMAT"
)

// Defaults keep both binaries silent on stderr.
const (
	DefaultLogLevel  = "off"
	DefaultLogFormat = "text"
)

// Config holds the ambient settings of a ccopts binary. Positional arguments
// are never part of it: every argument is an opaque token.
type Config struct {
	LogLevel  string // off, debug, info, warn, error
	LogFormat string // text, json
}

// NewConfig normalizes and validates cfg. Empty fields take their defaults.
func NewConfig(cfg Config) (*Config, error) {
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	cfg.LogFormat = strings.ToLower(strings.TrimSpace(cfg.LogFormat))

	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = DefaultLogFormat
	}

	switch cfg.LogLevel {
	case "off", "debug", "info", "warn", "error":
		// valid
	default:
		return nil, fmt.Errorf("invalid log level %q: must be 'off', 'debug', 'info', 'warn', or 'error'", cfg.LogLevel)
	}

	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("invalid log format %q: must be 'text' or 'json'", cfg.LogFormat)
	}

	return &cfg, nil
}

// ConfigFromEnv builds a Config from the environment using lookup (usually
// os.LookupEnv). Invalid values fall back to the defaults rather than failing,
// since a helper's stdout and exit status must not depend on logging setup.
func ConfigFromEnv(lookup func(string) (string, bool)) *Config {
	var raw Config
	if v, ok := lookup(EnvLogLevel); ok {
		raw.LogLevel = v
	}
	if v, ok := lookup(EnvLogFormat); ok {
		raw.LogFormat = v
	}

	cfg, err := NewConfig(raw)
	if err != nil {
		return &Config{LogLevel: DefaultLogLevel, LogFormat: DefaultLogFormat}
	}
	return cfg
}
