// Package config loads countrydeck settings from a YAML file, a .env file
// and environment variables, in that order of increasing precedence.
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	// PathEnv overrides the config file location.
	PathEnv = "COUNTRYDECK_CONFIG"
	// DefaultPath is the config file location relative to the user config dir.
	DefaultPath = "countrydeck/config.yaml"
	// DefaultEndpoint is the public countries GraphQL API.
	DefaultEndpoint = "https://countries.trevorblades.com/"
	// DefaultTimeout bounds a single countries fetch.
	DefaultTimeout = 10 * time.Second
)

// Config holds all countrydeck configuration.
type Config struct {
	Endpoint  string        `yaml:"endpoint"`
	Timeout   string        `yaml:"timeout"`
	UserAgent string        `yaml:"user_agent"`
	Logging   LoggingConfig `yaml:"logging"`
	Tracing   TracingConfig `yaml:"tracing"`
}

// LoggingConfig configures the file logger.
type LoggingConfig struct {
	File  string `yaml:"file"`
	Level string `yaml:"level"` // debug, info, warn, error
}

// TracingConfig configures OTLP trace export. An empty endpoint disables it.
type TracingConfig struct {
	Endpoint    string `yaml:"endpoint"`
	ServiceName string `yaml:"service_name"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	logFile := "countrydeck.log"
	if dir, err := os.UserCacheDir(); err == nil {
		logFile = filepath.Join(dir, "countrydeck", "countrydeck.log")
	}
	return &Config{
		Endpoint:  DefaultEndpoint,
		Timeout:   DefaultTimeout.String(),
		UserAgent: "countrydeck",
		Logging: LoggingConfig{
			File:  logFile,
			Level: "info",
		},
		Tracing: TracingConfig{
			ServiceName: "countrydeck",
		},
	}
}

// ResolvePath returns the config file path: explicit wins, then
// COUNTRYDECK_CONFIG, then the user config dir.
func ResolvePath(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	if p := os.Getenv(PathEnv); p != "" {
		return p, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, DefaultPath), nil
}

// Load reads the YAML file at path (a missing file yields defaults), loads
// .env from the working directory if present and applies env overrides.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	case os.IsNotExist(err):
	default:
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	// .env never overrides variables already set in the process environment.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("COUNTRYDECK_ENDPOINT"); v != "" {
		c.Endpoint = v
	}
	if v := os.Getenv("COUNTRYDECK_TIMEOUT"); v != "" {
		c.Timeout = v
	}
	if v := os.Getenv("COUNTRYDECK_LOG_FILE"); v != "" {
		c.Logging.File = v
	}
	if v := os.Getenv("COUNTRYDECK_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"); v != "" {
		c.Tracing.Endpoint = v
	}
	if v := os.Getenv("OTEL_SERVICE_NAME"); v != "" {
		c.Tracing.ServiceName = v
	}
}

// GetTimeout parses Timeout, falling back to DefaultTimeout when empty.
func (c *Config) GetTimeout() (time.Duration, error) {
	if c.Timeout == "" {
		return DefaultTimeout, nil
	}
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 0, fmt.Errorf("invalid timeout %q: %w", c.Timeout, err)
	}
	return d, nil
}

// Validate checks the configuration for values the client cannot work with.
func (c *Config) Validate() error {
	if c.Endpoint == "" {
		return fmt.Errorf("endpoint is required")
	}
	u, err := url.Parse(c.Endpoint)
	if err != nil {
		return fmt.Errorf("invalid endpoint %q: %w", c.Endpoint, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid endpoint %q: must be an http(s) URL", c.Endpoint)
	}
	d, err := c.GetTimeout()
	if err != nil {
		return err
	}
	if d <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", d)
	}
	return nil
}
