package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate clears env overrides and moves into an empty dir so no .env is picked up.
func isolate(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"COUNTRYDECK_ENDPOINT", "COUNTRYDECK_TIMEOUT", "COUNTRYDECK_LOG_FILE",
		"COUNTRYDECK_LOG_LEVEL", "OTEL_EXPORTER_OTLP_ENDPOINT", "OTEL_SERVICE_NAME",
	} {
		t.Setenv(k, "")
	}
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultEndpoint, cfg.Endpoint)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "countrydeck", cfg.Tracing.ServiceName)
	assert.Empty(t, cfg.Tracing.Endpoint)
	require.NoError(t, cfg.Validate())
}

func TestLoad_ParsesYAML(t *testing.T) {
	isolate(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	body := `endpoint: http://localhost:4000/graphql
timeout: 3s
logging:
  level: debug
  file: /tmp/cd.log
tracing:
  endpoint: localhost:4318
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:4000/graphql", cfg.Endpoint)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "/tmp/cd.log", cfg.Logging.File)
	assert.Equal(t, "localhost:4318", cfg.Tracing.Endpoint)
	assert.Equal(t, "countrydeck", cfg.Tracing.ServiceName, "unset keys keep defaults")

	d, err := cfg.GetTimeout()
	require.NoError(t, err)
	assert.Equal(t, 3*time.Second, d)
}

func TestLoad_InvalidYAML(t *testing.T) {
	isolate(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("endpoint: [unterminated"), 0644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	isolate(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("endpoint: http://file.example/\n"), 0644))
	t.Setenv("COUNTRYDECK_ENDPOINT", "http://env.example/")
	t.Setenv("OTEL_SERVICE_NAME", "svc")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://env.example/", cfg.Endpoint)
	assert.Equal(t, "svc", cfg.Tracing.ServiceName)
}

func TestLoad_DotEnv(t *testing.T) {
	isolate(t)
	require.NoError(t, os.WriteFile(".env", []byte("COUNTRYDECK_LOG_LEVEL=warn\n"), 0644))
	// t.Setenv registered an empty value; godotenv does not override set vars,
	// so unset it for this case and restore afterwards.
	require.NoError(t, os.Unsetenv("COUNTRYDECK_LOG_LEVEL"))
	t.Cleanup(func() { os.Unsetenv("COUNTRYDECK_LOG_LEVEL") })

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestResolvePath(t *testing.T) {
	t.Setenv(PathEnv, "")

	p, err := ResolvePath("/explicit.yaml")
	require.NoError(t, err)
	assert.Equal(t, "/explicit.yaml", p)

	t.Setenv(PathEnv, "/from-env.yaml")
	p, err = ResolvePath("")
	require.NoError(t, err)
	assert.Equal(t, "/from-env.yaml", p)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"empty endpoint", func(c *Config) { c.Endpoint = "" }, "endpoint is required"},
		{"non-http endpoint", func(c *Config) { c.Endpoint = "ftp://x/" }, "must be an http(s) URL"},
		{"no host", func(c *Config) { c.Endpoint = "http://" }, "must be an http(s) URL"},
		{"bad timeout", func(c *Config) { c.Timeout = "soon" }, "invalid timeout"},
		{"zero timeout", func(c *Config) { c.Timeout = "0s" }, "timeout must be positive"},
		{"empty timeout uses default", func(c *Config) { c.Timeout = "" }, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
