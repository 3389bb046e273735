// Package config_test contains the unit tests for the config package.
package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Load(t *testing.T) {
	// Create a temporary directory for our test config files
	tempDir := t.TempDir()

	// --- Test Case 1: Valid configuration file ---
	validToml := `
host = "127.0.0.1"
port = 9000
data_dir = "/var/lib/bookshelf"
data_file = "catalog.json"
log_level = "debug"
shutdown_timeout = "3s"
`
	validPath := filepath.Join(tempDir, "valid.toml")
	require.NoError(t, os.WriteFile(validPath, []byte(validToml), 0644))

	cfg := New()
	require.NoError(t, cfg.Load(validPath))

	assert.Equal(t, "127.0.0.1", cfg.Host)
	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, "/var/lib/bookshelf/catalog.json", cfg.DataPath())
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout.Duration)
	assert.Equal(t, "development", cfg.Environment, "unset keys keep their defaults")
	assert.NoError(t, cfg.Validate())

	// --- Test Case 2: File does not exist ---
	cfg2 := New()
	assert.Error(t, cfg2.Load(filepath.Join(tempDir, "nonexistent.toml")))

	// --- Test Case 3: Invalid TOML format ---
	invalidToml := `host = 127.0.0.1` // Invalid: host should be a string
	invalidPath := filepath.Join(tempDir, "invalid.toml")
	require.NoError(t, os.WriteFile(invalidPath, []byte(invalidToml), 0644))

	cfg3 := New()
	assert.Error(t, cfg3.Load(invalidPath))

	// --- Test Case 4: Invalid duration ---
	badDuration := filepath.Join(tempDir, "duration.toml")
	require.NoError(t, os.WriteFile(badDuration, []byte(`shutdown_timeout = "soon"`), 0644))
	assert.Error(t, New().Load(badDuration))
}

func TestConfig_Defaults(t *testing.T) {
	cfg := New()
	assert.Equal(t, "localhost:3000", cfg.Addr())
	assert.Equal(t, "books.json", cfg.DataPath())
	assert.False(t, cfg.IsProduction())
	assert.NoError(t, cfg.Validate())
}

func TestConfig_ApplyEnv(t *testing.T) {
	t.Setenv(EnvPort, "8181")
	t.Setenv(EnvDataFile, "env.json")
	t.Setenv(EnvName, "production")

	cfg := New()
	require.NoError(t, cfg.ApplyEnv(filepath.Join(t.TempDir(), "missing.env")))

	assert.Equal(t, 8181, cfg.Port)
	assert.Equal(t, "env.json", cfg.DataFile)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "localhost", cfg.Host)
}

func TestConfig_ApplyEnvFile(t *testing.T) {
	envPath := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(envPath, []byte("BOOKSHELF_LOG_LEVEL=warn\n"), 0644))
	// godotenv never overrides variables that are already set; register the
	// key with t.Setenv first so it is restored after the test.
	t.Setenv(EnvLogLevel, "")
	require.NoError(t, os.Unsetenv(EnvLogLevel))

	cfg := New()
	require.NoError(t, cfg.ApplyEnv(envPath))
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestConfig_ApplyEnvInvalidPort(t *testing.T) {
	t.Setenv(EnvPort, "http")
	assert.Error(t, New().ApplyEnv(filepath.Join(t.TempDir(), "missing.env")))
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{name: "port too low", modify: func(c *Config) { c.Port = 0 }},
		{name: "port too high", modify: func(c *Config) { c.Port = 70000 }},
		{name: "empty data file", modify: func(c *Config) { c.DataFile = "" }},
		{name: "unknown log level", modify: func(c *Config) { c.LogLevel = "loud" }},
		{name: "zero shutdown timeout", modify: func(c *Config) { c.ShutdownTimeout = Duration{} }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := New()
			tc.modify(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
