// Package config handles loading and parsing the application's configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Environment variables that override values from the config file.
const (
	EnvHost     = "BOOKSHELF_HOST"
	EnvPort     = "BOOKSHELF_PORT"
	EnvDataDir  = "BOOKSHELF_DATA_DIR"
	EnvDataFile = "BOOKSHELF_DATA_FILE"
	EnvName     = "BOOKSHELF_ENV"
	EnvLogLevel = "BOOKSHELF_LOG_LEVEL"
)

// Config holds all configuration for the application.
type Config struct {
	Host            string   `toml:"host"`
	Port            int      `toml:"port"`
	DataDir         string   `toml:"data_dir"`  // Directory holding the data file
	DataFile        string   `toml:"data_file"` // Name of the JSON file with the collection
	Environment     string   `toml:"environment"`
	LogLevel        string   `toml:"log_level"`
	ShutdownTimeout Duration `toml:"shutdown_timeout"`
}

// Duration is a time.Duration that decodes from strings such as "10s".
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// New returns a new Config with default values.
func New() *Config {
	return &Config{
		Host:            "localhost",
		Port:            3000,
		DataDir:         ".",
		DataFile:        "books.json",
		Environment:     "development",
		LogLevel:        "info",
		ShutdownTimeout: Duration{10 * time.Second},
	}
}

// Load reads a configuration file from the given path and populates the Config struct.
func (c *Config) Load(path string) error {
	_, err := toml.DecodeFile(path, c)
	return err
}

// ApplyEnv loads a .env file from the working directory when present and then
// overrides fields with any BOOKSHELF_* variables that are set.
func (c *Config) ApplyEnv(envFiles ...string) error {
	if err := godotenv.Load(envFiles...); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("load env file: %w", err)
	}

	if v := os.Getenv(EnvHost); v != "" {
		c.Host = v
	}
	if v := os.Getenv(EnvPort); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s must be a number: %w", EnvPort, err)
		}
		c.Port = port
	}
	if v := os.Getenv(EnvDataDir); v != "" {
		c.DataDir = v
	}
	if v := os.Getenv(EnvDataFile); v != "" {
		c.DataFile = v
	}
	if v := os.Getenv(EnvName); v != "" {
		c.Environment = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	return nil
}

// Validate checks that the configuration can be used to start the server.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %d", c.Port)
	}
	if c.DataFile == "" {
		return fmt.Errorf("data_file must not be empty")
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	if c.ShutdownTimeout.Duration <= 0 {
		return fmt.Errorf("shutdown_timeout must be positive")
	}
	return nil
}

// Addr returns the host:port the HTTP server listens on.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// DataPath returns the full path of the data file.
func (c *Config) DataPath() string {
	return filepath.Join(c.DataDir, c.DataFile)
}

// IsProduction reports whether the server runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
