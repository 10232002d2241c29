// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Storage backends.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// Config holds the application configuration.
type Config struct {
	Storage StorageConfig `toml:"storage"`
	UI      UIConfig      `toml:"ui"`
	Log     LogConfig     `toml:"log"`
}

// UIConfig holds TUI settings.
type UIConfig struct {
	Theme string `toml:"theme"` // "mocha", "latte"
}

// StorageConfig holds week storage settings.
type StorageConfig struct {
	Dir     string `toml:"dir"`     // One JSON file per week lives here
	Backend string `toml:"backend"` // "json" or "sqlite"
	DBPath  string `toml:"db_path"` // SQLite database, defaults to <dir>/weekgrid.db
}

// LogConfig holds logging settings for non-interactive commands.
type LogConfig struct {
	Level string `toml:"level"` // logrus level name
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Storage: StorageConfig{
			Dir:     defaultDataDir(),
			Backend: BackendJSON,
		},
		UI: UIConfig{
			Theme: "mocha",
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// defaultDataDir returns the default storage directory.
func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "weeks"
	}
	return filepath.Join(home, ".local", "share", "weekgrid", "weeks")
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "weekgrid", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	applyEnvOverrides(cfg)

	cfg.Storage.Backend = strings.ToLower(cfg.Storage.Backend)
	cfg.Storage.Dir = expandPath(cfg.Storage.Dir)
	cfg.Storage.DBPath = expandPath(cfg.Storage.DBPath)
	if cfg.Storage.DBPath == "" {
		cfg.Storage.DBPath = filepath.Join(cfg.Storage.Dir, "weekgrid.db")
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads config from a file if it exists.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // File doesn't exist, use defaults
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file config.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("WEEKGRID_STORAGE_DIR"); v != "" {
		cfg.Storage.Dir = v
	}
	if v := os.Getenv("WEEKGRID_STORAGE_BACKEND"); v != "" {
		cfg.Storage.Backend = v
	}
	if v := os.Getenv("WEEKGRID_DB_PATH"); v != "" {
		cfg.Storage.DBPath = v
	}
	if v := os.Getenv("WEEKGRID_UI_THEME"); v != "" {
		cfg.UI.Theme = v
	}
	if v := os.Getenv("WEEKGRID_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Storage.Dir == "" {
		return errors.New("storage dir must be set")
	}
	switch c.Storage.Backend {
	case BackendJSON:
	case BackendSQLite:
		if c.Storage.DBPath == "" {
			return errors.New("db_path must be set for the sqlite backend")
		}
	default:
		return fmt.Errorf("invalid storage backend: %q (want %q or %q)", c.Storage.Backend, BackendJSON, BackendSQLite)
	}
	return nil
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveTo(DefaultConfigPath())
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
