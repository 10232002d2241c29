package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Storage.Backend != BackendJSON {
		t.Errorf("expected backend json, got %s", cfg.Storage.Backend)
	}
	if !strings.HasSuffix(cfg.Storage.Dir, filepath.Join("weekgrid", "weeks")) {
		t.Errorf("unexpected default dir %s", cfg.Storage.Dir)
	}
	if cfg.UI.Theme != "mocha" {
		t.Errorf("expected theme mocha, got %s", cfg.UI.Theme)
	}
}

func TestLoadFrom_FileNotExists(t *testing.T) {
	cfg, err := LoadFrom("/nonexistent/path/config.toml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Storage.Backend != BackendJSON {
		t.Errorf("expected default backend, got %s", cfg.Storage.Backend)
	}
	if cfg.Storage.DBPath != filepath.Join(cfg.Storage.Dir, "weekgrid.db") {
		t.Errorf("expected db path under storage dir, got %s", cfg.Storage.DBPath)
	}
}

func TestLoadFrom_ValidFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	content := `
[storage]
dir = "/tmp/weeks"
backend = "SQLite"
db_path = "/tmp/test.db"

[ui]
theme = "latte"
`
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Storage.Dir != "/tmp/weeks" {
		t.Errorf("expected dir /tmp/weeks, got %s", cfg.Storage.Dir)
	}
	if cfg.Storage.Backend != BackendSQLite {
		t.Errorf("expected backend sqlite, got %s", cfg.Storage.Backend)
	}
	if cfg.Storage.DBPath != "/tmp/test.db" {
		t.Errorf("expected db_path /tmp/test.db, got %s", cfg.Storage.DBPath)
	}
	if cfg.UI.Theme != "latte" {
		t.Errorf("expected theme latte, got %s", cfg.UI.Theme)
	}
}

func TestLoadFrom_EnvOverrides(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	content := `
[storage]
dir = "/tmp/weeks"
`
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	t.Setenv("WEEKGRID_STORAGE_DIR", "/tmp/other-weeks")
	t.Setenv("WEEKGRID_UI_THEME", "latte")
	t.Setenv("WEEKGRID_LOG_LEVEL", "debug")

	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Storage.Dir != "/tmp/other-weeks" {
		t.Errorf("expected env dir, got %s", cfg.Storage.Dir)
	}
	if cfg.UI.Theme != "latte" {
		t.Errorf("expected env theme, got %s", cfg.UI.Theme)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("expected env log level, got %s", cfg.Log.Level)
	}
}

func TestLoadFrom_InvalidFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(configPath, []byte("[storage\ndir ="), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	if _, err := LoadFrom(configPath); err == nil {
		t.Error("expected error for malformed TOML")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{name: "defaults", modify: func(*Config) {}, wantErr: false},
		{name: "empty dir", modify: func(c *Config) { c.Storage.Dir = "" }, wantErr: true},
		{name: "unknown backend", modify: func(c *Config) { c.Storage.Backend = "csv" }, wantErr: true},
		{
			name: "sqlite without db path",
			modify: func(c *Config) {
				c.Storage.Backend = BackendSQLite
				c.Storage.DBPath = ""
			},
			wantErr: true,
		},
		{
			name: "sqlite with db path",
			modify: func(c *Config) {
				c.Storage.Backend = BackendSQLite
				c.Storage.DBPath = "/tmp/x.db"
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSaveTo_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	cfg := Default()
	cfg.Storage.Dir = "/tmp/weeks"
	cfg.UI.Theme = "latte"

	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if loaded.Storage.Dir != "/tmp/weeks" || loaded.UI.Theme != "latte" {
		t.Errorf("round trip mismatch: %+v", loaded)
	}
}
