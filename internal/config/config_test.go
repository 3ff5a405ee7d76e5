package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"taskring/internal/tasklist"
)

func TestLoadOrCreateWritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	cfg, err := LoadOrCreate(path)
	if err != nil {
		t.Fatalf("LoadOrCreate() error = %v", err)
	}
	if !cfg.Seed || cfg.Title != DefaultTitle || cfg.DBPath != "" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("config not written: %v", err)
	}
	if !strings.Contains(string(data), "default_filter") {
		t.Fatalf("written config missing default_filter:\n%s", data)
	}

	again, err := LoadOrCreate(path)
	if err != nil {
		t.Fatalf("reload error = %v", err)
	}
	if again.Keys != cfg.Keys {
		t.Fatalf("round-tripped keymap differs: %+v vs %+v", again.Keys, cfg.Keys)
	}
}

func TestLoadOrCreateOverridesAndNormalizes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	body := `
db_path = "tasks.db"
default_filter = "Done"
seed = false
title = ""

[keys]
quit = "x"

[logging]
level = "debug"
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := LoadOrCreate(path)
	if err != nil {
		t.Fatalf("LoadOrCreate() error = %v", err)
	}
	if cfg.DBPath != "tasks.db" || cfg.Seed {
		t.Fatalf("file values not applied: %+v", cfg)
	}
	if cfg.Filter() != tasklist.Done {
		t.Fatalf("Filter() = %v, want Done", cfg.Filter())
	}
	if cfg.Title != DefaultTitle {
		t.Fatalf("blank title should fall back, got %q", cfg.Title)
	}
	if cfg.Keys.Quit != "x" || cfg.Keys.Toggle != " " {
		t.Fatalf("keymap not merged: %+v", cfg.Keys)
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("logging level = %q", cfg.Logging.Level)
	}
}

func TestLoadOrCreateRejectsUnknownFilter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`default_filter = "later"`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadOrCreate(path); err == nil {
		t.Fatalf("expected validation error")
	}
}

func TestResolveConfigPathHonoursEnv(t *testing.T) {
	t.Setenv("TASKRING_CONFIG", "/tmp/custom.toml")
	if got := ResolveConfigPath(); got != "/tmp/custom.toml" {
		t.Fatalf("ResolveConfigPath() = %q", got)
	}
}
