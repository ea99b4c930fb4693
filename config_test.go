package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()
	if config.XDim != 2 || config.YDim != 3 || config.ZDim != 19 {
		t.Fatalf("unexpected default board shape %dx%dx%d", config.XDim, config.YDim, config.ZDim)
	}
	if config.Workers != 0 {
		t.Fatalf("expected workers default 0 (one per CPU), got %d", config.Workers)
	}
	if config.LogLevel != "info" {
		t.Fatalf("expected log level info, got %q", config.LogLevel)
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chomp.yaml")
	data := []byte("x_dim: 1\ny_dim: 1\nz_dim: 2\nworkers: 4\nlog_level: debug\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if config.XDim != 1 || config.YDim != 1 || config.ZDim != 2 {
		t.Fatalf("file values not applied: %dx%dx%d", config.XDim, config.YDim, config.ZDim)
	}
	if config.Workers != 4 || config.LogLevel != "debug" {
		t.Fatalf("file values not applied: workers=%d level=%q", config.Workers, config.LogLevel)
	}
}

func TestLoadConfigPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chomp.yaml")
	if err := os.WriteFile(path, []byte("z_dim: 5\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if config.ZDim != 5 {
		t.Fatalf("z_dim override lost: %d", config.ZDim)
	}
	if config.XDim != 2 || config.YDim != 3 || config.LogLevel != "info" {
		t.Fatalf("defaults clobbered: %+v", config)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("CHOMP_X_DIM", "3")
	t.Setenv("CHOMP_Z_DIM", "7")
	t.Setenv("CHOMP_WORKERS", "2")
	t.Setenv("CHOMP_LOG_LEVEL", "warn")

	config, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if config.XDim != 3 || config.YDim != 3 || config.ZDim != 7 {
		t.Fatalf("env overrides not applied: %dx%dx%d", config.XDim, config.YDim, config.ZDim)
	}
	if config.Workers != 2 || config.LogLevel != "warn" {
		t.Fatalf("env overrides not applied: workers=%d level=%q", config.Workers, config.LogLevel)
	}
}

func TestEnvOverrideRejectsGarbage(t *testing.T) {
	t.Setenv("CHOMP_WORKERS", "lots")
	if _, err := LoadConfig(""); err == nil {
		t.Fatalf("expected error for non-numeric CHOMP_WORKERS")
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatalf("expected error for missing config file")
	}
}
