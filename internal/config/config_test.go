package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	content := `
storage:
  path: /tmp/test.db
canvas:
  width: 100
  tick_rate: 60
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Storage.Path != "/tmp/test.db" {
		t.Errorf("Storage.Path = %q", cfg.Storage.Path)
	}
	if cfg.Canvas.Width != 100 || cfg.Canvas.TickRate != 60 {
		t.Errorf("Canvas = %+v", cfg.Canvas)
	}
	// Unset values are filled with defaults
	if cfg.Canvas.Height != 24 {
		t.Errorf("Canvas.Height = %d, expected default 24", cfg.Canvas.Height)
	}
	if cfg.SSH.Address != ":23235" {
		t.Errorf("SSH.Address = %q, expected default", cfg.SSH.Address)
	}
}

func TestLoadMissingCustomPathFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load() should fail for an explicit missing path")
	}
}

func TestLoadInvalidYAMLFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	os.WriteFile(path, []byte("storage: [not a map"), 0o644)

	if _, err := Load(path); err == nil {
		t.Error("Load() should fail for invalid YAML")
	}
}

func TestDefaultIsComplete(t *testing.T) {
	cfg := Default()
	if cfg.Storage.Path == "" {
		t.Error("default Storage.Path is empty")
	}
	if cfg.Canvas.Width <= 0 || cfg.Canvas.Height <= 0 || cfg.Canvas.TickRate <= 0 {
		t.Errorf("default Canvas incomplete: %+v", cfg.Canvas)
	}
	if cfg.SSH.Address == "" || cfg.SSH.IdleMinutes <= 0 {
		t.Errorf("default SSH incomplete: %+v", cfg.SSH)
	}
}
