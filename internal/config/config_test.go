package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaultsWithoutConfigFile(t *testing.T) {
	cfg, dir, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg != Default() {
		t.Errorf("expected defaults, got %+v", cfg)
	}
	if filepath.Base(dir) != StoreDirName {
		t.Errorf("expected store dir %s, got %s", StoreDirName, dir)
	}
}

func TestLoadReadsConfigFile(t *testing.T) {
	root := t.TempDir()
	storeDir := filepath.Join(root, StoreDirName)
	if err := os.MkdirAll(storeDir, 0o755); err != nil {
		t.Fatal(err)
	}
	body := `{"max_results": 5, "time_decay_lambda": 0, "default_export_format": "json"}`
	if err := os.WriteFile(filepath.Join(storeDir, configFile), []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, dir, err := Load(root)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.MaxResults != 5 {
		t.Errorf("expected max_results 5, got %d", cfg.MaxResults)
	}
	if cfg.TimeDecayLambda != 0 {
		t.Errorf("expected lambda 0, got %v", cfg.TimeDecayLambda)
	}
	if cfg.DefaultExportFormat != "json" {
		t.Errorf("expected format json, got %q", cfg.DefaultExportFormat)
	}
	// Unspecified keys keep their defaults.
	if cfg.StorePath != StoreDirName {
		t.Errorf("expected default store_path, got %q", cfg.StorePath)
	}
	if dir != storeDir {
		t.Errorf("expected store dir %s, got %s", storeDir, dir)
	}
}

func TestLoadWalksUpToStoreDir(t *testing.T) {
	root := t.TempDir()
	storeDir := filepath.Join(root, StoreDirName)
	if err := os.MkdirAll(storeDir, 0o755); err != nil {
		t.Fatal(err)
	}
	nested := filepath.Join(root, "a", "b", "c")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	_, dir, err := Load(nested)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if dir != storeDir {
		t.Errorf("expected walk-up to find %s, got %s", storeDir, dir)
	}
}

func TestWriteDefaultDoesNotClobber(t *testing.T) {
	dir := t.TempDir()
	if err := WriteDefault(dir); err != nil {
		t.Fatalf("write default: %v", err)
	}

	custom := []byte(`{"max_results": 99}`)
	path := filepath.Join(dir, configFile)
	if err := os.WriteFile(path, custom, 0o644); err != nil {
		t.Fatal(err)
	}
	if err := WriteDefault(dir); err != nil {
		t.Fatalf("second write default: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != string(custom) {
		t.Error("expected existing config to be left untouched")
	}
}
