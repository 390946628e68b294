package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("missing config must not fail: %v", err)
	}
	if cfg.Store.Path != "" {
		t.Fatalf("expected empty store path, got %q", cfg.Store.Path)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("store:\n  path: /tmp/records.yaml\nbank:\n  cache_ttl: 30s\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Store.Path != "/tmp/records.yaml" {
		t.Fatalf("unexpected store path %q", cfg.Store.Path)
	}
	if got := TTLDuration(cfg.Bank.CacheTTL, time.Minute); got != 30*time.Second {
		t.Fatalf("unexpected ttl %v", got)
	}

	storePath, err := cfg.StorePath()
	if err != nil {
		t.Fatalf("store path: %v", err)
	}
	if storePath != "/tmp/records.yaml" {
		t.Fatalf("unexpected resolved store path %q", storePath)
	}
}

func TestTTLDuration(t *testing.T) {
	if got := TTLDuration("", time.Minute); got != time.Minute {
		t.Fatalf("empty should fall back, got %v", got)
	}
	if got := TTLDuration("bogus", time.Minute); got != time.Minute {
		t.Fatalf("malformed should fall back, got %v", got)
	}
	if got := TTLDuration("2m", time.Minute); got != 2*time.Minute {
		t.Fatalf("expected 2m, got %v", got)
	}
}
