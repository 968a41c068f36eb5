package infra

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("missing file should not be an error: %v", err)
	}
	if cfg.App.Name != "ledger-go" {
		t.Errorf("expected default app name, got %s", cfg.App.Name)
	}
	if cfg.Archive.Enabled {
		t.Error("archive should be disabled by default")
	}
}

func TestLoadConfigParsesYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte(`
app:
  name: test-ledger
logging:
  level: debug
archive:
  enabled: true
  path: /tmp/events.db
`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.App.Name != "test-ledger" {
		t.Errorf("expected app name test-ledger, got %s", cfg.App.Name)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected level debug, got %s", cfg.Logging.Level)
	}
	if !cfg.Archive.Enabled || cfg.Archive.Path != "/tmp/events.db" {
		t.Errorf("unexpected archive config: %+v", cfg.Archive)
	}
}

func TestLoadConfigRejectsUnknownLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("logging:\n  level: loud\n"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Error("unknown log level should be rejected")
	}
}

func TestEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("logging:\n  level: info\n"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv("LEDGER_LOG_LEVEL", "warn")
	t.Setenv("LEDGER_ARCHIVE_PATH", "/tmp/override.db")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("expected env override to warn, got %s", cfg.Logging.Level)
	}
	if !cfg.Archive.Enabled || cfg.Archive.Path != "/tmp/override.db" {
		t.Errorf("expected archive override, got %+v", cfg.Archive)
	}
}
