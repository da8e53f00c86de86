package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/draklow/deckhand/internal/settings"
)

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(home, "does-not-exist.toml")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Path != path {
		t.Fatalf("Path = %q, want %q", cfg.Path, path)
	}

	wantLogDir, err := expandPath(defaultLogDir)
	if err != nil {
		t.Fatalf("expandPath(defaultLogDir) returned error: %v", err)
	}
	if cfg.LogDir != wantLogDir {
		t.Fatalf("LogDir = %q, want %q", cfg.LogDir, wantLogDir)
	}
	if cfg.DaemonLogPath() != filepath.Join(wantLogDir, "ferryd.log") {
		t.Fatalf("DaemonLogPath() = %q, want %q", cfg.DaemonLogPath(), filepath.Join(wantLogDir, "ferryd.log"))
	}
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
[storage]
log_dir = "  ~/.ferryd/logs  "
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !strings.HasPrefix(cfg.LogDir, home) {
		t.Fatalf("LogDir = %q, want it under HOME %q", cfg.LogDir, home)
	}
	if cfg.DaemonLogPath() != filepath.Join(cfg.LogDir, "ferryd.log") {
		t.Fatalf("DaemonLogPath() = %q, want %q", cfg.DaemonLogPath(), filepath.Join(cfg.LogDir, "ferryd.log"))
	}
}

func TestLoad_EmptyValuesUseDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
[storage]
log_dir = "   "
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	wantLogDir, err := expandPath(defaultLogDir)
	if err != nil {
		t.Fatalf("expandPath(defaultLogDir) returned error: %v", err)
	}
	if cfg.LogDir != wantLogDir {
		t.Fatalf("LogDir = %q, want default %q", cfg.LogDir, wantLogDir)
	}
}

func TestLoad_MalformedConfigReturnsError(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("storage = [broken"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("Load accepted malformed TOML, want error")
	}
}

func TestEditableFields_ValidDefaultsAndUniqueKeys(t *testing.T) {
	schema := EditableFields()
	if len(schema) == 0 {
		t.Fatal("EditableFields() is empty")
	}

	seen := map[string]bool{}
	for _, spec := range schema {
		id := spec.Section + "." + spec.Key
		if seen[id] {
			t.Errorf("duplicate field %s", id)
		}
		seen[id] = true

		// Text defaults may be paths with tildes; everything else must
		// satisfy its own declared type.
		if _, ok := spec.Type.(settings.TextType); ok {
			continue
		}
		if err := spec.Type.Validate(spec.Default); err != nil {
			t.Errorf("default for %s fails its own type: %v", id, err)
		}
	}
}
