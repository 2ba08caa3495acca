package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"hangulpad/internal/types"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "hangulpad.ini")
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := Default()
	if cfg.Layout != "dubeolsik" {
		t.Fatalf("expected default layout dubeolsik, got %q", cfg.Layout)
	}
	if cfg.DefaultMode != types.ModeHangul {
		t.Fatalf("expected default mode hangul, got %v", cfg.DefaultMode)
	}
	if cfg.Verbose || cfg.Strict {
		t.Fatalf("expected debug flags off by default")
	}
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, "[layout]\nname = sebeolsik-390\nkeypairs = keys.yaml\n\n[toggle]\ndefault_mode = Latin\n\n[debug]\nverbose = true\nstrict = false\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Layout != "sebeolsik-390" {
		t.Fatalf("expected layout sebeolsik-390, got %q", cfg.Layout)
	}
	if want := filepath.Join(filepath.Dir(path), "keys.yaml"); cfg.KeypairsPath != want {
		t.Fatalf("expected keypairs %q, got %q", want, cfg.KeypairsPath)
	}
	if cfg.DefaultMode != types.ModeLatin {
		t.Fatalf("expected default mode latin, got %v", cfg.DefaultMode)
	}
	if !cfg.Verbose || cfg.Strict {
		t.Fatalf("unexpected debug flags: verbose=%v strict=%v", cfg.Verbose, cfg.Strict)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.ini"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("expected defaults, got %#v", cfg)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	cases := map[string]string{
		"mode":    "[toggle]\ndefault_mode = kana\n",
		"verbose": "[debug]\nverbose = maybe\n",
	}
	for name, contents := range cases {
		_, err := Load(writeConfig(t, contents))
		var cfgErr ConfigError
		if !errors.As(err, &cfgErr) {
			t.Fatalf("%s: expected ConfigError, got %v", name, err)
		}
	}
}

func TestLoadDirectory(t *testing.T) {
	if _, err := Load(t.TempDir()); err == nil {
		t.Fatalf("expected error when config path is a directory")
	}
}

func TestResolveExplicitMissingPath(t *testing.T) {
	if _, err := Resolve(filepath.Join(t.TempDir(), "nope.ini")); err == nil {
		t.Fatalf("expected error for explicit missing config")
	}
}
