package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/specmark/amath/amath"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Backend != BackendGo {
		t.Errorf("got backend %q, want %q", cfg.Backend, BackendGo)
	}
	if cfg.Display != DisplayInline {
		t.Errorf("got display %q, want %q", cfg.Display, DisplayInline)
	}
	if cfg.MaxDepth != amath.DefaultMaxDepth {
		t.Errorf("got max depth %d, want %d", cfg.MaxDepth, amath.DefaultMaxDepth)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadFrom_NonExistent(t *testing.T) {
	cfg, err := LoadFrom("/nonexistent/path/config.json")
	if err != nil {
		t.Errorf("should not error on missing file: %v", err)
	}
	if cfg == nil {
		t.Fatal("should return default config")
	}
	if cfg.Backend != BackendGo {
		t.Errorf("got backend %q, want default", cfg.Backend)
	}
}

func TestLoadFrom_ValidJSON(t *testing.T) {
	path := writeConfig(t, `{
		"display": "block",
		"color": true,
		"style": "dracula",
		"maxDepth": 16
	}`)

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Display != DisplayBlock {
		t.Errorf("got display %q, want block", cfg.Display)
	}
	if !cfg.Color {
		t.Error("color should be enabled")
	}
	if cfg.Style != "dracula" {
		t.Errorf("got style %q, want dracula", cfg.Style)
	}
	if cfg.MaxDepth != 16 {
		t.Errorf("got max depth %d, want 16", cfg.MaxDepth)
	}
	if cfg.MaxInputBytes != amath.DefaultMaxInputBytes {
		t.Errorf("unset field should keep default, got %d", cfg.MaxInputBytes)
	}
	if cfg.Backend != BackendGo {
		t.Errorf("unset backend should keep default, got %q", cfg.Backend)
	}

	opts := cfg.TranslatorOptions()
	if !opts.Display || opts.MaxDepth != 16 {
		t.Errorf("unexpected translator options: %+v", opts)
	}
}

func TestLoadFrom_InvalidJSON(t *testing.T) {
	path := writeConfig(t, `{not json`)

	if _, err := LoadFrom(path); err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestLoadFrom_RejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"backend", `{"backend": "python"}`, "unknown backend"},
		{"display", `{"display": "wide"}`, "unknown display"},
		{"depth", `{"maxDepth": 0}`, "maxDepth must be positive"},
		{"input", `{"maxInputBytes": -1}`, "maxInputBytes must be positive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFrom(writeConfig(t, tt.content))
			if err == nil {
				t.Fatalf("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}
