package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ha1tch/fsmviz/pkg/diagram"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fsmviz.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig(\"\") failed: %v", err)
	}
	if cfg.Layout != diagram.DefaultConfig() {
		t.Errorf("Expected default layout, got %+v", cfg.Layout)
	}
	if cfg.Render.FontSize != 14 {
		t.Errorf("Expected default font size 14, got %g", cfg.Render.FontSize)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	path := writeConfig(t, `
[layout]
radius = 30
scale = 2

[render]
title = "demo"
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Layout.Radius != 30 || cfg.Layout.Scale != 2 {
		t.Errorf("Expected radius 30 and scale 2, got %+v", cfg.Layout)
	}
	if cfg.Layout.Gap != 15 {
		t.Errorf("Unset keys should keep defaults, got gap %g", cfg.Layout.Gap)
	}
	if cfg.Render.Title != "demo" || cfg.Render.FontSize != 14 {
		t.Errorf("Unexpected render options %+v", cfg.Render)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"syntax", "[layout\nradius = 1", "parse config"},
		{"unknown key", "[layout]\nradus = 1", "unknown keys layout.radus"},
		{"invalid layout", "[layout]\nradius = 0", "[layout] radius"},
		{"invalid render", "[render]\nfont_size = -1", "[render] font_size"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.content))
			if err == nil {
				t.Fatal("Expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("Expected error for missing file")
	}
}
