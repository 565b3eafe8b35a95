package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	p := Default()
	if p.Width != 250 || p.MinWidth != 150 || p.MaxWidth != 350 {
		t.Errorf("Expected defaults 250/150/350, got %d/%d/%d", p.Width, p.MinWidth, p.MaxWidth)
	}
	if err := p.Validate(); err != nil {
		t.Errorf("Expected default config to validate, got %v", err)
	}
}

func TestResolvedFillsOnlyUnsetFields(t *testing.T) {
	p := Panel{Width: 300}.Resolved()
	if p.Width != 300 {
		t.Errorf("Expected explicit width kept, got %d", p.Width)
	}
	if p.MinWidth != DefaultMinWidth || p.MaxWidth != DefaultMaxWidth {
		t.Errorf("Expected default bounds, got %d/%d", p.MinWidth, p.MaxWidth)
	}
}

func TestValidateRejectsInvertedBounds(t *testing.T) {
	p := Panel{Width: 250, MinWidth: 400, MaxWidth: 350}
	err := p.Validate()
	if err == nil {
		t.Fatal("Expected error for min > max")
	}
	if !strings.Contains(err.Error(), "exceeds maximum") {
		t.Errorf("Unexpected error message: %v", err)
	}
}

func TestValidateRejectsNonPositiveBounds(t *testing.T) {
	p := Panel{Width: 250, MinWidth: -1, MaxWidth: 350}
	if err := p.Validate(); err == nil {
		t.Error("Expected error for negative minimum")
	}
}

func TestParse(t *testing.T) {
	yml := []byte("id: sidebar\nwidth: 280\nminimum_width: 100\nmaximum_width: 500\n")
	p, err := Parse(yml)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if p.ID != "sidebar" {
		t.Errorf("Expected id sidebar, got %q", p.ID)
	}
	if p.Width != 280 || p.MinWidth != 100 || p.MaxWidth != 500 {
		t.Errorf("Expected 280/100/500, got %d/%d/%d", p.Width, p.MinWidth, p.MaxWidth)
	}
}

func TestParsePartialUsesDefaults(t *testing.T) {
	p, err := Parse([]byte("width: 200\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if p.MinWidth != DefaultMinWidth || p.MaxWidth != DefaultMaxWidth {
		t.Errorf("Expected default bounds, got %d/%d", p.MinWidth, p.MaxWidth)
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	if _, err := Parse([]byte("minimum_width: 500\nmaximum_width: 100\n")); err == nil {
		t.Error("Expected error for inverted bounds")
	}
	if _, err := Parse([]byte("width: [not a number]\n")); err == nil {
		t.Error("Expected error for malformed YAML")
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "panel.yaml")
	if err := os.WriteFile(path, []byte("width: 260\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if p.Width != 260 {
		t.Errorf("Expected width 260, got %d", p.Width)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("Expected error for missing file")
	}
}
