package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/term2048/internal/core"
)

func TestLoadEmbeddedDefault(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}

	if cfg.Theme.Tiles[2] != "white" {
		t.Errorf("default theme tile 2 = %q, want white", cfg.Theme.Tiles[2])
	}
	if cfg.Theme.Tiles[2048] != "bright_green" {
		t.Errorf("default theme tile 2048 = %q, want bright_green", cfg.Theme.Tiles[2048])
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadCustomPath(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "theme.yaml")

	data := []byte("theme:\n  tiles:\n    2: red\n    4: blue\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("cannot write temp config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%s) failed: %v", path, err)
	}

	if cfg.Theme.Tiles[2] != "red" || cfg.Theme.Tiles[4] != "blue" {
		t.Errorf("custom theme not loaded: %v", cfg.Theme.Tiles)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load with a missing explicit path should fail")
	}
}

func TestLoadRejectsUnknownColor(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "theme.yaml")

	data := []byte("theme:\n  tiles:\n    2: chartreuse\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("cannot write temp config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load should reject unknown color names")
	}
}

func TestPaletteLookup(t *testing.T) {
	theme := ThemeConfig{
		Tiles: map[int]string{
			2:    "white",
			4:    "yellow",
			2048: "bright_green",
		},
	}
	pal := theme.Palette()

	if pal(2) != core.ColorWhite {
		t.Errorf("pal(2) = %d, want ColorWhite", pal(2))
	}
	if pal(4) != core.ColorYellow {
		t.Errorf("pal(4) = %d, want ColorYellow", pal(4))
	}

	// Unconfigured value inside the range falls back to default.
	if pal(8) != core.ColorDefault {
		t.Errorf("pal(8) = %d, want ColorDefault", pal(8))
	}

	// Values above the highest configured tile reuse its color.
	if pal(8192) != core.ColorBrightGreen {
		t.Errorf("pal(8192) = %d, want ColorBrightGreen", pal(8192))
	}
}
