package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lixenwraith/skater/constants"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default config invalid: %v", err)
	}
	if cfg.Gameplay.StartingScrollSpeed != constants.StartingScrollSpeed {
		t.Errorf("Expected starting speed %v, got %v", constants.StartingScrollSpeed, cfg.Gameplay.StartingScrollSpeed)
	}
	if cfg.Gameplay.GemBonus != 50 {
		t.Errorf("Expected gem bonus 50, got %d", cfg.Gameplay.GemBonus)
	}
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.Display.ColorMode != ColorAuto {
		t.Errorf("Expected color mode %q, got %q", ColorAuto, cfg.Display.ColorMode)
	}
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, "game.toml", `
seed = 42

[gameplay]
starting_scroll_speed = 7.5
gem_bonus = 100

[display]
color_mode = "256"

[audio]
muted = true
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Seed != 42 {
		t.Errorf("Expected seed 42, got %d", cfg.Seed)
	}
	if cfg.Gameplay.StartingScrollSpeed != 7.5 {
		t.Errorf("Expected speed 7.5, got %v", cfg.Gameplay.StartingScrollSpeed)
	}
	if cfg.Gameplay.GemBonus != 100 {
		t.Errorf("Expected gem bonus 100, got %d", cfg.Gameplay.GemBonus)
	}
	// Untouched keys keep their defaults
	if cfg.Physics.Gravity != constants.Gravity {
		t.Errorf("Expected default gravity, got %v", cfg.Physics.Gravity)
	}
	if !cfg.Audio.Muted {
		t.Error("Expected audio muted")
	}
	if cfg.Display.ColorMode != Color256 {
		t.Errorf("Expected color mode 256, got %q", cfg.Display.ColorMode)
	}
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "game.yaml", `
physics:
  gravity: 1200
  jump_velocity: 650
debug:
  log: true
  status_addr: "127.0.0.1:7070"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Physics.Gravity != 1200 || cfg.Physics.JumpVelocity != 650 {
		t.Errorf("Unexpected physics config: %+v", cfg.Physics)
	}
	if !cfg.Debug.Log || cfg.Debug.StatusAddr != "127.0.0.1:7070" {
		t.Errorf("Unexpected debug config: %+v", cfg.Debug)
	}
}

func TestLoadEmptyYAML(t *testing.T) {
	path := writeFile(t, "empty.yml", "")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Empty YAML should load defaults, got %v", err)
	}
	if cfg.Gameplay.GapChance != constants.GapChance {
		t.Errorf("Expected default gap chance, got %d", cfg.Gameplay.GapChance)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		wantErr string
	}{
		{"Unknown TOML key", "a.toml", "[gameplay]\nturbo = true\n", "unknown keys"},
		{"Unknown YAML key", "a.yaml", "gameplay:\n  turbo: true\n", "turbo"},
		{"Bad extension", "a.json", "{}", "unsupported extension"},
		{"Invalid value", "a.toml", "[physics]\ngravity = -1\n", "physics.gravity"},
		{"Bad color mode", "a.yaml", "display:\n  color_mode: mono\n", "display.color_mode"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.file, tt.content)
			_, err := Load(path)
			if err == nil {
				t.Fatal("Expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestValidateCollectsAllErrors(t *testing.T) {
	cfg := Default()
	cfg.Gameplay.StartingScrollSpeed = 0
	cfg.Gameplay.LevelChance = 1
	cfg.Audio.Volume = 2

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Expected validation error")
	}
	for _, want := range []string{"starting_scroll_speed", "level_chance", "audio.volume"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("Expected %q in %v", want, err)
		}
	}
}
