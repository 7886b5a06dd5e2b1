package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/lixenwraith/skater/config"
)

func TestParseFlagsDefaults(t *testing.T) {
	opts, err := parseFlags(nil, io.Discard)
	if err != nil {
		t.Fatalf("parseFlags: %v", err)
	}
	cfg, err := loadConfig(opts)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}

	def := config.Default()
	if cfg.Display.ColorMode != def.Display.ColorMode || cfg.Audio.Muted || cfg.Debug.Log || cfg.Seed != 0 {
		t.Errorf("defaults changed: %+v", cfg)
	}
}

func TestFlagsOverrideConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skater.toml")
	data := "seed = 7\n[display]\ncolor_mode = \"256\"\n[audio]\nmuted = true\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	opts, err := parseFlags([]string{"-config", path, "-seed", "42", "-color", "truecolor", "-status-addr", "127.0.0.1:0"}, io.Discard)
	if err != nil {
		t.Fatalf("parseFlags: %v", err)
	}
	cfg, err := loadConfig(opts)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}

	if cfg.Seed != 42 {
		t.Errorf("seed = %d, want flag value 42", cfg.Seed)
	}
	if cfg.Display.ColorMode != config.ColorTrueColor {
		t.Errorf("color = %q", cfg.Display.ColorMode)
	}
	if !cfg.Audio.Muted {
		t.Error("file value lost when the flag was not given")
	}
	if cfg.Debug.StatusAddr != "127.0.0.1:0" {
		t.Errorf("status addr = %q", cfg.Debug.StatusAddr)
	}
}

func TestFlagsRejectInvalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"Unknown flag", []string{"-fast"}},
		{"Positional argument", []string{"extra"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := parseFlags(tt.args, io.Discard); err == nil {
				t.Error("expected error")
			}
		})
	}

	opts, err := parseFlags([]string{"-color", "sepia"}, io.Discard)
	if err != nil {
		t.Fatalf("parseFlags: %v", err)
	}
	if _, err := loadConfig(opts); err == nil {
		t.Error("invalid color mode should fail validation")
	}
}
