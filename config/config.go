// Package config loads game tuning from TOML or YAML files with defaults taken from constants.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/skater/constants"
)

// Color mode names accepted by Display.ColorMode
const (
	ColorAuto      = "auto"
	ColorTrueColor = "truecolor"
	Color256       = "256"
)

// Config is the complete runtime configuration
type Config struct {
	Gameplay GameplayConfig `toml:"gameplay" yaml:"gameplay"`
	Physics  PhysicsConfig  `toml:"physics" yaml:"physics"`
	Display  DisplayConfig  `toml:"display" yaml:"display"`
	Audio    AudioConfig    `toml:"audio" yaml:"audio"`
	Debug    DebugConfig    `toml:"debug" yaml:"debug"`

	// Seed for the spawn roller, 0 picks a time-based seed
	Seed int64 `toml:"seed" yaml:"seed"`
}

// GameplayConfig tunes scrolling, scoring and the spawn policy
type GameplayConfig struct {
	StartingScrollSpeed  float64 `toml:"starting_scroll_speed" yaml:"starting_scroll_speed"`
	ScrollSpeedIncrement float64 `toml:"scroll_speed_increment" yaml:"scroll_speed_increment"`
	GemBonus             int     `toml:"gem_bonus" yaml:"gem_bonus"`
	GapChance            int     `toml:"gap_chance" yaml:"gap_chance"`
	LevelChance          int     `toml:"level_chance" yaml:"level_chance"`
	GapScoreThreshold    int     `toml:"gap_score_threshold" yaml:"gap_score_threshold"`
	LevelScoreThreshold  int     `toml:"level_score_threshold" yaml:"level_score_threshold"`
	GapSpeedFactor       float64 `toml:"gap_speed_factor" yaml:"gap_speed_factor"`
	GemHeightRange       int     `toml:"gem_height_range" yaml:"gem_height_range"`
	MaxRotationDegrees   float64 `toml:"max_rotation_degrees" yaml:"max_rotation_degrees"`
}

// PhysicsConfig tunes the skater body
type PhysicsConfig struct {
	Gravity      float64 `toml:"gravity" yaml:"gravity"`
	JumpVelocity float64 `toml:"jump_velocity" yaml:"jump_velocity"`
}

// DisplayConfig selects the terminal palette
type DisplayConfig struct {
	ColorMode string `toml:"color_mode" yaml:"color_mode"`
}

// AudioConfig controls the sound manager
type AudioConfig struct {
	Muted  bool    `toml:"muted" yaml:"muted"`
	Volume float64 `toml:"volume" yaml:"volume"` // Gain in [0,1]
}

// DebugConfig enables diagnostics
type DebugConfig struct {
	Log        bool   `toml:"log" yaml:"log"`
	StatusAddr string `toml:"status_addr" yaml:"status_addr"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Gameplay: GameplayConfig{
			StartingScrollSpeed:  constants.StartingScrollSpeed,
			ScrollSpeedIncrement: constants.ScrollSpeedIncrement,
			GemBonus:             constants.GemBonus,
			GapChance:            constants.GapChance,
			LevelChance:          constants.LevelChance,
			GapScoreThreshold:    constants.GapScoreThreshold,
			LevelScoreThreshold:  constants.LevelScoreThreshold,
			GapSpeedFactor:       constants.GapSpeedFactor,
			GemHeightRange:       constants.GemHeightRange,
			MaxRotationDegrees:   constants.MaxRotationDegrees,
		},
		Physics: PhysicsConfig{
			Gravity:      constants.Gravity,
			JumpVelocity: constants.JumpVelocity,
		},
		Display: DisplayConfig{
			ColorMode: ColorAuto,
		},
		Audio: AudioConfig{
			Volume: 1.0,
		},
	}
}

// Load reads path over the defaults, format chosen by extension (.toml, .yaml, .yml)
// An empty path returns the defaults
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if err := decodeTOML(path, cfg); err != nil {
			return nil, err
		}
	case ".yaml", ".yml":
		if err := decodeYAML(path, cfg); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("config %s: unsupported extension %q", path, ext)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func decodeTOML(path string, cfg *Config) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return fmt.Errorf("failed to decode %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	return nil
}

func decodeYAML(path string, cfg *Config) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return nil
}

// Validate reports every out-of-range value
func (c *Config) Validate() error {
	var errs []error
	g := c.Gameplay

	if g.StartingScrollSpeed <= 0 {
		errs = append(errs, fmt.Errorf("gameplay.starting_scroll_speed must be positive, got %v", g.StartingScrollSpeed))
	}
	if g.ScrollSpeedIncrement < 0 {
		errs = append(errs, fmt.Errorf("gameplay.scroll_speed_increment must not be negative, got %v", g.ScrollSpeedIncrement))
	}
	if g.GemBonus < 0 {
		errs = append(errs, fmt.Errorf("gameplay.gem_bonus must not be negative, got %d", g.GemBonus))
	}
	if g.GapChance < 0 || g.GapChance > constants.SpawnRollRange {
		errs = append(errs, fmt.Errorf("gameplay.gap_chance must be in [0,%d], got %d", constants.SpawnRollRange, g.GapChance))
	}
	if g.LevelChance < g.GapChance || g.LevelChance > constants.SpawnRollRange {
		errs = append(errs, fmt.Errorf("gameplay.level_chance must be in [gap_chance,%d], got %d", constants.SpawnRollRange, g.LevelChance))
	}
	if g.GapSpeedFactor < 0 {
		errs = append(errs, fmt.Errorf("gameplay.gap_speed_factor must not be negative, got %v", g.GapSpeedFactor))
	}
	if g.GemHeightRange <= 0 {
		errs = append(errs, fmt.Errorf("gameplay.gem_height_range must be positive, got %d", g.GemHeightRange))
	}
	if g.MaxRotationDegrees <= 0 || g.MaxRotationDegrees >= 180 {
		errs = append(errs, fmt.Errorf("gameplay.max_rotation_degrees must be in (0,180), got %v", g.MaxRotationDegrees))
	}
	if c.Physics.Gravity <= 0 {
		errs = append(errs, fmt.Errorf("physics.gravity must be positive, got %v", c.Physics.Gravity))
	}
	if c.Physics.JumpVelocity <= 0 {
		errs = append(errs, fmt.Errorf("physics.jump_velocity must be positive, got %v", c.Physics.JumpVelocity))
	}
	switch c.Display.ColorMode {
	case ColorAuto, ColorTrueColor, Color256:
	default:
		errs = append(errs, fmt.Errorf("display.color_mode must be one of auto, truecolor, 256, got %q", c.Display.ColorMode))
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		errs = append(errs, fmt.Errorf("audio.volume must be in [0,1], got %v", c.Audio.Volume))
	}

	return errors.Join(errs...)
}
