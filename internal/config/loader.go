package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned when a configuration fails validation.
var ErrInvalidConfig = errors.New("invalid config")

// pieceExtent is the widest and tallest footprint of any piece in the catalogue.
const pieceExtent = 3

// LoadTetris loads the tetris configuration.
// Search order: customPath -> ~/.tetris/configs/tetris.yaml -> ./configs/tetris.yaml -> embedded default
func LoadTetris(customPath string) (TetrisConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return TetrisConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return TetrisConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("tetris.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "tetris.yaml")); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultTetrisYAML)
	if err != nil {
		return DefaultTetrisConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of the hardcoded defaults and validates the result.
// Keys missing from data keep their default values.
func Parse(data []byte) (TetrisConfig, error) {
	cfg := DefaultTetrisConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return TetrisConfig{}, fmt.Errorf("failed to parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return TetrisConfig{}, err
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func Marshal(cfg TetrisConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return data, nil
}

// Validate checks that the configuration describes a playable game.
func (c TetrisConfig) Validate() error {
	switch {
	case c.Grid.Cols <= 0 || c.Grid.Rows <= 0:
		return fmt.Errorf("%w: grid must be at least 1x1, got %dx%d", ErrInvalidConfig, c.Grid.Cols, c.Grid.Rows)
	case c.Spawn.Col < 0 || c.Spawn.Col >= c.Grid.Cols || c.Spawn.Row < 0 || c.Spawn.Row >= c.Grid.Rows:
		return fmt.Errorf("%w: spawn (%d,%d) outside %dx%d grid", ErrInvalidConfig, c.Spawn.Col, c.Spawn.Row, c.Grid.Cols, c.Grid.Rows)
	case c.Spawn.Col+pieceExtent > c.Grid.Cols || c.Spawn.Row+pieceExtent > c.Grid.Rows:
		return fmt.Errorf("%w: spawn (%d,%d) leaves no room for a %dx%d piece", ErrInvalidConfig, c.Spawn.Col, c.Spawn.Row, pieceExtent, pieceExtent)
	case c.Timing.TickRate <= 0:
		return fmt.Errorf("%w: tick_rate must be positive, got %d", ErrInvalidConfig, c.Timing.TickRate)
	case c.Timing.GravityEvery < 0:
		return fmt.Errorf("%w: gravity_every must not be negative, got %d", ErrInvalidConfig, c.Timing.GravityEvery)
	case c.Timing.SoftDropReleaseTicks < 0:
		return fmt.Errorf("%w: soft_drop_release_ticks must not be negative, got %d", ErrInvalidConfig, c.Timing.SoftDropReleaseTicks)
	case c.Scoring.LinesPerLevel <= 0:
		return fmt.Errorf("%w: lines_per_level must be positive, got %d", ErrInvalidConfig, c.Scoring.LinesPerLevel)
	}
	for rows, points := range c.Scoring.LineScores {
		if rows <= 0 || points < 0 {
			return fmt.Errorf("%w: line_scores entry %d: %d", ErrInvalidConfig, rows, points)
		}
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tetris", "configs", filename)
}
