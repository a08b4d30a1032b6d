package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the hardcoded default configuration.
// It matches defaults/tetris.yaml and is used when the embedded file cannot be parsed.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Grid: GridConfig{
			Cols: 10,
			Rows: 20,
		},
		Spawn: SpawnConfig{
			Col: 3,
			Row: 0,
		},
		Timing: TimingConfig{
			TickRate:             30,
			GravityEvery:         0,
			SoftDropReleaseTicks: 8,
		},
		Scoring: ScoringConfig{
			LineScores: map[int]int{
				1: 40,
				2: 100,
				3: 300,
				4: 1200,
			},
			LinesPerLevel: 10,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultTetrisYAML
}
