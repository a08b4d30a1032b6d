// Package config provides YAML-based game configuration loading for the
// tetris engine and its terminal frontend.
package config

// TetrisConfig contains all tunable parameters of a tetris game.
type TetrisConfig struct {
	Grid    GridConfig    `yaml:"grid"`
	Spawn   SpawnConfig   `yaml:"spawn"`
	Timing  TimingConfig  `yaml:"timing"`
	Scoring ScoringConfig `yaml:"scoring"`
}

// GridConfig defines the playfield dimensions in cells.
type GridConfig struct {
	Cols int `yaml:"cols"`
	Rows int `yaml:"rows"`
}

// SpawnConfig is the anchor cell new pieces appear at.
type SpawnConfig struct {
	Col int `yaml:"col"`
	Row int `yaml:"row"`
}

// TimingConfig defines the tick rate and gravity cadence.
type TimingConfig struct {
	TickRate     int `yaml:"tick_rate"`     // Simulation ticks per second
	GravityEvery int `yaml:"gravity_every"` // Ticks between gravity steps, 0 = tick_rate
	// SoftDropReleaseTicks is how long the frontend keeps soft drop latched
	// after the last down key press. Terminals report no key releases.
	SoftDropReleaseTicks int `yaml:"soft_drop_release_ticks"`
}

// ScoringConfig defines points per simultaneous row clear and level pacing.
type ScoringConfig struct {
	LineScores    map[int]int `yaml:"line_scores"`
	LinesPerLevel int         `yaml:"lines_per_level"`
}

// GravityInterval returns the number of ticks between gravity steps.
func (t TimingConfig) GravityInterval() int {
	if t.GravityEvery > 0 {
		return t.GravityEvery
	}
	return t.TickRate
}
