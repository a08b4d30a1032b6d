package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(DefaultYAML()) failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultTetrisConfig()) {
		t.Errorf("embedded defaults = %+v, expected %+v", cfg, DefaultTetrisConfig())
	}
}

func TestLoadTetrisCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tetris.yaml")
	data := []byte("grid:\n  cols: 12\n  rows: 22\ntiming:\n  tick_rate: 60\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	cfg, err := LoadTetris(path)
	if err != nil {
		t.Fatalf("LoadTetris() failed: %v", err)
	}

	if cfg.Grid.Cols != 12 || cfg.Grid.Rows != 22 {
		t.Errorf("grid = %dx%d, expected 12x22", cfg.Grid.Cols, cfg.Grid.Rows)
	}
	if cfg.Timing.TickRate != 60 {
		t.Errorf("tick_rate = %d, expected 60", cfg.Timing.TickRate)
	}
	// Keys absent from the file keep their defaults
	if cfg.Scoring.LineScores[4] != 1200 {
		t.Errorf("line_scores[4] = %d, expected 1200", cfg.Scoring.LineScores[4])
	}
	if cfg.Spawn.Col != 3 || cfg.Spawn.Row != 0 {
		t.Errorf("spawn = (%d,%d), expected (3,0)", cfg.Spawn.Col, cfg.Spawn.Row)
	}
}

func TestLoadTetrisMissingCustomPath(t *testing.T) {
	_, err := LoadTetris(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("LoadTetris() with missing file should fail")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error = %v, expected to wrap os.ErrNotExist", err)
	}
}

func TestLoadTetrisRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tetris.yaml")
	if err := os.WriteFile(path, []byte("spawn:\n  col: 42\n"), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	_, err := LoadTetris(path)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("error = %v, expected ErrInvalidConfig", err)
	}
}

func TestParseMalformedYAML(t *testing.T) {
	if _, err := Parse([]byte("grid: [1, 2")); err == nil {
		t.Error("Parse() of malformed YAML should fail")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*TetrisConfig)
		wantErr bool
	}{
		{"defaults", func(*TetrisConfig) {}, false},
		{"zero cols", func(c *TetrisConfig) { c.Grid.Cols = 0 }, true},
		{"negative rows", func(c *TetrisConfig) { c.Grid.Rows = -1 }, true},
		{"spawn right of grid", func(c *TetrisConfig) { c.Spawn.Col = 10 }, true},
		{"spawn below grid", func(c *TetrisConfig) { c.Spawn.Row = 20 }, true},
		{"spawn too close to right wall", func(c *TetrisConfig) { c.Spawn.Col = 8 }, true},
		{"spawn too close to floor", func(c *TetrisConfig) { c.Spawn.Row = 18 }, true},
		{"spawn flush with floor", func(c *TetrisConfig) { c.Spawn.Row = 17 }, false},
		{"zero tick rate", func(c *TetrisConfig) { c.Timing.TickRate = 0 }, true},
		{"negative gravity", func(c *TetrisConfig) { c.Timing.GravityEvery = -1 }, true},
		{"negative release ticks", func(c *TetrisConfig) { c.Timing.SoftDropReleaseTicks = -3 }, true},
		{"zero lines per level", func(c *TetrisConfig) { c.Scoring.LinesPerLevel = 0 }, true},
		{"negative points", func(c *TetrisConfig) { c.Scoring.LineScores[2] = -100 }, true},
		{"zero-row score entry", func(c *TetrisConfig) { c.Scoring.LineScores[0] = 5 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultTetrisConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() error = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}

func TestGravityInterval(t *testing.T) {
	timing := TimingConfig{TickRate: 30}
	if got := timing.GravityInterval(); got != 30 {
		t.Errorf("GravityInterval() = %d, expected tick rate 30", got)
	}
	timing.GravityEvery = 5
	if got := timing.GravityInterval(); got != 5 {
		t.Errorf("GravityInterval() = %d, expected 5", got)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := DefaultTetrisConfig()
	cfg.Grid.Cols = 8

	data, err := Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	got, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if got.Grid.Cols != 8 {
		t.Errorf("grid.cols = %d, expected 8", got.Grid.Cols)
	}
}
