package tetris

import "github.com/vovakirdan/tui-tetris/internal/core"

// Snapshot is a read-only copy of the session for drawing and for
// determinism tests.
type Snapshot struct {
	Tick       uint64
	Cols       int
	Rows       int
	Grid       [][]core.Color // [row][col], ColorDefault = empty
	HasPiece   bool
	PieceShape Shape
	PieceColor core.Color
	PieceCells []Point
	Score      int
	Level      int
	LevelLines int // rows cleared toward the next level
	Lines      int // rows cleared since the program started
	Status     Status
	SoftDrop   bool
	Quit       bool
}

// Snapshot copies the current state.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:       s.tick,
		Cols:       s.size.Cols,
		Rows:       s.size.Rows,
		Grid:       s.board.Cells(),
		Score:      s.score,
		Level:      s.level,
		LevelLines: s.levelLines,
		Lines:      s.totalLines,
		Status:     s.status,
		SoftDrop:   s.softDrop,
		Quit:       s.quit,
	}
	if s.figure != nil {
		snap.HasPiece = true
		snap.PieceShape = s.figure.Shape()
		snap.PieceColor = s.figure.Color()
		snap.PieceCells = s.figure.Cells()
	}
	return snap
}

// ColorAt returns what is visible at (col, row): the falling piece if it
// covers the cell, otherwise the frozen cell.
func (s Snapshot) ColorAt(col, row int) core.Color {
	if s.HasPiece {
		for _, p := range s.PieceCells {
			if p.col == col && p.row == row {
				return s.PieceColor
			}
		}
	}
	return s.Grid[row][col]
}
