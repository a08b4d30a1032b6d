package tetris

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Direction is a horizontal move direction.
type Direction int

const (
	DirLeft Direction = iota
	DirRight
)

// delta returns the column step for d. Any other value is a caller bug.
func (d Direction) delta() int {
	switch d {
	case DirLeft:
		return -1
	case DirRight:
		return 1
	}
	panic(fmt.Sprintf("tetris: invalid direction %d", int(d)))
}

func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	}
	return "invalid"
}

// Board is the playfield occupancy matrix, indexed [row][col] with row 0 at
// the top. core.ColorDefault marks an empty cell; any other value is the
// color of the frozen piece that occupies it.
type Board struct {
	size  Size
	cells [][]core.Color
}

// NewBoard returns an empty board.
func NewBoard(size Size) *Board {
	b := &Board{size: size}
	b.Clear()
	return b
}

// Size returns the board dimensions.
func (b *Board) Size() Size { return b.size }

// Clear empties every cell.
func (b *Board) Clear() {
	b.cells = make([][]core.Color, b.size.Rows)
	for r := range b.cells {
		b.cells[r] = emptyRow(b.size.Cols)
	}
}

func emptyRow(cols int) []core.Color {
	return make([]core.Color, cols)
}

// At returns the color stored at p.
func (b *Board) At(p Point) core.Color {
	return b.cells[p.row][p.col]
}

// Occupied reports whether p holds a frozen cell.
func (b *Board) Occupied(p Point) bool {
	return b.cells[p.row][p.col] != core.ColorDefault
}

// set writes a single cell.
func (b *Board) set(p Point, c core.Color) {
	b.cells[p.row][p.col] = c
}

// Cells returns a copy of the matrix.
func (b *Board) Cells() [][]core.Color {
	out := make([][]core.Color, len(b.cells))
	for r, row := range b.cells {
		out[r] = append([]core.Color(nil), row...)
	}
	return out
}

func rowEmpty(row []core.Color) bool {
	for _, c := range row {
		if c != core.ColorDefault {
			return false
		}
	}
	return true
}

func rowFull(row []core.Color) bool {
	for _, c := range row {
		if c == core.ColorDefault {
			return false
		}
	}
	return true
}

// GameOver reports whether every row holds at least one occupied cell.
//
// This is not the usual "stack reached the top" rule: a stack that touches
// the top row in one column while leaving an empty row lower down does not
// end the game. The rule is kept as the game has always played it.
func (b *Board) GameOver() bool {
	for _, row := range b.cells {
		if rowEmpty(row) {
			return false
		}
	}
	return true
}

// ClearFullRows removes every full row, inserting an empty row at the top
// for each one, and returns how many were removed.
func (b *Board) ClearFullRows() int {
	kept := make([][]core.Color, 0, len(b.cells))
	for _, row := range b.cells {
		if !rowFull(row) {
			kept = append(kept, row)
		}
	}

	cleared := len(b.cells) - len(kept)
	if cleared == 0 {
		return 0
	}

	rows := make([][]core.Color, 0, len(b.cells))
	for i := 0; i < cleared; i++ {
		rows = append(rows, emptyRow(b.size.Cols))
	}
	b.cells = append(rows, kept...)
	return cleared
}

// Freeze writes the figure's color into every cell it occupies.
func (b *Board) Freeze(f *Figure) {
	for _, p := range f.cells {
		b.set(p, f.color)
	}
}

// CheckVerticalCollision reports whether f rests on the floor or on a frozen
// cell.
func (b *Board) CheckVerticalCollision(f *Figure) bool {
	for _, p := range f.cells {
		below, ok := p.offset(b.size, 0, 1)
		if !ok || b.Occupied(below) {
			return true
		}
	}
	return false
}

// CheckHorizontalCollision reports whether f can shift one column in dir.
// It returns false when any cell would leave the board or land on a frozen
// cell. An invalid dir panics.
func (b *Board) CheckHorizontalCollision(f *Figure, dir Direction) bool {
	dc := dir.delta()
	for _, p := range f.cells {
		next, ok := p.offset(b.size, dc, 0)
		if !ok || b.Occupied(next) {
			return false
		}
	}
	return true
}
