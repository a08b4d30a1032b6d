// Package tetris implements the falling-block puzzle core: the playfield
// grid, the falling figures and the session state machine that sequences
// them every tick. It never imports the terminal frontend.
package tetris

import (
	"errors"
	"fmt"
)

// ErrOutOfBounds is returned when a coordinate falls outside the playfield.
var ErrOutOfBounds = errors.New("tetris: coordinate out of bounds")

// Size is the playfield size in cells.
type Size struct {
	Cols int
	Rows int
}

// Contains reports whether (col, row) lies inside the playfield.
func (s Size) Contains(col, row int) bool {
	return col >= 0 && col < s.Cols && row >= 0 && row < s.Rows
}

// Point builds a checked coordinate.
func (s Size) Point(col, row int) (Point, error) {
	if col < 0 || col >= s.Cols {
		return Point{}, fmt.Errorf("%w: col %d not in [0, %d]", ErrOutOfBounds, col, s.Cols-1)
	}
	if row < 0 || row >= s.Rows {
		return Point{}, fmt.Errorf("%w: row %d not in [0, %d]", ErrOutOfBounds, row, s.Rows-1)
	}
	return Point{col: col, row: row}, nil
}

// Point is an immutable (column, row) pair. Values are only produced by
// Size.Point and the checked setters, so a Point is always inside the Size
// that made it.
type Point struct {
	col int
	row int
}

// Col returns the column.
func (p Point) Col() int { return p.col }

// Row returns the row.
func (p Point) Row() int { return p.row }

// WithCol returns p moved to col. On failure p is returned unchanged.
func (p Point) WithCol(s Size, col int) (Point, error) {
	q, err := s.Point(col, p.row)
	if err != nil {
		return p, err
	}
	return q, nil
}

// WithRow returns p moved to row. On failure p is returned unchanged.
func (p Point) WithRow(s Size, row int) (Point, error) {
	q, err := s.Point(p.col, row)
	if err != nil {
		return p, err
	}
	return q, nil
}

// offset returns p shifted by (dc, dr) if the result stays in s.
func (p Point) offset(s Size, dc, dr int) (Point, bool) {
	if !s.Contains(p.col+dc, p.row+dr) {
		return p, false
	}
	return Point{col: p.col + dc, row: p.row + dr}, true
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.col, p.row)
}
