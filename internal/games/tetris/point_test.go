package tetris

import (
	"errors"
	"testing"
)

func mustPoint(t *testing.T, s Size, col, row int) Point {
	t.Helper()
	p, err := s.Point(col, row)
	if err != nil {
		t.Fatalf("Point(%d, %d): %v", col, row, err)
	}
	return p
}

func TestSizePoint(t *testing.T) {
	size := Size{Cols: 10, Rows: 20}

	tests := []struct {
		name    string
		col     int
		row     int
		wantErr bool
	}{
		{"origin", 0, 0, false},
		{"far corner", 9, 19, false},
		{"negative col", -1, 0, true},
		{"col past edge", 10, 0, true},
		{"negative row", 0, -1, true},
		{"row past floor", 0, 20, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := size.Point(tt.col, tt.row)
			if tt.wantErr {
				if !errors.Is(err, ErrOutOfBounds) {
					t.Errorf("Point(%d, %d) error = %v, want ErrOutOfBounds", tt.col, tt.row, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Point(%d, %d) unexpected error: %v", tt.col, tt.row, err)
			}
			if p.Col() != tt.col || p.Row() != tt.row {
				t.Errorf("Point(%d, %d) = %s", tt.col, tt.row, p)
			}
		})
	}
}

func TestPointSetters(t *testing.T) {
	size := Size{Cols: 4, Rows: 4}
	p := mustPoint(t, size, 1, 2)

	q, err := p.WithCol(size, 3)
	if err != nil || q.Col() != 3 || q.Row() != 2 {
		t.Errorf("WithCol(3) = %s, %v", q, err)
	}

	q, err = p.WithRow(size, 0)
	if err != nil || q.Col() != 1 || q.Row() != 0 {
		t.Errorf("WithRow(0) = %s, %v", q, err)
	}

	q, err = p.WithCol(size, 4)
	if !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("WithCol(4) error = %v, want ErrOutOfBounds", err)
	}
	if q != p {
		t.Errorf("WithCol(4) = %s, want unchanged %s", q, p)
	}

	q, err = p.WithRow(size, -1)
	if !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("WithRow(-1) error = %v, want ErrOutOfBounds", err)
	}
	if q != p {
		t.Errorf("WithRow(-1) = %s, want unchanged %s", q, p)
	}
}
