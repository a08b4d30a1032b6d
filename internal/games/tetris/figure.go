package tetris

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Shape identifies one of the six pieces in the catalogue.
type Shape int

const (
	ShapeO Shape = iota
	ShapeT
	ShapeL
	ShapeI
	ShapeS
	ShapeZ
)

var shapeNames = [...]string{"O", "T", "L", "I", "S", "Z"}

func (s Shape) String() string {
	if s < 0 || int(s) >= len(shapeNames) {
		return "?"
	}
	return shapeNames[s]
}

// Template is a shape matrix indexed [row][col]; true marks a cell the piece
// occupies relative to its anchor.
type Template [][]bool

var templates = map[Shape]Template{
	ShapeO: {
		{true, true},
		{true, true},
	},
	ShapeT: {
		{true, true, true},
		{false, true, false},
	},
	ShapeL: {
		{true, false},
		{true, false},
		{true, true},
	},
	ShapeI: {
		{true},
		{true},
		{true},
	},
	ShapeS: {
		{false, true, true},
		{true, true, false},
	},
	ShapeZ: {
		{true, true, false},
		{false, true, true},
	},
}

// Palette is the set of colors a spawned piece can take.
var Palette = []core.Color{
	core.ColorBrightGreen,
	core.ColorBrightMagenta,
	core.ColorBlue,
	core.ColorOrange,
	core.ColorBrightYellow,
	core.ColorRed,
}

// Shapes returns the catalogue in spawn order.
func Shapes() []Shape {
	return []Shape{ShapeO, ShapeT, ShapeL, ShapeI, ShapeS, ShapeZ}
}

// Template returns a copy of the shape's spawn orientation.
func (s Shape) Template() Template {
	t, ok := templates[s]
	if !ok {
		panic(fmt.Sprintf("tetris: unknown shape %d", int(s)))
	}
	return t.clone()
}

func (t Template) clone() Template {
	out := make(Template, len(t))
	for r, row := range t {
		out[r] = append([]bool(nil), row...)
	}
	return out
}

// Width returns the number of columns.
func (t Template) Width() int {
	if len(t) == 0 {
		return 0
	}
	return len(t[0])
}

// Height returns the number of rows.
func (t Template) Height() int { return len(t) }

// Count returns the number of occupied cells.
func (t Template) Count() int {
	n := 0
	for _, row := range t {
		for _, on := range row {
			if on {
				n++
			}
		}
	}
	return n
}

// Rotate returns t turned 90 degrees counter-clockwise.
func (t Template) Rotate() Template {
	h, w := t.Height(), t.Width()
	out := make(Template, w)
	for i := range out {
		out[i] = make([]bool, h)
		for j := 0; j < h; j++ {
			out[i][j] = t[j][w-1-i]
		}
	}
	return out
}

// Equal reports whether two templates have the same cells.
func (t Template) Equal(o Template) bool {
	if t.Height() != o.Height() || t.Width() != o.Width() {
		return false
	}
	for r := range t {
		for c := range t[r] {
			if t[r][c] != o[r][c] {
				return false
			}
		}
	}
	return true
}

// OccupiedCells maps t through anchor. It reports false, with no cells, if
// any cell falls outside size.
func OccupiedCells(t Template, anchor Point, size Size) ([]Point, bool) {
	cells := make([]Point, 0, t.Count())
	for r, row := range t {
		for c, on := range row {
			if !on {
				continue
			}
			p, ok := anchor.offset(size, c, r)
			if !ok {
				return nil, false
			}
			cells = append(cells, p)
		}
	}
	return cells, true
}

// Occupancy answers whether a cell is already taken. *Board implements it.
type Occupancy interface {
	Occupied(p Point) bool
}

// Figure is the falling piece. Its cells are always OccupiedCells(template,
// anchor), recomputed after every change to either.
type Figure struct {
	shape    Shape
	template Template
	color    core.Color
	anchor   Point
	cells    []Point
	size     Size
}

// NewFigure places shape at anchor in its spawn orientation.
func NewFigure(shape Shape, color core.Color, anchor Point, size Size) (*Figure, error) {
	t := shape.Template()
	cells, ok := OccupiedCells(t, anchor, size)
	if !ok {
		return nil, fmt.Errorf("tetris: %s piece at %s: %w", shape, anchor, ErrOutOfBounds)
	}
	return &Figure{
		shape:    shape,
		template: t,
		color:    color,
		anchor:   anchor,
		cells:    cells,
		size:     size,
	}, nil
}

// SpawnFigure picks a shape and a color uniformly from rng and places the
// piece at anchor.
func SpawnFigure(rng *rand.Rand, anchor Point, size Size) (*Figure, error) {
	shapes := Shapes()
	shape := shapes[rng.Intn(len(shapes))]
	color := Palette[rng.Intn(len(Palette))]
	return NewFigure(shape, color, anchor, size)
}

// Shape returns the catalogue entry the figure was spawned from.
func (f *Figure) Shape() Shape { return f.shape }

// Color returns the figure color.
func (f *Figure) Color() core.Color { return f.color }

// Anchor returns the rotation point.
func (f *Figure) Anchor() Point { return f.anchor }

// Template returns a copy of the current orientation.
func (f *Figure) Template() Template { return f.template.clone() }

// Cells returns a copy of the occupied coordinates.
func (f *Figure) Cells() []Point {
	return append([]Point(nil), f.cells...)
}

// MoveDown shifts the figure one row down. It does not look at frozen
// cells; callers check Board.CheckVerticalCollision first. A shift that
// would leave the board is ignored.
func (f *Figure) MoveDown() bool {
	return f.shift(0, 1, nil)
}

// MoveLeft shifts the figure one column left unless a cell would leave the
// board or land on an occupied cell.
func (f *Figure) MoveLeft(grid Occupancy) bool {
	return f.shift(-1, 0, grid)
}

// MoveRight is MoveLeft's mirror.
func (f *Figure) MoveRight(grid Occupancy) bool {
	return f.shift(1, 0, grid)
}

func (f *Figure) shift(dc, dr int, grid Occupancy) bool {
	anchor, ok := f.anchor.offset(f.size, dc, dr)
	if !ok {
		return false
	}
	cells := make([]Point, len(f.cells))
	for i, p := range f.cells {
		q, ok := p.offset(f.size, dc, dr)
		if !ok {
			return false
		}
		if grid != nil && grid.Occupied(q) {
			return false
		}
		cells[i] = q
	}
	f.anchor = anchor
	f.cells = cells
	return true
}

// Rotate turns the figure 90 degrees counter-clockwise around its anchor.
// If any resulting cell would leave the board nothing changes. Frozen cells
// are not consulted, so a piece can rotate into the stack.
func (f *Figure) Rotate() bool {
	t := f.template.Rotate()
	cells, ok := OccupiedCells(t, f.anchor, f.size)
	if !ok {
		return false
	}
	f.template = t
	f.cells = cells
	return true
}
