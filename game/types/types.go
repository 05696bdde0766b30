package types

import "fmt"

// Board constants
const (
	InitialLength       = 3 // Segments in a freshly placed snake
	InitialCol          = 1 // Column of the initial tail-end segment
	MaxQueuedDirections = 2 // Pending direction changes accepted ahead of the tick
	MinRows             = 1
	MinCols             = InitialCol + InitialLength
)

// Position is a (row, col) cell coordinate. It is a value type; == compares structurally.
type Position struct {
	Row int
	Col int
}

// Translate returns the position offset by one step in dir. No bounds checking.
func (p Position) Translate(dir Direction) Position {
	return Position{Row: p.Row + dir.RowOffset, Col: p.Col + dir.ColOffset}
}

// Adjacent reports whether q differs from p by exactly one unit along one axis.
func (p Position) Adjacent(q Position) bool {
	dr := abs(p.Row - q.Row)
	dc := abs(p.Col - q.Col)
	return dr+dc == 1
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Direction is a unit vector over the grid.
type Direction struct {
	RowOffset int
	ColOffset int
}

var (
	Up    = Direction{RowOffset: -1, ColOffset: 0}
	Down  = Direction{RowOffset: 1, ColOffset: 0}
	Left  = Direction{RowOffset: 0, ColOffset: -1}
	Right = Direction{RowOffset: 0, ColOffset: 1}
)

// Directions lists the four directions in clockwise order starting at Up.
var Directions = [4]Direction{Up, Right, Down, Left}

// Opposite maps Up<->Down and Left<->Right.
func (d Direction) Opposite() Direction {
	return Direction{RowOffset: -d.RowOffset, ColOffset: -d.ColOffset}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return fmt.Sprintf("direction(%d,%d)", d.RowOffset, d.ColOffset)
}

// Cell is the content of a grid cell. Outside never appears in a grid; it is
// only returned when classifying a position beyond the board.
type Cell uint8

const (
	Empty Cell = iota
	Snake
	Food
	Outside
)

func (c Cell) String() string {
	switch c {
	case Empty:
		return "empty"
	case Snake:
		return "snake"
	case Food:
		return "food"
	case Outside:
		return "outside"
	}
	return fmt.Sprintf("cell(%d)", uint8(c))
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Grid is a fixed Rows x Cols board of cells stored row-major.
type Grid struct {
	Rows  int
	Cols  int
	cells []Cell
}

// NewGrid allocates an all-Empty grid.
func NewGrid(rows, cols int) *Grid {
	return &Grid{Rows: rows, Cols: cols, cells: make([]Cell, rows*cols)}
}

// InBounds reports whether p lies on the board.
func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.Rows && p.Col >= 0 && p.Col < g.Cols
}

// At returns the cell at p, or Outside when p is off the board.
func (g *Grid) At(p Position) Cell {
	if !g.InBounds(p) {
		return Outside
	}
	return g.cells[p.Row*g.Cols+p.Col]
}

// Set stores c at p. p must be in bounds.
func (g *Grid) Set(p Position, c Cell) {
	g.cells[p.Row*g.Cols+p.Col] = c
}

// EmptyPositions enumerates Empty cells in row-major order.
func (g *Grid) EmptyPositions() []Position {
	var empty []Position
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			if g.cells[r*g.Cols+c] == Empty {
				empty = append(empty, Position{Row: r, Col: c})
			}
		}
	}
	return empty
}

// Count returns how many cells hold c.
func (g *Grid) Count(c Cell) int {
	n := 0
	for _, v := range g.cells {
		if v == c {
			n++
		}
	}
	return n
}

// Rows2D returns a detached copy of the board as rows of cells.
func (g *Grid) Rows2D() [][]Cell {
	out := make([][]Cell, g.Rows)
	for r := range out {
		out[r] = make([]Cell, g.Cols)
		copy(out[r], g.cells[r*g.Cols:(r+1)*g.Cols])
	}
	return out
}
