package game

import (
	"snake-game/game/types"
)

// View is a detached snapshot of an Engine for presentation. Frontends read
// views; they never hold the engine's board or body.
type View struct {
	Rows      int
	Cols      int
	Cells     [][]types.Cell
	Body      []types.Position // head first
	Direction types.Direction
	Score     int
	GameOver  bool
	Food      types.Position
	HasFood   bool
}

// Snapshot captures the current session state.
func (e *Engine) Snapshot() View {
	food, hasFood := e.FoodPosition()
	return View{
		Rows:      e.rows,
		Cols:      e.cols,
		Cells:     e.Grid(),
		Body:      e.SnakePositions(),
		Direction: e.dir,
		Score:     e.Score(),
		GameOver:  e.GameOver(),
		Food:      food,
		HasFood:   hasFood,
	}
}

// Head returns the first body segment.
func (v View) Head() types.Position {
	return v.Body[0]
}

// At returns the cell at (row, col), or Outside for positions off the board.
func (v View) At(row, col int) types.Cell {
	if row < 0 || row >= v.Rows || col < 0 || col >= v.Cols {
		return types.Outside
	}
	return v.Cells[row][col]
}
