package manager

import (
	"snake-game/game/types"

	"golang.org/x/exp/rand"
)

type FoodManager struct {
	grid *types.Grid
	rng  *rand.Rand
	food types.Position
	has  bool
}

func NewFoodManager(grid *types.Grid, rng *rand.Rand) *FoodManager {
	return &FoodManager{
		grid: grid,
		rng:  rng,
	}
}

// GenerateFood marks a uniformly chosen Empty cell as Food. The candidates are
// enumerated row-major on every call. With no Empty cell left it does nothing
// and returns false.
func (fm *FoodManager) GenerateFood() (types.Position, bool) {
	empty := fm.grid.EmptyPositions()
	if len(empty) == 0 {
		fm.has = false
		return types.Position{}, false
	}

	pos := empty[fm.rng.Intn(len(empty))]
	fm.grid.Set(pos, types.Food)
	fm.food = pos
	fm.has = true
	return pos, true
}

// Eat records that the food cell was consumed.
func (fm *FoodManager) Eat(pos types.Position) {
	if fm.has && fm.food == pos {
		fm.has = false
	}
}

// GetFood returns the current food cell, if any.
func (fm *FoodManager) GetFood() (types.Position, bool) {
	return fm.food, fm.has
}

// PlaceFood puts food at pos, replacing any existing food cell.
func (fm *FoodManager) PlaceFood(pos types.Position) {
	if fm.has && fm.grid.At(fm.food) == types.Food {
		fm.grid.Set(fm.food, types.Empty)
	}
	fm.grid.Set(pos, types.Food)
	fm.food = pos
	fm.has = true
}
