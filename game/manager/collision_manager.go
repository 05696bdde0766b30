package manager

import (
	"snake-game/game/types"
)

type CollisionManager struct {
	grid *types.Grid
}

func NewCollisionManager(grid *types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// WillHit classifies the cell the head is about to enter. The current tail
// counts as Empty because it vacates its cell during the same step.
func (cm *CollisionManager) WillHit(newHead, tail types.Position) types.Cell {
	if cm.isWallCollision(newHead) {
		return types.Outside
	}

	if newHead == tail {
		return types.Empty
	}

	return cm.grid.At(newHead)
}

// IsFatal reports whether entering a cell of the given class ends the game.
func (cm *CollisionManager) IsFatal(hit types.Cell) bool {
	return hit == types.Outside || hit == types.Snake
}

// isWallCollision checks if a position lies beyond the board edges
func (cm *CollisionManager) isWallCollision(pos types.Position) bool {
	return !cm.grid.InBounds(pos)
}
