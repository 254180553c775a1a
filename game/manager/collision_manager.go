package manager

import (
	"snake-arcade/game/entity"
	"snake-arcade/game/types"
)

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// Classify reports what the snake's head ran into, wall taking precedence
func (cm *CollisionManager) Classify(snake *entity.Snake) types.CollisionType {
	if cm.isWallCollision(snake.Head()) {
		return types.WallCollision
	}
	if snake.HitsSelf() {
		return types.SelfCollision
	}
	return types.NoCollision
}

// IsFoodCollision checks if a position collides with food
func (cm *CollisionManager) IsFoodCollision(pos types.Point, food types.Point) bool {
	return pos == food
}

// IsDeadly reports whether moving the head onto pos would end the run.
// The tail cell is free because it moves away in the same step.
func (cm *CollisionManager) IsDeadly(pos types.Point, snake *entity.Snake) bool {
	if cm.isWallCollision(pos) {
		return true
	}
	for i := 0; i < snake.Len()-1; i++ {
		if pos == snake.Body[i] {
			return true
		}
	}
	return false
}

func (cm *CollisionManager) isWallCollision(pos types.Point) bool {
	return !cm.grid.InBounds(pos)
}
