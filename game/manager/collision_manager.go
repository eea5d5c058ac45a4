package manager

import (
	"github.com/alexanderi96/snake/game/entity"
	"github.com/alexanderi96/snake/game/types"
)

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
	BoardFull // no cell left for food
)

func (c CollisionType) String() string {
	switch c {
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	case BoardFull:
		return "board full"
	default:
		return "none"
	}
}

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// CheckCollision looks at the snake's head after a move. Walls are checked
// before the body.
func (cm *CollisionManager) CheckCollision(snake *entity.Snake) CollisionType {
	if cm.isWallCollision(snake.Head()) {
		return WallCollision
	}
	if snake.HitsItself() {
		return SelfCollision
	}
	return NoCollision
}

// IsDanger reports whether moving the head onto pos would end the round.
// The tail cell is considered safe unless the snake is about to grow, since
// it moves out of the way on the same tick.
func (cm *CollisionManager) IsDanger(pos types.Point, snake *entity.Snake) bool {
	if cm.isWallCollision(pos) {
		return true
	}
	body := snake.Body()
	if !snake.GrowthPending() {
		body = body[:len(body)-1]
	}
	for _, part := range body {
		if part == pos {
			return true
		}
	}
	return false
}

func (cm *CollisionManager) isWallCollision(pos types.Point) bool {
	return !cm.grid.Contains(pos)
}
