package manager

import (
	"snake-arena/game/types"
)

// Verdict classifies what the head ran into on a tick.
type Verdict int

const (
	NoCollision Verdict = iota
	WallCollision
	SelfCollision
	FoodCollision
)

func (v Verdict) String() string {
	switch v {
	case NoCollision:
		return "none"
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	case FoodCollision:
		return "food"
	}
	return "unknown"
}

// Fatal reports whether the verdict ends the session.
func (v Verdict) Fatal() bool {
	return v == WallCollision || v == SelfCollision
}

type CollisionManager struct {
	arena types.Arena
}

func NewCollisionManager(arena types.Arena) *CollisionManager {
	return &CollisionManager{
		arena: arena,
	}
}

// CheckCollision evaluates the post-move head against walls, then the body.
// segments must exclude the head.
func (cm *CollisionManager) CheckCollision(head types.Cell, segments []types.Cell) Verdict {
	// Check wall collision
	if cm.isWallCollision(head) {
		return WallCollision
	}

	// Check self collision
	for _, seg := range segments {
		if head == seg {
			return SelfCollision
		}
	}

	return NoCollision
}

// isWallCollision treats anything outside the rectangle as wall too
func (cm *CollisionManager) isWallCollision(pos types.Cell) bool {
	return !cm.arena.Contains(pos) || cm.arena.IsBoundary(pos)
}

// IsFoodCollision checks if the head landed on the food. Absent food never matches.
func (cm *CollisionManager) IsFoodCollision(head types.Cell, food types.Cell, present bool) bool {
	return present && head == food
}

// Check runs the full verdict for one tick: a fatal hit always wins over food.
func (cm *CollisionManager) Check(head types.Cell, segments []types.Cell, food types.Cell, foodPresent bool) Verdict {
	if v := cm.CheckCollision(head, segments); v.Fatal() {
		return v
	}
	if cm.IsFoodCollision(head, food, foodPresent) {
		return FoodCollision
	}
	return NoCollision
}
