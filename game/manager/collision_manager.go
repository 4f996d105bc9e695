package manager

import (
	"gosnake/game/entity"
	"gosnake/game/types"
)

// CollisionManager evaluates the per-tick checks against the snake's
// current head: food first, then border, then self. It reaches the
// snake and food only through their accessors, and its game-over flag
// latches: once set it is never cleared.
type CollisionManager struct {
	grid      types.Grid
	snake     *entity.Snake
	food      *FoodManager
	foodEaten bool
	gameOver  bool
}

func NewCollisionManager(grid types.Grid, snake *entity.Snake, food *FoodManager) *CollisionManager {
	return &CollisionManager{grid: grid, snake: snake, food: food}
}

// Resolve runs all three checks in order and returns the game-over
// flag. Every check runs on every tick; food-eaten and game-over are
// tracked independently.
func (cm *CollisionManager) Resolve() bool {
	head := cm.snake.Head()

	cm.checkFood(head)
	cm.checkBorder(head)
	cm.checkSelf(head)

	return cm.gameOver
}

func (cm *CollisionManager) checkFood(head types.Point) {
	if head != cm.food.Pos() {
		return
	}
	cm.foodEaten = true
	cm.snake.Grow()
	if !cm.food.Respawn(cm.snake.Body()) {
		// No free cell left to respawn into; the session cannot
		// continue, so the full board ends it.
		cm.gameOver = true
	}
}

func (cm *CollisionManager) checkBorder(head types.Point) {
	if !cm.grid.Contains(head) {
		cm.gameOver = true
	}
}

func (cm *CollisionManager) checkSelf(head types.Point) {
	for i := 1; i < cm.snake.Len(); i++ {
		if head == cm.snake.Segment(i) {
			cm.gameOver = true
			return
		}
	}
}

// ConsumeFoodEaten returns the one-shot food-eaten signal and clears
// it, so one eat feeds exactly one score update.
func (cm *CollisionManager) ConsumeFoodEaten() bool {
	eaten := cm.foodEaten
	cm.foodEaten = false
	return eaten
}
