package game

import (
	"github.com/google/uuid"
	"golang.org/x/exp/rand"

	"gosnake/game/entity"
	"gosnake/game/manager"
	"gosnake/game/types"
)

// State is the session lifecycle. Running to GameOver is one way; a
// fresh round means a fresh Game.
type State int

const (
	Running State = iota
	GameOver
)

// Game wires one session together: grid, snake, food, collisions and
// score. All mutation goes through Update.
type Game struct {
	UUID       string
	grid       types.Grid
	difficulty types.Difficulty
	snake      *entity.Snake
	food       *manager.FoodManager
	collisions *manager.CollisionManager
	score      *manager.ScoreManager
	state      State
	gameOverAt float64
}

// NewGame assembles a session for the named difficulty. Unknown names
// fall back to Easy. The seed drives food placement, so two sessions
// with the same seed and inputs see the same food sequence.
func NewGame(difficulty string, seed uint64) *Game {
	grid := types.StandardGrid()
	diff := types.ParseDifficulty(difficulty)
	snake := entity.NewSnake(grid, diff)

	rng := rand.New(rand.NewSource(seed))
	food := manager.NewFoodManager(grid, rng, snake.Body())
	collisions := manager.NewCollisionManager(grid, snake, food)
	score := manager.NewScoreManager(collisions, snake.Len())

	return &Game{
		UUID:       uuid.New().String(),
		grid:       grid,
		difficulty: diff,
		snake:      snake,
		food:       food,
		collisions: collisions,
		score:      score,
		state:      Running,
	}
}

// Update runs one tick at the given clock reading: apply input, step
// the snake if its interval elapsed, then resolve collisions and
// score. The checks run on every tick, stepped or not. After game
// over it does nothing.
func (g *Game) Update(in types.Input, now float64) {
	if g.state == GameOver {
		return
	}

	g.snake.SetDirection(resolveDirection(g.snake.Direction(), in))
	g.snake.Advance(now)

	over := g.collisions.Resolve()
	g.score.Update()

	if over {
		g.state = GameOver
		g.gameOverAt = now
	}
}

func (g *Game) State() State {
	return g.state
}

func (g *Game) Over() bool {
	return g.state == GameOver
}

// GameOverElapsed returns the seconds since the session ended, which
// drives the overlay pulse. Zero while still running.
func (g *Game) GameOverElapsed(now float64) float64 {
	if g.state != GameOver {
		return 0
	}
	return now - g.gameOverAt
}

func (g *Game) Grid() types.Grid {
	return g.grid
}

func (g *Game) Difficulty() types.Difficulty {
	return g.difficulty
}

func (g *Game) Body() []types.Point {
	return g.snake.Body()
}

func (g *Game) Food() types.Point {
	return g.food.Pos()
}

func (g *Game) Score() int {
	return g.score.Score()
}

func (g *Game) Length() int {
	return g.score.Length()
}
