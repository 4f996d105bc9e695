package manager

import (
	"golang.org/x/exp/rand"

	"gosnake/game/types"
)

// FoodManager owns the single live food cell. Placement is rejection
// sampling: draw uniform cells until one misses the body. The loop is
// iterative so a long snake cannot blow the stack.
type FoodManager struct {
	grid types.Grid
	rng  *rand.Rand
	pos  types.Point
}

// NewFoodManager places the first food for the given starting body.
func NewFoodManager(grid types.Grid, rng *rand.Rand, body []types.Point) *FoodManager {
	fm := &FoodManager{grid: grid, rng: rng}
	fm.Respawn(body)
	return fm
}

// Pos returns the current food cell.
func (fm *FoodManager) Pos() types.Point { return fm.pos }

// Respawn draws a fresh food cell not occupied by any body segment.
// It reports false when the body covers the whole board, in which case
// the food is left where it was.
func (fm *FoodManager) Respawn(body []types.Point) bool {
	if len(body) >= fm.grid.Cols()*fm.grid.Rows() {
		return false
	}
	for {
		col := fm.rng.Intn(fm.grid.Cols())
		row := fm.rng.Intn(fm.grid.Rows())
		pos := fm.grid.CellOrigin(col, row)
		if !occupied(body, pos) {
			fm.pos = pos
			return true
		}
	}
}

func occupied(body []types.Point, p types.Point) bool {
	for _, cell := range body {
		if cell == p {
			return true
		}
	}
	return false
}
