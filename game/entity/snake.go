package entity

import "gosnake/game/types"

// Snake is the player body plus its movement state. Movement is
// scheduled, not continuous: Advance only steps the body once the
// difficulty interval has elapsed since the previous step.
type Snake struct {
	body     *body
	dir      types.Direction
	growNext bool
	interval float64
	lastStep float64
	grid     types.Grid
}

// NewSnake places a two-segment snake heading left: head one cell left
// of the board midpoint, trailing segment on the midpoint, both on the
// middle row. The step interval is fixed here from the difficulty tier
// and never changes for the life of the snake.
func NewSnake(grid types.Grid, difficulty types.Difficulty) *Snake {
	s := &Snake{
		body:     newBody(8),
		dir:      types.DirLeft,
		interval: difficulty.Interval(),
		grid:     grid,
	}
	midX, midY := grid.Width/2, grid.Height/2
	s.body.pushFront(types.Point{X: midX, Y: midY - grid.CellSize})
	s.body.pushFront(types.Point{X: midX - grid.CellSize, Y: midY - grid.CellSize})
	return s
}

// Head returns the leading cell.
func (s *Snake) Head() types.Point { return s.body.at(0) }

// Segment returns the cell at index i, head first.
func (s *Snake) Segment(i int) types.Point { return s.body.at(i) }

// Len returns the number of body cells.
func (s *Snake) Len() int { return s.body.len() }

// Body copies the cells head-first into a fresh slice.
func (s *Snake) Body() []types.Point { return s.body.snapshot() }

// Direction returns the current heading.
func (s *Snake) Direction() types.Direction { return s.dir }

// SetDirection updates the heading. The zero vector is ignored so the
// snake never loses its heading.
func (s *Snake) SetDirection(d types.Direction) {
	if d.IsZero() {
		return
	}
	s.dir = d
}

// Grow marks the next step to keep its tail, lengthening the body by
// one cell.
func (s *Snake) Grow() { s.growNext = true }

// Advance steps the body one cell along the heading when the interval
// has elapsed, and reports whether a step happened. Calls inside the
// interval leave the body untouched.
func (s *Snake) Advance(now float64) bool {
	if now-s.lastStep < s.interval {
		return false
	}
	s.lastStep = now

	s.body.pushFront(s.Head().Translate(s.dir, s.grid.CellSize))
	if s.growNext {
		s.growNext = false
	} else {
		s.body.popBack()
	}
	return true
}
