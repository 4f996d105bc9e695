package types

// Point is a board position in world units. Cell-aligned points are a
// multiple of the cell size offset by the board origin.
type Point struct {
	X, Y int
}

// Translate returns the point moved step units along d.
func (p Point) Translate(d Direction, step int) Point {
	return Point{X: p.X + d.X*step, Y: p.Y + d.Y*step}
}

// Direction is a unit move vector. The zero value means "no heading"
// and never occurs on a live snake.
type Direction struct {
	X, Y int
}

var (
	DirUp    = Direction{0, -1}
	DirDown  = Direction{0, 1}
	DirLeft  = Direction{-1, 0}
	DirRight = Direction{1, 0}
)

// IsZero reports whether d carries no heading.
func (d Direction) IsZero() bool {
	return d.X == 0 && d.Y == 0
}

// IsOpposite reports whether other is the exact reverse of d. The zero
// vector has no reverse.
func (d Direction) IsOpposite(other Direction) bool {
	if d.IsZero() {
		return false
	}
	return other.X == -d.X && other.Y == -d.Y
}

// Input is the pressed state of the four movement keys, sampled once
// per tick. It is the only input the simulation reads.
type Input struct {
	Up    bool
	Down  bool
	Left  bool
	Right bool
}
