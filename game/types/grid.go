package types

// Board geometry in world units. The playfield is a fixed square of
// Cols x Rows cells drawn Offset units from the window origin; none of
// it is configurable at runtime.
const (
	CellSize   = 50
	Offset     = 50
	GridWidth  = 800
	GridHeight = 800

	Cols = GridWidth / CellSize
	Rows = GridHeight / CellSize
)

// Grid converts between cell indices and world coordinates and answers
// bounds queries for one rectangular board.
type Grid struct {
	CellSize int
	Offset   int
	Width    int
	Height   int
}

// StandardGrid returns the board every session plays on.
func StandardGrid() Grid {
	return Grid{
		CellSize: CellSize,
		Offset:   Offset,
		Width:    GridWidth,
		Height:   GridHeight,
	}
}

func (g Grid) Cols() int { return g.Width / g.CellSize }
func (g Grid) Rows() int { return g.Height / g.CellSize }

// CellOrigin returns the world coordinate of the top-left corner of
// the cell at (col, row).
func (g Grid) CellOrigin(col, row int) Point {
	return Point{
		X: g.Offset + col*g.CellSize,
		Y: g.Offset + row*g.CellSize,
	}
}

// Contains reports whether p lies on the board. The upper bound is
// half-open: the last valid cell origin per axis sits one cell inside
// Offset+Width.
func (g Grid) Contains(p Point) bool {
	return p.X >= g.Offset && p.X < g.Offset+g.Width &&
		p.Y >= g.Offset && p.Y < g.Offset+g.Height
}
