package ui

import (
	"fmt"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"gosnake/game"
	"gosnake/game/types"
)

const (
	WindowWidth  = 900
	WindowHeight = 950
	WindowTitle  = "Snake"
	TargetFPS    = 60
)

const (
	borderThickness = 8
	hudFontSize     = 50
	overlayFontSize = 80
	hintFontSize    = 20
	footerFontSize  = 20
	overlayPulse    = 3
)

var (
	backgroundColor = rl.Color{R: 73, G: 98, B: 58, A: 191}
	gridLineColor   = rl.Color{R: 200, G: 200, B: 200, A: 50}
	foodColor       = rl.Color{R: 255, G: 50, B: 50, A: 191}
)

// Renderer draws a session frame by frame. It holds the grid so every
// draw call shares the simulation's geometry.
type Renderer struct {
	grid types.Grid
}

func NewRenderer(grid types.Grid) *Renderer {
	return &Renderer{grid: grid}
}

// Draw renders one frame: board, food, snake, HUD and, once the
// session is over, the pulsing overlay.
func (r *Renderer) Draw(g *game.Game, now float64) {
	rl.BeginDrawing()
	rl.ClearBackground(backgroundColor)

	r.drawBoard()
	r.drawFood(g.Food())
	r.drawSnake(g.Body())
	r.drawHUD(g)

	if g.Over() {
		r.drawGameOver(g.GameOverElapsed(now))
	}

	rl.EndDrawing()
}

func (r *Renderer) drawBoard() {
	offset := int32(r.grid.Offset)
	cell := int32(r.grid.CellSize)
	cols := int32(r.grid.Cols())
	rows := int32(r.grid.Rows())

	for i := int32(0); i <= rows; i++ {
		rl.DrawLine(offset, offset+i*cell, offset+cols*cell, offset+i*cell, gridLineColor)
	}
	for j := int32(0); j <= cols; j++ {
		rl.DrawLine(offset+j*cell, offset, offset+j*cell, offset+rows*cell, gridLineColor)
	}

	border := rl.NewRectangle(
		float32(r.grid.Offset-borderThickness),
		float32(r.grid.Offset-borderThickness),
		float32(r.grid.Width+2*borderThickness),
		float32(r.grid.Height+2*borderThickness),
	)
	rl.DrawRectangleLinesEx(border, borderThickness, rl.Black)
}

func (r *Renderer) drawSnake(body []types.Point) {
	cell := float32(r.grid.CellSize)
	for _, p := range body {
		seg := rl.NewRectangle(float32(p.X), float32(p.Y), cell, cell)
		rl.DrawRectangleRounded(seg, 0.5, 10, rl.Purple)
	}
}

func (r *Renderer) drawFood(p types.Point) {
	cell := float32(r.grid.CellSize)
	rl.DrawRectangleRounded(rl.NewRectangle(float32(p.X), float32(p.Y), cell, cell), 0.5, 10, foodColor)
}

func (r *Renderer) drawHUD(g *game.Game) {
	hudY := int32(r.grid.Height + r.grid.Offset + r.grid.Offset/2)

	rl.DrawText(fmt.Sprintf("Score : %d", g.Score()), int32(r.grid.Offset), hudY, hudFontSize, rl.Orange)
	rl.DrawText(fmt.Sprintf("Length : %d", g.Length()), int32(r.grid.Width-4*r.grid.Offset), hudY, hudFontSize, rl.Orange)

	footer := fmt.Sprintf("%s session %s", g.Difficulty(), g.UUID[:8])
	rl.DrawText(footer, int32(r.grid.Offset), WindowHeight-footerFontSize-5, footerFontSize, rl.Gray)
}

func (r *Renderer) drawGameOver(elapsed float64) {
	alpha := uint8((math.Sin(elapsed*overlayPulse) + 1) * 0.5 * 255)
	flashing := rl.Color{R: 255, G: 0, B: 0, A: alpha}

	rl.DrawText("GAME OVER!", int32(r.grid.Width/2-4*r.grid.CellSize), int32(r.grid.Height/2), overlayFontSize, flashing)

	hint := "Press ENTER for a new game"
	hintWidth := rl.MeasureText(hint, hintFontSize)
	rl.DrawText(hint, (WindowWidth-hintWidth)/2, int32(r.grid.Height/2)+overlayFontSize+20, hintFontSize, rl.White)
}
