package main

import (
	"flag"
	"log"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"gosnake/game"
	"gosnake/game/types"
	"gosnake/ui"
)

func main() {
	difficulty := flag.String("difficulty", "Medium", "Difficulty: Easy, Medium or Hard")
	flag.Parse()

	rl.InitWindow(ui.WindowWidth, ui.WindowHeight, ui.WindowTitle)
	defer rl.CloseWindow()

	rl.SetTargetFPS(ui.TargetFPS)

	if err := ui.InitAudio(); err != nil {
		log.Printf("audio unavailable: %v", err)
	}

	g := newSession(*difficulty)
	renderer := ui.NewRenderer(g.Grid())

	for !rl.WindowShouldClose() {
		now := rl.GetTime()

		if g.Over() && rl.IsKeyPressed(rl.KeyEnter) {
			g = newSession(*difficulty)
		}

		prevScore := g.Score()
		wasOver := g.Over()

		g.Update(readInput(), now)

		if g.Score() > prevScore {
			ui.PlaySound(ui.SoundEat)
		}
		if g.Over() && !wasOver {
			ui.PlaySound(ui.SoundGameOver)
			log.Printf("session %s over: score=%d length=%d", g.UUID[:8], g.Score(), g.Length())
		}

		renderer.Draw(g, now)
	}
}

func newSession(difficulty string) *game.Game {
	g := game.NewGame(difficulty, uint64(time.Now().UnixNano()))
	log.Printf("session %s started: difficulty=%s", g.UUID[:8], g.Difficulty())
	return g
}

// readInput samples the movement keys. WASD and the arrow keys both
// steer.
func readInput() types.Input {
	return types.Input{
		Up:    rl.IsKeyDown(rl.KeyW) || rl.IsKeyDown(rl.KeyUp),
		Down:  rl.IsKeyDown(rl.KeyS) || rl.IsKeyDown(rl.KeyDown),
		Left:  rl.IsKeyDown(rl.KeyA) || rl.IsKeyDown(rl.KeyLeft),
		Right: rl.IsKeyDown(rl.KeyD) || rl.IsKeyDown(rl.KeyRight),
	}
}
