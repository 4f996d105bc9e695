package game

import "gosnake/game/types"

// resolveDirection maps the pressed keys onto the snake's next
// heading. Keys are tried in up, down, left, right order; the first
// pressed key that is not a reversal of the current heading wins. With
// no usable key the current heading is kept.
func resolveDirection(current types.Direction, in types.Input) types.Direction {
	switch {
	case in.Up && !types.DirUp.IsOpposite(current):
		return types.DirUp
	case in.Down && !types.DirDown.IsOpposite(current):
		return types.DirDown
	case in.Left && !types.DirLeft.IsOpposite(current):
		return types.DirLeft
	case in.Right && !types.DirRight.IsOpposite(current):
		return types.DirRight
	}
	return current
}
