package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/alexanderi96/snake/game/types"
)

var arrowKeys = []struct {
	key int32
	dir types.Direction
}{
	{rl.KeyUp, types.Up},
	{rl.KeyDown, types.Down},
	{rl.KeyLeft, types.Left},
	{rl.KeyRight, types.Right},
}

// PressedDirections returns the arrow keys pressed this frame, in a fixed
// order.
func PressedDirections() []types.Direction {
	var dirs []types.Direction
	for _, k := range arrowKeys {
		if rl.IsKeyPressed(k.key) {
			dirs = append(dirs, k.dir)
		}
	}
	return dirs
}
