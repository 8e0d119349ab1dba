package ui

import (
	"snake-arena/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// headingKeys maps each heading to the WASD key and the arrow key
var headingKeys = map[types.Heading][2]int32{
	types.Up:    {rl.KeyW, rl.KeyUp},
	types.Right: {rl.KeyD, rl.KeyRight},
	types.Down:  {rl.KeyS, rl.KeyDown},
	types.Left:  {rl.KeyA, rl.KeyLeft},
}

// KeyboardInput reads raylib's per-frame key state.
type KeyboardInput struct{}

func (KeyboardInput) Held(h types.Heading) bool {
	keys, ok := headingKeys[h]
	if !ok {
		return false
	}
	return rl.IsKeyDown(keys[0]) || rl.IsKeyDown(keys[1])
}

func (KeyboardInput) RestartPressed() bool {
	return rl.IsKeyPressed(rl.KeyR)
}

// QuitPressed reports Q; Escape is handled by raylib's WindowShouldClose.
func (KeyboardInput) QuitPressed() bool {
	return rl.IsKeyPressed(rl.KeyQ)
}
