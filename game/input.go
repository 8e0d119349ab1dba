package game

import "snake-arena/game/types"

// Input is the host's debounced key state for the current frame.
type Input interface {
	// Held reports whether the key mapped to h is down this frame.
	Held(h types.Heading) bool
	// RestartPressed is a single-shot restart request.
	RestartPressed() bool
}

// inputPriority is the order keys are checked; the first held one wins.
var inputPriority = [...]types.Heading{types.Up, types.Down, types.Right, types.Left}

// applyInput sets at most one intent per frame.
func (g *Game) applyInput(in Input) {
	for _, h := range inputPriority {
		if in.Held(h) {
			g.snake.SetIntent(h)
			return
		}
	}
}

// KeyState is an Input backed by plain fields, for hosts that collect key events
// themselves and for replaying scripted input.
type KeyState struct {
	Pressed map[types.Heading]bool
	Restart bool
}

func NewKeyState() *KeyState {
	return &KeyState{Pressed: make(map[types.Heading]bool)}
}

func (k *KeyState) Held(h types.Heading) bool {
	return k.Pressed[h]
}

func (k *KeyState) RestartPressed() bool {
	return k.Restart
}

// Press marks h held.
func (k *KeyState) Press(h types.Heading) {
	k.Pressed[h] = true
}

// Clear releases all keys and the restart request.
func (k *KeyState) Clear() {
	for h := range k.Pressed {
		delete(k.Pressed, h)
	}
	k.Restart = false
}
