package terminal

import (
	"snake-arena/game/types"

	"github.com/gdamore/tcell/v2"
)

// Input collects key events between frames. Terminals report presses only, so a key
// counts as held for the frame it arrived in.
type Input struct {
	held    map[types.Heading]bool
	restart bool
	quit    bool
}

func NewInput() *Input {
	return &Input{held: make(map[types.Heading]bool)}
}

// HandleEvent records key events and ignores everything else.
func (in *Input) HandleEvent(ev tcell.Event) {
	if key, ok := ev.(*tcell.EventKey); ok {
		in.HandleKey(key.Key(), key.Rune())
	}
}

func (in *Input) HandleKey(key tcell.Key, r rune) {
	switch key {
	case tcell.KeyUp:
		in.held[types.Up] = true
	case tcell.KeyDown:
		in.held[types.Down] = true
	case tcell.KeyLeft:
		in.held[types.Left] = true
	case tcell.KeyRight:
		in.held[types.Right] = true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		in.quit = true
	case tcell.KeyRune:
		switch r {
		case 'w', 'W':
			in.held[types.Up] = true
		case 's', 'S':
			in.held[types.Down] = true
		case 'a', 'A':
			in.held[types.Left] = true
		case 'd', 'D':
			in.held[types.Right] = true
		case 'r', 'R':
			in.restart = true
		case 'q', 'Q':
			in.quit = true
		}
	}
}

func (in *Input) Held(h types.Heading) bool {
	return in.held[h]
}

func (in *Input) RestartPressed() bool {
	return in.restart
}

// Quit stays set once requested.
func (in *Input) Quit() bool {
	return in.quit
}

// EndFrame releases keys consumed by the frame.
func (in *Input) EndFrame() {
	for h := range in.held {
		delete(in.held, h)
	}
	in.restart = false
}
