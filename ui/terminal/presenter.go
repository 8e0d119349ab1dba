// Package terminal renders snapshots and reads keys on a tcell screen, one character per cell.
package terminal

import (
	"fmt"

	"snake-arena/game"
	"snake-arena/game/manager"
	"snake-arena/game/types"

	"github.com/gdamore/tcell/v2"
)

// Glyphs for each entity kind
const (
	WallRune    = '#'
	HeadRune    = 'Ö'
	SegmentRune = 'O'
	FoodRune    = '+'
)

type Presenter struct {
	screen     tcell.Screen
	wallStyle  tcell.Style
	snakeStyle tcell.Style
	foodStyle  tcell.Style
	textStyle  tcell.Style
	offsetX    int
	offsetY    int
}

func NewPresenter(screen tcell.Screen) *Presenter {
	return &Presenter{
		screen:     screen,
		wallStyle:  tcell.StyleDefault.Foreground(tcell.ColorDarkGreen),
		snakeStyle: tcell.StyleDefault.Foreground(tcell.ColorPink),
		foodStyle:  tcell.StyleDefault.Foreground(tcell.ColorRed),
		textStyle:  tcell.StyleDefault,
		offsetY:    1,
	}
}

// Transform maps a cell to screen coordinates; row 0 is the status line.
func (p *Presenter) Transform(c types.Cell) (int, int) {
	return c.X + p.offsetX, c.Y + p.offsetY
}

// Draw renders a full frame and shows it.
func (p *Presenter) Draw(snap game.Snapshot) {
	p.screen.Clear()

	for _, e := range snap.Entities {
		x, y := p.Transform(e.Cell)
		switch e.Kind {
		case game.Wall:
			p.screen.SetContent(x, y, WallRune, nil, p.wallStyle)
		case game.SnakeHead:
			p.screen.SetContent(x, y, HeadRune, nil, p.snakeStyle)
		case game.SnakeSegment:
			p.screen.SetContent(x, y, SegmentRune, nil, p.snakeStyle)
		case game.Food:
			p.screen.SetContent(x, y, FoodRune, nil, p.foodStyle)
		}
	}

	p.drawText(0, 0, StatusLine(snap))
	p.screen.Show()
}

func (p *Presenter) drawText(x, y int, text string) {
	for i, r := range []rune(text) {
		p.screen.SetContent(x+i, y, r, nil, p.textStyle)
	}
}

// StatusLine is the text above the arena.
func StatusLine(snap game.Snapshot) string {
	switch snap.State {
	case manager.GameOver:
		if snap.Cause != manager.NoCollision {
			return fmt.Sprintf("Game Over! (hit %s) Press R to restart", snap.Cause)
		}
		return "Game Over! Press R to restart"
	case manager.BoardFull:
		return "Board full, you win! Press R to restart"
	}
	return fmt.Sprintf("Length: %d  Heading: %s", snap.Length, snap.Heading)
}
