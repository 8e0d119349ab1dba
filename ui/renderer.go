package ui

import (
	"fmt"

	"snake-arena/game"
	"snake-arena/game/manager"
	"snake-arena/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	backgroundColor = rl.NewColor(148, 188, 100, 255)
	wallColor       = rl.NewColor(20, 33, 18, 255)
	headColor       = rl.NewColor(231, 161, 176, 255)
	segmentColor    = rl.NewColor(201, 131, 146, 255)
	foodColor       = rl.NewColor(221, 21, 51, 255)
)

// Renderer draws game snapshots into the raylib window
type Renderer struct {
	screenWidth  int32
	screenHeight int32
	offsetX      int32
	offsetY      int32
	cellSize     int32
}

func NewRenderer() *Renderer {
	r := &Renderer{}
	r.UpdateDimensions()
	return r
}

func (r *Renderer) UpdateDimensions() {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())
}

func min(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

// Draw renders one frame. The snapshot is only read.
func (r *Renderer) Draw(snap game.Snapshot) {
	r.UpdateDimensions()
	rl.BeginDrawing()
	rl.ClearBackground(backgroundColor)

	// Fit the arena, never larger than its native cell size
	r.cellSize = int32(snap.CellSize)
	if snap.Width > 0 && snap.Height > 0 {
		r.cellSize = min(r.cellSize, min(r.screenWidth/int32(snap.Width), r.screenHeight/int32(snap.Height)))
	}
	r.offsetX = (r.screenWidth - r.cellSize*int32(snap.Width)) / 2
	r.offsetY = (r.screenHeight - r.cellSize*int32(snap.Height)) / 2

	for _, e := range snap.Entities {
		switch e.Kind {
		case game.Wall:
			r.drawCell(e.Cell, r.cellSize, wallColor)
		case game.SnakeSegment:
			r.drawCell(e.Cell, r.cellSize, segmentColor)
		case game.SnakeHead:
			r.drawCell(e.Cell, r.cellSize, headColor)
			r.drawHeading(e.Cell, snap.Heading)
		case game.Food:
			// Food is drawn at 3/4 of a cell, centered
			inset := r.cellSize / 8
			x, y := r.cellOrigin(e.Cell)
			rl.DrawRectangle(x+inset, y+inset, r.cellSize-2*inset, r.cellSize-2*inset, foodColor)
		}
	}

	fontSize := r.cellSize
	rl.DrawText(fmt.Sprintf("Length: %d", snap.Length), r.offsetX+r.cellSize+5, r.offsetY+2, fontSize-4, rl.RayWhite)

	if snap.State != manager.Playing {
		r.drawPrompt(snap, fontSize*2)
	}

	rl.EndDrawing()
}

func (r *Renderer) cellOrigin(c types.Cell) (int32, int32) {
	x, y := c.Scale(int(r.cellSize))
	return r.offsetX + int32(x), r.offsetY + int32(y)
}

func (r *Renderer) drawCell(c types.Cell, size int32, color rl.Color) {
	x, y := r.cellOrigin(c)
	rl.DrawRectangle(x, y, size, size, color)
}

// drawHeading marks the head with a small triangle pointing along the heading
func (r *Renderer) drawHeading(c types.Cell, h types.Heading) {
	x, y := r.cellOrigin(c)
	fx, fy := float32(x), float32(y)
	cs := float32(r.cellSize)
	half := cs / 2

	var a, b, d rl.Vector2
	switch h {
	case types.Right:
		a, b, d = rl.Vector2{X: fx + cs, Y: fy + half}, rl.Vector2{X: fx + half, Y: fy}, rl.Vector2{X: fx + half, Y: fy + cs}
	case types.Left:
		a, b, d = rl.Vector2{X: fx, Y: fy + half}, rl.Vector2{X: fx + half, Y: fy + cs}, rl.Vector2{X: fx + half, Y: fy}
	case types.Down:
		a, b, d = rl.Vector2{X: fx + half, Y: fy + cs}, rl.Vector2{X: fx + cs, Y: fy + half}, rl.Vector2{X: fx, Y: fy + half}
	default:
		a, b, d = rl.Vector2{X: fx + half, Y: fy}, rl.Vector2{X: fx, Y: fy + half}, rl.Vector2{X: fx + cs, Y: fy + half}
	}
	// raylib wants counter-clockwise vertices
	rl.DrawTriangle(a, b, d, wallColor)
}

func (r *Renderer) drawPrompt(snap game.Snapshot, fontSize int32) {
	title := "Game Over!"
	if snap.State == manager.BoardFull {
		title = "Board full, you win!"
	} else if snap.Cause != manager.NoCollision {
		title = fmt.Sprintf("Game Over! (hit %s)", snap.Cause)
	}
	prompt := PromptText

	tw := rl.MeasureText(title, fontSize)
	pw := rl.MeasureText(prompt, fontSize/2)
	cy := r.screenHeight / 2
	rl.DrawText(title, (r.screenWidth-tw)/2, cy-fontSize, fontSize, rl.RayWhite)
	rl.DrawText(prompt, (r.screenWidth-pw)/2, cy+fontSize/2, fontSize/2, rl.RayWhite)
}

// PromptText is shown while the game waits for a restart.
const PromptText = "Press R to restart"
