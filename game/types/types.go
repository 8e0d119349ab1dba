package types

import "fmt"

// Game constants
const (
	ArenaWidth   = 64 // Cells across (1280 / CellSize)
	ArenaHeight  = 36 // Cells down (720 / CellSize)
	CellSize     = 20 // Display units per cell
	TargetFPS    = 60
	TickInterval = 20 // Frames between movement ticks
)

// Cell is one grid position. X is the column, Y the row (rows grow downward).
type Cell struct {
	X, Y int
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns the neighbouring cell one step along h.
func (c Cell) Add(h Heading) Cell {
	v := h.Vector()
	return Cell{X: c.X + v.X, Y: c.Y + v.Y}
}

// Scale converts the cell to display coordinates.
func (c Cell) Scale(size int) (int, int) {
	return c.X * size, c.Y * size
}

// Heading is a cardinal direction of travel.
type Heading int

const (
	Up Heading = iota
	Right
	Down
	Left
)

// Vector returns the unit step for the heading
func (h Heading) Vector() Cell {
	switch h {
	case Up:
		return Cell{X: 0, Y: -1}
	case Right:
		return Cell{X: 1, Y: 0}
	case Down:
		return Cell{X: 0, Y: 1}
	case Left:
		return Cell{X: -1, Y: 0}
	}
	return Cell{}
}

// Opposite returns the heading pointing the other way.
func (h Heading) Opposite() Heading {
	return (h + 2) % 4
}

func (h Heading) String() string {
	switch h {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	}
	return fmt.Sprintf("heading(%d)", int(h))
}
