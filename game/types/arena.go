package types

// Arena describes the fixed playable rectangle. The outermost ring of cells is the wall.
type Arena struct {
	Width    int
	Height   int
	CellSize int
	walls    []Cell
}

// NewArena builds an arena and computes its wall ring once.
func NewArena(width, height, cellSize int) Arena {
	a := Arena{
		Width:    width,
		Height:   height,
		CellSize: cellSize,
	}

	walls := make([]Cell, 0, 2*width+2*height)
	for x := 0; x < width; x++ {
		walls = append(walls, Cell{X: x, Y: 0})
		if height > 1 {
			walls = append(walls, Cell{X: x, Y: height - 1})
		}
	}
	for y := 1; y < height-1; y++ {
		walls = append(walls, Cell{X: 0, Y: y})
		if width > 1 {
			walls = append(walls, Cell{X: width - 1, Y: y})
		}
	}
	a.walls = walls
	return a
}

// DefaultArena is the 64x36 arena used by the game.
func DefaultArena() Arena {
	return NewArena(ArenaWidth, ArenaHeight, CellSize)
}

// Bounds returns width and height in cells.
func (a Arena) Bounds() (int, int) {
	return a.Width, a.Height
}

// Contains reports whether c lies inside the rectangle, walls included.
func (a Arena) Contains(c Cell) bool {
	return c.X >= 0 && c.X < a.Width && c.Y >= 0 && c.Y < a.Height
}

// IsBoundary reports whether c is on the outermost ring.
func (a Arena) IsBoundary(c Cell) bool {
	if !a.Contains(c) {
		return false
	}
	return c.X == 0 || c.Y == 0 || c.X == a.Width-1 || c.Y == a.Height-1
}

// IsInterior reports whether c is playable (inside and not a wall).
func (a Arena) IsInterior(c Cell) bool {
	return a.Contains(c) && !a.IsBoundary(c)
}

// InteriorCells is the number of non-wall cells.
func (a Arena) InteriorCells() int {
	if a.Width < 3 || a.Height < 3 {
		return 0
	}
	return (a.Width - 2) * (a.Height - 2)
}

// Center is the snake spawn cell.
func (a Arena) Center() Cell {
	return Cell{X: a.Width / 2, Y: a.Height / 2}
}

// Walls returns a copy of the wall ring.
func (a Arena) Walls() []Cell {
	walls := make([]Cell, len(a.walls))
	copy(walls, a.walls)
	return walls
}
