package game

import (
	"snake-arena/game/manager"
	"snake-arena/game/types"
)

// EntityKind tags what occupies a cell.
type EntityKind int

const (
	Wall EntityKind = iota
	SnakeHead
	SnakeSegment
	Food
)

func (k EntityKind) String() string {
	switch k {
	case Wall:
		return "wall"
	case SnakeHead:
		return "snake head"
	case SnakeSegment:
		return "snake segment"
	case Food:
		return "food"
	}
	return "unknown"
}

type Entity struct {
	Kind EntityKind
	Cell types.Cell
}

// Snapshot is a read-only copy of everything a presenter may draw.
type Snapshot struct {
	State    manager.GameState
	Cause    manager.Verdict
	Heading  types.Heading
	Tick     uint64
	Length   int
	Width    int
	Height   int
	CellSize int
	Entities []Entity
}

// Snapshot copies the current positions. Snake and food appear only while Playing.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		State:    g.stateMgr.State(),
		Cause:    g.stateMgr.Cause(),
		Tick:     g.ticks,
		Width:    g.arena.Width,
		Height:   g.arena.Height,
		CellSize: g.arena.CellSize,
		Entities: make([]Entity, 0, len(g.walls)+2),
	}

	for _, w := range g.walls {
		snap.Entities = append(snap.Entities, Entity{Kind: Wall, Cell: w})
	}

	if snap.State != manager.Playing || g.snake == nil {
		return snap
	}

	snap.Heading = g.snake.Heading
	snap.Length = g.snake.Len()
	snap.Entities = append(snap.Entities, Entity{Kind: SnakeHead, Cell: g.snake.Head})
	for _, seg := range g.snake.Segments {
		snap.Entities = append(snap.Entities, Entity{Kind: SnakeSegment, Cell: seg})
	}
	if food, ok := g.foodMgr.Current(); ok {
		snap.Entities = append(snap.Entities, Entity{Kind: Food, Cell: food})
	}
	return snap
}

// Cells returns the cells of every entity of the given kind, in snapshot order.
func (s Snapshot) Cells(kind EntityKind) []types.Cell {
	var cells []types.Cell
	for _, e := range s.Entities {
		if e.Kind == kind {
			cells = append(cells, e.Cell)
		}
	}
	return cells
}
