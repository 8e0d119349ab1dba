package game

import (
	"io"
	"log"
	"testing"

	"snake-arena/game/entity"
	"snake-arena/game/manager"
	"snake-arena/game/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func newTestGame(seed uint64, tickInterval int) *Game {
	return NewGame(Config{
		Arena:        types.DefaultArena(),
		TickInterval: tickInterval,
		Source:       rand.NewSource(seed),
		Logger:       log.New(io.Discard, "", 0),
	})
}

func TestNewGame(t *testing.T) {
	g := newTestGame(1, types.TickInterval)

	assert.Equal(t, manager.Playing, g.State())
	assert.NotEmpty(t, g.SessionID())
	assert.Equal(t, 1, g.snake.Len())
	assert.Equal(t, types.Cell{X: 32, Y: 18}, g.snake.Head)
	_, present := g.Food()
	assert.False(t, present, "food appears on the first frame, not at construction")

	out := g.Frame(nil)
	assert.False(t, out.Ticked)
	assert.True(t, out.FoodPlaced)
	_, present = g.Food()
	assert.True(t, present)
}

func TestNewGameDefaults(t *testing.T) {
	g := NewGame(Config{Logger: log.New(io.Discard, "", 0)})

	assert.Equal(t, types.ArenaWidth, g.Arena().Width)
	assert.Equal(t, types.TickInterval, g.tickInterval)
	assert.NotNil(t, g.foodMgr)
}

func TestEatFood(t *testing.T) {
	g := newTestGame(2, 1)
	g.snake = entity.NewSnakeFrom(types.Cell{X: 5, Y: 5}, nil, types.Right)
	g.foodMgr.Set(types.Cell{X: 6, Y: 5})

	out := g.Tick()
	require.True(t, out.Ticked)
	assert.Equal(t, manager.FoodCollision, out.Verdict)
	assert.Equal(t, manager.Playing, out.State)

	assert.Equal(t, types.Cell{X: 6, Y: 5}, g.snake.Head)
	assert.Equal(t, []types.Cell{{X: 5, Y: 5}}, g.snake.Segments)

	// Eaten food is replaced within the same tick, away from the snake and walls
	assert.True(t, out.FoodPlaced)
	food, present := g.Food()
	require.True(t, present)
	assert.NotEqual(t, types.Cell{X: 5, Y: 5}, food)
	assert.NotEqual(t, types.Cell{X: 6, Y: 5}, food)
	assert.True(t, g.Arena().IsInterior(food))
}

func TestWallCollision(t *testing.T) {
	g := newTestGame(3, 1)
	g.snake = entity.NewSnakeFrom(types.Cell{X: 1, Y: 5}, nil, types.Left)
	g.foodMgr.Set(types.Cell{X: 20, Y: 20})

	out := g.Tick()
	assert.True(t, out.Ticked)
	assert.Equal(t, manager.WallCollision, out.Verdict)
	assert.Equal(t, manager.GameOver, out.State)
	assert.Equal(t, manager.WallCollision, g.Cause())

	snap := g.Snapshot()
	assert.Empty(t, snap.Cells(SnakeHead))
	assert.Empty(t, snap.Cells(SnakeSegment))
	assert.Empty(t, snap.Cells(Food))
	assert.Len(t, snap.Cells(Wall), len(g.Arena().Walls()))
	_, present := g.Food()
	assert.False(t, present)
}

func TestSelfCollision(t *testing.T) {
	t.Run("tight turn into own body", func(t *testing.T) {
		g := newTestGame(4, 1)
		g.snake = entity.NewSnakeFrom(
			types.Cell{X: 10, Y: 10},
			[]types.Cell{{X: 9, Y: 10}, {X: 8, Y: 10}, {X: 7, Y: 10}, {X: 6, Y: 10}},
			types.Right,
		)
		g.foodMgr.Set(types.Cell{X: 30, Y: 30})

		for _, h := range []types.Heading{types.Down, types.Left} {
			require.True(t, g.SetIntent(h))
			out := g.Tick()
			require.Equal(t, manager.NoCollision, out.Verdict)
		}

		require.True(t, g.SetIntent(types.Up))
		out := g.Tick()
		assert.Equal(t, manager.SelfCollision, out.Verdict)
		assert.Equal(t, manager.GameOver, out.State)
	})

	t.Run("head moves into a segment's cell", func(t *testing.T) {
		g := newTestGame(5, 1)
		g.snake = entity.NewSnakeFrom(
			types.Cell{X: 20, Y: 20},
			[]types.Cell{{X: 19, Y: 20}, {X: 18, Y: 20}},
			types.Left,
		)
		g.foodMgr.Set(types.Cell{X: 30, Y: 30})

		out := g.Tick()
		assert.Equal(t, manager.SelfCollision, out.Verdict)
		assert.Equal(t, manager.GameOver, g.State())
	})

	t.Run("following the tail is legal", func(t *testing.T) {
		g := newTestGame(6, 1)
		g.snake = entity.NewSnakeFrom(
			types.Cell{X: 10, Y: 10},
			[]types.Cell{{X: 11, Y: 10}, {X: 11, Y: 11}, {X: 10, Y: 11}},
			types.Down,
		)
		g.foodMgr.Set(types.Cell{X: 30, Y: 30})

		// (10,11) is the tail and is vacated by this move
		out := g.Tick()
		assert.Equal(t, manager.NoCollision, out.Verdict)
		assert.Equal(t, manager.Playing, g.State())
	})
}

func TestNoReversal(t *testing.T) {
	g := newTestGame(7, 1)
	g.snake = entity.NewSnakeFrom(types.Cell{X: 5, Y: 5}, nil, types.Right)
	g.foodMgr.Set(types.Cell{X: 30, Y: 30})

	assert.False(t, g.SetIntent(types.Left))
	g.Tick()
	assert.Equal(t, types.Right, g.snake.Heading)
	assert.Equal(t, types.Cell{X: 6, Y: 5}, g.snake.Head)
}

func TestRestart(t *testing.T) {
	g := newTestGame(8, 1)
	g.snake = entity.NewSnakeFrom(types.Cell{X: 1, Y: 5}, []types.Cell{{X: 2, Y: 5}}, types.Left)
	g.Tick()
	require.Equal(t, manager.GameOver, g.State())

	t.Run("game over is inert", func(t *testing.T) {
		out := g.Tick()
		assert.False(t, out.Ticked)
		assert.False(t, g.SetIntent(types.Up))

		keys := NewKeyState()
		keys.Press(types.Up)
		out = g.Frame(keys)
		assert.False(t, out.Restarted)
		assert.Equal(t, manager.GameOver, out.State)
	})

	t.Run("restart resets to spawn", func(t *testing.T) {
		keys := NewKeyState()
		keys.Restart = true

		out := g.Frame(keys)
		assert.True(t, out.Restarted)
		assert.Equal(t, manager.Playing, g.State())
		assert.Equal(t, 2, g.Sessions())

		assert.Equal(t, 1, g.snake.Len())
		assert.Equal(t, g.Arena().Center(), g.snake.Head)
		assert.Equal(t, types.Up, g.snake.Heading)
		_, present := g.Food()
		assert.False(t, present, "food is placed by the next frame")

		out = g.Frame(nil)
		assert.True(t, out.FoodPlaced)
	})

	t.Run("restart while playing is ignored", func(t *testing.T) {
		assert.False(t, g.Restart())
		assert.Equal(t, 2, g.Sessions())
	})
}

func TestTickAccumulator(t *testing.T) {
	g := newTestGame(9, types.TickInterval)
	start := g.snake.Head

	for i := 1; i < types.TickInterval; i++ {
		out := g.Frame(nil)
		require.False(t, out.Ticked, "frame %d", i)
	}
	assert.Equal(t, start, g.snake.Head)

	out := g.Frame(nil)
	assert.True(t, out.Ticked)
	assert.Equal(t, start.Add(types.Up), g.snake.Head)
	assert.Equal(t, uint64(1), g.Snapshot().Tick)
}

func TestFrameInput(t *testing.T) {
	g := newTestGame(10, 1)
	g.snake = entity.NewSnakeFrom(types.Cell{X: 10, Y: 10}, nil, types.Right)
	g.foodMgr.Set(types.Cell{X: 30, Y: 30})

	keys := NewKeyState()
	keys.Press(types.Left)
	keys.Press(types.Down)

	// Down outranks Left; Left would be a reversal anyway
	g.Frame(keys)
	assert.Equal(t, types.Down, g.snake.Heading)
	assert.Equal(t, types.Cell{X: 10, Y: 11}, g.snake.Head)

	keys.Clear()
	assert.False(t, keys.Held(types.Down))
	g.Frame(keys)
	assert.Equal(t, types.Cell{X: 10, Y: 12}, g.snake.Head)
}

func TestBoardFull(t *testing.T) {
	g := NewGame(Config{
		Arena:        types.NewArena(5, 5, 1),
		TickInterval: 1,
		Source:       rand.NewSource(11),
		Logger:       log.New(io.Discard, "", 0),
	})
	g.snake = entity.NewSnakeFrom(
		types.Cell{X: 2, Y: 1},
		[]types.Cell{{X: 3, Y: 1}, {X: 3, Y: 2}, {X: 2, Y: 2}, {X: 1, Y: 2}, {X: 1, Y: 3}, {X: 2, Y: 3}, {X: 3, Y: 3}},
		types.Left,
	)
	g.foodMgr.Set(types.Cell{X: 1, Y: 1})

	out := g.Tick()
	assert.Equal(t, manager.FoodCollision, out.Verdict)
	assert.Equal(t, manager.BoardFull, out.State)
	assert.False(t, out.FoodPlaced)

	assert.True(t, g.Restart())
	assert.Equal(t, manager.Playing, g.State())
	assert.Equal(t, types.Cell{X: 2, Y: 2}, g.snake.Head)
}

func TestSnapshot(t *testing.T) {
	g := newTestGame(12, 1)
	g.snake = entity.NewSnakeFrom(types.Cell{X: 5, Y: 5}, []types.Cell{{X: 4, Y: 5}, {X: 3, Y: 5}}, types.Right)
	g.foodMgr.Set(types.Cell{X: 9, Y: 9})

	snap := g.Snapshot()
	assert.Equal(t, manager.Playing, snap.State)
	assert.Equal(t, types.Right, snap.Heading)
	assert.Equal(t, 3, snap.Length)
	assert.Equal(t, types.CellSize, snap.CellSize)
	assert.Equal(t, []types.Cell{{X: 5, Y: 5}}, snap.Cells(SnakeHead))
	assert.Equal(t, []types.Cell{{X: 4, Y: 5}, {X: 3, Y: 5}}, snap.Cells(SnakeSegment))
	assert.Equal(t, []types.Cell{{X: 9, Y: 9}}, snap.Cells(Food))
	assert.Len(t, snap.Cells(Wall), 2*64+2*34)

	// Snapshots are copies
	g.Tick()
	assert.Equal(t, []types.Cell{{X: 5, Y: 5}}, snap.Cells(SnakeHead))
}

// TestInvariants drives a long random session and checks the rules after every frame.
func TestInvariants(t *testing.T) {
	g := newTestGame(13, 2)
	rng := rand.New(rand.NewSource(99))
	keys := NewKeyState()
	headings := []types.Heading{types.Up, types.Right, types.Down, types.Left}

	walls := make(map[types.Cell]bool)
	for _, w := range g.Arena().Walls() {
		walls[w] = true
	}

	prevLen := g.snake.Len()
	for frame := 0; frame < 20000; frame++ {
		keys.Clear()
		if rng.Intn(4) == 0 {
			keys.Press(headings[rng.Intn(len(headings))])
		}
		keys.Restart = rng.Intn(10) == 0

		wasPlaying := g.State() == manager.Playing
		out := g.Frame(keys)

		if out.Restarted {
			require.Equal(t, 1, g.snake.Len())
			prevLen = 1
			continue
		}
		if g.State() != manager.Playing {
			_, present := g.Food()
			require.False(t, present)
			continue
		}
		require.True(t, wasPlaying)

		for _, seg := range g.snake.Segments {
			require.NotEqual(t, g.snake.Head, seg, "frame %d: head inside body", frame)
		}

		if food, present := g.Food(); present {
			require.False(t, walls[food], "frame %d: food on wall", frame)
			require.False(t, g.snake.Occupies(food), "frame %d: food on snake", frame)
		}

		if out.Verdict == manager.FoodCollision {
			require.Equal(t, prevLen+1, g.snake.Len(), "frame %d", frame)
		} else {
			require.Equal(t, prevLen, g.snake.Len(), "frame %d", frame)
		}
		prevLen = g.snake.Len()
	}
}
