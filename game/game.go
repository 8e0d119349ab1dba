package game

import (
	"fmt"
	"log"
	"time"

	"snake-arena/game/entity"
	"snake-arena/game/manager"
	"snake-arena/game/types"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
)

// Config carries the fixed startup parameters of a game.
type Config struct {
	Arena        types.Arena
	TickInterval int         // Frames per movement tick
	Source       rand.Source // Food placement randomness, time seeded when nil
	Logger       *log.Logger // Defaults to the standard logger output with a session prefix
}

// DefaultConfig returns the 64x36 arena with a 20 frame tick.
func DefaultConfig() Config {
	return Config{
		Arena:        types.DefaultArena(),
		TickInterval: types.TickInterval,
	}
}

// Outcome reports what a frame or tick did.
type Outcome struct {
	Ticked     bool
	Verdict    manager.Verdict
	FoodPlaced bool
	Restarted  bool
	State      manager.GameState
}

// Game owns the snake, the food and the session state. It is not safe for concurrent use;
// presenters read Snapshot between frames.
type Game struct {
	arena        types.Arena
	walls        []types.Cell
	snake        *entity.Snake
	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	stateMgr     *manager.StateManager
	tickInterval int
	accumulated  int
	ticks        uint64
	log          *log.Logger
}

func NewGame(cfg Config) *Game {
	if cfg.Arena.Width == 0 || cfg.Arena.Height == 0 {
		cfg.Arena = types.DefaultArena()
	}
	if cfg.TickInterval < 1 {
		cfg.TickInterval = types.TickInterval
	}
	if cfg.Source == nil {
		cfg.Source = rand.NewSource(uint64(time.Now().UnixNano()))
	}

	gameID := uuid.New().String()
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(
			log.Writer(),
			fmt.Sprintf("[game:%s] ", gameID[:8]),
			log.Ldate|log.Ltime|log.Lmsgprefix)
	}

	g := &Game{
		arena:        cfg.Arena,
		walls:        cfg.Arena.Walls(),
		snake:        entity.NewSnake(cfg.Arena.Center()),
		collisionMgr: manager.NewCollisionManager(cfg.Arena),
		foodMgr:      manager.NewFoodManager(cfg.Arena, cfg.Source),
		stateMgr:     manager.NewStateManager(gameID, logger),
		tickInterval: cfg.TickInterval,
		log:          logger,
	}
	return g
}

// Frame runs one presentation frame: input, the tick accumulator and food bookkeeping.
// Outside Playing only the restart signal is honoured.
func (g *Game) Frame(in Input) Outcome {
	if g.stateMgr.State() != manager.Playing {
		if in != nil && in.RestartPressed() && g.Restart() {
			return Outcome{Restarted: true, State: g.stateMgr.State()}
		}
		return Outcome{State: g.stateMgr.State()}
	}

	if in != nil {
		g.applyInput(in)
	}

	g.accumulated++
	if g.accumulated >= g.tickInterval {
		g.accumulated = 0
		return g.Tick()
	}

	placed := g.ensureFood()
	return Outcome{FoodPlaced: placed, State: g.stateMgr.State()}
}

// Tick advances the simulation by one cell: move, collide, eat, respawn food.
func (g *Game) Tick() Outcome {
	if g.stateMgr.State() != manager.Playing {
		return Outcome{State: g.stateMgr.State()}
	}
	g.ticks++

	head := g.snake.Tick()
	food, present := g.foodMgr.Current()
	verdict := g.collisionMgr.Check(head, g.snake.Segments, food, present)

	if verdict.Fatal() {
		g.snake = nil
		g.foodMgr.Clear()
		g.stateMgr.End(verdict)
		return Outcome{Ticked: true, Verdict: verdict, State: g.stateMgr.State()}
	}

	if verdict == manager.FoodCollision {
		g.foodMgr.Clear()
		g.snake.Grow(g.snake.Vacated())
		g.log.Printf("snake ate food at %v, length %d", food, g.snake.Len())
	}

	placed := g.ensureFood()
	return Outcome{Ticked: true, Verdict: verdict, FoodPlaced: placed, State: g.stateMgr.State()}
}

// SetIntent forwards a direction to the snake while Playing.
func (g *Game) SetIntent(h types.Heading) bool {
	if g.stateMgr.State() != manager.Playing {
		return false
	}
	return g.snake.SetIntent(h)
}

// Restart leaves GameOver or BoardFull with a fresh snake and no food.
func (g *Game) Restart() bool {
	if !g.stateMgr.Restart() {
		return false
	}
	g.snake = entity.NewSnake(g.arena.Center())
	g.foodMgr.Clear()
	g.accumulated = 0
	g.ticks = 0
	return true
}

func (g *Game) State() manager.GameState {
	return g.stateMgr.State()
}

// SessionID identifies this game in logs.
func (g *Game) SessionID() string {
	return g.stateMgr.SessionID()
}

// Sessions counts play sessions since start, including the current one.
func (g *Game) Sessions() int {
	return g.stateMgr.Sessions()
}

// Cause is the verdict that ended the last session.
func (g *Game) Cause() manager.Verdict {
	return g.stateMgr.Cause()
}

func (g *Game) Arena() types.Arena {
	return g.arena
}

// Food returns the food cell and whether it exists.
func (g *Game) Food() (types.Cell, bool) {
	return g.foodMgr.Current()
}

func (g *Game) ensureFood() bool {
	placed, err := g.foodMgr.EnsurePresent(g.occupied())
	if errors.Is(err, manager.ErrBoardFull) {
		g.snake = nil
		g.stateMgr.Fill()
		return false
	}
	if placed {
		food, _ := g.foodMgr.Current()
		g.log.Printf("food placed at %v", food)
	}
	return placed
}

// occupied is the union of walls and snake cells
func (g *Game) occupied() map[types.Cell]bool {
	occupied := make(map[types.Cell]bool, len(g.walls)+g.snake.Len())
	for _, w := range g.walls {
		occupied[w] = true
	}
	for _, c := range g.snake.Cells() {
		occupied[c] = true
	}
	return occupied
}
