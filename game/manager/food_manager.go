package manager

import (
	"snake-arena/game/types"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
)

// ErrBoardFull is returned when no interior cell is left for food.
var ErrBoardFull = errors.New("board full: no free cell for food")

// FoodManager places and tracks the single piece of food.
type FoodManager struct {
	arena   types.Arena
	rng     *rand.Rand
	food    types.Cell
	present bool
}

func NewFoodManager(arena types.Arena, src rand.Source) *FoodManager {
	return &FoodManager{
		arena: arena,
		rng:   rand.New(src),
	}
}

// Place draws a uniformly random interior cell not in occupied.
func (fm *FoodManager) Place(occupied map[types.Cell]bool) (types.Cell, error) {
	taken := 0
	for c, ok := range occupied {
		if ok && fm.arena.IsInterior(c) {
			taken++
		}
	}
	if taken >= fm.arena.InteriorCells() {
		return types.Cell{}, ErrBoardFull
	}

	for {
		food := types.Cell{
			X: 1 + fm.rng.Intn(fm.arena.Width-2),
			Y: 1 + fm.rng.Intn(fm.arena.Height-2),
		}
		if !occupied[food] {
			return food, nil
		}
	}
}

// EnsurePresent places food if none exists. Reports whether a new piece was placed.
func (fm *FoodManager) EnsurePresent(occupied map[types.Cell]bool) (bool, error) {
	if fm.present {
		return false, nil
	}

	food, err := fm.Place(occupied)
	if err != nil {
		return false, err
	}
	fm.food = food
	fm.present = true
	return true, nil
}

// Current returns the food cell and whether food exists.
func (fm *FoodManager) Current() (types.Cell, bool) {
	return fm.food, fm.present
}

// Set installs food at c, replacing any existing piece.
func (fm *FoodManager) Set(c types.Cell) {
	fm.food = c
	fm.present = true
}

// Clear removes the food.
func (fm *FoodManager) Clear() {
	fm.food = types.Cell{}
	fm.present = false
}
