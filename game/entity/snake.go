package entity

import (
	"snake-arena/game/types"
)

// Snake is the head cell plus trailing segments, nearest to the head first.
type Snake struct {
	Head     types.Cell
	Segments []types.Cell
	Heading  types.Heading

	pending types.Heading
	vacated types.Cell
}

func NewSnake(spawn types.Cell) *Snake {
	s := &Snake{}
	s.Reset(spawn)
	return s
}

// NewSnakeFrom builds a snake with an explicit layout. Segments are copied.
func NewSnakeFrom(head types.Cell, segments []types.Cell, heading types.Heading) *Snake {
	s := &Snake{
		Head:     head,
		Segments: append([]types.Cell(nil), segments...),
		Heading:  heading,
		pending:  heading,
		vacated:  head,
	}
	return s
}

// Reset collapses the snake to a single head at spawn, heading up.
func (s *Snake) Reset(spawn types.Cell) {
	s.Head = spawn
	s.Segments = s.Segments[:0]
	s.Heading = types.Up
	s.pending = types.Up
	s.vacated = spawn
}

// SetIntent buffers h for the next tick. A reversal of the current heading is ignored,
// even if a different heading was buffered in between.
func (s *Snake) SetIntent(h types.Heading) bool {
	if h == s.Heading.Opposite() {
		return false
	}
	s.pending = h
	return true
}

// PendingHeading is the heading the next tick will commit.
func (s *Snake) PendingHeading() types.Heading {
	return s.pending
}

// Tick commits the buffered heading and moves every cell one step. Returns the new head.
func (s *Snake) Tick() types.Cell {
	s.Heading = s.pending
	newHead := s.Head.Add(s.Heading)

	if n := len(s.Segments); n > 0 {
		s.vacated = s.Segments[n-1]
		for i := n - 1; i > 0; i-- {
			s.Segments[i] = s.Segments[i-1]
		}
		s.Segments[0] = s.Head
	} else {
		s.vacated = s.Head
	}

	s.Head = newHead
	return newHead
}

// Vacated is the cell the tail left behind on the last tick.
func (s *Snake) Vacated() types.Cell {
	return s.vacated
}

// Grow appends a tail segment at the given cell. Existing segments do not move.
func (s *Snake) Grow(at types.Cell) {
	s.Segments = append(s.Segments, at)
}

// Len counts the head and all segments.
func (s *Snake) Len() int {
	return 1 + len(s.Segments)
}

// Cells returns head first, then segments.
func (s *Snake) Cells() []types.Cell {
	cells := make([]types.Cell, 0, s.Len())
	cells = append(cells, s.Head)
	return append(cells, s.Segments...)
}

// Occupies reports whether any snake cell equals c.
func (s *Snake) Occupies(c types.Cell) bool {
	if s.Head == c {
		return true
	}
	for _, seg := range s.Segments {
		if seg == c {
			return true
		}
	}
	return false
}
