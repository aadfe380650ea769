package entity

import (
	"slices"

	"snake-arcade/game/types"
	"snake-arcade/ui"
)

// Snake is the player. Body[0] is the head, the last element the tail.
type Snake struct {
	Body          []types.Point
	Length        int
	Direction     types.Direction // applied on the last completed move
	NextDirection types.Direction // requested, committed by UpdateDirection
	Color         types.Color
	grid          types.Grid
}

// NewSnake creates a one-cell snake at the centre of grid heading right.
func NewSnake(grid types.Grid, color types.Color) *Snake {
	s := &Snake{
		Color: color,
		grid:  grid,
	}
	s.Reset()
	return s
}

// Reset puts the snake back to its initial state.
func (s *Snake) Reset() {
	s.Body = []types.Point{s.grid.Center()}
	s.Length = 1
	s.Direction = types.Right
	s.NextDirection = types.Right
}

// UpdateDirection commits NextDirection unless it would reverse the snake
// onto itself, in which case the request is dropped.
func (s *Snake) UpdateDirection() {
	if s.NextDirection.Opposite() != s.Direction {
		s.Direction = s.NextDirection
	}
}

// Move advances the head one cell, wrapping at the edges, and drags the body
// behind it. It returns false without touching the body when the new head
// lands on any current body cell, the tail included even though the tail
// would be vacated by this very move.
func (s *Snake) Move() bool {
	newHead := s.grid.Step(s.GetHead(), s.Direction)
	if slices.Contains(s.Body, newHead) {
		return false
	}

	copy(s.Body[1:], s.Body[:s.Length-1])
	s.Body[0] = newHead
	return true
}

// Grow duplicates the tail cell; the copies separate on the next move.
func (s *Snake) Grow() {
	s.Body = append(s.Body, s.Body[len(s.Body)-1])
	s.Length++
}

// Shrink drops the tail. A one-cell snake is reset instead.
func (s *Snake) Shrink() {
	if s.Length <= 1 {
		s.Reset()
		return
	}
	s.Body = s.Body[:len(s.Body)-1]
	s.Length--
}

func (s *Snake) GetHead() types.Point {
	return s.Body[0]
}

// Occupied returns the body cells as a set.
func (s *Snake) Occupied() types.CellSet {
	return types.NewCellSet(s.Body...)
}

func (s *Snake) Draw(p Painter, surface *ui.Surface, cfg types.Config) {
	for _, cell := range s.Body {
		DrawCell(p, surface, cfg, cell, s.Color)
	}
}
