package entity

import (
	"snake-arcade/game/types"
)

// InitialLength is the segment count of a fresh snake
const InitialLength = 3

type Snake struct {
	Body      []types.Point // Head first
	Direction types.Direction
	pending   types.Direction
}

// NewSnake builds the canonical body heading right: head plus two segments trailing to the left
func NewSnake(head types.Point) *Snake {
	body := make([]types.Point, 0, InitialLength)
	for i := 0; i < InitialLength; i++ {
		body = append(body, types.Point{X: head.X - i, Y: head.Y})
	}
	return &Snake{
		Body:      body,
		Direction: types.Right, // Start moving right
		pending:   types.Right,
	}
}

func (s *Snake) Head() types.Point {
	return s.Body[0]
}

func (s *Snake) Tail() types.Point {
	return s.Body[len(s.Body)-1]
}

func (s *Snake) Len() int {
	return len(s.Body)
}

// PendingDirection returns the buffered heading applied by the next Move
func (s *Snake) PendingDirection() types.Direction {
	return s.pending
}

// SetPendingDirection buffers dir for the next Move.
// Reversals against the committed heading are ignored so the snake can never fold onto its neck,
// even when several inputs arrive within one tick.
func (s *Snake) SetPendingDirection(dir types.Direction) bool {
	if !dir.Valid() || dir == s.Direction.Opposite() || dir == s.pending {
		return false
	}
	s.pending = dir
	return true
}

// Move commits the pending heading, pushes a new head and drops the tail
func (s *Snake) Move() {
	s.Direction = s.pending
	newHead := s.Head().Add(s.Direction.Delta())

	copy(s.Body[1:], s.Body[:len(s.Body)-1])
	s.Body[0] = newHead
}

// Grow duplicates the tail; the copy separates on the next Move
func (s *Snake) Grow() {
	s.Body = append(s.Body, s.Tail())
}

// Occupies reports whether any segment sits on p
func (s *Snake) Occupies(p types.Point) bool {
	for _, part := range s.Body {
		if part == p {
			return true
		}
	}
	return false
}

// HitsSelf reports whether the head overlaps a body segment
func (s *Snake) HitsSelf() bool {
	head := s.Head()
	for _, part := range s.Body[1:] {
		if part == head {
			return true
		}
	}
	return false
}

// CheckCollision reports a wall hit on a gridSize board or a self hit
func (s *Snake) CheckCollision(gridSize int) bool {
	if !(types.Grid{Size: gridSize}).InBounds(s.Head()) {
		return true
	}
	return s.HitsSelf()
}
