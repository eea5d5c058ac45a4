package entity

import (
	"github.com/alexanderi96/snake/game/types"
)

// Snake is the player's body. Body[0] is the head, the last element the tail.
type Snake struct {
	body      []types.Point
	direction types.Direction
	heading   types.Direction // direction used by the last Advance
	grow      bool
}

func NewSnake() *Snake {
	s := &Snake{}
	s.Reset()
	return s
}

// Reset restores the initial three segment body and heading.
func (s *Snake) Reset() {
	s.body = append(s.body[:0], types.InitialBody()...)
	s.direction = types.InitialDirection
	s.heading = types.InitialDirection
	s.grow = false
}

// Advance moves the snake one cell along its direction. A pending growth
// keeps the tail in place. Heads outside the board are left for the caller
// to detect.
func (s *Snake) Advance() {
	head := s.body[0].Add(s.direction.ToPoint())
	s.body = append(s.body, types.Point{})
	copy(s.body[1:], s.body)
	s.body[0] = head
	s.heading = s.direction

	if s.grow {
		s.grow = false
		return
	}
	s.body = s.body[:len(s.body)-1]
}

// SetDirection stores d as the next heading. Reversal checks belong to the
// controller.
func (s *Snake) SetDirection(d types.Direction) {
	s.direction = d
}

// RequestGrowth makes the next Advance keep the tail.
func (s *Snake) RequestGrowth() {
	s.grow = true
}

func (s *Snake) GrowthPending() bool {
	return s.grow
}

func (s *Snake) Head() types.Point {
	return s.body[0]
}

func (s *Snake) Len() int {
	return len(s.body)
}

// Body returns a copy of the segments, head first.
func (s *Snake) Body() []types.Point {
	body := make([]types.Point, len(s.body))
	copy(body, s.body)
	return body
}

func (s *Snake) Direction() types.Direction {
	return s.direction
}

// Heading is the direction the snake actually moved on its last Advance. It
// differs from Direction between a key press and the next tick.
func (s *Snake) Heading() types.Direction {
	return s.heading
}

// Occupies reports whether any segment lies on p.
func (s *Snake) Occupies(p types.Point) bool {
	for _, part := range s.body {
		if part == p {
			return true
		}
	}
	return false
}

// HitsItself reports whether the head shares a cell with another segment.
func (s *Snake) HitsItself() bool {
	head := s.body[0]
	for _, part := range s.body[1:] {
		if part == head {
			return true
		}
	}
	return false
}

// Place puts the snake on an arbitrary body with direction d, clearing any
// pending growth. body must not be empty.
func (s *Snake) Place(body []types.Point, d types.Direction) {
	s.body = append(s.body[:0], body...)
	s.direction = d
	s.heading = d
	s.grow = false
}
