package entity

import (
	"snake-game/game/types"
)

// Snake tracks the body segments. Internally Body is stored tail-first so that
// growing at the head is an append and dropping the tail is a reslice; callers
// see the head-first order through Positions.
type Snake struct {
	Body []types.Position
}

// NewSnake lays out length segments along row, starting at startCol and
// heading towards increasing columns. The segment at the highest column is the head.
func NewSnake(row, startCol, length int) *Snake {
	s := &Snake{Body: make([]types.Position, 0, length)}
	for c := startCol; c < startCol+length; c++ {
		s.Move(types.Position{Row: row, Col: c})
	}
	return s
}

// Move pushes newHead onto the front of the snake.
func (s *Snake) Move(newHead types.Position) {
	s.Body = append(s.Body, newHead)
}

// RemoveTail drops the last segment and returns it.
func (s *Snake) RemoveTail() types.Position {
	tail := s.Body[0]
	s.Body = s.Body[1:]
	return tail
}

func (s *Snake) GetHead() types.Position {
	return s.Body[len(s.Body)-1]
}

func (s *Snake) GetTail() types.Position {
	return s.Body[0]
}

func (s *Snake) Len() int {
	return len(s.Body)
}

// Positions returns a copy of the body ordered head to tail.
func (s *Snake) Positions() []types.Position {
	out := make([]types.Position, len(s.Body))
	for i, p := range s.Body {
		out[len(s.Body)-1-i] = p
	}
	return out
}
