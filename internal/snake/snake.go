package snake

import (
	"go-glutton/internal/collision"
	"go-glutton/internal/grid"
)

// InitialLength is the trail length a fresh snake grows into.
const InitialLength = 5

// StartCell is where every snake begins.
var StartCell = grid.Cell{Col: 13, Row: 15}

// Snake is the player's head plus the trail of cells it has left behind,
// oldest first. The head cell itself is never part of Body.
type Snake struct {
	Head         grid.Cell
	Heading      grid.Direction
	Body         []grid.Cell
	TargetLength int
}

// New returns a snake at start facing right with an empty trail.
func New(start grid.Cell) *Snake {
	return &Snake{
		Head:         start,
		Heading:      grid.Right,
		TargetLength: InitialLength,
	}
}

// SetHeading turns the head immediately; legality is checked on the next move.
func (s *Snake) SetHeading(d grid.Direction) {
	s.Heading = d
}

// HeadPixel is the head's position in render space.
func (s *Snake) HeadPixel() grid.Point {
	return s.Head.Pixel()
}

// Grow raises the target length by n.
func (s *Snake) Grow(n int) {
	s.TargetLength += n
}

// Growing reports whether the trail is still filling towards the target.
func (s *Snake) Growing() bool {
	return len(s.Body) < s.TargetLength
}

// FullLength reports whether the trail has reached the target exactly.
func (s *Snake) FullLength() bool {
	return len(s.Body) == s.TargetLength
}

// evicting reports whether the next move pushes the oldest trail cell out.
func (s *Snake) evicting() bool {
	return len(s.Body)+1 > s.TargetLength
}

// Next is the cell the head would enter on the next move.
func (s *Snake) Next() grid.Cell {
	return s.Head.Step(s.Heading)
}

// CanMove reports whether the next move stays on the board and off the trail.
func (s *Snake) CanMove() bool {
	if collision.HitsWall(s.Head, s.Heading) {
		return false
	}
	return !collision.HitsSelf(s.Next(), s.Body, s.evicting())
}

// Move is the outcome of one committed step.
type Move struct {
	Stamped  grid.Cell
	Evicted  grid.Cell
	DidEvict bool
}

// Move stamps the current head onto the trail, drops the oldest cell if the
// trail outgrew the target, and steps the head. Callers check CanMove first.
func (s *Snake) Move() Move {
	m := Move{Stamped: s.Head}
	s.Body = append(s.Body, s.Head)
	if len(s.Body) > s.TargetLength {
		m.Evicted, m.DidEvict = s.Body[0], true
		s.Body = s.Body[1:]
	}
	s.Head = s.Next()
	return m
}
