package snake

import "slices"

// neckLength is the number of segments right behind the head that
// HasSelfCollided skips. Single-step movement can never reach them.
const neckLength = 4

// Snake is an ordered run of occupied cells with the head at index 0.
// None of its operations fail: a reversal request is simply ignored.
type Snake struct {
	board     Board
	positions []Cell
	length    int // target length; grows by one per apple
	direction Direction
	pending   Direction // DirNone when nothing is queued
	last      Cell      // cell dropped from the tail by the latest Advance
	hasLast   bool
}

// NewSnake creates a snake in its initial state on the given board.
func NewSnake(board Board) *Snake {
	s := &Snake{board: board}
	s.Reset()
	return s
}

// Reset restores the initial state: one cell at the board center heading
// right, nothing queued.
func (s *Snake) Reset() {
	s.positions = []Cell{s.board.Center()}
	s.length = 1
	s.direction = DirRight
	s.pending = DirNone
	s.last = Cell{}
	s.hasLast = false
}

// QueueDirection remembers d for the next CommitDirection unless it is the
// exact opposite of the current direction.
func (s *Snake) QueueDirection(d Direction) {
	if d == DirNone || d == s.direction.Opposite() {
		return
	}
	s.pending = d
}

// CommitDirection makes the queued direction current and clears the queue.
func (s *Snake) CommitDirection() {
	if s.pending == DirNone {
		return
	}
	s.direction = s.pending
	s.pending = DirNone
}

// Advance moves the head one cell in the current direction, wrapping
// around the board edges. The tail is dropped only while the snake is
// longer than its target length, so exactly one cell is added and at most
// one removed.
func (s *Snake) Advance() {
	step := s.direction.Vector().Scale(s.board.CellSize())
	head := s.board.Wrap(s.Head().Add(step))

	s.positions = slices.Insert(s.positions, 0, head)
	s.hasLast = false
	if len(s.positions) > s.length {
		s.last = s.positions[len(s.positions)-1]
		s.hasLast = true
		s.positions = s.positions[:len(s.positions)-1]
	}
}

// HasSelfCollided reports whether the head overlaps a segment at index 4 or
// beyond. Always false for snakes of four cells or fewer.
func (s *Snake) HasSelfCollided() bool {
	if len(s.positions) <= neckLength {
		return false
	}
	return slices.Contains(s.positions[neckLength:], s.Head())
}

// Grow raises the target length by one. The next Advance keeps the tail.
func (s *Snake) Grow() {
	s.length++
}

// Head returns the head cell.
func (s *Snake) Head() Cell {
	return s.positions[0]
}

// Positions returns a copy of the occupied cells, head first.
func (s *Snake) Positions() []Cell {
	return slices.Clone(s.positions)
}

// Len returns the number of occupied cells.
func (s *Snake) Len() int {
	return len(s.positions)
}

// TargetLength returns the length the snake is growing toward.
func (s *Snake) TargetLength() int {
	return s.length
}

// Direction returns the current movement direction.
func (s *Snake) Direction() Direction {
	return s.direction
}

// LastRemoved returns the tail cell dropped by the latest Advance.
func (s *Snake) LastRemoved() (Cell, bool) {
	return s.last, s.hasLast
}
