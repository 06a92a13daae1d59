package snake

import "fmt"

// Snake is the ordered body of the snake, head at index 0. Wrap-around
// keeps every segment within [0, boardSize) on both axes.
type Snake struct {
	body  []Coord
	board Board
}

// NewSnake creates a snake with initialSize segments on a board of side
// boardSize. The body starts as a vertical run at x=0 covering
// y=0..initialSize-1; segments are placed in increasing y order and each
// new segment becomes the head, so the head starts at y=initialSize-1.
func NewSnake(initialSize, boardSize int) (*Snake, error) {
	if initialSize <= 0 {
		return nil, fmt.Errorf("%w: initial snake size must be positive, got %d", ErrInvalidConfiguration, initialSize)
	}
	board, err := NewBoard(boardSize)
	if err != nil {
		return nil, err
	}

	body := make([]Coord, initialSize)
	for i := range body {
		body[i] = Coord{X: 0, Y: initialSize - 1 - i}
	}
	return &Snake{body: body, board: board}, nil
}

// Head returns the leading segment. The body is never empty after
// construction; an empty body here is a broken invariant.
func (s *Snake) Head() Coord {
	if len(s.body) == 0 {
		panic(ErrEmptyBody)
	}
	return s.body[0]
}

// Move advances the snake one cell in the given direction and reports
// whether the new head landed on another body segment. The body is
// mutated first and checked after, so on a collision it keeps the
// colliding head position for the final render. Callers must treat a
// collision as terminal and stop issuing further moves.
func (s *Snake) Move(d Direction) (collided bool) {
	newHead := s.board.Wrap(s.Head().Add(d.Delta()))

	// Prepend the new head, then drop the old tail to keep the length.
	s.body = append([]Coord{newHead}, s.body...)
	s.body = s.body[:len(s.body)-1]

	for _, seg := range s.body[1:] {
		if seg == newHead {
			return true
		}
	}
	return false
}

// Grow appends a duplicate of the tail segment, increasing the length by
// one. The new segment shares the tail's cell until the next move pulls
// them apart.
func (s *Snake) Grow() {
	s.body = append(s.body, s.body[len(s.body)-1])
}

// Body returns a copy of the body, head first.
func (s *Snake) Body() []Coord {
	out := make([]Coord, len(s.body))
	copy(out, s.body)
	return out
}

// Len returns the number of body segments.
func (s *Snake) Len() int {
	return len(s.body)
}
