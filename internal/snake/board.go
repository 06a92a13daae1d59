package snake

import "fmt"

// Board is the immutable square extent of the play field. It defines the
// modulus for all coordinate wrap-around arithmetic and never changes for
// the lifetime of a simulation.
type Board struct {
	size int
}

// NewBoard creates a board with the given side length.
func NewBoard(size int) (Board, error) {
	if size <= 0 {
		return Board{}, fmt.Errorf("%w: board size must be positive, got %d", ErrInvalidConfiguration, size)
	}
	return Board{size: size}, nil
}

// Size returns the board's side length.
func (b Board) Size() int {
	return b.size
}

// Wrap maps a coordinate onto the torus. Moving past one edge re-enters
// from the opposite edge; negative values wrap to size-1.
func (b Board) Wrap(c Coord) Coord {
	return Coord{
		X: wrap(c.X, b.size),
		Y: wrap(c.Y, b.size),
	}
}

func wrap(v, size int) int {
	v %= size
	if v < 0 {
		v += size
	}
	return v
}
