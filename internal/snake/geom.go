// Package snake implements the toroidal snake simulation: the board and
// coordinate model, snake movement with self-collision detection, food
// placement, and the turn-by-turn controller. It contains no external
// dependencies (especially no Bubble Tea) to keep game logic pure and
// testable.
package snake

// Coord is a board position. Coords are plain values compared by value
// and copied freely; a fresh one is created on every movement computation.
type Coord struct {
	X, Y int
}

// Add returns the component-wise sum, without wrapping.
func (c Coord) Add(other Coord) Coord {
	return Coord{X: c.X + other.X, Y: c.Y + other.Y}
}

// Direction represents the snake's movement direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// deltas maps each direction to its per-axis step. Up decreases Y and
// down increases it; the board wraps both ways.
var deltas = [...]Coord{
	DirUp:    {X: 0, Y: -1},
	DirDown:  {X: 0, Y: 1},
	DirLeft:  {X: -1, Y: 0},
	DirRight: {X: 1, Y: 0},
}

// Delta returns the (dx, dy) step for this direction.
func (d Direction) Delta() Coord {
	return deltas[d]
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}
