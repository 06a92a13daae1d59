package snake

import "math/rand"

// Food is the single cell the snake grows by eating. Its position is
// replaced, never mutated in place.
type Food struct {
	pos Coord
}

// NewFood places food uniformly at random on the board. Occupied cells
// are not excluded: food may spawn under the snake's body, matching the
// reference behavior.
func NewFood(rng *rand.Rand, boardSize int) *Food {
	f := &Food{}
	f.Reposition(rng, boardSize)
	return f
}

// Position returns the food's current cell.
func (f *Food) Position() Coord {
	return f.pos
}

// Reposition assigns a new cell chosen uniformly at random from
// [0, boardSize) on both axes.
func (f *Food) Reposition(rng *rand.Rand, boardSize int) {
	f.pos = Coord{X: rng.Intn(boardSize), Y: rng.Intn(boardSize)}
}
