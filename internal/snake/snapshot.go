package snake

import "strings"

// Snapshot is a copy of everything a renderer needs to draw the grid,
// detached from the simulation's mutable structures.
type Snapshot struct {
	Size   int
	Body   []Coord // head first
	Food   Coord
	State  State
	Reason EndReason
	Turns  int
	Length int
}

// Snapshot returns the current simulation state for rendering.
func (s *Simulation) Snapshot() Snapshot {
	return Snapshot{
		Size:   s.board.Size(),
		Body:   s.snake.Body(),
		Food:   s.food.Position(),
		State:  s.state,
		Reason: s.reason,
		Turns:  s.turns,
		Length: s.snake.Len(),
	}
}

// Grid renders the snapshot as a plain character grid: '.' for empty
// cells, 'S' for snake segments and 'F' for food. Food is drawn after
// the snake, so a food-under-snake overlap displays as 'F'.
func (s Snapshot) Grid() string {
	cells := make([][]byte, s.Size)
	for y := range cells {
		cells[y] = make([]byte, s.Size)
		for x := range cells[y] {
			cells[y][x] = '.'
		}
	}

	for _, seg := range s.Body {
		cells[seg.Y][seg.X] = 'S'
	}
	cells[s.Food.Y][s.Food.X] = 'F'

	var b strings.Builder
	b.Grow(s.Size*s.Size + s.Size)
	for y, row := range cells {
		if y > 0 {
			b.WriteByte('\n')
		}
		b.Write(row)
	}
	return b.String()
}
