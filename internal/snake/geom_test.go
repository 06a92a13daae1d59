package snake

import "testing"

func TestBoardRejectsNonPositiveSize(t *testing.T) {
	for _, size := range []int{0, -1, -10} {
		if _, err := NewBoard(size); err == nil {
			t.Errorf("NewBoard(%d) should fail", size)
		}
	}
}

func TestWrapLowEdge(t *testing.T) {
	board, err := NewBoard(5)
	if err != nil {
		t.Fatalf("NewBoard(5) failed: %v", err)
	}

	// Moving left from x=0 wraps to x=N-1; same for up from y=0.
	left := board.Wrap(Coord{X: 0, Y: 2}.Add(DirLeft.Delta()))
	if left != (Coord{X: 4, Y: 2}) {
		t.Errorf("left wrap = %v, expected (4,2)", left)
	}

	up := board.Wrap(Coord{X: 2, Y: 0}.Add(DirUp.Delta()))
	if up != (Coord{X: 2, Y: 4}) {
		t.Errorf("up wrap = %v, expected (2,4)", up)
	}
}

func TestWrapHighEdge(t *testing.T) {
	board, _ := NewBoard(5)

	right := board.Wrap(Coord{X: 4, Y: 2}.Add(DirRight.Delta()))
	if right != (Coord{X: 0, Y: 2}) {
		t.Errorf("right wrap = %v, expected (0,2)", right)
	}

	down := board.Wrap(Coord{X: 2, Y: 4}.Add(DirDown.Delta()))
	if down != (Coord{X: 2, Y: 0}) {
		t.Errorf("down wrap = %v, expected (2,0)", down)
	}
}

func TestWrapSizeOneBoard(t *testing.T) {
	board, _ := NewBoard(1)

	// Every move on a 1x1 board lands back on the origin.
	for _, d := range []Direction{DirUp, DirDown, DirLeft, DirRight} {
		got := board.Wrap(Coord{}.Add(d.Delta()))
		if got != (Coord{}) {
			t.Errorf("wrap %s on 1x1 board = %v, expected (0,0)", d, got)
		}
	}
}

func TestWrapStaysInBounds(t *testing.T) {
	board, _ := NewBoard(7)

	for _, c := range []Coord{{-1, -1}, {7, 7}, {-8, 15}, {100, -100}} {
		got := board.Wrap(c)
		if got.X < 0 || got.X >= 7 || got.Y < 0 || got.Y >= 7 {
			t.Errorf("Wrap(%v) = %v out of [0,7)", c, got)
		}
	}
}

func TestDirectionDeltas(t *testing.T) {
	tests := []struct {
		dir  Direction
		want Coord
	}{
		{DirUp, Coord{0, -1}},
		{DirDown, Coord{0, 1}},
		{DirLeft, Coord{-1, 0}},
		{DirRight, Coord{1, 0}},
	}

	for _, tt := range tests {
		if got := tt.dir.Delta(); got != tt.want {
			t.Errorf("%s delta = %v, expected %v", tt.dir, got, tt.want)
		}
	}
}
