package snake

import (
	"math/rand"
	"time"
)

// State is the simulation's lifecycle state.
type State int

const (
	StateRunning State = iota
	StateTerminated
)

func (s State) String() string {
	if s == StateTerminated {
		return "terminated"
	}
	return "running"
}

// Config carries the parameters for a new simulation. BoardSize and
// InitialLength must be positive.
type Config struct {
	BoardSize     int
	InitialLength int
	Seed          int64 // RNG seed; 0 means derive from the current time
}

// Simulation composes one board, one snake and one food and applies
// discrete turns. It is strictly single-threaded and turn-synchronous: a
// single caller drives ApplyTurn serially, and each call runs to
// completion before returning. A terminated simulation cannot be
// restarted; construct a fresh one to play again.
type Simulation struct {
	board  Board
	snake  *Snake
	food   *Food
	rng    *rand.Rand
	turns  int
	state  State
	reason EndReason
}

// New creates a running simulation from validated positive parameters.
func New(cfg Config) (*Simulation, error) {
	board, err := NewBoard(cfg.BoardSize)
	if err != nil {
		return nil, err
	}
	body, err := NewSnake(cfg.InitialLength, cfg.BoardSize)
	if err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	return &Simulation{
		board: board,
		snake: body,
		food:  NewFood(rng, board.Size()),
		rng:   rng,
		state: StateRunning,
	}, nil
}

// ApplyTurn processes one directional input: move, then the food/growth
// check. Once terminated, further calls leave the simulation untouched
// and report TurnTerminated.
func (s *Simulation) ApplyTurn(in Input) TurnResult {
	if s.state == StateTerminated {
		return TurnTerminated
	}

	if in == InputQuit {
		s.terminate(EndQuit)
		return TurnTerminated
	}

	dir, ok := in.Direction()
	if !ok {
		return TurnInvalid
	}

	s.turns++
	if s.snake.Move(dir) {
		s.terminate(EndSelfCollision)
		return TurnTerminated
	}

	if s.snake.Head() == s.food.Position() {
		s.snake.Grow()
		s.food.Reposition(s.rng, s.board.Size())
		return TurnGrew
	}

	return TurnContinued
}

func (s *Simulation) terminate(reason EndReason) {
	s.state = StateTerminated
	s.reason = reason
}

// Running reports whether the simulation still accepts turns.
func (s *Simulation) Running() bool {
	return s.state == StateRunning
}

// Reason returns why the simulation terminated, or EndNone while running.
func (s *Simulation) Reason() EndReason {
	return s.reason
}

// Turns returns the number of moves applied so far.
func (s *Simulation) Turns() int {
	return s.turns
}

// Length returns the snake's current length.
func (s *Simulation) Length() int {
	return s.snake.Len()
}
