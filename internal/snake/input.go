package snake

// Input is one turn's worth of player intent, already mapped from raw
// keys by the driving loop.
type Input int

const (
	// InputNone marks an unrecognized key. The simulation ignores it and
	// the driver should re-prompt.
	InputNone Input = iota
	InputUp
	InputDown
	InputLeft
	InputRight
	InputQuit
)

// Direction converts the input to a movement direction. The second
// return is false for InputNone and InputQuit.
func (in Input) Direction() (Direction, bool) {
	switch in {
	case InputUp:
		return DirUp, true
	case InputDown:
		return DirDown, true
	case InputLeft:
		return DirLeft, true
	case InputRight:
		return DirRight, true
	default:
		return 0, false
	}
}

// TurnResult reports what a single ApplyTurn call did.
type TurnResult int

const (
	// TurnContinued means the snake moved and nothing else happened.
	TurnContinued TurnResult = iota
	// TurnGrew means the head reached the food; the snake grew and the
	// food was relocated.
	TurnGrew
	// TurnTerminated means the simulation is over (see EndReason), or a
	// turn was attempted after termination.
	TurnTerminated
	// TurnInvalid means the input was not recognized. Recoverable; the
	// state is unchanged.
	TurnInvalid
)

func (r TurnResult) String() string {
	switch r {
	case TurnContinued:
		return "continued"
	case TurnGrew:
		return "grew"
	case TurnTerminated:
		return "terminated"
	case TurnInvalid:
		return "invalid input"
	default:
		return "unknown"
	}
}

// EndReason distinguishes why a simulation terminated.
type EndReason int

const (
	// EndNone means the simulation is still running.
	EndNone EndReason = iota
	// EndSelfCollision means the snake's head landed on its own body.
	EndSelfCollision
	// EndQuit means the player asked to stop.
	EndQuit
)

func (r EndReason) String() string {
	switch r {
	case EndNone:
		return "running"
	case EndSelfCollision:
		return "self collision"
	case EndQuit:
		return "quit"
	default:
		return "unknown"
	}
}
