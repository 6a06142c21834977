package game

import (
	"math/rand"
	"time"

	"github.com/pkg/errors"
)

var ErrBoardFull = errors.New("no free cell left for food")

type Outcome int

const (
	// The engine was not playing; nothing changed
	NoOp Outcome = iota
	Moved
	Ate
	HitWall
	HitSelf
	// Food could not be placed; the game was ended
	Fault
)

var outcomeNames = map[Outcome]string{
	NoOp:    "no-op",
	Moved:   "moved",
	Ate:     "ate",
	HitWall: "hit wall",
	HitSelf: "hit self",
	Fault:   "fault",
}

func (outcome Outcome) String() string {
	if name, ok := outcomeNames[outcome]; ok {
		return name
	}
	return "unknown"
}

// IsCollision reports whether the outcome ended the game by a crash
func (outcome Outcome) IsCollision() bool {
	return outcome == HitWall || outcome == HitSelf
}

type TickResult struct {
	Outcome Outcome
	Head    Cell
	Score   int
}

// State is everything one game session mutates
type State struct {
	Snake     *Snake
	Food      Cell
	Direction Direction
	// Direction requested since the last tick, applied by the next one
	Pending Direction
	Score   int
	Speed   time.Duration
	Status  GameStatus
}

func newState() State {
	return State{
		Snake:     newSnake(InitialSnake()),
		Direction: InitialDirection,
		Pending:   InitialDirection,
		Speed:     InitialSpeed,
		Status:    Idle,
	}
}

// resetState puts the starting layout back and begins playing
func resetState(state *State, rng *rand.Rand) error {
	state.Snake = newSnake(InitialSnake())
	state.Direction = InitialDirection
	state.Pending = InitialDirection
	state.Score = 0
	state.Speed = InitialSpeed

	food, err := relocateFood(state.Snake, rng)
	if err != nil {
		state.Status = GameOver
		return err
	}
	state.Food = food
	state.Status = Playing
	return nil
}

// advance moves the snake by one cell
func advance(state *State, rng *rand.Rand) (TickResult, error) {
	if state.Status != Playing {
		return TickResult{Outcome: NoOp, Head: state.Snake.Head(), Score: state.Score}, nil
	}

	state.Direction = state.Pending
	head := state.Snake.Head().Step(state.Direction)
	result := TickResult{Head: head, Score: state.Score}

	if !head.InBounds() {
		state.Status = GameOver
		result.Outcome = HitWall
		return result, nil
	}

	// The tail has not moved out of the way yet, so running into it counts
	if state.Snake.Contains(head) {
		state.Status = GameOver
		result.Outcome = HitSelf
		return result, nil
	}

	state.Snake.pushHead(head)

	if head != state.Food {
		state.Snake.popTail()
		result.Outcome = Moved
		return result, nil
	}

	state.Score += ScoreIncrement
	state.Speed -= SpeedStep
	if state.Speed < MinSpeed {
		state.Speed = MinSpeed
	}
	result.Score = state.Score
	result.Outcome = Ate

	food, err := relocateFood(state.Snake, rng)
	if err != nil {
		state.Status = GameOver
		result.Outcome = Fault
		return result, err
	}
	state.Food = food
	return result, nil
}

// relocateFood draws random cells until one is off the snake. After
// MaxFoodAttempts misses it picks among the remaining free cells instead.
func relocateFood(snake *Snake, rng *rand.Rand) (Cell, error) {
	for attempt := 0; attempt < MaxFoodAttempts; attempt++ {
		candidate := Cell{X: rng.Intn(BoardSize), Y: rng.Intn(BoardSize)}
		if !snake.Contains(candidate) {
			return candidate, nil
		}
	}

	free := freeCells(snake)
	if len(free) == 0 {
		return Cell{}, ErrBoardFull
	}
	return free[rng.Intn(len(free))], nil
}

// steer records the requested direction for the next tick. Reversing onto
// the body is refused.
func steer(state *State, requested Direction) bool {
	if state.Status != Playing {
		return false
	}
	if state.Direction.IsReverse(requested) {
		return false
	}
	state.Pending = requested
	return true
}
