package game

import "time"

type GameStatus int

const (
	Idle GameStatus = iota
	Playing
	GameOver
)

var gameStatusNames = map[GameStatus]string{
	Idle:     "idle",
	Playing:  "playing",
	GameOver: "game over",
}

func (status GameStatus) String() string {
	if name, ok := gameStatusNames[status]; ok {
		return name
	}
	return "unknown"
}

// Board dimensions, in cells
const (
	BoardSize = 20
	NumCells  = BoardSize * BoardSize
)

// Scoring and pacing
const (
	ScoreIncrement = 10

	InitialSpeed = 150 * time.Millisecond
	SpeedStep    = 5 * time.Millisecond
	MinSpeed     = 50 * time.Millisecond
)

// Starting layout
const (
	InitialDirection = Up
)

// Number of random draws before food placement falls back to scanning the
// free cells
const MaxFoodAttempts = 2 * NumCells

// InitialSnake returns the starting body, head first
func InitialSnake() []Cell {
	return []Cell{
		{X: 10, Y: 10},
		{X: 10, Y: 11},
		{X: 10, Y: 12},
	}
}

// SpeedLevel converts a tick interval into a 1-based level for display
func SpeedLevel(speed time.Duration) int {
	if speed > InitialSpeed {
		speed = InitialSpeed
	}
	return int((InitialSpeed-speed)/SpeedStep) + 1
}

// Hint is the line shown to the player for a status
func (status GameStatus) Hint() string {
	switch status {
	case Idle:
		return "press enter to start"
	case GameOver:
		return "game over - enter to restart"
	default:
		return ""
	}
}
