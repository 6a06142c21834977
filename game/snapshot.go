package game

import "time"

// Snapshot is a render-ready copy of the engine state. It shares nothing with
// the engine, so it may be held across ticks and read from any goroutine.
type Snapshot struct {
	// Head first
	Snake      []Cell
	Food       Cell
	Score      int
	Status     GameStatus
	SpeedLevel int
	Speed      time.Duration
	Direction  Direction
}

func (snapshot Snapshot) Head() Cell {
	if len(snapshot.Snake) == 0 {
		return Cell{}
	}
	return snapshot.Snake[0]
}

func (snapshot Snapshot) Len() int {
	return len(snapshot.Snake)
}

func snapshotOf(state *State) Snapshot {
	return Snapshot{
		Snake:      state.Snake.Cells(),
		Food:       state.Food,
		Score:      state.Score,
		Status:     state.Status,
		SpeedLevel: SpeedLevel(state.Speed),
		Speed:      state.Speed,
		Direction:  state.Direction,
	}
}
