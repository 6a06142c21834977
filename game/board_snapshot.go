package game

import (
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// BoardSnapshot is the on-disk form of a game position
type BoardSnapshot struct {
	Seed      int64     `yaml:"seed"`
	Status    string    `yaml:"status"`
	Score     int       `yaml:"score"`
	SpeedMs   int64     `yaml:"speed_ms"`
	Direction Direction `yaml:"direction"`
	Food      Cell      `yaml:"food,flow"`
	Snake     []Cell    `yaml:"snake,flow"`

	// Drawing of the board for people reading the file; ignored on load
	SerializedBoard string `yaml:"board,omitempty"`
}

func (engine *Engine) BoardSnapshot() *BoardSnapshot {
	snapshot := engine.Snapshot()
	return &BoardSnapshot{
		Seed:            engine.seed,
		Status:          snapshot.Status.String(),
		Score:           snapshot.Score,
		SpeedMs:         snapshot.Speed.Milliseconds(),
		Direction:       snapshot.Direction,
		Food:            snapshot.Food,
		Snake:           snapshot.Snake,
		SerializedBoard: DrawBoard(snapshot),
	}
}

func (snapshot *BoardSnapshot) Serialize() string {
	out, err := yaml.Marshal(snapshot)
	if err != nil {
		panic(err)
	}

	return string(out)
}

func LoadSnapshot(in string) (*BoardSnapshot, error) {
	var snapshot BoardSnapshot
	if err := yaml.Unmarshal([]byte(in), &snapshot); err != nil {
		return nil, errors.Wrap(err, "parsing snapshot")
	}
	return &snapshot, nil
}

func parseGameStatus(name string) (GameStatus, error) {
	for status, statusName := range gameStatusNames {
		if statusName == name {
			return status, nil
		}
	}
	return Idle, errors.Errorf("invalid status %q", name)
}

// Restore replaces the engine state with the snapshot's position. With resume
// set, the restored game is playing regardless of the recorded status.
func (engine *Engine) Restore(snapshot *BoardSnapshot, resume bool) error {
	snake, err := NewSnake(snapshot.Snake)
	if err != nil {
		return errors.Wrap(err, "invalid snapshot")
	}

	if !snapshot.Food.InBounds() {
		return errors.Errorf("invalid snapshot: food %v is out of bounds", snapshot.Food)
	}
	if snake.Contains(snapshot.Food) {
		return errors.Errorf("invalid snapshot: food %v is on the snake", snapshot.Food)
	}
	if snapshot.Score < 0 {
		return errors.Errorf("invalid snapshot: negative score %d", snapshot.Score)
	}

	speed := time.Duration(snapshot.SpeedMs) * time.Millisecond
	if speed < MinSpeed || speed > InitialSpeed {
		return errors.Errorf("invalid snapshot: speed %v outside [%v, %v]", speed, MinSpeed, InitialSpeed)
	}

	if snake.Len() > 1 && snake.Head().Step(snapshot.Direction) == snapshot.Snake[1] {
		return errors.Errorf("invalid snapshot: direction %v points back into the body", snapshot.Direction)
	}

	status := Playing
	if !resume {
		if status, err = parseGameStatus(snapshot.Status); err != nil {
			return errors.Wrap(err, "invalid snapshot")
		}
	}

	engine.state = State{
		Snake:     snake,
		Food:      snapshot.Food,
		Direction: snapshot.Direction,
		Pending:   snapshot.Direction,
		Score:     snapshot.Score,
		Speed:     speed,
		Status:    status,
	}

	if snapshot.Seed != 0 {
		engine.seed = snapshot.Seed
		engine.rand.Seed(snapshot.Seed)
	}

	engine.log.WithFields(engine.fields()).Info("Restored snapshot")
	return nil
}
