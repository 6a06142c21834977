package game

import (
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"
)

// Engine owns the state of one game and applies the rules to it. It is not
// safe for concurrent use; Session serializes access to it.
type Engine struct {
	state State
	seed  int64
	rand  *rand.Rand
	log   logrus.FieldLogger
}

// NewEngine returns an idle engine with the starting layout and food placed
func NewEngine(seed int64, log logrus.FieldLogger) *Engine {
	if log == nil {
		log = logrus.StandardLogger()
	}

	engine := &Engine{
		state: newState(),
		seed:  seed,
		rand:  rand.New(rand.NewSource(seed)),
		log:   log,
	}

	// Three cells on a 400-cell board always leave room
	food, err := relocateFood(engine.state.Snake, engine.rand)
	if err != nil {
		panic(err)
	}
	engine.state.Food = food
	return engine
}

func (engine *Engine) Seed() int64 {
	return engine.seed
}

func (engine *Engine) Status() GameStatus {
	return engine.state.Status
}

func (engine *Engine) Speed() time.Duration {
	return engine.state.Speed
}

func (engine *Engine) Snapshot() Snapshot {
	return snapshotOf(&engine.state)
}

// Start begins the first game. It does nothing unless the engine is idle.
func (engine *Engine) Start() bool {
	if engine.state.Status != Idle {
		return false
	}
	engine.state.Status = Playing
	engine.log.WithFields(engine.fields()).Info("Game started")
	return true
}

// Reset restores the starting layout and begins playing, whatever the
// current status
func (engine *Engine) Reset() error {
	previous := engine.state.Status
	if err := resetState(&engine.state, engine.rand); err != nil {
		engine.log.WithError(err).Error("Could not reset game")
		return err
	}
	engine.log.WithFields(engine.fields()).WithField("previous", previous.String()).Info("Game reset")
	return nil
}

// SetDirection requests a turn for the next tick. It reports whether the
// request was accepted.
func (engine *Engine) SetDirection(direction Direction) bool {
	if !steer(&engine.state, direction) {
		engine.log.WithFields(logrus.Fields{
			"requested": direction.String(),
			"current":   engine.state.Direction.String(),
			"status":    engine.state.Status.String(),
		}).Debug("Ignored direction change")
		return false
	}
	return true
}

// Tick advances the game by one step
func (engine *Engine) Tick() (TickResult, error) {
	result, err := advance(&engine.state, engine.rand)

	switch result.Outcome {
	case Ate:
		engine.log.WithFields(engine.fields()).Debug("Ate food")
	case HitWall, HitSelf:
		engine.log.WithFields(engine.fields()).WithField("outcome", result.Outcome.String()).Info("Game over")
	case Fault:
		engine.log.WithFields(engine.fields()).WithError(err).Error("Game ended by engine fault")
	}
	return result, err
}

func (engine *Engine) fields() logrus.Fields {
	return logrus.Fields{
		"score":  engine.state.Score,
		"length": engine.state.Snake.Len(),
		"head":   engine.state.Snake.Head().String(),
		"speed":  engine.state.Speed.String(),
		"status": engine.state.Status.String(),
	}
}
