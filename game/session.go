package game

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
)

const intentBufferSize = 16

type TickListener func(TickResult)

type GameEndListener func(*BoardSnapshot)

// Session drives an Engine from a single goroutine. Input arrives through
// Send and is applied between ticks; renderers read the latest published
// Snapshot at their own pace.
type Session struct {
	engine   *Engine
	director Director

	intents  chan Intent
	snapshot atomic.Pointer[Snapshot]

	tickListeners    []TickListener
	gameEndListeners []GameEndListener

	// Timer source; replaced in tests
	after func(time.Duration) <-chan time.Time

	log logrus.FieldLogger
}

func NewSession(engine *Engine, log logrus.FieldLogger) *Session {
	if log == nil {
		log = logrus.StandardLogger()
	}

	session := &Session{
		engine:  engine,
		intents: make(chan Intent, intentBufferSize),
		after:   time.After,
		log:     log,
	}
	session.publish()
	return session
}

// SetDirector hands steering to director; nil gives it back to the player.
// Must be called before Run.
func (session *Session) SetDirector(director Director) {
	session.director = director
}

// OnTick registers a listener for every tick result. Must be called before Run.
func (session *Session) OnTick(listener TickListener) {
	session.tickListeners = append(session.tickListeners, listener)
}

// OnGameEnd registers a listener called once per finished game. Must be
// called before Run.
func (session *Session) OnGameEnd(listener GameEndListener) {
	session.gameEndListeners = append(session.gameEndListeners, listener)
}

// Send queues an intent for the session goroutine. It never blocks; intents
// arriving faster than the session drains them are dropped.
func (session *Session) Send(intent Intent) bool {
	select {
	case session.intents <- intent:
		return true
	default:
		session.log.WithField("intent", intent.String()).Debug("Dropped intent, queue full")
		return false
	}
}

// Snapshot returns the most recently published state
func (session *Session) Snapshot() Snapshot {
	return *session.snapshot.Load()
}

// Run processes intents and ticks until ctx is done
func (session *Session) Run(ctx context.Context) error {
	var tick <-chan time.Time

	// The timer is armed with the speed current at the end of each step, so a
	// speed change applies from the next scheduled tick
	arm := func() {
		if session.engine.Status() == Playing {
			tick = session.after(session.engine.Speed())
		} else {
			tick = nil
		}
	}

	if session.engine.Status() == Playing {
		session.startDirector()
	}
	arm()

	for {
		select {
		case <-ctx.Done():
			if session.director != nil && session.engine.Status() == Playing {
				session.director.End()
			}
			return nil

		case intent := <-session.intents:
			began := session.apply(intent)
			session.publish()
			if began {
				arm()
			}

		case <-tick:
			// Input queued before the tick fired is applied before it
			if session.drain() {
				session.publish()
				arm()
				continue
			}
			session.step()
			session.publish()
			arm()
		}
	}
}

// drain applies every queued intent, reporting whether a new game began
func (session *Session) drain() bool {
	began := false
	for {
		select {
		case intent := <-session.intents:
			if session.apply(intent) {
				began = true
			}
		default:
			return began
		}
	}
}

// apply handles one intent, reporting whether a new game began
func (session *Session) apply(intent Intent) bool {
	if direction, ok := intent.Direction(); ok {
		if session.director == nil {
			session.engine.SetDirection(direction)
		}
		return false
	}

	switch intent {
	case IntentStart:
		return session.start()
	case IntentRestart:
		return session.restart()
	case IntentStartOrRestart:
		switch session.engine.Status() {
		case Idle:
			return session.start()
		case GameOver:
			return session.restart()
		}
	}
	return false
}

func (session *Session) start() bool {
	if !session.engine.Start() {
		return false
	}
	session.startDirector()
	return true
}

func (session *Session) restart() bool {
	wasPlaying := session.engine.Status() == Playing
	if err := session.engine.Reset(); err != nil {
		return false
	}
	if wasPlaying && session.director != nil {
		session.director.End()
	}
	session.startDirector()
	return true
}

func (session *Session) startDirector() {
	if session.director != nil {
		session.director.Start(session.engine.Snapshot())
	}
}

func (session *Session) step() {
	if session.director != nil {
		if direction, ok := session.director.Act(session.engine.Snapshot()); ok {
			session.engine.SetDirection(direction)
		}
	}

	// Faults are logged by the engine and reported through the outcome
	result, _ := session.engine.Tick()

	for _, listener := range session.tickListeners {
		listener(result)
	}

	if session.engine.Status() == GameOver {
		session.endGame()
	}
}

func (session *Session) endGame() {
	if session.director != nil {
		session.director.End()
	}

	snapshot := session.engine.BoardSnapshot()
	for _, listener := range session.gameEndListeners {
		listener(snapshot)
	}
}

func (session *Session) publish() {
	snapshot := session.engine.Snapshot()
	session.snapshot.Store(&snapshot)
}
