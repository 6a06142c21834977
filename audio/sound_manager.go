package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/sirupsen/logrus"
	"github.com/they4kman/gosnake/game"
)

const (
	sampleRate = beep.SampleRate(44100)
)

// Tone settings
const (
	eatLowFreq    = 660.0
	eatHighFreq   = 990.0
	eatNoteLength = 45 * time.Millisecond

	crashStartFreq = 440.0
	crashEndFreq   = 90.0
	crashLength    = 350 * time.Millisecond

	// In beep's exponential volume units (base 2)
	toneVolume = -1.5
)

// SoundManager plays the game's sound effects
type SoundManager struct {
	mu          sync.Mutex
	initialized bool
	log         logrus.FieldLogger
}

func NewSoundManager(log logrus.FieldLogger) *SoundManager {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &SoundManager{log: log}
}

// Initialize sets up the speaker
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	sm.initialized = false
}

// OnTick plays the sound matching a tick outcome. It fits Session.OnTick.
func (sm *SoundManager) OnTick(result game.TickResult) {
	switch {
	case result.Outcome == game.Ate:
		sm.PlayEat()
	case result.Outcome.IsCollision():
		sm.PlayCrash()
	}
}

func (sm *SoundManager) PlayEat() {
	streamer, err := eatTone(sampleRate)
	if err != nil {
		sm.log.WithError(err).Debug("Could not build eat tone")
		return
	}
	sm.play(streamer)
}

func (sm *SoundManager) PlayCrash() {
	sm.play(crashTone(sampleRate))
}

func (sm *SoundManager) play(streamer beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Play(&effects.Volume{Streamer: streamer, Base: 2, Volume: toneVolume})
}

// eatTone is two short rising notes
func eatTone(sr beep.SampleRate) (beep.Streamer, error) {
	low, err := generators.SineTone(sr, eatLowFreq)
	if err != nil {
		return nil, err
	}
	high, err := generators.SineTone(sr, eatHighFreq)
	if err != nil {
		return nil, err
	}

	n := sr.N(eatNoteLength)
	return beep.Seq(beep.Take(n, low), beep.Take(n, high)), nil
}

// crashTone is a square wave sweeping down, fading out as it goes
func crashTone(sr beep.SampleRate) beep.Streamer {
	total := sr.N(crashLength)
	position := 0
	phase := 0.0

	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		for i := range samples {
			if position >= total {
				return i, i > 0
			}

			progress := float64(position) / float64(total)
			freq := crashStartFreq + (crashEndFreq-crashStartFreq)*progress

			val := 1.0
			if phase >= 0.5 {
				val = -1.0
			}
			val *= 0.5 * (1 - progress)

			samples[i][0] = val
			samples[i][1] = val

			phase += freq / float64(sr)
			phase -= math.Floor(phase)
			position++
		}
		return len(samples), true
	})
}
