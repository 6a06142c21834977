package audio

import (
	"io"
	"math"
	"testing"

	"github.com/gopxl/beep"
	"github.com/sirupsen/logrus"
	"github.com/they4kman/gosnake/game"
)

// drain streams s to the end and returns the sample count and peak amplitude
func drain(s beep.Streamer) (int, float64) {
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for {
		n, ok := s.Stream(buf)
		for _, sample := range buf[:n] {
			peak = math.Max(peak, math.Max(math.Abs(sample[0]), math.Abs(sample[1])))
		}
		total += n
		if !ok {
			return total, peak
		}
	}
}

func TestEatTone(t *testing.T) {
	streamer, err := eatTone(sampleRate)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	total, peak := drain(streamer)
	if expected := 2 * sampleRate.N(eatNoteLength); total != expected {
		t.Errorf("Expected %d samples, got %d", expected, total)
	}
	if peak == 0 || peak > 1 {
		t.Errorf("Expected a peak within (0, 1], got %f", peak)
	}
}

func TestCrashTone(t *testing.T) {
	total, peak := drain(crashTone(sampleRate))
	if expected := sampleRate.N(crashLength); total != expected {
		t.Errorf("Expected %d samples, got %d", expected, total)
	}
	if peak == 0 || peak > 0.5 {
		t.Errorf("Expected a peak within (0, 0.5], got %f", peak)
	}
}

func TestSoundsNeedInitialize(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)
	sounds := NewSoundManager(log)

	// Without a speaker these are no-ops
	sounds.OnTick(game.TickResult{Outcome: game.Ate})
	sounds.OnTick(game.TickResult{Outcome: game.HitWall})
	sounds.OnTick(game.TickResult{Outcome: game.Moved})
	sounds.Cleanup()
}
