package greedy

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/they4kman/gosnake/game"
	"github.com/they4kman/gosnake/util/collections"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestFirstStepTowardsFood(t *testing.T) {
	cases := []struct {
		name     string
		snake    []game.Cell
		current  game.Direction
		food     game.Cell
		expected game.Direction
	}{
		{"straight ahead", []game.Cell{{X: 10, Y: 10}, {X: 10, Y: 11}}, game.Up, game.Cell{X: 10, Y: 2}, game.Up},
		{"to the left", []game.Cell{{X: 10, Y: 10}, {X: 10, Y: 11}}, game.Up, game.Cell{X: 3, Y: 10}, game.Left},
		{"to the right", []game.Cell{{X: 10, Y: 10}, {X: 10, Y: 11}}, game.Up, game.Cell{X: 15, Y: 10}, game.Right},
		// Food behind: can't reverse, so go around
		{"behind", []game.Cell{{X: 10, Y: 10}, {X: 10, Y: 9}}, game.Down, game.Cell{X: 10, Y: 5}, game.Left},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			director := New(quietLogger())
			snapshot := game.Snapshot{Snake: tc.snake, Direction: tc.current, Food: tc.food}
			director.Start(snapshot)

			direction, ok := director.Act(snapshot)
			if !ok {
				t.Fatalf("Expected a move")
			}
			if tc.name == "behind" {
				if direction != game.Left && direction != game.Right {
					t.Errorf("Expected a sideways move, got %v", direction)
				}
				return
			}
			if direction != tc.expected {
				t.Errorf("Expected %v, got %v", tc.expected, direction)
			}
		})
	}
}

func TestRoomiestMoveWhenFoodUnreachable(t *testing.T) {
	// Up and left both lead into single-cell pockets, right into the open board
	snake := []game.Cell{{X: 1, Y: 1}, {X: 1, Y: 2}, {X: 0, Y: 2}}
	occupied := collections.NewSet(snake...)
	occupied.Add(game.Cell{X: 0, Y: 0})
	occupied.Add(game.Cell{X: 2, Y: 0})

	direction, ok := roomiestMove(game.Cell{X: 1, Y: 1}, game.Up, occupied)
	if !ok {
		t.Fatalf("Expected a safe move")
	}
	if direction != game.Right {
		t.Errorf("Expected %v, got %v", game.Right, direction)
	}
}

func TestNoSafeMove(t *testing.T) {
	// Boxed in at the corner: wall left and up, body right
	snake := []game.Cell{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 0}}
	_, ok := roomiestMove(game.Cell{X: 0, Y: 0}, game.Up, collections.NewSet(snake...))
	if ok {
		t.Errorf("Expected no safe move")
	}
}

// The director alone should clear a few foods on an empty board
func TestDirectorPlaysAGame(t *testing.T) {
	engine := game.NewEngine(21, quietLogger())
	director := New(quietLogger())
	engine.Start()
	director.Start(engine.Snapshot())

	for i := 0; i < 2000 && engine.Status() == game.Playing; i++ {
		snapshot := engine.Snapshot()
		direction, ok := director.Act(snapshot)
		if ok {
			if direction.IsReverse(snapshot.Direction) {
				t.Fatalf("Director chose to reverse from %v", snapshot.Direction)
			}
			engine.SetDirection(direction)
		}
		if _, err := engine.Tick(); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
	}
	director.End()

	if score := engine.Snapshot().Score; score < 5*game.ScoreIncrement {
		t.Errorf("Expected the greedy director to score at least %d, got %d", 5*game.ScoreIncrement, score)
	}
}
