package game

import (
	"strings"
	"testing"
	"time"
)

func TestSnapshotRoundTrip(t *testing.T) {
	engine := NewEngine(11, quietLogger())
	engine.Start()
	engine.SetDirection(Left)
	for i := 0; i < 3; i++ {
		if _, err := engine.Tick(); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
	}

	serialized := engine.BoardSnapshot().Serialize()
	loaded, err := LoadSnapshot(serialized)
	if err != nil {
		t.Fatalf("Unexpected error loading %q: %v", serialized, err)
	}

	restored := NewEngine(1, quietLogger())
	if err := restored.Restore(loaded, false); err != nil {
		t.Fatalf("Unexpected error restoring: %v", err)
	}

	expected, got := engine.Snapshot(), restored.Snapshot()
	if !equalCells(expected.Snake, got.Snake) {
		t.Errorf("Expected snake %v, got %v", expected.Snake, got.Snake)
	}
	if expected.Food != got.Food || expected.Score != got.Score || expected.Speed != got.Speed ||
		expected.Direction != got.Direction || expected.Status != got.Status {
		t.Errorf("Expected %+v, got %+v", expected, got)
	}
	if restored.Seed() != 11 {
		t.Errorf("Expected seed 11, got %d", restored.Seed())
	}
}

func TestLoadSnapshotDocument(t *testing.T) {
	doc := `
seed: 5
status: game over
score: 20
speed_ms: 140
direction: left
food: [3, 4]
snake: [[10, 9], [11, 9], [11, 10]]
`
	snapshot, err := LoadSnapshot(doc)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	engine := NewEngine(1, quietLogger())
	if err := engine.Restore(snapshot, false); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	got := engine.Snapshot()
	if got.Status != GameOver {
		t.Errorf("Expected status %v, got %v", GameOver, got.Status)
	}
	if got.Speed != 140*time.Millisecond {
		t.Errorf("Expected speed 140ms, got %v", got.Speed)
	}
	if got.SpeedLevel != 3 {
		t.Errorf("Expected speed level 3, got %d", got.SpeedLevel)
	}
	if got.Food != (Cell{3, 4}) {
		t.Errorf("Expected food (3, 4), got %v", got.Food)
	}

	if err := engine.Restore(snapshot, true); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if engine.Status() != Playing {
		t.Errorf("Expected resumed snapshot to be %v, got %v", Playing, engine.Status())
	}
	if result, _ := engine.Tick(); result.Head != (Cell{9, 9}) {
		t.Errorf("Expected head (9, 9) after resuming left, got %v", result.Head)
	}
}

func TestRestoreRejectsInvalidSnapshots(t *testing.T) {
	valid := func() *BoardSnapshot {
		return &BoardSnapshot{
			Status:    "playing",
			SpeedMs:   150,
			Direction: Up,
			Food:      Cell{0, 0},
			Snake:     InitialSnake(),
		}
	}

	cases := map[string]func(*BoardSnapshot){
		"empty snake":       func(s *BoardSnapshot) { s.Snake = nil },
		"gap in snake":      func(s *BoardSnapshot) { s.Snake = []Cell{{1, 1}, {1, 3}} },
		"food on snake":     func(s *BoardSnapshot) { s.Food = Cell{10, 11} },
		"food off board":    func(s *BoardSnapshot) { s.Food = Cell{BoardSize, 0} },
		"negative score":    func(s *BoardSnapshot) { s.Score = -10 },
		"too fast":          func(s *BoardSnapshot) { s.SpeedMs = 10 },
		"too slow":          func(s *BoardSnapshot) { s.SpeedMs = 1000 },
		"reversed":          func(s *BoardSnapshot) { s.Direction = Down },
		"unknown status":    func(s *BoardSnapshot) { s.Status = "paused" },
		"snake off board":   func(s *BoardSnapshot) { s.Snake = []Cell{{0, -1}, {0, 0}} },
		"duplicate in body": func(s *BoardSnapshot) { s.Snake = []Cell{{1, 1}, {1, 2}, {1, 1}} },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			engine := NewEngine(1, quietLogger())
			before := engine.Snapshot()

			snapshot := valid()
			mutate(snapshot)
			if err := engine.Restore(snapshot, false); err == nil {
				t.Fatalf("Expected an error")
			}
			if after := engine.Snapshot(); !equalCells(before.Snake, after.Snake) || before.Status != after.Status {
				t.Errorf("Expected engine untouched by a rejected snapshot")
			}
		})
	}

	if err := NewEngine(1, quietLogger()).Restore(valid(), false); err != nil {
		t.Errorf("Expected the base snapshot to be valid, got %v", err)
	}
}

func TestLoadSnapshotRejectsBadYAML(t *testing.T) {
	for _, doc := range []string{
		"direction: sideways",
		"food: [1, 2, 3]",
		"snake: nope",
	} {
		if _, err := LoadSnapshot(doc); err == nil {
			t.Errorf("Expected an error for %q", doc)
		}
	}
}

func TestDrawBoard(t *testing.T) {
	snapshot := Snapshot{
		Snake: []Cell{{1, 0}, {0, 0}},
		Food:  Cell{3, 1},
	}

	rows := strings.Split(DrawBoard(snapshot), "\n")
	if len(rows) != BoardSize {
		t.Fatalf("Expected %d rows, got %d", BoardSize, len(rows))
	}
	if !strings.HasPrefix(rows[0], "o@..") {
		t.Errorf("Expected first row to start with %q, got %q", "o@..", rows[0])
	}
	if !strings.HasPrefix(rows[1], "...*") {
		t.Errorf("Expected second row to start with %q, got %q", "...*", rows[1])
	}
	for _, row := range rows {
		if len(row) != BoardSize {
			t.Errorf("Expected row width %d, got %d", BoardSize, len(row))
		}
	}
}
