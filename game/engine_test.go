package game

import "testing"

func TestNewEngineIsIdle(t *testing.T) {
	engine := NewEngine(1, quietLogger())
	snapshot := engine.Snapshot()

	if snapshot.Status != Idle {
		t.Errorf("Expected status %v, got %v", Idle, snapshot.Status)
	}
	if !equalCells(snapshot.Snake, InitialSnake()) {
		t.Errorf("Expected snake %v, got %v", InitialSnake(), snapshot.Snake)
	}
	if snapshot.SpeedLevel != 1 {
		t.Errorf("Expected speed level 1, got %d", snapshot.SpeedLevel)
	}
	for _, cell := range snapshot.Snake {
		if cell == snapshot.Food {
			t.Errorf("Expected food %v off the snake", snapshot.Food)
		}
	}

	// Nothing moves before the game starts
	if result, _ := engine.Tick(); result.Outcome != NoOp {
		t.Errorf("Expected outcome %v while idle, got %v", NoOp, result.Outcome)
	}
	if engine.SetDirection(Left) {
		t.Errorf("Expected direction change to be ignored while idle")
	}
}

func TestEngineLifecycle(t *testing.T) {
	engine := NewEngine(3, quietLogger())

	if !engine.Start() {
		t.Fatalf("Expected Start to begin the game")
	}
	if engine.Start() {
		t.Errorf("Expected a second Start to do nothing")
	}

	// Run straight up into the top wall: head starts at y=10
	for i := 0; i < 10; i++ {
		result, err := engine.Tick()
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if result.Outcome.IsCollision() {
			t.Fatalf("Unexpected collision at tick %d", i)
		}
	}

	result, _ := engine.Tick()
	if result.Outcome != HitWall {
		t.Fatalf("Expected outcome %v, got %v", HitWall, result.Outcome)
	}
	if engine.Status() != GameOver {
		t.Fatalf("Expected status %v, got %v", GameOver, engine.Status())
	}

	frozen := engine.Snapshot()
	for i := 0; i < 3; i++ {
		if result, _ := engine.Tick(); result.Outcome != NoOp {
			t.Errorf("Expected ticks after game over to do nothing, got %v", result.Outcome)
		}
	}
	if after := engine.Snapshot(); !equalCells(after.Snake, frozen.Snake) || after.Score != frozen.Score {
		t.Errorf("Expected state frozen after game over")
	}
	if engine.Start() {
		t.Errorf("Expected Start to do nothing after game over")
	}

	if err := engine.Reset(); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	snapshot := engine.Snapshot()
	if snapshot.Status != Playing {
		t.Errorf("Expected status %v after reset, got %v", Playing, snapshot.Status)
	}
	if !equalCells(snapshot.Snake, InitialSnake()) {
		t.Errorf("Expected snake %v after reset, got %v", InitialSnake(), snapshot.Snake)
	}
	if snapshot.Score != 0 {
		t.Errorf("Expected score 0 after reset, got %d", snapshot.Score)
	}
}

func TestSnapshotIsDetached(t *testing.T) {
	engine := NewEngine(1, quietLogger())
	engine.Start()

	snapshot := engine.Snapshot()
	if _, err := engine.Tick(); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if snapshot.Head() != (Cell{10, 10}) {
		t.Errorf("Expected held snapshot head (10, 10), got %v", snapshot.Head())
	}
	if engine.Snapshot().Head() != (Cell{10, 9}) {
		t.Errorf("Expected engine head (10, 9), got %v", engine.Snapshot().Head())
	}
}

func TestSpeedLevel(t *testing.T) {
	cases := map[int]int{
		0:  1,
		1:  2,
		10: 11,
		20: 21,
		30: 21,
	}
	for eaten, expected := range cases {
		speed := InitialSpeed
		for i := 0; i < eaten; i++ {
			speed -= SpeedStep
			if speed < MinSpeed {
				speed = MinSpeed
			}
		}
		if level := SpeedLevel(speed); level != expected {
			t.Errorf("After %d foods: expected level %d, got %d", eaten, expected, level)
		}
	}
}
