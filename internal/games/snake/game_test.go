package snake

import (
	"math/rand"
	"reflect"
	"testing"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// farFood is a cell the default start position never reaches in a few moves.
var farFood = core.Point{X: 0, Y: 0}

func newStarted(t *testing.T, seed int64) *Game {
	t.Helper()
	g := New(DefaultSettings(), seed)
	g.Reset()
	g.food = farFood
	return g
}

func TestIdleUntilReset(t *testing.T) {
	g := New(DefaultSettings(), 1)

	if g.Phase() != PhaseIdle {
		t.Fatalf("Expected idle phase, got %s", g.Phase())
	}
	if g.Direction() != DirStop {
		t.Errorf("Expected DirStop before reset, got %v", g.Direction())
	}

	g.Advance()
	if snap := g.Snapshot(); snap.Length() != 0 || snap.Tick != 0 {
		t.Errorf("Advance should be a no-op while idle, got %+v", snap)
	}
}

func TestResetStartState(t *testing.T) {
	g := New(DefaultSettings(), 42)
	g.Reset()
	snap := g.Snapshot()

	if snap.Phase != PhaseRunning {
		t.Errorf("Expected running after reset, got %s", snap.Phase)
	}
	if snap.Length() != 5 {
		t.Fatalf("Expected 5 segments, got %d", snap.Length())
	}
	for i, seg := range snap.Segments {
		expected := core.Point{X: 240 + i*15, Y: 135}
		if seg != expected {
			t.Errorf("Segment %d = %+v, expected %+v", i, seg, expected)
		}
	}
	if snap.Direction != DirLeft {
		t.Errorf("Expected direction left, got %v", snap.Direction)
	}
	if snap.Score != 0 {
		t.Errorf("Expected score 0, got %d", snap.Score)
	}
	if snap.Speed != 100*time.Millisecond {
		t.Errorf("Expected speed 100ms, got %v", snap.Speed)
	}
	if snap.Color != core.ColorPurple {
		t.Errorf("Expected purple snake, got %s", snap.Color.Hex())
	}
	if snap.Food.X%15 != 0 || snap.Food.Y%15 != 0 {
		t.Errorf("Food %+v is not grid aligned", snap.Food)
	}
	if snap.Food.X < 0 || snap.Food.X >= 480 || snap.Food.Y < 0 || snap.Food.Y >= 270 {
		t.Errorf("Food %+v is off the board", snap.Food)
	}
}

func TestAdvanceShiftsLeft(t *testing.T) {
	g := newStarted(t, 7)
	before := g.Snapshot()

	g.Advance()
	after := g.Snapshot()

	if after.Length() != before.Length() {
		t.Errorf("Length changed from %d to %d", before.Length(), after.Length())
	}
	if after.Score != 0 {
		t.Errorf("Score changed to %d", after.Score)
	}
	if after.Segments[0] != (core.Point{X: 225, Y: 135}) {
		t.Errorf("Head = %+v, expected {225 135}", after.Segments[0])
	}
	// Body follows the head.
	for i := 1; i < after.Length(); i++ {
		if after.Segments[i] != before.Segments[i-1] {
			t.Errorf("Segment %d = %+v, expected %+v", i, after.Segments[i], before.Segments[i-1])
		}
	}
}

func TestEatFood(t *testing.T) {
	g := newStarted(t, 9)
	g.food = core.Point{X: 225, Y: 135}

	g.Advance()
	snap := g.Snapshot()

	if snap.Score != 1 {
		t.Errorf("Score should be 1 after eating food, got %d", snap.Score)
	}
	if snap.Speed != 90*time.Millisecond {
		t.Errorf("Speed should be 90ms, got %v", snap.Speed)
	}
	if snap.Length() != 6 {
		t.Errorf("Snake should grow to 6, got %d", snap.Length())
	}
	if snap.Food.X%15 != 0 || snap.Food.Y%15 != 0 {
		t.Errorf("Relocated food %+v is not grid aligned", snap.Food)
	}
	if snap.Segments[len(snap.Segments)-1] != (core.Point{X: 300, Y: 135}) {
		t.Errorf("Tail should stay in place when growing, got %+v", snap.Segments[len(snap.Segments)-1])
	}
}

func TestFoodChangesColor(t *testing.T) {
	changed := false
	for seed := int64(0); seed < 5; seed++ {
		g := newStarted(t, seed)
		g.food = core.Point{X: 225, Y: 135}
		g.Advance()
		if g.Snapshot().Color != core.ColorPurple {
			changed = true
		}
	}
	if !changed {
		t.Error("Eating food should pick a new snake color")
	}
}

func TestSpeedRampFloors(t *testing.T) {
	g := newStarted(t, 11)
	s := g.Settings()
	prev := g.Speed()

	for i := 1; i <= 8; i++ {
		head := g.snake[0]
		next := head.Add(DirLeft.Offset(s.Cell))
		g.food = core.Point{X: core.Wrap(next.X, s.Width), Y: next.Y}
		g.Advance()

		if g.Score() != i {
			t.Fatalf("Expected score %d, got %d", i, g.Score())
		}
		expected := max(100*time.Millisecond-time.Duration(i)*10*time.Millisecond, 50*time.Millisecond)
		if g.Speed() != expected {
			t.Errorf("After %d food: speed %v, expected %v", i, g.Speed(), expected)
		}
		if g.Speed() > prev {
			t.Errorf("Speed increased from %v to %v", prev, g.Speed())
		}
		prev = g.Speed()
	}

	if g.Speed() != 50*time.Millisecond {
		t.Errorf("Speed should floor at 50ms, got %v", g.Speed())
	}
}

func TestNoImmediateReversal(t *testing.T) {
	g := newStarted(t, 42)

	if g.SetDirection(DirRight) {
		t.Error("Reversal from left to right should be rejected")
	}
	if g.Direction() != DirLeft {
		t.Errorf("Direction should stay left, got %v", g.Direction())
	}

	if g.SetDirection(DirStop) {
		t.Error("DirStop should be rejected")
	}

	if !g.SetDirection(DirDown) {
		t.Error("Turning down should be accepted")
	}
	if g.SetDirection(DirUp) {
		t.Error("Reversal from down to up should be rejected")
	}
}

func TestSteerPrecedence(t *testing.T) {
	g := newStarted(t, 3)

	// Right is a reversal, so up wins even though right is listed first here.
	in := core.NewInputFrame()
	in.Set(core.ActionRight)
	in.Set(core.ActionDown)
	in.Set(core.ActionUp)
	g.Steer(in)
	if g.Direction() != DirUp {
		t.Errorf("Expected up, got %v", g.Direction())
	}

	// Heading up: down is rejected, left beats right.
	in.Clear()
	in.Set(core.ActionDown)
	in.Set(core.ActionRight)
	in.Set(core.ActionLeft)
	g.Steer(in)
	if g.Direction() != DirLeft {
		t.Errorf("Expected left, got %v", g.Direction())
	}

	// Nothing pressed keeps the heading.
	in.Clear()
	g.Steer(in)
	if g.Direction() != DirLeft {
		t.Errorf("Empty frame changed direction to %v", g.Direction())
	}
}

func TestWrapAround(t *testing.T) {
	tests := []struct {
		name     string
		body     []core.Point
		dir      Direction
		expected core.Point
	}{
		{"left edge", []core.Point{{X: 0, Y: 135}, {X: 15, Y: 135}}, DirLeft, core.Point{X: 465, Y: 135}},
		{"right edge", []core.Point{{X: 465, Y: 135}, {X: 450, Y: 135}}, DirRight, core.Point{X: 0, Y: 135}},
		{"top edge", []core.Point{{X: 240, Y: 0}, {X: 240, Y: 15}}, DirUp, core.Point{X: 240, Y: 255}},
		{"bottom edge", []core.Point{{X: 240, Y: 255}, {X: 240, Y: 240}}, DirDown, core.Point{X: 240, Y: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newStarted(t, 5)
			g.snake = append([]core.Point(nil), tt.body...)
			g.direction = tt.dir
			g.food = core.Point{X: 120, Y: 60}

			g.Advance()

			if g.GameOver() {
				t.Fatal("Wrapping should not end the game")
			}
			if g.snake[0] != tt.expected {
				t.Errorf("Head = %+v, expected %+v", g.snake[0], tt.expected)
			}
		})
	}
}

func TestSelfCollision(t *testing.T) {
	g := newStarted(t, 111)

	g.snake = []core.Point{
		{X: 30, Y: 30}, // Head
		{X: 30, Y: 45},
		{X: 45, Y: 45},
		{X: 45, Y: 30},
		{X: 45, Y: 15},
	}
	g.direction = DirRight
	before := g.Snapshot()

	// Moving right puts the head on (45, 30), which is occupied.
	g.Advance()

	if !g.GameOver() {
		t.Fatal("Game should be over after self collision")
	}
	if g.Running() {
		t.Error("Game should stop running after self collision")
	}
	if g.Phase() != PhaseGameOver {
		t.Errorf("Expected game over phase, got %s", g.Phase())
	}
	after := g.Snapshot()
	if !reflect.DeepEqual(before.Segments, after.Segments) {
		t.Errorf("Body changed on collision: %v -> %v", before.Segments, after.Segments)
	}

	// Further ticks leave everything as it is.
	g.Advance()
	g.Advance()
	if again := g.Snapshot(); !reflect.DeepEqual(after, again) {
		t.Errorf("State changed after game over:\n%+v\n%+v", after, again)
	}
}

func TestTailCountsAsCollision(t *testing.T) {
	g := newStarted(t, 13)

	// A 2x2 loop: the next cell is the current tail.
	g.snake = []core.Point{
		{X: 30, Y: 30},
		{X: 30, Y: 45},
		{X: 45, Y: 45},
		{X: 45, Y: 30},
	}
	g.direction = DirRight

	g.Advance()

	if !g.GameOver() {
		t.Error("Moving onto the tail cell should end the game")
	}
}

func TestPauseFreezesMovement(t *testing.T) {
	g := newStarted(t, 21)
	before := g.Snapshot()

	g.TogglePause()
	if g.Phase() != PhasePaused {
		t.Fatalf("Expected paused phase, got %s", g.Phase())
	}
	g.Advance()
	if !reflect.DeepEqual(before.Segments, g.Snapshot().Segments) {
		t.Error("Snake moved while paused")
	}

	g.TogglePause()
	g.Advance()
	if reflect.DeepEqual(before.Segments, g.Snapshot().Segments) {
		t.Error("Snake should move after unpausing")
	}
}

func TestPauseIgnoredWhenIdle(t *testing.T) {
	g := New(DefaultSettings(), 1)
	g.TogglePause()
	if g.Paused() {
		t.Error("An idle game cannot be paused")
	}
}

func TestResetAfterGameOver(t *testing.T) {
	g := newStarted(t, 31)
	g.snake = []core.Point{{X: 30, Y: 30}, {X: 30, Y: 45}, {X: 45, Y: 45}, {X: 45, Y: 30}}
	g.direction = DirRight
	g.score = 4
	g.speed = 60 * time.Millisecond
	g.Advance()
	if !g.GameOver() {
		t.Fatal("setup should end the game")
	}

	g.Reset()

	if g.GameOver() || !g.Running() || g.Paused() {
		t.Errorf("Reset should clear flags, got phase %s", g.Phase())
	}
	if g.Score() != 0 || g.Speed() != 100*time.Millisecond || len(g.snake) != 5 {
		t.Errorf("Reset should restore start state:\n%s", g.DebugState())
	}
}

func TestAvoidSnakeFood(t *testing.T) {
	s := DefaultSettings()
	s.AvoidSnake = true
	g := New(s, 77)
	g.Reset()

	for i := 0; i < 100; i++ {
		g.placeFood()
		if g.isSnakeAt(g.food) {
			t.Fatalf("Food spawned on snake at (%d, %d)", g.food.X, g.food.Y)
		}
	}
}

func TestDeterminism(t *testing.T) {
	g1 := New(DefaultSettings(), 12345)
	g2 := New(DefaultSettings(), 12345)
	g1.Reset()
	g2.Reset()

	in := core.NewInputFrame()
	for i := 0; i < 300; i++ {
		in.Clear()
		switch i % 40 {
		case 10:
			in.Set(core.ActionUp)
		case 20:
			in.Set(core.ActionLeft)
		case 30:
			in.Set(core.ActionDown)
		}
		for _, g := range []*Game{g1, g2} {
			if g.GameOver() {
				g.Reset()
			}
			g.Steer(in)
			g.Advance()
		}
	}

	if !reflect.DeepEqual(g1.Snapshot(), g2.Snapshot()) {
		t.Errorf("Snapshots differ:\n%s\n%s", g1.DebugState(), g2.DebugState())
	}
}

// TestMovementInvariants drives random inputs and checks the per-tick
// movement, growth and speed rules.
func TestMovementInvariants(t *testing.T) {
	g := New(DefaultSettings(), 2024)
	g.Reset()
	s := g.Settings()
	r := rand.New(rand.NewSource(99))
	actions := []core.Action{core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight}

	in := core.NewInputFrame()
	for i := 0; i < 2000; i++ {
		if g.GameOver() {
			g.Reset()
		}
		in.Clear()
		if r.Intn(4) == 0 {
			in.Set(actions[r.Intn(len(actions))])
		}
		g.Steer(in)

		before := g.Snapshot()
		g.Advance()
		after := g.Snapshot()

		if after.Phase == PhaseGameOver {
			if !reflect.DeepEqual(before.Segments, after.Segments) {
				t.Fatalf("tick %d: body changed on collision", i)
			}
			continue
		}

		off := before.Direction.Offset(s.Cell)
		expected := core.Point{
			X: core.Wrap(before.Segments[0].X+off.X, s.Width),
			Y: core.Wrap(before.Segments[0].Y+off.Y, s.Height),
		}
		if after.Segments[0] != expected {
			t.Fatalf("tick %d: head %+v, expected %+v", i, after.Segments[0], expected)
		}

		grew := after.Score == before.Score+1
		switch {
		case grew && after.Length() != before.Length()+1:
			t.Fatalf("tick %d: ate food but length %d -> %d", i, before.Length(), after.Length())
		case !grew && after.Length() != before.Length():
			t.Fatalf("tick %d: length changed %d -> %d without food", i, before.Length(), after.Length())
		}
		if after.Speed > before.Speed || after.Speed < s.MinSpeed {
			t.Fatalf("tick %d: speed %v -> %v", i, before.Speed, after.Speed)
		}

		seen := make(map[core.Point]bool, after.Length())
		for _, seg := range after.Segments {
			if seen[seg] {
				t.Fatalf("tick %d: two segments share %+v", i, seg)
			}
			seen[seg] = true
		}
	}
}

func TestSnapshotIsCopy(t *testing.T) {
	g := newStarted(t, 1)
	snap := g.Snapshot()
	snap.Segments[0] = core.Point{X: -1, Y: -1}

	if g.snake[0] == snap.Segments[0] {
		t.Error("Mutating a snapshot should not touch the game")
	}
}
