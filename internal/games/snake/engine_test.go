package snake

import (
	"errors"
	"math/rand"
	"reflect"
	"testing"
	"time"

	"github.com/vovakirdan/tui-snake/internal/config"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func newTestEngine(t *testing.T, cfg config.SnakeConfig, opts ...Option) (*Engine, *fakeClock) {
	t.Helper()
	clock := newFakeClock()
	opts = append([]Option{WithSeed(42), WithClock(clock)}, opts...)
	e, err := NewEngine(cfg, opts...)
	if err != nil {
		t.Fatalf("NewEngine() error: %v", err)
	}
	return e, clock
}

// placeSnake puts the snake at cells travelling in dir, and parks the food
// on a cell away from the path.
func placeSnake(e *Engine, dir Direction, food Cell, cells ...Cell) {
	e.st.body = NewBody(cells)
	e.st.direction = dir
	e.st.pending = dir
	e.st.food = food
	e.st.hasPowerUp = false
}

// eatOnce resets the snake to the starting column and feeds it the cell ahead.
func eatOnce(t *testing.T, e *Engine) Snapshot {
	t.Helper()
	placeSnake(e, DirUp, Cell{10, 9}, Cell{10, 10}, Cell{10, 11}, Cell{10, 12})
	snap := e.Tick()
	if snap.Over() {
		t.Fatalf("unexpected game over while eating: %s", snap.DebugString())
	}
	return snap
}

func TestNewEngineInitialState(t *testing.T) {
	e, _ := newTestEngine(t, config.DefaultSnakeConfig())
	snap := e.Snapshot()

	expected := []Cell{{10, 10}, {10, 11}, {10, 12}}
	if !reflect.DeepEqual(snap.Snake, expected) {
		t.Errorf("Snake = %v, expected %v", snap.Snake, expected)
	}
	if snap.Direction != DirUp {
		t.Errorf("Direction = %v, expected up", snap.Direction)
	}
	if snap.Status != StatusRunning {
		t.Errorf("Status = %v, expected running", snap.Status)
	}
	if snap.Score != 0 || snap.Level != 1 {
		t.Errorf("Score/Level = %d/%d, expected 0/1", snap.Score, snap.Level)
	}
	if snap.TickInterval != 200*time.Millisecond {
		t.Errorf("TickInterval = %v, expected 200ms", snap.TickInterval)
	}
	if snap.HasPowerUp || snap.EffectActive() {
		t.Error("a new game should have no power-up and no effect")
	}
	for _, c := range snap.Snake {
		if c == snap.Food {
			t.Errorf("food spawned on the snake at %v", c)
		}
	}
}

func TestNewEngineRejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultSnakeConfig()
	cfg.Board.Size = 2

	_, err := NewEngine(cfg)
	if err == nil {
		t.Fatal("expected error for a 2x2 board")
	}
	if !errors.Is(err, config.ErrInvalidConfig) {
		t.Errorf("error should wrap ErrInvalidConfig, got %v", err)
	}
}

func TestTickMovesWithoutGrowth(t *testing.T) {
	e, _ := newTestEngine(t, config.DefaultSnakeConfig())
	placeSnake(e, DirUp, Cell{0, 0}, Cell{10, 10}, Cell{10, 11}, Cell{10, 12})

	snap := e.Tick()

	expected := []Cell{{10, 9}, {10, 10}, {10, 11}}
	if !reflect.DeepEqual(snap.Snake, expected) {
		t.Errorf("Snake = %v, expected %v", snap.Snake, expected)
	}
	if snap.Score != 0 {
		t.Errorf("Score = %d, expected 0", snap.Score)
	}
	if snap.Tick != 1 {
		t.Errorf("Tick = %d, expected 1", snap.Tick)
	}
}

func TestTickEatsFood(t *testing.T) {
	e, _ := newTestEngine(t, config.DefaultSnakeConfig())
	placeSnake(e, DirUp, Cell{10, 9}, Cell{10, 10}, Cell{10, 11}, Cell{10, 12})

	snap := e.Tick()

	if len(snap.Snake) != 4 {
		t.Errorf("length = %d, expected 4", len(snap.Snake))
	}
	if snap.Head() != (Cell{10, 9}) {
		t.Errorf("Head = %v, expected (10,9)", snap.Head())
	}
	if snap.Score != 1 || snap.FoodEaten != 1 {
		t.Errorf("Score/FoodEaten = %d/%d, expected 1/1", snap.Score, snap.FoodEaten)
	}
	for _, c := range snap.Snake {
		if c == snap.Food {
			t.Errorf("new food spawned on the snake at %v", c)
		}
	}
}

func TestTickWallCollision(t *testing.T) {
	tests := []struct {
		name  string
		dir   Direction
		cells []Cell
	}{
		{"left", DirLeft, []Cell{{0, 5}, {1, 5}, {2, 5}}},
		{"right", DirRight, []Cell{{19, 5}, {18, 5}, {17, 5}}},
		{"top", DirUp, []Cell{{5, 0}, {5, 1}, {5, 2}}},
		{"bottom", DirDown, []Cell{{5, 19}, {5, 18}, {5, 17}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e, _ := newTestEngine(t, config.DefaultSnakeConfig())
			placeSnake(e, tc.dir, Cell{10, 10}, tc.cells...)

			snap := e.Tick()
			if !snap.Over() {
				t.Fatalf("expected game over, got %s", snap.Status)
			}
			if snap.Collision != CollisionWall {
				t.Errorf("Collision = %v, expected wall", snap.Collision)
			}
			if !reflect.DeepEqual(snap.Snake, tc.cells) {
				t.Errorf("snake should not move on collision: %v", snap.Snake)
			}

			// Terminal until reset
			for range 5 {
				after := e.Tick()
				if !reflect.DeepEqual(after, snap) {
					t.Fatalf("tick after game over changed state:\n%s\n%s", snap.DebugString(), after.DebugString())
				}
			}
			if e.SetDirection(DirDown) {
				t.Error("SetDirection should be rejected after game over")
			}
			if paused := e.TogglePause(); paused.Status != StatusOver {
				t.Errorf("TogglePause after game over: status %v", paused.Status)
			}

			fresh := e.Reset()
			if fresh.Status != StatusRunning || fresh.Score != 0 || len(fresh.Snake) != 3 {
				t.Errorf("Reset() did not restore the initial state: %s", fresh.DebugString())
			}
		})
	}
}

func TestTickSelfCollision(t *testing.T) {
	e, _ := newTestEngine(t, config.DefaultSnakeConfig())
	// Travelling up, turning right into the body
	placeSnake(e, DirUp, Cell{0, 0}, Cell{5, 5}, Cell{5, 6}, Cell{6, 6}, Cell{6, 5}, Cell{6, 4})

	if !e.SetDirection(DirRight) {
		t.Fatal("SetDirection(right) rejected")
	}
	snap := e.Tick()
	if !snap.Over() || snap.Collision != CollisionSelf {
		t.Errorf("expected self collision, got %s / %v", snap.Status, snap.Collision)
	}
}

func TestTickTailIsSolid(t *testing.T) {
	e, _ := newTestEngine(t, config.DefaultSnakeConfig())
	// A 2x2 square: the head would step onto the current tail
	placeSnake(e, DirLeft, Cell{0, 0}, Cell{5, 5}, Cell{6, 5}, Cell{6, 6}, Cell{5, 6})

	e.SetDirection(DirDown)
	snap := e.Tick()
	if snap.Collision != CollisionSelf {
		t.Errorf("Collision = %v, expected self", snap.Collision)
	}
}

func TestSetDirection(t *testing.T) {
	e, _ := newTestEngine(t, config.DefaultSnakeConfig())
	placeSnake(e, DirUp, Cell{0, 0}, Cell{10, 10}, Cell{10, 11}, Cell{10, 12})

	if !e.SetDirection(DirUp) {
		t.Error("SetDirection(up) should be accepted")
	}
	if e.SetDirection(DirDown) {
		t.Error("reversal should be rejected")
	}
	if got := e.Snapshot().Pending; got != DirUp {
		t.Errorf("Pending = %v, expected up", got)
	}

	for _, bad := range []Direction{-1, 4, 42} {
		if e.SetDirection(bad) {
			t.Errorf("SetDirection(%d) should be rejected", bad)
		}
	}

	// Pending is applied on the next tick, not immediately
	e.SetDirection(DirLeft)
	if got := e.Snapshot().Direction; got != DirUp {
		t.Errorf("Direction changed before tick: %v", got)
	}
	snap := e.Tick()
	if snap.Direction != DirLeft || snap.Head() != (Cell{9, 10}) {
		t.Errorf("after tick: direction %v head %v", snap.Direction, snap.Head())
	}
}

func TestSetDirectionChecksCommittedTravel(t *testing.T) {
	e, _ := newTestEngine(t, config.DefaultSnakeConfig())
	placeSnake(e, DirUp, Cell{0, 0}, Cell{10, 10}, Cell{10, 11}, Cell{10, 12})

	// Left then right within one tick: right is a turn from up, not a reversal
	e.SetDirection(DirLeft)
	if !e.SetDirection(DirRight) {
		t.Fatal("SetDirection(right) should be accepted while travelling up")
	}
	snap := e.Tick()
	if snap.Over() {
		t.Fatalf("unexpected game over: %s", snap.DebugString())
	}
	if snap.Head() != (Cell{11, 10}) {
		t.Errorf("Head = %v, expected (11,10)", snap.Head())
	}
}

func TestTogglePause(t *testing.T) {
	e, _ := newTestEngine(t, config.DefaultSnakeConfig())
	placeSnake(e, DirUp, Cell{0, 0}, Cell{10, 10}, Cell{10, 11}, Cell{10, 12})

	paused := e.TogglePause()
	if !paused.Paused() {
		t.Fatalf("Status = %v, expected paused", paused.Status)
	}
	if e.SetDirection(DirLeft) {
		t.Error("SetDirection should be rejected while paused")
	}
	if snap := e.Tick(); !reflect.DeepEqual(snap.Snake, paused.Snake) || snap.Tick != paused.Tick {
		t.Error("Tick while paused should be a no-op")
	}

	resumed := e.TogglePause()
	if resumed.Status != StatusRunning {
		t.Fatalf("Status = %v, expected running", resumed.Status)
	}
	if snap := e.Tick(); snap.Head() != (Cell{10, 9}) {
		t.Errorf("Head = %v after resume, expected (10,9)", snap.Head())
	}
}

func TestLevelUp(t *testing.T) {
	e, _ := newTestEngine(t, config.DefaultSnakeConfig())

	var snap Snapshot
	for i := 1; i <= 4; i++ {
		snap = eatOnce(t, e)
		if snap.Level != 1 || snap.TickInterval != 200*time.Millisecond {
			t.Fatalf("after %d points: level %d interval %v", i, snap.Level, snap.TickInterval)
		}
	}

	snap = eatOnce(t, e)
	if snap.Score != 5 || snap.Level != 2 {
		t.Errorf("Score/Level = %d/%d, expected 5/2", snap.Score, snap.Level)
	}
	if snap.TickInterval != 185*time.Millisecond {
		t.Errorf("TickInterval = %v, expected 185ms", snap.TickInterval)
	}
	if e.TickInterval() != snap.TickInterval {
		t.Errorf("TickInterval() = %v, snapshot says %v", e.TickInterval(), snap.TickInterval)
	}
}

func TestIntervalFloor(t *testing.T) {
	e, _ := newTestEngine(t, config.DefaultSnakeConfig())

	prev := e.TickInterval()
	for range 100 {
		snap := eatOnce(t, e)
		if snap.TickInterval > prev {
			t.Fatalf("interval grew from %v to %v", prev, snap.TickInterval)
		}
		if snap.TickInterval < 50*time.Millisecond {
			t.Fatalf("interval %v below floor", snap.TickInterval)
		}
		prev = snap.TickInterval
	}

	if prev != 50*time.Millisecond {
		t.Errorf("interval after 100 points = %v, expected floor 50ms", prev)
	}
	if got := e.Snapshot().Level; got != 21 {
		t.Errorf("Level = %d, expected 21", got)
	}
}

func TestPowerUpEffect(t *testing.T) {
	e, clock := newTestEngine(t, config.DefaultSnakeConfig())
	placeSnake(e, DirUp, Cell{0, 0}, Cell{10, 10}, Cell{10, 11}, Cell{10, 12})
	e.st.powerUp = Cell{10, 9}
	e.st.hasPowerUp = true

	snap := e.Tick()
	if snap.HasPowerUp {
		t.Error("power-up should be consumed")
	}
	if len(snap.Snake) != 4 {
		t.Errorf("length = %d, expected 4", len(snap.Snake))
	}
	if snap.Score != 3 {
		t.Errorf("Score = %d, expected 3", snap.Score)
	}
	if !snap.EffectActive() || snap.EffectLeft != 5*time.Second {
		t.Errorf("EffectLeft = %v, expected 5s", snap.EffectLeft)
	}

	clock.Advance(4999 * time.Millisecond)
	if snap := e.Snapshot(); !snap.EffectActive() {
		t.Error("effect should still be active 1ms before expiry")
	}

	clock.Advance(time.Millisecond)
	if snap := e.Snapshot(); snap.EffectActive() || snap.Effect.Active {
		t.Error("effect should be inactive at expiry")
	}
}

func TestPowerUpEffectObservedOnTick(t *testing.T) {
	e, clock := newTestEngine(t, config.DefaultSnakeConfig())
	placeSnake(e, DirUp, Cell{0, 0}, Cell{10, 10}, Cell{10, 11}, Cell{10, 12})
	e.st.powerUp = Cell{10, 9}
	e.st.hasPowerUp = true
	e.Tick()

	clock.Advance(6 * time.Second)
	snap := e.Tick()
	if snap.Effect.Active {
		t.Error("tick after expiry should observe the effect deactivated")
	}
}

func TestTogglePauseObservesExpiredEffect(t *testing.T) {
	e, clock := newTestEngine(t, config.DefaultSnakeConfig())
	placeSnake(e, DirUp, Cell{0, 0}, Cell{10, 10}, Cell{10, 11}, Cell{10, 12})
	e.st.powerUp = Cell{10, 9}
	e.st.hasPowerUp = true
	e.Tick()

	clock.Advance(6 * time.Second)
	snap := e.TogglePause()
	if !snap.Paused() {
		t.Fatal("expected paused")
	}
	if snap.Effect.Active || snap.EffectActive() {
		t.Errorf("Effect = %+v, EffectLeft = %v after expiry", snap.Effect, snap.EffectLeft)
	}
}

// serpentine returns every cell of a size x size board in boustrophedon order,
// so consecutive cells are always adjacent.
func serpentine(size int) []Cell {
	path := make([]Cell, 0, size*size)
	for y := range size {
		for i := range size {
			x := i
			if y%2 == 1 {
				x = size - 1 - i
			}
			path = append(path, Cell{x, y})
		}
	}
	return path
}

func TestPowerUpRollOnFullBoard(t *testing.T) {
	cfg := config.DefaultSnakeConfig()
	cfg.Board.Size = 5
	cfg.PowerUp.Chance = 1
	path := serpentine(5)

	tests := []struct {
		name       string
		head       int // index into path; the snake covers path[0..head]
		powerUp    bool
		expectFood Cell
	}{
		{"new food takes the last free cell", 22, false, path[24]},
		{"power-up already on the board", 21, true, path[23]},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e, _ := newTestEngine(t, cfg)

			cells := make([]Cell, 0, tc.head+1)
			for i := tc.head; i >= 0; i-- {
				cells = append(cells, path[i])
			}
			placeSnake(e, DirRight, path[tc.head+1], cells...)
			if tc.powerUp {
				e.st.powerUp = path[24]
				e.st.hasPowerUp = true
			}

			var snap Snapshot
			func() {
				defer func() {
					if r := recover(); r != nil {
						t.Fatalf("Tick panicked: %v", r)
					}
				}()
				snap = e.Tick()
			}()

			if snap.Over() {
				t.Fatalf("unexpected game over: %s", snap.DebugString())
			}
			if len(snap.Snake) != tc.head+2 {
				t.Errorf("length = %d, expected %d", len(snap.Snake), tc.head+2)
			}
			if snap.Food != tc.expectFood {
				t.Errorf("Food = %v, expected %v", snap.Food, tc.expectFood)
			}
			if snap.HasPowerUp != tc.powerUp {
				t.Errorf("HasPowerUp = %v, expected %v", snap.HasPowerUp, tc.powerUp)
			}
			if tc.powerUp && snap.PowerUp != path[24] {
				t.Errorf("PowerUp = %v, expected it to stay at %v", snap.PowerUp, path[24])
			}
		})
	}
}

func TestPowerUpEffectResetsOnReEat(t *testing.T) {
	e, clock := newTestEngine(t, config.DefaultSnakeConfig())

	eatPowerUp := func() Snapshot {
		placeSnake(e, DirUp, Cell{0, 0}, Cell{10, 10}, Cell{10, 11}, Cell{10, 12})
		e.st.powerUp = Cell{10, 9}
		e.st.hasPowerUp = true
		return e.Tick()
	}

	eatPowerUp()
	clock.Advance(3 * time.Second)
	snap := eatPowerUp()

	if snap.EffectLeft != 5*time.Second {
		t.Errorf("EffectLeft = %v, expected a fresh 5s", snap.EffectLeft)
	}
}

func TestPowerUpBonusCrossesLevel(t *testing.T) {
	e, _ := newTestEngine(t, config.DefaultSnakeConfig())
	for range 4 {
		eatOnce(t, e)
	}

	placeSnake(e, DirUp, Cell{0, 0}, Cell{10, 10}, Cell{10, 11}, Cell{10, 12})
	e.st.powerUp = Cell{10, 9}
	e.st.hasPowerUp = true
	snap := e.Tick()

	if snap.Score != 7 || snap.Level != 2 {
		t.Errorf("Score/Level = %d/%d, expected 7/2", snap.Score, snap.Level)
	}
	if snap.TickInterval != 185*time.Millisecond {
		t.Errorf("TickInterval = %v, expected 185ms", snap.TickInterval)
	}
}

func TestPowerUpSpawnChance(t *testing.T) {
	always := config.DefaultSnakeConfig()
	always.PowerUp.Chance = 1
	e, _ := newTestEngine(t, always)

	snap := eatOnce(t, e)
	if !snap.HasPowerUp {
		t.Fatal("chance 1 should spawn a power-up on every food")
	}
	if snap.PowerUp == snap.Food {
		t.Error("power-up spawned on the food")
	}
	for _, c := range snap.Snake {
		if c == snap.PowerUp {
			t.Errorf("power-up spawned on the snake at %v", c)
		}
	}

	// A second roll keeps the power-up already on the board
	first := snap.PowerUp
	e.st.body = NewBody([]Cell{{10, 10}, {10, 11}, {10, 12}})
	e.st.direction, e.st.pending = DirUp, DirUp
	e.st.food = Cell{10, 9}
	if snap := e.Tick(); snap.PowerUp != first || !snap.HasPowerUp {
		t.Errorf("power-up moved from %v to %v", first, snap.PowerUp)
	}

	never := config.DefaultSnakeConfig()
	never.PowerUp.Chance = 0
	e, _ = newTestEngine(t, never)
	for range 50 {
		if snap := eatOnce(t, e); snap.HasPowerUp {
			t.Fatal("chance 0 should never spawn a power-up")
		}
	}
}

func TestHighScore(t *testing.T) {
	e, _ := newTestEngine(t, config.DefaultSnakeConfig(), WithHighScore(3))

	if e.HighScore() != 3 {
		t.Fatalf("HighScore() = %d, expected 3", e.HighScore())
	}

	for range 3 {
		if snap := eatOnce(t, e); snap.HighScore != 3 {
			t.Errorf("HighScore = %d at score %d, expected 3", snap.HighScore, snap.Score)
		}
	}

	snap := eatOnce(t, e)
	if snap.HighScore != 4 || e.HighScore() != 4 {
		t.Errorf("HighScore = %d/%d, expected 4", snap.HighScore, e.HighScore())
	}

	fresh := e.Reset()
	if fresh.Score != 0 || fresh.HighScore != 4 {
		t.Errorf("after Reset: score %d high %d, expected 0/4", fresh.Score, fresh.HighScore)
	}
}

func TestWithHighScoreClampsNegative(t *testing.T) {
	e, _ := newTestEngine(t, config.DefaultSnakeConfig(), WithHighScore(-10))
	if e.HighScore() != 0 {
		t.Errorf("HighScore() = %d, expected 0", e.HighScore())
	}
}

func TestSnapshotIsCopy(t *testing.T) {
	e, _ := newTestEngine(t, config.DefaultSnakeConfig())
	snap := e.Snapshot()
	snap.Snake[0] = Cell{0, 0}

	if e.Snapshot().Head() != (Cell{10, 10}) {
		t.Error("mutating a snapshot changed engine state")
	}
}

func TestDeterministicWithSeed(t *testing.T) {
	cfg := config.DefaultSnakeConfig()
	cfg.PowerUp.Chance = 0.5

	run := func() []Snapshot {
		e, _ := newTestEngine(t, cfg, WithSeed(1234))
		inputs := rand.New(rand.NewSource(99))
		var out []Snapshot
		for range 300 {
			e.SetDirection(Direction(inputs.Intn(4)))
			snap := e.Tick()
			out = append(out, snap)
			if snap.Over() {
				e.Reset()
			}
		}
		return out
	}

	a, b := run(), run()
	if !reflect.DeepEqual(a, b) {
		t.Error("two engines with the same seed and inputs diverged")
	}
}

// TestInvariantsUnderRandomPlay drives many games with random input and checks
// the state after every tick.
func TestInvariantsUnderRandomPlay(t *testing.T) {
	cfg := config.DefaultSnakeConfig()
	cfg.Board.Size = 8
	cfg.PowerUp.Chance = 0.5

	for seed := int64(1); seed <= 20; seed++ {
		e, clock := newTestEngine(t, cfg, WithSeed(seed))
		inputs := rand.New(rand.NewSource(seed * 31))

		prev := e.Snapshot()
		for i := range 2000 {
			// Bias toward keeping course so games last
			if inputs.Intn(3) == 0 {
				e.SetDirection(Direction(inputs.Intn(4)))
			}
			clock.Advance(100 * time.Millisecond)
			snap := e.Tick()

			checkInvariants(t, seed, i, snap)

			if snap.HighScore < prev.HighScore {
				t.Fatalf("seed %d tick %d: high score dropped %d -> %d", seed, i, prev.HighScore, snap.HighScore)
			}
			if snap.Tick == prev.Tick+1 || snap.Over() {
				if snap.Score < prev.Score {
					t.Fatalf("seed %d tick %d: score dropped %d -> %d", seed, i, prev.Score, snap.Score)
				}
				if snap.TickInterval > prev.TickInterval {
					t.Fatalf("seed %d tick %d: interval grew %v -> %v", seed, i, prev.TickInterval, snap.TickInterval)
				}
			}

			if snap.Over() {
				snap = e.Reset()
			}
			prev = snap
		}
	}
}

func checkInvariants(t *testing.T, seed int64, tick int, snap Snapshot) {
	t.Helper()

	seen := make(map[Cell]bool, len(snap.Snake))
	for _, c := range snap.Snake {
		if seen[c] {
			t.Fatalf("seed %d tick %d: duplicate snake cell %v", seed, tick, c)
		}
		seen[c] = true
		if c.X < 0 || c.X >= snap.BoardSize || c.Y < 0 || c.Y >= snap.BoardSize {
			t.Fatalf("seed %d tick %d: snake out of bounds at %v", seed, tick, c)
		}
	}
	if len(snap.Snake) < 1 {
		t.Fatalf("seed %d tick %d: empty snake", seed, tick)
	}
	if !snap.Over() && seen[snap.Food] {
		t.Fatalf("seed %d tick %d: food on snake at %v", seed, tick, snap.Food)
	}
	if snap.HasPowerUp {
		if seen[snap.PowerUp] && !snap.Over() {
			t.Fatalf("seed %d tick %d: power-up on snake at %v", seed, tick, snap.PowerUp)
		}
		if snap.PowerUp == snap.Food {
			t.Fatalf("seed %d tick %d: power-up on food at %v", seed, tick, snap.PowerUp)
		}
	}
	if snap.TickInterval < 50*time.Millisecond {
		t.Fatalf("seed %d tick %d: interval %v below floor", seed, tick, snap.TickInterval)
	}
	if snap.Score < 0 || snap.Level < 1 {
		t.Fatalf("seed %d tick %d: score %d level %d", seed, tick, snap.Score, snap.Level)
	}
}
