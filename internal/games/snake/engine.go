package snake

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/vovakirdan/tui-snake/internal/config"
)

// Option configures an Engine.
type Option func(*Engine)

// WithClock sets the time source used for power-up expiry.
func WithClock(c Clock) Option {
	return func(e *Engine) {
		e.clock = c
	}
}

// WithSeed makes spawning deterministic.
func WithSeed(seed int64) Option {
	return func(e *Engine) {
		e.rng = rand.New(rand.NewSource(seed))
	}
}

// WithHighScore seeds the high score, typically from persistent storage.
func WithHighScore(score int) Option {
	return func(e *Engine) {
		e.highScore = max(score, 0)
	}
}

// state is everything Reset replaces. The high score lives outside it.
type state struct {
	body       *Body
	food       Cell
	powerUp    Cell
	hasPowerUp bool
	effect     Effect
	direction  Direction // direction of travel, applied on the last tick
	pending    Direction // applied on the next tick
	score      int
	level      int
	foodEaten  int
	interval   time.Duration
	paused     bool
	over       bool
	collision  Collision
	tick       uint64
}

// Engine is the tick-driven snake state machine.
// Every exported method is atomic with respect to the game state.
type Engine struct {
	mu        sync.Mutex
	cfg       config.SnakeConfig
	curve     config.SpeedCurve
	clock     Clock
	rng       *rand.Rand
	board     *Board
	spawner   *Spawner
	highScore int
	st        state
}

// NewEngine validates cfg and creates an engine in its initial running state.
func NewEngine(cfg config.SnakeConfig, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("snake: %w", err)
	}

	e := &Engine{
		cfg:   cfg,
		curve: config.NewSpeedCurve(cfg.Speed),
		clock: SystemClock{},
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	e.board = NewBoard(cfg.Board.Size, e.rng)
	e.spawner = NewSpawner(e.board, e.rng)
	e.st = e.initialState()
	return e, nil
}

// initialState builds a fresh game: a vertical snake in the centre heading up.
func (e *Engine) initialState() state {
	c := e.board.Size() / 2
	cells := make([]Cell, e.cfg.Board.InitialLength)
	for i := range cells {
		cells[i] = Cell{X: c, Y: c + i}
	}

	st := state{
		body:      NewBody(cells),
		direction: DirUp,
		pending:   DirUp,
		level:     1,
		interval:  e.curve.Initial(),
	}
	occupied := make(map[Cell]struct{}, len(cells))
	for _, c := range cells {
		occupied[c] = struct{}{}
	}
	st.food = e.spawner.SpawnFood(occupied)
	return st
}

// Reset starts a new game. The high score is kept.
func (e *Engine) Reset() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.st = e.initialState()
	return e.snapshotLocked(e.clock.Now())
}

// SetDirection queues d for the next tick. It is ignored unless the game is
// running, d is a valid direction, and d does not reverse the current travel.
func (e *Engine) SetDirection(d Direction) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.st.over || e.st.paused || !d.Valid() || d == e.st.direction.Opposite() {
		return false
	}
	e.st.pending = d
	return true
}

// TogglePause switches between running and paused. No-op after game over.
func (e *Engine) TogglePause() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	now := e.clock.Now()
	e.expireEffect(now)
	if !e.st.over {
		e.st.paused = !e.st.paused
	}
	return e.snapshotLocked(now)
}

// Tick advances the simulation by one cell. No-op while paused or over.
func (e *Engine) Tick() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	now := e.clock.Now()
	e.expireEffect(now)
	if !e.st.over && !e.st.paused {
		e.step(now)
	}
	return e.snapshotLocked(now)
}

// Snapshot returns a copy of the current state.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	now := e.clock.Now()
	e.expireEffect(now)
	return e.snapshotLocked(now)
}

// TickInterval returns the delay the driver should wait before the next tick.
func (e *Engine) TickInterval() time.Duration {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.st.interval
}

// HighScore returns the best score seen by this engine.
func (e *Engine) HighScore() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.highScore
}

func (e *Engine) step(now time.Time) {
	st := &e.st
	st.tick++
	st.direction = st.pending

	newHead, collision := st.body.Advance(st.direction, e.board)
	if collision != CollisionNone {
		st.over = true
		st.collision = collision
		e.updateHighScore()
		return
	}

	switch {
	case newHead == st.food:
		st.body.Grow(newHead)
		st.foodEaten++
		st.food = e.spawner.SpawnFood(occupiedBy(st))
		// One roll per food eaten; a power-up already on the board stays put
		if cell, ok := e.spawner.MaybeSpawnPowerUp(occupiedBy(st), e.cfg.PowerUp.Chance); ok && !st.hasPowerUp {
			st.powerUp = cell
			st.hasPowerUp = true
		}
		e.addScore(1)

	case st.hasPowerUp && newHead == st.powerUp:
		st.body.Grow(newHead)
		st.hasPowerUp = false
		st.effect = Effect{Active: true, ExpiresAt: now.Add(e.cfg.PowerUp.Duration())}
		e.addScore(e.cfg.PowerUp.Bonus)

	default:
		st.body.MoveWithoutGrowth(newHead)
	}
}

// addScore raises the score and applies every level threshold it crossed.
func (e *Engine) addScore(points int) {
	st := &e.st
	before := st.score
	st.score += points
	e.updateHighScore()

	for range e.curve.LevelUps(before, st.score) {
		st.level++
		st.interval = e.curve.Next(st.interval)
	}
}

func (e *Engine) updateHighScore() {
	e.highScore = max(e.highScore, e.st.score)
}

func (e *Engine) expireEffect(now time.Time) {
	if e.st.effect.Active && !e.st.effect.ActiveAt(now) {
		e.st.effect.Active = false
	}
}

func (e *Engine) snapshotLocked(now time.Time) Snapshot {
	st := &e.st
	status := StatusRunning
	switch {
	case st.over:
		status = StatusOver
	case st.paused:
		status = StatusPaused
	}

	return Snapshot{
		Tick:         st.tick,
		BoardSize:    e.board.Size(),
		Snake:        st.body.Cells(),
		Food:         st.food,
		PowerUp:      st.powerUp,
		HasPowerUp:   st.hasPowerUp,
		Effect:       st.effect,
		EffectLeft:   st.effect.Remaining(now),
		Direction:    st.direction,
		Pending:      st.pending,
		Score:        st.score,
		Level:        st.level,
		HighScore:    e.highScore,
		FoodEaten:    st.foodEaten,
		TickInterval: st.interval,
		Status:       status,
		Collision:    st.collision,
	}
}

// occupiedBy returns every cell held by the snake, the food and the power-up.
func occupiedBy(st *state) map[Cell]struct{} {
	occupied := make(map[Cell]struct{}, st.body.Len()+2)
	for _, c := range st.body.cells {
		occupied[c] = struct{}{}
	}
	occupied[st.food] = struct{}{}
	if st.hasPowerUp {
		occupied[st.powerUp] = struct{}{}
	}
	return occupied
}
