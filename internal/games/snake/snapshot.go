package snake

import (
	"fmt"
	"strings"
	"time"
)

// Effect is the power-up effect: active until ExpiresAt.
type Effect struct {
	Active    bool
	ExpiresAt time.Time
}

// ActiveAt reports whether the effect is still running at now.
func (e Effect) ActiveAt(now time.Time) bool {
	return e.Active && now.Before(e.ExpiresAt)
}

// Remaining returns how long the effect has left at now, or 0.
func (e Effect) Remaining(now time.Time) time.Duration {
	if !e.ActiveAt(now) {
		return 0
	}
	return e.ExpiresAt.Sub(now)
}

// CellKind classifies a board cell for rendering.
type CellKind int

const (
	CellEmpty CellKind = iota
	CellHead
	CellBody
	CellFood
	CellPowerUp
)

// Snapshot is a read-only copy of the game state, taken after a tick or intent.
type Snapshot struct {
	Tick         uint64
	BoardSize    int
	Snake        []Cell // Head at index 0
	Food         Cell
	PowerUp      Cell
	HasPowerUp   bool
	Effect       Effect
	EffectLeft   time.Duration
	Direction    Direction
	Pending      Direction
	Score        int
	Level        int
	HighScore    int
	FoodEaten    int
	TickInterval time.Duration
	Status       Status
	Collision    Collision
}

// Head returns the snake's head cell.
func (s Snapshot) Head() Cell {
	if len(s.Snake) == 0 {
		return Cell{}
	}
	return s.Snake[0]
}

// Paused reports whether the game is paused.
func (s Snapshot) Paused() bool {
	return s.Status == StatusPaused
}

// Over reports whether the game has ended.
func (s Snapshot) Over() bool {
	return s.Status == StatusOver
}

// EffectActive reports whether the power-up effect was running when the
// snapshot was taken.
func (s Snapshot) EffectActive() bool {
	return s.EffectLeft > 0
}

// CellAt classifies a single cell.
func (s Snapshot) CellAt(c Cell) CellKind {
	for i, seg := range s.Snake {
		if seg == c {
			if i == 0 {
				return CellHead
			}
			return CellBody
		}
	}
	switch {
	case c == s.Food:
		return CellFood
	case s.HasPowerUp && c == s.PowerUp:
		return CellPowerUp
	}
	return CellEmpty
}

// Grid classifies every cell, indexed [y][x].
func (s Snapshot) Grid() [][]CellKind {
	grid := make([][]CellKind, s.BoardSize)
	for y := range grid {
		grid[y] = make([]CellKind, s.BoardSize)
	}
	set := func(c Cell, k CellKind) {
		if c.X >= 0 && c.X < s.BoardSize && c.Y >= 0 && c.Y < s.BoardSize {
			grid[c.Y][c.X] = k
		}
	}

	set(s.Food, CellFood)
	if s.HasPowerUp {
		set(s.PowerUp, CellPowerUp)
	}
	for i := len(s.Snake) - 1; i >= 0; i-- {
		if i == 0 {
			set(s.Snake[i], CellHead)
		} else {
			set(s.Snake[i], CellBody)
		}
	}
	return grid
}

// DebugString returns a compact multi-line description for logs and tests.
func (s Snapshot) DebugString() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Tick: %d, Status: %s, Score: %d, Level: %d, High: %d\n",
		s.Tick, s.Status, s.Score, s.Level, s.HighScore)
	fmt.Fprintf(&b, "Snake len: %d, Direction: %s, Interval: %s\n", len(s.Snake), s.Direction, s.TickInterval)
	head := s.Head()
	fmt.Fprintf(&b, "Head: (%d, %d), Food: (%d, %d)", head.X, head.Y, s.Food.X, s.Food.Y)
	if s.HasPowerUp {
		fmt.Fprintf(&b, ", PowerUp: (%d, %d)", s.PowerUp.X, s.PowerUp.Y)
	}
	b.WriteByte('\n')
	return b.String()
}
