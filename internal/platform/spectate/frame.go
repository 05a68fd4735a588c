// Package spectate streams live game snapshots to websocket viewers.
package spectate

import "github.com/vovakirdan/tui-snake/internal/games/snake"

// Point is a board cell on the wire.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Frame is one snapshot as sent to viewers.
type Frame struct {
	Tick       uint64  `json:"tick"`
	BoardSize  int     `json:"board_size"`
	Snake      []Point `json:"snake"`
	Food       Point   `json:"food"`
	PowerUp    *Point  `json:"power_up,omitempty"`
	Direction  string  `json:"direction"`
	Score      int     `json:"score"`
	Level      int     `json:"level"`
	HighScore  int     `json:"high_score"`
	IntervalMS int64   `json:"interval_ms"`
	EffectMS   int64   `json:"effect_ms"`
	Status     string  `json:"status"`
	Collision  string  `json:"collision,omitempty"`
}

// NewFrame converts a snapshot to its wire form.
func NewFrame(snap snake.Snapshot) Frame {
	f := Frame{
		Tick:       snap.Tick,
		BoardSize:  snap.BoardSize,
		Snake:      make([]Point, len(snap.Snake)),
		Food:       Point{snap.Food.X, snap.Food.Y},
		Direction:  snap.Direction.String(),
		Score:      snap.Score,
		Level:      snap.Level,
		HighScore:  snap.HighScore,
		IntervalMS: snap.TickInterval.Milliseconds(),
		EffectMS:   snap.EffectLeft.Milliseconds(),
		Status:     string(snap.Status),
	}
	for i, c := range snap.Snake {
		f.Snake[i] = Point{c.X, c.Y}
	}
	if snap.HasPowerUp {
		f.PowerUp = &Point{snap.PowerUp.X, snap.PowerUp.Y}
	}
	if snap.Collision != snake.CollisionNone {
		f.Collision = snap.Collision.String()
	}
	return f
}
